package value

import "strings"

// MapEntry is one key/value pair supplied to NewMap.
type MapEntry struct {
	Key, Val Value
}

type mapEntry struct {
	key, val Value
}

// Map is an ordered key->value mapping whose keys and values are
// themselves Values; iteration order is insertion order, and inserting an
// already-present key updates its value in place without moving it.
type Map struct {
	entries []mapEntry
	index   map[uint64][]int
}

// NewMap builds a Map from an ordered list of entries, last-write-wins on
// duplicate keys (per Value equality, not Go equality).
func NewMap(pairs []MapEntry) *Map {
	m := &Map{index: make(map[uint64][]int)}
	for _, p := range pairs {
		m.insert(p.Key, p.Val)
	}
	return m
}

func (m *Map) insert(key, val Value) {
	h := key.Hash()
	for _, idx := range m.index[h] {
		if m.entries[idx].key.Equal(key) {
			m.entries[idx].val = val
			return
		}
	}
	m.entries = append(m.entries, mapEntry{key: key, val: val})
	m.index[h] = append(m.index[h], len(m.entries)-1)
}

// Get looks up key by Value equality.
func (m *Map) Get(key Value) (Value, bool) {
	for _, idx := range m.index[key.Hash()] {
		if m.entries[idx].key.Equal(key) {
			return m.entries[idx].val, true
		}
	}
	return nil, false
}

// Len reports the entry count.
func (m *Map) Len() int { return len(m.entries) }

// Entries returns a copy of the ordered key/value pairs.
func (m *Map) Entries() []MapEntry {
	out := make([]MapEntry, len(m.entries))
	for i, e := range m.entries {
		out[i] = MapEntry{Key: e.key, Val: e.val}
	}
	return out
}

// AsList builds, on every call, a fresh list of two-element space-separated
// lists — one per entry, in insertion order.
func (m *Map) AsList() []Value {
	out := make([]Value, len(m.entries))
	for i, e := range m.entries {
		out[i] = NewList([]Value{e.key, e.val}, SeparatorSpace, false)
	}
	return out
}

func (m *Map) TypeName() string         { return "map" }
func (m *Map) IsTruthy() bool           { return true }
func (m *Map) IsBlank() bool            { return false }
func (m *Map) Separator() ListSeparator { return SeparatorComma }
func (m *Map) HasBrackets() bool        { return false }
func (m *Map) RealNull() Value          { return m }
func (m *Map) Accept(v Visitor) (any, error) {
	return v.VisitMap(m)
}

// Equal compares entries (key and value) in the same order and multiplicity;
// the empty map equals the empty list.
func (m *Map) Equal(other Value) bool {
	switch o := other.(type) {
	case *Map:
		if len(m.entries) != len(o.entries) {
			return false
		}
		for i := range m.entries {
			if !m.entries[i].key.Equal(o.entries[i].key) || !m.entries[i].val.Equal(o.entries[i].val) {
				return false
			}
		}
		return true
	default:
		if contents, _, brackets, ok := listLikeView(other); ok {
			return len(m.entries) == 0 && len(contents) == 0 && !brackets
		}
		return false
	}
}

// Hash combines key/value hashes order-sensitively, so two equal maps
// (which must have identical entry order, per Equal) always hash equal.
func (m *Map) Hash() uint64 {
	var h uint64
	for _, e := range m.entries {
		h = hashCombine(h, e.key.Hash())
		h = hashCombine(h, e.val.Hash())
	}
	return h
}

func (m *Map) inspectText() string {
	parts := make([]string, len(m.entries))
	for i, e := range m.entries {
		ks, _ := e.key.ToCSSString(true)
		vs, _ := e.val.ToCSSString(true)
		parts[i] = ks + ": " + vs
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ToCSSString only succeeds when inspecting: a map, unlike a list, is never
// a valid plain CSS value.
func (m *Map) ToCSSString(inspect bool) (string, error) {
	if !inspect {
		return "", NewScriptErrorf("%s isn't a valid CSS value.", m.inspectText())
	}
	return m.inspectText(), nil
}
