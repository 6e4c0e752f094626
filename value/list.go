package value

import "strings"

// List is an ordered, immutable sequence of Values plus a separator and a
// bracket flag. Every Value has a list-view (AsList/Separator/HasBrackets);
// List is simply the variant whose list-view is itself.
type List struct {
	contents    []Value
	separator   ListSeparator
	hasBrackets bool
}

// NewList builds a List, copying contents so later mutation of the caller's
// slice can't reach back into the value.
func NewList(contents []Value, separator ListSeparator, hasBrackets bool) *List {
	return &List{contents: append([]Value(nil), contents...), separator: separator, hasBrackets: hasBrackets}
}

// Contents returns a copy of the element sequence.
func (l *List) Contents() []Value { return append([]Value(nil), l.contents...) }

// Len reports the element count.
func (l *List) Len() int { return len(l.contents) }

// SassIndexFor validates a 1-based, possibly negative-from-end Sass index
// against the list length, returning a 0-based Go index.
func (l *List) SassIndexFor(sassIndex int, argName string) (int, error) {
	length := len(l.contents)
	if sassIndex == 0 {
		return 0, l.indexError(sassIndex, argName)
	}
	abs := sassIndex
	if abs < 0 {
		abs = -abs
	}
	if abs > length {
		return 0, l.indexError(sassIndex, argName)
	}
	if sassIndex > 0 {
		return sassIndex - 1, nil
	}
	return length + sassIndex, nil
}

func (l *List) indexError(sassIndex int, argName string) *ScriptError {
	err := NewScriptErrorf("Invalid index %d for a list with %d elements.", sassIndex, len(l.contents)).
		WithCategory(CategoryIndex)
	if argName != "" {
		err = err.WithArgName(argName)
	}
	return err
}

// listLikeView extracts the element/separator/bracket triple from any
// concrete type whose list-view is itself (List and ArgumentList), so
// equality and hashing treat both uniformly.
func listLikeView(v Value) (contents []Value, sep ListSeparator, brackets bool, ok bool) {
	switch t := v.(type) {
	case *List:
		return t.contents, t.separator, t.hasBrackets, true
	case *ArgumentList:
		return t.contents, t.separator, t.hasBrackets, true
	default:
		return nil, 0, false, false
	}
}

// Equal compares element-wise: same brackets, and the same separator unless
// one side's length is short enough that its separator was never forced to
// commit (length <= 1). The empty list equals the empty map.
func (l *List) Equal(other Value) bool {
	if contents, sep, brackets, ok := listLikeView(other); ok {
		if l.hasBrackets != brackets {
			return false
		}
		if len(l.contents) != len(contents) {
			return false
		}
		if sep != l.separator && len(l.contents) > 1 && len(contents) > 1 {
			return false
		}
		for i := range l.contents {
			if !l.contents[i].Equal(contents[i]) {
				return false
			}
		}
		return true
	}
	if m, ok := other.(*Map); ok {
		return len(l.contents) == 0 && m.Len() == 0 && !l.hasBrackets
	}
	return false
}

func (l *List) Hash() uint64 {
	var h uint64
	if l.hasBrackets {
		h = 1
	}
	for _, v := range l.contents {
		h = hashCombine(h, v.Hash())
	}
	return h
}

func (l *List) TypeName() string         { return "list" }
func (l *List) IsTruthy() bool           { return true }
func (l *List) IsBlank() bool            { return false }
func (l *List) Separator() ListSeparator { return l.separator }
func (l *List) HasBrackets() bool        { return l.hasBrackets }
func (l *List) AsList() []Value          { return l.contents }
func (l *List) RealNull() Value          { return l }
func (l *List) Accept(v Visitor) (any, error) {
	return v.VisitList(l)
}

func sepText(sep ListSeparator) string {
	switch sep {
	case SeparatorComma:
		return ", "
	case SeparatorSlash:
		return "/"
	case SeparatorSpace:
		return " "
	default:
		return " "
	}
}

func (l *List) ToCSSString(inspect bool) (string, error) {
	parts := make([]string, len(l.contents))
	for i, v := range l.contents {
		s, err := v.ToCSSString(inspect)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	joined := strings.Join(parts, sepText(l.separator))
	if l.hasBrackets {
		return "[" + joined + "]", nil
	}
	if len(l.contents) == 0 {
		return "()", nil
	}
	return joined, nil
}
