package value

import "sort"

// unitGroup names one of the five families of interconvertible physical
// units. An empty group string marks a unit this table has never heard of,
// which is only ever convertible with itself.
type unitGroup string

const (
	groupLength     unitGroup = "length"
	groupAngle      unitGroup = "angle"
	groupTime       unitGroup = "time"
	groupFrequency  unitGroup = "frequency"
	groupResolution unitGroup = "resolution"
)

// unitScale holds, for every unit in a group, how many of that unit make up
// one of the group's canonical unit (the entry whose scale is 1).
var unitScale = map[string]float64{
	// length, canonical unit: in
	"in": 1,
	"cm": 2.54,
	"pc": 6,
	"mm": 25.4,
	"q":  101.6,
	"pt": 72,
	"px": 96,

	// angle, canonical unit: turn
	"deg":  360,
	"grad": 400,
	"rad":  6.283185307179586, // 2*pi
	"turn": 1,

	// time, canonical unit: s
	"s":  1,
	"ms": 1000,

	// frequency, canonical unit: Hz
	"Hz":  1,
	"kHz": 0.001,

	// resolution, canonical unit: dppx
	"dpi":  96,
	"dpcm": 243.84,
	"dppx": 1,
}

var unitToGroup = func() map[string]unitGroup {
	groups := map[unitGroup][]string{
		groupLength:     {"in", "cm", "pc", "mm", "q", "pt", "px"},
		groupAngle:      {"deg", "grad", "rad", "turn"},
		groupTime:       {"s", "ms"},
		groupFrequency:  {"Hz", "kHz"},
		groupResolution: {"dpi", "dpcm", "dppx"},
	}
	m := make(map[string]unitGroup, len(unitScale))
	for g, units := range groups {
		for _, u := range units {
			m[u] = g
		}
	}
	return m
}()

// UnitsByType returns the diagnostic group name for unit, or "" if unit is
// not one this table knows how to convert.
func UnitsByType(unit string) string {
	return string(unitToGroup[unit])
}

// unitsConvertible reports whether a and b belong to the same known group
// (and are therefore mutually convertible via ConversionFactor).
func unitsConvertible(a, b string) bool {
	if a == b {
		return true
	}
	ga, oka := unitToGroup[a]
	gb, okb := unitToGroup[b]
	return oka && okb && ga == gb
}

// ConversionFactor returns factor such that 1·b = factor·a, and true, if a
// and b are both known units of the same group (or textually identical).
// It returns (0, false) for unknown or incompatible units.
func ConversionFactor(a, b string) (float64, bool) {
	if a == b {
		return 1, true
	}
	sa, oka := unitScale[a]
	sb, okb := unitScale[b]
	if !oka || !okb || unitToGroup[a] != unitToGroup[b] {
		return 0, false
	}
	return sa / sb, true
}

// CanonicalMultiplierFor returns the factor that converts a quantity in unit
// into the group's canonical scale, used to build the canonical quantity
// that Number equality and hashing compare. Unknown units return 1 (they
// are compared by exact unit-string identity instead, see Number equality).
func CanonicalMultiplierFor(unit string) float64 {
	scale, ok := unitScale[unit]
	if !ok {
		return 1
	}
	// scale records how many `unit` make up one canonical unit of its
	// group (e.g. unitScale["px"] == 96, 96px == 1in). The canonical
	// quantity of a value expressed in `unit` is therefore the value
	// divided by scale, i.e. multiplied by 1/scale.
	return 1 / scale
}

// canonicalSignature reduces a multiset of unit strings to a sorted slice of
// comparison keys: known units collapse to their group name (interchangeable
// for compatibility purposes), unknown units keep their own literal text
// (only interchangeable with themselves).
func canonicalSignature(units []string) []string {
	keys := make([]string, len(units))
	for i, u := range units {
		if g, ok := unitToGroup[u]; ok {
			keys[i] = "g:" + string(g)
		} else {
			keys[i] = "u:" + u
		}
	}
	sort.Strings(keys)
	return keys
}

func signaturesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
