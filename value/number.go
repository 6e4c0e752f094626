package value

import (
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	tdstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Number is a dimensional numeric value: a double paired with an ordered
// numerator unit list and an ordered denominator unit list. All four shapes
// the original language distinguishes (unitless, single-unit, complex,
// slash-carrying) are represented by this one struct; has_complex_units and
// friends are simply predicates over the unit slices' shapes.
type Number struct {
	value        float64
	numerators   []string
	denominators []string
	slash        *slashPair
}

type slashPair struct {
	lhs, rhs *Number
}

// NewUnitlessNumber builds a Number with no units.
func NewUnitlessNumber(v float64) *Number {
	return &Number{value: v}
}

// NewSingleUnitNumber builds a Number with exactly one numerator unit.
func NewSingleUnitNumber(v float64, unit string) *Number {
	return &Number{value: v, numerators: []string{unit}}
}

// NewNumberWithUnits builds a Number from arbitrary numerator/denominator
// unit lists, performing the canonical simplification loop: every
// denominator unit that has a convertible numerator is cancelled against it,
// scaling the value by their conversion factor, until no more cancellations
// are possible.
func NewNumberWithUnits(v float64, numerators, denominators []string) *Number {
	nums := append([]string(nil), numerators...)
	dens := append([]string(nil), denominators...)

	for i := 0; i < len(dens); {
		cancelled := false
		for j := 0; j < len(nums); j++ {
			factor, ok := ConversionFactor(nums[j], dens[i])
			if !ok {
				continue
			}
			// factor is defined so that 1*dens[i] == factor*nums[j]; a
			// value expressed in nums[j]/dens[i] therefore converts to a
			// pure number by dividing by factor.
			v /= factor
			nums = append(nums[:j], nums[j+1:]...)
			dens = append(dens[:i], dens[i+1:]...)
			cancelled = true
			break
		}
		if !cancelled {
			i++
		}
	}

	return &Number{value: v, numerators: nums, denominators: dens}
}

// Value returns the raw numeric component.
func (n *Number) Value() float64 { return n.value }

// Numerators returns a copy of the numerator unit list.
func (n *Number) Numerators() []string { return append([]string(nil), n.numerators...) }

// Denominators returns a copy of the denominator unit list.
func (n *Number) Denominators() []string { return append([]string(nil), n.denominators...) }

// --- Predicates -----------------------------------------------------------

// IsInt reports whether the value is fuzzily an integer.
func (n *Number) IsInt() bool { return FuzzyIsInt(n.value) }

// HasUnits reports whether the number carries any numerator or denominator.
func (n *Number) HasUnits() bool { return len(n.numerators) > 0 || len(n.denominators) > 0 }

// HasComplexUnits reports whether the unit signature is more than a single
// bare numerator: more than one numerator, or any denominator at all.
func (n *Number) HasComplexUnits() bool {
	return len(n.numerators) > 1 || len(n.denominators) > 0
}

// HasUnit reports whether this number's only unit is exactly unit.
func (n *Number) HasUnit(unit string) bool {
	return len(n.numerators) == 1 && len(n.denominators) == 0 && n.numerators[0] == unit
}

// CompatibleWithUnit reports whether this number could be converted to a
// single-unit number carrying unit.
func (n *Number) CompatibleWithUnit(unit string) bool {
	return n.HasCompatibleUnits(NewSingleUnitNumber(1, unit))
}

// HasCompatibleUnits reports whether n and other have the same-length unit
// lists and are mutually comparable (see IsComparableTo).
func (n *Number) HasCompatibleUnits(other *Number) bool {
	if len(n.numerators) != len(other.numerators) || len(n.denominators) != len(other.denominators) {
		return false
	}
	return n.IsComparableTo(other)
}

// HasPossiblyCompatibleUnits reports whether n and other might be
// compatible: true whenever either side is unitless, or uses a unit this
// table has never heard of (unknown units are possibly-compatible with
// anything), otherwise falls back to HasCompatibleUnits.
func (n *Number) HasPossiblyCompatibleUnits(other *Number) bool {
	if !n.HasUnits() || !other.HasUnits() {
		return true
	}
	if hasUnknownUnit(n.numerators) || hasUnknownUnit(n.denominators) ||
		hasUnknownUnit(other.numerators) || hasUnknownUnit(other.denominators) {
		return true
	}
	return n.HasCompatibleUnits(other)
}

// IsComparableTo reports whether n and other can be ordered against each
// other, by attempting GreaterThan and checking whether it errors. This is
// the one place in the core a ScriptError is caught rather than propagated.
func (n *Number) IsComparableTo(other *Number) bool {
	_, err := n.greaterThan(other)
	return err == nil
}

func hasUnknownUnit(units []string) bool {
	for _, u := range units {
		if _, ok := unitToGroup[u]; !ok {
			return true
		}
	}
	return false
}

// --- Assertions -------------------------------------------------------

// AssertInt returns the value as an integer if it is fuzzily one.
func (n *Number) AssertInt(argName string) (int64, error) {
	iv, ok := FuzzyAsInt(n.value)
	if !ok {
		return 0, assertFailure(n, argName, "%s is not an integer.", describe(n))
	}
	return iv, nil
}

// AssertUnit fails unless n's only unit is exactly unit.
func (n *Number) AssertUnit(unit, argName string) error {
	if !n.HasUnit(unit) {
		return assertFailure(n, argName, "Expected %s to have unit %q.", describe(n), unit)
	}
	return nil
}

// AssertNoUnits fails if n carries any unit at all.
func (n *Number) AssertNoUnits(argName string) error {
	if n.HasUnits() {
		return assertFailure(n, argName, "Expected %s to have no units.", describe(n))
	}
	return nil
}

// ValueInRange returns n's value validated against [min, max], snapping to
// either endpoint when fuzzily equal to it; a value outside the range is an
// error, not clamped.
func (n *Number) ValueInRange(min, max float64, argName string) (float64, error) {
	v, ok := FuzzyCheckRange(n.value, min, max)
	if !ok {
		return 0, assertFailure(n, argName, "Expected %s to be between %v and %v.", describe(n), min, max)
	}
	return v, nil
}

func assertFailure(n *Number, argName, format string, args ...any) *ScriptError {
	err := NewScriptErrorf(format, args...).WithCategory(CategoryRange)
	if argName != "" {
		err = err.WithArgName(argName)
	}
	return err
}

// --- Unit conversion --------------------------------------------------

func canonicalFactor(units []string) float64 {
	f := 1.0
	for _, u := range units {
		f *= CanonicalMultiplierFor(u)
	}
	return f
}

func unitsListEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, u := range a {
		found := false
		for i, v := range b {
			if !used[i] && u == v {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func compatibleUnitLists(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return signaturesEqual(canonicalSignature(a), canonicalSignature(b))
}

func (n *Number) convertValue(numUnits, denUnits []string, coerce bool) (float64, error) {
	if unitsListEqual(n.numerators, numUnits) && unitsListEqual(n.denominators, denUnits) {
		return n.value, nil
	}
	targetUnitFree := len(numUnits) == 0 && len(denUnits) == 0
	if coerce && (!n.HasUnits() || targetUnitFree) {
		return n.value, nil
	}
	if !compatibleUnitLists(n.numerators, numUnits) || !compatibleUnitLists(n.denominators, denUnits) {
		return 0, n.incompatibleUnitsError(numUnits, denUnits)
	}
	oldFactor := canonicalFactor(n.numerators) / canonicalFactor(n.denominators)
	newFactor := canonicalFactor(numUnits) / canonicalFactor(denUnits)
	return n.value * oldFactor / newFactor, nil
}

func (n *Number) incompatibleUnitsError(numUnits, denUnits []string) *ScriptError {
	return NewScriptErrorf("Incompatible units %s and %s.", unitString(n.numerators, n.denominators), unitString(numUnits, denUnits)).
		WithCategory(CategoryUnit)
}

// ConvertValueTo strictly converts n's value into numUnits/denUnits: a
// unitless number cannot convert to a united target or vice versa.
func (n *Number) ConvertValueTo(numUnits, denUnits []string) (float64, error) {
	return n.convertValue(numUnits, denUnits, false)
}

// CoerceValueTo leniently converts n's value: a unitless number coerces
// freely to or from any unit list without changing its numeric value.
func (n *Number) CoerceValueTo(numUnits, denUnits []string) (float64, error) {
	return n.convertValue(numUnits, denUnits, true)
}

// ConvertValueToMatch converts n's value into other's units, strictly.
func (n *Number) ConvertValueToMatch(other *Number) (float64, error) {
	return n.ConvertValueTo(other.numerators, other.denominators)
}

// CoerceValueToMatch converts n's value into other's units, leniently.
func (n *Number) CoerceValueToMatch(other *Number) (float64, error) {
	return n.CoerceValueTo(other.numerators, other.denominators)
}

// Convert returns a new Number expressed in numUnits/denUnits, strictly.
func (n *Number) Convert(numUnits, denUnits []string) (*Number, error) {
	v, err := n.ConvertValueTo(numUnits, denUnits)
	if err != nil {
		return nil, err
	}
	return &Number{value: v, numerators: append([]string(nil), numUnits...), denominators: append([]string(nil), denUnits...)}, nil
}

// Coerce returns a new Number expressed in numUnits/denUnits, leniently.
func (n *Number) Coerce(numUnits, denUnits []string) (*Number, error) {
	v, err := n.CoerceValueTo(numUnits, denUnits)
	if err != nil {
		return nil, err
	}
	return &Number{value: v, numerators: append([]string(nil), numUnits...), denominators: append([]string(nil), denUnits...)}, nil
}

// ConvertToMatch returns a new Number expressed in other's units, strictly.
func (n *Number) ConvertToMatch(other *Number) (*Number, error) {
	return n.Convert(other.numerators, other.denominators)
}

// CoerceToMatch returns a new Number expressed in other's units, leniently.
func (n *Number) CoerceToMatch(other *Number) (*Number, error) {
	return n.Coerce(other.numerators, other.denominators)
}

func unitString(numerators, denominators []string) string {
	if len(numerators) == 0 && len(denominators) == 0 {
		return "none"
	}
	s := strings.Join(numerators, "*")
	if s == "" {
		s = "1"
	}
	if len(denominators) > 0 {
		s += "/" + strings.Join(denominators, "*")
	}
	return s
}

// --- Arithmetic ---------------------------------------------------------

func (n *Number) plus(other Value) (Value, error) {
	if o, ok := other.(*Number); ok {
		v, err := o.CoerceValueToMatch(n)
		if err != nil {
			return nil, err
		}
		return &Number{value: n.value + v, numerators: n.numerators, denominators: n.denominators}, nil
	}
	if _, ok := other.(*Color); ok {
		return nil, undefinedOperation(n, other, "+")
	}
	return concatString(n, other, "")
}

func (n *Number) minus(other Value) (Value, error) {
	if o, ok := other.(*Number); ok {
		v, err := o.CoerceValueToMatch(n)
		if err != nil {
			return nil, err
		}
		return &Number{value: n.value - v, numerators: n.numerators, denominators: n.denominators}, nil
	}
	if _, ok := other.(*Color); ok {
		return nil, undefinedOperation(n, other, "-")
	}
	return concatString(n, other, "-")
}

func (n *Number) times(other Value) (Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, undefinedOperation(n, other, "*")
	}
	numerators := append(append([]string(nil), n.numerators...), o.numerators...)
	denominators := append(append([]string(nil), n.denominators...), o.denominators...)
	return NewNumberWithUnits(n.value*o.value, numerators, denominators), nil
}

func (n *Number) dividedBy(other Value) (Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return concatString(n, other, "/")
	}
	numerators := append(append([]string(nil), n.numerators...), o.denominators...)
	denominators := append(append([]string(nil), n.denominators...), o.numerators...)
	return NewNumberWithUnits(n.value/o.value, numerators, denominators), nil
}

func (n *Number) modulo(other Value) (Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, undefinedOperation(n, other, "%")
	}
	v, err := o.CoerceValueToMatch(n)
	if err != nil {
		return nil, err
	}
	result := ModuloLikeSass(n.value, v)
	return &Number{value: result, numerators: n.numerators, denominators: n.denominators}, nil
}

func (n *Number) unaryPlus() *Number {
	return n
}

func (n *Number) unaryMinus() *Number {
	return &Number{value: -n.value, numerators: n.numerators, denominators: n.denominators}
}

// --- Relational -----------------------------------------------------------

func (n *Number) greaterThan(other Value) (Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, undefinedOperation(n, other, ">")
	}
	v, err := o.CoerceValueToMatch(n)
	if err != nil {
		return nil, err
	}
	return BooleanOf(FuzzyGreaterThan(n.value, v)), nil
}

func (n *Number) greaterThanOrEquals(other Value) (Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, undefinedOperation(n, other, ">=")
	}
	v, err := o.CoerceValueToMatch(n)
	if err != nil {
		return nil, err
	}
	return BooleanOf(FuzzyGreaterThanOrEquals(n.value, v)), nil
}

func (n *Number) lessThan(other Value) (Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, undefinedOperation(n, other, "<")
	}
	v, err := o.CoerceValueToMatch(n)
	if err != nil {
		return nil, err
	}
	return BooleanOf(FuzzyLessThan(n.value, v)), nil
}

func (n *Number) lessThanOrEquals(other Value) (Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, undefinedOperation(n, other, "<=")
	}
	v, err := o.CoerceValueToMatch(n)
	if err != nil {
		return nil, err
	}
	return BooleanOf(FuzzyLessThanOrEquals(n.value, v)), nil
}

// --- Slash memo -------------------------------------------------------

// WithSlash returns a copy of n remembering that it originated from the
// unevaluated division lhs / rhs, for later serialization.
func (n *Number) WithSlash(lhs, rhs *Number) *Number {
	cp := *n
	cp.slash = &slashPair{lhs: lhs, rhs: rhs}
	return &cp
}

// WithoutSlash returns a copy of n with no as-slash memo.
func (n *Number) WithoutSlash() *Number {
	cp := *n
	cp.slash = nil
	return &cp
}

// AsSlash returns the as-slash pair, if any.
func (n *Number) AsSlash() (lhs, rhs *Number, ok bool) {
	if n.slash == nil {
		return nil, nil, false
	}
	return n.slash.lhs, n.slash.rhs, true
}

// --- Value interface ----------------------------------------------------

func (n *Number) TypeName() string           { return "number" }
func (n *Number) IsTruthy() bool             { return true }
func (n *Number) IsBlank() bool              { return false }
func (n *Number) Separator() ListSeparator   { return SeparatorUndecided }
func (n *Number) HasBrackets() bool          { return false }
func (n *Number) AsList() []Value            { return []Value{n} }
func (n *Number) RealNull() Value            { return n }
func (n *Number) Accept(v Visitor) (any, error) { return v.VisitNumber(n) }

func (n *Number) canonicalQuantity() float64 {
	return n.value * canonicalFactor(n.numerators) / canonicalFactor(n.denominators)
}

// Equal compares canonicalized unit signatures and fuzzy-compares the
// canonical quantities, so numbers in convertible units (1in and 96px)
// compare equal.
func (n *Number) Equal(other Value) bool {
	o, ok := other.(*Number)
	if !ok {
		return false
	}
	if !compatibleUnitLists(n.numerators, o.numerators) || !compatibleUnitLists(n.denominators, o.denominators) {
		return false
	}
	return FuzzyEquals(n.canonicalQuantity(), o.canonicalQuantity())
}

func stringHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

func (n *Number) Hash() uint64 {
	h := FuzzyHashCode(n.canonicalQuantity())
	for _, sig := range canonicalSignature(n.numerators) {
		h = hashCombine(h, stringHash(sig))
	}
	for _, sig := range canonicalSignature(n.denominators) {
		h = hashCombine(h, stringHash(sig))
	}
	return h
}

func formatCSSNumber(v float64) string {
	buf, ok := tdstrconv.AppendFloat(make([]byte, 0, 24), v, -1)
	if !ok {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := string(buf)
	// AppendFloat drops the leading zero of a fraction (".5"); restore it.
	if strings.HasPrefix(s, ".") {
		return "0" + s
	}
	if strings.HasPrefix(s, "-.") {
		return "-0" + s[1:]
	}
	return s
}

func (n *Number) ToCSSString(inspect bool) (string, error) {
	switch {
	case math.IsNaN(n.value):
		return "NaN" + n.unitSuffix(), nil
	case math.IsInf(n.value, 1):
		return "Infinity" + n.unitSuffix(), nil
	case math.IsInf(n.value, -1):
		return "-Infinity" + n.unitSuffix(), nil
	}
	return formatCSSNumber(n.value) + n.unitSuffix(), nil
}

func (n *Number) unitSuffix() string {
	if len(n.numerators) == 0 && len(n.denominators) == 0 {
		return ""
	}
	s := strings.Join(n.numerators, "*")
	if len(n.denominators) > 0 {
		s += "/" + strings.Join(n.denominators, "*")
	}
	return s
}
