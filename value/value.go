// Package value implements the SassScript value system: the in-memory
// representation of every value that flows through a Sass evaluator,
// together with the algebra defined on those values.
package value

import "fmt"

// ListSeparator is the separator a List (or any value's list-view) reports.
type ListSeparator int

const (
	SeparatorUndecided ListSeparator = iota
	SeparatorSpace
	SeparatorComma
	SeparatorSlash
)

func (s ListSeparator) String() string {
	switch s {
	case SeparatorSpace:
		return " "
	case SeparatorComma:
		return ","
	case SeparatorSlash:
		return "/"
	default:
		return ""
	}
}

// Value is the sum of every SassScript variant: Number, Color, String, List,
// Map, ArgumentList, Boolean, Null, Function, Mixin, and Calculation. Every
// implementation is deeply immutable after construction. Operators are
// deliberately not part of this interface — per the design goal of keeping
// "variant methods" as free functions with shared defaults, Plus/Minus/Times/
// and friends live as package-level functions below that type-switch on
// their first operand.
type Value interface {
	// TypeName names the variant for error messages ("number", "color", ...).
	TypeName() string

	// IsTruthy is false only for Boolean(false) and Null; true otherwise.
	IsTruthy() bool

	// IsBlank is true for Null and for the empty unquoted string.
	IsBlank() bool

	// Separator reports the list-view separator: Undecided for every scalar
	// and for zero/one-element containers that haven't committed to one.
	Separator() ListSeparator

	// HasBrackets reports the list-view bracket-ness.
	HasBrackets() bool

	// AsList returns the list-view contents: [self] for scalars, a map's
	// entries as two-element lists, or a container's own elements.
	AsList() []Value

	// RealNull normalizes internal null-like sentinels to the canonical
	// Null value; every variant besides those sentinels returns itself.
	RealNull() Value

	// Accept dispatches to the matching Visitor method.
	Accept(visitor Visitor) (any, error)

	// Equal implements variant-specific, fuzzy-where-appropriate equality.
	Equal(other Value) bool

	// Hash must agree with Equal: a.Equal(b) implies a.Hash() == b.Hash().
	Hash() uint64

	// ToCSSString renders the value the way a serializer would emit it.
	// inspect=true additionally renders values illegal in plain CSS
	// (function references, maps with non-trivial keys, and so on) the way
	// meta.inspect()/debug output does.
	ToCSSString(inspect bool) (string, error)
}

// Visitor lets a consumer (a serializer, an inspector, any variant-sensitive
// pass) reach into a Value without a type switch of its own.
type Visitor interface {
	VisitNumber(*Number) (any, error)
	VisitColor(*Color) (any, error)
	VisitString(*String) (any, error)
	VisitList(*List) (any, error)
	VisitMap(*Map) (any, error)
	VisitArgumentList(*ArgumentList) (any, error)
	VisitBoolean(*Boolean) (any, error)
	VisitNull(*Null) (any, error)
	VisitFunction(*Function) (any, error)
	VisitMixin(*Mixin) (any, error)
	VisitCalculation(*Calculation) (any, error)
}

// describe renders v for use inside an error message, falling back to its
// type name if serialization itself fails (e.g. an incomplete Calculation).
func describe(v Value) string {
	s, err := v.ToCSSString(true)
	if err != nil {
		return v.TypeName()
	}
	return s
}

func undefinedOperation(a, b Value, op string) *ScriptError {
	return NewScriptErrorf("Undefined operation %q.", fmt.Sprintf("%s %s %s", describe(a), op, describe(b))).
		WithCategory(CategoryOperation)
}

// concatString builds the facade's default arithmetic fallback: the CSS
// serialization of a, then sep, then the CSS serialization of b, as a new
// unquoted string.
func concatString(a, b Value, sep string) (Value, error) {
	as, err := a.ToCSSString(false)
	if err != nil {
		return nil, err
	}
	bs, err := b.ToCSSString(false)
	if err != nil {
		return nil, err
	}
	return NewUnquotedString(as + sep + bs), nil
}

// --- Operator surface -------------------------------------------------

// Plus implements Value `+` Value. Number, String, Color, and Calculation
// override this; everything else falls back to the facade default.
func Plus(a, b Value) (Value, error) {
	switch v := a.(type) {
	case *Number:
		return v.plus(b)
	case *String:
		return v.plus(b)
	case *Color:
		return v.plus(b)
	case *Calculation:
		return v.plus(b)
	default:
		return concatString(a, b, "")
	}
}

// Minus implements Value `-` Value.
func Minus(a, b Value) (Value, error) {
	switch v := a.(type) {
	case *Number:
		return v.minus(b)
	case *Color:
		return v.minus(b)
	case *Calculation:
		return nil, undefinedOperation(a, b, "-")
	default:
		return concatString(a, b, "-")
	}
}

// Times implements Value `*` Value.
func Times(a, b Value) (Value, error) {
	switch v := a.(type) {
	case *Number:
		return v.times(b)
	case *Color:
		return v.times(b)
	case *Calculation:
		return nil, undefinedOperation(a, b, "*")
	default:
		return nil, undefinedOperation(a, b, "*")
	}
}

// DividedBy implements Value `/` Value.
func DividedBy(a, b Value) (Value, error) {
	switch v := a.(type) {
	case *Number:
		return v.dividedBy(b)
	case *Color:
		return v.dividedBy(b)
	case *Calculation:
		return nil, undefinedOperation(a, b, "/")
	default:
		return concatString(a, b, "/")
	}
}

// Modulo implements Value `%` Value. There is no facade default: only
// Number overrides it, everyone else raises.
func Modulo(a, b Value) (Value, error) {
	switch v := a.(type) {
	case *Number:
		return v.modulo(b)
	default:
		return nil, undefinedOperation(a, b, "%")
	}
}

// UnaryPlus implements unary `+`.
func UnaryPlus(a Value) (Value, error) {
	if n, ok := a.(*Number); ok {
		return n.unaryPlus(), nil
	}
	s, err := a.ToCSSString(false)
	if err != nil {
		return nil, err
	}
	return NewUnquotedString("+" + s), nil
}

// UnaryMinus implements unary `-`.
func UnaryMinus(a Value) (Value, error) {
	switch v := a.(type) {
	case *Number:
		return v.unaryMinus(), nil
	case *Calculation:
		return nil, undefinedOperation(a, a, "-")
	}
	s, err := a.ToCSSString(false)
	if err != nil {
		return nil, err
	}
	return NewUnquotedString("-" + s), nil
}

// UnaryNot implements `not`, identical for every variant: true iff the
// operand is falsy.
func UnaryNot(a Value) Value {
	return BooleanOf(!a.IsTruthy())
}

// And implements SassScript `and`: short-circuits to b when a is truthy.
func And(a, b Value) Value {
	if a.IsTruthy() {
		return b
	}
	return a
}

// Or implements SassScript `or`: short-circuits to a when a is truthy.
func Or(a, b Value) Value {
	if a.IsTruthy() {
		return a
	}
	return b
}

// GreaterThan, GreaterThanOrEquals, LessThan, and LessThanOrEquals are
// meaningful only for Number; every other variant raises.
func GreaterThan(a, b Value) (Value, error) {
	if n, ok := a.(*Number); ok {
		return n.greaterThan(b)
	}
	return nil, undefinedOperation(a, b, ">")
}

func GreaterThanOrEquals(a, b Value) (Value, error) {
	if n, ok := a.(*Number); ok {
		return n.greaterThanOrEquals(b)
	}
	return nil, undefinedOperation(a, b, ">=")
}

func LessThan(a, b Value) (Value, error) {
	if n, ok := a.(*Number); ok {
		return n.lessThan(b)
	}
	return nil, undefinedOperation(a, b, "<")
}

func LessThanOrEquals(a, b Value) (Value, error) {
	if n, ok := a.(*Number); ok {
		return n.lessThanOrEquals(b)
	}
	return nil, undefinedOperation(a, b, "<=")
}

// --- Assertions ---------------------------------------------------------

func assertTypeError(v Value, argName, wanted string) *ScriptError {
	err := NewScriptErrorf("%s is not %s.", describe(v), wanted)
	if argName != "" {
		err = err.WithArgName(argName)
	}
	return err
}

// AssertNumber returns v as a *Number, or a ScriptError if v isn't one.
func AssertNumber(v Value, argName string) (*Number, error) {
	if n, ok := v.(*Number); ok {
		return n, nil
	}
	return nil, assertTypeError(v, argName, "a number")
}

// AssertString returns v as a *String, or a ScriptError if v isn't one.
func AssertString(v Value, argName string) (*String, error) {
	if s, ok := v.(*String); ok {
		return s, nil
	}
	return nil, assertTypeError(v, argName, "a string")
}

// AssertColor returns v as a *Color, or a ScriptError if v isn't one.
func AssertColor(v Value, argName string) (*Color, error) {
	if c, ok := v.(*Color); ok {
		return c, nil
	}
	return nil, assertTypeError(v, argName, "a color")
}

// AssertMap returns v as a *Map, or a ScriptError if v isn't one (the
// empty list also counts as the empty map, matching their equality rule).
func AssertMap(v Value, argName string) (*Map, error) {
	if m, ok := v.(*Map); ok {
		return m, nil
	}
	if l, ok := v.(*List); ok && len(l.contents) == 0 {
		return NewMap(nil), nil
	}
	return nil, assertTypeError(v, argName, "a map")
}

// AssertList returns v's list-view as a *List (wrapping scalars and maps
// the way AsList does), or a ScriptError — lists never actually fail this
// assertion since every Value has a list-view, but the helper is provided
// for parity with the other Assert* functions.
func AssertList(v Value, argName string) (*List, error) {
	if l, ok := v.(*List); ok {
		return l, nil
	}
	return NewList(v.AsList(), v.Separator(), v.HasBrackets()), nil
}

// AssertBoolean returns v as a *Boolean, or a ScriptError if v isn't one.
func AssertBoolean(v Value, argName string) (*Boolean, error) {
	if b, ok := v.(*Boolean); ok {
		return b, nil
	}
	return nil, assertTypeError(v, argName, "a boolean")
}

// AssertCalculation returns v as a *Calculation, or a ScriptError if v isn't one.
func AssertCalculation(v Value, argName string) (*Calculation, error) {
	if c, ok := v.(*Calculation); ok {
		return c, nil
	}
	return nil, assertTypeError(v, argName, "a calculation")
}

// AssertFunction returns v as a *Function, or a ScriptError if v isn't one.
func AssertFunction(v Value, argName string) (*Function, error) {
	if f, ok := v.(*Function); ok {
		return f, nil
	}
	return nil, assertTypeError(v, argName, "a function reference")
}

// AssertArgumentList returns v as an *ArgumentList, or a ScriptError.
func AssertArgumentList(v Value, argName string) (*ArgumentList, error) {
	if a, ok := v.(*ArgumentList); ok {
		return a, nil
	}
	return nil, assertTypeError(v, argName, "an argument list")
}

// hashCombine mixes h2 into h1 order-sensitively (FNV-1a style), used by
// List and Map so that structurally-equal ordered collections hash equal.
func hashCombine(h1, h2 uint64) uint64 {
	h1 *= 1099511628211
	h1 ^= h2
	h1 *= 1099511628211
	return h1
}
