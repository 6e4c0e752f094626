package value

import "testing"

func TestPlusDispatch(t *testing.T) {
	sum, err := Plus(NewUnitlessNumber(1), NewUnitlessNumber(2))
	if err != nil {
		t.Fatalf("Plus(1, 2) error: %v", err)
	}
	n, ok := sum.(*Number)
	if !ok || !FuzzyEquals(n.Value(), 3) {
		t.Errorf("Plus(1, 2) = %v, want 3", sum)
	}

	concat, err := Plus(NewUnquotedString("foo"), NewUnquotedString("bar"))
	if err != nil {
		t.Fatalf("Plus(foo, bar) error: %v", err)
	}
	s, ok := concat.(*String)
	if !ok || s.Text() != "foobar" {
		t.Errorf("Plus(foo, bar) = %v, want foobar", concat)
	}

	// The facade default: anything else concatenates via CSS serialization.
	def, err := Plus(True, NewUnquotedString("x"))
	if err != nil {
		t.Fatalf("Plus(true, x) error: %v", err)
	}
	if ds, ok := def.(*String); !ok || ds.Text() != "truex" {
		t.Errorf("Plus(true, x) = %v, want truex", def)
	}
}

func TestMinusTimesDividedByNumber(t *testing.T) {
	diff, err := Minus(NewUnitlessNumber(5), NewUnitlessNumber(2))
	if err != nil || !FuzzyEquals(diff.(*Number).Value(), 3) {
		t.Errorf("Minus(5, 2) = %v, %v", diff, err)
	}

	prod, err := Times(NewUnitlessNumber(5), NewUnitlessNumber(2))
	if err != nil || !FuzzyEquals(prod.(*Number).Value(), 10) {
		t.Errorf("Times(5, 2) = %v, %v", prod, err)
	}

	quot, err := DividedBy(NewSingleUnitNumber(4, "px"), NewSingleUnitNumber(2, "px"))
	if err != nil {
		t.Fatalf("DividedBy error: %v", err)
	}
	qn := quot.(*Number)
	if !FuzzyEquals(qn.Value(), 0.5) || qn.HasUnits() {
		t.Errorf("DividedBy(4px, 2px) = %v, want unitless 0.5", quot)
	}
}

func TestModuloOnlyNumber(t *testing.T) {
	if _, err := Modulo(True, False); err == nil {
		t.Error("expected Modulo on booleans to raise")
	}
	m, err := Modulo(NewUnitlessNumber(7), NewUnitlessNumber(3))
	if err != nil || !FuzzyEquals(m.(*Number).Value(), 1) {
		t.Errorf("Modulo(7, 3) = %v, %v", m, err)
	}
}

func TestUnaryOperators(t *testing.T) {
	neg, err := UnaryMinus(NewUnitlessNumber(5))
	if err != nil || !FuzzyEquals(neg.(*Number).Value(), -5) {
		t.Errorf("UnaryMinus(5) = %v, %v", neg, err)
	}
	if UnaryNot(False) != True {
		t.Error("UnaryNot(false) should be the True singleton")
	}
	if UnaryNot(NewUnitlessNumber(0)) != False {
		t.Error("UnaryNot(0) should be false: numbers are always truthy")
	}
}

func TestAndOr(t *testing.T) {
	if And(False, True) != False {
		t.Error("And(false, true) should short-circuit to false")
	}
	if And(True, False) != False {
		t.Error("And(true, false) should evaluate to its second operand")
	}
	if Or(True, False) != True {
		t.Error("Or(true, false) should short-circuit to true")
	}
	if Or(False, True) != True {
		t.Error("Or(false, true) should evaluate to its second operand")
	}
}

func TestRelationalOperators(t *testing.T) {
	gt, err := GreaterThan(NewUnitlessNumber(2), NewUnitlessNumber(1))
	if err != nil || gt != True {
		t.Errorf("GreaterThan(2, 1) = %v, %v", gt, err)
	}
	if _, err := GreaterThan(True, False); err == nil {
		t.Error("expected GreaterThan on booleans to raise")
	}
}

func TestAssertions(t *testing.T) {
	if _, err := AssertNumber(NewUnitlessNumber(1), "x"); err != nil {
		t.Errorf("AssertNumber on a number errored: %v", err)
	}
	if _, err := AssertNumber(True, "x"); err == nil {
		t.Error("expected AssertNumber on a boolean to fail")
	} else if se, ok := err.(*ScriptError); !ok || se.ArgName != "x" {
		t.Errorf("expected a ScriptError naming arg x, got %v", err)
	}

	m, err := AssertMap(NewList(nil, SeparatorUndecided, false), "m")
	if err != nil || m.Len() != 0 {
		t.Errorf("AssertMap on an empty list = %v, %v; want empty map", m, err)
	}
}

func TestHashCombineIsOrderSensitive(t *testing.T) {
	if hashCombine(1, 2) == hashCombine(2, 1) {
		t.Error("hashCombine should not be commutative")
	}
}
