package value

import "testing"

func TestConversionFactor(t *testing.T) {
	f, ok := ConversionFactor("px", "in")
	if !ok {
		t.Fatal("expected px/in to be convertible")
	}
	// 1in == 96px, so ConversionFactor(px, in) == 96.
	if !FuzzyEquals(f, 96) {
		t.Errorf("ConversionFactor(px, in) = %v, want 96", f)
	}

	if _, ok := ConversionFactor("px", "s"); ok {
		t.Error("expected px/s to be reported incompatible")
	}
	if _, ok := ConversionFactor("px", "foo"); ok {
		t.Error("expected an unknown unit to be reported incompatible")
	}
	if f, ok := ConversionFactor("foo", "foo"); !ok || f != 1 {
		t.Errorf("identical unknown units should trivially convert 1:1, got %v, %v", f, ok)
	}
}

func TestCanonicalMultiplierAgreesWithConversionFactor(t *testing.T) {
	// 1in and 2.54cm must canonicalize to the same quantity.
	inCanonical := 1.0 * CanonicalMultiplierFor("in")
	cmCanonical := 2.54 * CanonicalMultiplierFor("cm")
	if !FuzzyEquals(inCanonical, cmCanonical) {
		t.Errorf("1in canonical = %v, 2.54cm canonical = %v; want equal", inCanonical, cmCanonical)
	}
}

func TestUnitsByType(t *testing.T) {
	if UnitsByType("px") != "length" {
		t.Errorf("UnitsByType(px) = %q, want length", UnitsByType("px"))
	}
	if UnitsByType("deg") != "angle" {
		t.Errorf("UnitsByType(deg) = %q, want angle", UnitsByType("deg"))
	}
	if UnitsByType("bogus") != "" {
		t.Errorf("UnitsByType(bogus) = %q, want empty", UnitsByType("bogus"))
	}
}

func TestCanonicalSignature(t *testing.T) {
	a := canonicalSignature([]string{"px", "deg"})
	b := canonicalSignature([]string{"deg", "s"})
	if signaturesEqual(a, b) {
		t.Error("px+deg should not have the same signature as deg+s")
	}
	c := canonicalSignature([]string{"in", "deg"})
	if !signaturesEqual(a, c) {
		t.Error("px+deg and in+deg should canonicalize to the same signature (both length+angle)")
	}

	unknown1 := canonicalSignature([]string{"custom-unit"})
	unknown2 := canonicalSignature([]string{"custom-unit"})
	if !signaturesEqual(unknown1, unknown2) {
		t.Error("identical unknown units should produce equal signatures")
	}
	unknownOther := canonicalSignature([]string{"other-unit"})
	if signaturesEqual(unknown1, unknownOther) {
		t.Error("distinct unknown units should not produce equal signatures")
	}
}
