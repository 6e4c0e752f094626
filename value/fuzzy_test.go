package value

import (
	"math"
	"testing"
)

func TestFuzzyEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"exact", 1.0, 1.0, true},
		{"within epsilon", 1.0, 1.0 + Epsilon/2, true},
		{"outside epsilon", 1.0, 1.1, false},
		{"both NaN are not fuzzy-equal", math.NaN(), math.NaN(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FuzzyEquals(tt.a, tt.b); got != tt.want {
				t.Errorf("FuzzyEquals(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFuzzyComparisons(t *testing.T) {
	if !FuzzyLessThan(1.0, 2.0) {
		t.Error("expected 1.0 < 2.0")
	}
	if FuzzyLessThan(1.0, 1.0) {
		t.Error("expected 1.0 not< 1.0")
	}
	if !FuzzyLessThanOrEquals(1.0, 1.0+Epsilon/2) {
		t.Error("expected fuzzy-equal values to satisfy <=")
	}
	if !FuzzyGreaterThan(2.0, 1.0) {
		t.Error("expected 2.0 > 1.0")
	}
	if !FuzzyGreaterThanOrEquals(1.0, 1.0) {
		t.Error("expected 1.0 >= 1.0")
	}
}

func TestFuzzyIsIntAndAsInt(t *testing.T) {
	if !FuzzyIsInt(3.0) {
		t.Error("expected 3.0 to be fuzzy-int")
	}
	if !FuzzyIsInt(3.0 + Epsilon/2) {
		t.Error("expected near-3.0 to be fuzzy-int")
	}
	if FuzzyIsInt(3.5) {
		t.Error("expected 3.5 to not be fuzzy-int")
	}
	iv, ok := FuzzyAsInt(4.0)
	if !ok || iv != 4 {
		t.Errorf("FuzzyAsInt(4.0) = %v, %v; want 4, true", iv, ok)
	}
	if _, ok := FuzzyAsInt(4.5); ok {
		t.Error("expected FuzzyAsInt(4.5) to fail")
	}
}

func TestFuzzyRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.5, 3},
		{-2.5, -3},
		{2.4, 2},
		{-2.4, -2},
		{0, 0},
	}
	for _, tt := range tests {
		if got := FuzzyRound(tt.in); got != tt.want {
			t.Errorf("FuzzyRound(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFuzzyCheckRange(t *testing.T) {
	v, ok := FuzzyCheckRange(1.0-Epsilon/2, 1.0, 2.0)
	if !ok || v != 1.0 {
		t.Errorf("FuzzyCheckRange snapping to min = %v, %v; want 1.0, true", v, ok)
	}
	v, ok = FuzzyCheckRange(2.0+Epsilon/2, 1.0, 2.0)
	if !ok || v != 2.0 {
		t.Errorf("FuzzyCheckRange snapping to max = %v, %v; want 2.0, true", v, ok)
	}
	if _, ok := FuzzyCheckRange(5.0, 1.0, 2.0); ok {
		t.Error("expected out-of-range value to fail")
	}
}

func TestFuzzyHashCode(t *testing.T) {
	if FuzzyHashCode(1.0) != FuzzyHashCode(1.0+Epsilon/2) {
		t.Error("expected fuzzy-equal values to hash equal")
	}
	if FuzzyHashCode(1.0) == FuzzyHashCode(2.0) {
		t.Error("expected distinct values to (almost certainly) hash differently")
	}
}

func TestModuloLikeSass(t *testing.T) {
	tests := []struct {
		name    string
		a, b    float64
		want    float64
		wantNaN bool
	}{
		{"both positive", 7, 3, 1, false},
		{"negative dividend", -7, 3, 2, false},
		{"negative divisor", 7, -3, -2, false},
		{"zero divisor", 7, 0, 0, true},
		{"infinite divisor, differing signs", -7, math.Inf(1), -7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ModuloLikeSass(tt.a, tt.b)
			if tt.wantNaN {
				if !math.IsNaN(got) {
					t.Errorf("ModuloLikeSass(%v, %v) = %v, want NaN", tt.a, tt.b, got)
				}
				return
			}
			if !FuzzyEquals(got, tt.want) {
				t.Errorf("ModuloLikeSass(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
