package value

import "testing"

func TestScriptErrorFormatting(t *testing.T) {
	err := NewScriptError("not a number.")
	if err.Error() != "not a number." {
		t.Errorf("Error() = %q, want %q", err.Error(), "not a number.")
	}

	named := err.WithArgName("width")
	if named.Error() != "$width: not a number." {
		t.Errorf("Error() = %q, want %q", named.Error(), "$width: not a number.")
	}
	// WithArgName must not mutate the receiver.
	if err.ArgName != "" {
		t.Error("WithArgName mutated the original ScriptError")
	}

	categorized := named.WithCategory(CategoryRange)
	if categorized.Category != CategoryRange {
		t.Errorf("Category = %q, want %q", categorized.Category, CategoryRange)
	}
	if categorized.ArgName != "width" {
		t.Error("WithCategory should preserve ArgName")
	}
}

func TestScriptErrorf(t *testing.T) {
	err := NewScriptErrorf("Expected %d, got %d.", 1, 2)
	if err.Error() != "Expected 1, got 2." {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestArgumentError(t *testing.T) {
	err := NewArgumentErrorf("%s() requires at least one argument.", "min")
	if err.Error() != "min() requires at least one argument." {
		t.Errorf("Error() = %q", err.Error())
	}
}
