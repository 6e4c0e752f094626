package value

import "testing"

func TestFunctionEqualityByHandleIdentity(t *testing.T) {
	handle1 := new(int)
	handle2 := new(int)
	f1 := NewFunction("foo", handle1)
	f1Again := NewFunction("foo", handle1)
	f2 := NewFunction("foo", handle2)

	if !f1.Equal(f1Again) {
		t.Error("functions sharing a handle should be equal")
	}
	if f1.Equal(f2) {
		t.Error("functions with distinct handles should not be equal")
	}
}

func TestFunctionAssertCompileContext(t *testing.T) {
	ctxA, ctxB := new(int), new(int)
	f := NewFunctionWithContext("foo", new(int), ctxA)

	if _, err := f.AssertCompileContext(ctxA); err != nil {
		t.Errorf("matching context should succeed, got %v", err)
	}
	if _, err := f.AssertCompileContext(ctxB); err == nil {
		t.Error("mismatched context should raise")
	}

	unscoped := NewFunction("bar", new(int))
	if _, err := unscoped.AssertCompileContext(ctxB); err != nil {
		t.Errorf("a function with no compile context should never raise, got %v", err)
	}
}

func TestFunctionToCSSStringRequiresInspect(t *testing.T) {
	f := NewFunction("foo", new(int))
	if _, err := f.ToCSSString(false); err == nil {
		t.Error("expected plain CSS serialization of a function reference to fail")
	}
	s, err := f.ToCSSString(true)
	if err != nil || s != `get-function("foo")` {
		t.Errorf("ToCSSString(inspect) = %q, %v", s, err)
	}
}

func TestMixinMirrorsFunction(t *testing.T) {
	handle := new(int)
	m1 := NewMixin("my-mixin", handle)
	m2 := NewMixin("my-mixin", handle)
	if !m1.Equal(m2) {
		t.Error("mixins sharing a handle should be equal")
	}
	s, err := m1.ToCSSString(true)
	if err != nil || s != `get-mixin("my-mixin")` {
		t.Errorf("ToCSSString(inspect) = %q, %v", s, err)
	}
}
