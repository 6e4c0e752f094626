package value

import "fmt"

// CallableHandle is opaque to this core: the host hands one to NewFunction
// or NewMixin, and the core only ever compares two handles with == or
// hashes their string form. Handles must be comparable (a pointer, or a
// small struct of comparable fields) — the design notes call this out as
// "a pointer-sized identifier".
type CallableHandle any

func handleHash(h CallableHandle) uint64 {
	return stringHash(fmt.Sprintf("%v", h))
}

// Function wraps an opaque callable handle, optionally scoped to a single
// compilation via a compile-context token.
type Function struct {
	name           string
	handle         CallableHandle
	compileContext CallableHandle
}

// NewFunction builds a Function with no compile-context restriction.
func NewFunction(name string, handle CallableHandle) *Function {
	return &Function{name: name, handle: handle}
}

// NewFunctionWithContext builds a Function scoped to compileContext:
// AssertCompileContext will raise unless invoked with a matching token.
func NewFunctionWithContext(name string, handle, compileContext CallableHandle) *Function {
	return &Function{name: name, handle: handle, compileContext: compileContext}
}

// Name returns the function's declared name, for error messages.
func (f *Function) Name() string { return f.name }

// Handle returns the opaque callable handle the host supplied.
func (f *Function) Handle() CallableHandle { return f.handle }

// AssertCompileContext returns f if it carries no compile-context token or
// the token matches current; otherwise it raises a ScriptError, preventing
// a callable captured during one compilation from leaking into another.
func (f *Function) AssertCompileContext(current CallableHandle) (*Function, error) {
	if f.compileContext == nil || f.compileContext == current {
		return f, nil
	}
	return nil, NewScriptError("does not belong to current compilation.")
}

func (f *Function) TypeName() string         { return "function" }
func (f *Function) IsTruthy() bool           { return true }
func (f *Function) IsBlank() bool            { return false }
func (f *Function) Separator() ListSeparator { return SeparatorUndecided }
func (f *Function) HasBrackets() bool        { return false }
func (f *Function) AsList() []Value          { return []Value{f} }
func (f *Function) RealNull() Value          { return f }
func (f *Function) Accept(v Visitor) (any, error) {
	return v.VisitFunction(f)
}

func (f *Function) Equal(other Value) bool {
	o, ok := other.(*Function)
	return ok && o.handle == f.handle
}

func (f *Function) Hash() uint64 { return handleHash(f.handle) }

func (f *Function) ToCSSString(inspect bool) (string, error) {
	if !inspect {
		return "", NewScriptErrorf("%s isn't a valid CSS value.", f.name)
	}
	return fmt.Sprintf("get-function(%s)", quoteString(f.name)), nil
}

// Mixin wraps an opaque callable handle the same way Function does, for
// @include references passed around as values (e.g. meta.get-mixin()).
type Mixin struct {
	name           string
	handle         CallableHandle
	compileContext CallableHandle
}

// NewMixin builds a Mixin with no compile-context restriction.
func NewMixin(name string, handle CallableHandle) *Mixin {
	return &Mixin{name: name, handle: handle}
}

// NewMixinWithContext builds a Mixin scoped to compileContext.
func NewMixinWithContext(name string, handle, compileContext CallableHandle) *Mixin {
	return &Mixin{name: name, handle: handle, compileContext: compileContext}
}

// Name returns the mixin's declared name.
func (m *Mixin) Name() string { return m.name }

// Handle returns the opaque callable handle the host supplied.
func (m *Mixin) Handle() CallableHandle { return m.handle }

// AssertCompileContext mirrors Function.AssertCompileContext.
func (m *Mixin) AssertCompileContext(current CallableHandle) (*Mixin, error) {
	if m.compileContext == nil || m.compileContext == current {
		return m, nil
	}
	return nil, NewScriptError("does not belong to current compilation.")
}

func (m *Mixin) TypeName() string         { return "mixin" }
func (m *Mixin) IsTruthy() bool           { return true }
func (m *Mixin) IsBlank() bool            { return false }
func (m *Mixin) Separator() ListSeparator { return SeparatorUndecided }
func (m *Mixin) HasBrackets() bool        { return false }
func (m *Mixin) AsList() []Value          { return []Value{m} }
func (m *Mixin) RealNull() Value          { return m }
func (m *Mixin) Accept(v Visitor) (any, error) {
	return v.VisitMixin(m)
}

func (m *Mixin) Equal(other Value) bool {
	o, ok := other.(*Mixin)
	return ok && o.handle == m.handle
}

func (m *Mixin) Hash() uint64 { return handleHash(m.handle) }

func (m *Mixin) ToCSSString(inspect bool) (string, error) {
	if !inspect {
		return "", NewScriptErrorf("%s isn't a valid CSS value.", m.name)
	}
	return fmt.Sprintf("get-mixin(%s)", quoteString(m.name)), nil
}
