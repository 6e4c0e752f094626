package value

// Boolean is one of exactly two process-lifetime singletons; there is no
// way to construct a third Boolean value. true and false never need more
// than one allocation each for the lifetime of the process.
type Boolean struct {
	b bool
}

var (
	trueValue  = &Boolean{b: true}
	falseValue = &Boolean{b: false}
)

// BooleanOf returns the shared true or false singleton; it never allocates.
func BooleanOf(b bool) *Boolean {
	if b {
		return trueValue
	}
	return falseValue
}

// True and False are the two Boolean singletons.
var (
	True  = trueValue
	False = falseValue
)

// BoolValue returns the underlying Go bool.
func (b *Boolean) BoolValue() bool { return b.b }

func (b *Boolean) And(other Value) Value { return And(b, other) }
func (b *Boolean) Or(other Value) Value  { return Or(b, other) }

func (b *Boolean) TypeName() string         { return "bool" }
func (b *Boolean) IsTruthy() bool           { return b.b }
func (b *Boolean) IsBlank() bool            { return false }
func (b *Boolean) Separator() ListSeparator { return SeparatorUndecided }
func (b *Boolean) HasBrackets() bool        { return false }
func (b *Boolean) AsList() []Value          { return []Value{b} }
func (b *Boolean) RealNull() Value          { return b }
func (b *Boolean) Accept(v Visitor) (any, error) {
	return v.VisitBoolean(b)
}

func (b *Boolean) Equal(other Value) bool {
	o, ok := other.(*Boolean)
	return ok && o.b == b.b
}

func (b *Boolean) Hash() uint64 {
	if b.b {
		return 1
	}
	return 0
}

func (b *Boolean) ToCSSString(inspect bool) (string, error) {
	if b.b {
		return "true", nil
	}
	return "false", nil
}

// Null is the single null singleton.
type Null struct{}

var nullValue = &Null{}

// NullValue returns the Null singleton.
func NullValue() *Null { return nullValue }

func (n *Null) TypeName() string         { return "null" }
func (n *Null) IsTruthy() bool           { return false }
func (n *Null) IsBlank() bool            { return true }
func (n *Null) Separator() ListSeparator { return SeparatorUndecided }
func (n *Null) HasBrackets() bool        { return false }
func (n *Null) AsList() []Value          { return []Value{n} }
func (n *Null) RealNull() Value          { return n }
func (n *Null) Accept(v Visitor) (any, error) {
	return v.VisitNull(n)
}

func (n *Null) Equal(other Value) bool {
	_, ok := other.(*Null)
	return ok
}

func (n *Null) Hash() uint64 { return 0 }

func (n *Null) ToCSSString(inspect bool) (string, error) {
	if inspect {
		return "null", nil
	}
	return "", nil
}
