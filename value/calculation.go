package value

import (
	"math"
	"strings"
)

// CalcNode is one node of a Calculation's argument tree: a *Number, an
// unquoted *String (a var() reference), a *CalcInterpolation, a nested
// *Calculation, or a *CalcOperation. It is intentionally just `any` rather
// than a closed interface with a marker method — every one of those
// concrete types already has its own identity, and the simplification and
// serialization routines below dispatch on it with a type switch anyway.
type CalcNode any

// CalcOperator is one of the four binary calculation operators.
type CalcOperator byte

const (
	CalcAdd CalcOperator = '+'
	CalcSub CalcOperator = '-'
	CalcMul CalcOperator = '*'
	CalcDiv CalcOperator = '/'
)

// CalcOperation is an internal calculation-tree node: operator plus two
// operand nodes.
type CalcOperation struct {
	Operator    CalcOperator
	Left, Right CalcNode
}

// CalcInterpolation is a string leaf injected into a calculation tree via
// interpolation; it requires parenthesization when used as an operand.
type CalcInterpolation struct {
	Text string
}

// Calculation is the tagged tree built by calc(), min(), max(), clamp(),
// and friends: a name plus an ordered, immutable argument sequence. The
// only way to build one is through the named factories below, which
// enforce CSS calculation simplification: a calculation that can be
// reduced to a plain number at construction time always is.
type Calculation struct {
	name      string
	arguments []CalcNode
}

// Name returns the calculation's function name ("calc", "min", ...).
func (c *Calculation) Name() string { return c.name }

// Arguments returns a copy of the argument tree's top-level nodes.
func (c *Calculation) Arguments() []CalcNode {
	return append([]CalcNode(nil), c.arguments...)
}

// --- Argument simplification ---------------------------------------------

// simplifyArgument rewrites a single raw argument: Number,
// CalcOperation, and CalcInterpolation pass through unchanged; an unquoted
// String passes through, a quoted one is a script error; a bare calc()
// unwraps to its sole argument, any other Calculation passes through; any
// other Value is a script error (it isn't a calculation-legal kind); and
// anything that isn't even a Value (a host bug, not a Sass bug) is an
// ArgumentError.
func simplifyArgument(arg CalcNode) (CalcNode, error) {
	switch t := arg.(type) {
	case *Number, *CalcOperation, *CalcInterpolation:
		return t, nil
	case *String:
		if t.HasQuotes() {
			return nil, NewScriptError("Quoted string can't be used in a calculation.").WithCategory(CategoryCalculation)
		}
		return t, nil
	case *Calculation:
		if t.name == "calc" && len(t.arguments) == 1 {
			return t.arguments[0], nil
		}
		return t, nil
	case Value:
		return nil, NewScriptErrorf("Value %s can't be used in a calculation.", describe(t)).WithCategory(CategoryCalculation)
	default:
		return nil, NewArgumentErrorf("%v is not a valid calculation argument.", t)
	}
}

// Simplify applies simplifyArgument to every element of args, the shared
// routine every named factory funnels its raw arguments through before
// applying its own value-simplification rule.
func Simplify(args []CalcNode) ([]CalcNode, error) {
	out := make([]CalcNode, len(args))
	for i, a := range args {
		s, err := simplifyArgument(a)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// preflightUnits rejects Numbers with complex units (more than one
// numerator, or any denominator) and any pair of Numbers known to be
// definitely incompatible, the check every wrapping factory runs before
// building a Calculation node.
func preflightUnits(nodes ...CalcNode) error {
	var numbers []*Number
	for _, n := range nodes {
		if num, ok := n.(*Number); ok {
			if num.HasComplexUnits() {
				return NewScriptErrorf("%s isn't compatible with CSS calculations.", describe(num)).WithCategory(CategoryCalculation)
			}
			numbers = append(numbers, num)
		}
	}
	for i := 0; i < len(numbers); i++ {
		for j := i + 1; j < len(numbers); j++ {
			if !numbers[i].HasPossiblyCompatibleUnits(numbers[j]) {
				return NewScriptErrorf("%s and %s are incompatible.", describe(numbers[i]), describe(numbers[j])).WithCategory(CategoryCalculation)
			}
		}
	}
	return nil
}

func isVarString(n CalcNode) bool {
	s, ok := n.(*String)
	return ok && s.IsVar()
}

func anyIsVarString(nodes []CalcNode) bool {
	for _, n := range nodes {
		if isVarString(n) {
			return true
		}
	}
	return false
}

// --- calc() ---------------------------------------------------------

// Calc implements the single-argument calc() factory: if the simplified
// argument is already a Number or a Calculation, it's returned directly
// (no wrapping needed); otherwise it's wrapped in a new "calc" Calculation.
func Calc(arg CalcNode) (Value, error) {
	simplified, err := simplifyArgument(arg)
	if err != nil {
		return nil, err
	}
	switch v := simplified.(type) {
	case *Number:
		return v, nil
	case *Calculation:
		return v, nil
	}
	if err := preflightUnits(simplified); err != nil {
		return nil, err
	}
	return &Calculation{name: "calc", arguments: []CalcNode{simplified}}, nil
}

// --- min()/max()/hypot() -------------------------------------------------

func reduceMinMaxHypot(name string, args []CalcNode, reduce func(values []float64) float64) (Value, error) {
	if len(args) == 0 {
		return nil, NewArgumentErrorf("%s() requires at least one argument.", name)
	}
	simplified, err := Simplify(args)
	if err != nil {
		return nil, err
	}
	if err := preflightUnits(simplified...); err != nil {
		return nil, err
	}

	numbers := make([]*Number, len(simplified))
	allNumbers := true
	for i, a := range simplified {
		n, ok := a.(*Number)
		if !ok {
			allNumbers = false
			break
		}
		numbers[i] = n
	}

	if allNumbers {
		compatible := true
		for i := 1; i < len(numbers); i++ {
			if !numbers[0].HasCompatibleUnits(numbers[i]) {
				compatible = false
				break
			}
		}
		if compatible {
			values := make([]float64, len(numbers))
			values[0] = numbers[0].value
			for i := 1; i < len(numbers); i++ {
				v, err := numbers[i].CoerceValueToMatch(numbers[0])
				if err != nil {
					return nil, err
				}
				values[i] = v
			}
			result := reduce(values)
			return &Number{value: result, numerators: numbers[0].numerators, denominators: numbers[0].denominators}, nil
		}
	}

	return &Calculation{name: name, arguments: simplified}, nil
}

// Min implements the min() factory.
func Min(args []CalcNode) (Value, error) {
	return reduceMinMaxHypot("min", args, func(values []float64) float64 {
		m := values[0]
		for _, v := range values[1:] {
			if FuzzyLessThan(v, m) {
				m = v
			}
		}
		return m
	})
}

// Max implements the max() factory.
func Max(args []CalcNode) (Value, error) {
	return reduceMinMaxHypot("max", args, func(values []float64) float64 {
		m := values[0]
		for _, v := range values[1:] {
			if FuzzyGreaterThan(v, m) {
				m = v
			}
		}
		return m
	})
}

// Hypot implements the hypot() factory, with a pre-flight rejection of any
// argument carrying a "%" unit.
func Hypot(args []CalcNode) (Value, error) {
	for _, a := range args {
		if n, ok := a.(*Number); ok && n.HasUnit("%") {
			return nil, NewScriptError(`"%" isn't a valid unit for hypot().`).WithCategory(CategoryCalculation)
		}
	}
	return reduceMinMaxHypot("hypot", args, func(values []float64) float64 {
		sum := 0.0
		for _, v := range values {
			sum += v * v
		}
		return math.Sqrt(sum)
	})
}

// --- unary math functions -------------------------------------------------

func unaryMathFunc(name string, arg CalcNode, requireFullyUnitless bool, fn func(float64) float64) (Value, error) {
	simplified, err := simplifyArgument(arg)
	if err != nil {
		return nil, err
	}
	if n, ok := simplified.(*Number); ok {
		eligible := !n.HasUnit("%")
		if eligible && requireFullyUnitless {
			eligible = !n.HasUnits()
		}
		if eligible {
			return NewUnitlessNumber(fn(n.value)), nil
		}
	}
	if err := preflightUnits(simplified); err != nil {
		return nil, err
	}
	return &Calculation{name: name, arguments: []CalcNode{simplified}}, nil
}

func Sqrt(arg CalcNode) (Value, error) { return unaryMathFunc("sqrt", arg, true, math.Sqrt) }
func Sin(arg CalcNode) (Value, error)  { return unaryMathFunc("sin", arg, false, math.Sin) }
func Cos(arg CalcNode) (Value, error)  { return unaryMathFunc("cos", arg, false, math.Cos) }
func Tan(arg CalcNode) (Value, error)  { return unaryMathFunc("tan", arg, false, math.Tan) }
func Atan(arg CalcNode) (Value, error) { return unaryMathFunc("atan", arg, true, math.Atan) }
func Asin(arg CalcNode) (Value, error) { return unaryMathFunc("asin", arg, true, math.Asin) }
func Acos(arg CalcNode) (Value, error) { return unaryMathFunc("acos", arg, true, math.Acos) }
func Exp(arg CalcNode) (Value, error)  { return unaryMathFunc("exp", arg, true, math.Exp) }

// Abs implements the abs() factory: it evaluates directly for any Number,
// but emits a deprecation warning first when that Number carries a "%"
// unit (percentages are meaningless outside a containing-value context,
// and direct evaluation here is scheduled for removal).
func Abs(arg CalcNode) (Value, error) {
	simplified, err := simplifyArgument(arg)
	if err != nil {
		return nil, err
	}
	if n, ok := simplified.(*Number); ok {
		if n.HasUnit("%") {
			warn("Passing percentage units to the global abs() function is deprecated.", DeprecationPercentInCalc)
		}
		return &Number{value: math.Abs(n.value), numerators: n.numerators, denominators: n.denominators}, nil
	}
	if err := preflightUnits(simplified); err != nil {
		return nil, err
	}
	return &Calculation{name: "abs", arguments: []CalcNode{simplified}}, nil
}

// Sign implements the sign() factory: ±1 (preserving units) for finite
// non-zero Numbers, the argument unchanged for NaN or zero, wraps otherwise.
func Sign(arg CalcNode) (Value, error) {
	simplified, err := simplifyArgument(arg)
	if err != nil {
		return nil, err
	}
	if n, ok := simplified.(*Number); ok {
		if math.IsNaN(n.value) || n.value == 0 {
			return n, nil
		}
		if !math.IsInf(n.value, 0) {
			sign := 1.0
			if n.value < 0 {
				sign = -1
			}
			return &Number{value: sign, numerators: n.numerators, denominators: n.denominators}, nil
		}
	}
	if err := preflightUnits(simplified); err != nil {
		return nil, err
	}
	return &Calculation{name: "sign", arguments: []CalcNode{simplified}}, nil
}

// --- clamp() ----------------------------------------------------------

// Clamp implements the clamp(min, value, max) factory. Exactly 3 arguments
// are required unless one of them is a var() string, in which case any
// count is allowed (the call can't be resolved until the var is expanded).
func Clamp(args []CalcNode) (Value, error) {
	simplified, err := Simplify(args)
	if err != nil {
		return nil, err
	}
	if len(simplified) != 3 {
		if !anyIsVarString(simplified) {
			return nil, NewArgumentError("clamp() requires exactly 3 arguments.")
		}
		if err := preflightUnits(simplified...); err != nil {
			return nil, err
		}
		return &Calculation{name: "clamp", arguments: simplified}, nil
	}

	min, minOK := simplified[0].(*Number)
	val, valOK := simplified[1].(*Number)
	max, maxOK := simplified[2].(*Number)
	if minOK && valOK && maxOK && min.HasCompatibleUnits(val) && min.HasCompatibleUnits(max) {
		valInMin, err := val.CoerceValueToMatch(min)
		if err != nil {
			return nil, err
		}
		maxInMin, err := max.CoerceValueToMatch(min)
		if err != nil {
			return nil, err
		}
		switch {
		case FuzzyLessThanOrEquals(valInMin, min.value):
			return min, nil
		case FuzzyGreaterThanOrEquals(valInMin, maxInMin):
			return max, nil
		default:
			return val, nil
		}
	}

	if err := preflightUnits(simplified...); err != nil {
		return nil, err
	}
	return &Calculation{name: "clamp", arguments: simplified}, nil
}

// --- pow()/log()/atan2() -------------------------------------------------

// Pow implements the pow(base, exponent) factory.
func Pow(args []CalcNode) (Value, error) {
	simplified, err := Simplify(args)
	if err != nil {
		return nil, err
	}
	if len(simplified) != 2 {
		if !anyIsVarString(simplified) {
			return nil, NewArgumentError("pow() requires exactly 2 arguments.")
		}
		if err := preflightUnits(simplified...); err != nil {
			return nil, err
		}
		return &Calculation{name: "pow", arguments: simplified}, nil
	}
	base, baseOK := simplified[0].(*Number)
	exp, expOK := simplified[1].(*Number)
	if baseOK && expOK && !base.HasUnits() && !exp.HasUnits() {
		return NewUnitlessNumber(math.Pow(base.value, exp.value)), nil
	}
	if err := preflightUnits(simplified...); err != nil {
		return nil, err
	}
	return &Calculation{name: "pow", arguments: simplified}, nil
}

// Log implements the log(number, base?) factory.
func Log(args []CalcNode) (Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, NewArgumentError("log() requires 1 or 2 arguments.")
	}
	simplified, err := Simplify(args)
	if err != nil {
		return nil, err
	}
	number, numOK := simplified[0].(*Number)
	if len(simplified) == 1 {
		if numOK && !number.HasUnits() {
			return NewUnitlessNumber(math.Log(number.value)), nil
		}
		if err := preflightUnits(simplified...); err != nil {
			return nil, err
		}
		return &Calculation{name: "log", arguments: simplified}, nil
	}
	base, baseOK := simplified[1].(*Number)
	if numOK && baseOK && !number.HasUnits() && !base.HasUnits() {
		return NewUnitlessNumber(math.Log(number.value) / math.Log(base.value)), nil
	}
	if err := preflightUnits(simplified...); err != nil {
		return nil, err
	}
	return &Calculation{name: "log", arguments: simplified}, nil
}

// Atan2 implements the atan2(y, x) factory.
func Atan2(y, x CalcNode) (Value, error) {
	simplified, err := Simplify([]CalcNode{y, x})
	if err != nil {
		return nil, err
	}
	yn, yok := simplified[0].(*Number)
	xn, xok := simplified[1].(*Number)
	if yok && xok && !yn.HasUnit("%") && !xn.HasUnit("%") && yn.HasCompatibleUnits(xn) {
		xv, err := xn.CoerceValueToMatch(yn)
		if err != nil {
			return nil, err
		}
		return NewUnitlessNumber(math.Atan2(yn.value, xv)), nil
	}
	if err := preflightUnits(simplified...); err != nil {
		return nil, err
	}
	return &Calculation{name: "atan2", arguments: simplified}, nil
}

// --- rem()/mod() ----------------------------------------------------

// remLikeSass computes CSS rem()'s remainder: the ModuloLikeSass result,
// adjusted by subtracting the modulus when the operands' signs differ and
// the modulus is finite. In that case a zero ModuloLikeSass result is
// returned as -0, whichever operand is the negative one.
func remLikeSass(a, b float64) float64 {
	result := ModuloLikeSass(a, b)
	signsDiffer := (a < 0) != (b < 0)
	if !signsDiffer || math.IsInf(b, 0) {
		return result
	}
	if result == 0 {
		return math.Copysign(0, -1)
	}
	return result - b
}

func remModFactory(name string, args []CalcNode, fn func(a, b float64) float64) (Value, error) {
	if len(args) != 2 {
		return nil, NewArgumentErrorf("%s() requires exactly 2 arguments.", name)
	}
	simplified, err := Simplify(args)
	if err != nil {
		return nil, err
	}
	dividend, dOK := simplified[0].(*Number)
	modulus, mOK := simplified[1].(*Number)
	if dOK && mOK && dividend.HasCompatibleUnits(modulus) {
		mv, err := modulus.CoerceValueToMatch(dividend)
		if err != nil {
			return nil, err
		}
		result := fn(dividend.value, mv)
		return &Number{value: result, numerators: dividend.numerators, denominators: dividend.denominators}, nil
	}
	if err := preflightUnits(simplified...); err != nil {
		return nil, err
	}
	return &Calculation{name: name, arguments: simplified}, nil
}

// Rem implements the rem() factory.
func Rem(args []CalcNode) (Value, error) { return remModFactory("rem", args, remLikeSass) }

// Mod implements the mod() factory.
func Mod(args []CalcNode) (Value, error) { return remModFactory("mod", args, ModuloLikeSass) }

// --- round() ------------------------------------------------------------

func isRoundStrategy(s string) bool {
	switch s {
	case "nearest", "up", "down", "to-zero":
		return true
	}
	return false
}

func applyRoundStrategy(strategy string, number, step float64) float64 {
	if math.IsNaN(number) || math.IsNaN(step) || step == 0 {
		return math.NaN()
	}
	if math.IsInf(step, 0) {
		switch strategy {
		case "up":
			if number > 0 {
				return math.Inf(1)
			}
			return 0
		case "down":
			if number < 0 {
				return math.Inf(-1)
			}
			return 0
		case "to-zero":
			return 0
		default:
			if math.IsInf(number, 0) {
				return number
			}
			return 0
		}
	}
	if math.IsInf(number, 0) {
		return number
	}
	ratio := number / step
	var rounded float64
	switch strategy {
	case "up":
		rounded = math.Ceil(ratio)
	case "down":
		rounded = math.Floor(ratio)
	case "to-zero":
		rounded = math.Trunc(ratio)
	default:
		rounded = FuzzyRound(ratio)
	}
	return rounded * step
}

// Round implements the polymorphic round() factory: round(number),
// round(number, step), or round(strategy, number, step).
func Round(args []CalcNode) (Value, error) {
	var strategy string
	var numberArg, stepArg CalcNode
	implicitStep := false

	switch len(args) {
	case 1:
		strategy = "nearest"
		numberArg = args[0]
		stepArg = NewUnitlessNumber(1)
		implicitStep = true
	case 2:
		if s, ok := args[0].(*String); ok {
			if !isRoundStrategy(s.Text()) {
				return nil, NewArgumentErrorf("%q is not a valid round() strategy.", s.Text())
			}
			strategy = s.Text()
			numberArg = args[1]
			stepArg = NewUnitlessNumber(1)
			implicitStep = true
		} else {
			strategy = "nearest"
			numberArg = args[0]
			stepArg = args[1]
		}
	case 3:
		s, ok := args[0].(*String)
		if !ok || !isRoundStrategy(s.Text()) {
			return nil, NewArgumentError("round() with 3 arguments requires a strategy keyword first.")
		}
		strategy = s.Text()
		numberArg = args[1]
		stepArg = args[2]
	default:
		return nil, NewArgumentError("round() requires 1, 2, or 3 arguments.")
	}

	simplifiedNum, err := simplifyArgument(numberArg)
	if err != nil {
		return nil, err
	}
	simplifiedStep, err := simplifyArgument(stepArg)
	if err != nil {
		return nil, err
	}
	number, numOK := simplifiedNum.(*Number)
	if numOK && implicitStep {
		// The implicit step of 1 is taken in the number's own units.
		simplifiedStep = &Number{value: 1, numerators: number.numerators, denominators: number.denominators}
	}
	step, stepOK := simplifiedStep.(*Number)
	if numOK && stepOK && number.HasCompatibleUnits(step) {
		sv, err := step.CoerceValueToMatch(number)
		if err != nil {
			return nil, err
		}
		result := applyRoundStrategy(strategy, number.value, sv)
		return &Number{value: result, numerators: number.numerators, denominators: number.denominators}, nil
	}

	if err := preflightUnits(simplifiedNum, simplifiedStep); err != nil {
		return nil, err
	}
	return &Calculation{name: "round", arguments: []CalcNode{NewUnquotedString(strategy), simplifiedNum, simplifiedStep}}, nil
}

// --- operate() ------------------------------------------------------

// Operate implements the binary calculation-tree constructor used to build
// CalcOperation nodes: if op is + or - and both sides are Numbers with
// compatible units, it returns the arithmetic result directly; if not but
// the right side is a negative Number, it normalizes +(-n) into -n before
// wrapping; if op is * or / and both sides are Numbers, it evaluates
// directly; otherwise it wraps as a CalcOperation node.
func Operate(op CalcOperator, left, right CalcNode) (CalcNode, error) {
	simplifiedLeft, err := simplifyArgument(left)
	if err != nil {
		return nil, err
	}
	simplifiedRight, err := simplifyArgument(right)
	if err != nil {
		return nil, err
	}
	ln, lok := simplifiedLeft.(*Number)
	rn, rok := simplifiedRight.(*Number)

	switch op {
	case CalcAdd, CalcSub:
		if lok && rok && ln.HasCompatibleUnits(rn) {
			rv, err := rn.CoerceValueToMatch(ln)
			if err != nil {
				return nil, err
			}
			result := ln.value + rv
			if op == CalcSub {
				result = ln.value - rv
			}
			return &Number{value: result, numerators: ln.numerators, denominators: ln.denominators}, nil
		}
		if rok && rn.value < 0 {
			negated := &Number{value: -rn.value, numerators: rn.numerators, denominators: rn.denominators}
			flipped := CalcSub
			if op == CalcSub {
				flipped = CalcAdd
			}
			if err := preflightUnits(simplifiedLeft, negated); err != nil {
				return nil, err
			}
			return &CalcOperation{Operator: flipped, Left: simplifiedLeft, Right: negated}, nil
		}
		if err := preflightUnits(simplifiedLeft, simplifiedRight); err != nil {
			return nil, err
		}
		return &CalcOperation{Operator: op, Left: simplifiedLeft, Right: simplifiedRight}, nil

	case CalcMul, CalcDiv:
		if lok && rok {
			var numerators, denominators []string
			var result float64
			if op == CalcMul {
				result = ln.value * rn.value
				numerators = append(append([]string(nil), ln.numerators...), rn.numerators...)
				denominators = append(append([]string(nil), ln.denominators...), rn.denominators...)
			} else {
				result = ln.value / rn.value
				numerators = append(append([]string(nil), ln.numerators...), rn.denominators...)
				denominators = append(append([]string(nil), ln.denominators...), rn.numerators...)
			}
			return NewNumberWithUnits(result, numerators, denominators), nil
		}
		if err := preflightUnits(simplifiedLeft, simplifiedRight); err != nil {
			return nil, err
		}
		return &CalcOperation{Operator: op, Left: simplifiedLeft, Right: simplifiedRight}, nil

	default:
		return nil, NewArgumentErrorf("Unknown calculation operator %q.", byte(op))
	}
}

// --- Value interface ------------------------------------------------

func (c *Calculation) plus(other Value) (Value, error) {
	if _, ok := other.(*String); ok {
		return concatString(c, other, "")
	}
	return nil, undefinedOperation(c, other, "+")
}

func (c *Calculation) TypeName() string         { return "calculation" }
func (c *Calculation) IsTruthy() bool           { return true }
func (c *Calculation) IsBlank() bool            { return false }
func (c *Calculation) Separator() ListSeparator { return SeparatorUndecided }
func (c *Calculation) HasBrackets() bool        { return false }
func (c *Calculation) AsList() []Value          { return []Value{c} }
func (c *Calculation) RealNull() Value          { return c }
func (c *Calculation) Accept(v Visitor) (any, error) {
	return v.VisitCalculation(c)
}

func calcNodeEqual(a, b CalcNode) bool {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Equal(bv)
	case *String:
		bv, ok := b.(*String)
		return ok && av.Equal(bv)
	case *Calculation:
		bv, ok := b.(*Calculation)
		return ok && av.Equal(bv)
	case *CalcInterpolation:
		bv, ok := b.(*CalcInterpolation)
		return ok && av.Text == bv.Text
	case *CalcOperation:
		bv, ok := b.(*CalcOperation)
		return ok && av.Operator == bv.Operator && calcNodeEqual(av.Left, bv.Left) && calcNodeEqual(av.Right, bv.Right)
	default:
		return false
	}
}

// Equal implements structural equality over the whole tree: same name, same
// argument count, pairwise-equal arguments. This is what makes re-simplifying
// a calculation's own arguments checkable for idempotence: F(A) ==
// F(arguments_of(F(A))) compares two Calculations this way.
func (c *Calculation) Equal(other Value) bool {
	o, ok := other.(*Calculation)
	if !ok || c.name != o.name || len(c.arguments) != len(o.arguments) {
		return false
	}
	for i := range c.arguments {
		if !calcNodeEqual(c.arguments[i], o.arguments[i]) {
			return false
		}
	}
	return true
}

func calcNodeHash(n CalcNode) uint64 {
	switch v := n.(type) {
	case *Number:
		return v.Hash()
	case *String:
		return v.Hash()
	case *Calculation:
		return v.Hash()
	case *CalcInterpolation:
		return stringHash(v.Text)
	case *CalcOperation:
		return hashCombine(hashCombine(uint64(v.Operator), calcNodeHash(v.Left)), calcNodeHash(v.Right))
	default:
		return 0
	}
}

func (c *Calculation) Hash() uint64 {
	h := stringHash(c.name)
	for _, a := range c.arguments {
		h = hashCombine(h, calcNodeHash(a))
	}
	return h
}

func calcNodeToCSS(n CalcNode, inspect bool) (string, error) {
	switch v := n.(type) {
	case *Number:
		return v.ToCSSString(inspect)
	case *String:
		return v.ToCSSString(inspect)
	case *Calculation:
		return v.ToCSSString(inspect)
	case *CalcInterpolation:
		return "(" + v.Text + ")", nil
	case *CalcOperation:
		l, err := calcNodeToCSS(v.Left, inspect)
		if err != nil {
			return "", err
		}
		r, err := calcNodeToCSS(v.Right, inspect)
		if err != nil {
			return "", err
		}
		return l + " " + string(rune(v.Operator)) + " " + r, nil
	default:
		return "", NewArgumentError("unrecognized calculation node")
	}
}

func (c *Calculation) ToCSSString(inspect bool) (string, error) {
	parts := make([]string, len(c.arguments))
	for i, a := range c.arguments {
		s, err := calcNodeToCSS(a, inspect)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return c.name + "(" + strings.Join(parts, ", ") + ")", nil
}
