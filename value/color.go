package value

import (
	"fmt"
	"math"
	"sync/atomic"
)

type colorRepr int

const (
	reprRGB colorRepr = iota
	reprHSL
)

// rgbTriple and hslTriple hold a lazily-derived representation's three
// channels, cached behind an atomic pointer so concurrent readers never
// race on anything but a benign idempotent write.
type rgbTriple = [3]float64
type hslTriple = [3]float64

// Color holds exactly one of its two coordinate systems eagerly — the one
// it was constructed from — and derives the other on first access,
// matching the "enum ColorRepr { RgbKnown{..}, HslKnown{..} }" shape the
// design notes call for: no mutable subclass hierarchy, just one cache cell
// per direction of derivation.
type Color struct {
	repr  colorRepr
	r, g, b float64
	h, s, l float64
	alpha   float64

	rgbCache atomic.Pointer[rgbTriple]
	hslCache atomic.Pointer[hslTriple]
}

func clampChannel(v, min, max float64, name string) (float64, error) {
	snapped, ok := FuzzyCheckRange(v, min, max)
	if !ok {
		return 0, NewScriptErrorf("%v is not between %v and %v.", v, min, max).
			WithArgName(name).WithCategory(CategoryRange)
	}
	return snapped, nil
}

// NewRGB builds a Color from red/green/blue in [0, 255] and alpha in
// [0, 1], storing RGB eagerly and marking HSL for lazy derivation.
func NewRGB(r, g, b, alpha float64) (*Color, error) {
	rr, err := clampChannel(r, 0, 255, "red")
	if err != nil {
		return nil, err
	}
	gg, err := clampChannel(g, 0, 255, "green")
	if err != nil {
		return nil, err
	}
	bb, err := clampChannel(b, 0, 255, "blue")
	if err != nil {
		return nil, err
	}
	aa, err := clampChannel(alpha, 0, 1, "alpha")
	if err != nil {
		return nil, err
	}
	return &Color{repr: reprRGB, r: FuzzyRound(rr), g: FuzzyRound(gg), b: FuzzyRound(bb), alpha: aa}, nil
}

// NewHSL builds a Color from hue (modular-reduced into [0, 360)),
// saturation/lightness in [0, 100], and alpha in [0, 1], storing HSL
// eagerly and marking RGB for lazy derivation.
func NewHSL(h, s, l, alpha float64) (*Color, error) {
	hh := math.Mod(h, 360)
	if hh < 0 {
		hh += 360
	}
	ss, err := clampChannel(s, 0, 100, "saturation")
	if err != nil {
		return nil, err
	}
	ll, err := clampChannel(l, 0, 100, "lightness")
	if err != nil {
		return nil, err
	}
	aa, err := clampChannel(alpha, 0, 1, "alpha")
	if err != nil {
		return nil, err
	}
	return &Color{repr: reprHSL, h: hh, s: ss, l: ll, alpha: aa}, nil
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// hslToRGB implements the CSS3 HSL->RGB equations; h is degrees, s and l
// are percentages, the result is in [0, 255].
func hslToRGB(h, s, l float64) (r, g, b float64) {
	hh := h / 360
	ss := s / 100
	ll := l / 100
	if ss == 0 {
		return ll * 255, ll * 255, ll * 255
	}
	var q float64
	if ll < 0.5 {
		q = ll * (1 + ss)
	} else {
		q = ll + ss - ll*ss
	}
	p := 2*ll - q
	r = hueToRGB(p, q, hh+1.0/3) * 255
	g = hueToRGB(p, q, hh) * 255
	b = hueToRGB(p, q, hh-1.0/3) * 255
	return r, g, b
}

// rgbToHSL implements the CSS3 RGB->HSL equations; r, g, b are in
// [0, 255], the result is (degrees, percent, percent).
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	rr := r / 255
	gg := g / 255
	bb := b / 255
	max := math.Max(rr, math.Max(gg, bb))
	min := math.Min(rr, math.Min(gg, bb))
	l = (max + min) / 2
	if max == min {
		return 0, 0, l * 100
	}
	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case rr:
		h = (gg - bb) / d
		if gg < bb {
			h += 6
		}
	case gg:
		h = (bb-rr)/d + 2
	default:
		h = (rr-gg)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s * 100, l * 100
}

// rgb returns the RGB channels, deriving and caching them from HSL if c was
// constructed with NewHSL.
func (c *Color) rgb() (r, g, b float64) {
	if c.repr == reprRGB {
		return c.r, c.g, c.b
	}
	if cached := c.rgbCache.Load(); cached != nil {
		return cached[0], cached[1], cached[2]
	}
	r, g, b = hslToRGB(c.h, c.s, c.l)
	triple := rgbTriple{FuzzyRound(r), FuzzyRound(g), FuzzyRound(b)}
	c.rgbCache.Store(&triple)
	return triple[0], triple[1], triple[2]
}

// hsl returns the HSL channels, deriving and caching them from RGB if c was
// constructed with NewRGB.
func (c *Color) hsl() (h, s, l float64) {
	if c.repr == reprHSL {
		return c.h, c.s, c.l
	}
	if cached := c.hslCache.Load(); cached != nil {
		return cached[0], cached[1], cached[2]
	}
	h, s, l = rgbToHSL(c.r, c.g, c.b)
	triple := hslTriple{h, s, l}
	c.hslCache.Store(&triple)
	return triple[0], triple[1], triple[2]
}

// Red, Green, Blue return the integer-valued channels in [0, 255].
func (c *Color) Red() int64   { r, _, _ := c.rgb(); return int64(r) }
func (c *Color) Green() int64 { _, g, _ := c.rgb(); return int64(g) }
func (c *Color) Blue() int64  { _, _, b := c.rgb(); return int64(b) }

// Hue, Saturation, Lightness return the HSL channels.
func (c *Color) Hue() float64        { h, _, _ := c.hsl(); return h }
func (c *Color) Saturation() float64 { _, s, _ := c.hsl(); return s }
func (c *Color) Lightness() float64  { _, _, l := c.hsl(); return l }

// Alpha returns the alpha channel, in [0, 1].
func (c *Color) Alpha() float64 { return c.alpha }

// RGBChange describes a ChangeRGB request: nil fields keep c's existing
// (possibly derived) value for that channel.
type RGBChange struct {
	Red, Green, Blue, Alpha *float64
}

// ChangeRGB returns a fresh Color with the requested RGB overrides applied,
// forcing derivation of any channel left unspecified.
func (c *Color) ChangeRGB(ch RGBChange) (*Color, error) {
	r, g, b := c.rgb()
	a := c.alpha
	if ch.Red != nil {
		r = *ch.Red
	}
	if ch.Green != nil {
		g = *ch.Green
	}
	if ch.Blue != nil {
		b = *ch.Blue
	}
	if ch.Alpha != nil {
		a = *ch.Alpha
	}
	return NewRGB(r, g, b, a)
}

// HSLChange describes a ChangeHSL request: nil fields keep c's existing
// (possibly derived) value for that channel.
type HSLChange struct {
	Hue, Saturation, Lightness, Alpha *float64
}

// ChangeHSL returns a fresh Color with the requested HSL overrides applied,
// forcing derivation of any channel left unspecified.
func (c *Color) ChangeHSL(ch HSLChange) (*Color, error) {
	h, s, l := c.hsl()
	a := c.alpha
	if ch.Hue != nil {
		h = *ch.Hue
	}
	if ch.Saturation != nil {
		s = *ch.Saturation
	}
	if ch.Lightness != nil {
		l = *ch.Lightness
	}
	if ch.Alpha != nil {
		a = *ch.Alpha
	}
	return NewHSL(h, s, l, a)
}

// ChangeAlpha returns a fresh Color with only the alpha channel replaced,
// preserving whichever representation (RGB or HSL) c was built from.
func (c *Color) ChangeAlpha(alpha float64) (*Color, error) {
	aa, err := clampChannel(alpha, 0, 1, "alpha")
	if err != nil {
		return nil, err
	}
	if c.repr == reprRGB {
		return &Color{repr: reprRGB, r: c.r, g: c.g, b: c.b, alpha: aa}, nil
	}
	return &Color{repr: reprHSL, h: c.h, s: c.s, l: c.l, alpha: aa}, nil
}

func (c *Color) plus(other Value) (Value, error) {
	if _, ok := other.(*String); ok {
		return concatString(c, other, "")
	}
	return nil, undefinedOperation(c, other, "+")
}

func (c *Color) minus(other Value) (Value, error) {
	return nil, undefinedOperation(c, other, "-")
}

func (c *Color) times(other Value) (Value, error) {
	return nil, undefinedOperation(c, other, "*")
}

func (c *Color) dividedBy(other Value) (Value, error) {
	return nil, undefinedOperation(c, other, "/")
}

func (c *Color) TypeName() string         { return "color" }
func (c *Color) IsTruthy() bool           { return true }
func (c *Color) IsBlank() bool            { return false }
func (c *Color) Separator() ListSeparator { return SeparatorUndecided }
func (c *Color) HasBrackets() bool        { return false }
func (c *Color) AsList() []Value          { return []Value{c} }
func (c *Color) RealNull() Value          { return c }
func (c *Color) Accept(v Visitor) (any, error) {
	return v.VisitColor(c)
}

// Equal compares red, green, blue, and alpha, deriving RGB if necessary.
func (c *Color) Equal(other Value) bool {
	o, ok := other.(*Color)
	if !ok {
		return false
	}
	r1, g1, b1 := c.rgb()
	r2, g2, b2 := o.rgb()
	return FuzzyEquals(r1, r2) && FuzzyEquals(g1, g2) && FuzzyEquals(b1, b2) && FuzzyEquals(c.alpha, o.alpha)
}

func (c *Color) Hash() uint64 {
	r, g, b := c.rgb()
	h := FuzzyHashCode(r)
	h = hashCombine(h, FuzzyHashCode(g))
	h = hashCombine(h, FuzzyHashCode(b))
	h = hashCombine(h, FuzzyHashCode(c.alpha))
	return h
}

func (c *Color) ToCSSString(inspect bool) (string, error) {
	r, g, b := c.rgb()
	ri, gi, bi := int64(r), int64(g), int64(b)
	if FuzzyEquals(c.alpha, 1) {
		return fmt.Sprintf("rgb(%d, %d, %d)", ri, gi, bi), nil
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", ri, gi, bi, formatCSSNumber(c.alpha)), nil
}
