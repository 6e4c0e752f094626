package value

import (
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// caseFold is used for the case-insensitive ASCII prefix checks the special
// number/var predicates need, rather than a hand-rolled strings.ToLower
// loop.
var caseFold = cases.Fold()

// String is SassScript's text value: immutable text plus a quoted/unquoted
// flag. Equality and hashing ignore the flag: "foo" == foo.
type String struct {
	text      string
	hasQuotes bool
	length    atomic.Int64 // -1 until computed, then the code-point count
}

var (
	emptyQuoted   = newString("", true)
	emptyUnquoted = newString("", false)
)

func newString(text string, hasQuotes bool) *String {
	s := &String{text: text, hasQuotes: hasQuotes}
	s.length.Store(-1)
	return s
}

// NewQuotedString builds a quoted String, reusing the empty-quoted
// singleton for "".
func NewQuotedString(text string) *String {
	if text == "" {
		return emptyQuoted
	}
	return newString(text, true)
}

// NewUnquotedString builds an unquoted String, reusing the empty-unquoted
// singleton for "".
func NewUnquotedString(text string) *String {
	if text == "" {
		return emptyUnquoted
	}
	return newString(text, false)
}

// Text returns the raw text.
func (s *String) Text() string { return s.text }

// HasQuotes reports whether s is a quoted string.
func (s *String) HasQuotes() bool { return s.hasQuotes }

// SassLength returns the Unicode code-point count of s's text, caching the
// result after the first call. The cache is written at most once with the
// same value from any racing goroutine, so no lock is required.
func (s *String) SassLength() int {
	if cached := s.length.Load(); cached >= 0 {
		return int(cached)
	}
	n := utf8.RuneCountInString(s.text)
	s.length.Store(int64(n))
	return n
}

// SassIndexToCodePointIndex converts a 1-based, possibly negative-from-end
// Sass string index into a 0-based code-point index. Index 0 is always
// invalid; an absolute value greater than SassLength() is invalid.
func (s *String) SassIndexToCodePointIndex(sassIndex int, argName string) (int, error) {
	length := s.SassLength()
	if sassIndex == 0 {
		return 0, s.indexError(sassIndex, argName)
	}
	abs := sassIndex
	if abs < 0 {
		abs = -abs
	}
	if abs > length {
		return 0, s.indexError(sassIndex, argName)
	}
	if sassIndex > 0 {
		return sassIndex - 1, nil
	}
	return length + sassIndex, nil
}

func (s *String) indexError(sassIndex int, argName string) *ScriptError {
	err := NewScriptErrorf("Invalid index %d for a string with %d characters.", sassIndex, s.SassLength()).
		WithCategory(CategoryIndex)
	if argName != "" {
		err = err.WithArgName(argName)
	}
	return err
}

func hasFoldedPrefix(text, prefix string) bool {
	if len(text) < len(prefix) {
		return false
	}
	return caseFold.String(text[:len(prefix)]) == prefix
}

// IsVar reports whether s is unquoted and looks like a CSS var() reference.
func (s *String) IsVar() bool {
	return !s.hasQuotes && len(s.text) >= len("var(--_)") && hasFoldedPrefix(s.text, "var(")
}

// IsSpecialNumber reports whether s is unquoted and looks like one of the
// CSS functions whose value can't be known until browser evaluation.
func (s *String) IsSpecialNumber() bool {
	if s.hasQuotes || len(s.text) < len("min(_)") {
		return false
	}
	for _, prefix := range []string{"calc(", "clamp(", "var(", "env(", "max(", "min("} {
		if hasFoldedPrefix(s.text, prefix) {
			return true
		}
	}
	return false
}

func (s *String) plus(other Value) (Value, error) {
	var otherText string
	if os, ok := other.(*String); ok {
		otherText = os.text
	} else {
		t, err := other.ToCSSString(false)
		if err != nil {
			return nil, err
		}
		otherText = t
	}
	return newString(s.text+otherText, s.hasQuotes), nil
}

func quoteString(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte('"')
	for _, r := range text {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

func (s *String) TypeName() string         { return "string" }
func (s *String) IsTruthy() bool           { return true }
func (s *String) IsBlank() bool            { return !s.hasQuotes && s.text == "" }
func (s *String) Separator() ListSeparator { return SeparatorUndecided }
func (s *String) HasBrackets() bool        { return false }
func (s *String) AsList() []Value          { return []Value{s} }
func (s *String) RealNull() Value          { return s }
func (s *String) Accept(v Visitor) (any, error) {
	return v.VisitString(s)
}

// Equal ignores HasQuotes: "foo" == foo.
func (s *String) Equal(other Value) bool {
	o, ok := other.(*String)
	return ok && o.text == s.text
}

func (s *String) Hash() uint64 {
	return stringHash(s.text)
}

func (s *String) ToCSSString(inspect bool) (string, error) {
	if !s.hasQuotes {
		return s.text, nil
	}
	return quoteString(s.text), nil
}
