package value

import "testing"

func TestStringEqualityIgnoresQuotes(t *testing.T) {
	q := NewQuotedString("foo")
	u := NewUnquotedString("foo")
	if !q.Equal(u) {
		t.Error(`"foo" should equal foo`)
	}
	if q.Hash() != u.Hash() {
		t.Error(`"foo" and foo should hash equal`)
	}
}

func TestStringSassLengthIsCodePoints(t *testing.T) {
	s := NewUnquotedString("héllo")
	if got := s.SassLength(); got != 5 {
		t.Errorf("SassLength() = %d, want 5 (code points, not bytes)", got)
	}
	// Calling twice should hit the cache and return the same answer.
	if got := s.SassLength(); got != 5 {
		t.Errorf("cached SassLength() = %d, want 5", got)
	}
}

func TestSassIndexToCodePointIndex(t *testing.T) {
	s := NewUnquotedString("abcde")
	tests := []struct {
		idx     int
		want    int
		wantErr bool
	}{
		{1, 0, false},
		{5, 4, false},
		{-1, 4, false},
		{-5, 0, false},
		{0, 0, true},
		{6, 0, true},
		{-6, 0, true},
	}
	for _, tt := range tests {
		got, err := s.SassIndexToCodePointIndex(tt.idx, "")
		if (err != nil) != tt.wantErr {
			t.Errorf("index %d: err = %v, wantErr %v", tt.idx, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("index %d = %d, want %d", tt.idx, got, tt.want)
		}
	}
}

func TestIsVar(t *testing.T) {
	if !NewUnquotedString("var(--foo)").IsVar() {
		t.Error("expected var(--foo) to be recognized")
	}
	if !NewUnquotedString("VAR(--foo)").IsVar() {
		t.Error("expected case-insensitive match")
	}
	if NewQuotedString("var(--foo)").IsVar() {
		t.Error("a quoted string can never be a var() reference")
	}
	if NewUnquotedString("color").IsVar() {
		t.Error("plain text should not match")
	}
}

func TestIsSpecialNumber(t *testing.T) {
	for _, text := range []string{"calc(1px)", "clamp(1px, 2px, 3px)", "env(safe-area)", "max(1px, 2px)", "min(1px, 2px)"} {
		if !NewUnquotedString(text).IsSpecialNumber() {
			t.Errorf("expected %q to be a special number", text)
		}
	}
	if NewUnquotedString("lighten(red, 10%)").IsSpecialNumber() {
		t.Error("lighten(...) is not a special number")
	}
}

func TestStringPlusPreservesLeftQuoteState(t *testing.T) {
	result, err := NewQuotedString("foo").plus(NewUnquotedString("bar"))
	if err != nil {
		t.Fatalf("plus error: %v", err)
	}
	s := result.(*String)
	if s.Text() != "foobar" || !s.HasQuotes() {
		t.Errorf("plus result = %+v, want quoted foobar", s)
	}
}

func TestStringToCSSStringQuoting(t *testing.T) {
	s, err := NewQuotedString(`say "hi"`).ToCSSString(false)
	if err != nil || s != `"say \"hi\""` {
		t.Errorf("ToCSSString = %q, %v", s, err)
	}
	u, err := NewUnquotedString("bold").ToCSSString(false)
	if err != nil || u != "bold" {
		t.Errorf("ToCSSString(unquoted) = %q, %v", u, err)
	}
}

func TestStringIsBlank(t *testing.T) {
	if !NewUnquotedString("").IsBlank() {
		t.Error("the empty unquoted string should be blank")
	}
	if NewQuotedString("").IsBlank() {
		t.Error("the empty quoted string is not blank")
	}
}
