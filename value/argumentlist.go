package value

import "sync/atomic"

// ArgumentList is a List carrying an additional keyword bag, used to
// represent `args...` captures. keywordsAccessed is a one-shot flag: once
// set (via the public Keywords accessor) it never clears, which is why it's
// safe to model as a plain atomic bool despite the value's overall
// immutability.
type ArgumentList struct {
	*List
	keywords         map[string]Value
	keywordsAccessed atomic.Bool
}

// NewArgumentList builds an ArgumentList from its positional contents and
// its keyword bag (keyed by name without the leading `$`/marker).
func NewArgumentList(contents []Value, separator ListSeparator, hasBrackets bool, keywords map[string]Value) *ArgumentList {
	kw := make(map[string]Value, len(keywords))
	for k, v := range keywords {
		kw[k] = v
	}
	return &ArgumentList{List: NewList(contents, separator, hasBrackets), keywords: kw}
}

// Keywords returns the keyword bag and marks keywordsAccessed. The
// evaluator consults KeywordsAccessed to decide whether unconsumed keyword
// arguments should raise an error.
func (a *ArgumentList) Keywords() map[string]Value {
	a.keywordsAccessed.Store(true)
	return a.peekKeywords()
}

// PeekKeywords returns the same mapping as Keywords without marking it
// accessed, for callers that need to look without consenting to the
// "all keywords considered used" contract.
func (a *ArgumentList) PeekKeywords() map[string]Value {
	return a.peekKeywords()
}

func (a *ArgumentList) peekKeywords() map[string]Value {
	out := make(map[string]Value, len(a.keywords))
	for k, v := range a.keywords {
		out[k] = v
	}
	return out
}

// KeywordsAccessed reports whether Keywords has ever been called.
func (a *ArgumentList) KeywordsAccessed() bool {
	return a.keywordsAccessed.Load()
}

func (a *ArgumentList) TypeName() string { return "arglist" }

// Accept must be redeclared (rather than relying on the embedded List's
// method) so that visitors see VisitArgumentList instead of VisitList.
func (a *ArgumentList) Accept(v Visitor) (any, error) {
	return v.VisitArgumentList(a)
}
