package value

import "fmt"

// ErrorCategory loosely classifies a ScriptError for callers that want to
// branch on the kind of failure without parsing the message text.
type ErrorCategory string

const (
	CategoryNone        ErrorCategory = ""
	CategoryUnit        ErrorCategory = "unit"
	CategoryRange       ErrorCategory = "range"
	CategoryOperation   ErrorCategory = "operation"
	CategoryIndex       ErrorCategory = "index"
	CategoryCalculation ErrorCategory = "calculation"
)

// ScriptError is a user-visible Sass error: every assertion failure, unit
// incompatibility, out-of-range index, disallowed operator combination, and
// calculation misuse raises one of these. It carries no source position —
// attaching one is the evaluator's job, not this core's.
type ScriptError struct {
	Message  string
	ArgName  string
	Category ErrorCategory
}

// NewScriptError builds a ScriptError with no associated argument name.
func NewScriptError(message string) *ScriptError {
	return &ScriptError{Message: message}
}

// NewScriptErrorf builds a ScriptError from a format string.
func NewScriptErrorf(format string, args ...any) *ScriptError {
	return &ScriptError{Message: fmt.Sprintf(format, args...)}
}

// WithArgName returns a copy of err naming the offending argument, rendered
// as "$name: message" by Error().
func (e *ScriptError) WithArgName(name string) *ScriptError {
	return &ScriptError{Message: e.Message, ArgName: name, Category: e.Category}
}

// WithCategory returns a copy of err tagged with the given category.
func (e *ScriptError) WithCategory(cat ErrorCategory) *ScriptError {
	return &ScriptError{Message: e.Message, ArgName: e.ArgName, Category: cat}
}

func (e *ScriptError) Error() string {
	if e.ArgName != "" {
		return fmt.Sprintf("$%s: %s", e.ArgName, e.Message)
	}
	return e.Message
}

// ArgumentError signals a programmer error — API misuse such as calling a
// variadic calculation factory with zero arguments, or handing a non-Value
// to one. Callers should not attempt to recover from these.
type ArgumentError struct {
	Message string
}

// NewArgumentError builds an ArgumentError.
func NewArgumentError(message string) *ArgumentError {
	return &ArgumentError{Message: message}
}

// NewArgumentErrorf builds an ArgumentError from a format string.
func NewArgumentErrorf(format string, args ...any) *ArgumentError {
	return &ArgumentError{Message: fmt.Sprintf(format, args...)}
}

func (e *ArgumentError) Error() string {
	return e.Message
}
