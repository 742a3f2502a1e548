/*
Package ruleparse is a small library for defining grammars out of composable rules
and matching text prefixes against them.

Consists of subpackages:
  - scheme: rule storage, rule builders, forward declarations, matcher, and scheme dump;
  - cmd/rulematch: console utility matching its argument against sample grammars.

Typical usage is:

1. Create a scheme; it owns every rule of one grammar.

2. Build rules using scheme methods, passing returned handles as children of other rules.
Use forward declarations for rules that refer to themselves or to rules defined later,
and resolve every forward declaration before matching.

3. Match input text against any rule handle. Matching is anchored at the start of the input
and reports the number of consumed bytes; compare it with the input length to check
whole-input acceptance.

Any construction error poisons the scheme: all its rules are discarded
and every subsequent operation returns the same error.
*/
package ruleparse

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	SchemeErrors = 1   // scheme construction errors, these poison the scheme
	MatchErrors  = 101 // matching errors, these leave the scheme intact
)

// Error is the error type used by ruleparse subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message.
	Message string
}

// NewError creates new Error structure.
func NewError(code int, msg string) *Error {
	return &Error{code, msg}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// Class returns the error class the code belongs to, i.e. SchemeErrors or MatchErrors.
func (e *Error) Class() int {
	return (e.Code-1)/100*100 + 1
}

// FormatError creates Error structure.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg)
}
