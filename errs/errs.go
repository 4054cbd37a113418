// Package errs holds the error types returned across this module's
// construction and parsing surfaces. It follows the same shape used
// elsewhere in this codebase: package-level sentinel errors created with
// errors.New, and a small Error type that wraps one or more causes and
// is compatible with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidInitial is a cause of Error when a raw automaton names an
	// initial state outside the declared state count.
	ErrInvalidInitial = errors.New("initial state is not one of the automaton's states")

	// ErrInvalidFinal is a cause of Error when a raw automaton names a final
	// state outside the declared state count.
	ErrInvalidFinal = errors.New("final state is not one of the automaton's states")

	// ErrUnknownLetter is a cause of Error when a raw automaton's
	// transition table, or a regular expression, refers to a symbol that
	// is not a member of the declared alphabet.
	ErrUnknownLetter = errors.New("symbol is not a member of the alphabet")

	// ErrInvalidTransition is a cause of Error when a raw automaton's
	// transition table names a source or destination state outside the
	// declared state count.
	ErrInvalidTransition = errors.New("transition refers to a state that does not exist")
)

// Error is a typed error returned by the FromRaw family of constructors. It
// carries a human-readable message along with one or more causes; calling
// errors.Is against any of those causes returns true.
//
// Error should not be constructed directly; use New.
type Error struct {
	msg   string
	cause []error
}

// New creates an Error with the given message and causes. At least one
// cause should normally be one of the sentinel errors in this package, so
// that callers can use errors.Is to discriminate the failure kind.
func New(msg string, causes ...error) Error {
	e := Error{msg: msg}
	if len(causes) > 0 {
		e.cause = make([]error, len(causes))
		copy(e.cause, causes)
	}
	return e
}

// Error returns e's message, followed by the message of its first cause if
// one is set.
func (e Error) Error() string {
	if e.msg == "" && e.cause != nil {
		return e.cause[0].Error()
	}
	if e.cause != nil {
		return e.msg + ": " + e.cause[0].Error()
	}
	return e.msg
}

// Unwrap returns e's causes, or nil if none were set.
func (e Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

// Is reports whether target is e itself or one of e's causes.
func (e Error) Is(target error) bool {
	if errTarget, ok := target.(Error); ok {
		if e.msg == errTarget.msg && len(e.cause) == len(errTarget.cause) {
			allEqual := true
			for i := range e.cause {
				if e.cause[i] != errTarget.cause[i] {
					allEqual = false
					break
				}
			}
			if allEqual {
				return true
			}
		}
	}
	for _, c := range e.cause {
		if c == target {
			return true
		}
	}
	return false
}
