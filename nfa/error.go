// Package nfa compiles regular-expression syntax trees into nondeterministic
// finite automata with epsilon transitions, and eliminates the epsilon
// transitions afterwards.
//
// Construction is Thompson-style: one recursive rule per operator, composing
// sub-automata with epsilon bridges. Intersection is realized by a
// synchronized product over the two operands' reachable states. The machine
// is only built and normalized here; it is never executed against input.
package nfa

import (
	"errors"
	"fmt"
)

// Common construction errors
var (
	// ErrUnknownNode indicates a syntax-tree node variant the compiler does
	// not recognize. This is an upstream contract violation, not a user error.
	ErrUnknownNode = errors.New("unknown syntax node")

	// ErrInitialPair indicates the intersection product did not yield exactly
	// one initial state pair. This is an internal construction bug.
	ErrInitialPair = errors.New("intersection product requires exactly one initial state pair")

	// ErrNoStart indicates a machine was finished without a valid start state
	ErrNoStart = errors.New("start state not set")
)

// CompileError wraps compilation errors with the offending expression
type CompileError struct {
	Expr string
	Err  error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Expr != "" {
		return fmt.Sprintf("NFA compilation failed for %q: %v", e.Expr, e.Err)
	}
	return fmt.Sprintf("NFA compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError represents an error during machine construction via the Builder API
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}
