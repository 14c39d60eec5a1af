package expand

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNoSeeds         = errors.New("seed list is empty")
	ErrNilExpander     = errors.New("expander is nil")
	ErrBlankSeed       = errors.New("seed ID is blank")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrNeighborFetch   = errors.New("neighbor fetch failed")
)

// ExpandError provides structured error information for engine failures.
type ExpandError struct {
	Op    string // Operation that failed (e.g., "Run", "NewEngine")
	Node  NodeID // Node being expanded (if applicable)
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *ExpandError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("%s node %s: %v", e.Op, e.Node, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ExpandError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *ExpandError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}
