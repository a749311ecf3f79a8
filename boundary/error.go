package boundary

import (
	"fmt"
	"time"
)

// RenderError records one recovered render failure. The boundary stores and
// displays it; it never interprets the recovered value beyond formatting.
type RenderError struct {
	// Value is the recovered panic value, kept as-is.
	Value any

	// Scope names the wrapped subtree, for diagnostics only.
	Scope string

	// Stack is the goroutine stack captured at the recovery point.
	Stack []byte

	// At is when the failure was recovered.
	At time.Time
}

func newRenderError(value any, scope string) *RenderError {
	return &RenderError{
		Value: value,
		Scope: scope,
		Stack: captureStack(),
		At:    time.Now().UTC(),
	}
}

// Message returns the human-readable text of the recovered value.
func (e *RenderError) Message() string {
	switch v := e.Value.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (e *RenderError) Error() string {
	if e.Scope == "" {
		return "render failure: " + e.Message()
	}
	return fmt.Sprintf("render failure in %s: %s", e.Scope, e.Message())
}

// Unwrap exposes the recovered value when it was itself an error, so
// errors.Is and errors.As keep working across the boundary.
func (e *RenderError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
