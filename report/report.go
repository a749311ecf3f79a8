package report

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Failure is one contained render failure, ready for emission.
type Failure struct {
	ID      string
	At      time.Time
	Scope   string
	Mode    string
	Message string
	Stack   string
}

// Reporter receives one Failure per contained failure. Implementations must
// tolerate any failure value and must not panic; the boundary guards the
// call regardless.
type Reporter interface {
	Report(ctx context.Context, f Failure) error
}

// NewID returns a fresh failure id.
func NewID() string { return uuid.NewString() }

// Multi fans a failure out to several sinks. A panicking or failing sink
// never stops the others; errors are joined.
type Multi []Reporter

func (m Multi) Report(ctx context.Context, f Failure) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := reportGuarded(ctx, r, f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func reportGuarded(ctx context.Context, r Reporter, f Failure) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.New("reporter panicked")
		}
	}()
	return r.Report(ctx, f)
}
