package errgroup

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Plasma-Engine/plasma-engine-shared/shared/log"
	"github.com/Plasma-Engine/plasma-engine-shared/shared/runtime"
)

// ErrPanicRecovered wraps the panic value seized from a goroutine in the group.
var ErrPanicRecovered = errors.New("errgroup: panic recovered")

// Group runs a set of goroutines under a shared cancellation context. The
// first error any goroutine returns cancels that context and becomes the
// result of Wait; later errors are discarded.
//
// The zero value is usable; it has no cancellation context of its own.
type Group struct {
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	errOnce sync.Once
	err     error
	logger  log.Logger
}

// WithContext returns a new Group and a derived context. The derived context
// is canceled when the first goroutine in the Group fails or when Wait
// returns, whichever occurs first.
func WithContext(ctx context.Context) (*Group, context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	return &Group{ctx: ctx, cancel: cancel}, ctx
}

// SetLogger sets an optional logger used when a recovered panic is reported.
func (grp *Group) SetLogger(logger log.Logger) {
	if grp == nil {
		return
	}

	grp.logger = logger
}

// effectiveCtx falls back to context.Background() for zero-value Groups not
// created via WithContext.
func (grp *Group) effectiveCtx() context.Context {
	if grp.ctx == nil {
		return context.Background()
	}

	return grp.ctx
}

// Go starts fn on a new goroutine in the Group. The first non-nil error
// returned by any goroutine is recorded and triggers cancellation of the
// group context. A panic inside fn is recovered, reported through the
// configured logger and the active span, and surfaces from Wait wrapped in
// ErrPanicRecovered.
func (grp *Group) Go(fn func() error) {
	grp.wg.Add(1)

	go func() {
		defer grp.wg.Done()
		defer func() {
			if recovered := recover(); recovered != nil {
				runtime.HandlePanicValue(grp.effectiveCtx(), grp.logger, recovered, "errgroup")

				grp.recordErr(fmt.Errorf("%w: %v", ErrPanicRecovered, recovered))
			}
		}()

		if err := fn(); err != nil {
			grp.recordErr(err)
		}
	}()
}

// Wait blocks until every goroutine in the Group has completed, cancels the
// group context and returns the first error recorded by Go, if any.
func (grp *Group) Wait() error {
	grp.wg.Wait()

	if grp.cancel != nil {
		grp.cancel()
	}

	return grp.err
}

// recordErr stores the first error and cancels the group context.
func (grp *Group) recordErr(err error) {
	grp.errOnce.Do(func() {
		grp.err = err

		if grp.cancel != nil {
			grp.cancel()
		}
	})
}
