package parallel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// SettleGroup runs a set of functions concurrently and waits for every one of
// them to finish, success or failure. Unlike an errgroup, the first error does
// not cancel the remaining functions: all errors are collected and returned
// together from Wait.
type SettleGroup struct {
	ctx    context.Context
	cancel func()

	wg sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// Settle creates a group whose functions all run to completion.
func Settle(ctx context.Context, opts ...RunOption) *SettleGroup {
	rOpts := &runOptions{}
	for _, opt := range opts {
		opt(rOpts)
	}
	g := &SettleGroup{}
	if rOpts.timeout > 0 {
		g.ctx, g.cancel = context.WithTimeout(ctx, rOpts.timeout)
	} else {
		g.ctx, g.cancel = context.WithCancel(ctx)
	}
	return g
}

// Go calls the given function in a new goroutine. A non-nil error is recorded
// but does not cancel the group. A panic inside fn is recovered and recorded
// as an error.
func (g *SettleGroup) Go(fn func(ctx context.Context) error) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				g.record(fmt.Errorf("panic: %v", r))
			}
		}()
		if err := fn(g.ctx); err != nil {
			g.record(err)
		}
	}()
}

// Wait blocks until all function calls from the Go method have returned, then
// returns every recorded error joined together, or nil when all succeeded.
func (g *SettleGroup) Wait() error {
	g.wg.Wait()
	if g.cancel != nil {
		g.cancel()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}

func (g *SettleGroup) record(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

// RunOption .
type RunOption func(opts *runOptions)

type runOptions struct {
	timeout time.Duration
}

// WithTimeout bounds how long the whole group may run.
func WithTimeout(timeout time.Duration) RunOption {
	return func(opts *runOptions) {
		opts.timeout = timeout
	}
}
