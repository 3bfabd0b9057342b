package coffin

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/tomb.v2"
)

// Coffin tracks a group of goroutines. It is a tomb.Tomb which turns panics of
// its goroutines into errors and which can be waited on even if nothing was started.
type Coffin interface {
	// Alive returns true if the coffin is not in a dying or dead state.
	Alive() bool
	// Dying returns the channel that can be used to wait until Kill is called.
	Dying() <-chan struct{}
	// Go runs f in a new goroutine and tracks its termination. A returned error or a
	// panic kills the coffin.
	Go(f func() error)
	// Gof is like Go, but wraps the returned error with the given message.
	Gof(f func() error, msg string, args ...any)
	// GoWithContext is like Go, but passes the given context to f.
	GoWithContext(ctx context.Context, f func(ctx context.Context) error)
	Kill(reason error)
	// Wait blocks until all goroutines have finished running and returns the reason for their death.
	Wait() error
}

type coffin struct {
	// tomb.Tomb contains a mutex, never copy it
	tomb        *tomb.Tomb
	markRunning func()
}

func New() Coffin {
	tmb := new(tomb.Tomb)

	return &coffin{
		tomb:        tmb,
		markRunning: prepareTomb(tmb),
	}
}

// WithContext returns a new coffin that is killed when the parent context is canceled
// together with a context which is done as soon as the coffin is dying.
func WithContext(parent context.Context) (Coffin, context.Context) {
	tmb, ctx := tomb.WithContext(parent)

	cfn := &coffin{
		tomb:        tmb,
		markRunning: prepareTomb(tmb),
	}

	return cfn, ctx
}

// RunLabeled runs f and turns a panic into an error carrying the label.
func RunLabeled(ctx context.Context, label string, f func()) {
	defer func() {
		if err := ResolveRecovery(recover()); err != nil {
			panic(errors.WithMessage(err, label))
		}
	}()

	f()
}

func prepareTomb(tmb *tomb.Tomb) func() {
	once := &sync.Once{}
	ch := make(chan struct{})

	tmb.Go(func() error {
		<-ch

		return nil
	})

	return func() {
		once.Do(func() {
			close(ch)
		})
	}
}

func (c *coffin) Alive() bool {
	return c.tomb.Alive()
}

func (c *coffin) Dying() <-chan struct{} {
	return c.tomb.Dying()
}

func (c *coffin) Go(f func() error) {
	c.tomb.Go(func() (err error) {
		defer func() {
			if panicErr := ResolveRecovery(recover()); panicErr != nil {
				err = panicErr
			}
		}()

		return f()
	})
}

func (c *coffin) Gof(f func() error, msg string, args ...any) {
	c.Go(func() error {
		if err := f(); err != nil {
			return errors.Wrapf(err, msg, args...)
		}

		return nil
	})
}

func (c *coffin) GoWithContext(ctx context.Context, f func(ctx context.Context) error) {
	c.Go(func() error {
		return f(ctx)
	})
}

func (c *coffin) Kill(reason error) {
	c.markRunning()
	c.tomb.Kill(reason)
}

func (c *coffin) Wait() error {
	c.markRunning()

	return c.tomb.Wait()
}
