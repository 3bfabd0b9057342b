package appctx

import (
	"context"
	"fmt"
	"sync"
)

type containerKeyType int

var containerKey containerKeyType = 1

type ErrNoApplicationContainerFound struct{}

func (e ErrNoApplicationContainerFound) Error() string {
	return "no application container found in context"
}

type container struct {
	lck   sync.Mutex
	items map[any]any
}

// WithContainer attaches an empty container to ctx. Values provided through the returned context
// are shared by everyone holding it, e.g. all module factories of one application.
func WithContainer(ctx context.Context) context.Context {
	return context.WithValue(ctx, containerKey, &container{
		items: map[any]any{},
	})
}

// Provide returns the value stored for key or builds and stores it with factory. The factory runs
// at most once per key and container.
func Provide[T any](ctx context.Context, key any, factory func() (T, error)) (T, error) {
	var ok bool
	var err error
	var val T

	cont, ok := ctx.Value(containerKey).(*container)
	if !ok {
		return val, &ErrNoApplicationContainerFound{}
	}

	cont.lck.Lock()
	defer cont.lck.Unlock()

	if stored, ok := cont.items[key]; ok {
		if val, ok = stored.(T); !ok {
			return val, fmt.Errorf("the item with key %v is of type %T, not %T", key, stored, val)
		}

		return val, nil
	}

	if val, err = factory(); err != nil {
		return val, err
	}

	cont.items[key] = val

	return val, nil
}
