package hostruntime

import "context"

// Awaitable is a pending asynchronous result: the value an asynchronous
// guard's callback must return.
type Awaitable interface {
	// Await blocks until the result settles or ctx is done, whichever
	// comes first. Awaiting an already-settled result returns
	// immediately; Await may be called more than once.
	Await(ctx context.Context) (any, error)
}

// Go runs fn on its own goroutine and returns its eventual result as an
// Awaitable. ctx passed to Await does not cancel fn; it only abandons
// the wait.
func Go(fn func() (any, error)) Awaitable {
	t := &task{done: make(chan struct{})}
	go func() {
		t.value, t.err = fn()
		close(t.done)
	}()
	return t
}

type task struct {
	done  chan struct{}
	value any
	err   error
}

func (t *task) Await(ctx context.Context) (any, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
