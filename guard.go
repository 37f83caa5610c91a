package hostruntime

import (
	"context"
	"errors"
	"fmt"
)

// Contract sentinels. A guard that is handed a callback of the wrong
// sync/async kind fails deterministically instead of silently returning
// an unsettled result.
var (
	// ErrSyncContract reports that a synchronous guard's callback
	// produced a pending asynchronous result.
	ErrSyncContract = errors.New("synchronous callback expected, but got a pending asynchronous result")

	// ErrAsyncContract reports that an asynchronous guard's callback
	// produced a plain value instead of a pending asynchronous result.
	ErrAsyncContract = errors.New("asynchronous callback expected, but got a plain value")
)

// ContractError describes a guard invoked with a callback whose result
// did not match the guard variant. It unwraps to ErrSyncContract or
// ErrAsyncContract.
type ContractError struct {
	// Async is true when the violated guard was the asynchronous variant.
	Async bool
	// Result is the offending callback result.
	Result any
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%v (got %T)", e.Unwrap(), e.Result)
}

func (e *ContractError) Unwrap() error {
	if e.Async {
		return ErrAsyncContract
	}
	return ErrSyncContract
}

// Callback receives the snapshot observed at initialization time and
// returns an arbitrary value. For asynchronous guards the value must be
// an Awaitable; for synchronous guards it must not be.
type Callback func(Snapshot) any

// Guard runs a callback only when its condition held at initialization
// time. The condition is fixed at construction from the immutable
// snapshot: a guard that skips once skips for the process lifetime.
type Guard struct {
	cond bool
	snap Snapshot
}

func newGuard(cond bool, snap Snapshot) Guard {
	return Guard{cond: cond, snap: snap}
}

// Run invokes fn when the guard's condition holds and returns its result.
// When the condition does not hold, fn is never invoked and Run returns
// (nil, nil). A callback returning an Awaitable is a contract violation
// and yields an error wrapping ErrSyncContract.
func (g Guard) Run(fn Callback) (any, error) {
	if !g.cond {
		return nil, nil
	}
	result := fn(g.snap)
	if _, ok := asAwaitable(result); ok {
		return nil, &ContractError{Async: false, Result: result}
	}
	return result, nil
}

// RunAsync invokes fn when the guard's condition holds, awaits the
// Awaitable it returns, and yields its settlement. When the condition
// does not hold, fn is never invoked and RunAsync returns (nil, nil).
// A callback returning anything but an Awaitable yields an error
// wrapping ErrAsyncContract.
//
// ctx bounds the wait only: a callback that has started cannot be
// cancelled by the guard.
func (g Guard) RunAsync(ctx context.Context, fn Callback) (any, error) {
	if !g.cond {
		return nil, nil
	}
	result := fn(g.snap)
	pending, ok := asAwaitable(result)
	if !ok {
		return nil, &ContractError{Async: true, Result: result}
	}
	return pending.Await(ctx)
}
