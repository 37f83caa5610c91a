//go:build js && wasm

package hostruntime

import (
	"fmt"
	"syscall/js"
)

// asAwaitable reports whether a callback result is a pending
// asynchronous value: an Awaitable, or a raw JS thenable, which is
// adapted with AwaitValue. Synchronous guards reject both kinds.
func asAwaitable(v any) (Awaitable, bool) {
	if pending, ok := v.(Awaitable); ok {
		return pending, true
	}
	if value, ok := v.(js.Value); ok && isThenable(value) {
		return AwaitValue(value), true
	}
	return nil, false
}

func isThenable(v js.Value) bool {
	return v.Type() == js.TypeObject && v.Get("then").Type() == js.TypeFunction
}

// AwaitValue adapts a JS thenable (typically a Promise) to an Awaitable,
// so asynchronous guard callbacks can hand back results produced by the
// host. A value without a callable "then" settles immediately with an
// error.
func AwaitValue(v js.Value) Awaitable {
	t := &task{done: make(chan struct{})}
	if !isThenable(v) {
		t.err = fmt.Errorf("value of type %s is not a thenable", v.Type())
		close(t.done)
		return t
	}

	var onResolve, onReject js.Func
	settle := func(value any, err error) {
		t.value, t.err = value, err
		close(t.done)
		onResolve.Release()
		onReject.Release()
	}
	onResolve = js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			settle(args[0], nil)
		} else {
			settle(nil, nil)
		}
		return nil
	})
	onReject = js.FuncOf(func(_ js.Value, args []js.Value) any {
		settle(nil, fmt.Errorf("promise rejected: %s", rejectionMessage(args)))
		return nil
	})
	v.Call("then", onResolve, onReject)
	return t
}

func rejectionMessage(args []js.Value) string {
	if len(args) == 0 || args[0].IsUndefined() {
		return "no reason"
	}
	return js.Global().Get("String").Invoke(args[0]).String()
}
