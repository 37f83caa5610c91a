//go:build !js

package hostruntime

// asAwaitable reports whether a callback result is a pending
// asynchronous value. Off wasm only Awaitable implementations qualify.
func asAwaitable(v any) (Awaitable, bool) {
	pending, ok := v.(Awaitable)
	return pending, ok
}
