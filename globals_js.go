//go:build js && wasm

package hostruntime

import "syscall/js"

// Ambient returns the live host-global namespace backed by js.Global().
func Ambient() Globals { return jsGlobals{} }

type jsGlobals struct{}

func (jsGlobals) Get(name string) Value {
	return jsValue{js.Global().Get(name)}
}

type jsValue struct {
	v js.Value
}

func (v jsValue) IsUndefined() bool {
	return v.v.IsUndefined() || v.v.IsNull()
}

func (v jsValue) Get(key string) Value {
	// js.Value.Get panics on non-objects.
	switch v.v.Type() {
	case js.TypeObject, js.TypeFunction:
		return jsValue{v.v.Get(key)}
	default:
		return Undefined()
	}
}

func (v jsValue) String() string {
	if v.v.Type() == js.TypeString {
		return v.v.String()
	}
	return ""
}
