//go:build !js

package hostruntime

// Ambient returns the live host-global namespace. Off wasm there is no
// JavaScript host, so the namespace is empty and detection yields
// Unrecognized.
func Ambient() Globals { return emptyGlobals{} }

type emptyGlobals struct{}

func (emptyGlobals) Get(string) Value { return Undefined() }
