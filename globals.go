package hostruntime

import "fmt"

// Value is a read-only view of one binding in the host-global namespace.
// It mirrors the minimal subset of syscall/js.Value the detection
// predicates need, so the same descriptors run against live globals on
// wasm builds and against fakes everywhere else.
type Value interface {
	// IsUndefined reports whether the binding does not exist.
	IsUndefined() bool

	// Get returns the named property, or an undefined Value when the
	// receiver is undefined or not an object.
	Get(key string) Value

	// String returns the string form of the value, or "" when the value
	// is not string-like.
	String() string
}

// Globals is the ambient host-global namespace. Implementations must be
// read-only; detection never mutates the host.
type Globals interface {
	// Get returns the named global binding, or an undefined Value.
	Get(name string) Value
}

// Undefined returns the Value representing a missing binding.
func Undefined() Value { return undefinedValue{} }

type undefinedValue struct{}

func (undefinedValue) IsUndefined() bool { return true }
func (undefinedValue) Get(string) Value  { return undefinedValue{} }
func (undefinedValue) String() string    { return "" }

// MapGlobals is a map-backed Globals implementation for tests and for
// detection against recorded globals dumps. Nested objects are
// map[string]any values; leaves are strings (other scalar types are
// stringified).
type MapGlobals map[string]any

// Get returns the named global binding, or an undefined Value.
func (m MapGlobals) Get(name string) Value {
	v, ok := m[name]
	if !ok {
		return Undefined()
	}
	return wrapValue(v)
}

func wrapValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Undefined()
	case map[string]any:
		return mapValue(t)
	case string:
		return stringValue(t)
	default:
		return stringValue(fmt.Sprint(t))
	}
}

type mapValue map[string]any

func (mapValue) IsUndefined() bool { return false }

func (m mapValue) Get(key string) Value {
	v, ok := m[key]
	if !ok {
		return Undefined()
	}
	return wrapValue(v)
}

// String matches the host's ToString behavior for plain objects.
func (mapValue) String() string { return "[object Object]" }

type stringValue string

func (stringValue) IsUndefined() bool { return false }
func (stringValue) Get(string) Value  { return Undefined() }
func (s stringValue) String() string  { return string(s) }
