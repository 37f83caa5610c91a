// Package hostruntime identifies the JavaScript host runtime a program is
// executing under (Browser, Node.js, Bun, Deno, or none of these) and
// exposes the result as an immutable snapshot, derived boolean flags, and
// condition-gated callback guards.
//
// On GOOS=js builds the ambient host-global namespace is read through
// js.Global(). On every other build the namespace is empty and detection
// yields Unrecognized, which is a valid state rather than an error.
package hostruntime

// Name identifies one JavaScript host runtime.
type Name string

// Known runtime names. Unrecognized is the sentinel for "no descriptor
// matched", not an error condition.
const (
	Browser      Name = "browser"
	Nodejs       Name = "nodejs"
	Bun          Name = "bun"
	Deno         Name = "deno"
	Unrecognized Name = "unrecognized"
)

// VersionUnknown is reported when a runtime matched but its version could
// not be read, and for the Unrecognized runtime.
const VersionUnknown = "unknown"

// BrowserUnknown is reported when the user-agent string carries no known
// browser marker.
const BrowserUnknown = "Unknown"

// Snapshot is the immutable result of one detection pass.
type Snapshot struct {
	Name    Name   `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	// BrowserName is the browser product name (e.g. "Chrome"); set only
	// when Name is Browser.
	BrowserName string `json:"browser_name,omitempty" yaml:"browser_name,omitempty"`
}
