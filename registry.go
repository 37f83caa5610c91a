package hostruntime

import "sync"

// Descriptor describes how to recognize one host runtime.
type Descriptor struct {
	// Name is the runtime this descriptor represents.
	Name Name

	// Detect reports whether this runtime is the current host.
	Detect func(Globals) bool

	// Version returns the runtime version, or VersionUnknown.
	Version func(Globals) string

	// BrowserName returns the browser product name derived from the
	// user-agent string. Set on the browser descriptor only.
	BrowserName func(Globals) string
}

// Registry of runtime descriptors. Iteration order is the disambiguation
// priority: Bun and Deno expose Node-compatible globals, so they must be
// probed before Node.js.
var (
	descriptors []Descriptor
	mu          sync.RWMutex
)

// Register appends a descriptor to the registry. Later entries have lower
// detection priority.
func Register(d Descriptor) {
	mu.Lock()
	defer mu.Unlock()
	descriptors = append(descriptors, d)
}

// Descriptors returns the registered descriptors in priority order.
func Descriptors() []Descriptor {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

func defined(g Globals, name string) bool {
	return !g.Get(name).IsUndefined()
}

func userAgent(g Globals) string {
	ua := g.Get("navigator").Get("userAgent")
	if ua.IsUndefined() {
		return ""
	}
	return ua.String()
}

func init() {
	Register(Descriptor{
		Name: Browser,
		Detect: func(g Globals) bool {
			return defined(g, "window") && defined(g, "document")
		},
		Version: func(g Globals) string {
			_, version := ParseUserAgent(userAgent(g))
			return version
		},
		BrowserName: func(g Globals) string {
			name, _ := ParseUserAgent(userAgent(g))
			return name
		},
	})

	Register(Descriptor{
		Name: Bun,
		Detect: func(g Globals) bool {
			return defined(g, "Bun")
		},
		Version: func(g Globals) string {
			return versionOrUnknown(g.Get("Bun").Get("version"))
		},
	})

	Register(Descriptor{
		Name: Deno,
		Detect: func(g Globals) bool {
			return defined(g, "Deno")
		},
		Version: func(g Globals) string {
			return versionOrUnknown(g.Get("Deno").Get("version").Get("deno"))
		},
	})

	// Bun and Deno polyfill process.versions.node for Node compatibility,
	// so Node.js detection is negative-gated on their absence.
	Register(Descriptor{
		Name: Nodejs,
		Detect: func(g Globals) bool {
			node := g.Get("process").Get("versions").Get("node")
			return !node.IsUndefined() && !defined(g, "Bun") && !defined(g, "Deno")
		},
		Version: func(g Globals) string {
			process := g.Get("process")
			if version := process.Get("version"); !version.IsUndefined() {
				return version.String()
			}
			if node := process.Get("versions").Get("node"); !node.IsUndefined() {
				return "v" + node.String()
			}
			return VersionUnknown
		},
	})
}

func versionOrUnknown(v Value) string {
	if v.IsUndefined() || v.String() == "" {
		return VersionUnknown
	}
	return v.String()
}
