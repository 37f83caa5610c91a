package hostruntime

import "sync"

// Detect runs the descriptor registry in priority order against the given
// globals and returns the first match, or the Unrecognized sentinel when
// nothing matches. It is pure: each call re-observes g, so tests can
// simulate different hosts with different MapGlobals values.
func Detect(g Globals) Snapshot {
	for _, d := range Descriptors() {
		if !d.Detect(g) {
			continue
		}
		snap := Snapshot{Name: d.Name, Version: d.Version(g)}
		if d.BrowserName != nil {
			snap.BrowserName = d.BrowserName(g)
		}
		return snap
	}
	return Snapshot{Name: Unrecognized, Version: VersionUnknown}
}

// Env is the immutable result of one-time initialization: the snapshot,
// the derived boolean flags, and one guard per (runtime, polarity) pair.
// All fields are fixed at construction and internally consistent even if
// the ambient state changes afterwards.
type Env struct {
	Snapshot Snapshot

	IsBrowser      bool
	IsNodejs       bool
	IsBun          bool
	IsDeno         bool
	IsUnrecognized bool

	IsNotBrowser      bool
	IsNotNodejs       bool
	IsNotBun          bool
	IsNotDeno         bool
	IsNotUnrecognized bool

	// Positive guards run their callback when the runtime matches.
	OnBrowser      Guard
	OnNodejs       Guard
	OnBun          Guard
	OnDeno         Guard
	OnUnrecognized Guard

	// Negative guards additionally require a recognized runtime: "not
	// Node.js" is not a meaningful claim about an unrecognized host.
	OnNotBrowser Guard
	OnNotNodejs  Guard
	OnNotBun     Guard
	OnNotDeno    Guard
}

// NewEnv derives flags and guards from a snapshot.
func NewEnv(snap Snapshot) *Env {
	e := &Env{
		Snapshot:       snap,
		IsBrowser:      snap.Name == Browser,
		IsNodejs:       snap.Name == Nodejs,
		IsBun:          snap.Name == Bun,
		IsDeno:         snap.Name == Deno,
		IsUnrecognized: snap.Name == Unrecognized,
	}
	e.IsNotBrowser = !e.IsBrowser
	e.IsNotNodejs = !e.IsNodejs
	e.IsNotBun = !e.IsBun
	e.IsNotDeno = !e.IsDeno
	e.IsNotUnrecognized = !e.IsUnrecognized

	e.OnBrowser = newGuard(e.IsBrowser, snap)
	e.OnNodejs = newGuard(e.IsNodejs, snap)
	e.OnBun = newGuard(e.IsBun, snap)
	e.OnDeno = newGuard(e.IsDeno, snap)
	e.OnUnrecognized = newGuard(e.IsUnrecognized, snap)

	e.OnNotBrowser = newGuard(e.IsNotBrowser && e.IsNotUnrecognized, snap)
	e.OnNotNodejs = newGuard(e.IsNotNodejs && e.IsNotUnrecognized, snap)
	e.OnNotBun = newGuard(e.IsNotBun && e.IsNotUnrecognized, snap)
	e.OnNotDeno = newGuard(e.IsNotDeno && e.IsNotUnrecognized, snap)
	return e
}

var (
	defaultOnce sync.Once
	defaultEnv  *Env
)

// Init performs the process-wide one-time detection against the given
// globals and returns the resulting Env. Only the first call detects;
// later calls return the same Env regardless of argument.
func Init(g Globals) *Env {
	defaultOnce.Do(func() {
		defaultEnv = NewEnv(Detect(g))
	})
	return defaultEnv
}

// Default returns the process-wide Env, initializing it from the live
// ambient namespace on first use.
func Default() *Env {
	return Init(Ambient())
}

// Current returns the process-wide snapshot.
func Current() Snapshot {
	return Default().Snapshot
}
