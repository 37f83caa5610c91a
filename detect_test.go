package hostruntime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromeUA = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

func browserGlobals(ua string) MapGlobals {
	return MapGlobals{
		"window":    map[string]any{},
		"document":  map[string]any{},
		"navigator": map[string]any{"userAgent": ua},
	}
}

func nodeGlobals(version string) MapGlobals {
	return MapGlobals{
		"process": map[string]any{
			"versions": map[string]any{"node": version},
		},
	}
}

func bunGlobals(version string) MapGlobals {
	return MapGlobals{
		"Bun": map[string]any{"version": version},
		// Bun polyfills process for Node compatibility.
		"process": map[string]any{
			"versions": map[string]any{"node": "20.0.0"},
		},
	}
}

func denoGlobals(version string) MapGlobals {
	return MapGlobals{
		"Deno": map[string]any{
			"version": map[string]any{"deno": version},
		},
		"process": map[string]any{
			"versions": map[string]any{"node": "20.0.0"},
		},
	}
}

func TestDetect_Nodejs(t *testing.T) {
	snap := Detect(nodeGlobals("16.0.0"))

	assert.Equal(t, Nodejs, snap.Name)
	assert.Equal(t, "v16.0.0", snap.Version)
	assert.Empty(t, snap.BrowserName)
}

func TestDetect_NodejsPrefersProcessVersion(t *testing.T) {
	globals := nodeGlobals("16.0.0")
	globals["process"].(map[string]any)["version"] = "v16.1.0"

	snap := Detect(globals)

	assert.Equal(t, Nodejs, snap.Name)
	assert.Equal(t, "v16.1.0", snap.Version)
}

func TestDetect_Browser(t *testing.T) {
	snap := Detect(browserGlobals(chromeUA))

	assert.Equal(t, Browser, snap.Name)
	assert.Equal(t, "91.0.4472.124", snap.Version)
	assert.Equal(t, "Chrome", snap.BrowserName)
}

func TestDetect_Bun(t *testing.T) {
	snap := Detect(bunGlobals("1.1.8"))

	assert.Equal(t, Bun, snap.Name)
	assert.Equal(t, "1.1.8", snap.Version)
}

func TestDetect_Deno(t *testing.T) {
	snap := Detect(denoGlobals("1.44.0"))

	assert.Equal(t, Deno, snap.Name)
	assert.Equal(t, "1.44.0", snap.Version)
}

func TestDetect_Unrecognized(t *testing.T) {
	snap := Detect(MapGlobals{})

	assert.Equal(t, Unrecognized, snap.Name)
	assert.Equal(t, VersionUnknown, snap.Version)
	assert.Empty(t, snap.BrowserName)
}

// Bun and Deno expose Node-compatible globals; a process.versions.node
// binding alone must not win over their identifying globals.
func TestDetect_NodeNegativeGating(t *testing.T) {
	snap := Detect(bunGlobals("1.1.8"))
	assert.Equal(t, Bun, snap.Name)

	snap = Detect(denoGlobals("1.44.0"))
	assert.Equal(t, Deno, snap.Name)
}

// Bun before Deno is an explicit tie-break, not a semantic claim.
func TestDetect_PriorityOrder(t *testing.T) {
	both := MapGlobals{
		"Bun":  map[string]any{"version": "1.1.8"},
		"Deno": map[string]any{"version": map[string]any{"deno": "1.44.0"}},
	}

	snap := Detect(both)

	assert.Equal(t, Bun, snap.Name)
	assert.Equal(t, "1.1.8", snap.Version)
}

func TestDetect_MutualExclusivity(t *testing.T) {
	states := map[string]MapGlobals{
		"browser": browserGlobals(chromeUA),
		"node":    nodeGlobals("16.0.0"),
		"bun":     bunGlobals("1.1.8"),
		"deno":    denoGlobals("1.44.0"),
		"empty":   {},
		"bun and deno": {
			"Bun":  map[string]any{},
			"Deno": map[string]any{},
		},
		"browser and node": func() MapGlobals {
			g := browserGlobals(chromeUA)
			g["process"] = map[string]any{"versions": map[string]any{"node": "16.0.0"}}
			return g
		}(),
	}

	for name, globals := range states {
		t.Run(name, func(t *testing.T) {
			env := NewEnv(Detect(globals))

			trueCount := 0
			for _, flag := range []bool{env.IsBrowser, env.IsNodejs, env.IsBun, env.IsDeno, env.IsUnrecognized} {
				if flag {
					trueCount++
				}
			}
			assert.Equal(t, 1, trueCount, "exactly one positive flag must hold")
		})
	}
}

func TestDetect_ReobservesGlobals(t *testing.T) {
	assert.Equal(t, Nodejs, Detect(nodeGlobals("16.0.0")).Name)
	assert.Equal(t, Unrecognized, Detect(MapGlobals{}).Name)
}

func TestNewEnv_FlagComplements(t *testing.T) {
	env := NewEnv(Detect(nodeGlobals("16.0.0")))

	assert.True(t, env.IsNodejs)
	assert.False(t, env.IsNotNodejs)
	assert.True(t, env.IsNotBrowser)
	assert.True(t, env.IsNotBun)
	assert.True(t, env.IsNotDeno)
	assert.True(t, env.IsNotUnrecognized)
}

func TestInit_Idempotent(t *testing.T) {
	first := Init(nodeGlobals("16.0.0"))
	second := Init(MapGlobals{})

	require.NotNil(t, first)
	assert.Same(t, first, second, "Init must detect only once")
	assert.Same(t, first, Default())
	assert.Equal(t, first.Snapshot, Current())
}

// End-to-end: Node.js only.
func TestScenario_NodejsOnly(t *testing.T) {
	env := NewEnv(Detect(nodeGlobals("16.0.0")))

	require.Equal(t, Snapshot{Name: Nodejs, Version: "v16.0.0"}, env.Snapshot)
	assert.True(t, env.IsNodejs)

	result, err := env.OnNodejs.Run(func(Snapshot) any { return "x" })
	require.NoError(t, err)
	assert.Equal(t, "x", result)

	result, err = env.OnBrowser.Run(func(Snapshot) any { return "x" })
	require.NoError(t, err)
	assert.Nil(t, result)
}

// End-to-end: nothing matches.
func TestScenario_Unrecognized(t *testing.T) {
	env := NewEnv(Detect(MapGlobals{}))

	require.Equal(t, Snapshot{Name: Unrecognized, Version: VersionUnknown}, env.Snapshot)
	assert.True(t, env.IsUnrecognized)
	assert.False(t, env.IsBrowser)
	assert.False(t, env.IsNodejs)
	assert.False(t, env.IsBun)
	assert.False(t, env.IsDeno)

	// Negative guards stay silent on an unrecognized host.
	result, err := env.OnNotNodejs.Run(func(Snapshot) any { return "x" })
	require.NoError(t, err)
	assert.Nil(t, result)

	result, err = env.OnUnrecognized.Run(func(Snapshot) any { return "fallback" })
	require.NoError(t, err)
	assert.Equal(t, "fallback", result)
}
