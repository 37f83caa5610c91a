package cmd

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	hostruntime "github.com/petrarca/host-runtime"
)

func renderedReport(snap hostruntime.Snapshot) string {
	env := hostruntime.NewEnv(snap)
	report := newDetectReport(env, "dump.yaml", false)
	// Pin the timestamp so the rendering is deterministic.
	report.Metadata.Timestamp = "2026-01-01T00:00:00Z"

	var buf bytes.Buffer
	report.ToText(&buf)
	return buf.String()
}

func TestDetectReport_ToText_Nodejs(t *testing.T) {
	out := renderedReport(hostruntime.Snapshot{Name: hostruntime.Nodejs, Version: "v16.0.0"})
	snaps.MatchSnapshot(t, out)
}

func TestDetectReport_ToText_Browser(t *testing.T) {
	out := renderedReport(hostruntime.Snapshot{
		Name:        hostruntime.Browser,
		Version:     "91.0.4472.124",
		BrowserName: "Chrome",
	})
	snaps.MatchSnapshot(t, out)
}

func TestDetectReport_ToText_Unrecognized(t *testing.T) {
	out := renderedReport(hostruntime.Snapshot{
		Name:    hostruntime.Unrecognized,
		Version: hostruntime.VersionUnknown,
	})
	snaps.MatchSnapshot(t, out)
}
