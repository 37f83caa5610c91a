package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	hostruntime "github.com/petrarca/host-runtime"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// ToText writes the human-readable report. Styling is dropped when color
// is disabled or stdout is not a terminal.
func (r *detectReport) ToText(w io.Writer) {
	styled := r.color && isatty.IsTerminal(os.Stdout.Fd())

	style := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	fmt.Fprintln(w, style(titleStyle, "Host runtime"))
	fmt.Fprintf(w, "  %s %s\n", style(labelStyle, "Runtime:"), style(matchStyle, string(r.Runtime.Name)))
	fmt.Fprintf(w, "  %s %s\n", style(labelStyle, "Version:"), r.Runtime.Version)
	if r.Runtime.BrowserName != "" {
		fmt.Fprintf(w, "  %s %s\n", style(labelStyle, "Browser:"), r.Runtime.BrowserName)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, style(titleStyle, "Flags"))
	for _, flag := range []struct {
		name hostruntime.Name
		set  bool
	}{
		{hostruntime.Browser, r.Flags.IsBrowser},
		{hostruntime.Nodejs, r.Flags.IsNodejs},
		{hostruntime.Bun, r.Flags.IsBun},
		{hostruntime.Deno, r.Flags.IsDeno},
		{hostruntime.Unrecognized, r.Flags.IsUnrecognized},
	} {
		line := fmt.Sprintf("  %-17s %t", flagName(flag.name), flag.set)
		if flag.set {
			fmt.Fprintln(w, style(matchStyle, line))
		} else {
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, style(dimStyle, fmt.Sprintf("Source: %s  Detected: %s", r.Metadata.Source, r.Metadata.Timestamp)))
}
