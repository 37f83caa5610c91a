package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	hostruntime "github.com/petrarca/host-runtime"
	"github.com/petrarca/host-runtime/internal/config"
	"github.com/petrarca/host-runtime/internal/dump"
)

// reportSpecVersion is the structure version of the detect report output.
const reportSpecVersion = "0.1"

var (
	detectFormat      string
	detectOutputFile  string
	detectGlobalsFile string
	detectLogLevel    string
	detectNoColor     bool
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Identify the JavaScript host runtime",
	Long: `Detect runs the runtime descriptors against the host-global namespace
and reports the identified runtime, its version, and the derived flags.

By default the live ambient namespace is inspected. With --globals-file a
recorded dump (YAML or JSON) is used instead, which also works on native
builds where no JavaScript host exists.`,
	RunE: runDetect,
}

func init() {
	setupFormatFlag(detectCmd, &detectFormat, config.DefaultSettings().Format)
	detectCmd.Flags().StringVarP(&detectOutputFile, "output", "o", "", "Output file path (default: stdout)")
	detectCmd.Flags().StringVar(&detectGlobalsFile, "globals-file", "", "Detect against a recorded globals dump instead of the live ambient state")
	detectCmd.Flags().StringVar(&detectLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	detectCmd.Flags().BoolVar(&detectNoColor, "no-color", false, "Disable styled text output")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := ValidateOutputFormat(settings.Format); err != nil {
		return err
	}

	level, err := config.ParseLogLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	globals, source, err := resolveGlobals(settings.GlobalsFile)
	if err != nil {
		return err
	}
	logger.Debug("running detection", "source", source)

	env := hostruntime.NewEnv(hostruntime.Detect(globals))
	logger.Info("detection complete", "runtime", env.Snapshot.Name, "version", env.Snapshot.Version)

	report := newDetectReport(env, source, !settings.NoColor)
	return OutputToFile(report, settings.Format, settings.OutputFile)
}

// loadSettings merges file/env settings with explicitly set command flags;
// flags win.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("format") {
		settings.Format = detectFormat
	}
	if cmd.Flags().Changed("output") {
		settings.OutputFile = detectOutputFile
	}
	if cmd.Flags().Changed("globals-file") {
		settings.GlobalsFile = detectGlobalsFile
	}
	if cmd.Flags().Changed("log-level") {
		settings.LogLevel = detectLogLevel
	}
	if cmd.Flags().Changed("no-color") {
		settings.NoColor = detectNoColor
	}
	return settings, nil
}

// resolveGlobals picks the detection input: a recorded dump when path is
// set, the live ambient namespace otherwise.
func resolveGlobals(path string) (hostruntime.Globals, string, error) {
	if path == "" {
		return hostruntime.Ambient(), "ambient", nil
	}
	globals, err := dump.Load(path)
	if err != nil {
		return nil, "", err
	}
	return globals, path, nil
}

// detectReport is the structured output of the detect command.
type detectReport struct {
	Metadata reportMetadata       `json:"metadata" yaml:"metadata"`
	Runtime  hostruntime.Snapshot `json:"runtime" yaml:"runtime"`
	Flags    reportFlags          `json:"flags" yaml:"flags"`

	color bool
}

type reportMetadata struct {
	Timestamp   string `json:"timestamp" yaml:"timestamp"`
	Source      string `json:"source" yaml:"source"`
	SpecVersion string `json:"specVersion" yaml:"specVersion"`
}

type reportFlags struct {
	IsBrowser      bool `json:"is_browser" yaml:"is_browser"`
	IsNodejs       bool `json:"is_nodejs" yaml:"is_nodejs"`
	IsBun          bool `json:"is_bun" yaml:"is_bun"`
	IsDeno         bool `json:"is_deno" yaml:"is_deno"`
	IsUnrecognized bool `json:"is_unrecognized" yaml:"is_unrecognized"`
}

func newDetectReport(env *hostruntime.Env, source string, color bool) *detectReport {
	return &detectReport{
		Metadata: reportMetadata{
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Source:      source,
			SpecVersion: reportSpecVersion,
		},
		Runtime: env.Snapshot,
		Flags: reportFlags{
			IsBrowser:      env.IsBrowser,
			IsNodejs:       env.IsNodejs,
			IsBun:          env.IsBun,
			IsDeno:         env.IsDeno,
			IsUnrecognized: env.IsUnrecognized,
		},
		color: color,
	}
}

// ToJSON returns the data structure for JSON/YAML marshaling.
func (r *detectReport) ToJSON() interface{} {
	return r
}

func flagName(name hostruntime.Name) string {
	return fmt.Sprintf("is_%s", name)
}
