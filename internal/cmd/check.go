package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	hostruntime "github.com/petrarca/host-runtime"
)

var (
	checkRuntime     string
	checkConstraint  string
	checkGlobalsFile string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the detected runtime matches expectations",
	Long: `Check exits 0 when the detected runtime matches --runtime and, when
given, its version satisfies the --version semantic version constraint.
Otherwise it prints the reason and exits 1.`,
	Example: `  host-runtime check --runtime nodejs --version ">= 18"
  host-runtime check --runtime bun --globals-file dump.yaml`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkRuntime, "runtime", "r", "", "Expected runtime: browser, nodejs, bun, deno or unrecognized")
	checkCmd.Flags().StringVarP(&checkConstraint, "version", "v", "", "Semantic version constraint the runtime version must satisfy")
	checkCmd.Flags().StringVar(&checkGlobalsFile, "globals-file", "", "Check against a recorded globals dump instead of the live ambient state")
	_ = checkCmd.MarkFlagRequired("runtime")
	rootCmd.AddCommand(checkCmd)
}

var knownRuntimes = map[hostruntime.Name]bool{
	hostruntime.Browser:      true,
	hostruntime.Nodejs:       true,
	hostruntime.Bun:          true,
	hostruntime.Deno:         true,
	hostruntime.Unrecognized: true,
}

func runCheck(cmd *cobra.Command, args []string) error {
	want := hostruntime.Name(strings.ToLower(checkRuntime))
	if !knownRuntimes[want] {
		return fmt.Errorf("unknown runtime %q: valid runtimes are browser, nodejs, bun, deno, unrecognized", checkRuntime)
	}

	globals, _, err := resolveGlobals(checkGlobalsFile)
	if err != nil {
		return err
	}

	snap := hostruntime.Detect(globals)
	if snap.Name != want {
		return fmt.Errorf("detected runtime %s (version %s), want %s", snap.Name, snap.Version, want)
	}

	if checkConstraint != "" {
		ok, err := snap.Satisfies(checkConstraint)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("runtime %s version %s does not satisfy %q", snap.Name, snap.Version, checkConstraint)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %s %s\n", snap.Name, snap.Version)
	return nil
}
