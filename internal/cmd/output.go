package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ValidOutputFormats defines the supported output formats.
var ValidOutputFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
}

// ValidateOutputFormat checks if the given format is valid.
func ValidateOutputFormat(format string) error {
	if !ValidOutputFormats[strings.ToLower(format)] {
		return fmt.Errorf("invalid format: %s. Valid formats are: text, json, yaml", format)
	}
	return nil
}

// NormalizeFormat normalizes the format string to lowercase.
func NormalizeFormat(format string) string {
	return strings.ToLower(format)
}

// Outputter interface for commands with structured output.
type Outputter interface {
	// ToJSON returns the data structure for JSON/YAML marshaling
	ToJSON() interface{}
	// ToText writes human-readable text format
	ToText(w io.Writer)
}

// OutputToFile renders an Outputter in the given format, to a file when
// outputFile is set, to stdout otherwise.
func OutputToFile(o Outputter, format string, outputFile string) error {
	var data []byte
	var err error

	switch NormalizeFormat(format) {
	case "json":
		data, err = json.MarshalIndent(o.ToJSON(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
	case "yaml":
		data, err = yaml.Marshal(o.ToJSON())
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
	default: // text
		if outputFile != "" {
			var buf bytes.Buffer
			o.ToText(&buf)
			data = buf.Bytes()
		} else {
			o.ToText(os.Stdout)
			return nil
		}
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Results written to %s\n", outputFile)
		return nil
	}
	fmt.Print(string(data))
	return nil
}

// setupFormatFlag configures format flag and validation for a command.
func setupFormatFlag(cmd *cobra.Command, formatPtr *string, defaultFormat string) {
	cmd.Flags().StringVarP(formatPtr, "format", "f", defaultFormat, "Output format: json, yaml, or text")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		*formatPtr = NormalizeFormat(*formatPtr)
		return ValidateOutputFormat(*formatPtr)
	}
}
