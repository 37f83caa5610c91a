// Package dump loads recorded host-globals dumps, so detection can run
// against a captured environment instead of the live ambient namespace.
package dump

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	hostruntime "github.com/petrarca/host-runtime"
)

//go:embed dump-schema.json
var schemaFS embed.FS

// FormatVersion is the dump document format version this loader accepts.
// It should be bumped when breaking changes are made to the document
// structure.
const FormatVersion = "0.1"

const schemaName = "dump-schema.json"

// Document is a recorded host-globals dump. Globals holds the ambient
// namespace (nested maps for objects, strings for leaves); UserAgent is
// a shorthand that injects navigator.userAgent when Globals does not
// define it.
type Document struct {
	Version   string         `yaml:"version" json:"version"`
	Globals   map[string]any `yaml:"globals" json:"globals"`
	UserAgent string         `yaml:"userAgent" json:"userAgent"`
}

// Load reads a YAML or JSON dump file and returns the globals it records.
func Load(path string) (hostruntime.MapGlobals, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dump file %s: %w", path, err)
	}
	globals, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("invalid dump file %s: %w", path, err)
	}
	return globals, nil
}

// Parse validates a dump document against the embedded schema and turns
// it into globals. YAML is a superset of JSON, so both formats go
// through the same decoder.
func Parse(content []byte) (hostruntime.MapGlobals, error) {
	var raw any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse dump: %w", err)
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse dump: %w", err)
	}
	if doc.Version != "" && doc.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported dump format version %q (want %q)", doc.Version, FormatVersion)
	}

	globals := hostruntime.MapGlobals{}
	for name, value := range doc.Globals {
		globals[name] = value
	}
	if doc.UserAgent != "" {
		injectUserAgent(globals, doc.UserAgent)
	}
	return globals, nil
}

// injectUserAgent sets navigator.userAgent unless the dump already
// defines it.
func injectUserAgent(globals hostruntime.MapGlobals, ua string) {
	navigator, ok := globals["navigator"].(map[string]any)
	if !ok {
		globals["navigator"] = map[string]any{"userAgent": ua}
		return
	}
	if _, exists := navigator["userAgent"]; !exists {
		navigator["userAgent"] = ua
	}
}

func validate(data any) error {
	schemaData, err := schemaFS.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	schema, err := jsonschema.CompileString(schemaName, string(schemaData))
	if err != nil {
		return fmt.Errorf("failed to compile schema %s: %w", schemaName, err)
	}

	if err := schema.Validate(data); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			var details []string
			for _, cause := range validationErr.Causes {
				details = append(details, cause.Message)
			}
			if len(details) == 0 {
				details = append(details, validationErr.Message)
			}
			return fmt.Errorf("dump does not match schema: %s", strings.Join(details, "; "))
		}
		return fmt.Errorf("dump does not match schema: %w", err)
	}
	return nil
}
