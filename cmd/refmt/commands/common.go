// Package commands provides CLI command handlers for refmt.
package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/refmt/internal/profile"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// SplitExtensions parses a comma-separated extension list flag value.
// Empty input yields nil, which transformers treat as their default list.
func SplitExtensions(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	exts := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			exts = append(exts, trimmed)
		}
	}
	return exts
}

// ProfileFlags holds the profile selection flags shared by all commands.
type ProfileFlags struct {
	Name string
	File string
}

// AddProfileFlags registers the shared -profile and -profiles flags.
func AddProfileFlags(fs *flag.FlagSet, pf *ProfileFlags) {
	fs.StringVar(&pf.Name, "profile", "", "named option preset to apply (explicit flags still win)")
	fs.StringVar(&pf.File, "profiles", "", "profiles file path (default: $REFMT_PROFILES or the user config dir)")
}

// LoadProfile resolves the selected profile, or returns nil when no profile
// was requested.
func LoadProfile(pf *ProfileFlags) (*profile.Settings, error) {
	if pf.Name == "" {
		return nil, nil
	}
	path := pf.File
	if path == "" {
		path = profile.DefaultPath()
	}
	if path == "" {
		return nil, fmt.Errorf("no profiles file: set -profiles or %s", profile.EnvPath)
	}
	return profile.Resolve(path, pf.Name)
}

// explicitFlags returns the set of flag names the user passed on the
// command line. Profile values only fill flags absent from this set.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyString fills a string flag from a profile value when the flag is
// still empty. An explicitly passed flag is never empty, so short and long
// aliases bound to the same variable both win over the profile.
func applyString(dst *string, value string) {
	if *dst == "" && value != "" {
		*dst = value
	}
}

// applyBool fills a bool flag from a profile value unless any of the
// flag's names was passed explicitly.
func applyBool(dst *bool, set map[string]bool, value *bool, names ...string) {
	if value == nil {
		return
	}
	for _, name := range names {
		if set[name] {
			return
		}
	}
	*dst = *value
}

func applyStrings(dst *[]string, value []string) {
	if len(*dst) == 0 && len(value) > 0 {
		*dst = value
	}
}
