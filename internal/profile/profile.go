// Package profile loads named option presets for refmt commands from a
// YAML file. A profile supplies defaults for any subset of the transformer
// options; explicit command-line flags always win over profile values.
package profile

import (
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/refmt/refmterrors"
)

// EnvPath is the environment variable that overrides the default
// profiles file location.
const EnvPath = "REFMT_PROFILES"

// Settings holds the option values a profile may preset. Boolean fields
// are pointers so an absent key is distinguishable from an explicit false.
type Settings struct {
	// Shared traversal options
	Recursive  *bool    `yaml:"recursive"`
	DryRun     *bool    `yaml:"dry_run"`
	Extensions []string `yaml:"extensions"`
	Glob       string   `yaml:"glob"`

	// Identifier conversion options
	From              string `yaml:"from"`
	To                string `yaml:"to"`
	Prefix            string `yaml:"prefix"`
	Suffix            string `yaml:"suffix"`
	StripPrefix       string `yaml:"strip_prefix"`
	StripSuffix       string `yaml:"strip_suffix"`
	ReplacePrefixFrom string `yaml:"replace_prefix_from"`
	ReplacePrefixTo   string `yaml:"replace_prefix_to"`
	ReplaceSuffixFrom string `yaml:"replace_suffix_from"`
	ReplaceSuffixTo   string `yaml:"replace_suffix_to"`
	WordFilter        string `yaml:"word_filter"`

	// File rename options
	Case         string `yaml:"case"`
	Separator    string `yaml:"separator"`
	AddPrefix    string `yaml:"add_prefix"`
	RemovePrefix string `yaml:"remove_prefix"`
	AddSuffix    string `yaml:"add_suffix"`
	RemoveSuffix string `yaml:"remove_suffix"`
	Timestamp    string `yaml:"timestamp"`

	// Emoji options
	ReplaceTask *bool `yaml:"replace_task"`
	RemoveOther *bool `yaml:"remove_other"`
}

type profilesFile struct {
	Profiles map[string]Settings `yaml:"profiles"`
}

// DefaultPath returns the profiles file location: $REFMT_PROFILES if set,
// otherwise profiles.yaml under the user config directory.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "refmt", "profiles.yaml")
}

// Load reads a profiles file and returns the named presets it defines.
func Load(path string) (map[string]Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &refmterrors.IOError{Op: "read", Path: path, Cause: err}
	}

	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &refmterrors.ConfigError{
			Option:  "profiles",
			Value:   path,
			Message: "malformed profiles file",
			Cause:   err,
		}
	}
	return file.Profiles, nil
}

// Resolve loads the profiles file at path and returns the profile with the
// given name. An unknown name is a configuration error.
func Resolve(path, name string) (*Settings, error) {
	profiles, err := Load(path)
	if err != nil {
		return nil, err
	}
	settings, ok := profiles[name]
	if !ok {
		return nil, &refmterrors.ConfigError{
			Option:  "profile",
			Value:   name,
			Message: "no such profile in " + path,
		}
	}
	return &settings, nil
}
