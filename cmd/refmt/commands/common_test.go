package commands

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat("text"))
	assert.NoError(t, ValidateOutputFormat("json"))
	assert.NoError(t, ValidateOutputFormat("yaml"))
	assert.Error(t, ValidateOutputFormat("xml"))
	assert.Error(t, ValidateOutputFormat(""))
}

func TestOutputStructured(t *testing.T) {
	data := map[string]int{"files_changed": 3}
	assert.NoError(t, OutputStructured(data, FormatJSON))
	assert.NoError(t, OutputStructured(data, FormatYAML))
	assert.Error(t, OutputStructured(data, FormatText))
}

func TestSplitExtensions(t *testing.T) {
	assert.Nil(t, SplitExtensions(""))
	assert.Equal(t, []string{".go"}, SplitExtensions(".go"))
	assert.Equal(t, []string{".go", ".md"}, SplitExtensions(".go, .md"))
	assert.Equal(t, []string{".go"}, SplitExtensions(".go,,"))
}

func TestLoadProfileNoneRequested(t *testing.T) {
	settings, err := LoadProfile(&ProfileFlags{})
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestLoadProfileFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
profiles:
  docs:
    case: lower
`), 0o600))

	settings, err := LoadProfile(&ProfileFlags{Name: "docs", File: path})
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "lower", settings.Case)

	_, err = LoadProfile(&ProfileFlags{Name: "missing", File: path})
	assert.Error(t, err)
}

func TestApplyHelpers(t *testing.T) {
	t.Run("string fills only empty", func(t *testing.T) {
		explicit := "explicit"
		applyString(&explicit, "profile")
		assert.Equal(t, "explicit", explicit)

		empty := ""
		applyString(&empty, "profile")
		assert.Equal(t, "profile", empty)
	})

	t.Run("bool respects explicit flags under any alias", func(t *testing.T) {
		fs := flag.NewFlagSet("x", flag.ContinueOnError)
		var recursive bool
		fs.BoolVar(&recursive, "r", false, "")
		fs.BoolVar(&recursive, "recursive", false, "")
		require.NoError(t, fs.Parse([]string{"-r"}))

		set := explicitFlags(fs)
		profileFalse := false
		applyBool(&recursive, set, &profileFalse, "r", "recursive")
		assert.True(t, recursive)

		var dryRun bool
		profileTrue := true
		applyBool(&dryRun, set, &profileTrue, "dry-run")
		assert.True(t, dryRun)
	})

	t.Run("strings fills only empty", func(t *testing.T) {
		exts := []string{".go"}
		applyStrings(&exts, []string{".md"})
		assert.Equal(t, []string{".go"}, exts)

		var none []string
		applyStrings(&none, []string{".md"})
		assert.Equal(t, []string{".md"}, none)
	})
}
