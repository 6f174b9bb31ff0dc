package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/refmt/internal/testutil"
)

func TestHandleConvert(t *testing.T) {
	t.Run("converts identifiers in place", func(t *testing.T) {
		root := testutil.WriteTree(t, `
-- main.py --
firstName = lastName
`)
		err := HandleConvert([]string{"-f", "camel", "-t", "snake", root})
		require.NoError(t, err)
		assert.Equal(t, "first_name = last_name\n", testutil.ReadFile(t, filepath.Join(root, "main.py")))
	})

	t.Run("missing formats", func(t *testing.T) {
		err := HandleConvert([]string{t.TempDir()})
		assert.Error(t, err)
	})

	t.Run("missing path argument", func(t *testing.T) {
		err := HandleConvert([]string{"-f", "camel", "-t", "snake"})
		assert.Error(t, err)
	})

	t.Run("unknown case format", func(t *testing.T) {
		err := HandleConvert([]string{"-f", "title", "-t", "snake", t.TempDir()})
		assert.Error(t, err)
	})

	t.Run("invalid output format", func(t *testing.T) {
		err := HandleConvert([]string{"-f", "camel", "-t", "snake", "-format", "xml", t.TempDir()})
		assert.Error(t, err)
	})

	t.Run("json output", func(t *testing.T) {
		root := testutil.WriteTree(t, `
-- main.py --
firstName = 1
`)
		err := HandleConvert([]string{"-f", "camel", "-t", "snake", "-format", "json", root})
		require.NoError(t, err)
	})

	t.Run("dry run leaves files untouched", func(t *testing.T) {
		root := testutil.WriteTree(t, `
-- main.py --
firstName = 1
`)
		err := HandleConvert([]string{"-f", "camel", "-t", "snake", "-dry-run", root})
		require.NoError(t, err)
		assert.Equal(t, "firstName = 1\n", testutil.ReadFile(t, filepath.Join(root, "main.py")))
	})
}

func TestHandleConvertWithProfile(t *testing.T) {
	profiles := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(profiles, []byte(`
profiles:
  py-snake:
    from: camel
    to: snake
`), 0o600))

	root := testutil.WriteTree(t, `
-- main.py --
firstName = 1
`)
	err := HandleConvert([]string{"-profile", "py-snake", "-profiles", profiles, root})
	require.NoError(t, err)
	assert.Equal(t, "first_name = 1\n", testutil.ReadFile(t, filepath.Join(root, "main.py")))

	t.Run("explicit flag wins over profile", func(t *testing.T) {
		root := testutil.WriteTree(t, `
-- main.py --
first_name = 1
`)
		err := HandleConvert([]string{"-profile", "py-snake", "-profiles", profiles, "-f", "snake", "-t", "camel", root})
		require.NoError(t, err)
		assert.Equal(t, "firstName = 1\n", testutil.ReadFile(t, filepath.Join(root, "main.py")))
	})

	t.Run("unknown profile", func(t *testing.T) {
		err := HandleConvert([]string{"-profile", "nope", "-profiles", profiles, t.TempDir()})
		assert.Error(t, err)
	})
}
