package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/refmt/internal/testutil"
)

func TestHandleEmoji(t *testing.T) {
	t.Run("replaces task glyphs", func(t *testing.T) {
		root := testutil.WriteTree(t, `
-- todo.md --
- ✅ done
`)
		err := HandleEmoji([]string{root})
		require.NoError(t, err)
		assert.Equal(t, "- [x] done\n", testutil.ReadFile(t, filepath.Join(root, "todo.md")))
	})

	t.Run("missing path argument", func(t *testing.T) {
		assert.Error(t, HandleEmoji(nil))
	})
}

func TestHandleWhitespace(t *testing.T) {
	t.Run("strips trailing whitespace", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "a.txt")
		require.NoError(t, os.WriteFile(path, []byte("dirty  \nclean\n"), 0o644))

		err := HandleWhitespace([]string{dir})
		require.NoError(t, err)
		assert.Equal(t, "dirty\nclean\n", testutil.ReadFile(t, path))
	})

	t.Run("extension filter", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "a.txt")
		require.NoError(t, os.WriteFile(path, []byte("dirty  \n"), 0o644))

		err := HandleWhitespace([]string{"-ext", ".md", dir})
		require.NoError(t, err)
		assert.Equal(t, "dirty  \n", testutil.ReadFile(t, path))
	})

	t.Run("missing path argument", func(t *testing.T) {
		assert.Error(t, HandleWhitespace(nil))
	})
}

func TestHandleClean(t *testing.T) {
	t.Run("runs all stages", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "TestFile.txt"), []byte("Line 1   \nTask done ✅\n"), 0o644))

		err := HandleClean([]string{dir})
		require.NoError(t, err)
		assert.True(t, testutil.Exists(filepath.Join(dir, "testfile.txt")))
		assert.Equal(t, "Line 1\nTask done [x]\n", testutil.ReadFile(t, filepath.Join(dir, "testfile.txt")))
	})

	t.Run("dry run leaves tree untouched", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "TestFile.txt"), []byte("Line 1   \n"), 0o644))

		err := HandleClean([]string{"-dry-run", "-format", "yaml", dir})
		require.NoError(t, err)
		assert.True(t, testutil.Exists(filepath.Join(dir, "TestFile.txt")))
		assert.Equal(t, "Line 1   \n", testutil.ReadFile(t, filepath.Join(dir, "TestFile.txt")))
	})

	t.Run("missing root is fatal", func(t *testing.T) {
		assert.Error(t, HandleClean([]string{filepath.Join(t.TempDir(), "missing")}))
	})

	t.Run("missing path argument", func(t *testing.T) {
		assert.Error(t, HandleClean(nil))
	})
}
