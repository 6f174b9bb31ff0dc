package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/refmt/internal/testutil"
)

func writeRaw(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestHandleConvertCase(t *testing.T) {
	t.Run("converts identifiers", func(t *testing.T) {
		root := testutil.WriteTree(t, `
-- a.py --
firstName = lastName
`)
		res, output, err := handleConvertCase(context.Background(), nil, convertCaseInput{
			Path: root,
			From: "camel",
			To:   "snake",
		})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.Equal(t, 1, output.FilesChanged)
		assert.Equal(t, 2, output.Identifiers)
		require.Len(t, output.Changes, 1)
		assert.Equal(t, "first_name = last_name\n", testutil.ReadFile(t, filepath.Join(root, "a.py")))
	})

	t.Run("missing path", func(t *testing.T) {
		res, _, err := handleConvertCase(context.Background(), nil, convertCaseInput{From: "camel", To: "snake"})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
	})

	t.Run("unknown format", func(t *testing.T) {
		res, _, err := handleConvertCase(context.Background(), nil, convertCaseInput{
			Path: t.TempDir(), From: "title", To: "snake",
		})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
	})

	t.Run("dry run leaves files untouched", func(t *testing.T) {
		root := testutil.WriteTree(t, `
-- a.py --
firstName = 1
`)
		res, output, err := handleConvertCase(context.Background(), nil, convertCaseInput{
			Path: root, From: "camel", To: "snake", DryRun: true,
		})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.True(t, output.DryRun)
		assert.Equal(t, 1, output.FilesChanged)
		assert.Equal(t, "firstName = 1\n", testutil.ReadFile(t, filepath.Join(root, "a.py")))
	})
}

func TestHandleRenameFiles(t *testing.T) {
	t.Run("renames with case and separator", func(t *testing.T) {
		root := testutil.WriteTree(t, `
-- My Report.md --
x
`)
		res, output, err := handleRenameFiles(context.Background(), nil, renameFilesInput{
			Path: root, Case: "lower", Separator: "underscore",
		})
		require.NoError(t, err)
		require.Nil(t, res)
		assert.Equal(t, 1, output.FilesRenamed)
		require.Len(t, output.Renames, 1)
		assert.True(t, testutil.Exists(filepath.Join(root, "my_report.md")))
	})

	t.Run("invalid case transform", func(t *testing.T) {
		res, _, err := handleRenameFiles(context.Background(), nil, renameFilesInput{
			Path: t.TempDir(), Case: "title",
		})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
	})

	t.Run("invalid timestamp", func(t *testing.T) {
		res, _, err := handleRenameFiles(context.Background(), nil, renameFilesInput{
			Path: t.TempDir(), Timestamp: "iso",
		})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
	})
}

func TestHandleTransformEmoji(t *testing.T) {
	root := testutil.WriteTree(t, `
-- todo.md --
- ✅ done
`)
	res, output, err := handleTransformEmoji(context.Background(), nil, transformEmojiInput{Path: root})
	require.NoError(t, err)
	require.Nil(t, res)
	assert.Equal(t, 1, output.FilesChanged)
	assert.Equal(t, 1, output.Changes)
	assert.Equal(t, "- [x] done\n", testutil.ReadFile(t, filepath.Join(root, "todo.md")))
}

func TestHandleCleanWhitespace(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, filepath.Join(dir, "a.txt"), "dirty  \nclean\n")

	res, output, err := handleCleanWhitespace(context.Background(), nil, cleanWhitespaceInput{Path: dir})
	require.NoError(t, err)
	require.Nil(t, res)
	assert.Equal(t, 1, output.FilesChanged)
	assert.Equal(t, 1, output.LinesCleaned)
	assert.Equal(t, "dirty\nclean\n", testutil.ReadFile(t, filepath.Join(dir, "a.txt")))
}

func TestHandleCleanAll(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, filepath.Join(dir, "TestFile.txt"), "Line 1   \nTask done ✅\n")

	res, output, err := handleCleanAll(context.Background(), nil, cleanAllInput{Path: dir})
	require.NoError(t, err)
	require.Nil(t, res)
	assert.Equal(t, 1, output.FilesRenamed)
	assert.Equal(t, 1, output.FilesEmojiTransformed)
	assert.Equal(t, 1, output.FilesWhitespaceCleaned)
	assert.NotEmpty(t, output.Reports)
	assert.True(t, testutil.Exists(filepath.Join(dir, "testfile.txt")))

	t.Run("missing path", func(t *testing.T) {
		res, _, err := handleCleanAll(context.Background(), nil, cleanAllInput{})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
	})
}

func TestCapReports(t *testing.T) {
	old := cfg.MaxReports
	cfg.MaxReports = 2
	defer func() { cfg.MaxReports = old }()

	assert.Len(t, capReports([]int{1, 2, 3, 4}), 2)
	assert.Len(t, capReports([]int{1}), 1)
}
