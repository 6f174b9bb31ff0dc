// Package testutil provides filesystem fixture helpers shared by refmt
// tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// WriteTree materializes a txtar archive into a fresh temp directory and
// returns its root. Each archive file becomes a file on disk with parent
// directories created as needed. Note that txtar file bodies always end
// with a newline; tests needing a file without a trailing newline should
// write it with os.WriteFile instead.
func WriteTree(t *testing.T, archive string) string {
	t.Helper()
	root := t.TempDir()
	ar := txtar.Parse([]byte(archive))
	for _, f := range ar.Files {
		path := filepath.Join(root, filepath.FromSlash(f.Name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, f.Data, 0o644))
	}
	return root
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// Exists reports whether path exists on disk.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
