package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteTree(t *testing.T) {
	root := WriteTree(t, `
-- notes.md --
hello
-- docs/guide.md --
nested
`)

	assert.True(t, Exists(filepath.Join(root, "notes.md")))
	assert.Equal(t, "hello\n", ReadFile(t, filepath.Join(root, "notes.md")))
	assert.Equal(t, "nested\n", ReadFile(t, filepath.Join(root, "docs", "guide.md")))
	assert.False(t, Exists(filepath.Join(root, "missing.md")))
}
