package walk

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/refmt/internal/testutil"
	"github.com/erraggy/refmt/refmterrors"
)

func rels(entries []FileEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, filepath.ToSlash(e.Rel))
	}
	return out
}

func TestFilesFlat(t *testing.T) {
	root := testutil.WriteTree(t, `
-- a.md --
a
-- b.txt --
b
-- sub/c.md --
c
`)

	entries, err := Files(root, Options{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.md", "b.txt"}, rels(entries))
}

func TestFilesRecursive(t *testing.T) {
	root := testutil.WriteTree(t, `
-- a.md --
a
-- sub/c.md --
c
-- sub/deep/d.md --
d
`)

	entries, err := Files(root, Options{Recursive: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.md", "sub/c.md", "sub/deep/d.md"}, rels(entries))
}

func TestFilesExtensionFilter(t *testing.T) {
	root := testutil.WriteTree(t, `
-- a.md --
a
-- b.TXT --
b
-- c.py --
c
-- noext --
n
`)

	tests := []struct {
		name string
		exts []string
		want []string
	}{
		{name: "with dot", exts: []string{".md"}, want: []string{"a.md"}},
		{name: "without dot", exts: []string{"md", "py"}, want: []string{"a.md", "c.py"}},
		{name: "case insensitive", exts: []string{"txt"}, want: []string{"b.TXT"}},
		{name: "empty admits all", exts: nil, want: []string{"a.md", "b.TXT", "c.py", "noext"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Files(root, Options{Extensions: tt.exts})
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, rels(entries))
		})
	}
}

func TestFilesGlob(t *testing.T) {
	root := testutil.WriteTree(t, `
-- test_a.md --
a
-- b.md --
b
-- sub/test_c.md --
c
`)

	t.Run("matches name anywhere in tree", func(t *testing.T) {
		entries, err := Files(root, Options{Recursive: true, Glob: "test_*"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"test_a.md", "sub/test_c.md"}, rels(entries))
	})

	t.Run("matches relative path", func(t *testing.T) {
		entries, err := Files(root, Options{Recursive: true, Glob: filepath.Join("sub", "*.md")})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"sub/test_c.md"}, rels(entries))
	})
}

func TestFilesSkipsHiddenAndBuildDirs(t *testing.T) {
	root := testutil.WriteTree(t, `
-- a.md --
a
-- .hidden.md --
h
-- .git/config --
g
-- node_modules/dep.md --
d
-- target/out.md --
o
`)

	entries, err := Files(root, Options{Recursive: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.md"}, rels(entries))

	entries, err = Files(root, Options{Recursive: true, IncludeHidden: true})
	require.NoError(t, err)
	// skip-list directories stay excluded even with hidden files admitted
	assert.ElementsMatch(t, []string{"a.md", ".hidden.md"}, rels(entries))
}

func TestFilesSingleFileRoot(t *testing.T) {
	root := testutil.WriteTree(t, `
-- .notes.md --
n
`)

	// filters do not apply to an explicitly named file
	target := filepath.Join(root, ".notes.md")
	entries, err := Files(target, Options{Extensions: []string{"py"}})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, target, entries[0].Path)
	assert.Equal(t, ".notes.md", entries[0].Rel)
}

func TestFilesMissingRoot(t *testing.T) {
	_, err := Files(filepath.Join(t.TempDir(), "nope"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, refmterrors.ErrIO))

	var ioErr *refmterrors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "readdir", ioErr.Op)
}

func TestSortDeepestFirst(t *testing.T) {
	entries := []FileEntry{
		{Rel: "a.md"},
		{Rel: filepath.Join("sub", "deep", "d.md")},
		{Rel: filepath.Join("sub", "c.md")},
		{Rel: filepath.Join("sub", "b.md")},
	}

	SortDeepestFirst(entries)

	assert.Equal(t, []string{
		filepath.Join("sub", "deep", "d.md"),
		filepath.Join("sub", "b.md"),
		filepath.Join("sub", "c.md"),
		"a.md",
	}, rels(entries))
}

func TestValidateGlob(t *testing.T) {
	assert.NoError(t, ValidateGlob(""))
	assert.NoError(t, ValidateGlob("*.md"))

	err := ValidateGlob("[unclosed")
	require.Error(t, err)
	assert.True(t, errors.Is(err, refmterrors.ErrConfig))
}
