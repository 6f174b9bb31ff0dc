package converter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/refmt/caseformat"
	"github.com/erraggy/refmt/internal/testutil"
	"github.com/erraggy/refmt/refmterrors"
)

func TestConvertIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		conv  *Converter
		input string
		want  string
	}{
		{
			name:  "camel to snake",
			conv:  New(caseformat.Camel, caseformat.Snake),
			input: "firstName",
			want:  "first_name",
		},
		{
			name:  "snake to pascal",
			conv:  New(caseformat.Snake, caseformat.Pascal),
			input: "my_variable_name",
			want:  "MyVariableName",
		},
		{
			name:  "kebab to screaming snake",
			conv:  New(caseformat.Kebab, caseformat.ScreamingSnake),
			input: "max-retry-count",
			want:  "MAX_RETRY_COUNT",
		},
		{
			name: "strip prefix before conversion",
			conv: &Converter{
				From: caseformat.Snake, To: caseformat.Camel,
				StripPrefix: "old_",
			},
			input: "old_first_name",
			want:  "firstName",
		},
		{
			name: "strip suffix before conversion",
			conv: &Converter{
				From: caseformat.Snake, To: caseformat.Camel,
				StripSuffix: "_tmp",
			},
			input: "first_name_tmp",
			want:  "firstName",
		},
		{
			name: "replace prefix before conversion",
			conv: &Converter{
				From: caseformat.Snake, To: caseformat.Snake,
				ReplacePrefixFrom: "get_", ReplacePrefixTo: "fetch_",
			},
			input: "get_user_name",
			want:  "fetch_user_name",
		},
		{
			name: "replace suffix before conversion",
			conv: &Converter{
				From: caseformat.Snake, To: caseformat.Snake,
				ReplaceSuffixFrom: "_v1", ReplaceSuffixTo: "_v2",
			},
			input: "user_name_v1",
			want:  "user_name_v2",
		},
		{
			name: "add prefix and suffix after conversion",
			conv: &Converter{
				From: caseformat.Camel, To: caseformat.Snake,
				Prefix: "x_", Suffix: "_y",
			},
			input: "firstName",
			want:  "x_first_name_y",
		},
		{
			name: "word filter pass",
			conv: &Converter{
				From: caseformat.Camel, To: caseformat.Snake,
				WordFilter: "^get_",
			},
			input: "getUserName",
			want:  "get_user_name",
		},
		{
			name: "word filter reject leaves original",
			conv: &Converter{
				From: caseformat.Camel, To: caseformat.Snake,
				WordFilter: "^get_",
			},
			input: "setUserName",
			want:  "setUserName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.conv.Convert(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		conv *Converter
	}{
		{name: "bad source format", conv: New(caseformat.Format("title"), caseformat.Snake)},
		{name: "bad target format", conv: New(caseformat.Snake, caseformat.Format(""))},
		{
			name: "bad word filter",
			conv: &Converter{From: caseformat.Camel, To: caseformat.Snake, WordFilter: "^[unclosed"},
		},
		{
			name: "bad glob",
			conv: &Converter{From: caseformat.Camel, To: caseformat.Snake, Glob: "[unclosed"},
		},
		{
			name: "half replace prefix pair",
			conv: &Converter{From: caseformat.Camel, To: caseformat.Snake, ReplacePrefixFrom: "get_"},
		},
		{
			name: "half replace suffix pair",
			conv: &Converter{From: caseformat.Camel, To: caseformat.Snake, ReplaceSuffixTo: "_v2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.conv.Convert("someName")
			require.Error(t, err)
			assert.True(t, errors.Is(err, refmterrors.ErrConfig))
		})
	}
}

// Configuration errors must surface before any file is touched.
func TestProcessFailsFastOnBadFilter(t *testing.T) {
	root := testutil.WriteTree(t, `
-- a.py --
firstName = 1
`)

	conv := &Converter{From: caseformat.Camel, To: caseformat.Snake, WordFilter: "^[bad"}
	_, err := conv.Process(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, refmterrors.ErrConfig))
	assert.Equal(t, "firstName = 1\n", testutil.ReadFile(t, filepath.Join(root, "a.py")))
}

func TestProcessFile(t *testing.T) {
	t.Run("rewrites matches in place", func(t *testing.T) {
		root := testutil.WriteTree(t, `
-- a.py --
firstName = lastName + someValue
plain = 1
`)
		path := filepath.Join(root, "a.py")

		fr, err := New(caseformat.Camel, caseformat.Snake).ProcessFile(path)
		require.NoError(t, err)
		assert.True(t, fr.Changed)
		assert.Equal(t, 3, fr.Matches)
		assert.Equal(t, "first_name = last_name + some_value\nplain = 1\n",
			testutil.ReadFile(t, path))
	})

	t.Run("no matches leaves file alone", func(t *testing.T) {
		root := testutil.WriteTree(t, `
-- a.py --
plain = 1
`)
		path := filepath.Join(root, "a.py")

		fr, err := New(caseformat.Camel, caseformat.Snake).ProcessFile(path)
		require.NoError(t, err)
		assert.False(t, fr.Changed)
		assert.Zero(t, fr.Matches)
	})

	t.Run("dry run reports without writing", func(t *testing.T) {
		root := testutil.WriteTree(t, `
-- a.py --
firstName = 1
`)
		path := filepath.Join(root, "a.py")

		conv := New(caseformat.Camel, caseformat.Snake)
		conv.DryRun = true
		fr, err := conv.ProcessFile(path)
		require.NoError(t, err)
		assert.True(t, fr.Changed)
		assert.Equal(t, 1, fr.Matches)
		assert.Equal(t, "firstName = 1\n", testutil.ReadFile(t, path))
	})

	t.Run("non-UTF8 content is an encoding error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bin.py")
		require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 'a'}, 0o644))

		_, err := New(caseformat.Camel, caseformat.Snake).ProcessFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, refmterrors.ErrEncoding))
	})
}

// Replaced text must never be re-scanned: a camel->snake conversion whose
// output would itself look like snake_case is spliced in exactly once.
func TestProcessFileSinglePass(t *testing.T) {
	root := testutil.WriteTree(t, `
-- a.py --
firstName and first_name
`)
	path := filepath.Join(root, "a.py")

	fr, err := New(caseformat.Camel, caseformat.Snake).ProcessFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, fr.Matches)
	assert.Equal(t, "first_name and first_name\n", testutil.ReadFile(t, path))
}

func TestProcessDirectory(t *testing.T) {
	archive := `
-- a.py --
firstName = 1
-- b.md --
someValue here
-- c.log --
otherName ignored extension
-- sub/d.py --
nestedName = 2
`

	t.Run("flat", func(t *testing.T) {
		root := testutil.WriteTree(t, archive)

		res, err := New(caseformat.Camel, caseformat.Snake).Process(root)
		require.NoError(t, err)
		assert.Equal(t, 2, res.FilesChanged)
		assert.Equal(t, 2, res.Identifiers)
		assert.Empty(t, res.Errors)
		assert.True(t, res.HasChanges())
		// .log is not on the default allow-list, sub/ needs Recursive
		assert.Equal(t, "otherName ignored extension\n", testutil.ReadFile(t, filepath.Join(root, "c.log")))
		assert.Equal(t, "nestedName = 2\n", testutil.ReadFile(t, filepath.Join(root, "sub", "d.py")))
	})

	t.Run("recursive", func(t *testing.T) {
		root := testutil.WriteTree(t, archive)

		conv := New(caseformat.Camel, caseformat.Snake)
		conv.Recursive = true
		res, err := conv.Process(root)
		require.NoError(t, err)
		assert.Equal(t, 3, res.FilesChanged)
		assert.Equal(t, "nested_name = 2\n", testutil.ReadFile(t, filepath.Join(root, "sub", "d.py")))
	})

	t.Run("glob filter", func(t *testing.T) {
		root := testutil.WriteTree(t, archive)

		conv := New(caseformat.Camel, caseformat.Snake)
		conv.Glob = "a.*"
		res, err := conv.Process(root)
		require.NoError(t, err)
		assert.Equal(t, 1, res.FilesChanged)
		assert.Equal(t, "someValue here\n", testutil.ReadFile(t, filepath.Join(root, "b.md")))
	})

	t.Run("single file target bypasses filters", func(t *testing.T) {
		root := testutil.WriteTree(t, archive)
		path := filepath.Join(root, "c.log")

		res, err := New(caseformat.Camel, caseformat.Snake).Process(path)
		require.NoError(t, err)
		assert.Equal(t, 1, res.FilesChanged)
		assert.Equal(t, "other_name ignored extension\n", testutil.ReadFile(t, path))
	})

	t.Run("missing root is fatal", func(t *testing.T) {
		_, err := New(caseformat.Camel, caseformat.Snake).Process(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, refmterrors.ErrIO))
	})

	t.Run("per-file errors do not abort the walk", func(t *testing.T) {
		root := testutil.WriteTree(t, `
-- a.py --
firstName = 1
`)
		require.NoError(t, os.WriteFile(filepath.Join(root, "bad.py"), []byte{0xff, 0xfe}, 0o644))

		res, err := New(caseformat.Camel, caseformat.Snake).Process(root)
		require.NoError(t, err)
		assert.Equal(t, 1, res.FilesChanged)
		require.Len(t, res.Errors, 1)
		assert.True(t, errors.Is(res.Errors[0], refmterrors.ErrEncoding))
	})
}

func TestConvertWithOptions(t *testing.T) {
	root := testutil.WriteTree(t, `
-- a.py --
getUserName and setUserName
`)

	res, err := ConvertWithOptions(
		WithPath(root),
		WithFormats(caseformat.Camel, caseformat.Snake),
		WithWordFilter("^get_"),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, res.FilesChanged)
	assert.Equal(t, "get_user_name and setUserName\n", testutil.ReadFile(t, filepath.Join(root, "a.py")))

	_, err = ConvertWithOptions(WithFormats(caseformat.Camel, caseformat.Snake))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no path specified")
}
