// Package fileutil provides file permission constants shared by the
// transformers that rewrite files in place.
package fileutil

import "os"

// ReadableByAll is the file permission mode used when a transformer has
// to create a file fresh; existing files keep their mode since rewrites
// go through os.WriteFile on an existing path.
const ReadableByAll os.FileMode = 0o644
