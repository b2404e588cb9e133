package csv2web

import (
	"fmt"

	"github.com/alnah/go-csv2web/internal/fileutil"
)

// outputPermissions is rw-r--r--: the page is meant to be served.
const outputPermissions = 0o644

// WriteOutput writes html to path, replacing any existing file.
// The write is atomic: on failure the previous file, if any, is untouched.
// Returns ErrFile on failure.
func WriteOutput(path string, html []byte) error {
	if err := fileutil.WriteFileAtomic(path, html, outputPermissions); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrFile, path, err)
	}
	return nil
}
