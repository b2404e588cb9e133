package assets

import (
	"errors"

	"github.com/cbroglie/mustache"
)

// PartialResolver resolves {{> name}} partials. Directories are searched in
// order, then the embedded partials. An unknown partial renders as empty
// text, which is the standard mustache behavior.
type PartialResolver struct {
	custom   []TemplateLoader
	embedded TemplateLoader
}

// NewPartialResolver creates a resolver over the given directories.
// Empty entries are ignored; any other invalid directory is an error.
func NewPartialResolver(dirs ...string) (*PartialResolver, error) {
	r := &PartialResolver{embedded: NewEmbeddedLoader()}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		loader, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		r.custom = append(r.custom, loader)
	}

	return r, nil
}

// Get implements mustache.PartialProvider.
func (r *PartialResolver) Get(name string) (string, error) {
	for _, loader := range r.custom {
		content, err := loader.LoadTemplate(name)
		if err == nil {
			return content, nil
		}
		// Only fall through for "not found", not validation or I/O errors.
		if !errors.Is(err, ErrTemplateNotFound) {
			return "", err
		}
	}

	content, err := r.embedded.LoadTemplate(name)
	if errors.Is(err, ErrTemplateNotFound) {
		return "", nil
	}
	return content, err
}

// HasCustomDirs reports whether any filesystem directory is searched.
func (r *PartialResolver) HasCustomDirs() bool {
	return len(r.custom) > 0
}

// Compile-time interface check.
var _ mustache.PartialProvider = (*PartialResolver)(nil)
