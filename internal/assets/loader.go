package assets

// TemplateExt is the file extension of templates and partials.
const TemplateExt = ".mustache"

// TemplateLoader loads a mustache template by name (without extension).
type TemplateLoader interface {
	// LoadTemplate returns ErrTemplateNotFound if the template doesn't exist
	// and ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
