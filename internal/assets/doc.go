// Package assets provides the mustache templates and partials used to
// render pages.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in templates compiled into the binary
//	    ├── FilesystemLoader  - templates and partials from a directory on disk
//	    └── PartialResolver   - mustache partial provider, directories first,
//	                            embedded fallback
//
// Built-in templates (table, list) share the "head" partial, so a custom
// head.mustache placed next to a user template overrides the page head
// while the rest of the built-in layout stays in effect.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within its
// base directory.
package assets
