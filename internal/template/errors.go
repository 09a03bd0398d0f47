package template

import "errors"

// Sentinel errors for template resolution and rendering.
var (
	// ErrLibraryNotFound indicates the template library root lacks the base fragment.
	ErrLibraryNotFound = errors.New("template library not found")

	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates a template references a key absent from the data.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates the rendered output still holds a placeholder token.
	ErrUnexpandedToken = errors.New("unexpanded token in rendered output")

	// ErrInvalidOverlayManifest indicates a malformed or inconsistent overlay.json.
	ErrInvalidOverlayManifest = errors.New("invalid overlay manifest")
)
