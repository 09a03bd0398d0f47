package fsops

import (
	"path"
	"strings"
)

// textExtensions lists the extensions treated as text. Everything else is
// copied byte for byte.
var textExtensions = map[string]bool{
	".ts": true, ".tsx": true, ".mts": true, ".cts": true,
	".js": true, ".jsx": true, ".mjs": true, ".cjs": true,
	".vue": true, ".svelte": true,
	".json": true, ".jsonc": true,
	".html": true, ".htm": true, ".svg": true, ".xml": true,
	".css": true, ".scss": true, ".sass": true, ".less": true,
	".md": true, ".mdx": true, ".txt": true,
	".yaml": true, ".yml": true, ".toml": true,
	".sql": true, ".sh": true, ".example": true,
}

// textNames lists extensionless dotfiles treated as text.
var textNames = map[string]bool{
	".gitignore":    true,
	".npmrc":        true,
	".nvmrc":        true,
	".editorconfig": true,
	".env":          true,
}

// IsTextFile reports whether the file at name (slash or OS separated) is
// classified as text.
func IsTextFile(name string) bool {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if textNames[base] {
		return true
	}
	return textExtensions[strings.ToLower(path.Ext(base))]
}
