package models

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeProjectName canonicalizes raw user input into a project
// identifier made of [a-z0-9-]. Accented letters are folded to their base
// form, runs of any other characters collapse into one hyphen, and leading
// or trailing hyphens are trimmed. An empty result is rejected.
//
// The function is idempotent: NormalizeProjectName(NormalizeProjectName(x))
// equals NormalizeProjectName(x).
func NormalizeProjectName(raw string) (string, error) {
	folded, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		raw,
	)
	if err != nil {
		folded = raw
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	name := b.String()
	if name == "" {
		return "", fmt.Errorf("%w: %q has no usable characters (allowed: a-z, 0-9, -)", ErrInvalidProjectName, raw)
	}
	return name, nil
}
