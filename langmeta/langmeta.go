// Package langmeta resolves language and dialect codes to the English
// display names used in translation prompts and CLI output.
package langmeta

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Canonicalize normalizes a language code to BCP 47 shape: lowercase
// language, uppercase region, "-" separator. Accepts pt_BR, pt-br and
// friends. Returns "" for blank input.
func Canonicalize(code string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "-")
	parts[0] = strings.ToLower(parts[0])
	if len(parts) >= 2 {
		parts[1] = strings.ToUpper(parts[1])
	}
	return strings.Join(parts, "-")
}

// Base returns the language part of a code, so "fr-CA" yields "fr".
func Base(code string) string {
	normalized := Canonicalize(code)
	if i := strings.Index(normalized, "-"); i >= 0 {
		return normalized[:i]
	}
	return normalized
}

// Label returns the English display name of a language or dialect code,
// such as "French" for fr and "Canadian French" for fr-CA. Codes the
// CLDR data does not know come back unchanged, which keeps prompts and
// log lines usable for private-use codes.
func Label(code string) string {
	normalized := Canonicalize(code)
	if normalized == "" {
		return code
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
