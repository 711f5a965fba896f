package config

import (
	"sort"

	"github.com/quarkusio/dev-ui-extension-translator/langmeta"
)

// DefaultDialects maps a base language to the regional variants that
// get a sparse override file next to the language's resource module.
var DefaultDialects = map[string][]string{
	"fr": {"fr-FR", "fr-CA"},
	"de": {"de-AT", "de-CH"},
}

// ResolveDialects returns the dialect map in effect. Override tokens
// are full dialect codes like fr-CA; they group by base language and,
// when any are given, replace the defaults entirely. Tokens without a
// region part are discarded.
func ResolveDialects(overrides []string) map[string][]string {
	groups := make(map[string][]string)
	for _, token := range overrides {
		code := langmeta.Canonicalize(token)
		base := langmeta.Base(code)
		if base == "" || base == code {
			continue
		}
		groups[base] = append(groups[base], code)
	}
	if len(groups) == 0 {
		return DefaultDialects
	}
	for _, dialects := range groups {
		sort.Strings(dialects)
	}
	return groups
}
