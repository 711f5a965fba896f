package extract

import (
	"fmt"
	"regexp"
	"strings"
)

var nonKeyChars = regexp.MustCompile(`[^a-z0-9]+`)

// BuildKey derives a resource key from a literal: lowercase, runs of
// non-alphanumerics collapsed to single underscores, leading/trailing
// underscores stripped, composed as "namespace-sanitized". An empty
// sanitized text falls back to "text". Collisions within one extraction
// pass get a numeric suffix (_1, _2, ...). The final key is recorded in
// used as a side effect.
//
// For an unchanged (namespace, literal) pair with no prior collision the
// result is stable across runs, which is what keeps re-processing and
// merging idempotent.
func BuildKey(namespace, literal string, used map[string]bool) string {
	sanitized := nonKeyChars.ReplaceAllString(strings.ToLower(literal), "_")
	sanitized = strings.Trim(sanitized, "_")
	if sanitized == "" {
		sanitized = "text"
	}

	candidate := namespace + "-" + sanitized
	for counter := 1; used[candidate]; counter++ {
		candidate = fmt.Sprintf("%s-%s_%d", namespace, sanitized, counter)
	}
	used[candidate] = true
	return candidate
}
