// Package merge implements the merge and diff algebra over resource maps.
package merge

import (
	"github.com/quarkusio/dev-ui-extension-translator/resource"
)

// Merge combines a pre-existing resource map with newly extracted
// entries. Existing entries win on key conflicts, so curated or already
// approved text is never overwritten by re-extraction; new keys from
// extracted are appended.
func Merge(existing, extracted *resource.Map) *resource.Map {
	result := resource.NewMap()

	for _, key := range existing.Keys() {
		e, _ := existing.Get(key)
		result.Set(key, e)
	}
	for _, key := range extracted.Keys() {
		e, _ := extracted.Get(key)
		result.SetIfAbsent(key, e)
	}

	return result
}

// Diff returns the entries of variant whose key is absent from base or
// whose entry differs structurally (value or template flag) from base's.
// Used to produce sparse dialect override files instead of full copies.
func Diff(base, variant *resource.Map) *resource.Map {
	result := resource.NewMap()

	for _, key := range variant.Keys() {
		entry, _ := variant.Get(key)
		baseEntry, ok := base.Get(key)
		if !ok || baseEntry != entry {
			result.Set(key, entry)
		}
	}

	return result
}
