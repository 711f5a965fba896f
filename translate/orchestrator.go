package translate

import (
	"context"
	"fmt"

	"github.com/quarkusio/dev-ui-extension-translator/langmeta"
	"github.com/quarkusio/dev-ui-extension-translator/merge"
	"github.com/quarkusio/dev-ui-extension-translator/resource"
)

// ErrorSentinel marks an entry whose translation failed. The batch
// continues; the marker stays visible in the generated file so a later
// run or a human can spot it.
const ErrorSentinel = "<translation error>"

// Orchestrator drives translation of a base resource map into target
// languages and their dialects.
type Orchestrator struct {
	Provider Provider

	// OnLog emits log messages during translation.
	OnLog func(format string, args ...any)
	// OnError emits error messages; falls back to OnLog when nil.
	OnError func(format string, args ...any)
	// OnProgress is called after each translated entry.
	OnProgress func(locale string, done, total int)
}

func (o *Orchestrator) log(format string, args ...any) {
	if o.OnLog != nil {
		o.OnLog(format, args...)
	}
}

func (o *Orchestrator) logError(format string, args ...any) {
	if o.OnError != nil {
		o.OnError(format, args...)
	} else if o.OnLog != nil {
		o.OnLog(format, args...)
	}
}

// TranslateMap translates every entry of base into the given locale,
// preserving keys, insertion order and template flags. A failed entry
// gets the error sentinel and the batch continues.
func (o *Orchestrator) TranslateMap(ctx context.Context, session *Session, locale string, base *resource.Map) *resource.Map {
	label := langmeta.Label(locale)
	out := resource.NewMap()
	total := base.Len()
	done := 0

	for _, key := range base.Keys() {
		entry, _ := base.Get(key)
		translated, err := session.Translate(ctx, label, entry.Value)
		if err != nil {
			o.logError("Failed to translate %s to %s: %v", key, label, err)
			translated = ErrorSentinel
		}
		out.Set(key, resource.Entry{Value: translated, Template: entry.Template})
		done++
		if o.OnProgress != nil {
			o.OnProgress(locale, done, total)
		}
	}
	return out
}

// TranslateLanguage translates base into one language and its dialects.
// The language gets a full resource file; each dialect gets a sparse
// file holding only the entries that differ from the language's. Paths
// come from pathFor, keyed by locale code.
func (o *Orchestrator) TranslateLanguage(ctx context.Context, lang string, dialects []string, base *resource.Map, pathFor func(locale string) string) error {
	session := NewSession(o.Provider)
	defer session.Close()

	o.log("Translating %d entries to %s", base.Len(), langmeta.Label(lang))
	langMap := o.TranslateMap(ctx, session, lang, base)
	if err := langMap.WriteFile(pathFor(lang)); err != nil {
		return fmt.Errorf("writing %s resources: %w", lang, err)
	}

	for _, dialect := range dialects {
		o.log("Translating %d entries to %s", base.Len(), langmeta.Label(dialect))
		dialectMap := o.TranslateMap(ctx, session, dialect, base)
		overrides := merge.Diff(langMap, dialectMap)
		if overrides.Len() == 0 {
			o.log("No %s overrides differ from %s", dialect, lang)
			continue
		}
		if err := overrides.WriteFile(pathFor(dialect)); err != nil {
			return fmt.Errorf("writing %s resources: %w", dialect, err)
		}
	}
	return nil
}
