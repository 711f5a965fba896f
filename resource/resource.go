// Package resource implements reading and writing of Dev UI i18n
// resource modules.
//
// A resource file is a generated JavaScript module exporting a
// key→value mapping:
//
//	import { str } from '@lit/localize';
//
//	export const templates = {
//	    'my-ext-hello_world': 'Hello world',
//	    'my-ext-found_items': str`Found {0} items`,
//	};
//
// Plain values are single-quoted strings; templated values are str-tagged
// template literals whose bodies carry numbered {0}, {1}, ... placeholders.
// The import line for the str tag is present iff any value is templated.
package resource

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/quarkusio/dev-ui-extension-translator/placeholder"
)

// Entry is a single resource value.
type Entry struct {
	// Value is the literal text, or the numbered-placeholder template
	// text when Template is true.
	Value string
	// Template reports whether Value is a str-tagged template.
	Template bool
}

// Map is an ordered key→Entry mapping representing one locale's
// resource file content. Keys are unique and case-sensitive.
type Map struct {
	keys    []string
	entries map[string]Entry
}

// NewMap returns an empty resource map.
func NewMap() *Map {
	return &Map{entries: make(map[string]Entry)}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Get returns the entry for a key.
func (m *Map) Get(key string) (Entry, bool) {
	e, ok := m.entries[key]
	return e, ok
}

// Set inserts or overwrites an entry. A new key is appended to the
// insertion order; overwriting keeps the original position.
func (m *Map) Set(key string, e Entry) {
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = e
}

// SetIfAbsent inserts an entry only when the key is not present yet.
// Reports whether the entry was inserted.
func (m *Map) SetIfAbsent(key string, e Entry) bool {
	if _, exists := m.entries[key]; exists {
		return false
	}
	m.keys = append(m.keys, key)
	m.entries[key] = e
	return true
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// SortedKeys returns the keys in lexicographic order.
func (m *Map) SortedKeys() []string {
	out := m.Keys()
	sort.Strings(out)
	return out
}

// Stats returns (total, templated) entry counts.
func (m *Map) Stats() (total, templated int) {
	total = len(m.entries)
	for _, e := range m.entries {
		if e.Template {
			templated++
		}
	}
	return
}

// ---------------------------------------------------------------------------
// Parsing
// ---------------------------------------------------------------------------

// plainEntryPattern matches 'key': 'text' pairs (either quote style).
var plainEntryPattern = regexp.MustCompile(`['"]([^'"]+)['"]\s*:\s*['"]([^'"]*)['"]`)

// templateEntryPattern matches 'key': str` + "`...`" + ` pairs.
var templateEntryPattern = regexp.MustCompile("['\"]([^'\"]+)['\"]\\s*:\\s*str`([^`]*)`")

// ParseFile reads and parses a resource module. A missing file yields an
// empty map, not an error.
func ParseFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewMap(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// Parse scans resource module content for key/value pairs. Plain pairs
// are collected first, then str-tagged template pairs; a key matching
// both shapes resolves to its templated entry. Template bodies are
// renumbered on read so hand-edited ${...} expressions round-trip into
// the numbered form.
func Parse(content string) *Map {
	m := NewMap()

	for _, match := range plainEntryPattern.FindAllStringSubmatch(content, -1) {
		m.Set(match[1], Entry{Value: match[2]})
	}
	for _, match := range templateEntryPattern.FindAllStringSubmatch(content, -1) {
		m.Set(match[1], Entry{Value: placeholder.Number(match[2]), Template: true})
	}

	return m
}

// ---------------------------------------------------------------------------
// Serialization
// ---------------------------------------------------------------------------

// Serialize renders the map as a resource module with entries sorted by
// key. The @lit/localize import line is emitted iff any entry is
// templated. An empty map serializes to the empty string.
func (m *Map) Serialize() string {
	if m.Len() == 0 {
		return ""
	}

	_, templated := m.Stats()

	var b strings.Builder
	if templated > 0 {
		b.WriteString("import { str } from '@lit/localize';\n\n")
	}
	b.WriteString("export const templates = {\n")
	for _, key := range m.SortedKeys() {
		e := m.entries[key]
		b.WriteString("    '")
		b.WriteString(key)
		b.WriteString("': ")
		if e.Template {
			b.WriteString("str`")
			b.WriteString(escapeBackticks(e.Value))
			b.WriteString("`")
		} else {
			b.WriteString("'")
			b.WriteString(escapeSingleQuotes(e.Value))
			b.WriteString("'")
		}
		b.WriteString(",\n")
	}
	b.WriteString("};\n")
	return b.String()
}

// WriteFile writes the serialized map to path. An empty map writes
// nothing and creates no file.
func (m *Map) WriteFile(path string) error {
	if m.Len() == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(m.Serialize()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func escapeSingleQuotes(value string) string {
	return strings.ReplaceAll(value, "'", `\'`)
}

func escapeBackticks(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}
