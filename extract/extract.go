// Package extract scans Dev UI JavaScript sources for user-visible
// string and template literals.
//
// Recognition is deliberate pattern scanning, not parsing: literals are
// found by regular expressions and filtered by the classifier rules in
// IsUserVisible. That trades grammatical exactness for simplicity — a
// quoted string inside a comment is still a candidate — and mirrors how
// the Dev UI sources are actually written.
package extract

import (
	"regexp"
	"strings"

	"github.com/quarkusio/dev-ui-extension-translator/placeholder"
	"github.com/quarkusio/dev-ui-extension-translator/resource"
)

// stringLiteralPattern matches a single- or double-quoted string with
// backslash escapes. Group 1 holds a single-quoted body, group 2 a
// double-quoted one.
var stringLiteralPattern = regexp.MustCompile(`'((?:\\.|[^'\\])*)'|"((?:\\.|[^"\\])*)"`)

// templateLiteralPattern matches a backtick-delimited template literal
// with backslash escapes.
var templateLiteralPattern = regexp.MustCompile("`((?:\\\\.|[^`\\\\])*)`")

// Replacement maps one plain literal to its assigned resource key.
type Replacement struct {
	Literal string
	Key     string
}

// TemplateLocalization carries everything needed to rewrite one
// interpolated template literal and store its resource entry.
type TemplateLocalization struct {
	// Literal is the original template text including backticks.
	Literal string
	// Numbered is the {0}, {1}, ... form stored in resource files.
	Numbered string
	// Code is the ${placeholderN} form emitted into rewritten source.
	Code string
	// Key is the assigned resource key.
	Key string
	// Indent is the leading whitespace of the line where the template
	// was found, used to indent the replacement block.
	Indent string
}

// FileExtraction is the outcome of scanning one source file: the
// replacements to apply and the file's contribution to the base-locale
// resource map.
type FileExtraction struct {
	Plain     []Replacement
	Templates []TemplateLocalization
	Entries   *resource.Map
}

// Process scans content for translatable literals and assigns keys under
// the given namespace. Key uniqueness is tracked per call; repeated
// identical plain literals collapse to a single key.
func Process(content, namespace string) *FileExtraction {
	fx := &FileExtraction{Entries: resource.NewMap()}
	used := make(map[string]bool)

	seen := make(map[string]bool)
	for _, m := range stringLiteralPattern.FindAllStringSubmatchIndex(content, -1) {
		var literal string
		if m[2] >= 0 {
			literal = content[m[2]:m[3]]
		} else {
			literal = content[m[4]:m[5]]
		}
		if seen[literal] || !IsUserVisible(literal, m[0], content) {
			continue
		}
		seen[literal] = true

		key := BuildKey(namespace, literal, used)
		fx.Plain = append(fx.Plain, Replacement{Literal: literal, Key: key})
		fx.Entries.SetIfAbsent(key, resource.Entry{Value: literal})
	}

	for _, m := range templateLiteralPattern.FindAllStringSubmatchIndex(content, -1) {
		body := content[m[2]:m[3]]
		// A backtick string without interpolation is not a template
		// candidate; the plain-literal pass is the only chance it gets.
		if !strings.Contains(body, "${") {
			continue
		}
		candidate := placeholder.Strip(body)
		if !IsUserVisible(candidate, m[0], content) {
			continue
		}

		key := BuildKey(namespace, candidate, used)
		fx.Templates = append(fx.Templates, TemplateLocalization{
			Literal:  "`" + body + "`",
			Numbered: placeholder.Number(body),
			Code:     placeholder.Code(body),
			Key:      key,
			Indent:   indentAt(content, m[0]),
		})
		fx.Entries.Set(key, resource.Entry{Value: placeholder.Number(body), Template: true})
	}

	return fx
}

// indentAt returns the leading whitespace of the line containing offset.
func indentAt(content string, offset int) string {
	lineStart := strings.LastIndex(content[:offset], "\n") + 1
	cursor := lineStart
	for cursor < offset && (content[cursor] == ' ' || content[cursor] == '\t') {
		cursor++
	}
	return content[lineStart:cursor]
}
