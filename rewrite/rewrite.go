// Package rewrite edits Dev UI JavaScript sources in place, wrapping
// extracted literals in msg() localization calls and wiring the module
// and component plumbing the calls need.
package rewrite

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quarkusio/dev-ui-extension-translator/extract"
	"github.com/quarkusio/dev-ui-extension-translator/placeholder"
)

// localizationModule is the module specifier the generated imports pull
// msg, str and updateWhenLocaleChanges from.
const localizationModule = "localization"

// localeSubscription re-renders a component when the active locale
// changes. Inserted once into the component constructor.
const localeSubscription = "updateWhenLocaleChanges(this)"

var constructorPattern = regexp.MustCompile(`constructor\s*\([^)]*\)\s*\{`)

// Apply rewrites content with the given plain and template replacements
// and returns the result. Plain literals are replaced at their first
// remaining occurrence; literals no longer present are skipped. The
// localization import and the constructor locale subscription are
// ensured afterwards, so applying the same rewrite twice is a no-op.
func Apply(content string, plain []extract.Replacement, templates []extract.TemplateLocalization) string {
	updated := content
	for _, r := range plain {
		updated = replaceFirstLiteral(updated, r.Literal, r.Key)
	}
	for _, tl := range templates {
		if idx := strings.Index(updated, tl.Literal); idx >= 0 {
			updated = updated[:idx] + wrapTemplate(tl) + updated[idx+len(tl.Literal):]
		}
	}
	updated = ensureImport(updated, len(templates) > 0)
	return ensureLocaleSubscription(updated)
}

// replaceFirstLiteral wraps the earliest quoted occurrence of literal,
// in either quote style, in a msg() call carrying the resource key.
func replaceFirstLiteral(content, literal, key string) string {
	single := "'" + literal + "'"
	double := `"` + literal + `"`

	idx := strings.Index(content, single)
	quoted := single
	if di := strings.Index(content, double); di >= 0 && (idx < 0 || di < idx) {
		idx = di
		quoted = double
	}
	if idx < 0 {
		return content
	}

	call := "msg(" + quoted + ", { id: '" + key + "' })"
	return content[:idx] + call + content[idx+len(quoted):]
}

// wrapTemplate builds the replacement block for one interpolated
// template literal: a self-invoking arrow that binds each interpolation
// expression to a placeholderN variable, then returns the msg() call
// over the str-tagged placeholder form.
func wrapTemplate(tl extract.TemplateLocalization) string {
	var b strings.Builder
	b.WriteString("(() => {\n")
	for i, expr := range placeholder.Expressions(tl.Literal) {
		b.WriteString(tl.Indent)
		b.WriteString("    const placeholder")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(" = ")
		b.WriteString(expr)
		b.WriteString(";\n")
	}
	b.WriteString(tl.Indent)
	b.WriteString("    return msg(str`")
	b.WriteString(tl.Code)
	b.WriteString("`, { id: '")
	b.WriteString(tl.Key)
	b.WriteString("' });\n")
	b.WriteString(tl.Indent)
	b.WriteString("})()")
	return b.String()
}

// ensureImport makes the source import msg and updateWhenLocaleChanges
// (plus str when template localizations are present) exactly once. An
// existing localization import line is normalized in place; otherwise
// the import is inserted after the last top-level import line. An
// existing import that already pulls str keeps it, since earlier
// rewrites may depend on the tag.
func ensureImport(content string, withStr bool) string {
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		if !isLocalizationImport(line) {
			continue
		}
		if strings.Contains(line, "str") {
			withStr = true
		}
		lines[i] = importLine(withStr)
		return strings.Join(lines, "\n")
	}

	insertAt := 0
	for i, line := range lines {
		if strings.HasPrefix(line, "import ") {
			insertAt = i + 1
		}
	}
	rebuilt := make([]string, 0, len(lines)+1)
	rebuilt = append(rebuilt, lines[:insertAt]...)
	rebuilt = append(rebuilt, importLine(withStr))
	rebuilt = append(rebuilt, lines[insertAt:]...)
	return strings.Join(rebuilt, "\n")
}

func isLocalizationImport(line string) bool {
	return strings.Contains(line, "from '"+localizationModule+"'") ||
		strings.Contains(line, `from "`+localizationModule+`"`)
}

func importLine(withStr bool) string {
	if withStr {
		return "import { msg, str, updateWhenLocaleChanges } from '" + localizationModule + "';"
	}
	return "import { msg, updateWhenLocaleChanges } from '" + localizationModule + "';"
}

// ensureLocaleSubscription inserts the locale-change subscription right
// after the opening brace of the component constructor. Sources without
// a constructor are left alone.
func ensureLocaleSubscription(content string) string {
	if strings.Contains(content, localeSubscription) {
		return content
	}
	loc := constructorPattern.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[:loc[1]] + "\n        " + localeSubscription + ";" + content[loc[1]:]
}
