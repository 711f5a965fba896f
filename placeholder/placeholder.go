// Package placeholder handles ${...} interpolation expressions inside
// JavaScript template literals.
//
// A template body like "Hello ${user.name}, you have ${count} items" is
// converted into two parallel forms that must stay index-aligned:
//
//   - the numbered form "Hello {0}, you have {1} items", stored in
//     resource files and handed to translators, and
//   - the code form "Hello ${placeholder0}, you have ${placeholder1} items",
//     emitted into rewritten source where each placeholderN is a locally
//     bound variable.
//
// Both forms number expressions left to right, so index N always refers
// to the same original expression.
package placeholder

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern matches a single ${...} interpolation expression.
// The expression body may not contain a closing brace.
var Pattern = regexp.MustCompile(`\$\{([^}]*)\}`)

// Number replaces each ${...} expression with {0}, {1}, ... in order
// of appearance. Text outside placeholders is preserved verbatim.
func Number(template string) string {
	index := 0
	return Pattern.ReplaceAllStringFunc(template, func(string) string {
		s := fmt.Sprintf("{%d}", index)
		index++
		return s
	})
}

// Code replaces each ${...} expression with ${placeholder0},
// ${placeholder1}, ... using the same left-to-right index derivation
// as Number.
func Code(template string) string {
	index := 0
	return Pattern.ReplaceAllStringFunc(template, func(string) string {
		s := fmt.Sprintf("${placeholder%d}", index)
		index++
		return s
	})
}

// Strip replaces every ${...} expression with a single space and trims
// the result. Used to classify a template by its fixed text only.
func Strip(template string) string {
	return strings.TrimSpace(Pattern.ReplaceAllString(template, " "))
}

// Expressions returns the trimmed expression bodies in order of
// appearance. Expressions[N] is the source of placeholderN.
func Expressions(template string) []string {
	matches := Pattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	exprs := make([]string, len(matches))
	for i, m := range matches {
		exprs[i] = strings.TrimSpace(m[1])
	}
	return exprs
}
