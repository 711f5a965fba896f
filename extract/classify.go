package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// codeTokenPattern matches bare identifiers, dotted paths, URLs without
// scheme, module specifiers — whitespace-free strings that are code
// artifacts rather than prose.
var codeTokenPattern = regexp.MustCompile(`^[A-Za-z0-9._/@:-]+$`)

// msgCallPattern detects an existing localization call adjacent to a
// literal, so already-wrapped text is never re-extracted. Covers both
// plain calls msg('...') and template calls msg(str`...`).
var msgCallPattern = regexp.MustCompile("msg\\s*\\(\\s*(['\"]|str\\s*`)")

// markerWindow is how many bytes around a literal are searched for an
// existing msg( marker.
const markerWindow = 8

// IsUserVisible reports whether a scanned literal should be treated as
// translatable UI text. start is the byte offset of the literal's
// opening delimiter in content.
//
// A literal qualifies only when its trimmed text is 3..120 characters,
// contains at least one letter, is not a whitespace-free code token,
// does not start with "http" or "@", does not sit on an import line,
// and is not already adjacent to a msg( call.
func IsUserVisible(literal string, start int, content string) bool {
	trimmed := strings.TrimSpace(literal)

	if n := utf8.RuneCountInString(trimmed); n < 3 || n > 120 {
		return false
	}
	if !containsLetter(trimmed) {
		return false
	}
	if !strings.Contains(trimmed, " ") && codeTokenPattern.MatchString(trimmed) {
		return false
	}
	if strings.HasPrefix(trimmed, "http") || strings.HasPrefix(trimmed, "@") {
		return false
	}
	if isImportLine(start, content) {
		return false
	}

	lo := start - markerWindow
	if lo < 0 {
		lo = 0
	}
	hi := start + len(trimmed) + markerWindow
	if hi > len(content) {
		hi = len(content)
	}
	return !msgCallPattern.MatchString(content[lo:hi])
}

// isImportLine reports whether the full line containing offset start is
// an import statement.
func isImportLine(start int, content string) bool {
	if start > len(content) {
		start = len(content)
	}
	lineStart := strings.LastIndex(content[:start], "\n") + 1
	lineEnd := strings.Index(content[start:], "\n")
	if lineEnd < 0 {
		lineEnd = len(content)
	} else {
		lineEnd += start
	}
	line := content[lineStart:lineEnd]
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "import ")
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
