package extract

import (
	"strings"
	"testing"
)

func TestIsUserVisibleAcceptsProse(t *testing.T) {
	content := `const label = 'Hello world';`
	start := strings.Index(content, "'Hello")
	if !IsUserVisible("Hello world", start, content) {
		t.Fatal("plain prose should classify as user visible")
	}
}

func TestIsUserVisibleExclusions(t *testing.T) {
	cases := []struct {
		name    string
		literal string
	}{
		{"too short", "ok"},
		{"dotted path", "a.b.c"},
		{"url", "https://example.com"},
		{"scoped package", "@scope/pkg"},
		{"no letters", "12345 67"},
		{"identifier", "someIdentifier"},
		{"module path", "qwc/my-page.js"},
		{"too long", strings.Repeat("words ", 25)},
	}
	for _, tc := range cases {
		content := "const x = '" + tc.literal + "';"
		start := strings.Index(content, "'")
		if IsUserVisible(tc.literal, start, content) {
			t.Errorf("%s: %q should be rejected", tc.name, tc.literal)
		}
	}
}

func TestIsUserVisibleRejectsImportLines(t *testing.T) {
	content := "import { html } from 'some long module name';\nconst y = 'Hello there';"
	start := strings.Index(content, "'some")
	if IsUserVisible("some long module name", start, content) {
		t.Fatal("literal on an import line should be rejected")
	}

	// Indented imports count too.
	content = "    import 'Not a real message here';"
	if IsUserVisible("Not a real message here", strings.Index(content, "'"), content) {
		t.Fatal("indented import line should be rejected")
	}
}

func TestIsUserVisibleRejectsAlreadyWrapped(t *testing.T) {
	content := `this.title = msg('Hello world', { id: 'x' });`
	start := strings.Index(content, "'Hello")
	if IsUserVisible("Hello world", start, content) {
		t.Fatal("literal inside an existing msg() call should be rejected")
	}
}

func TestIsUserVisibleTrimsBeforeLengthCheck(t *testing.T) {
	content := `const x = '  a  ';`
	if IsUserVisible("  a  ", strings.Index(content, "'"), content) {
		t.Fatal("whitespace padding must not satisfy the length rule")
	}
}
