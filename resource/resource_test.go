package resource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	content := "import { str } from '@lit/localize';\n\n" +
		"export const templates = {\n" +
		"    'ext-goodbye': 'Goodbye',\n" +
		"    'ext-hello_world': 'Hello world',\n" +
		"    'ext-items_found': str`Found {0} items in {1}`,\n" +
		"};\n"

	m := Parse(content)
	if m.Len() != 3 {
		t.Fatalf("len = %d, want 3", m.Len())
	}

	plain, ok := m.Get("ext-hello_world")
	if !ok || plain.Value != "Hello world" || plain.Template {
		t.Fatalf("ext-hello_world = %+v", plain)
	}

	tmpl, ok := m.Get("ext-items_found")
	if !ok || !tmpl.Template {
		t.Fatalf("ext-items_found = %+v", tmpl)
	}
	if tmpl.Value != "Found {0} items in {1}" {
		t.Fatalf("template value = %q", tmpl.Value)
	}

	if got := m.Serialize(); got != content {
		t.Fatalf("round trip mismatch:\n got: %q\nwant: %q", got, content)
	}
}

func TestParseTemplatedShapeWins(t *testing.T) {
	// A hand-edited file may carry ${...} expressions; reading back must
	// renumber them into the numbered form.
	m := Parse("'k': str`Hello ${user}, bye ${user}`")
	e, ok := m.Get("k")
	if !ok || !e.Template {
		t.Fatalf("entry = %+v, ok = %v", e, ok)
	}
	if e.Value != "Hello {0}, bye {1}" {
		t.Fatalf("value = %q, want Hello {0}, bye {1}", e.Value)
	}
}

func TestSerializeSortsAndEscapes(t *testing.T) {
	m := NewMap()
	m.Set("b-key", Entry{Value: "It's here"})
	m.Set("a-key", Entry{Value: "tick `quoted`", Template: true})

	out := m.Serialize()

	if !strings.HasPrefix(out, "import { str } from '@lit/localize';\n") {
		t.Fatalf("missing str import:\n%s", out)
	}
	aPos := strings.Index(out, "'a-key'")
	bPos := strings.Index(out, "'b-key'")
	if aPos < 0 || bPos < 0 || aPos > bPos {
		t.Fatalf("keys not sorted: a=%d b=%d\n%s", aPos, bPos, out)
	}
	if !strings.Contains(out, `'It\'s here'`) {
		t.Fatalf("single quote not escaped:\n%s", out)
	}
	if !strings.Contains(out, "str`tick \\`quoted\\``") {
		t.Fatalf("backtick not escaped:\n%s", out)
	}
}

func TestSerializeWithoutTemplatesOmitsImport(t *testing.T) {
	m := NewMap()
	m.Set("k", Entry{Value: "v"})
	if out := m.Serialize(); strings.Contains(out, "@lit/localize") {
		t.Fatalf("unexpected str import:\n%s", out)
	}
}

func TestEmptyMapWritesNothing(t *testing.T) {
	m := NewMap()
	if out := m.Serialize(); out != "" {
		t.Fatalf("serialize = %q, want empty", out)
	}

	path := filepath.Join(t.TempDir(), "en.js")
	if err := m.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file should not exist, stat err = %v", err)
	}
}

func TestParseFileMissingYieldsEmptyMap(t *testing.T) {
	m, err := ParseFile(filepath.Join(t.TempDir(), "nope.js"))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("len = %d, want 0", m.Len())
	}
}

func TestSetIfAbsent(t *testing.T) {
	m := NewMap()
	if !m.SetIfAbsent("k", Entry{Value: "first"}) {
		t.Fatal("first insert should succeed")
	}
	if m.SetIfAbsent("k", Entry{Value: "second"}) {
		t.Fatal("second insert should be rejected")
	}
	e, _ := m.Get("k")
	if e.Value != "first" {
		t.Fatalf("value = %q, want first", e.Value)
	}
}
