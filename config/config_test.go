package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDetectLayoutAndLocales(t *testing.T) {
	root := t.TempDir()
	devUI := filepath.Join(root, "deployment", "src", "main", "resources", "dev-ui")
	mustWrite(t, filepath.Join(devUI, "qwc-page.js"), "x")
	mustWrite(t, filepath.Join(devUI, "i18n", "en.js"), "x")
	mustWrite(t, filepath.Join(devUI, "i18n", "fr.js"), "x")
	mustWrite(t, filepath.Join(devUI, "i18n", "fr-CA.js"), "x")
	mustWrite(t, filepath.Join(devUI, "i18n", "notes.txt"), "x")

	p := Detect(root)
	if !p.HasDevUI() {
		t.Fatal("dev-ui directory not detected")
	}
	if p.DevUIDir != devUI {
		t.Fatalf("DevUIDir = %q, want %q", p.DevUIDir, devUI)
	}
	if want := filepath.Join(devUI, "i18n"); p.I18nDir != want {
		t.Fatalf("I18nDir = %q, want %q", p.I18nDir, want)
	}
	if want := []string{"en", "fr", "fr-CA"}; !reflect.DeepEqual(p.Locales, want) {
		t.Fatalf("Locales = %v, want %v", p.Locales, want)
	}
	if want := filepath.Join(devUI, "i18n", "de.js"); p.ResourcePath("de") != want {
		t.Fatalf("ResourcePath(de) = %q", p.ResourcePath("de"))
	}
}

func TestDetectWithoutDevUI(t *testing.T) {
	p := Detect(t.TempDir())
	if p.HasDevUI() {
		t.Fatal("empty project must not report a dev-ui directory")
	}
	if len(p.Locales) != 0 {
		t.Fatalf("Locales = %v, want none", p.Locales)
	}
}

func TestSetDevUIDirRelative(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "web", "i18n", "en.js"), "x")

	p := Detect(root)
	p.SetDevUIDir("web")
	if want := filepath.Join(root, "web"); p.DevUIDir != want {
		t.Fatalf("DevUIDir = %q, want %q", p.DevUIDir, want)
	}
	if want := []string{"en"}; !reflect.DeepEqual(p.Locales, want) {
		t.Fatalf("Locales = %v, want %v", p.Locales, want)
	}
}

func TestLoadProjectFile(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, ProjectFileName), `
languages: [fr, de, ja]
dialects: [fr-CA]
provider: groq
model: llama-3.3-70b-versatile
dev_ui_dir: web/dev-ui
`)

	pf, err := LoadProjectFile(root)
	if err != nil {
		t.Fatalf("LoadProjectFile: %v", err)
	}
	if pf == nil {
		t.Fatal("project file not loaded")
	}
	if want := []string{"fr", "de", "ja"}; !reflect.DeepEqual(pf.Languages, want) {
		t.Fatalf("Languages = %v, want %v", pf.Languages, want)
	}
	if pf.Provider != "groq" || pf.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("provider/model = %q/%q", pf.Provider, pf.Model)
	}
	if pf.DevUIDir != "web/dev-ui" {
		t.Fatalf("DevUIDir = %q", pf.DevUIDir)
	}
}

func TestLoadProjectFileMissing(t *testing.T) {
	pf, err := LoadProjectFile(t.TempDir())
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if pf != nil {
		t.Fatalf("pf = %+v, want nil", pf)
	}
}

func TestLoadProjectFileMalformed(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, ProjectFileName), "languages: [unclosed")
	if _, err := LoadProjectFile(root); err == nil {
		t.Fatal("malformed yaml must surface an error")
	}
}

func TestResolveDialectsDefaults(t *testing.T) {
	got := ResolveDialects(nil)
	if want := []string{"fr-FR", "fr-CA"}; !reflect.DeepEqual(got["fr"], want) {
		t.Fatalf("fr dialects = %v, want %v", got["fr"], want)
	}
	if want := []string{"de-AT", "de-CH"}; !reflect.DeepEqual(got["de"], want) {
		t.Fatalf("de dialects = %v, want %v", got["de"], want)
	}
}

func TestResolveDialectsOverridesReplaceDefaults(t *testing.T) {
	got := ResolveDialects([]string{"fr-CA", "pt_br"})
	if want := []string{"fr-CA"}; !reflect.DeepEqual(got["fr"], want) {
		t.Fatalf("fr dialects = %v, want %v", got["fr"], want)
	}
	if want := []string{"pt-BR"}; !reflect.DeepEqual(got["pt"], want) {
		t.Fatalf("pt dialects = %v, want %v", got["pt"], want)
	}
	if _, ok := got["de"]; ok {
		t.Fatal("overrides must replace the defaults entirely")
	}
}

func TestResolveDialectsDiscardsBareTokens(t *testing.T) {
	got := ResolveDialects([]string{"fr", "de-AT"})
	if _, ok := got["fr"]; ok {
		t.Fatal("token without a region part must be discarded")
	}
	if want := []string{"de-AT"}; !reflect.DeepEqual(got["de"], want) {
		t.Fatalf("de dialects = %v, want %v", got["de"], want)
	}
}
