package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilePathUsesXDGDataHome(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	want := filepath.Join(tmp, "devui-translate", "auth.json")
	if got := FilePath(); got != want {
		t.Fatalf("FilePath() = %q, want %q", got, want)
	}
}

func TestSaveLoadRemoveLifecycle(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	store := Store{
		"google":        {Key: "apikey123456"},
		"custom-openai": {Key: "sk-custom", BaseURL: "http://localhost:8080/v1"},
	}
	if err := Save(store); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	path := filepath.Join(tmp, "devui-translate", "auth.json")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat auth.json: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Fatalf("auth.json mode = %o, want 600", info.Mode().Perm())
	}

	if got := GetAPIKey("google"); got != "apikey123456" {
		t.Fatalf("GetAPIKey(google) = %q", got)
	}
	if got := GetBaseURL("custom-openai"); got != "http://localhost:8080/v1" {
		t.Fatalf("GetBaseURL(custom-openai) = %q", got)
	}

	if err := Remove("google"); err != nil {
		t.Fatalf("Remove(google) error: %v", err)
	}
	if got := GetAPIKey("google"); got != "" {
		t.Fatalf("GetAPIKey after remove = %q, want empty", got)
	}
	if got := GetAPIKey("custom-openai"); got != "sk-custom" {
		t.Fatalf("other providers must survive a remove, got %q", got)
	}

	if err := Remove("missing-provider"); err != nil {
		t.Fatalf("Remove(missing) should be no-op, got: %v", err)
	}
}

func TestSetAPIKeyPreservesBaseURL(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	if err := SetAPIKeyWithBaseURL("custom-openai", "old-key", "http://localhost:9000/v1"); err != nil {
		t.Fatalf("SetAPIKeyWithBaseURL() error: %v", err)
	}
	if err := SetAPIKey("custom-openai", "new-key"); err != nil {
		t.Fatalf("SetAPIKey() error: %v", err)
	}

	if got := GetAPIKey("custom-openai"); got != "new-key" {
		t.Fatalf("key = %q, want new-key", got)
	}
	if got := GetBaseURL("custom-openai"); got != "http://localhost:9000/v1" {
		t.Fatalf("base URL lost on key rotation: %q", got)
	}
}

func TestLoadToleratesGarbage(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir := filepath.Join(tmp, "devui-translate")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "auth.json"), []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if got := Load(); len(got) != 0 {
		t.Fatalf("Load() on corrupt file = %#v, want empty store", got)
	}
}

func TestResolveAPIKeyPriority(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	if err := SetAPIKey("groq", "stored-key"); err != nil {
		t.Fatalf("SetAPIKey() error: %v", err)
	}
	t.Setenv(EnvKeyVar, "env-key")

	if got := ResolveAPIKey("groq", "flag-key"); got != "flag-key" {
		t.Fatalf("flag should win, got %q", got)
	}
	if got := ResolveAPIKey("groq", ""); got != "env-key" {
		t.Fatalf("env should win over store, got %q", got)
	}

	t.Setenv(EnvKeyVar, "")
	if got := ResolveAPIKey("groq", ""); got != "stored-key" {
		t.Fatalf("stored key expected, got %q", got)
	}
}

func TestMaskKey(t *testing.T) {
	if got := MaskKey("short"); got != "****" {
		t.Fatalf("MaskKey(short) = %q, want ****", got)
	}
	if got := MaskKey("12345678"); got != "****" {
		t.Fatalf("MaskKey(8 chars) = %q, want ****", got)
	}
	if got := MaskKey("123456789"); got != "1234...6789" {
		t.Fatalf("MaskKey(9 chars) = %q, want 1234...6789", got)
	}
}
