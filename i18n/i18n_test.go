package i18n

import "testing"

func clearLocaleEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
}

func TestDetectLanguagePriorityAndNormalization(t *testing.T) {
	t.Run("LANGUAGE has highest priority", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANGUAGE", "fr_FR.UTF-8:en_US")
		t.Setenv("LC_ALL", "de_DE.UTF-8")

		if got := detectLanguage(); got != "fr_FR" {
			t.Fatalf("detectLanguage() = %q, want fr_FR", got)
		}
	})

	t.Run("C and POSIX are skipped", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANGUAGE", "C")
		t.Setenv("LC_ALL", "POSIX")
		t.Setenv("LC_MESSAGES", "de_AT.UTF-8")

		if got := detectLanguage(); got != "de_AT" {
			t.Fatalf("detectLanguage() = %q, want de_AT", got)
		}
	})

	t.Run("falls back to en", func(t *testing.T) {
		clearLocaleEnv(t)
		if got := detectLanguage(); got != "en" {
			t.Fatalf("detectLanguage() = %q, want en", got)
		}
	})
}

func TestTAndNFallbackWhenUninitialized(t *testing.T) {
	old := po
	po = nil
	t.Cleanup(func() { po = old })

	if got := T("Extraction complete"); got != "Extraction complete" {
		t.Fatalf("T fallback = %q", got)
	}
	if got := N("file", "files", 1); got != "file" {
		t.Fatalf("N singular fallback = %q", got)
	}
	if got := N("file", "files", 2); got != "files" {
		t.Fatalf("N plural fallback = %q", got)
	}
}

func TestEmbeddedFrenchLocale(t *testing.T) {
	Init("fr")
	t.Cleanup(func() { po = nil })

	if got := T("Extraction complete"); got != "Extraction terminée" {
		t.Fatalf("T(fr) = %q", got)
	}
	// Untranslated strings pass through.
	if got := T("Some unknown message"); got != "Some unknown message" {
		t.Fatalf("T passthrough = %q", got)
	}
}
