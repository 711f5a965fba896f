// Package config implements auto-detection of extension project layout
// and the optional .devui-translate.yaml project file.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// devUIRelPath is where a Quarkus extension keeps its Dev UI web
// sources, relative to the extension root.
const devUIRelPath = "deployment/src/main/resources/dev-ui"

// Project holds auto-detected extension configuration.
type Project struct {
	// Root is the absolute extension root directory.
	Root string
	// DevUIDir is the directory scanned for .js sources.
	DevUIDir string
	// I18nDir is where resource modules (en.js, fr.js, ...) live.
	I18nDir string
	// RuntimePOM is the path of the runtime Maven descriptor.
	RuntimePOM string
	// Locales are the locale codes with an existing resource module,
	// sorted, "en" included when present.
	Locales []string
}

// HasDevUI reports whether the Dev UI source directory exists.
func (p *Project) HasDevUI() bool {
	info, err := os.Stat(p.DevUIDir)
	return err == nil && info.IsDir()
}

// ResourcePath returns the resource module path for a locale code.
func (p *Project) ResourcePath(locale string) string {
	return filepath.Join(p.I18nDir, locale+".js")
}

// Detect auto-detects the project layout under rootDir. A yaml project
// file may later override DevUIDir; callers apply overrides on top.
func Detect(rootDir string) *Project {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		absRoot = rootDir
	}

	p := &Project{
		Root:       absRoot,
		DevUIDir:   filepath.Join(absRoot, filepath.FromSlash(devUIRelPath)),
		RuntimePOM: filepath.Join(absRoot, "runtime", "pom.xml"),
	}
	p.I18nDir = filepath.Join(p.DevUIDir, "i18n")
	p.Locales = detectLocales(p.I18nDir)
	return p
}

// SetDevUIDir points the project at a different Dev UI directory,
// re-deriving the i18n directory and known locales. Relative paths are
// resolved against the project root.
func (p *Project) SetDevUIDir(dir string) {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(p.Root, dir)
	}
	p.DevUIDir = dir
	p.I18nDir = filepath.Join(dir, "i18n")
	p.Locales = detectLocales(p.I18nDir)
}

// detectLocales lists locale codes with a resource module in dir.
func detectLocales(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var locales []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".js") {
			continue
		}
		locale := strings.TrimSuffix(name, ".js")
		if isLocaleCode(locale) {
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)
	return locales
}

// isLocaleCode checks if a string looks like a locale code
// (en, fr, pt-BR, zh-CN and friends).
func isLocaleCode(s string) bool {
	if len(s) == 2 {
		return s[0] >= 'a' && s[0] <= 'z' && s[1] >= 'a' && s[1] <= 'z'
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 2 && len(parts[0]) == 2 && len(parts[1]) >= 2 {
		return parts[0][0] >= 'a' && parts[0][0] <= 'z' &&
			parts[0][1] >= 'a' && parts[0][1] <= 'z'
	}
	return false
}
