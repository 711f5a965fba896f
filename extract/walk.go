package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// i18nDirName is the resource-file directory inside the Dev UI tree.
// Generated resource modules must never be re-scanned as sources.
const i18nDirName = "i18n"

// skipDirs contains directory names to skip during source scanning.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"vendor":       true,
}

// FindSources recursively collects the .js files under the Dev UI root,
// skipping the i18n resource directory and common junk directories.
// Results are sorted for deterministic processing order.
func FindSources(devUIRoot string) ([]string, error) {
	var files []string

	err := filepath.Walk(devUIRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if info.IsDir() {
			name := info.Name()
			if skipDirs[name] || name == i18nDirName {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".js") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", devUIRoot, err)
	}

	sort.Strings(files)
	return files, nil
}
