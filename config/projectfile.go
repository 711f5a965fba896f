// Package config — .devui-translate.yaml configuration file support.
//
// When a .devui-translate.yaml exists in the extension root, its values
// sit between CLI flags and auto-detection: flags win, then the file,
// then detection defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFileName is the config file name.
const ProjectFileName = ".devui-translate.yaml"

// ProjectFile is the top-level .devui-translate.yaml structure.
type ProjectFile struct {
	// Languages to translate into, e.g. [fr, de].
	Languages []string `yaml:"languages,omitempty"`
	// Dialects overrides the default dialect sets, e.g. [fr-CA, de-AT].
	Dialects []string `yaml:"dialects,omitempty"`
	// Provider is the translation provider ID (google, groq, ollama,
	// custom-openai).
	Provider string `yaml:"provider,omitempty"`
	// Model overrides the provider's default model.
	Model string `yaml:"model,omitempty"`
	// BaseURL overrides the provider endpoint (custom-openai, ollama).
	BaseURL string `yaml:"base_url,omitempty"`
	// DevUIDir overrides the detected Dev UI source directory,
	// relative to the extension root.
	DevUIDir string `yaml:"dev_ui_dir,omitempty"`
}

// LoadProjectFile loads .devui-translate.yaml from the given directory.
// Returns nil if no file exists.
func LoadProjectFile(rootDir string) (*ProjectFile, error) {
	path := filepath.Join(rootDir, ProjectFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pf ProjectFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &pf, nil
}
