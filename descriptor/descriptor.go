// Package descriptor reads extension metadata out of the runtime Maven
// module descriptor.
package descriptor

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the metadata the translator needs from an extension
// project: the artifactId names resource keys, the description seeds
// the meta-description entry.
type Extension struct {
	ArtifactID  string
	Description string
}

// RuntimePOM is the descriptor location relative to the extension root.
const RuntimePOM = "runtime/pom.xml"

// Read parses the runtime pom.xml under root. A missing descriptor is
// not an error; it returns (nil, nil) and the caller falls back to
// defaults.
func Read(root string) (*Extension, error) {
	path := filepath.Join(root, filepath.FromSlash(RuntimePOM))
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	ext, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return ext, nil
}

// parse walks the XML token stream and keeps the first artifactId and
// first description in document order. The first artifactId in a Maven
// descriptor is either the parent's or the project's own; for the flat
// runtime modules this tool targets, both carry the extension name.
func parse(data []byte) (*Extension, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var ext Extension
	var current string
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			current = t.Name.Local
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				break
			}
			switch current {
			case "artifactId":
				if ext.ArtifactID == "" {
					ext.ArtifactID = text
				}
			case "description":
				if ext.Description == "" {
					ext.Description = text
				}
			}
		case xml.EndElement:
			current = ""
		}
	}
	return &ext, nil
}
