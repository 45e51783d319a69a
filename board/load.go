package board

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents a map file format.
type Format string

const (
	// FormatText is the plain one-row-per-line format.
	FormatText Format = "text"
	// FormatYAML is the YAML document format.
	FormatYAML Format = "yaml"
)

// mapDocument is the YAML map layout.
type mapDocument struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// FormatForPath determines the map format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".map", "":
		return FormatText, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// LoadFile loads a board from a map file, choosing the format by extension.
func LoadFile(path string) (*Board, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("board: open map: %w", err)
	}
	defer f.Close()

	return Load(f, format)
}

// Load reads a board from r in the given format.
func Load(r io.Reader, format Format) (*Board, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("board: read map: %w", err)
	}

	switch format {
	case FormatText:
		return Parse(string(data))
	case FormatYAML:
		var doc mapDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		b, err := FromRows(doc.Rows...)
		if err != nil {
			return nil, err
		}
		b.name = doc.Name

		return b, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
