package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	cascadeerrors "github.com/alexisbeaulieu97/cascade/pkg/errors"
)

// Format identifies a theme document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatForPath infers the document format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", cascadeerrors.NewValidationError("path", fmt.Sprintf("unsupported theme file extension %q", filepath.Ext(path)), nil)
	}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected yaml or toml)", name)
	}
}

// Extension returns the file extension used for the format.
func (f Format) Extension() string {
	if f == FormatTOML {
		return ".toml"
	}
	return ".yaml"
}

// LoadTheme reads a theme file from disk, validates it, and returns the resulting model.
func LoadTheme(path string) (*Theme, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cascadeerrors.NewParseError(path, 0, err)
	}

	return ParseTheme(data, format, path)
}

// ParseTheme decodes and validates a theme document. source names the
// document in error messages.
func ParseTheme(data []byte, format Format, source string) (*Theme, error) {
	var theme Theme

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&theme); err != nil {
			return nil, cascadeerrors.NewParseError(source, extractLine(err), err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&theme); err != nil {
			return nil, cascadeerrors.NewParseError(source, tomlLine(err), err)
		}
	default:
		return nil, cascadeerrors.NewValidationError("format", fmt.Sprintf("unsupported format %q", format), nil)
	}

	if err := ValidateTheme(&theme); err != nil {
		return nil, err
	}

	return &theme, nil
}

// EncodeTheme serialises a theme in the given format.
func EncodeTheme(theme *Theme, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(theme); err != nil {
			return nil, fmt.Errorf("encode yaml theme: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml theme: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(theme)
		if err != nil {
			return nil, fmt.Errorf("encode toml theme: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
