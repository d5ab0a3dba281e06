// FILE: lixenwraith/flagset/loader.go
package flagset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source identifies where a resolved value came from.
type Source string

const (
	// SourceDefault represents the flag's declared default
	SourceDefault Source = "default"
	// SourceFile represents values read from the config document
	SourceFile Source = "file"
	// SourceEnv represents values read from environment variables
	SourceEnv Source = "env"
	// SourceCLI represents values read from command-line arguments
	SourceCLI Source = "cli"
)

// MaxConfigSize bounds how much of a config file is read.
const MaxConfigSize = 10 << 20

// ConfigParser answers dotted-path queries against a loaded config document.
// A missing path returns false.
type ConfigParser interface {
	Get(path string) (any, bool)
}

// ConfigParserFunc loads the document at path.
type ConfigParserFunc func(path string) (ConfigParser, error)

// Document is a nested key-value tree as produced by the JSON, TOML and YAML decoders.
type Document map[string]any

// Get walks path one segment at a time. Missing segments at any depth are not an error.
func (d Document) Get(path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	return navigateToPath(d, path)
}

// LoadFile reads a config document, choosing the format by extension and
// falling back to content detection.
func LoadFile(path string) (ConfigParser, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, fmt.Errorf("%w: unable to determine config format for file '%s'", ErrConfigLoad, path)
		}
	}

	doc, err := parseDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", ErrConfigLoad, path, err)
	}
	return doc, nil
}

// JSONParser reads path strictly as JSON regardless of its extension.
func JSONParser(path string) (ConfigParser, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := parseDocument(data, "json")
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", ErrConfigLoad, path, err)
	}
	return doc, nil
}

func readConfigFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w: '%s'", ErrConfigLoad, ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: failed to open '%s': %w", ErrConfigLoad, path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat '%s': %w", ErrConfigLoad, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: '%s' is a directory", ErrConfigLoad, path)
	}
	if info.Size() > MaxConfigSize {
		return nil, fmt.Errorf("%w: '%s' exceeds maximum size %d bytes", ErrConfigLoad, path, MaxConfigSize)
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxConfigSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read '%s': %w", ErrConfigLoad, path, err)
	}
	return data, nil
}

// parseDocument decodes data in the named format. The top level must be a table.
func parseDocument(data []byte, format string) (Document, error) {
	doc := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	return doc, nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// JSON first, YAML accepts most JSON documents
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
