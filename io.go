// File: lixenwraith/flagset/io.go
package flagset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Dump writes the resolved values to w in TOML format. Nil values are omitted.
func (c *Config) Dump(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c.exportable()); err != nil {
		return fmt.Errorf("failed to marshal resolved flags to TOML: %w", err)
	}
	return nil
}

// Save writes the resolved values to path atomically. The format follows the
// extension (.json, .yaml/.yml, anything else TOML). Nil values are omitted.
func (c *Config) Save(path string) error {
	data := c.exportable()

	var (
		encoded []byte
		err     error
	)
	switch detectFileFormat(path) {
	case "json":
		encoded, err = json.MarshalIndent(data, "", "  ")
		encoded = append(encoded, '\n')
	case "yaml":
		encoded, err = yaml.Marshal(data)
	default:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(data)
		encoded = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("failed to marshal resolved flags for '%s': %w", path, err)
	}

	return atomicWriteFile(path, encoded)
}

// exportable returns the non-nil values with durations rendered as text, so
// every output format reads back through the Duration converter.
func (c *Config) exportable() map[string]any {
	out := make(map[string]any, len(c.values))
	for name, v := range c.values {
		switch tv := v.(type) {
		case nil:
			continue
		case time.Duration:
			out[name] = tv.String()
		default:
			out[name] = v
		}
	}
	return out
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
