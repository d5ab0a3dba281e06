// FILE: lixenwraith/flagset/schema_test.go
package flagset_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flagset"
)

const tomlSchema = `
name = "server"

[flags.host]
cmdline = ["--host"]
env = "HOST"
config = "server.host"
default = "localhost"
help = "address to bind"
order = 1

[flags.port]
type = "int"
cmdline = ["--port", "-p"]
env = "PORT"
config = "server.port"
default = 8080
order = 2

[flags.timeout]
type = "duration"
config = "server.timeout"
default = "30s"
order = 3

[flags.src]
cmdline = "src"
order = 10

[flags.dst]
cmdline = "dst"
order = 10
`

const yamlSchema = `
flags:
  verbose:
    type: bool
    cmdline: ["--verbose", "-v"]
    default: false
  ratio:
    type: float
    env: RATIO
    default: 0.5
  tags:
    type: strings
    cmdline: "--tags"
  token:
    env: TOKEN
    required: true
`

func TestLoadSchema(t *testing.T) {
	dir := t.TempDir()

	t.Run("TOML", func(t *testing.T) {
		path := filepath.Join(dir, "server.toml")
		require.NoError(t, os.WriteFile(path, []byte(tomlSchema), 0644))

		fs, err := flagset.LoadSchema(path)
		require.NoError(t, err)
		assert.Equal(t, "server", fs.Name())
		// Equal order falls back to the name
		assert.Equal(t, []string{"host", "port", "timeout", "dst", "src"}, fs.Names())

		port, ok := fs.Lookup("port")
		require.True(t, ok)
		assert.Equal(t, []string{"--port", "-p"}, port.Cmdline)
		assert.Equal(t, 8080, port.Default)
		assert.Equal(t, "int", port.Type.Type())

		timeout, _ := fs.Lookup("timeout")
		assert.Equal(t, 30*time.Second, timeout.Default)

		src, _ := fs.Lookup("src")
		assert.True(t, src.IsPositional())

		cfg, err := fs.Resolve([]string{"in", "out", "-p", "9000"}, map[string]string{"HOST": "h"}, nil)
		require.NoError(t, err)
		v, _ := cfg.Get("dst")
		assert.Equal(t, "in", v)
		v, _ = cfg.Get("src")
		assert.Equal(t, "out", v)
		v, _ = cfg.Get("port")
		assert.Equal(t, 9000, v)
		v, _ = cfg.Get("host")
		assert.Equal(t, "h", v)
	})

	t.Run("YAMLWithFileName", func(t *testing.T) {
		path := filepath.Join(dir, "worker.yaml")
		require.NoError(t, os.WriteFile(path, []byte(yamlSchema), 0644))

		fs, err := flagset.LoadSchema(path)
		require.NoError(t, err)
		assert.Equal(t, "worker", fs.Name())
		assert.Equal(t, []string{"ratio", "tags", "token", "verbose"}, fs.Names())

		cfg, err := fs.Resolve([]string{"-v", "--tags", "a,b"}, map[string]string{"TOKEN": "t"}, nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"verbose": true,
			"ratio":   0.5,
			"tags":    []string{"a", "b"},
			"token":   "t",
		}, cfg.Map())

		_, err = fs.Resolve(nil, nil, nil)
		assert.ErrorIs(t, err, flagset.ErrMissingRequired)
	})

	t.Run("JSON", func(t *testing.T) {
		fs, err := flagset.ReadSchema([]byte(`{"name": "j", "flags": {"n": {"type": "int", "env": "N", "default": 3}}}`), "json")
		require.NoError(t, err)
		f, _ := fs.Lookup("n")
		assert.Equal(t, 3, f.Default)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := flagset.LoadSchema(filepath.Join(dir, "nope.toml"))
		assert.ErrorIs(t, err, flagset.ErrSchema)
	})
}

func TestSchemaRejects(t *testing.T) {
	tests := []struct {
		name   string
		schema string
	}{
		{"NoFlags", `{"name": "x"}`},
		{"EmptyFlags", `{"flags": {}}`},
		{"UnknownType", `{"flags": {"a": {"type": "uuid", "env": "A"}}}`},
		{"UnknownKey", `{"flags": {"a": {"env": "A", "alias": "b"}}}`},
		{"NoSource", `{"flags": {"a": {"help": "orphan"}}}`},
		{"RequiredWithDefault", `{"flags": {"a": {"env": "A", "required": true, "default": "x"}}}`},
		{"BadDefault", `{"flags": {"a": {"type": "int", "env": "A", "default": "many"}}}`},
		{"DuplicateSpelling", `{"flags": {"a": {"cmdline": "-a"}, "b": {"cmdline": ["-a"]}}}`},
		{"ReservedHelp", `{"flags": {"a": {"cmdline": "--help"}}}`},
		{"Malformed", `{"flags": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := flagset.ReadSchema([]byte(tt.schema), "json")
			assert.ErrorIs(t, err, flagset.ErrSchema)
		})
	}
}
