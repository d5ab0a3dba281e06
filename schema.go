// FILE: lixenwraith/flagset/schema.go
package flagset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed flagset.schema.json
var schemaData []byte

var compiledSchema *jsonschema.Schema

func init() {
	var err error
	compiledSchema, err = jsonschema.CompileString("flagset.schema.json", string(schemaData))
	if err != nil {
		panic(fmt.Errorf("compile flagset schema: %w", err))
	}
}

type schemaFile struct {
	Name  string              `mapstructure:"name"`
	Flags map[string]flagSpec `mapstructure:"flags"`
}

type flagSpec struct {
	Type     string   `mapstructure:"type"`
	Cmdline  []string `mapstructure:"cmdline"`
	Env      string   `mapstructure:"env"`
	Config   string   `mapstructure:"config"`
	Default  any      `mapstructure:"default"`
	Required bool     `mapstructure:"required"`
	Help     string   `mapstructure:"help"`
	Order    int      `mapstructure:"order"`
}

// LoadSchema builds a FlagSet from a declarative definition file in JSON, TOML
// or YAML:
//
//	name = "server"
//
//	[flags.port]
//	type = "int"
//	cmdline = ["--port", "-p"]
//	env = "PORT"
//	config = "server.port"
//	default = 8080
//
// Flags are registered by ascending "order", then by name, which also fixes
// the order of positional arguments. Without a "name" key the file's base name is used.
func LoadSchema(path string) (*FlagSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read '%s': %w", ErrSchema, path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	fs, err := ReadSchema(data, format)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	if fs.name == "" {
		fs.name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return fs, nil
}

// ReadSchema builds a FlagSet from definition data in the named format
// ("json", "toml" or "yaml").
func ReadSchema(data []byte, format string) (*FlagSet, error) {
	doc, err := parseDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	normalized, err := normalizeJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if err := compiledSchema.Validate(normalized); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	var file schemaFile
	if err := decodeValue(normalized, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	names := make([]string, 0, len(file.Flags))
	for name := range file.Flags {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		oi, oj := file.Flags[names[i]].Order, file.Flags[names[j]].Order
		if oi != oj {
			return oi < oj
		}
		return names[i] < names[j]
	})

	fs := New(file.Name)
	for _, name := range names {
		flag, err := file.Flags[name].build(name)
		if err != nil {
			return nil, err
		}
		if err := fs.Add(name, flag); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchema, err)
		}
	}
	return fs, nil
}

func (s flagSpec) build(name string) (Flag, error) {
	conv, ok := converterByName(s.Type)
	if !ok {
		return Flag{}, fmt.Errorf("%w: flag '%s': unknown type %q", ErrSchema, name, s.Type)
	}

	flag := Flag{
		Type:     conv,
		Cmdline:  s.Cmdline,
		Env:      s.Env,
		Config:   s.Config,
		Required: s.Required,
		Help:     s.Help,
	}
	if s.Default != nil {
		def, err := conv.Decode(s.Default)
		if err != nil {
			return Flag{}, fmt.Errorf("%w: flag '%s': invalid default %v: %w", ErrSchema, name, s.Default, err)
		}
		flag.Default = def
	}
	return flag, nil
}

// normalizeJSON round-trips a decoded document through JSON so that the
// validator only sees JSON value types, whichever format it came from.
func normalizeJSON(doc Document) (any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var out any
	if err := decoder.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
