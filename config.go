// FILE: lixenwraith/flagset/config.go
package flagset

// Config is the result of a successful resolution. Every registered canonical
// name maps to a value, which is nil for optional flags with no default.
type Config struct {
	names   []string
	values  map[string]any
	sources map[string]Source
}

func newConfig(names []string) *Config {
	return &Config{
		names:   names,
		values:  make(map[string]any, len(names)),
		sources: make(map[string]Source, len(names)),
	}
}

func (c *Config) set(name string, value any, source Source) {
	c.values[name] = value
	c.sources[name] = source
}

// Get returns the resolved value. The second return is false for unknown names.
func (c *Config) Get(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Source reports which source supplied the value of name, or "" for unknown names.
func (c *Config) Source(name string) Source {
	return c.sources[name]
}

// Names returns the canonical names in registration order.
func (c *Config) Names() []string {
	return append([]string(nil), c.names...)
}

// Map returns a copy of the resolved mapping.
func (c *Config) Map() map[string]any {
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Scan decodes the resolved values into the struct or map pointed to by target.
// Struct fields are matched by the "flag" tag, falling back to the field name.
func (c *Config) Scan(target any) error {
	return decodeStruct(c.values, target)
}
