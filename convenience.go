// File: lixenwraith/flagset/convenience.go
package flagset

import (
	"fmt"
	"strings"
)

// Add registers a flag on CommandLine.
func Add(name string, flag Flag) error {
	return CommandLine.Add(name, flag)
}

// MustAdd registers a flag on CommandLine and panics on error.
func MustAdd(name string, flag Flag) {
	CommandLine.MustAdd(name, flag)
}

// Parse resolves CommandLine. See FlagSet.Parse.
func Parse(opts ...Option) (*Config, error) {
	return CommandLine.Parse(opts...)
}

// MustParse resolves CommandLine in exception mode and panics on failure.
// A help request is a failure here.
func MustParse(opts ...Option) *Config {
	opts = append(append([]Option(nil), opts...), WithExceptions(true))
	cfg, err := CommandLine.Parse(opts...)
	if err != nil {
		panic(fmt.Sprintf("flagset parse failed: %v", err))
	}
	return cfg
}

// Debug returns a formatted string showing every resolved value and its source
func (c *Config) Debug() string {
	var b strings.Builder
	b.WriteString("Resolved flags:\n")
	for _, name := range c.names {
		fmt.Fprintf(&b, "  %s = %v (%s)\n", name, c.values[name], c.sources[name])
	}
	return b.String()
}
