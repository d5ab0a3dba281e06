// FILE: lixenwraith/flagset/flag.go
package flagset

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Flag declares one configuration value and the sources it can be read from.
// At least one of Cmdline, Env and Config must be set.
type Flag struct {
	// Type converts raw input. Nil means String().
	Type Converter

	// Cmdline lists the command-line spellings, e.g. "--verbose", "-v".
	// A single name without a leading dash declares a positional argument.
	Cmdline []string

	// Env is the environment variable name.
	Env string

	// Config is a dot-separated path into the config document, e.g. "server.port".
	Config string

	// Default is used when no source supplies a value. Must be nil for required flags.
	Default any

	Required bool
	Help     string
}

// Validate checks the construction invariants of the flag.
func (f *Flag) Validate() error {
	if len(f.Cmdline) == 0 && f.Env == "" && f.Config == "" {
		return fmt.Errorf("%w: expecting at least one flag name", ErrInvalidFlag)
	}
	if f.Required && f.Default != nil {
		return fmt.Errorf("%w: cannot provide default value for required flag %s", ErrInvalidFlag, f.DisplayName())
	}

	if len(f.Cmdline) > 1 {
		for _, name := range f.Cmdline {
			if !strings.HasPrefix(name, "-") {
				return fmt.Errorf("%w: positional name %q cannot have aliases", ErrInvalidFlag, name)
			}
		}
	}
	for _, name := range f.Cmdline {
		if err := validateCmdlineName(name); err != nil {
			return err
		}
	}

	if f.Config != "" {
		for _, segment := range strings.Split(f.Config, ".") {
			if !isValidKeySegment(segment) {
				return fmt.Errorf("%w: invalid path segment %q in config path %q", ErrInvalidFlag, segment, f.Config)
			}
		}
	}
	return nil
}

func validateCmdlineName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty command-line name", ErrInvalidFlag)
	case name == "--help" || name == "-h":
		return fmt.Errorf("%w: %s is reserved for help", ErrInvalidFlag, name)
	case strings.HasPrefix(name, "--"):
		long := name[2:]
		if long == "" || strings.HasPrefix(long, "-") || strings.ContainsAny(long, "= ") {
			return fmt.Errorf("%w: invalid option name %q", ErrInvalidFlag, name)
		}
	case strings.HasPrefix(name, "-"):
		if len(name) != 2 || name[1] == '=' || name[1] >= utf8.RuneSelf {
			return fmt.Errorf("%w: short option %q must be a single ASCII character", ErrInvalidFlag, name)
		}
	}
	return nil
}

// IsPositional reports whether the flag is a positional command-line argument.
func (f *Flag) IsPositional() bool {
	return len(f.Cmdline) == 1 && !strings.HasPrefix(f.Cmdline[0], "-")
}

// IsBool reports whether the flag may be given bare on the command line.
func (f *Flag) IsBool() bool {
	b, ok := f.converter().(boolFlag)
	return ok && b.IsBoolFlag()
}

// DisplayName returns a human-readable identifier preferring the command-line form.
func (f *Flag) DisplayName() string {
	switch {
	case len(f.Cmdline) > 0:
		return "flag " + strings.Join(f.Cmdline, "/")
	case f.Env != "":
		return "environment variable $" + f.Env
	case f.Config != "":
		return "config variable '" + f.Config + "'"
	}
	return ""
}

// usage composes help text with default, environment and config hints.
// Flags without a cmdline form are listed by DisplayName, so the hint it
// already carries is left out.
func (f *Flag) usage() string {
	named := len(f.Cmdline) == 0
	var parts []string
	if f.Help != "" {
		parts = append(parts, f.Help)
	}
	if f.Default != nil {
		parts = append(parts, fmt.Sprintf("default value '%v'", f.Default))
	}
	if f.Env != "" && !named {
		parts = append(parts, "environment variable $"+f.Env)
	}
	if f.Config != "" && !(named && f.Env == "") {
		parts = append(parts, "config variable '"+f.Config+"'")
	}
	return strings.Join(parts, ". ")
}

func (f *Flag) converter() Converter {
	if f.Type == nil {
		return String()
	}
	return f.Type
}

func (f *Flag) convert(raw string, source Source) (any, error) {
	v, err := f.converter().Convert(raw)
	if err != nil {
		return nil, &ConversionError{Flag: f.DisplayName(), Value: raw, Source: source, Err: err}
	}
	return v, nil
}

// extractEnv returns the converted environment value. An unset name or missing
// variable is absent, not an error. An empty string is a present value.
func (f *Flag) extractEnv(env map[string]string) (any, bool, error) {
	if f.Env == "" {
		return nil, false, nil
	}
	raw, ok := env[f.Env]
	if !ok {
		return nil, false, nil
	}
	v, err := f.convert(raw, SourceEnv)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// extractConfig looks up the flag's path in the document. Missing segments and
// null leaves are absent.
func (f *Flag) extractConfig(doc ConfigParser) (any, bool, error) {
	if f.Config == "" || doc == nil {
		return nil, false, nil
	}
	raw, ok := doc.Get(f.Config)
	if !ok || raw == nil {
		return nil, false, nil
	}
	v, err := f.converter().Decode(raw)
	if err != nil {
		return nil, false, &ConversionError{Flag: f.DisplayName(), Value: fmt.Sprint(raw), Source: SourceFile, Err: err}
	}
	return v, true, nil
}
