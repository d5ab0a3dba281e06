// File: lixenwraith/flagset/builder.go
package flagset

import (
	"fmt"
	"log/slog"
)

// ValidatorFunc checks a resolved configuration. It runs after every flag has a value.
type ValidatorFunc func(c *Config) error

// Builder provides a fluent interface for resolving a FlagSet. It always
// runs in exception mode.
type Builder struct {
	fs         *FlagSet
	opts       options
	validators []ValidatorFunc
}

// NewBuilder creates a builder reading the process arguments and environment by default.
func NewBuilder(fs *FlagSet) *Builder {
	opts := defaultOptions()
	opts.exceptions = true
	return &Builder{
		fs:         fs,
		opts:       opts,
		validators: make([]ValidatorFunc, 0),
	}
}

// WithArgs sets the command-line arguments
func (b *Builder) WithArgs(args []string) *Builder {
	b.opts.args = args
	return b
}

// WithEnv sets the environment snapshot
func (b *Builder) WithEnv(env map[string]string) *Builder {
	b.opts.env = env
	return b
}

// WithEnviron sets the environment snapshot from KEY=VALUE pairs
func (b *Builder) WithEnviron(environ []string) *Builder {
	b.opts.env = EnvironMap(environ)
	return b
}

// WithConfigParser sets the config document loader
func (b *Builder) WithConfigParser(parser ConfigParserFunc) *Builder {
	b.opts.parser = parser
	return b
}

// WithConfigSearch looks for a config file when the command line names none.
func (b *Builder) WithConfigSearch(opts DiscoveryOptions) *Builder {
	b.opts.fallbackPath = opts.Find
	return b
}

// WithLogger sets the logger for resolution debug records
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	if logger != nil {
		b.opts.logger = logger
	}
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build resolves the flags and runs the validators.
func (b *Builder) Build() (*Config, error) {
	cfg, err := b.fs.resolve(b.opts)
	if err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	return cfg, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("flagset build failed: %v", err))
	}
	return cfg
}

// BuildAndScan builds and decodes the resolved values into the provided target pointer
func (b *Builder) BuildAndScan(target any) error {
	cfg, err := b.Build()
	if err != nil {
		return err
	}

	if err := cfg.Scan(target); err != nil {
		return fmt.Errorf("failed to scan resolved flags into target: %w", err)
	}
	return nil
}
