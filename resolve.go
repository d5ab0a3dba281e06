// FILE: lixenwraith/flagset/resolve.go
package flagset

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Option configures Parse.
type Option func(*options)

type options struct {
	args       []string
	env        map[string]string
	parser     ConfigParserFunc
	exceptions bool
	output     io.Writer
	exit       func(int)
	logger     *slog.Logger
	// fallbackPath supplies a config path when the command line has none
	fallbackPath func(env map[string]string) string
}

func defaultOptions() options {
	return options{
		args:   programArgs(),
		env:    EnvironMap(os.Environ()),
		parser: LoadFile,
		output: os.Stderr,
		exit:   os.Exit,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithArgs sets the argument list, excluding the program name. Default os.Args[1:].
func WithArgs(args []string) Option {
	return func(o *options) { o.args = args }
}

// WithEnv sets the environment snapshot. Default is the process environment.
func WithEnv(env map[string]string) Option {
	return func(o *options) { o.env = env }
}

// WithEnviron sets the environment snapshot from KEY=VALUE pairs as returned by os.Environ.
func WithEnviron(environ []string) Option {
	return func(o *options) { o.env = EnvironMap(environ) }
}

// WithConfigParser sets the config document loader. Default LoadFile.
func WithConfigParser(parser ConfigParserFunc) Option {
	return func(o *options) { o.parser = parser }
}

// WithExceptions selects exception mode: help and failures are returned as
// errors instead of printing and exiting.
func WithExceptions(enabled bool) Option {
	return func(o *options) { o.exceptions = enabled }
}

// WithOutput sets where help and error text is printed. Default os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithExit replaces os.Exit in process mode.
func WithExit(exit func(int)) Option {
	return func(o *options) { o.exit = exit }
}

// WithLogger sets the logger receiving debug records about each resolution stage.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// programArgs returns the process arguments after the program name.
func programArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

// EnvironMap converts KEY=VALUE pairs into a map. Later duplicates win.
func EnvironMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Resolve runs a resolution in exception mode. It reads no process state:
// args, env and the parser factory are the only inputs. A nil parser means LoadFile.
func (fs *FlagSet) Resolve(args []string, env map[string]string, parser ConfigParserFunc) (*Config, error) {
	o := options{
		args:       args,
		env:        env,
		parser:     parser,
		exceptions: true,
		logger:     slog.New(slog.DiscardHandler),
	}
	if o.parser == nil {
		o.parser = LoadFile
	}
	return fs.resolve(o)
}

// Parse resolves the flags. In process mode, the default, a help request prints
// help and exits with status 0 and any failure prints help plus an error line
// and exits with status 2. With WithExceptions(true) both are returned instead;
// help is ErrHelp.
func (fs *FlagSet) Parse(opts ...Option) (*Config, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := fs.resolve(o)
	if err == nil || o.exceptions {
		return cfg, err
	}

	fs.PrintHelp(o.output)
	if errors.Is(err, ErrHelp) {
		o.exit(0)
	} else {
		fmt.Fprintf(o.output, "\nerror: %v\n", err)
		o.exit(2)
	}
	return nil, err
}

// resolve implements the pipeline: cmdline, env, config, merge, defaults.
// Every failure is terminal.
func (fs *FlagSet) resolve(o options) (*Config, error) {
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cliValues, configPath, err := fs.parseCmdline(o.args)
	if err != nil {
		logger.Debug("command line rejected", "error", err)
		return nil, err
	}
	logger.Debug("command line parsed", "values", len(cliValues), "config", configPath)

	envValues, err := fs.extractEnv(o.env)
	if err != nil {
		logger.Debug("environment rejected", "error", err)
		return nil, err
	}

	if configPath == "" && o.fallbackPath != nil {
		configPath = o.fallbackPath(o.env)
		if configPath != "" {
			logger.Debug("config file discovered", "path", configPath)
		}
	}

	var fileValues map[string]any
	if configPath != "" {
		parser := o.parser
		if parser == nil {
			parser = LoadFile
		}
		doc, err := parser(configPath)
		if err != nil {
			if !errors.Is(err, ErrConfigLoad) {
				err = fmt.Errorf("%w: '%s': %w", ErrConfigLoad, configPath, err)
			}
			logger.Debug("config file rejected", "path", configPath, "error", err)
			return nil, err
		}
		if fileValues, err = fs.extractConfig(doc); err != nil {
			return nil, err
		}
		logger.Debug("config file loaded", "path", configPath, "values", len(fileValues))
	}

	cfg, err := fs.merge(fileValues, envValues, cliValues)
	if err != nil {
		logger.Debug("resolution failed", "error", err)
		return nil, err
	}
	for _, name := range cfg.names {
		logger.Debug("flag resolved", "flag", name, "source", cfg.sources[name])
	}
	return cfg, nil
}

// extractEnv reads every flag from the environment snapshot, failing on the
// first conversion error in registration order.
func (fs *FlagSet) extractEnv(env map[string]string) (map[string]any, error) {
	values := make(map[string]any)
	for _, name := range fs.order {
		v, ok, err := fs.flags[name].extractEnv(env)
		if err != nil {
			return nil, err
		}
		if ok {
			values[name] = v
		}
	}
	return values, nil
}

func (fs *FlagSet) extractConfig(doc ConfigParser) (map[string]any, error) {
	values := make(map[string]any)
	for _, name := range fs.order {
		v, ok, err := fs.flags[name].extractConfig(doc)
		if err != nil {
			return nil, err
		}
		if ok {
			values[name] = v
		}
	}
	return values, nil
}

// merge overlays the present values of each source from lowest to highest
// precedence, then fills the remaining names from defaults.
func (fs *FlagSet) merge(file, env, cli map[string]any) (*Config, error) {
	cfg := newConfig(fs.Names())

	layers := []struct {
		source Source
		values map[string]any
	}{
		{SourceFile, file},
		{SourceEnv, env},
		{SourceCLI, cli},
	}
	for _, layer := range layers {
		for name, v := range layer.values {
			if _, registered := fs.flags[name]; registered {
				cfg.set(name, v, layer.source)
			}
		}
	}

	for _, name := range fs.order {
		if _, resolved := cfg.values[name]; resolved {
			continue
		}
		f := fs.flags[name]
		if f.Required {
			return nil, &MissingRequiredError{Name: name, Flag: f.DisplayName()}
		}
		cfg.set(name, f.Default, SourceDefault)
	}
	return cfg, nil
}
