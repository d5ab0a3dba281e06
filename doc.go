// File: lixenwraith/flagset/doc.go

// Package flagset resolves named configuration flags from up to three sources:
// command-line arguments, environment variables and a structured config file
// (JSON, TOML or YAML), plus declared defaults.
//
// Features:
//   - Declarative flags with per-flag converters (string, int, float, bool, duration, lists, custom)
//   - Fixed precedence with source tracking for every resolved value
//   - Required flags and defaults, checked at registration
//   - Positional arguments and a trailing optional config file path
//   - Help output listing defaults, environment variables and config paths
//   - Exception mode or process mode (print help, exit 0 or 2)
//   - Declarative flag definitions loaded from schema files
//
// Quick Start:
//
//	fs := flagset.New("server")
//	fs.MustAdd("host", flagset.Flag{Cmdline: []string{"--host"}, Env: "HOST", Config: "server.host", Default: "localhost"})
//	fs.MustAdd("port", flagset.Flag{Type: flagset.Int(), Cmdline: []string{"--port", "-p"}, Env: "PORT", Config: "server.port", Default: 8080})
//	fs.MustAdd("debug", flagset.Flag{Type: flagset.Bool(), Cmdline: []string{"--debug", "-d"}, Default: false})
//
//	cfg, _ := fs.Parse() // prints help and exits on failure
//	port, _ := cfg.Int64("port")
//
// Invocation:
//
//	server --port 9090 -d config.json
//
// The trailing positional argument names the config file. Its "server.port"
// path is read when --port and $PORT are both absent.
//
// Precedence (highest to lowest):
//  1. Command-line arguments
//  2. Environment variables
//  3. Configuration file
//  4. Default values
//
// Thread Safety:
// Register every flag before the first resolution. Resolution never mutates
// the FlagSet, so concurrent resolutions are safe.
package flagset
