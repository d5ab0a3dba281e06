// FILE: lixenwraith/flagset/cmd/flagset/main.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/flagset"
)

var (
	flagFormat  string
	flagSources bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "flagset",
	Short: "Resolve flags declared in a schema file",
	Long: `flagset loads a declarative flag schema (JSON, TOML or YAML) and resolves it
against the given arguments, the process environment and an optional config file.

Examples:
  flagset usage server.toml
  flagset resolve server.toml -- --port 9090 config.json
  flagset resolve --format json --sources server.toml -- -d`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <schema> [-- args...]",
	Short: "Resolve the schema and print the final values",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResolve,
}

var usageCmd = &cobra.Command{
	Use:   "usage <schema>",
	Short: "Print the help text generated for the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := flagset.LoadSchema(args[0])
		if err != nil {
			return err
		}
		fs.PrintHelp(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&flagFormat, "format", "toml", "Output format: toml, json")
	resolveCmd.Flags().BoolVar(&flagSources, "sources", false, "Print the source of every value instead")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log resolution stages to stderr")
	rootCmd.AddCommand(resolveCmd, usageCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	fs, err := flagset.LoadSchema(args[0])
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if flagVerbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Process mode: help exits 0, failures exit 2.
	cfg, err := fs.Parse(
		flagset.WithArgs(args[1:]),
		flagset.WithEnviron(os.Environ()),
		flagset.WithOutput(cmd.ErrOrStderr()),
		flagset.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	return printConfig(cmd.OutOrStdout(), cfg)
}

func printConfig(w io.Writer, cfg *flagset.Config) error {
	if flagSources {
		_, err := io.WriteString(w, cfg.Debug())
		return err
	}

	switch flagFormat {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg.Map())
	case "toml":
		return cfg.Dump(w)
	default:
		return fmt.Errorf("unknown format %q", flagFormat)
	}
}
