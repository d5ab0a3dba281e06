// FILE: lixenwraith/flagset/example/main.go
package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/flagset"
)

// AppConfig receives the resolved values through Scan.
type AppConfig struct {
	Host    string        `flag:"host"`
	Port    int           `flag:"port"`
	Debug   bool          `flag:"debug"`
	Timeout time.Duration `flag:"timeout"`
	Token   string        `flag:"token"`
}

func main() {
	fs := flagset.New("example")
	fs.MustAdd("host", flagset.Flag{
		Cmdline: []string{"--host"},
		Env:     "APP_HOST",
		Config:  "server.host",
		Default: "localhost",
		Help:    "address to bind",
	})
	fs.MustAdd("port", flagset.Flag{
		Type:    flagset.Int(),
		Cmdline: []string{"--port", "-p"},
		Env:     "APP_PORT",
		Config:  "server.port",
		Default: 8080,
	})
	fs.MustAdd("debug", flagset.Flag{
		Type:    flagset.Bool(),
		Cmdline: []string{"--debug", "-d"},
		Default: false,
	})
	fs.MustAdd("timeout", flagset.Flag{
		Type:    flagset.Duration(),
		Config:  "server.timeout",
		Default: 30 * time.Second,
	})
	fs.MustAdd("token", flagset.Flag{
		Env:      "APP_TOKEN",
		Required: true,
		Help:     "API token",
	})

	dir, err := os.MkdirTemp("", "flagset-example")
	if err != nil {
		log.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	configPath := filepath.Join(dir, "config.json")
	content := `{"server": {"host": "file-host", "port": 7000, "timeout": "5s"}}`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		log.Fatalf("Failed to write config: %v", err)
	}

	env := map[string]string{"APP_PORT": "9000", "APP_TOKEN": "secret"}

	// cmdline beats env beats file beats default
	var app AppConfig
	err = flagset.NewBuilder(fs).
		WithArgs([]string{"-d", configPath}).
		WithEnv(env).
		BuildAndScan(&app)
	if err != nil {
		log.Fatalf("Failed to resolve: %v", err)
	}
	log.Printf("host=%s port=%d debug=%v timeout=%s", app.Host, app.Port, app.Debug, app.Timeout)

	// Missing required flag
	_, err = fs.Resolve(nil, map[string]string{}, nil)
	if errors.Is(err, flagset.ErrMissingRequired) {
		log.Printf("Expected failure: %v", err)
	}

	// Process mode prints help and exits with status 0
	fs.Parse(flagset.WithArgs([]string{"--help"}), flagset.WithEnv(env))
}
