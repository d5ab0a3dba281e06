// FILE: lixenwraith/flagset/discovery.go
package flagset

import (
	"os"
	"path/filepath"
	"strings"
)

// DiscoveryOptions configures the config file search used when the command
// line names no config file. Directory lookups read the resolution's
// environment snapshot, not the process environment.
type DiscoveryOptions struct {
	// Base name of config file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search paths, tried first
	Paths []string

	// Environment variable holding an explicit path
	EnvVar string

	// Whether to search in XDG config directories
	UseXDG bool

	// Whether to search in current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns sensible defaults
func DefaultDiscoveryOptions(appName string) DiscoveryOptions {
	return DiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".json", ".toml", ".yaml", ".yml"},
		EnvVar:        strings.ToUpper(strings.ReplaceAll(appName, "-", "_")) + "_CONFIG",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// Find returns the first existing candidate, or "" if there is none.
// A path named by EnvVar is returned even if it does not exist, so that
// loading it reports the error.
func (o DiscoveryOptions) Find(env map[string]string) string {
	if o.EnvVar != "" {
		if path := env[o.EnvVar]; path != "" {
			return path
		}
	}

	var searchPaths []string
	searchPaths = append(searchPaths, o.Paths...)

	if o.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	if o.UseXDG {
		searchPaths = append(searchPaths, xdgConfigPaths(o.Name, env)...)
	}

	for _, dir := range searchPaths {
		for _, ext := range o.Extensions {
			path := filepath.Join(dir, o.Name+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}

	// No file found is not an error
	return ""
}

// xdgConfigPaths returns XDG-compliant config search paths
func xdgConfigPaths(appName string, env map[string]string) []string {
	var paths []string

	if xdgHome := env["XDG_CONFIG_HOME"]; xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := env["HOME"]; home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := env["XDG_CONFIG_DIRS"]; xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
