// Package config loads gatewire project configuration. A project is a
// gatewire.yaml file declaring the designs to elaborate; values layer as
// defaults, then the config file, then GATEWIRE_ environment variables,
// then explicitly set CLI flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/gatewire-labs/gatewire/internal/design"
)

// Config file names searched for in a project directory.
const (
	FileName    = "gatewire.yaml"
	FileNameAlt = "gatewire.yml"
)

// Default values applied before any other source.
const (
	DefaultLogLevel = "info"
)

// Config is the loaded project configuration.
type Config struct {
	// Project is the project name, used in output headers.
	Project string `koanf:"project"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// Parallel elaborates independent designs concurrently.
	Parallel bool `koanf:"parallel"`
	// Designs to elaborate, in declaration order.
	Designs []design.Design `koanf:"designs"`

	// ProjectRoot is the directory the config file was found in.
	ProjectRoot string `koanf:"-"`
	// File is the config file path actually used, "" when none.
	File string `koanf:"-"`
}

// Design returns a declared design by name.
func (c *Config) Design(name string) (design.Design, bool) {
	for _, d := range c.Designs {
		if d.Name == name {
			return d, true
		}
	}
	return design.Design{}, false
}

// Load reads configuration. cfgFile may name an explicit config file;
// otherwise the file is searched from the working directory upwards. flags
// may be nil; only flags the user actually set are merged.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"log_level": DefaultLogLevel,
		"parallel":  false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	root := ""
	if cfgFile == "" {
		if wd, err := os.Getwd(); err == nil {
			if found := FindProjectRoot(wd); found != "" {
				root = found
				cfgFile = findConfigFile(found)
			}
		}
	} else {
		if abs, err := filepath.Abs(cfgFile); err == nil {
			cfgFile = abs
			root = filepath.Dir(abs)
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// GATEWIRE_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider("GATEWIRE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GATEWIRE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ProjectRoot = root
	cfg.File = cfgFile
	return &cfg, nil
}

// findConfigFile returns the config file under dir, or dir itself when it
// already names a file. Returns "" if none exists.
func findConfigFile(dir string) string {
	if fi, err := os.Stat(dir); err == nil && !fi.IsDir() {
		return dir
	}
	for _, name := range []string{FileName, FileNameAlt} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// FindProjectRoot walks up from startDir looking for a directory holding
// gatewire.yaml or gatewire.yml. Returns "" if none is found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for {
		if findConfigFile(dir) != "" {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
