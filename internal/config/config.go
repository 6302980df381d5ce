package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults for the bootstrap pipeline. Overridable via config file, env
// (NBSTRAP_ prefix) or flags.
const (
	DefaultVenvDir = "jupyter-venv"
	DefaultPackage = "notebook"
)

var K = koanf.New(".")

func LoadConfig(flagSet *pflag.FlagSet, configFile string) {
	// Load from config file if provided
	if configFile != "" {
		parser, err := parserForFile(configFile)
		if err != nil {
			log.Fatalf("unsupported config file format: %v", err)
		}
		if err := K.Load(file.Provider(configFile), parser); err != nil {
			log.Printf("error loading config file: %v", err)
		}
	}

	// Load from environment variables (prefix "NBSTRAP_")
	// This will convert NBSTRAP_FOO_BAR to foo.bar
	K.Load(env.Provider("NBSTRAP_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "NBSTRAP_")), "_", ".", -1)
	}), nil)

	// Load from command-line flags (highest precedence)
	K.Load(posflag.Provider(flagSet, ".", K), nil)
}

// VenvDir returns the configured virtual environment directory.
func VenvDir() string {
	if v := K.String("install.venvdir"); v != "" {
		return v
	}
	return DefaultVenvDir
}

// Package returns the configured Python package to install.
func Package() string {
	if v := K.String("install.package"); v != "" {
		return v
	}
	return DefaultPackage
}

// Debug reports whether debug output is enabled.
func Debug() bool {
	return K.Bool("debug")
}

func parserForFile(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
