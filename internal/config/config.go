// Package config handles loading and parsing of texpath project
// configuration files.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tmczar/texpath/internal/derrors"
	"github.com/tmczar/texpath/internal/registry"
)

// SupportedConfigNames contains supported configuration file names
// (in order of preference)
var SupportedConfigNames = []string{
	".texpath.yml",
	".texpath.yaml",
	".texpath.toml",
	".texpath.json",
}

// CommandConfig overrides the argument constraints of one command.
type CommandConfig struct {
	Extensions []string `koanf:"extensions"`
	Absolute   bool     `koanf:"absolute"`
	Scope      string   `koanf:"scope"`
}

// Config is a texpath project configuration.
type Config struct {
	// Roots lists additional content roots, relative to the project root
	// directory unless absolute. Entries support template expansion.
	Roots []string `koanf:"roots"`
	// GraphicsPaths lists additional graphics search paths. Entries
	// support template expansion.
	GraphicsPaths []string `koanf:"graphics_paths"`
	// Commands overrides built-in per-command argument constraints.
	Commands map[string]CommandConfig `koanf:"commands"`
	// LogLevel sets the default log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
}

// Find locates the nearest config file, walking upward from dir to the
// filesystem root. Returns the empty string when none exists.
func Find(dir string) string {
	for {
		for _, name := range SupportedConfigNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Loader handles loading and parsing configuration files
type Loader struct{}

// New creates a new config loader
func New() *Loader {
	return &Loader{}
}

// Load reads and parses a configuration file. Path entries in roots and
// graphics_paths are template-expanded.
func (l *Loader) Load(path string) (*Config, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to load config", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to parse config", err)
	}

	if cfg.Roots, err = expandEntries(cfg.Roots); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to expand roots", err)
	}
	if cfg.GraphicsPaths, err = expandEntries(cfg.GraphicsPaths); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to expand graphics_paths", err)
	}

	return cfg, nil
}

// Overrides converts the commands section into registry specs.
func (c *Config) Overrides() map[string]registry.Spec {
	if len(c.Commands) == 0 {
		return nil
	}

	overrides := make(map[string]registry.Spec, len(c.Commands))
	for command, cc := range c.Commands {
		overrides[command] = registry.Spec{
			Extensions: cc.Extensions,
			Absolute:   cc.Absolute,
			Scope:      registry.Scope(cc.Scope),
		}
	}
	return overrides
}

// parserFor selects a koanf parser from the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

// expandEntries runs each path entry through text/template with the sprig
// function map, so entries like {{ env "HOME" }}/figures work.
func expandEntries(entries []string) ([]string, error) {
	if len(entries) == 0 {
		return entries, nil
	}

	expanded := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !strings.Contains(entry, "{{") {
			expanded = append(expanded, entry)
			continue
		}

		tmpl, err := template.New("path").Funcs(sprig.TxtFuncMap()).Parse(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid template %q: %w", entry, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, nil); err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", entry, err)
		}
		expanded = append(expanded, buf.String())
	}
	return expanded, nil
}
