// Package registry owns the per-command argument constraints: which file
// extensions a command's path argument accepts, whether absolute paths are
// allowed, and which scan scope applies. Built-in defaults ship embedded;
// project configuration may override or extend them.
package registry

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tmczar/texpath/internal/completion"
)

//go:embed commands.yml
var defaultsYAML []byte

// Scope names the root-selection strategy a command completes against.
type Scope string

const (
	// ScopeProject completes against project content roots.
	ScopeProject Scope = "project"
	// ScopeGraphics completes against the graphics search path.
	ScopeGraphics Scope = "graphics"
)

// Spec is the argument constraint set for one command.
type Spec struct {
	// Extensions is the allow-list of file extensions (lowercase, no dot).
	// Empty means unrestricted.
	Extensions []string `yaml:"extensions"`
	// Absolute permits absolute path arguments.
	Absolute bool `yaml:"absolute"`
	// Scope selects the root strategy; empty defaults to project.
	Scope Scope `yaml:"scope"`
}

type defaultsFile struct {
	Version     string          `yaml:"version"`
	Description string          `yaml:"description"`
	Commands    map[string]Spec `yaml:"commands"`
}

// Registry resolves commands to argument constraints.
type Registry struct {
	specs map[string]Spec
}

// Default loads the embedded built-in constraints.
func Default() (*Registry, error) {
	var defaults defaultsFile
	if err := yaml.Unmarshal(defaultsYAML, &defaults); err != nil {
		return nil, fmt.Errorf("failed to parse built-in command registry: %w", err)
	}

	specs := make(map[string]Spec, len(defaults.Commands))
	for command, spec := range defaults.Commands {
		specs[normalize(command)] = spec
	}
	return &Registry{specs: specs}, nil
}

// Lookup returns the spec registered for a command.
func (r *Registry) Lookup(command string) (Spec, bool) {
	spec, ok := r.specs[normalize(command)]
	return spec, ok
}

// Constraints returns the completion constraints for a command. Unknown
// commands get the permissive default: unrestricted extensions, absolute
// paths allowed.
func (r *Registry) Constraints(command string) completion.Constraints {
	spec, ok := r.Lookup(command)
	if !ok {
		return completion.Unrestricted()
	}
	return completion.NewConstraints(spec.Extensions, spec.Absolute)
}

// ScopeOf returns the scan scope for a command, defaulting to project.
func (r *Registry) ScopeOf(command string) Scope {
	if spec, ok := r.Lookup(command); ok && spec.Scope == ScopeGraphics {
		return ScopeGraphics
	}
	return ScopeProject
}

// Set registers or replaces the spec for one command.
func (r *Registry) Set(command string, spec Spec) {
	r.specs[normalize(command)] = spec
}

// Merge overlays override specs onto the registry. An override replaces
// the built-in spec for the same command entirely.
func (r *Registry) Merge(overrides map[string]Spec) {
	for command, spec := range overrides {
		r.Set(command, spec)
	}
}

// Commands returns every registered command, sorted.
func (r *Registry) Commands() []string {
	commands := make([]string, 0, len(r.specs))
	for command := range r.specs {
		commands = append(commands, command)
	}
	sort.Strings(commands)
	return commands
}

// normalize canonicalizes a command name to its backslashed form.
func normalize(command string) string {
	if command == "" {
		return command
	}
	return `\` + strings.TrimPrefix(command, `\`)
}
