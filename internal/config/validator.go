package config

import (
	"fmt"
	"os"
	"strings"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// Validate validates a config file beyond what the JSON Schema covers:
// duplicate path entries, command name shape, extension format.
func Validate(path string) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	loader := New()
	cfg, err := loader.Load(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "syntax",
			Message: fmt.Sprintf("Failed to parse config: %v", err),
		})
		return result, nil
	}

	validateEntries(result, "roots", cfg.Roots)
	validateEntries(result, "graphics_paths", cfg.GraphicsPaths)

	for command, cc := range cfg.Commands {
		field := "commands/" + command
		if !strings.HasPrefix(command, `\`) {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("Command name must start with a backslash: %q", command),
			})
		}
		for _, ext := range cc.Extensions {
			if strings.ContainsAny(ext, "./\\*") {
				result.Valid = false
				result.Errors = append(result.Errors, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("Extension %q must be a bare suffix without dot or wildcard", ext),
				})
			}
			if ext != strings.ToLower(ext) {
				result.Valid = false
				result.Errors = append(result.Errors, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("Extension %q must be lowercase", ext),
				})
			}
		}
		if cc.Scope != "" && cc.Scope != "project" && cc.Scope != "graphics" {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("Unknown scope %q (expected project or graphics)", cc.Scope),
			})
		}
	}

	return result, nil
}

// validateEntries checks one path list for empty and duplicate entries.
func validateEntries(result *ValidationResult, field string, entries []string) {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Message: "Path entry is empty",
			})
			continue
		}
		if _, dup := seen[entry]; dup {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("Duplicate path entry: %q", entry),
			})
		}
		seen[entry] = struct{}{}
	}
}
