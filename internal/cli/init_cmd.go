package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tmczar/texpath/internal/derrors"
)

const sampleConfig = `# texpath configuration file

# Additional content roots, relative to the project root directory.
# Completion proposes files and folders from every root, in order.
# roots:
#   - chapters
#   - shared

# Additional graphics search paths for \includegraphics and friends.
# Entries support template expansion, e.g. {{ env "HOME" }}/figures
# graphics_paths:
#   - figures

# Per-command argument constraint overrides.
# commands:
#   \includegraphics:
#     extensions: [png, pdf]
#     absolute: false
#     scope: graphics

# Default log level (debug, info, warn, error)
# log_level: warn
`

// Init creates a sample .texpath.yml config file in the current directory
func Init() error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	configPath := filepath.Join(currentDir, ".texpath.yml")

	if _, err := os.Stat(configPath); err == nil {
		return derrors.NewAlreadyExistsError(configPath, fmt.Sprintf("config file already exists: %s", configPath))
	}

	if err := os.WriteFile(configPath, []byte(sampleConfig), 0644); err != nil {
		return derrors.NewConfigurationError(configPath, "failed to create config file", err)
	}

	fmt.Printf("Created sample config: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the config file to suit your project layout")
	fmt.Println("  2. Run 'texpath validate' to check it")
	fmt.Println("  3. Run 'texpath status --doc main.tex' to inspect the scan roots")

	return nil
}
