package cli

import (
	"fmt"

	"github.com/tmczar/texpath/internal/registry"
)

// RootsParams contains parameters for the Roots command
type RootsParams struct {
	DocPath  string
	Graphics bool // list the graphics search path instead of project roots
	LogLevel string
}

// Roots prints the ordered scan roots a completion request would
// enumerate for a document, one per line.
func Roots(params RootsParams) error {
	env, err := loadEnvironment(params.DocPath, params.LogLevel)
	if err != nil {
		return err
	}

	scope := registry.ScopeProject
	if params.Graphics {
		scope = registry.ScopeGraphics
	}

	for _, root := range env.strategyFor(scope).ScanRoots(env.doc) {
		fmt.Println(root)
	}
	return nil
}
