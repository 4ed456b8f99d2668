// Package cli implements the texpath command-line commands.
package cli

import (
	"os"

	"github.com/tmczar/texpath/internal/completion"
	"github.com/tmczar/texpath/internal/config"
	"github.com/tmczar/texpath/internal/document"
	"github.com/tmczar/texpath/internal/logger"
	"github.com/tmczar/texpath/internal/project"
	"github.com/tmczar/texpath/internal/registry"
)

// environment bundles the request-scoped collaborators of one command
// invocation: document, configuration, argument registry, logger.
type environment struct {
	doc *document.Document
	cfg *config.Config
	reg *registry.Registry
	log *logger.Logger
}

// loadEnvironment loads the document, the nearest config file (absence is
// not an error), and the argument registry with config overrides applied.
func loadEnvironment(docPath, logLevel string) (*environment, error) {
	log := logger.New(logLevel, os.Stderr)

	doc, err := document.Load(docPath)
	if err != nil {
		return nil, err
	}

	cfg := &config.Config{}
	if configPath := config.Find(doc.Dir()); configPath != "" {
		loaded, err := config.New().Load(configPath)
		if err != nil {
			log.Warn().Str("config", configPath).Err(err).Msg("Ignoring unreadable config")
		} else {
			cfg = loaded
			log.Debug().Str("config", configPath).Msg("Loaded project config")
		}
	}

	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	reg.Merge(cfg.Overrides())

	return &environment{doc: doc, cfg: cfg, reg: reg, log: log}, nil
}

// strategyFor returns the root-selection strategy for a scan scope.
func (e *environment) strategyFor(scope registry.Scope) completion.Strategy {
	if scope == registry.ScopeGraphics {
		return &project.GraphicsStrategy{Extra: e.cfg.GraphicsPaths, ContentRoots: e.cfg.Roots}
	}
	return &project.Strategy{Extra: e.cfg.Roots}
}

// engineFor builds the completion engine for a scan scope.
func (e *environment) engineFor(scope registry.Scope) *completion.Engine {
	provider := completion.NewProvider(completion.OSHost{}, e.strategyFor(scope), e.log)
	return completion.NewEngine(provider)
}
