// Package status provides status information collection and display for
// the texpath completion environment.
package status

import (
	"os"

	"github.com/tmczar/texpath/internal/config"
	"github.com/tmczar/texpath/internal/document"
	"github.com/tmczar/texpath/internal/project"
	"github.com/tmczar/texpath/internal/registry"
	"github.com/tmczar/texpath/pkg/version"
)

// Collect gathers the completion environment for a document: its logical
// root, the scan roots each strategy would enumerate, and the active
// configuration.
func Collect(docPath string) (*Data, error) {
	doc, err := document.Load(docPath)
	if err != nil {
		return nil, err
	}

	data := &Data{
		DocPath: doc.Path,
		Version: version.Version,
	}

	data.RootFile, data.RootRecognized = doc.RootFile()
	data.RootDir = project.RootDir(doc)
	data.GraphicsPaths = doc.GraphicsPaths()

	// Configuration is optional; absence is not an error.
	cfg := &config.Config{}
	if configPath := config.Find(doc.Dir()); configPath != "" {
		data.ConfigPath = configPath

		result, err := config.Validate(configPath)
		if err != nil {
			return nil, err
		}
		data.ConfigValid = result.Valid
		data.ConfigErrors = result.Errors

		if loaded, err := config.New().Load(configPath); err == nil {
			cfg = loaded
		}
	} else {
		data.ConfigValid = true
	}
	data.LogLevel = cfg.LogLevel

	projectStrategy := &project.Strategy{Extra: cfg.Roots}
	graphicsStrategy := &project.GraphicsStrategy{Extra: cfg.GraphicsPaths, ContentRoots: cfg.Roots}
	data.ProjectRoots = rootInfos(projectStrategy.ScanRoots(doc))
	data.GraphicsRoots = rootInfos(graphicsStrategy.ScanRoots(doc))

	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	reg.Merge(cfg.Overrides())
	data.Commands = reg.Commands()

	return data, nil
}

func rootInfos(roots []string) []RootInfo {
	infos := make([]RootInfo, 0, len(roots))
	for _, root := range roots {
		info, err := os.Stat(root)
		infos = append(infos, RootInfo{
			Path:   root,
			Exists: err == nil && info.IsDir(),
		})
	}
	return infos
}
