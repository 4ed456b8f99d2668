package status

import (
	"github.com/tmczar/texpath/internal/config"
)

// Data contains all the information to display in status
type Data struct {
	// Header
	DocPath string
	Version string

	// Project
	RootFile       string
	RootRecognized bool
	RootDir        string

	// Scan roots
	ProjectRoots  []RootInfo
	GraphicsRoots []RootInfo
	GraphicsPaths []string // entries declared by \graphicspath

	// Configuration
	ConfigPath   string
	ConfigValid  bool
	ConfigErrors []config.ValidationError
	LogLevel     string

	// Registry
	Commands []string
}

// RootInfo is one scan root and whether it currently resolves.
type RootInfo struct {
	Path   string
	Exists bool
}
