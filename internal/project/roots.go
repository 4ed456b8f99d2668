// Package project discovers the ordered scan roots completion enumerates
// for a document: the logical root directory followed by configured
// content roots, and the graphics search path for image arguments.
package project

import (
	"path/filepath"

	"github.com/tmczar/texpath/internal/document"
)

// RootDir returns the directory completion treats as the project root: the
// logical root file's directory when the document belongs to a recognized
// project, otherwise the document's own parent directory.
func RootDir(doc *document.Document) string {
	if rootFile, ok := doc.RootFile(); ok {
		return filepath.Dir(rootFile)
	}
	return doc.Dir()
}

// Roots returns the ordered scan roots for a document: the root directory
// first, then each extra content root, every directory appearing at most
// once. Relative extras are resolved against the root directory.
func Roots(doc *document.Document, extra []string) []string {
	rootDir := RootDir(doc)

	roots := []string{rootDir}
	seen := map[string]struct{}{rootDir: {}}
	for _, entry := range extra {
		path := entry
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootDir, path)
		}
		path = filepath.Clean(path)
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		roots = append(roots, path)
	}
	return roots
}

// Strategy selects project content roots. Both folder and file search are
// enabled; extension filtering is the argument's concern.
type Strategy struct {
	// Extra is the configured list of additional content roots.
	Extra []string
}

// ScanRoots implements root selection over project content roots.
func (s *Strategy) ScanRoots(doc *document.Document) []string {
	return Roots(doc, s.Extra)
}

// SearchFolders reports that directories are proposed.
func (s *Strategy) SearchFolders() bool { return true }

// SearchFiles reports that files are proposed.
func (s *Strategy) SearchFiles() bool { return true }

// GraphicsStrategy selects the graphics search path: \graphicspath entries
// declared by the document plus configured entries, resolved against the
// root directory, followed by the project roots themselves.
type GraphicsStrategy struct {
	// Extra is the configured list of additional graphics search paths.
	Extra []string
	// ContentRoots mirrors Strategy.Extra so images placed directly under
	// a content root are still found.
	ContentRoots []string
}

// ScanRoots returns graphics search paths before project roots, each
// directory at most once.
func (s *GraphicsStrategy) ScanRoots(doc *document.Document) []string {
	rootDir := RootDir(doc)

	entries := append(doc.GraphicsPaths(), s.Extra...)

	var roots []string
	seen := make(map[string]struct{})
	for _, entry := range entries {
		path := entry
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootDir, path)
		}
		path = filepath.Clean(path)
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		roots = append(roots, path)
	}

	for _, root := range Roots(doc, s.ContentRoots) {
		if _, dup := seen[root]; dup {
			continue
		}
		seen[root] = struct{}{}
		roots = append(roots, root)
	}
	return roots
}

// SearchFolders reports that directories are proposed.
func (s *GraphicsStrategy) SearchFolders() bool { return true }

// SearchFiles reports that files are proposed.
func (s *GraphicsStrategy) SearchFiles() bool { return true }
