package completion

import (
	"os"
	"path/filepath"
	"strings"
)

// Dir is an opaque handle to an existing directory, owned by the host
// filesystem abstraction. The pipeline never mutates it.
type Dir interface {
	Path() string
}

// Host supplies filesystem access and icon resolution to the pipeline.
// Scans go through the host so editors can substitute their own document
// model; tests substitute fakes.
type Host interface {
	// ResolveDir resolves a path to a directory handle. The second return
	// is false when no such directory exists.
	ResolveDir(path string) (Dir, bool)
	// ListChildren lists the immediate children of a directory. No
	// recursion, no ordering guarantee beyond enumeration order.
	ListChildren(dir Dir) []Candidate
	// IconForExtension maps a file extension to an icon reference.
	IconForExtension(ext string) Icon
}

// OSHost implements Host over the local filesystem.
type OSHost struct{}

type osDir string

func (d osDir) Path() string { return string(d) }

// ResolveDir stats the path and returns a handle when it is a directory.
func (OSHost) ResolveDir(path string) (Dir, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, false
	}
	return osDir(filepath.Clean(path)), true
}

// ListChildren enumerates the directory. Symbolic links are reported as
// files unless they have been resolved by the OS enumeration itself.
func (OSHost) ListChildren(dir Dir) []Candidate {
	entries, err := os.ReadDir(dir.Path())
	if err != nil {
		return nil
	}

	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		candidates = append(candidates, Candidate{
			Name:  entry.Name(),
			IsDir: entry.IsDir(),
			Ext:   ExtensionOf(entry.Name()),
		})
	}
	return candidates
}

// iconsByExtension maps well-known extensions to icon references.
var iconsByExtension = map[string]Icon{
	"tex":  "document",
	"sty":  "package",
	"cls":  "class",
	"bib":  "bibliography",
	"png":  "image",
	"jpg":  "image",
	"jpeg": "image",
	"gif":  "image",
	"svg":  "image",
	"eps":  "image",
	"pdf":  "pdf",
	"csv":  "table",
	"txt":  "text",
}

// IconForExtension returns the icon reference for a file extension,
// falling back to a generic file icon.
func (OSHost) IconForExtension(ext string) Icon {
	if icon, ok := iconsByExtension[ext]; ok {
		return icon
	}
	return "file"
}

// ExtensionOf returns the lowercase extension of a file name without the
// leading dot, or the empty string when the name has none.
func ExtensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
