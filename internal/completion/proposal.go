// Package completion implements path completion for document arguments.
// A raw in-progress token is normalized into a stable prefix, candidate
// scan roots are resolved and enumerated, and the resulting entries are
// turned into insertion proposals for the completion host.
package completion

// InsertBehavior tells the host what accepting a proposal does.
type InsertBehavior int

const (
	// PlainInsert inserts the proposal text as-is.
	PlainInsert InsertBehavior = iota
	// FileReferenceInsert first resolves the file reference, then inserts
	// the filename. Both steps run, in that order, on acceptance.
	FileReferenceInsert
)

// String returns the behavior name for logs and serialized output.
func (b InsertBehavior) String() string {
	switch b {
	case FileReferenceInsert:
		return "file-reference"
	default:
		return "plain"
	}
}

// Icon is an opaque icon reference resolved by the completion host.
type Icon string

// FolderIcon is the icon used for directory and navigation proposals.
const FolderIcon Icon = "folder"

// Proposal is a single completion suggestion.
type Proposal struct {
	Insert   string         // Text inserted when the proposal is accepted
	Display  string         // Presentable name shown in the dropdown
	Icon     Icon           // Icon reference for the dropdown
	Behavior InsertBehavior // What acceptance does
}

// Candidate is one immediate child of a scanned directory. Candidates are
// produced per scan and consumed immediately; they are never retained
// across requests.
type Candidate struct {
	Name  string
	IsDir bool
	Ext   string // lowercase, without the leading dot; empty when none
}

// Constraints restricts what a completion request may propose. The zero
// value allows every extension but forbids absolute paths.
type Constraints struct {
	// Extensions is the allow-list of file extensions (lowercase, without
	// dot). A nil map means unrestricted. Directories are never filtered
	// by extension.
	Extensions map[string]struct{}
	// AllowAbsolute permits completing absolute filesystem paths.
	AllowAbsolute bool
}

// NewConstraints builds Constraints from an extension list. An empty or nil
// list means unrestricted.
func NewConstraints(extensions []string, allowAbsolute bool) Constraints {
	c := Constraints{AllowAbsolute: allowAbsolute}
	if len(extensions) > 0 {
		c.Extensions = make(map[string]struct{}, len(extensions))
		for _, ext := range extensions {
			c.Extensions[ext] = struct{}{}
		}
	}
	return c
}

// Unrestricted returns the permissive default applied when a request
// carries no argument constraints.
func Unrestricted() Constraints {
	return Constraints{AllowAbsolute: true}
}

// AllowsExtension reports whether a file with the given extension may be
// proposed.
func (c Constraints) AllowsExtension(ext string) bool {
	if c.Extensions == nil {
		return true
	}
	_, ok := c.Extensions[ext]
	return ok
}
