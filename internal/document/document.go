// Package document models a TeX source file for completion purposes:
// logical root-file resolution, graphics search paths, and extraction of
// the in-progress command argument at a cursor offset.
package document

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tmczar/texpath/internal/derrors"
)

// Document is a loaded TeX source file.
type Document struct {
	Path string // absolute path
	Text string
}

// Load reads a document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.NewDocumentError(path, "failed to read document", err)
	}
	return New(path, string(data)), nil
}

// New creates a document from in-memory text. The path is made absolute so
// root and scan-root resolution yields absolute directories.
func New(path, text string) *Document {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Document{Path: abs, Text: text}
}

// Dir returns the directory containing the document.
func (d *Document) Dir() string {
	return filepath.Dir(d.Path)
}

// magicRootRe matches the "% !TeX root = file.tex" magic comment.
var magicRootRe = regexp.MustCompile(`(?mi)^%+\s*!TeX\s+root\s*=\s*(\S+)`)

// RootFile returns the path of the document's logical root file. The
// second return is false when the document belongs to no recognized
// project: no root magic comment and no \documentclass of its own.
func (d *Document) RootFile() (string, bool) {
	if m := magicRootRe.FindStringSubmatch(d.Text); m != nil {
		root := m[1]
		if !filepath.IsAbs(root) {
			root = filepath.Join(d.Dir(), root)
		}
		return filepath.Clean(root), true
	}
	if strings.Contains(d.Text, `\documentclass`) {
		return d.Path, true
	}
	return "", false
}

var (
	graphicsPathRe  = regexp.MustCompile(`\\graphicspath\s*\{((?:\s*\{[^{}]*\}\s*)+)\}`)
	graphicsEntryRe = regexp.MustCompile(`\{([^{}]*)\}`)
)

// GraphicsPaths returns the entries declared by \graphicspath groups, in
// declaration order. Entries are returned as written; resolving them
// against a base directory is the caller's concern.
func (d *Document) GraphicsPaths() []string {
	var paths []string
	for _, group := range graphicsPathRe.FindAllStringSubmatch(d.Text, -1) {
		for _, entry := range graphicsEntryRe.FindAllStringSubmatch(group[1], -1) {
			if entry[1] != "" {
				paths = append(paths, entry[1])
			}
		}
	}
	return paths
}

// TokenAt returns the control sequence and the in-progress argument text
// at a byte offset. ok is false when the offset is not inside a braced
// argument group.
func (d *Document) TokenAt(offset int) (command, token string, ok bool) {
	if offset < 0 || offset > len(d.Text) {
		return "", "", false
	}

	// Walk back to the unmatched opening brace of the argument the cursor
	// sits in.
	depth := 0
	open := -1
	for i := offset - 1; i >= 0; i-- {
		switch d.Text[i] {
		case '}':
			depth++
		case '{':
			if depth == 0 {
				open = i
			} else {
				depth--
			}
		}
		if open >= 0 {
			break
		}
	}
	if open < 0 {
		return "", "", false
	}

	token = d.Text[open+1 : offset]

	// The command precedes the brace, skipping an optional [...] group.
	j := open - 1
	if j >= 0 && d.Text[j] == ']' {
		for j >= 0 && d.Text[j] != '[' {
			j--
		}
		j--
	}
	end := j + 1
	for j >= 0 && (isCommandChar(d.Text[j])) {
		j--
	}
	if j >= 0 && d.Text[j] == '\\' && end > j+1 {
		command = d.Text[j:end]
	}
	return command, token, true
}

func isCommandChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '*'
}
