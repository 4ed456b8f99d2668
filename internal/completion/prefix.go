package completion

import (
	"path/filepath"
	"strings"
)

// DefaultMarker is the placeholder string a completion host may splice
// into the raw token at the caret position while the user is typing. It
// never denotes real content and is stripped before any path lookup.
const DefaultMarker = "‸"

// Prefix is the normalized form of an in-progress path token. Display is
// the path text already typed, ending in a slash or empty; the trailing
// partial segment is not part of it. Display never contains the typing
// marker and never starts with "./" or "//".
type Prefix struct {
	Display  string
	Absolute bool
}

// Parser normalizes raw in-progress tokens.
type Parser struct {
	// Marker is the synthetic typing placeholder to strip. Empty disables
	// marker stripping.
	Marker string
}

// NewParser returns a parser stripping the default typing marker.
func NewParser() Parser {
	return Parser{Marker: DefaultMarker}
}

// trim applies the pure string transforms shared by Normalize and Live.
// Order matters: closing delimiter, typing marker, argument separator,
// leading "./", leading "//".
func (p Parser) trim(raw string) string {
	s := strings.TrimSuffix(raw, "}")
	if p.Marker != "" {
		s = strings.ReplaceAll(s, p.Marker, "")
	}
	// Completion always targets the last argument of a comma-separated
	// list; earlier segments are already committed.
	if i := strings.LastIndex(s, ","); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimPrefix(s, "./")
	if strings.HasPrefix(s, "//") {
		s = s[1:]
	}
	return s
}

// Normalize converts raw token text into a stable lookup prefix.
func (p Parser) Normalize(raw string) Prefix {
	s := p.trim(raw)
	pre := Prefix{Absolute: filepath.IsAbs(s)}
	if i := strings.LastIndex(s, "/"); i >= 0 {
		pre.Display = s[:i+1]
	}
	return pre
}

// Live returns the trailing partial segment after the last slash. The host
// matches proposal display text against it; a token without a slash is
// entirely live text.
func (p Parser) Live(raw string) string {
	s := p.trim(raw)
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}
