package completion

import (
	"strings"

	"github.com/tmczar/texpath/internal/document"
	"github.com/tmczar/texpath/internal/logger"
)

// Strategy supplies the ordered scan roots for a document and toggles
// folder/file search. Concrete strategies differ only in this policy; the
// parsing and scanning pipeline is identical across all of them.
type Strategy interface {
	ScanRoots(doc *document.Document) []string
	SearchFolders() bool
	SearchFiles() bool
}

// Request is one keystroke-triggered completion request. All derived state
// is request-scoped; nothing survives between invocations.
type Request struct {
	// Raw is the in-progress token text at the cursor.
	Raw string
	// Constraints restricts proposals for the active argument. Nil means
	// unrestricted extensions with absolute paths allowed.
	Constraints *Constraints
}

// Provider runs the completion pipeline for a single strategy.
type Provider struct {
	host     Host
	strategy Strategy
	parser   Parser
	log      *logger.Logger
}

// NewProvider wires a strategy to a host.
func NewProvider(host Host, strategy Strategy, log *logger.Logger) *Provider {
	return &Provider{
		host:     host,
		strategy: strategy,
		parser:   NewParser(),
		log:      log,
	}
}

// Complete runs one request: normalize the token, resolve each scan root,
// enumerate it, and build proposals. Unresolvable roots contribute nothing.
func (p *Provider) Complete(doc *document.Document, req Request) []Proposal {
	cons := Unrestricted()
	if req.Constraints != nil {
		cons = *req.Constraints
	}

	pre := p.parser.Normalize(req.Raw)
	roots := p.strategy.ScanRoots(doc)

	p.log.Debug().
		Str("raw", req.Raw).
		Str("prefix", pre.Display).
		Bool("absolute", pre.Absolute).
		Int("roots", len(roots)).
		Msg("Resolved completion prefix")

	if len(roots) == 0 {
		return nil
	}

	// An absolute prefix ignores every base directory, so all roots would
	// resolve to the identical scan; run it once.
	if pre.Absolute {
		resolved, ok := Resolve(p.host, "", pre, cons.AllowAbsolute)
		if !ok {
			return nil
		}
		return p.scan(resolved, cons)
	}

	var proposals []Proposal
	for _, root := range roots {
		resolved, ok := Resolve(p.host, root, pre, cons.AllowAbsolute)
		if !ok {
			continue
		}
		proposals = append(proposals, p.scan(resolved, cons)...)
	}
	return proposals
}

func (p *Provider) scan(r Resolved, cons Constraints) []Proposal {
	var dirs, files []Candidate
	if p.strategy.SearchFolders() {
		dirs = List(p.host, r.Dir, true)
	}
	if p.strategy.SearchFiles() {
		files = List(p.host, r.Dir, false)
	}
	return Build(p.host, r.Echo, dirs, files, cons, p.strategy.SearchFolders(), p.strategy.SearchFiles())
}

// Engine merges proposals from an ordered set of providers. Providers run
// sequentially on the calling goroutine; one completion request has no
// suspension points.
type Engine struct {
	providers []*Provider
	parser    Parser
}

// NewEngine creates an engine over the given providers.
func NewEngine(providers ...*Provider) *Engine {
	return &Engine{providers: providers, parser: NewParser()}
}

// Complete collects proposals from every provider in order.
func (e *Engine) Complete(doc *document.Document, req Request) []Proposal {
	var proposals []Proposal
	for _, provider := range e.providers {
		proposals = append(proposals, provider.Complete(doc, req)...)
	}
	return proposals
}

// Live exposes the trailing partial segment of a raw token, the text the
// host matches proposals against.
func (e *Engine) Live(raw string) string {
	return e.parser.Live(raw)
}

// Filter applies prefix filtering against the live segment, standing in
// for the host's own matcher.
func (e *Engine) Filter(proposals []Proposal, live string) []Proposal {
	if live == "" {
		return proposals
	}

	var filtered []Proposal
	for _, p := range proposals {
		if strings.HasPrefix(p.Display, live) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
