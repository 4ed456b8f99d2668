package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmczar/texpath/internal/completion"
	"github.com/tmczar/texpath/internal/timing"
	"github.com/tmczar/texpath/internal/trace"
)

// CompleteParams contains parameters for the Complete command
type CompleteParams struct {
	DocPath  string
	Token    string // raw token text; used when Offset is negative
	Offset   int    // byte offset into the document, -1 when unset
	Command  string // command override, e.g. \includegraphics
	Format   string // plain, json or pretty
	LogLevel string
}

// Complete runs one completion request against a document and prints the
// proposals.
func Complete(params CompleteParams) error {
	ctx := context.Background()
	defer trace.Region(ctx, "cli.Complete")()

	timer := timing.NewTimer()

	env, err := loadEnvironment(params.DocPath, params.LogLevel)
	if err != nil {
		return err
	}

	raw := params.Token
	command := params.Command
	if params.Offset >= 0 {
		cmd, token, ok := env.doc.TokenAt(params.Offset)
		if !ok {
			return fmt.Errorf("offset %d is not inside an argument", params.Offset)
		}
		raw = token
		if command == "" {
			command = cmd
		}
	}
	timer.Mark("token")

	constraints := env.reg.Constraints(command)
	engine := env.engineFor(env.reg.ScopeOf(command))

	var proposals []completion.Proposal
	trace.WithRegion(ctx, "engine.Complete", func() {
		proposals = engine.Complete(env.doc, completion.Request{Raw: raw, Constraints: &constraints})
	})
	timer.Mark("scan")

	proposals = engine.Filter(proposals, engine.Live(raw))
	timer.Mark("filter")

	env.log.Debug().
		Str("command", command).
		Str("token", raw).
		Int("proposals", len(proposals)).
		Str("timing", timer.Summary()).
		Msg("Completion request done")

	return writeProposals(proposals, params.Format)
}

// proposalJSON is the wire shape of one proposal in json output.
type proposalJSON struct {
	Insert   string `json:"insert"`
	Display  string `json:"display"`
	Icon     string `json:"icon"`
	Behavior string `json:"behavior"`
}

var (
	iconStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	displayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	insertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func writeProposals(proposals []completion.Proposal, format string) error {
	switch format {
	case "", "plain":
		for _, p := range proposals {
			fmt.Printf("%s\t%s\n", p.Insert, p.Display)
		}
		return nil
	case "json":
		out := make([]proposalJSON, 0, len(proposals))
		for _, p := range proposals {
			out = append(out, proposalJSON{
				Insert:   p.Insert,
				Display:  p.Display,
				Icon:     string(p.Icon),
				Behavior: p.Behavior.String(),
			})
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	case "pretty":
		for _, p := range proposals {
			fmt.Printf("%s %s %s\n",
				iconStyle.Render(glyphFor(p.Icon)),
				displayStyle.Render(p.Display),
				insertStyle.Render("→ "+p.Insert))
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// glyphFor maps icon references to terminal glyphs for pretty output.
func glyphFor(icon completion.Icon) string {
	switch icon {
	case completion.FolderIcon:
		return "📁"
	case "image":
		return "🖼 "
	case "bibliography":
		return "📚"
	case "pdf":
		return "📕"
	case "document", "text":
		return "📄"
	default:
		return "· "
	}
}
