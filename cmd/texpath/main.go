// Package main is the entry point for the texpath CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	texcli "github.com/tmczar/texpath/internal/cli"
	"github.com/tmczar/texpath/internal/trace"
	"github.com/tmczar/texpath/pkg/version"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:                  "texpath",
		Usage:                 "Path completion for TeX document arguments",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("TEXPATH_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "complete",
				Usage: "Complete a path argument in a document",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "doc",
						Usage:    "Document the completion request targets",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "token",
						Usage: "Raw in-progress token text at the cursor",
					},
					&cli.IntFlag{
						Name:  "offset",
						Value: -1,
						Usage: "Byte offset of the cursor inside the document (alternative to --token)",
					},
					&cli.StringFlag{
						Name:  "command",
						Usage: "Command the argument belongs to, e.g. '\\includegraphics'",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "plain",
						Usage: "Output format (plain, json, pretty)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return texcli.Complete(texcli.CompleteParams{
						DocPath:  cmd.String("doc"),
						Token:    cmd.String("token"),
						Offset:   int(cmd.Int("offset")),
						Command:  cmd.String("command"),
						Format:   cmd.String("format"),
						LogLevel: cmd.String("log-level"),
					})
				},
			},
			{
				Name:  "roots",
				Usage: "Print the ordered scan roots for a document",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "doc",
						Usage:    "Document to resolve roots for",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "graphics",
						Usage: "List the graphics search path instead of project roots",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return texcli.Roots(texcli.RootsParams{
						DocPath:  cmd.String("doc"),
						Graphics: cmd.Bool("graphics"),
						LogLevel: cmd.String("log-level"),
					})
				},
			},
			{
				Name:  "status",
				Usage: "Show the completion environment for a document",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "doc",
						Usage:    "Document to inspect",
						Required: true,
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return texcli.Status(cmd.String("doc"))
				},
			},
			{
				Name:  "validate",
				Usage: "Validate a texpath configuration file",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := ""
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return texcli.Validate(configPath)
				},
			},
			{
				Name:  "schema",
				Usage: "Display or export the configuration JSON Schema",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the schema to a file instead of stdout",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return texcli.Schema(cmd.String("output"))
				},
			},
			{
				Name:  "init",
				Usage: "Create a sample config file in the current folder",
				Action: func(_ context.Context, _ *cli.Command) error {
					return texcli.Init()
				},
			},
			{
				Name:  "version",
				Usage: "Show version information",
				Action: func(_ context.Context, _ *cli.Command) error {
					fmt.Printf("texpath %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
					return nil
				},
			},
		},
	}
}

func main() {
	stopTrace := trace.Init()
	defer stopTrace()

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
