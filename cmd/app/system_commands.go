package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/voice-token-server/cmd/app/commands"
	"github.com/allisson/voice-token-server/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "check-config",
			Usage: "Validate the configuration and print a redacted summary",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCheckConfig(
					config.Load(),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
