package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/voice-token-server/cmd/app/commands"
	"github.com/allisson/voice-token-server/internal/app"
	"github.com/allisson/voice-token-server/internal/config"
)

func getVoiceCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "issue-token",
			Usage: "Issue a voice access token for an identity",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "identity",
					Aliases: []string{"i"},
					Value:   "",
					Usage:   "Client identity (defaults to VOICE_DEFAULT_IDENTITY)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if err := cfg.Validate(); err != nil {
					return err
				}

				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				tokenUseCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				return commands.RunIssueToken(
					ctx,
					tokenUseCase,
					container.Logger(),
					cmd.String("identity"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "route-call",
			Usage: "Print the call-control document the voice webhook returns for a destination",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "to",
					Aliases: []string{"t"},
					Value:   "",
					Usage:   "Phone number or client identity to dial",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if err := cfg.Validate(); err != nil {
					return err
				}

				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				routingUseCase, err := container.RoutingUseCase()
				if err != nil {
					return err
				}

				return commands.RunRouteCall(
					ctx,
					routingUseCase,
					container.Logger(),
					cmd.String("to"),
					commands.DefaultIO(),
				)
			},
		},
	}
}

