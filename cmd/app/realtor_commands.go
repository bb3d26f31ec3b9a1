package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/leadlink/cmd/app/commands"
	"github.com/allisson/leadlink/internal/app"
	"github.com/allisson/leadlink/internal/config"
	realtorUseCase "github.com/allisson/leadlink/internal/realtor/usecase"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   commands.FormatText,
		Usage:   "Output format: 'text', 'json' or 'yaml'",
	}
}

func realtorIDFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "realtor-id",
		Aliases:  []string{"r"},
		Required: true,
		Usage:    "Realtor ID (e.g., rlt_0f3c...)",
	}
}

func getRealtorCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-realtor",
			Usage: "Register a realtor",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Display name"},
				&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true, Usage: "Contact email"},
				&cli.StringFlag{Name: "company", Usage: "Brokerage or company name"},
				&cli.StringFlag{Name: "phone", Usage: "Contact phone"},
				&cli.StringFlag{Name: "license", Usage: "License number"},
				&cli.StringFlag{Name: "photo-url", Usage: "Profile photo URL"},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.RealtorUseCase()
				if err != nil {
					return err
				}

				input := realtorUseCase.CreateRealtorInput{
					Name:     cmd.String("name"),
					Email:    cmd.String("email"),
					Company:  cmd.String("company"),
					Phone:    cmd.String("phone"),
					License:  cmd.String("license"),
					PhotoURL: cmd.String("photo-url"),
				}

				return commands.RunCreateRealtor(
					ctx,
					useCase,
					container.Logger(),
					input,
					cmd.String("format"),
					commands.DefaultIO().Writer,
				)
			},
		},
		{
			Name:  "share-link",
			Usage: "Print a realtor's share link, issuing one if none exists",
			Flags: []cli.Flag{realtorIDFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.ShareLinkUseCase()
				if err != nil {
					return err
				}

				return commands.RunShareLink(
					ctx,
					useCase,
					container.Logger(),
					cmd.String("realtor-id"),
					cmd.String("format"),
					commands.DefaultIO().Writer,
				)
			},
		},
		{
			Name:  "regenerate-share-link",
			Usage: "Replace a realtor's share link; the old URL stops resolving in strict mode",
			Flags: []cli.Flag{realtorIDFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.ShareLinkUseCase()
				if err != nil {
					return err
				}

				return commands.RunRegenerateShareLink(
					ctx,
					useCase,
					container.Logger(),
					cmd.String("realtor-id"),
					cmd.String("format"),
					commands.DefaultIO().Writer,
				)
			},
		},
		{
			Name:  "inspect-token",
			Usage: "Check a share token's format and decode it without a database",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "token", Aliases: []string{"t"}, Required: true, Usage: "Share token"},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				return commands.RunInspectToken(
					cmd.String("token"),
					cfg.ShareLinkBaseURL,
					cmd.String("format"),
					commands.DefaultIO().Writer,
				)
			},
		},
	}
}
