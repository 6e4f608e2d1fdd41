// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/checkin/cmd/app/commands"
	"github.com/allisson/checkin/internal/app"
	"github.com/allisson/checkin/internal/config"
	tokenUseCase "github.com/allisson/checkin/internal/token/usecase"
)

const version = "1.0.0"

// withUseCase loads configuration, builds the container, and hands the token
// use case to the command body, shutting the container down afterwards.
func withUseCase(run func(ctx context.Context, useCase tokenUseCase.TokenUseCase, container *app.Container) error) func(context.Context, *cli.Command) error {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg := config.Load()
		container := app.NewContainer(cfg)
		logger := container.Logger()

		useCase, err := container.TokenUseCase()
		if err != nil {
			return fmt.Errorf("failed to initialize token use case: %w", err)
		}

		defer func() {
			if err := container.Shutdown(context.Background()); err != nil {
				logger.Error("failed to shutdown container", slog.Any("error", err))
			}
		}()

		return run(ctx, useCase, container)
	}
}

func main() {
	cmd := &cli.Command{
		Name:    "app",
		Usage:   "Check-in token security service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "generate-token",
				Usage: "Generate one or more check-in tokens",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"c"},
						Value:   1,
						Usage:   "Number of tokens to generate",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withUseCase(func(ctx context.Context, useCase tokenUseCase.TokenUseCase, container *app.Container) error {
						return commands.RunGenerateToken(
							ctx,
							useCase,
							container.Logger(),
							commands.DefaultIO(),
							int(cmd.Int("count")),
							cmd.String("format"),
						)
					})(ctx, cmd)
				},
			},
			{
				Name:      "inspect-token",
				Usage:     "Sanitize a token and report the acceptance gate verdict",
				ArgsUsage: "<token>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return fmt.Errorf("expected exactly one token argument")
					}
					return withUseCase(func(ctx context.Context, useCase tokenUseCase.TokenUseCase, container *app.Container) error {
						return commands.RunInspectToken(
							ctx,
							useCase,
							commands.DefaultIO(),
							cmd.Args().First(),
							cmd.String("format"),
						)
					})(ctx, cmd)
				},
			},
			{
				Name:      "hash-token",
				Usage:     "Compute the one-way digest of a token",
				ArgsUsage: "<token>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return fmt.Errorf("expected exactly one token argument")
					}
					return withUseCase(func(ctx context.Context, useCase tokenUseCase.TokenUseCase, container *app.Container) error {
						return commands.RunHashToken(
							ctx,
							useCase,
							commands.DefaultIO(),
							cmd.Args().First(),
							cmd.String("format"),
						)
					})(ctx, cmd)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
