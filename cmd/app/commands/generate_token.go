package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	tokenUseCase "github.com/allisson/checkin/internal/token/usecase"
)

// RunGenerateToken issues one or more check-in tokens and writes them to the
// provided writer. With format "json" each token is printed as a JSON object
// including its randomness source and entropy tag; with "text" only the token
// values are printed.
func RunGenerateToken(
	ctx context.Context,
	useCase tokenUseCase.TokenUseCase,
	logger *slog.Logger,
	io IOTuple,
	count int,
	format string,
) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	for i := 0; i < count; i++ {
		token, err := useCase.Generate(ctx)
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}

		if token.Flagged {
			logger.Warn("generated token flagged by acceptance gate",
				slog.Float64("entropy_bits", token.EntropyBits))
		}

		switch format {
		case "json":
			output, err := json.Marshal(map[string]any{
				"token":        token.Value,
				"source":       token.Source.String(),
				"entropy_bits": token.EntropyBits,
				"flagged":      token.Flagged,
			})
			if err != nil {
				return fmt.Errorf("failed to marshal token: %w", err)
			}
			fmt.Fprintln(io.Writer, string(output))
		case "text":
			fmt.Fprintln(io.Writer, token.Value)
		default:
			return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
		}
	}

	return nil
}
