package commands

import (
	"context"
	"encoding/json"
	"fmt"

	tokenUseCase "github.com/allisson/checkin/internal/token/usecase"
)

// RunHashToken computes the one-way digest of a token for storage or
// comparison. The token must already be in canonical form; malformed input
// is an error, not a silent fallback.
func RunHashToken(
	ctx context.Context,
	useCase tokenUseCase.TokenUseCase,
	io IOTuple,
	token string,
	format string,
) error {
	digest, err := useCase.Hash(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to hash token: %w", err)
	}

	switch format {
	case "json":
		output, err := json.Marshal(map[string]any{
			"hash": digest.Value,
			"path": digest.Path.String(),
		})
		if err != nil {
			return fmt.Errorf("failed to marshal digest: %w", err)
		}
		fmt.Fprintln(io.Writer, string(output))
	case "text":
		fmt.Fprintln(io.Writer, digest.Value)
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	return nil
}
