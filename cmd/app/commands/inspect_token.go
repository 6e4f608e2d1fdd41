package commands

import (
	"context"
	"encoding/json"
	"fmt"

	tokenUseCase "github.com/allisson/checkin/internal/token/usecase"
)

// RunInspectToken sanitizes a raw token and reports the acceptance gate
// verdict, empirical entropy, and collision risk.
func RunInspectToken(
	ctx context.Context,
	useCase tokenUseCase.TokenUseCase,
	io IOTuple,
	rawToken string,
	format string,
) error {
	token, ok := useCase.Sanitize(rawToken)
	if !ok {
		switch format {
		case "json":
			fmt.Fprintln(io.Writer, `{"token": null, "is_valid": false, "reason": "token could not be normalized"}`)
		case "text":
			fmt.Fprintln(io.Writer, "token could not be normalized")
		default:
			return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
		}
		return nil
	}

	result := useCase.Validate(ctx, token)

	switch format {
	case "json":
		output, err := json.Marshal(map[string]any{
			"token":          token,
			"is_valid":       result.IsValid,
			"reason":         result.Reason,
			"entropy_bits":   result.EntropyBits,
			"collision_risk": string(result.CollisionRisk),
		})
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(io.Writer, string(output))
	case "text":
		fmt.Fprintf(io.Writer, "token: %s\n", token)
		fmt.Fprintf(io.Writer, "valid: %t\n", result.IsValid)
		if result.Reason != "" {
			fmt.Fprintf(io.Writer, "reason: %s\n", result.Reason)
		}
		fmt.Fprintf(io.Writer, "entropy bits: %.4f\n", result.EntropyBits)
		fmt.Fprintf(io.Writer, "collision risk: %s\n", result.CollisionRisk)
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	return nil
}
