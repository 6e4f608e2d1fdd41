package commands

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHashToken(t *testing.T) {
	ctx := context.Background()

	t.Run("text-format", func(t *testing.T) {
		ioTuple, buf := newCommandIO()

		err := RunHashToken(ctx, newCommandUseCase(), ioTuple, "ABCDEFGHJKLM", "text")
		require.NoError(t, err)

		digest := strings.TrimSpace(buf.String())
		assert.Len(t, digest, 64)
	})

	t.Run("json-format", func(t *testing.T) {
		ioTuple, buf := newCommandIO()

		err := RunHashToken(ctx, newCommandUseCase(), ioTuple, "ABCDEFGHJKLM", "json")
		require.NoError(t, err)

		var output map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
		hash, ok := output["hash"].(string)
		require.True(t, ok)
		assert.Len(t, hash, 64)
		assert.Equal(t, "secure", output["path"])
	})

	t.Run("deterministic", func(t *testing.T) {
		ioTuple1, buf1 := newCommandIO()
		ioTuple2, buf2 := newCommandIO()

		require.NoError(t, RunHashToken(ctx, newCommandUseCase(), ioTuple1, "ABCDEFGHJKLM", "text"))
		require.NoError(t, RunHashToken(ctx, newCommandUseCase(), ioTuple2, "ABCDEFGHJKLM", "text"))
		assert.Equal(t, buf1.String(), buf2.String())
	})

	t.Run("malformed-token", func(t *testing.T) {
		ioTuple, _ := newCommandIO()

		err := RunHashToken(ctx, newCommandUseCase(), ioTuple, "bad", "text")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to hash token")
	})

	t.Run("invalid-format", func(t *testing.T) {
		ioTuple, _ := newCommandIO()

		err := RunHashToken(ctx, newCommandUseCase(), ioTuple, "ABCDEFGHJKLM", "yaml")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid format")
	})
}
