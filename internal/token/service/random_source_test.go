package service

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/checkin/internal/token/domain"
)

// failingReader always fails, forcing the degraded fallback path.
type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy pool unavailable")
}

func TestSystemRandomSource_Fill(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	source := NewSystemRandomSource(logger)

	b := make([]byte, 12)
	tag, err := source.Fill(b)

	require.NoError(t, err)
	assert.Equal(t, domain.SourceSecure, tag)
}

func TestSystemRandomSource_Fill_Degraded(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	source := NewRandomSourceWithReader(failingReader{}, logger)

	b := make([]byte, 12)
	tag, err := source.Fill(b)

	require.NoError(t, err)
	assert.Equal(t, domain.SourceDegraded, tag)

	// The fallback keeps producing bytes on subsequent reads
	tag, err = source.Fill(b)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceDegraded, tag)
}

func TestSystemRandomSource_Fill_FillsAllBytes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	source := NewSystemRandomSource(logger)

	// With 64 bytes the probability of every byte being zero by chance is
	// negligible, so an all-zero buffer means the fill did not happen.
	b := make([]byte, 64)
	_, err := source.Fill(b)
	require.NoError(t, err)

	allZero := true
	for _, v := range b {
		if v != 0 {
			allZero = false
			break
		}
	}
	assert.False(t, allZero)
}
