package service

import (
	"crypto/rand"
	"io"
	"log/slog"
	mathrand "math/rand/v2"
	"sync"
	"time"

	"github.com/allisson/checkin/internal/token/domain"
)

// systemRandomSource reads from the operating-system CSPRNG and degrades to a
// non-cryptographic PRNG when the CSPRNG is unavailable. The degradation is
// tagged on every read and logged once per process.
type systemRandomSource struct {
	reader   io.Reader
	logger   *slog.Logger
	mu       sync.Mutex
	fallback *mathrand.Rand
	warned   bool
}

// NewSystemRandomSource creates a RandomSource backed by crypto/rand.
func NewSystemRandomSource(logger *slog.Logger) RandomSource {
	return &systemRandomSource{
		reader: rand.Reader,
		logger: logger,
	}
}

// NewRandomSourceWithReader creates a RandomSource backed by the given reader.
// Used by tests to force the degraded path.
func NewRandomSourceWithReader(reader io.Reader, logger *slog.Logger) RandomSource {
	return &systemRandomSource{
		reader: reader,
		logger: logger,
	}
}

// Fill populates b with random bytes. It reads from the CSPRNG first and, on
// failure, falls back to a time-seeded PCG generator tagged SourceDegraded.
// There are no retries: the read either succeeds immediately or degrades.
func (s *systemRandomSource) Fill(b []byte) (domain.Source, error) {
	if _, err := io.ReadFull(s.reader, b); err == nil {
		return domain.SourceSecure, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.warned {
		s.logger.Warn("cryptographic random source unavailable, using degraded fallback generator")
		s.warned = true
	}

	if s.fallback == nil {
		now := uint64(time.Now().UnixNano())
		s.fallback = mathrand.New(mathrand.NewPCG(now, now>>32))
	}

	for i := range b {
		b[i] = byte(s.fallback.UintN(256))
	}

	return domain.SourceDegraded, nil
}
