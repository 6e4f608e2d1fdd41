package domain

import (
	"github.com/allisson/checkin/internal/errors"
)

var (
	// ErrInvalidTokenFormat indicates a token failed the structural format check
	// (exactly 12 alphanumeric characters). Hashing preconditions fail with this.
	ErrInvalidTokenFormat = errors.Wrap(errors.ErrInvalidFormat, "token must be exactly 12 alphanumeric characters")

	// ErrGenerationFailure indicates no usable random source was available.
	// Should never occur given the mandated fallback source.
	ErrGenerationFailure = errors.New("no usable random source available")

	// ErrSessionUnavailable indicates the session-validity service could not be reached.
	ErrSessionUnavailable = errors.Wrap(errors.ErrUnavailable, "session service unavailable")
)
