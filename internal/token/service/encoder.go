package service

import (
	"fmt"

	"github.com/allisson/checkin/internal/token/domain"
)

// TokenEncoder maps raw random bytes onto the restricted, ambiguity-free
// generation alphabet to produce a fixed-length token.
type TokenEncoder struct{}

// NewTokenEncoder creates a new token encoder.
func NewTokenEncoder() *TokenEncoder {
	return &TokenEncoder{}
}

// Encode maps each input byte to an alphabet symbol via byte mod 33 and returns
// the resulting token. The input must be exactly TokenLength bytes.
//
// Since 256 is not a multiple of 33, the low 25 alphabet indices are selected
// with probability 8/256 instead of 7/256. The bias costs about a tenth of a
// bit on a 12-symbol token and is kept for compatibility with already-issued
// tokens rather than corrected with rejection sampling.
func (e *TokenEncoder) Encode(b []byte) (string, error) {
	if len(b) != domain.TokenLength {
		return "", fmt.Errorf("input must be exactly %d bytes", domain.TokenLength)
	}

	token := make([]byte, domain.TokenLength)
	for i, v := range b {
		token[i] = domain.GenerationAlphabet[int(v)%domain.GenerationAlphabetSize]
	}

	return string(token), nil
}
