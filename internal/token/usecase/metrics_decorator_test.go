package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/checkin/internal/token/domain"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// fakeTokenUseCase returns canned values so decorator tests control every
// outcome without touching the real services.
type fakeTokenUseCase struct {
	generated       domain.GeneratedToken
	generateErr     error
	result          domain.ValidationResult
	digest          domain.Digest
	hashErr         error
	metrics         domain.SecurityMetrics
	resetCalls      int
	sanitizeOK      bool
	sanitizedToken  string
	validFormat     bool
	formatArg       string
	sanitizeArg     string
	validateArg     string
	hashArg         string
}

func (f *fakeTokenUseCase) Generate(ctx context.Context) (domain.GeneratedToken, error) {
	return f.generated, f.generateErr
}

func (f *fakeTokenUseCase) Validate(ctx context.Context, candidate string) domain.ValidationResult {
	f.validateArg = candidate
	return f.result
}

func (f *fakeTokenUseCase) IsValidFormat(token string) bool {
	f.formatArg = token
	return f.validFormat
}

func (f *fakeTokenUseCase) Sanitize(raw string) (string, bool) {
	f.sanitizeArg = raw
	return f.sanitizedToken, f.sanitizeOK
}

func (f *fakeTokenUseCase) Hash(ctx context.Context, token string) (domain.Digest, error) {
	f.hashArg = token
	return f.digest, f.hashErr
}

func (f *fakeTokenUseCase) SecurityMetrics() domain.SecurityMetrics {
	return f.metrics
}

func (f *fakeTokenUseCase) ResetMetrics() {
	f.resetCalls++
}

func TestNewTokenUseCaseWithMetrics(t *testing.T) {
	decorator := NewTokenUseCaseWithMetrics(&fakeTokenUseCase{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.IsType(t, &tokenUseCaseWithMetrics{}, decorator)
}

func TestTokenUseCaseWithMetrics_Generate(t *testing.T) {
	tests := []struct {
		name           string
		generated      domain.GeneratedToken
		generateErr    error
		expectedStatus string
	}{
		{
			name:           "Success_RecordsSuccessMetrics",
			generated:      domain.GeneratedToken{Value: "ABCDEFGHJKLM", Source: domain.SourceSecure},
			expectedStatus: "success",
		},
		{
			name:           "Error_RecordsErrorMetrics",
			generateErr:    errors.New("random source exhausted"),
			expectedStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeTokenUseCase{generated: tt.generated, generateErr: tt.generateErr}
			mockMetrics := &mockBusinessMetrics{}
			mockMetrics.On("RecordOperation", mock.Anything, "token", "generate", tt.expectedStatus).Once()
			mockMetrics.On("RecordDuration", mock.Anything, "token", "generate", mock.AnythingOfType("time.Duration"), tt.expectedStatus).
				Once()

			decorator := NewTokenUseCaseWithMetrics(fake, mockMetrics)
			token, err := decorator.Generate(context.Background())

			assert.Equal(t, tt.generated, token)
			assert.Equal(t, tt.generateErr, err)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestTokenUseCaseWithMetrics_Validate(t *testing.T) {
	tests := []struct {
		name           string
		result         domain.ValidationResult
		expectedStatus string
	}{
		{
			name:           "Accepted_RecordsAcceptedMetrics",
			result:         domain.ValidationResult{IsValid: true, EntropyBits: 43.02},
			expectedStatus: "accepted",
		},
		{
			name:           "Rejected_RecordsRejectedMetrics",
			result:         domain.ValidationResult{IsValid: false, Reason: "token entropy too low"},
			expectedStatus: "rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeTokenUseCase{result: tt.result}
			mockMetrics := &mockBusinessMetrics{}
			mockMetrics.On("RecordOperation", mock.Anything, "token", "validate", tt.expectedStatus).Once()
			mockMetrics.On("RecordDuration", mock.Anything, "token", "validate", mock.AnythingOfType("time.Duration"), tt.expectedStatus).
				Once()

			decorator := NewTokenUseCaseWithMetrics(fake, mockMetrics)
			result := decorator.Validate(context.Background(), "ABCDEFGHJKLM")

			assert.Equal(t, tt.result, result)
			assert.Equal(t, "ABCDEFGHJKLM", fake.validateArg)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestTokenUseCaseWithMetrics_Hash(t *testing.T) {
	tests := []struct {
		name           string
		digest         domain.Digest
		hashErr        error
		expectedStatus string
	}{
		{
			name:           "Success_RecordsSuccessMetrics",
			digest:         domain.Digest{Value: "abc123", Path: domain.HashPathSecure},
			expectedStatus: "success",
		},
		{
			name:           "Error_RecordsErrorMetrics",
			hashErr:        errors.New("invalid format"),
			expectedStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeTokenUseCase{digest: tt.digest, hashErr: tt.hashErr}
			mockMetrics := &mockBusinessMetrics{}
			mockMetrics.On("RecordOperation", mock.Anything, "token", "hash", tt.expectedStatus).Once()
			mockMetrics.On("RecordDuration", mock.Anything, "token", "hash", mock.AnythingOfType("time.Duration"), tt.expectedStatus).
				Once()

			decorator := NewTokenUseCaseWithMetrics(fake, mockMetrics)
			digest, err := decorator.Hash(context.Background(), "ABCDEFGHJKLM")

			assert.Equal(t, tt.digest, digest)
			assert.Equal(t, tt.hashErr, err)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestTokenUseCaseWithMetrics_PassThroughs(t *testing.T) {
	fake := &fakeTokenUseCase{
		validFormat:    true,
		sanitizedToken: "ABCDEF123456",
		sanitizeOK:     true,
		metrics:        domain.SecurityMetrics{UniqueTokensGenerated: 7},
	}
	mockMetrics := &mockBusinessMetrics{}

	decorator := NewTokenUseCaseWithMetrics(fake, mockMetrics)

	assert.True(t, decorator.IsValidFormat("ABCDEF123456"))
	token, ok := decorator.Sanitize(" abc def 123 456 ")
	assert.True(t, ok)
	assert.Equal(t, "ABCDEF123456", token)
	assert.Equal(t, uint64(7), decorator.SecurityMetrics().UniqueTokensGenerated)

	decorator.ResetMetrics()
	assert.Equal(t, 1, fake.resetCalls)

	// No metric calls may leak through the pure pass-throughs.
	mockMetrics.AssertExpectations(t)
}
