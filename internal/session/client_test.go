package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	apperrors "github.com/allisson/checkin/internal/errors"
	"github.com/allisson/checkin/internal/token/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestClient_Check(t *testing.T) {
	t.Run("ValidSession_ReturnsRecord", func(t *testing.T) {
		expiresAt := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/sessions/check", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

			var req checkRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "ABCDEFGHJKLM", req.Token)
			assert.Equal(t, "attendee-42", req.AuthContext)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(Validity{
				IsValid:       true,
				ExpiresAt:     &expiresAt,
				TimeRemaining: 300,
				SessionAge:    60,
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, WithHTTPClient(server.Client()))
		validity, err := client.Check(context.Background(), "ABCDEFGHJKLM", "attendee-42")

		require.NoError(t, err)
		assert.True(t, validity.IsValid)
		require.NotNil(t, validity.ExpiresAt)
		assert.True(t, expiresAt.Equal(*validity.ExpiresAt))
		assert.Equal(t, int64(300), validity.TimeRemaining)
		assert.Equal(t, int64(60), validity.SessionAge)
		assert.Empty(t, validity.Error)
	})

	t.Run("ExpiredSession_ErrorTextSurfacedOpaquely", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(Validity{
				IsValid: false,
				Error:   "session expired",
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, WithHTTPClient(server.Client()))
		validity, err := client.Check(context.Background(), "ABCDEFGHJKLM", "attendee-42")

		require.NoError(t, err)
		assert.False(t, validity.IsValid)
		assert.Equal(t, "session expired", validity.Error)
	})

	t.Run("ServerError_ReturnsSessionUnavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, WithHTTPClient(server.Client()))
		_, err := client.Check(context.Background(), "ABCDEFGHJKLM", "attendee-42")

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, domain.ErrSessionUnavailable))
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("MalformedBody_ReturnsSessionUnavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewClient(server.URL, WithHTTPClient(server.Client()))
		_, err := client.Check(context.Background(), "ABCDEFGHJKLM", "attendee-42")

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, domain.ErrSessionUnavailable))
	})

	t.Run("UnreachableService_ReturnsSessionUnavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(server.URL)
		_, err := client.Check(context.Background(), "ABCDEFGHJKLM", "attendee-42")

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, domain.ErrSessionUnavailable))
	})

	t.Run("ContextDeadline_AbortsWithoutRetry", func(t *testing.T) {
		var calls atomic.Int32
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			<-release
		}))
		defer func() {
			close(release)
			server.Close()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		client := NewClient(server.URL, WithHTTPClient(server.Client()))
		_, err := client.Check(ctx, "ABCDEFGHJKLM", "attendee-42")

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, domain.ErrSessionUnavailable))
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestNewClient(t *testing.T) {
	t.Run("TrimsTrailingSlash", func(t *testing.T) {
		client := NewClient("http://localhost:9090/")

		assert.Equal(t, "http://localhost:9090", client.baseURL)
	})

	t.Run("WithTimeout_SetsClientTimeout", func(t *testing.T) {
		client := NewClient("http://localhost:9090", WithTimeout(time.Second))

		assert.Equal(t, time.Second, client.httpClient.Timeout)
	})
}
