package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrivyServer(t *testing.T, status int, body string, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		assert.Equal(t, privyMePath, r.URL.Path)
		assert.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		assert.Equal(t, "app-123", r.Header.Get(privyAppIDHeader))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPrivyClient_VerifyToken(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedSubject string
		expectedError   error
	}{
		{
			name:            "Top level id",
			status:          http.StatusOK,
			body:            `{"id":"did:privy:abc"}`,
			expectedSubject: "did:privy:abc",
		},
		{
			name:            "Nested user id",
			status:          http.StatusOK,
			body:            `{"user":{"id":"did:privy:nested"}}`,
			expectedSubject: "did:privy:nested",
		},
		{
			name:          "Rejected token",
			status:        http.StatusUnauthorized,
			body:          `{"error":"invalid auth token"}`,
			expectedError: ErrInvalidToken,
		},
		{
			name:          "Payload without id",
			status:        http.StatusOK,
			body:          `{"linked_accounts":[]}`,
			expectedError: ErrInvalidToken,
		},
		{
			name:          "Provider error counts as rejection",
			status:        http.StatusBadGateway,
			body:          `{}`,
			expectedError: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newPrivyServer(t, tt.status, tt.body, nil)
			client := NewPrivyClient(PrivyConfig{BaseURL: srv.URL, AppID: "app-123"})
			defer client.Close()

			subject, err := client.VerifyToken(context.Background(), "good-token")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, subject)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedSubject, subject)
		})
	}
}

func TestPrivyClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewPrivyClient(PrivyConfig{BaseURL: url, Timeout: time.Second})
	defer client.Close()

	_, err := client.VerifyToken(context.Background(), "good-token")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPrivyClient_EmptyTokenSkipsProvider(t *testing.T) {
	var calls int32
	srv := newPrivyServer(t, http.StatusOK, `{"id":"did:privy:abc"}`, &calls)
	client := NewPrivyClient(PrivyConfig{BaseURL: srv.URL, AppID: "app-123"})
	defer client.Close()

	_, err := client.VerifyToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestPrivyClient_CachesVerifiedSubject(t *testing.T) {
	var calls int32
	srv := newPrivyServer(t, http.StatusOK, `{"id":"did:privy:abc"}`, &calls)
	client := NewPrivyClient(PrivyConfig{BaseURL: srv.URL, AppID: "app-123", CacheTTL: time.Minute})
	defer client.Close()

	for i := 0; i < 3; i++ {
		subject, err := client.VerifyToken(context.Background(), "good-token")
		require.NoError(t, err)
		assert.Equal(t, "did:privy:abc", subject)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("bearer abc "))
	assert.Empty(t, BearerToken("Basic abc"))
	assert.Empty(t, BearerToken(""))
	assert.Empty(t, BearerToken("Bearer "))
}

func TestPrivyClient_NoCacheByDefault(t *testing.T) {
	var calls int32
	srv := newPrivyServer(t, http.StatusOK, `{"id":"did:privy:abc"}`, &calls)
	client := NewPrivyClient(PrivyConfig{BaseURL: srv.URL, AppID: "app-123"})
	defer client.Close()

	for i := 0; i < 3; i++ {
		_, err := client.VerifyToken(context.Background(), "good-token")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}
