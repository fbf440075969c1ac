package prana

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestClient_TokenSource(t *testing.T) {
	t.Run("not logged in", func(t *testing.T) {
		client, err := NewClient()
		require.NoError(t, err)

		_, err = client.TokenSource(context.Background()).Token()
		require.Error(t, err)
		assert.True(t, IsUnauthorized(err))
	})

	t.Run("current token", func(t *testing.T) {
		pair := freshPair(t)
		client, err := NewClient(WithTokens(pair))
		require.NoError(t, err)

		tok, err := client.TokenSource(context.Background()).Token()
		require.NoError(t, err)
		assert.Equal(t, pair.AccessToken, tok.AccessToken)
		assert.Equal(t, pair.RefreshToken, tok.RefreshToken)
		assert.True(t, tok.Valid())
	})

	t.Run("refreshes expired token", func(t *testing.T) {
		fresh := freshPair(t)
		r := chi.NewRouter()
		r.Post("/api/auth/token", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"token": fresh.AccessToken, "refreshToken": fresh.RefreshToken})
		})
		client := newTestClient(t, r, WithTokens(expiringSession(t)))

		tok, err := client.TokenSource(context.Background()).Token()
		require.NoError(t, err)
		assert.Equal(t, fresh.AccessToken, tok.AccessToken)
		assert.Equal(t, fresh.AccessToken, client.TokenManager().AccessToken())
	})

	t.Run("authenticates another HTTP client", func(t *testing.T) {
		pair := freshPair(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer "+pair.AccessToken, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client, err := NewClient(WithTokens(pair))
		require.NoError(t, err)

		httpClient := oauth2.NewClient(context.Background(), client.TokenSource(context.Background()))
		resp, err := httpClient.Get(server.URL)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestTokenPair_OAuth2TokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	pair := TokenPair{AccessToken: mintToken(t, exp, nil)}

	tok := pair.OAuth2Token()
	assert.Equal(t, DefaultTokenType, tok.TokenType)
	assert.True(t, tok.Expiry.Equal(exp.Add(-tokenExpiryBuffer)))
}
