package prana

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-signing-secret"
	testCustomerID = "a1b2c3d4-0000-11ee-8080-808080808080"
	testUserID     = "f0e1d2c3-0000-11ee-8080-808080808080"
	testDeviceID   = "5f6e7d8c-0000-11ee-8080-808080808080"
)

// mintToken signs a token expiring at exp with extra claims merged in.
func mintToken(t *testing.T, exp time.Time, extra jwt.MapClaims) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "user@example.com",
		"exp": exp.Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

// freshPair returns a valid pair whose access token carries user and customer claims.
func freshPair(t *testing.T) TokenPair {
	t.Helper()
	return TokenPair{
		AccessToken: mintToken(t, time.Now().Add(time.Hour), jwt.MapClaims{
			claimUserID:     testUserID,
			claimCustomerID: testCustomerID,
		}),
		RefreshToken: mintToken(t, time.Now().Add(7*24*time.Hour), nil),
		TokenType:    DefaultTokenType,
	}
}

// newTestClient starts a fake platform serving r and returns a client for it.
func newTestClient(t *testing.T, r http.Handler, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	client, err := NewClient(append([]Option{WithBaseURL(server.URL)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// readBody returns the raw request body.
func readBody(t *testing.T, r *http.Request) []byte {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	return data
}

// devicePage builds a paginated device listing.
func devicePage(hasNext bool, ids ...string) map[string]any {
	data := make([]any, 0, len(ids))
	for _, id := range ids {
		data = append(data, map[string]any{
			"id":    map[string]any{"id": id, "entityType": EntityTypeDevice},
			"name":  "prana-" + id,
			"type":  "Prana",
			"label": "Bedroom " + id,
		})
	}
	return map[string]any{
		"data":          data,
		"totalPages":    2,
		"totalElements": 3,
		"hasNext":       hasNext,
	}
}

// stateRouter serves telemetry and attributes for testDeviceID.
func stateRouter(telemetry, attributes any) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/plugins/telemetry/DEVICE/{id}/values/timeseries", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, telemetry)
	})
	r.Get("/api/plugins/telemetry/DEVICE/{id}/values/attributes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, attributes)
	})
	return r
}
