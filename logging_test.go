package prana

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := debugLogger(&buf)

	client, err := NewClient(WithLogger(logger))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if client.logger != logger {
		t.Error("logger not set")
	}
}

func TestLoggingTransport(t *testing.T) {
	t.Run("logs successful request", func(t *testing.T) {
		var buf bytes.Buffer
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := &http.Client{Transport: &LoggingTransport{Logger: debugLogger(&buf)}}
		req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/auth/user?x=1", nil)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()

		output := buf.String()
		if !strings.Contains(output, "api_request") {
			t.Error("expected api_request log")
		}
		if !strings.Contains(output, "api_response") {
			t.Error("expected api_response log")
		}
		if !strings.Contains(output, "x=1") {
			t.Error("expected query string in log")
		}
	})

	t.Run("logs server errors at error level", func(t *testing.T) {
		var buf bytes.Buffer
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := &http.Client{Transport: &LoggingTransport{Base: http.DefaultTransport, Logger: debugLogger(&buf)}}
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()

		output := buf.String()
		if !strings.Contains(output, "level=ERROR") || !strings.Contains(output, "status=500") {
			t.Errorf("expected error-level response log, got %q", output)
		}
	})

	t.Run("logs transport failure", func(t *testing.T) {
		var buf bytes.Buffer
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		client := &http.Client{Transport: &LoggingTransport{Logger: debugLogger(&buf)}}
		if _, err := client.Get(server.URL); err == nil {
			t.Fatal("expected error")
		}

		if !strings.Contains(buf.String(), "api_error") {
			t.Error("expected api_error log")
		}
	})

	t.Run("nil logger", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := &http.Client{Transport: &LoggingTransport{}}
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
	})
}

func TestNewLoggingClient(t *testing.T) {
	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Post("/api/rpc/oneway/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/api/rpc/twoway/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	client, err := NewLoggingClient(debugLogger(&buf), WithBaseURL(server.URL), WithTokens(freshPair(t)))
	if err != nil {
		t.Fatalf("NewLoggingClient failed: %v", err)
	}
	if _, ok := client.httpClient.Transport.(*LoggingTransport); !ok {
		t.Fatal("expected LoggingTransport")
	}

	if err := client.TogglePower(context.Background(), testDeviceID); err != nil {
		t.Fatalf("TogglePower failed: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "rpc_command") || !strings.Contains(output, "method=buttonClicked") {
		t.Errorf("expected rpc_command log, got %q", output)
	}
	if !strings.Contains(output, "device_id="+testDeviceID) {
		t.Error("expected device_id in log")
	}

	buf.Reset()
	if _, err := client.SendRPCTwoway(context.Background(), testDeviceID, "getConfig", nil, 0); err == nil {
		t.Fatal("expected error")
	}
	output = buf.String()
	if !strings.Contains(output, "level=ERROR msg=rpc_command") {
		t.Errorf("expected failed rpc_command at error level, got %q", output)
	}
}

func TestClient_logTokenRefresh(t *testing.T) {
	var buf bytes.Buffer
	fresh := freshPair(t)
	r := chi.NewRouter()
	r.Post("/api/auth/token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"token": fresh.AccessToken, "refreshToken": fresh.RefreshToken})
	})
	client := newTestClient(t, r, WithLogger(debugLogger(&buf)), WithTokens(expiringSession(t)))

	if _, err := client.RefreshToken(context.Background()); err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if !strings.Contains(buf.String(), "token_refresh") {
		t.Error("expected token_refresh log")
	}

	// A client without a logger must not panic.
	client.logger = nil
	client.logTokenRefresh(context.Background(), nil)
	client.logRPC(context.Background(), "d", rpcModeOneway, "m", nil)
}
