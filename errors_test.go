package prana

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with status",
			err:  &APIError{Kind: KindNotFound, StatusCode: 404, Message: "Resource not found"},
			want: "prana: [404] Resource not found",
		},
		{
			name: "without status",
			err:  &APIError{Kind: KindConfiguration, Message: "Could not determine customer ID"},
			want: "prana: Could not determine customer ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		kind    ErrorKind
		matches []error
		misses  []error
	}{
		{KindAuthentication, []error{ErrAPI, ErrAuthentication}, []error{ErrTokenExpired, ErrNotFound}},
		{KindInvalidCredentials, []error{ErrAPI, ErrAuthentication, ErrInvalidCredentials}, []error{ErrUserNotActive}},
		{KindUserNotActive, []error{ErrAPI, ErrAuthentication, ErrUserNotActive}, []error{ErrInvalidCredentials}},
		{KindTokenExpired, []error{ErrAPI, ErrAuthentication, ErrTokenExpired}, []error{ErrRPC}},
		{KindNotFound, []error{ErrAPI, ErrNotFound}, []error{ErrAuthentication}},
		{KindRateLimited, []error{ErrAPI, ErrRateLimited}, []error{ErrNotFound}},
		{KindRPC, []error{ErrAPI, ErrRPC}, []error{ErrAuthentication}},
		{KindNetwork, []error{ErrAPI, ErrNetwork}, []error{ErrRPC}},
		{KindConfiguration, []error{ErrAPI, ErrConfiguration}, []error{ErrNetwork}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", newAPIError(tt.kind, 0, "x"))
			for _, target := range tt.matches {
				if !errors.Is(err, target) {
					t.Errorf("errors.Is(%v, %v) = false, want true", tt.kind, target)
				}
			}
			for _, target := range tt.misses {
				if errors.Is(err, target) {
					t.Errorf("errors.Is(%v, %v) = true, want false", tt.kind, target)
				}
			}
		})
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsUnauthorized(newAPIError(KindTokenExpired, 401, "")) {
		t.Error("token expired should be unauthorized")
	}
	if !IsInvalidCredentials(newAPIError(KindInvalidCredentials, 401, "")) {
		t.Error("IsInvalidCredentials failed")
	}
	if !IsUserNotActive(newAPIError(KindUserNotActive, 401, "")) {
		t.Error("IsUserNotActive failed")
	}
	if !IsNotFound(newAPIError(KindNotFound, 404, "")) {
		t.Error("IsNotFound failed")
	}
	if !IsRateLimited(newAPIError(KindRateLimited, 429, "")) {
		t.Error("IsRateLimited failed")
	}
	if !IsRPCError(newAPIError(KindRPC, 500, "")) {
		t.Error("IsRPCError failed")
	}
	if !IsNetworkError(newAPIError(KindNetwork, 0, "")) {
		t.Error("IsNetworkError failed")
	}
	if IsNotFound(errors.New("plain")) || IsUnauthorized(nil) {
		t.Error("plain errors should not match")
	}
}

func TestIsTimeout(t *testing.T) {
	timeout := &url.Error{Op: "Get", URL: "http://x", Err: &net.DNSError{IsTimeout: true}}
	err := &APIError{Kind: KindNetwork, Message: "Network error", Err: timeout}
	if !IsTimeout(err) {
		t.Error("IsTimeout should see through APIError")
	}
	if IsTimeout(newAPIError(KindAPI, 500, "")) {
		t.Error("IsTimeout should be false for API errors")
	}
	if !errors.Is(&APIError{Kind: KindNetwork, Err: context.Canceled}, context.Canceled) {
		t.Error("network error should unwrap to its cause")
	}
}

func TestStatusCode(t *testing.T) {
	if got := StatusCode(fmt.Errorf("x: %w", newAPIError(KindNotFound, 404, ""))); got != 404 {
		t.Errorf("StatusCode() = %d, want 404", got)
	}
	if got := StatusCode(errors.New("plain")); got != 0 {
		t.Errorf("StatusCode() = %d, want 0", got)
	}
}

func TestErrorConstants(t *testing.T) {
	sentinels := []error{
		ErrAPI, ErrAuthentication, ErrInvalidCredentials, ErrUserNotActive, ErrTokenExpired,
		ErrNotFound, ErrRateLimited, ErrRPC, ErrNetwork, ErrConfiguration,
		ErrEmptyCredentials, ErrEmptyDeviceID, ErrEmptyGroupID, ErrEmptyMethod, ErrInvalidSpeed,
	}
	seen := make(map[string]bool)
	for _, err := range sentinels {
		if seen[err.Error()] {
			t.Errorf("duplicate error message: %q", err.Error())
		}
		seen[err.Error()] = true
	}
}
