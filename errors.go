package prana

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Sentinel errors returned by the Prana client.
// All errors are defined here for easy discovery and consistent organization.
var (
	// ErrAPI is the root kind; every *APIError matches it.
	ErrAPI = errors.New("prana: API error")

	// Authentication errors
	ErrAuthentication     = errors.New("prana: authentication failed")
	ErrInvalidCredentials = errors.New("prana: invalid username or password")
	ErrUserNotActive      = errors.New("prana: user account is not active")
	ErrTokenExpired       = errors.New("prana: token expired")

	// Resource errors
	ErrNotFound = errors.New("prana: resource not found")

	// Rate limiting
	ErrRateLimited = errors.New("prana: rate limit exceeded")

	// Device command errors
	ErrRPC = errors.New("prana: RPC command failed")

	// Transport errors (no HTTP response was obtained)
	ErrNetwork = errors.New("prana: network error")

	// Client configuration errors
	ErrConfiguration = errors.New("prana: configuration error")

	// Validation errors
	ErrEmptyCredentials = errors.New("prana: username and password cannot be empty")
	ErrEmptyDeviceID    = errors.New("prana: device ID cannot be empty")
	ErrEmptyGroupID     = errors.New("prana: entity group ID cannot be empty")
	ErrEmptyMethod      = errors.New("prana: RPC method cannot be empty")
	ErrInvalidSpeed     = errors.New("prana: fan speed must be between 0 and 5")
)

// ErrorKind classifies an *APIError.
type ErrorKind int

const (
	KindAPI ErrorKind = iota
	KindAuthentication
	KindInvalidCredentials
	KindUserNotActive
	KindTokenExpired
	KindNotFound
	KindRateLimited
	KindRPC
	KindNetwork
	KindConfiguration
)

var kindSentinels = map[ErrorKind]error{
	KindAPI:                ErrAPI,
	KindAuthentication:     ErrAuthentication,
	KindInvalidCredentials: ErrInvalidCredentials,
	KindUserNotActive:      ErrUserNotActive,
	KindTokenExpired:       ErrTokenExpired,
	KindNotFound:           ErrNotFound,
	KindRateLimited:        ErrRateLimited,
	KindRPC:                ErrRPC,
	KindNetwork:            ErrNetwork,
	KindConfiguration:      ErrConfiguration,
}

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindUserNotActive:
		return "user_not_active"
	case KindTokenExpired:
		return "token_expired"
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindRPC:
		return "rpc"
	case KindNetwork:
		return "network"
	case KindConfiguration:
		return "configuration"
	default:
		return "api"
	}
}

// isAuthentication reports whether k is the authentication kind or one of its sub-kinds.
func (k ErrorKind) isAuthentication() bool {
	switch k {
	case KindAuthentication, KindInvalidCredentials, KindUserNotActive, KindTokenExpired:
		return true
	}
	return false
}

// APIError represents a failed call against the Prana platform.
type APIError struct {
	Kind ErrorKind
	// StatusCode is zero when no HTTP response was obtained.
	StatusCode int
	Message    string
	// Body and Header hold the raw response for diagnostics.
	Body   []byte
	Header http.Header
	// RetryAfter is parsed from the Retry-After header of 429 responses.
	RetryAfter time.Duration
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("prana: [%d] %s", e.StatusCode, e.Message)
	}
	return "prana: " + e.Message
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is to match the sentinel of the error's kind. Authentication
// sub-kinds also match ErrAuthentication and every kind matches ErrAPI.
func (e *APIError) Is(target error) bool {
	if target == ErrAPI {
		return true
	}
	if target == ErrAuthentication && e.Kind.isAuthentication() {
		return true
	}
	return kindSentinels[e.Kind] == target
}

func newAPIError(kind ErrorKind, status int, message string) *APIError {
	return &APIError{Kind: kind, StatusCode: status, Message: message}
}

// IsUnauthorized returns true if the error is any authentication failure.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsInvalidCredentials returns true if the username or password was rejected.
func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsUserNotActive returns true if the account has not been activated.
func IsUserNotActive(err error) bool {
	return errors.Is(err, ErrUserNotActive)
}

// IsTokenExpired returns true if the session can no longer be refreshed and a
// fresh login is required.
func IsTokenExpired(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}

// IsNotFound returns true if the error indicates the resource was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsRPCError returns true if a device command was rejected or failed.
func IsRPCError(err error) bool {
	return errors.Is(err, ErrRPC)
}

// IsNetworkError returns true if no HTTP response was obtained.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsTimeout returns true if the error indicates a timeout.
func IsTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
