package prana

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ResponseClassifier turns a raw HTTP response into either a success payload or
// a typed error. Implementations must not perform I/O and must handle every
// status code.
type ResponseClassifier interface {
	Classify(statusCode int, header http.Header, body []byte) (any, error)
}

// ClassifierFunc adapts a function to the ResponseClassifier interface.
type ClassifierFunc func(statusCode int, header http.Header, body []byte) (any, error)

// Classify calls f.
func (f ClassifierFunc) Classify(statusCode int, header http.Header, body []byte) (any, error) {
	return f(statusCode, header, body)
}

// DefaultClassifier implements the platform's response conventions. Success is
// 200 only; 401 bodies are sub-classified by matching the English message text
// the platform returns.
type DefaultClassifier struct{}

// Classify implements ResponseClassifier.
//
// A 200 with an empty body yields a nil payload. A 200 with a non-JSON body
// yields the body as a string.
func (DefaultClassifier) Classify(statusCode int, header http.Header, body []byte) (any, error) {
	if statusCode == http.StatusOK {
		if len(body) == 0 {
			return nil, nil
		}
		var payload any
		if err := json.Unmarshal(body, &payload); err != nil {
			return string(body), nil
		}
		return payload, nil
	}

	var apiErr *APIError
	switch statusCode {
	case http.StatusUnauthorized:
		message := errorMessage(body, "Authentication failed")
		apiErr = newAPIError(classifyAuthMessage(message), statusCode, message)
	case http.StatusNotFound:
		apiErr = newAPIError(KindNotFound, statusCode, "Resource not found")
	case http.StatusTooManyRequests:
		apiErr = newAPIError(KindRateLimited, statusCode, "Rate limit exceeded")
		apiErr.RetryAfter = parseRetryAfter(header.Get("Retry-After"))
	default:
		apiErr = newAPIError(KindAPI, statusCode, errorMessage(body, fmt.Sprintf("API error: %d", statusCode)))
	}
	apiErr.Body = body
	apiErr.Header = header
	return nil, apiErr
}

// classifyAuthMessage picks the authentication sub-kind for a 401 message. The
// first match is case-sensitive, the other two are not.
func classifyAuthMessage(message string) ErrorKind {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(message, "Invalid username or password"):
		return KindInvalidCredentials
	case strings.Contains(lower, "not active"):
		return KindUserNotActive
	case strings.Contains(lower, "expired"):
		return KindTokenExpired
	default:
		return KindAuthentication
	}
}

// errorMessage extracts the "message" field of a JSON error body, falling back
// to def when the body is not a JSON object or has no string message.
func errorMessage(body []byte, def string) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return def
	}
	var resp struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.Message == nil {
		return def
	}
	return *resp.Message
}
