package prana

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiryBuffer treats a token as expired this long before its exp claim.
const tokenExpiryBuffer = 60 * time.Second

// Claim names carried by platform access tokens.
const (
	claimUserID     = "userId"
	claimCustomerID = "customerId"
)

// DefaultTokenType is used when the platform does not name the token type.
const DefaultTokenType = "Bearer"

// TokenPair is the access/refresh credential pair issued on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType,omitempty"`
}

// tokenPairFromPayload maps a login or refresh response. The access token is
// read from "token", falling back to "accessToken".
func tokenPairFromPayload(payload any) (TokenPair, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return TokenPair{}, false
	}
	access, ok := stringField(obj, "token")
	if !ok {
		access = stringValue(obj, "accessToken")
	}
	tokenType, ok := stringField(obj, "tokenType")
	if !ok {
		tokenType = DefaultTokenType
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: stringValue(obj, "refreshToken"),
		TokenType:    tokenType,
	}, true
}

// segmentParser is only used for its base64url segment decoding; signatures
// are never verified locally. The server re-validates the token on every call,
// so decoded claims may only be used for routing (picking a customer id), never
// for authorization decisions.
var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// decodeClaims returns the payload claims of a three-segment token, or nil if
// the token is malformed in any way.
func decodeClaims(token string) jwt.MapClaims {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil
	}
	data, err := segmentParser.DecodeSegment(parts[1])
	if err != nil {
		return nil
	}
	var claims jwt.MapClaims
	if err := json.Unmarshal(data, &claims); err != nil {
		return nil
	}
	return claims
}

// tokenExpiry returns the exp claim of token.
func tokenExpiry(token string) (time.Time, bool) {
	claims := decodeClaims(token)
	if claims == nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// isTokenExpired reports whether token is expired at now, honouring the
// safety buffer. Undecodable tokens and tokens without exp count as expired.
func isTokenExpired(token string, now time.Time) bool {
	exp, ok := tokenExpiry(token)
	if !ok {
		return true
	}
	return !now.Before(exp.Add(-tokenExpiryBuffer))
}

// stringClaim reads a string claim from token.
func stringClaim(token, name string) (string, bool) {
	claims := decodeClaims(token)
	if claims == nil {
		return "", false
	}
	v, ok := claims[name].(string)
	if !ok {
		return "", false
	}
	return v, true
}

// TokenManager holds the current token pair. The pair is replaced wholesale,
// never mutated in place. It performs no network I/O.
type TokenManager struct {
	mu   sync.RWMutex
	pair *TokenPair
	now  func() time.Time
}

// NewTokenManager creates a TokenManager, optionally seeded with a pair.
func NewTokenManager(pair *TokenPair) *TokenManager {
	m := &TokenManager{now: time.Now}
	if pair != nil {
		m.SetTokens(*pair)
	}
	return m
}

// SetTokens replaces the held pair.
func (m *TokenManager) SetTokens(pair TokenPair) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = &pair
}

// ClearTokens drops the held pair.
func (m *TokenManager) ClearTokens() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = nil
}

// Tokens returns a copy of the held pair.
func (m *TokenManager) Tokens() (TokenPair, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.pair == nil {
		return TokenPair{}, false
	}
	return *m.pair, true
}

// AccessToken returns the current access token, or "".
func (m *TokenManager) AccessToken() string {
	pair, _ := m.Tokens()
	return pair.AccessToken
}

// RefreshToken returns the current refresh token, or "".
func (m *TokenManager) RefreshToken() string {
	pair, _ := m.Tokens()
	return pair.RefreshToken
}

// IsAuthenticated is true iff a pair is held and its access token is non-empty.
// A refresh token alone does not count.
func (m *TokenManager) IsAuthenticated() bool {
	return m.AccessToken() != ""
}

// IsAccessTokenExpired reports whether the access token is missing, malformed,
// or within 60 seconds of its exp claim.
func (m *TokenManager) IsAccessTokenExpired() bool {
	token := m.AccessToken()
	if token == "" {
		return true
	}
	return isTokenExpired(token, m.now())
}

// IsRefreshTokenExpired reports whether the refresh token is missing,
// malformed, or within 60 seconds of its exp claim.
func (m *TokenManager) IsRefreshTokenExpired() bool {
	token := m.RefreshToken()
	if token == "" {
		return true
	}
	return isTokenExpired(token, m.now())
}

// AccessTokenExpiry returns the exp claim of the access token.
func (m *TokenManager) AccessTokenExpiry() (time.Time, bool) {
	token := m.AccessToken()
	if token == "" {
		return time.Time{}, false
	}
	return tokenExpiry(token)
}

// UserID returns the userId claim of the access token.
func (m *TokenManager) UserID() (string, bool) {
	token := m.AccessToken()
	if token == "" {
		return "", false
	}
	return stringClaim(token, claimUserID)
}

// CustomerID returns the customerId claim of the access token.
func (m *TokenManager) CustomerID() (string, bool) {
	token := m.AccessToken()
	if token == "" {
		return "", false
	}
	return stringClaim(token, claimCustomerID)
}

// AuthorizationHeader returns an empty header set when unauthenticated, and
// otherwise a single Authorization header of "<type> <access token>".
func (m *TokenManager) AuthorizationHeader() http.Header {
	header := http.Header{}
	pair, ok := m.Tokens()
	if !ok || pair.AccessToken == "" {
		return header
	}
	tokenType := pair.TokenType
	if tokenType == "" {
		tokenType = DefaultTokenType
	}
	header.Set("Authorization", tokenType+" "+pair.AccessToken)
	return header
}
