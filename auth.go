package prana

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates with email and password and stores the returned token pair.
//
// Invalid credentials and inactive accounts are reported as distinct kinds:
//
//	if prana.IsInvalidCredentials(err) { ... }
//	if prana.IsUserNotActive(err) { ... }
func (c *Client) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	payload, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   endpointLogin,
		route:  endpointLogin,
		body:   loginRequest{Username: username, Password: password},
		noAuth: true,
	})
	if err != nil {
		return nil, err
	}

	pair, ok := tokenPairFromPayload(payload)
	if !ok {
		return nil, newAPIError(KindAPI, http.StatusOK, "failed to parse login response")
	}
	c.tokens.SetTokens(pair)
	return &pair, nil
}

// RefreshToken exchanges the held refresh token for a new pair and stores it.
// Concurrent callers share a single request.
//
// It fails with a token-expired error, without contacting the server, when no
// refresh token is held. A refresh token rejected by the server is also
// reported as token-expired: the caller must log in again.
func (c *Client) RefreshToken(ctx context.Context) (*TokenPair, error) {
	v, err, _ := c.refreshes.Do("refresh", func() (any, error) {
		return c.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	pair := v.(TokenPair)
	return &pair, nil
}

func (c *Client) refresh(ctx context.Context) (TokenPair, error) {
	refreshToken := c.tokens.RefreshToken()
	if refreshToken == "" {
		return TokenPair{}, newAPIError(KindTokenExpired, 0, "No refresh token available")
	}

	payload, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   endpointToken,
		route:  endpointToken,
		body:   map[string]string{"refreshToken": refreshToken},
		noAuth: true,
	})
	if err != nil {
		err = refreshError(err)
		tokenRefreshes.WithLabelValues(resultLabel(err)).Inc()
		c.logTokenRefresh(ctx, err)
		return TokenPair{}, err
	}

	pair, ok := tokenPairFromPayload(payload)
	if !ok {
		err := newAPIError(KindAPI, http.StatusOK, "failed to parse token refresh response")
		tokenRefreshes.WithLabelValues(resultLabel(err)).Inc()
		c.logTokenRefresh(ctx, err)
		return TokenPair{}, err
	}

	c.tokens.SetTokens(pair)
	tokenRefreshes.WithLabelValues(resultLabel(nil)).Inc()
	c.logTokenRefresh(ctx, nil)
	return pair, nil
}

// refreshError reports a plain authentication failure during refresh as
// token-expired.
func refreshError(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != KindAuthentication {
		return err
	}
	return &APIError{
		Kind:       KindTokenExpired,
		StatusCode: apiErr.StatusCode,
		Message:    "refresh token rejected: " + apiErr.Message,
		Body:       apiErr.Body,
		Header:     apiErr.Header,
		Err:        err,
	}
}

// Logout ends the session on the server. Local tokens are cleared even when the
// request fails.
func (c *Client) Logout(ctx context.Context) error {
	defer c.tokens.ClearTokens()

	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   endpointLogout,
		route:  endpointLogout,
	})
	return err
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword changes the password of the authenticated user. The platform
// may return a new token pair; if so it replaces the held one.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrEmptyCredentials
	}

	payload, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   endpointChangePassword,
		route:  endpointChangePassword,
		body:   changePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword},
	})
	if err != nil {
		return err
	}

	if pair, ok := tokenPairFromPayload(payload); ok && pair.AccessToken != "" {
		c.tokens.SetTokens(pair)
	}
	return nil
}

// GetUser returns the authenticated user.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	payload, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   endpointUser,
		route:  endpointUser,
	})
	if err != nil {
		return nil, err
	}

	obj, err := expectObject(payload, "user")
	if err != nil {
		return nil, err
	}
	user := MapUser(obj)
	return &user, nil
}

// SignupRequest registers a new account.
type SignupRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	RecaptchaResponse string `json:"recaptchaResponse,omitempty"`
}

// Signup registers a new account. The account must be activated with the code
// sent by email before it can log in. The response is returned verbatim.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (any, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrEmptyCredentials
	}
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   endpointSignup,
		route:  endpointSignup,
		body:   req,
		noAuth: true,
	})
}

// ActivateByEmailCode activates an account with the code from the signup email.
// If the platform answers with a token pair it is stored, logging the user in.
func (c *Client) ActivateByEmailCode(ctx context.Context, emailCode string) (any, error) {
	payload, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   endpointActivate,
		route:  endpointActivate,
		body:   map[string]string{"emailCode": emailCode},
		noAuth: true,
	})
	if err != nil {
		return nil, err
	}

	if pair, ok := tokenPairFromPayload(payload); ok && pair.AccessToken != "" {
		c.tokens.SetTokens(pair)
	}
	return payload, nil
}

// ResendActivationEmail sends the activation email again.
func (c *Client) ResendActivationEmail(ctx context.Context, email string) error {
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   endpointResendActivation,
		route:  endpointResendActivation,
		query:  url.Values{"email": {email}},
		noAuth: true,
	})
	return err
}

// RequestPasswordReset asks the platform to email a password reset code.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   endpointResetRequest,
		route:  endpointResetRequest,
		body:   map[string]string{"email": email},
		noAuth: true,
	})
	return err
}

type resetPasswordRequest struct {
	ResetToken string `json:"resetToken"`
	Password   string `json:"password"`
}

// ResetPassword sets a new password using the token from the reset email.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if newPassword == "" {
		return ErrEmptyCredentials
	}
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   endpointResetPassword,
		route:  endpointResetPassword,
		body:   resetPasswordRequest{ResetToken: resetToken, Password: newPassword},
		noAuth: true,
	})
	return err
}

// OAuth2Clients lists the OAuth2 login providers configured on the platform.
// The response is returned verbatim.
func (c *Client) OAuth2Clients(ctx context.Context) (any, error) {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   endpointOAuth2Clients,
		route:  endpointOAuth2Clients,
		noAuth: true,
	})
}
