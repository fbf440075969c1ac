package prana

import (
	"context"

	"golang.org/x/oauth2"
)

// OAuth2Token converts the pair to an oauth2.Token. Expiry is taken from the
// access token's exp claim and is zero when the claim is missing.
func (p TokenPair) OAuth2Token() *oauth2.Token {
	tokenType := p.TokenType
	if tokenType == "" {
		tokenType = DefaultTokenType
	}
	tok := &oauth2.Token{
		AccessToken:  p.AccessToken,
		TokenType:    tokenType,
		RefreshToken: p.RefreshToken,
	}
	if exp, ok := tokenExpiry(p.AccessToken); ok {
		tok.Expiry = exp.Add(-tokenExpiryBuffer)
	}
	return tok
}

// tokenSource serves the client's tokens, refreshing them when expired.
type tokenSource struct {
	ctx    context.Context
	client *Client
}

// TokenSource returns an oauth2.TokenSource backed by the client's session.
// It lets the session authenticate other HTTP clients, e.g. via
// oauth2.NewClient. Expired access tokens are refreshed with ctx.
func (c *Client) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, client: c}
}

// Token implements oauth2.TokenSource.
func (s *tokenSource) Token() (*oauth2.Token, error) {
	tokens := s.client.tokens
	if !tokens.IsAuthenticated() {
		return nil, newAPIError(KindAuthentication, 0, "not logged in")
	}
	if tokens.IsAccessTokenExpired() {
		pair, err := s.client.RefreshToken(s.ctx)
		if err != nil {
			return nil, err
		}
		return pair.OAuth2Token(), nil
	}
	pair, _ := tokens.Tokens()
	return pair.OAuth2Token(), nil
}
