package client

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// Login authenticates the admin and persists the returned session to the
// session file. Bad credentials surface as ErrUnauthorized.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	session := Session{}

	req := loginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &session, false); err != nil {
		return nil, err
	}

	if err := saveSession(c.sessionPath, &session); err != nil {
		return nil, err
	}

	c.session = &session

	return &session, nil
}

// RefreshSession exchanges the stored refresh token for a new token pair and
// persists it.
func (c *Client) RefreshSession(ctx context.Context) (*Session, error) {
	if c.session == nil {
		return nil, ErrNoSession
	}

	res := refreshTokenResponse{}

	req := refreshTokenRequest{RefreshToken: c.session.RefreshToken}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh-token", nil, req, &res, false); err != nil {
		return nil, err
	}

	session := Session{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    res.ExpiresIn,
		Admin:        c.session.Admin,
	}

	if err := saveSession(c.sessionPath, &session); err != nil {
		return nil, err
	}

	c.session = &session

	return &session, nil
}

// Logout drops the in-memory session and deletes the session file. Tokens
// are stateless server-side, so no remote call is made.
func (c *Client) Logout() error {
	c.session = nil

	return clearSession(c.sessionPath)
}
