package upstream

import (
	"context"
	"net/http"
)

// ── auth wire types ──

// LoginRequest is the credential payload for the upstream auth API.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is what a successful login returns.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// RegisterRequest is a new partner registration. The password travels
// verbatim; hashing is the backend's job.
type RegisterRequest struct {
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Phone        string `json:"phone,omitempty"`
}

// Login exchanges partner credentials for an access token. A 401 here
// means wrong credentials, which the auth handler reports as such
// rather than as an expired session.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	var tokens TokenResponse
	err := c.do(ctx, nil, "login", http.MethodPost, "/auth/login", nil, &loginRequest{Email: email, Password: password}, &tokens)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Register creates a new partner account.
func (c *Client) Register(ctx context.Context, req *RegisterRequest) error {
	return c.do(ctx, nil, "register", http.MethodPost, "/auth/register", nil, req, nil)
}
