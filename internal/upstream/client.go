// Package upstream is the thin client for the remote reservation API.
// It is the only place the partner UI performs persistence: every
// reservation create/list/update/delete is an HTTP call made here, with
// the bearer credential taken from the session passed in by the caller.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/denizbarcak/planvia-partner-ui/config"
	"github.com/denizbarcak/planvia-partner-ui/internal/model"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
)

// maxErrorBody bounds how much of an upstream error response is read
// for the error message.
const maxErrorBody = 8 * 1024

// ReservationAPI is the reservation surface of the upstream API.
// Services depend on this interface so tests can substitute a mock.
type ReservationAPI interface {
	Create(ctx context.Context, sess *session.Session, r *model.Reservation) (*model.Reservation, error)
	List(ctx context.Context, sess *session.Session, start, end time.Time) ([]model.Reservation, error)
	Update(ctx context.Context, sess *session.Session, id string, r *model.Reservation) (*model.Reservation, error)
	Delete(ctx context.Context, sess *session.Session, id string) error
}

// AuthAPI is the authentication surface of the upstream API.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
	Register(ctx context.Context, req *RegisterRequest) error
}

// Client talks to the remote reservation API over HTTP.
type Client struct {
	base   string
	http   *http.Client
	logger *zap.Logger
}

// New builds a client from the upstream configuration.
func New(cfg *config.UpstreamConfig, logger *zap.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// do performs one upstream request and decodes the response into out
// (when out is non-nil). The session's bearer token is attached when
// present; a missing credential is not an error at this layer, the
// server decides what an anonymous call may do.
func (c *Client) do(ctx context.Context, sess *session.Session, op, method, path string, query url.Values, body, out interface{}) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &OperationError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &OperationError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if sess != nil && sess.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &OperationError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ValidationError{Op: op, Status: resp.StatusCode, Detail: strings.TrimSpace(string(detail))}
	case resp.StatusCode >= 300:
		c.logger.Warn("upstream call failed",
			zap.String("op", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return &OperationError{Op: op, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &OperationError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
