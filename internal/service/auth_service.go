package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/denizbarcak/planvia-partner-ui/internal/dto"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
	"github.com/denizbarcak/planvia-partner-ui/internal/upstream"
)

// AuthService exchanges partner credentials with the upstream auth API
// and owns the server-side session lifecycle.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*session.Session, error)
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Logout(ctx context.Context, sess *session.Session) error
}

type authService struct {
	api      upstream.AuthAPI
	sessions session.Store
	logger   *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(api upstream.AuthAPI, sessions session.Store, logger *zap.Logger) AuthService {
	return &authService{api: api, sessions: sessions, logger: logger}
}

// Login trades credentials for an upstream access token and opens a
// session holding it.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*session.Session, error) {
	tokens, err := s.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	sess := session.New(tokens.AccessToken, time.Now())
	if err := s.sessions.Create(ctx, sess); err != nil {
		s.logger.Error("creating session failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("partner logged in", zap.String("session_id", sess.ID))
	return sess, nil
}

// Register forwards a new partner registration upstream. No session is
// opened; the shell sends the partner to the login page afterwards.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	return s.api.Register(ctx, &upstream.RegisterRequest{
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Password:     req.Password,
		Phone:        req.Phone,
	})
}

// Logout destroys the session. The upstream token is simply dropped;
// the backend offers no revocation endpoint.
func (s *authService) Logout(ctx context.Context, sess *session.Session) error {
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		s.logger.Error("deleting session failed", zap.String("session_id", sess.ID), zap.Error(err))
		return err
	}
	s.logger.Info("partner logged out", zap.String("session_id", sess.ID))
	return nil
}
