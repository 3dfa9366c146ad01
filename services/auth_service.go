package services

import (
	"context"
	"net/http"

	"storefront-bff/clients"
	apperrors "storefront-bff/errors"
	"storefront-bff/logger"
	"storefront-bff/models"

	"go.uber.org/zap"
)

// AuthService mirrors the upstream session identity. Transitions between
// authenticated and unauthenticated happen only through explicit login and
// logout; an expired upstream session simply surfaces as a failed request.
type AuthService struct {
	api      *clients.APIClient
	sessions SessionStore
}

func NewAuthService(api *clients.APIClient, sessions SessionStore) *AuthService {
	return &AuthService{api: api, sessions: sessions}
}

type sessionCheckResponse struct {
	IsLogin bool         `json:"isLogin"`
	User    *models.User `json:"user"`
}

type loginResponse struct {
	User *models.User `json:"user"`
}

// CheckSession asks the upstream whether the session's cookies still map to
// a logged-in identity and updates the mirror accordingly. Any failure
// leaves the session unauthenticated rather than in an unknown state.
func (s *AuthService) CheckSession(ctx context.Context, session *models.Session) error {
	var out sessionCheckResponse
	setCookies, err := s.api.DoJSON(ctx, http.MethodGet, "/auth/check", nil, session.Cookies, nil, &out)
	session.Cookies = clients.MergeCookies(session.Cookies, setCookies)

	if err != nil {
		session.User = nil
		s.persist(ctx, session)
		return err
	}

	if out.IsLogin {
		session.User = out.User
	} else {
		session.User = nil
	}
	s.persist(ctx, session)
	return nil
}

// Login submits credentials upstream. On success the session carries the
// returned identity and the upstream session cookie; on failure it stays
// unauthenticated.
func (s *AuthService) Login(ctx context.Context, session *models.Session, userID, password string) (*models.User, error) {
	if userID == "" || password == "" {
		return nil, apperrors.Validation("userId and password are required", nil)
	}

	body := map[string]string{"userId": userID, "password": password}
	var out loginResponse
	setCookies, err := s.api.DoJSON(ctx, http.MethodPost, "/auth/login", nil, session.Cookies, body, &out)
	if err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, apperrors.Server("unexpected login payload", nil)
	}

	session.Cookies = clients.MergeCookies(session.Cookies, setCookies)
	session.User = out.User
	s.persist(ctx, session)
	return out.User, nil
}

// Logout requests upstream session termination. The local identity and the
// upstream cookies are cleared unconditionally; a transport failure is still
// reported to the caller after the local clear.
func (s *AuthService) Logout(ctx context.Context, session *models.Session) error {
	_, err := s.api.DoJSON(ctx, http.MethodPost, "/auth/logout", nil, session.Cookies, nil, nil)

	session.User = nil
	session.Cookies = nil
	s.persist(ctx, session)

	if apperrors.IsKind(err, apperrors.KindNetwork) {
		return err
	}
	// an upstream error status still means the local session is gone
	return nil
}

func (s *AuthService) persist(ctx context.Context, session *models.Session) {
	if err := s.sessions.Save(ctx, session); err != nil {
		logger.Log.Warn("failed to persist session", zap.String("session_id", session.ID), zap.Error(err))
	}
}
