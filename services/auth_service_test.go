package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront-bff/clients"
	apperrors "storefront-bff/errors"
	"storefront-bff/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authUpstream accepts user "demo"/"secret" and tracks a single upstream
// session cookie "sid=valid".
func authUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authed := strings.Contains(r.Header.Get("Cookie"), "sid=valid")

		switch r.URL.Path {
		case "/api/auth/check":
			if authed {
				json.NewEncoder(w).Encode(map[string]interface{}{
					"isLogin": true,
					"user":    models.User{ID: "demo", Name: "Demo User"},
				})
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"isLogin": false})

		case "/api/auth/login":
			var req struct {
				UserID   string `json:"userId"`
				Password string `json:"password"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			if req.UserID != "demo" || req.Password != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "valid", Path: "/"})
			json.NewEncoder(w).Encode(map[string]interface{}{
				"user": models.User{ID: "demo", Name: "Demo User"},
			})

		case "/api/auth/logout":
			w.WriteHeader(http.StatusOK)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newAuthFixture(t *testing.T) (*AuthService, *models.Session) {
	t.Helper()
	srv := authUpstream(t)
	svc := NewAuthService(clients.NewAPIClient(srv.URL, srv.URL, time.Second), newMemorySessionStore())
	return svc, &models.Session{ID: "s1"}
}

func TestCheckSession(t *testing.T) {
	t.Run("no upstream cookie resolves unauthenticated", func(t *testing.T) {
		svc, session := newAuthFixture(t)

		require.NoError(t, svc.CheckSession(context.Background(), session))
		assert.False(t, session.Authenticated())
	})

	t.Run("valid upstream cookie resolves identity", func(t *testing.T) {
		svc, session := newAuthFixture(t)
		session.Cookies = []string{"sid=valid"}

		require.NoError(t, svc.CheckSession(context.Background(), session))
		require.True(t, session.Authenticated())
		assert.Equal(t, "demo", session.User.ID)
	})

	t.Run("unreachable upstream resolves unauthenticated", func(t *testing.T) {
		svc := NewAuthService(clients.NewAPIClient("http://127.0.0.1:1", "", 100*time.Millisecond), newMemorySessionStore())
		session := &models.Session{ID: "s1", User: &models.User{ID: "stale"}}

		err := svc.CheckSession(context.Background(), session)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNetwork))
		assert.False(t, session.Authenticated(), "a failed check never keeps a stale identity")
	})
}

func TestLogin(t *testing.T) {
	t.Run("success stores identity and upstream cookie", func(t *testing.T) {
		svc, session := newAuthFixture(t)

		user, err := svc.Login(context.Background(), session, "demo", "secret")
		require.NoError(t, err)
		assert.Equal(t, "demo", user.ID)
		require.True(t, session.Authenticated())
		assert.Contains(t, session.Cookies, "sid=valid")
	})

	t.Run("wrong credentials leave session unauthenticated", func(t *testing.T) {
		svc, session := newAuthFixture(t)

		_, err := svc.Login(context.Background(), session, "demo", "wrong")
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthRequired))
		assert.False(t, session.Authenticated())
		assert.Empty(t, session.Cookies)
	})

	t.Run("empty credentials are rejected client-side", func(t *testing.T) {
		svc, session := newAuthFixture(t)

		_, err := svc.Login(context.Background(), session, "", "")
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestLogout(t *testing.T) {
	t.Run("clears identity and cookies", func(t *testing.T) {
		svc, session := newAuthFixture(t)
		_, err := svc.Login(context.Background(), session, "demo", "secret")
		require.NoError(t, err)

		require.NoError(t, svc.Logout(context.Background(), session))
		assert.False(t, session.Authenticated())
		assert.Empty(t, session.Cookies)
	})

	t.Run("clears local state even when the request cannot be sent", func(t *testing.T) {
		svc := NewAuthService(clients.NewAPIClient("http://127.0.0.1:1", "", 100*time.Millisecond), newMemorySessionStore())
		session := &models.Session{ID: "s1", User: &models.User{ID: "demo"}, Cookies: []string{"sid=valid"}}

		err := svc.Logout(context.Background(), session)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNetwork))
		assert.False(t, session.Authenticated(), "local clear is unconditional")
		assert.Empty(t, session.Cookies)
	})
}
