package services

import (
	"context"

	"storefront-bff/models"
)

// SessionStore persists session mirrors between requests. Implemented by
// database.SessionRepository; tests substitute an in-memory fake.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, sessionID string) error
}
