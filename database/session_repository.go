package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront-bff/models"

	"github.com/redis/go-redis/v9"
)

// SessionRepository persists session mirrors (identity + cart) as JSON
// values with a sliding TTL.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *SessionRepository) getKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Get loads a session mirror; a missing key yields (nil, nil).
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.client.Get(ctx, r.getKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Save writes the session mirror and refreshes its TTL.
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.getKey(session.ID), data, r.ttl).Err()
}

// Delete removes the session mirror.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.getKey(sessionID)).Err()
}
