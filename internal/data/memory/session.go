package memory

import (
	"context"
	"fmt"
	"time"

	"ticket-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionStore struct {
	s   *store
	log *zap.Logger
}

func (r *sessionStore) Create(ctx context.Context, session *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	clone := *session
	r.s.sessions[session.ID] = &clone
	return nil
}

func (r *sessionStore) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	now := time.Now()
	for _, session := range r.s.sessions {
		if session.Token == tokenUUID && session.RevokedAt == nil && session.ExpiresAt.After(now) {
			clone := *session
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *sessionStore) Revoke(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return fmt.Errorf("session not found")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, session := range r.s.sessions {
		if session.Token == tokenUUID && session.RevokedAt == nil {
			now := time.Now()
			session.RevokedAt = &now
			return nil
		}
	}
	return fmt.Errorf("session not found")
}

func (r *sessionStore) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	for _, session := range r.s.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
		}
	}
	return nil
}

func (r *sessionStore) CleanExpiredSessions(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	var cleaned int64
	for id, session := range r.s.sessions {
		if session.ExpiresAt.Before(now) {
			delete(r.s.sessions, id)
			cleaned++
		}
	}

	if cleaned > 0 {
		r.log.Info("Expired sessions cleaned", zap.Int64("count", cleaned))
	}
	return nil
}
