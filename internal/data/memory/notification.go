package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ticket-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type notificationStore struct {
	s   *store
	log *zap.Logger
}

func (r *notificationStore) Create(ctx context.Context, notification *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	clone := *notification
	r.s.notifications[notification.ID] = &clone
	return nil
}

func (r *notificationStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	notification, ok := r.s.notifications[id]
	if !ok {
		return nil, nil
	}
	clone := *notification
	return &clone, nil
}

func (r *notificationStore) FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var notifications []*entity.Notification
	for _, notification := range r.s.notifications {
		if notification.UserID != userID {
			continue
		}
		if unreadOnly && notification.ReadAt != nil {
			continue
		}
		clone := *notification
		notifications = append(notifications, &clone)
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return paginate(notifications, limit, offset), nil
}

func (r *notificationStore) CountByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, notification := range r.s.notifications {
		if notification.UserID != userID {
			continue
		}
		if unreadOnly && notification.ReadAt != nil {
			continue
		}
		count++
	}
	return count, nil
}

func (r *notificationStore) MarkRead(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	notification, ok := r.s.notifications[id]
	if !ok || notification.ReadAt != nil {
		return fmt.Errorf("notification %s not found or already read", id.String())
	}
	now := time.Now()
	notification.ReadAt = &now
	return nil
}

func (r *notificationStore) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	var marked int64
	for _, notification := range r.s.notifications {
		if notification.UserID == userID && notification.ReadAt == nil {
			notification.ReadAt = &now
			marked++
		}
	}
	return marked, nil
}
