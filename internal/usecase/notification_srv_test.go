package usecase

import (
	"context"
	"testing"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotification(t *testing.T, repo *repository.Repository, userID uuid.UUID) *entity.Notification {
	t.Helper()

	n := &entity.Notification{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		Type:       entity.NotificationBookingCreated,
		Message:    "pending payment",
	}
	require.NoError(t, repo.Notification.Create(context.Background(), n))
	return n
}

func TestGetUserNotificationsUnreadFilter(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "inbox@example.com", entity.RoleUser)

	first := seedNotification(t, repo, user.ID)
	seedNotification(t, repo, user.ID)

	require.NoError(t, service.Notification.MarkRead(ctx, user.ID.String(), first.ID.String()))

	page := &request.PaginatedRequest{Page: 1, PerPage: 20}

	all, err := service.Notification.GetUserNotifications(ctx, user.ID.String(), false, page)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Pagination.Total)

	unread, err := service.Notification.GetUserNotifications(ctx, user.ID.String(), true, page)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread.Pagination.Total)
}

func TestMarkReadOwnershipEnforced(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, repo, "mine@example.com", entity.RoleUser)
	other := seedUser(t, repo, "theirs@example.com", entity.RoleUser)

	n := seedNotification(t, repo, owner.ID)

	err := service.Notification.MarkRead(ctx, other.ID.String(), n.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	require.NoError(t, service.Notification.MarkRead(ctx, owner.ID.String(), n.ID.String()))

	// Marking an already-read notification is a no-op, not an error.
	require.NoError(t, service.Notification.MarkRead(ctx, owner.ID.String(), n.ID.String()))
}

func TestMarkAllReadCountsUpdates(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "bulk@example.com", entity.RoleUser)

	for i := 0; i < 3; i++ {
		seedNotification(t, repo, user.ID)
	}

	updated, err := service.Notification.MarkAllRead(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)

	updated, err = service.Notification.MarkAllRead(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Zero(t, updated)
}
