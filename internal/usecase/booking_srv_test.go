package usecase

import (
	"context"
	"testing"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "buyer@example.com", entity.RoleUser)
	event := seedEvent(t, repo, 25, 100)

	result, err := service.Booking.CreateBooking(ctx, user.ID.String(), "", &request.CreateBookingRequest{
		EventID:  event.ID.String(),
		Quantity: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Replayed)
	assert.Equal(t, entity.BookingStatusPending, result.Booking.Status)
	assert.Equal(t, float64(50), result.Booking.TotalPrice)
	assert.Equal(t, "Jazz Night", result.Booking.EventTitle)

	// A booking_created notification lands in the inbox.
	count, err := repo.Notification.CountByUserID(ctx, user.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCreateBookingIdempotencyReplay(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "retry@example.com", entity.RoleUser)
	event := seedEvent(t, repo, 10, 100)

	req := &request.CreateBookingRequest{EventID: event.ID.String(), Quantity: 1}

	first, err := service.Booking.CreateBooking(ctx, user.ID.String(), "key-abc", req)
	require.NoError(t, err)
	assert.False(t, first.Replayed)

	second, err := service.Booking.CreateBooking(ctx, user.ID.String(), "key-abc", req)
	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.Booking.ID, second.Booking.ID)

	// Only one booking exists for the event.
	total, err := repo.Booking.CountByEventID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// A different key books again.
	third, err := service.Booking.CreateBooking(ctx, user.ID.String(), "key-def", req)
	require.NoError(t, err)
	assert.False(t, third.Replayed)
	assert.NotEqual(t, first.Booking.ID, third.Booking.ID)
}

func TestCreateBookingCapacityExhausted(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "greedy@example.com", entity.RoleUser)
	event := seedEvent(t, repo, 10, 3)

	_, err := service.Booking.CreateBooking(ctx, user.ID.String(), "", &request.CreateBookingRequest{
		EventID:  event.ID.String(),
		Quantity: 3,
	})
	require.NoError(t, err)

	_, err = service.Booking.CreateBooking(ctx, user.ID.String(), "", &request.CreateBookingRequest{
		EventID:  event.ID.String(),
		Quantity: 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enough seats")
}

func TestCreateBookingSeatConflict(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	alice := seedUser(t, repo, "alice@example.com", entity.RoleUser)
	bob := seedUser(t, repo, "bob@example.com", entity.RoleUser)
	event := seedEvent(t, repo, 10, 50)

	seat := "A1"
	_, err := service.Booking.CreateBooking(ctx, alice.ID.String(), "", &request.CreateBookingRequest{
		EventID:   event.ID.String(),
		SeatLabel: &seat,
		Quantity:  1,
	})
	require.NoError(t, err)

	_, err = service.Booking.CreateBooking(ctx, bob.ID.String(), "", &request.CreateBookingRequest{
		EventID:   event.ID.String(),
		SeatLabel: &seat,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestCancelBookingReleasesSeat(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	alice := seedUser(t, repo, "alice@example.com", entity.RoleUser)
	bob := seedUser(t, repo, "bob@example.com", entity.RoleUser)
	event := seedEvent(t, repo, 10, 50)

	seat := "C3"
	created, err := service.Booking.CreateBooking(ctx, alice.ID.String(), "", &request.CreateBookingRequest{
		EventID:   event.ID.String(),
		SeatLabel: &seat,
		Quantity:  1,
	})
	require.NoError(t, err)

	cancelled, err := service.Booking.CancelBooking(ctx, alice.ID.String(), created.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)

	// The seat is free again for someone else.
	_, err = service.Booking.CreateBooking(ctx, bob.ID.String(), "", &request.CreateBookingRequest{
		EventID:   event.ID.String(),
		SeatLabel: &seat,
		Quantity:  1,
	})
	require.NoError(t, err)

	// A cancelled booking cannot be cancelled again.
	_, err = service.Booking.CancelBooking(ctx, alice.ID.String(), created.Booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be cancelled")
}

func TestGetBookingHidesOtherUsers(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, repo, "owner@example.com", entity.RoleUser)
	stranger := seedUser(t, repo, "stranger@example.com", entity.RoleUser)
	event := seedEvent(t, repo, 10, 50)

	created, err := service.Booking.CreateBooking(ctx, owner.ID.String(), "", &request.CreateBookingRequest{
		EventID:  event.ID.String(),
		Quantity: 1,
	})
	require.NoError(t, err)

	got, err := service.Booking.GetBooking(ctx, owner.ID.String(), created.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Booking.ID, got.ID)

	// Someone else's booking looks like it does not exist.
	_, err = service.Booking.GetBooking(ctx, stranger.ID.String(), created.Booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetUserBookingsStatusFilter(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "filter@example.com", entity.RoleUser)
	event := seedEvent(t, repo, 10, 50)

	first, err := service.Booking.CreateBooking(ctx, user.ID.String(), "", &request.CreateBookingRequest{
		EventID:  event.ID.String(),
		Quantity: 1,
	})
	require.NoError(t, err)

	_, err = service.Booking.CreateBooking(ctx, user.ID.String(), "", &request.CreateBookingRequest{
		EventID:  event.ID.String(),
		Quantity: 1,
	})
	require.NoError(t, err)

	_, err = service.Booking.CancelBooking(ctx, user.ID.String(), first.Booking.ID)
	require.NoError(t, err)

	page := &request.PaginatedRequest{Page: 1, PerPage: 20}

	pending, err := service.Booking.GetUserBookings(ctx, user.ID.String(), "pending", page)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending.Pagination.Total)

	cancelled, err := service.Booking.GetUserBookings(ctx, user.ID.String(), "cancelled", page)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cancelled.Pagination.Total)

	_, err = service.Booking.GetUserBookings(ctx, user.ID.String(), "bogus", page)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestAdminCancelBookingRecordsAction(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	admin := seedUser(t, repo, "admin@example.com", entity.RoleAdmin)
	user := seedUser(t, repo, "victim@example.com", entity.RoleUser)
	event := seedEvent(t, repo, 10, 50)

	created, err := service.Booking.CreateBooking(ctx, user.ID.String(), "", &request.CreateBookingRequest{
		EventID:  event.ID.String(),
		Quantity: 1,
	})
	require.NoError(t, err)

	cancelled, err := service.Booking.AdminCancelBooking(ctx, admin.ID.String(), created.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)

	actions, err := repo.AdminAction.FindAll(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "booking.cancel", actions[0].Action)
	assert.Equal(t, admin.ID, actions[0].AdminID)
	assert.Equal(t, created.Booking.ID, actions[0].TargetID)
}
