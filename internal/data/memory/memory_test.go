package memory

import (
	"context"
	"testing"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepository() *repository.Repository {
	return NewRepository(zap.NewNop())
}

func newUser(email string) *entity.User {
	now := time.Now()
	return &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:        email,
		Name:         "Test User",
		PasswordHash: "hash",
		Role:         entity.RoleUser,
		IsActive:     true,
	}
}

func newEvent(capacity int) *entity.Event {
	now := time.Now()
	return &entity.Event{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:    "Concert",
		Venue:    "Main Hall",
		StartsAt: now.Add(48 * time.Hour),
		Price:    25,
		Currency: "USD",
		Capacity: capacity,
	}
}

func newBooking(userID, eventID uuid.UUID, status entity.BookingStatus) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		OrderID:    "TIX-" + uuid.New().String()[:8],
		UserID:     userID,
		EventID:    eventID,
		Quantity:   1,
		TotalPrice: 25,
		Status:     status,
	}
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	require.NoError(t, repo.User.Create(ctx, newUser("dup@example.com")))

	err := repo.User.Create(ctx, newUser("dup@example.com"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate email")
}

func TestUserStoreDeleteCascades(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	user := newUser("cascade@example.com")
	require.NoError(t, repo.User.Create(ctx, user))

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     user.ID,
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Session.Create(ctx, session))

	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     user.ID,
		Type:       entity.NotificationBookingCreated,
		Message:    "hello",
	}
	require.NoError(t, repo.Notification.Create(ctx, notification))

	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     user.ID,
		Email:      user.Email,
		OTPCode:    "123456",
		OTPType:    entity.OTPTypeEmailVerification,
		ExpiresAt:  time.Now().Add(10 * time.Minute),
	}
	require.NoError(t, repo.OTP.Create(ctx, otp))

	event := newEvent(10)
	require.NoError(t, repo.Event.Create(ctx, event))
	booking := newBooking(user.ID, event.ID, entity.BookingStatusConfirmed)
	require.NoError(t, repo.Booking.Create(ctx, booking))
	payment := &entity.Payment{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
		Currency:  "USD",
		Status:    entity.PaymentStatusCompleted,
	}
	require.NoError(t, repo.Payment.Create(ctx, payment))

	require.NoError(t, repo.User.Delete(ctx, user.ID))

	got, err := repo.User.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	count, err := repo.Notification.CountByUserID(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Zero(t, count)

	found, err := repo.Session.FindValidSession(ctx, session.Token.String())
	require.NoError(t, err)
	assert.Nil(t, found)

	validOTP, err := repo.OTP.FindValidOTP(ctx, user.Email, "123456", string(entity.OTPTypeEmailVerification))
	require.NoError(t, err)
	assert.Nil(t, validOTP)

	gotBooking, err := repo.Booking.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Nil(t, gotBooking)

	gotPayment, err := repo.Payment.FindByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Nil(t, gotPayment)
}

func TestBookingStoreIdempotencyKey(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	userID := uuid.New()
	eventID := uuid.New()

	key := "client-key-1"
	booking := newBooking(userID, eventID, entity.BookingStatusPending)
	booking.IdempotencyKey = &key
	require.NoError(t, repo.Booking.Create(ctx, booking))

	found, err := repo.Booking.FindByIdempotencyKey(ctx, userID, key)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, booking.ID, found.ID)

	// Same key from another user is a different booking.
	found, err = repo.Booking.FindByIdempotencyKey(ctx, uuid.New(), key)
	require.NoError(t, err)
	assert.Nil(t, found)

	// A second insert with the same (user, key) pair is rejected.
	dup := newBooking(userID, eventID, entity.BookingStatusPending)
	dup.IdempotencyKey = &key
	require.Error(t, repo.Booking.Create(ctx, dup))
}

func TestBookingStoreSeatAndCapacityQueries(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	eventID := uuid.New()

	seat := "A1"
	active := newBooking(uuid.New(), eventID, entity.BookingStatusConfirmed)
	active.SeatLabel = &seat
	active.Quantity = 2
	require.NoError(t, repo.Booking.Create(ctx, active))

	cancelledSeat := "B2"
	cancelled := newBooking(uuid.New(), eventID, entity.BookingStatusCancelled)
	cancelled.SeatLabel = &cancelledSeat
	require.NoError(t, repo.Booking.Create(ctx, cancelled))

	taken, err := repo.Booking.SeatTaken(ctx, eventID, "A1")
	require.NoError(t, err)
	assert.True(t, taken)

	// Cancelled bookings release their seat.
	taken, err = repo.Booking.SeatTaken(ctx, eventID, "B2")
	require.NoError(t, err)
	assert.False(t, taken)

	activeCount, err := repo.Booking.CountActiveByEventID(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), activeCount)

	allCount, err := repo.Booking.CountByEventID(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), allCount)
}

func TestBookingStoreStatusFilter(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	userID := uuid.New()
	eventID := uuid.New()

	require.NoError(t, repo.Booking.Create(ctx, newBooking(userID, eventID, entity.BookingStatusPending)))
	require.NoError(t, repo.Booking.Create(ctx, newBooking(userID, eventID, entity.BookingStatusConfirmed)))
	require.NoError(t, repo.Booking.Create(ctx, newBooking(userID, eventID, entity.BookingStatusCancelled)))

	pending, err := repo.Booking.FindByUserID(ctx, userID, "pending", 20, 0)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := repo.Booking.FindByUserID(ctx, userID, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	count, err := repo.Booking.Count(ctx, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotificationStoreMarkAllRead(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	userID := uuid.New()
	for i := 0; i < 3; i++ {
		n := &entity.Notification{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			UserID:     userID,
			Type:       entity.NotificationBookingCreated,
			Message:    "pending payment",
		}
		require.NoError(t, repo.Notification.Create(ctx, n))
	}

	unread, err := repo.Notification.CountByUserID(ctx, userID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(3), unread)

	updated, err := repo.Notification.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)

	unread, err = repo.Notification.CountByUserID(ctx, userID, true)
	require.NoError(t, err)
	assert.Zero(t, unread)

	// Second pass has nothing left to update.
	updated, err = repo.Notification.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestSessionStoreExpiry(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	expired := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uuid.New(),
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(-time.Minute),
	}
	require.NoError(t, repo.Session.Create(ctx, expired))

	found, err := repo.Session.FindValidSession(ctx, expired.Token.String())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestEventStorePagination(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Event.Create(ctx, newEvent(100)))
	}

	page, err := repo.Event.FindAll(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	page, err = repo.Event.FindAll(ctx, 2, 4)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	page, err = repo.Event.FindAll(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, page)

	total, err := repo.Event.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}
