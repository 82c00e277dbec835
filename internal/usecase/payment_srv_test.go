package usecase

import (
	"context"
	"testing"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPaymentConfirmsBooking(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "payer@example.com", entity.RoleUser)
	event := seedEvent(t, repo, 40, 50)
	seedPaymentMethod(t, repo, "credit_card", true)

	created, err := service.Booking.CreateBooking(ctx, user.ID.String(), "", &request.CreateBookingRequest{
		EventID:  event.ID.String(),
		Quantity: 2,
	})
	require.NoError(t, err)

	payment, err := service.Payment.ProcessPayment(ctx, user.ID.String(), &request.ProcessPaymentRequest{
		BookingID:     created.Booking.ID,
		PaymentMethod: "credit_card",
		Amount:        80,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
	require.NotNil(t, payment.TransactionID)
	assert.Equal(t, "USD", payment.Currency)

	// Payment completion confirms the booking.
	booking, err := service.Booking.GetBooking(ctx, user.ID.String(), created.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	require.NotNil(t, booking.Payment)
	assert.Equal(t, payment.ID, booking.Payment.ID)

	// booking_created plus payment_completed.
	count, err := repo.Notification.CountByUserID(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestProcessPaymentAmountMismatch(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "cheap@example.com", entity.RoleUser)
	event := seedEvent(t, repo, 40, 50)
	seedPaymentMethod(t, repo, "credit_card", true)

	created, err := service.Booking.CreateBooking(ctx, user.ID.String(), "", &request.CreateBookingRequest{
		EventID:  event.ID.String(),
		Quantity: 1,
	})
	require.NoError(t, err)

	_, err = service.Payment.ProcessPayment(ctx, user.ID.String(), &request.ProcessPaymentRequest{
		BookingID:     created.Booking.ID,
		PaymentMethod: "credit_card",
		Amount:        10,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestProcessPaymentInactiveMethodFails(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "unlucky@example.com", entity.RoleUser)
	event := seedEvent(t, repo, 15, 50)
	seedPaymentMethod(t, repo, "old_gateway", false)

	created, err := service.Booking.CreateBooking(ctx, user.ID.String(), "", &request.CreateBookingRequest{
		EventID:  event.ID.String(),
		Quantity: 1,
	})
	require.NoError(t, err)

	_, err = service.Payment.ProcessPayment(ctx, user.ID.String(), &request.ProcessPaymentRequest{
		BookingID:     created.Booking.ID,
		PaymentMethod: "old_gateway",
		Amount:        15,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")

	// The booking stays pending and the failed attempt is recorded.
	booking, err := service.Booking.GetBooking(ctx, user.ID.String(), created.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	require.NotNil(t, booking.Payment)
	assert.Equal(t, entity.PaymentStatusFailed, booking.Payment.Status)
}

func TestProcessPaymentAfterFailureSucceeds(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "second-try@example.com", entity.RoleUser)
	event := seedEvent(t, repo, 15, 50)
	seedPaymentMethod(t, repo, "old_gateway", false)
	seedPaymentMethod(t, repo, "credit_card", true)

	created, err := service.Booking.CreateBooking(ctx, user.ID.String(), "", &request.CreateBookingRequest{
		EventID:  event.ID.String(),
		Quantity: 1,
	})
	require.NoError(t, err)

	_, err = service.Payment.ProcessPayment(ctx, user.ID.String(), &request.ProcessPaymentRequest{
		BookingID:     created.Booking.ID,
		PaymentMethod: "old_gateway",
		Amount:        15,
	})
	require.Error(t, err)

	payment, err := service.Payment.ProcessPayment(ctx, user.ID.String(), &request.ProcessPaymentRequest{
		BookingID:     created.Booking.ID,
		PaymentMethod: "credit_card",
		Amount:        15,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
}

func TestProcessPaymentDoublePayRejected(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "double@example.com", entity.RoleUser)
	event := seedEvent(t, repo, 20, 50)
	seedPaymentMethod(t, repo, "credit_card", true)

	created, err := service.Booking.CreateBooking(ctx, user.ID.String(), "", &request.CreateBookingRequest{
		EventID:  event.ID.String(),
		Quantity: 1,
	})
	require.NoError(t, err)

	_, err = service.Payment.ProcessPayment(ctx, user.ID.String(), &request.ProcessPaymentRequest{
		BookingID:     created.Booking.ID,
		PaymentMethod: "credit_card",
		Amount:        20,
	})
	require.NoError(t, err)

	_, err = service.Payment.ProcessPayment(ctx, user.ID.String(), &request.ProcessPaymentRequest{
		BookingID:     created.Booking.ID,
		PaymentMethod: "credit_card",
		Amount:        20,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be paid")
}

func TestGetPaymentOwnerAndAdmin(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "shopper@example.com", entity.RoleUser)
	stranger := seedUser(t, repo, "peeker@example.com", entity.RoleUser)
	admin := seedUser(t, repo, "boss@example.com", entity.RoleAdmin)
	event := seedEvent(t, repo, 30, 50)
	seedPaymentMethod(t, repo, "credit_card", true)

	created, err := service.Booking.CreateBooking(ctx, user.ID.String(), "", &request.CreateBookingRequest{
		EventID:  event.ID.String(),
		Quantity: 1,
	})
	require.NoError(t, err)

	payment, err := service.Payment.ProcessPayment(ctx, user.ID.String(), &request.ProcessPaymentRequest{
		BookingID:     created.Booking.ID,
		PaymentMethod: "credit_card",
		Amount:        30,
	})
	require.NoError(t, err)

	// Owner sees it.
	got, err := service.Payment.GetPayment(ctx, user.ID.String(), string(entity.RoleUser), payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.ID, got.ID)

	// Admin sees it.
	got, err = service.Payment.GetPayment(ctx, admin.ID.String(), string(entity.RoleAdmin), payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.ID, got.ID)

	// Other users do not.
	_, err = service.Payment.GetPayment(ctx, stranger.ID.String(), string(entity.RoleUser), payment.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetPaymentMethodsOnlyActive(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	seedPaymentMethod(t, repo, "credit_card", true)
	seedPaymentMethod(t, repo, "bank_transfer", true)
	seedPaymentMethod(t, repo, "old_gateway", false)

	methods, err := service.Payment.GetPaymentMethods(ctx)
	require.NoError(t, err)
	require.Len(t, methods, 2)
	for _, m := range methods {
		assert.True(t, m.IsActive)
	}
}
