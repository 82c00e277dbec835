package usecase

import (
	"context"
	"fmt"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/dto/response"
	"ticket-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBookingResult carries the booking plus whether it was replayed
// from an earlier request with the same idempotency key.
type CreateBookingResult struct {
	Booking  response.BookingResponse
	Replayed bool
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, idempotencyKey string, req *request.CreateBookingRequest) (*CreateBookingResult, error)
	GetUserBookings(ctx context.Context, userID, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBooking(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error)

	// Admin endpoints
	AdminGetBookings(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	AdminGetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	AdminCancelBooking(ctx context.Context, adminID, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, idempotencyKey string, req *request.CreateBookingRequest) (*CreateBookingResult, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	eventUUID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format %s: %w", req.EventID, err)
	}

	// A repeated key from the same user replays the original booking
	// instead of creating a second one.
	if idempotencyKey != "" {
		existing, err := s.repo.Booking.FindByIdempotencyKey(ctx, userUUID, idempotencyKey)
		if err != nil {
			s.log.Error("Failed to look up idempotency key", zap.Error(err), zap.String("key", idempotencyKey))
			return nil, fmt.Errorf("create booking: %w", err)
		}
		if existing != nil {
			s.log.Info("Booking replayed for idempotency key",
				zap.String("booking_id", existing.ID.String()),
				zap.String("key", idempotencyKey))
			resp, err := s.enrich(ctx, existing)
			if err != nil {
				return nil, err
			}
			return &CreateBookingResult{Booking: *resp, Replayed: true}, nil
		}
	}

	event, err := s.repo.Event.FindByID(ctx, eventUUID)
	if err != nil {
		s.log.Error("Failed to find event", zap.Error(err), zap.String("event_id", req.EventID))
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %s not found", req.EventID)
	}

	if event.StartsAt.Before(time.Now()) {
		return nil, fmt.Errorf("event has already started")
	}

	seatsTaken, err := s.repo.Booking.CountActiveByEventID(ctx, eventUUID)
	if err != nil {
		s.log.Error("Failed to count event seats", zap.Error(err), zap.String("event_id", req.EventID))
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if seatsTaken+int64(req.Quantity) > int64(event.Capacity) {
		return nil, fmt.Errorf("not enough seats available")
	}

	if req.SeatLabel != nil {
		taken, err := s.repo.Booking.SeatTaken(ctx, eventUUID, *req.SeatLabel)
		if err != nil {
			s.log.Error("Failed to check seat", zap.Error(err), zap.String("seat", *req.SeatLabel))
			return nil, fmt.Errorf("create booking: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("seat %s is already taken", *req.SeatLabel)
		}
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:    utils.GenerateOrderID(),
		UserID:     userUUID,
		EventID:    eventUUID,
		SeatLabel:  req.SeatLabel,
		Quantity:   req.Quantity,
		TotalPrice: event.Price * float64(req.Quantity),
		Status:     entity.BookingStatusPending,
	}
	if idempotencyKey != "" {
		key := idempotencyKey
		booking.IdempotencyKey = &key
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.notify(ctx, userUUID, entity.NotificationBookingCreated,
		fmt.Sprintf("Your booking %s for %s is pending payment.", booking.OrderID, event.Title))

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("user_id", userID),
		zap.String("event_id", req.EventID))

	resp := response.BookingToResponse(booking, event, nil)
	return &CreateBookingResult{Booking: resp}, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if status != "" && !entity.ValidBookingStatus(status) {
		return nil, fmt.Errorf("invalid status filter %s", status)
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, status, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID, status)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses, err := s.enrichAll(ctx, bookings)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, limit, total), nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, booking)
}

func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanCancel() {
		return nil, fmt.Errorf("booking in status %s cannot be cancelled", booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = entity.BookingStatusCancelled

	s.notify(ctx, booking.UserID, entity.NotificationBookingCancelled,
		fmt.Sprintf("Your booking %s has been cancelled.", booking.OrderID))

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID))

	return s.enrich(ctx, booking)
}

func (s *bookingService) AdminGetBookings(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if status != "" && !entity.ValidBookingStatus(status) {
		return nil, fmt.Errorf("invalid status filter %s", status)
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindAll(ctx, status, limit, offset)
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx, status)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses, err := s.enrichAll(ctx, bookings)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, limit, total), nil
}

func (s *bookingService) AdminGetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to get booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return s.enrich(ctx, booking)
}

func (s *bookingService) AdminCancelBooking(ctx context.Context, adminID, bookingID string) (*response.BookingResponse, error) {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return nil, fmt.Errorf("invalid admin ID format %s: %w", adminID, err)
	}

	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to get booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if !booking.CanCancel() {
		return nil, fmt.Errorf("booking in status %s cannot be cancelled", booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = entity.BookingStatusCancelled

	s.notify(ctx, booking.UserID, entity.NotificationBookingCancelled,
		fmt.Sprintf("Your booking %s has been cancelled by an administrator.", booking.OrderID))

	action := &entity.AdminAction{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		AdminID:  adminUUID,
		Action:   "booking.cancel",
		TargetID: bookingID,
	}
	if err := s.repo.AdminAction.Create(ctx, action); err != nil {
		s.log.Warn("Failed to record admin action", zap.Error(err))
	}

	s.log.Info("Booking cancelled by admin",
		zap.String("booking_id", bookingID),
		zap.String("admin_id", adminID))

	return s.enrich(ctx, booking)
}

// ==================== HELPER METHODS ====================

// findOwnedBooking loads a booking and hides other users' bookings
// behind a not-found error.
func (s *bookingService) findOwnedBooking(ctx context.Context, userID, bookingID string) (*entity.Booking, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to get booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil || booking.UserID != userUUID {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return booking, nil
}

func (s *bookingService) enrich(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	event, err := s.repo.Event.FindByID(ctx, booking.EventID)
	if err != nil {
		s.log.Error("Failed to load booking event", zap.Error(err), zap.String("event_id", booking.EventID.String()))
		return nil, fmt.Errorf("load event: %w", err)
	}

	var paymentResp *response.PaymentResponse
	payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to load booking payment", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("load payment: %w", err)
	}
	if payment != nil {
		method, err := s.repo.PaymentMethod.FindByID(ctx, payment.PaymentMethodID)
		if err != nil {
			s.log.Warn("Failed to load payment method", zap.Error(err))
		}
		pr := response.PaymentToResponse(payment, method)
		paymentResp = &pr
	}

	resp := response.BookingToResponse(booking, event, paymentResp)
	return &resp, nil
}

func (s *bookingService) enrichAll(ctx context.Context, bookings []*entity.Booking) ([]response.BookingResponse, error) {
	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp, err := s.enrich(ctx, booking)
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}
	return responses, nil
}

func (s *bookingService) notify(ctx context.Context, userID uuid.UUID, notifType entity.NotificationType, message string) {
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		Type:    notifType,
		Message: message,
	}
	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.log.Warn("Failed to create notification", zap.Error(err), zap.String("user_id", userID.String()))
	}
}
