package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/dto/response"
	"ticket-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	ProcessPayment(ctx context.Context, userID string, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error)
	GetPayment(ctx context.Context, userID, role, paymentID string) (*response.PaymentResponse, error)
	GetPaymentMethods(ctx context.Context) ([]response.PaymentMethodResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) ProcessPayment(ctx context.Context, userID string, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Process payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookingUUID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("process payment: %w", err)
	}
	if booking == nil || booking.UserID != userUUID {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}

	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("booking in status %s cannot be paid", booking.Status)
	}

	if math.Abs(req.Amount-booking.TotalPrice) > 0.001 {
		return nil, fmt.Errorf("amount %.2f does not match booking total %.2f", req.Amount, booking.TotalPrice)
	}

	existing, err := s.repo.Payment.FindByBookingID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to check existing payment", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("process payment: %w", err)
	}
	if existing != nil && existing.Status != entity.PaymentStatusFailed {
		return nil, fmt.Errorf("booking already has a payment")
	}

	method, err := s.repo.PaymentMethod.FindByCode(ctx, req.PaymentMethod)
	if err != nil {
		s.log.Error("Failed to find payment method", zap.Error(err), zap.String("code", req.PaymentMethod))
		return nil, fmt.Errorf("process payment: %w", err)
	}
	if method == nil {
		return nil, fmt.Errorf("payment method %s not found", req.PaymentMethod)
	}

	event, err := s.repo.Event.FindByID(ctx, booking.EventID)
	if err != nil {
		s.log.Error("Failed to load booking event", zap.Error(err), zap.String("event_id", booking.EventID.String()))
		return nil, fmt.Errorf("process payment: %w", err)
	}

	currency := "USD"
	if event != nil {
		currency = event.Currency
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:       bookingUUID,
		PaymentMethodID: method.ID,
		Amount:          req.Amount,
		Currency:        currency,
		Status:          entity.PaymentStatusInitiated,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("process payment: %w", err)
	}

	// There is no external gateway here; the charge settles in-process.
	// An inactive method is the simulated decline path.
	if !method.IsActive {
		if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusFailed, nil); err != nil {
			s.log.Error("Failed to mark payment failed", zap.Error(err), zap.String("payment_id", payment.ID.String()))
		}
		payment.Status = entity.PaymentStatusFailed
		return nil, fmt.Errorf("payment method %s is not available", method.Code)
	}

	transactionID := utils.GenerateTransactionID()
	if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusCompleted, &transactionID); err != nil {
		s.log.Error("Failed to complete payment", zap.Error(err), zap.String("payment_id", payment.ID.String()))
		return nil, fmt.Errorf("process payment: %w", err)
	}
	payment.Status = entity.PaymentStatusCompleted
	payment.TransactionID = &transactionID

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusConfirmed); err != nil {
		s.log.Error("Failed to confirm booking after payment", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("process payment: %w", err)
	}

	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  booking.UserID,
		Type:    entity.NotificationPaymentCompleted,
		Message: fmt.Sprintf("Payment of %.2f %s for booking %s completed. Your booking is confirmed.", payment.Amount, payment.Currency, booking.OrderID),
	}
	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.log.Warn("Failed to create payment notification", zap.Error(err))
	}

	s.log.Info("Payment completed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.String("transaction_id", transactionID),
		zap.Float64("amount", payment.Amount))

	resp := response.PaymentToResponse(payment, method)
	return &resp, nil
}

func (s *paymentService) GetPayment(ctx context.Context, userID, role, paymentID string) (*response.PaymentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	paymentUUID, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment ID format %s: %w", paymentID, err)
	}

	payment, err := s.repo.Payment.FindByID(ctx, paymentUUID)
	if err != nil {
		s.log.Error("Failed to get payment", zap.Error(err), zap.String("payment_id", paymentID))
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("payment %s not found", paymentID)
	}

	// Owner check goes through the booking; admins see everything.
	if role != string(entity.RoleAdmin) {
		booking, err := s.repo.Booking.FindByID(ctx, payment.BookingID)
		if err != nil {
			s.log.Error("Failed to load payment booking", zap.Error(err), zap.String("booking_id", payment.BookingID.String()))
			return nil, fmt.Errorf("get payment: %w", err)
		}
		if booking == nil || booking.UserID != userUUID {
			return nil, fmt.Errorf("payment %s not found", paymentID)
		}
	}

	method, err := s.repo.PaymentMethod.FindByID(ctx, payment.PaymentMethodID)
	if err != nil {
		s.log.Warn("Failed to load payment method", zap.Error(err))
	}

	resp := response.PaymentToResponse(payment, method)
	return &resp, nil
}

func (s *paymentService) GetPaymentMethods(ctx context.Context) ([]response.PaymentMethodResponse, error) {
	methods, err := s.repo.PaymentMethod.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to get payment methods", zap.Error(err))
		return nil, fmt.Errorf("get payment methods: %w", err)
	}

	responses := make([]response.PaymentMethodResponse, len(methods))
	for i, method := range methods {
		responses[i] = response.PaymentMethodToResponse(method)
	}

	return responses, nil
}
