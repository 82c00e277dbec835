package usecase

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, req *request.PaginatedRequest) (*response.PaginatedResponse[response.NotificationResponse], error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

type notificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNotificationService(repo *repository.Repository, log *zap.Logger) NotificationService {
	return &notificationService{
		repo: repo,
		log:  log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, req *request.PaginatedRequest) (*response.PaginatedResponse[response.NotificationResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	limit := req.Limit()
	offset := req.Offset()

	notifications, err := s.repo.Notification.FindByUserID(ctx, userUUID, unreadOnly, limit, offset)
	if err != nil {
		s.log.Error("Failed to get notifications", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get notifications: %w", err)
	}

	total, err := s.repo.Notification.CountByUserID(ctx, userUUID, unreadOnly)
	if err != nil {
		s.log.Error("Failed to count notifications", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("count notifications: %w", err)
	}

	responses := make([]response.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = response.NotificationToResponse(n)
	}

	return response.NewPaginatedResponse(responses, req.Page, limit, total), nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	notificationUUID, err := uuid.Parse(notificationID)
	if err != nil {
		return fmt.Errorf("invalid notification ID format %s: %w", notificationID, err)
	}

	notification, err := s.repo.Notification.FindByID(ctx, notificationUUID)
	if err != nil {
		s.log.Error("Failed to find notification", zap.Error(err), zap.String("notification_id", notificationID))
		return fmt.Errorf("mark read: %w", err)
	}
	if notification == nil || notification.UserID != userUUID {
		return fmt.Errorf("notification %s not found", notificationID)
	}

	if notification.IsRead() {
		return nil
	}

	if err := s.repo.Notification.MarkRead(ctx, notificationUUID); err != nil {
		s.log.Error("Failed to mark notification read", zap.Error(err), zap.String("notification_id", notificationID))
		return fmt.Errorf("mark read: %w", err)
	}

	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	updated, err := s.repo.Notification.MarkAllRead(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to mark all notifications read", zap.Error(err), zap.String("user_id", userID))
		return 0, fmt.Errorf("mark all read: %w", err)
	}

	s.log.Info("Notifications marked read",
		zap.String("user_id", userID),
		zap.Int64("updated", updated))

	return updated, nil
}
