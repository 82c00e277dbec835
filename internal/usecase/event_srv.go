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

type EventService interface {
	GetAllEvents(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.EventResponse], error)
	GetEvent(ctx context.Context, eventID string) (*response.EventResponse, error)

	// Admin endpoints
	CreateEvent(ctx context.Context, adminID string, req *request.CreateEventRequest) (*response.EventResponse, error)
	UpdateEvent(ctx context.Context, adminID, eventID string, req *request.UpdateEventRequest) (*response.EventResponse, error)
	DeleteEvent(ctx context.Context, adminID, eventID string) error
}

type eventService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEventService(repo *repository.Repository, log *zap.Logger) EventService {
	return &eventService{
		repo: repo,
		log:  log.With(zap.String("service", "event")),
	}
}

func (s *eventService) GetAllEvents(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.EventResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	events, err := s.repo.Event.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get events", zap.Error(err))
		return nil, fmt.Errorf("get events: %w", err)
	}

	total, err := s.repo.Event.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count events", zap.Error(err))
		return nil, fmt.Errorf("count events: %w", err)
	}

	eventResponses := make([]response.EventResponse, len(events))
	for i, event := range events {
		seatsTaken, err := s.repo.Booking.CountActiveByEventID(ctx, event.ID)
		if err != nil {
			s.log.Error("Failed to count event seats", zap.Error(err), zap.String("event_id", event.ID.String()))
			return nil, fmt.Errorf("count seats: %w", err)
		}
		eventResponses[i] = response.EventToResponse(event, seatsTaken)
	}

	return response.NewPaginatedResponse(eventResponses, req.Page, limit, total), nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*response.EventResponse, error) {
	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format %s: %w", eventID, err)
	}

	event, err := s.repo.Event.FindByID(ctx, eventUUID)
	if err != nil {
		s.log.Error("Failed to get event", zap.Error(err), zap.String("event_id", eventID))
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %s not found", eventID)
	}

	seatsTaken, err := s.repo.Booking.CountActiveByEventID(ctx, event.ID)
	if err != nil {
		s.log.Error("Failed to count event seats", zap.Error(err), zap.String("event_id", eventID))
		return nil, fmt.Errorf("count seats: %w", err)
	}

	resp := response.EventToResponse(event, seatsTaken)
	return &resp, nil
}

func (s *eventService) CreateEvent(ctx context.Context, adminID string, req *request.CreateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create event validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return nil, fmt.Errorf("invalid admin ID format %s: %w", adminID, err)
	}

	now := time.Now()
	event := &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Venue:       req.Venue,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		Price:       req.Price,
		Currency:    req.Currency,
		Capacity:    req.Capacity,
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		s.log.Error("Failed to create event", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.recordAction(ctx, adminUUID, "event.create", event.ID.String())

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("title", event.Title),
		zap.String("admin_id", adminID))

	resp := response.EventToResponse(event, 0)
	return &resp, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, adminID, eventID string, req *request.UpdateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update event validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return nil, fmt.Errorf("invalid admin ID format %s: %w", adminID, err)
	}

	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format %s: %w", eventID, err)
	}

	event, err := s.repo.Event.FindByID(ctx, eventUUID)
	if err != nil {
		s.log.Error("Failed to find event for update", zap.Error(err), zap.String("event_id", eventID))
		return nil, fmt.Errorf("update event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %s not found", eventID)
	}

	seatsTaken, err := s.repo.Booking.CountActiveByEventID(ctx, event.ID)
	if err != nil {
		s.log.Error("Failed to count event seats", zap.Error(err), zap.String("event_id", eventID))
		return nil, fmt.Errorf("count seats: %w", err)
	}

	// Capacity may never drop below seats already held.
	if int64(req.Capacity) < seatsTaken {
		return nil, fmt.Errorf("capacity %d is below the %d seats already booked", req.Capacity, seatsTaken)
	}

	event.Title = req.Title
	event.Venue = req.Venue
	event.Description = req.Description
	event.StartsAt = req.StartsAt
	event.Price = req.Price
	event.Currency = req.Currency
	event.Capacity = req.Capacity
	event.UpdatedAt = time.Now()

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.log.Error("Failed to update event", zap.Error(err), zap.String("event_id", eventID))
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.recordAction(ctx, adminUUID, "event.update", event.ID.String())

	s.log.Info("Event updated",
		zap.String("event_id", eventID),
		zap.String("admin_id", adminID))

	resp := response.EventToResponse(event, seatsTaken)
	return &resp, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, adminID, eventID string) error {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return fmt.Errorf("invalid admin ID format %s: %w", adminID, err)
	}

	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		return fmt.Errorf("invalid event ID format %s: %w", eventID, err)
	}

	event, err := s.repo.Event.FindByID(ctx, eventUUID)
	if err != nil {
		s.log.Error("Failed to find event for delete", zap.Error(err), zap.String("event_id", eventID))
		return fmt.Errorf("delete event: %w", err)
	}
	if event == nil {
		return fmt.Errorf("event %s not found", eventID)
	}

	bookingCount, err := s.repo.Booking.CountByEventID(ctx, eventUUID)
	if err != nil {
		s.log.Error("Failed to count event bookings", zap.Error(err), zap.String("event_id", eventID))
		return fmt.Errorf("delete event: %w", err)
	}
	if bookingCount > 0 {
		return fmt.Errorf("event has bookings and cannot be deleted")
	}

	if err := s.repo.Event.Delete(ctx, eventUUID); err != nil {
		s.log.Error("Failed to delete event", zap.Error(err), zap.String("event_id", eventID))
		return fmt.Errorf("delete event: %w", err)
	}

	s.recordAction(ctx, adminUUID, "event.delete", eventID)

	s.log.Info("Event deleted",
		zap.String("event_id", eventID),
		zap.String("admin_id", adminID))

	return nil
}

// ==================== HELPER METHODS ====================

func (s *eventService) recordAction(ctx context.Context, adminID uuid.UUID, action, targetID string) {
	record := &entity.AdminAction{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		AdminID:  adminID,
		Action:   action,
		TargetID: targetID,
	}
	if err := s.repo.AdminAction.Create(ctx, record); err != nil {
		s.log.Warn("Failed to record admin action", zap.Error(err), zap.String("action", action))
	}
}
