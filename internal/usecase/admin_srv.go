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

type AdminService interface {
	GetActions(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AdminActionResponse], error)
	RecordAction(ctx context.Context, adminID string, req *request.RecordAdminActionRequest) (*response.AdminActionResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) GetActions(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AdminActionResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	actions, err := s.repo.AdminAction.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get admin actions", zap.Error(err))
		return nil, fmt.Errorf("get admin actions: %w", err)
	}

	total, err := s.repo.AdminAction.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count admin actions", zap.Error(err))
		return nil, fmt.Errorf("count admin actions: %w", err)
	}

	responses := make([]response.AdminActionResponse, len(actions))
	for i, action := range actions {
		responses[i] = response.AdminActionToResponse(action)
	}

	return response.NewPaginatedResponse(responses, req.Page, limit, total), nil
}

func (s *adminService) RecordAction(ctx context.Context, adminID string, req *request.RecordAdminActionRequest) (*response.AdminActionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record action validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return nil, fmt.Errorf("invalid admin ID format %s: %w", adminID, err)
	}

	action := &entity.AdminAction{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		AdminID:  adminUUID,
		Action:   req.Action,
		TargetID: req.TargetID,
	}

	if err := s.repo.AdminAction.Create(ctx, action); err != nil {
		s.log.Error("Failed to record admin action", zap.Error(err), zap.String("action", req.Action))
		return nil, fmt.Errorf("record admin action: %w", err)
	}

	s.log.Info("Admin action recorded",
		zap.String("admin_id", adminID),
		zap.String("action", req.Action),
		zap.String("target_id", req.TargetID))

	resp := response.AdminActionToResponse(action)
	return &resp, nil
}
