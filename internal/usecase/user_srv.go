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

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)

	// Admin endpoints
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	DeleteUser(ctx context.Context, adminID, userID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to find user for update", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	user.Name = req.Name
	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to process password")
		}
		user.PasswordHash = hashedPassword
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated", zap.String("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	users, err := s.repo.User.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get users", zap.Error(err))
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := s.repo.User.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, limit, total), nil
}

func (s *userService) DeleteUser(ctx context.Context, adminID, userID string) error {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return fmt.Errorf("invalid admin ID format %s: %w", adminID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if adminUUID == userUUID {
		return fmt.Errorf("cannot delete own account")
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to find user for delete", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("delete user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s not found", userID)
	}

	if err := s.repo.User.Delete(ctx, userUUID); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("delete user: %w", err)
	}

	// Audit trail
	action := &entity.AdminAction{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		AdminID:  adminUUID,
		Action:   "user.delete",
		TargetID: userID,
	}
	if err := s.repo.AdminAction.Create(ctx, action); err != nil {
		s.log.Warn("Failed to record admin action", zap.Error(err))
	}

	s.log.Info("User deleted by admin",
		zap.String("admin_id", adminID),
		zap.String("user_id", userID))

	return nil
}
