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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	SendOTP(ctx context.Context, email, otpType string) error
	VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:         req.Email,
		Name:          req.Name,
		PasswordHash:  hashedPassword,
		Role:          entity.RoleUser,
		EmailVerified: false,
		IsActive:      true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// OTP is issued synchronously so the register response never races
	// the verification flow; delivery is log-only in this scaffold.
	if err := s.SendOTP(ctx, user.Email, string(entity.OTPTypeEmailVerification)); err != nil {
		s.log.Warn("Failed to send verification OTP after register",
			zap.Error(err), zap.String("email", user.Email))
	}

	// Auto login after register
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("account is deactivated")
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) SendOTP(ctx context.Context, email, otpType string) error {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if otpType == string(entity.OTPTypeEmailVerification) && user.EmailVerified {
		return fmt.Errorf("email already verified")
	}

	otpCode := utils.GenerateOTP(s.config.OTP.Length)
	expiresAt := time.Now().Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)

	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Email:     email,
		OTPCode:   otpCode,
		OTPType:   entity.OTPType(otpType),
		ExpiresAt: expiresAt,
		IsUsed:    false,
	}

	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		s.log.Error("Failed to save OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to generate OTP")
	}

	// No SMTP in this scaffold; the OTP lands in the log.
	s.log.Info("OTP generated",
		zap.String("email", email),
		zap.String("otp_code", otpCode),
		zap.String("otp_type", otpType),
		zap.Time("expires_at", expiresAt),
	)

	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify email validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	otp, err := s.repo.OTP.FindValidOTP(ctx, req.Email, req.OTP, string(entity.OTPTypeEmailVerification))
	if err != nil {
		s.log.Error("Failed to find OTP", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to verify OTP")
	}
	if otp == nil {
		return fmt.Errorf("invalid or expired OTP")
	}

	if err := s.repo.OTP.MarkAsUsed(ctx, otp.ID); err != nil {
		s.log.Warn("Failed to mark OTP as used", zap.Error(err), zap.String("otp_id", otp.ID.String()))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil || user == nil {
		s.log.Error("User not found for verification", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("user not found")
	}

	user.EmailVerified = true
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user verification", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to verify email")
	}

	s.log.Info("Email verified",
		zap.String("email", req.Email),
		zap.String("user_id", user.ID.String()))

	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	expiryHours := s.config.Session.ExpiryHours
	if expiryHours <= 0 {
		expiryHours = 24
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(time.Duration(expiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
