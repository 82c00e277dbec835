package usecase

import (
	"context"
	"testing"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/memory"
	"ticket-booking/internal/data/repository"
	"ticket-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()

	repo := memory.NewRepository(zap.NewNop())
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
		OTP:     utils.OTPConfig{ExpiryMinutes: 10, Length: 6},
	}

	return NewService(repo, config, zap.NewNop()), repo
}

func seedUser(t *testing.T, repo *repository.Repository, email string, role entity.UserRole) *entity.User {
	t.Helper()

	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	now := time.Now()
	user := &entity.User{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:         email,
		Name:          "Seeded User",
		PasswordHash:  hashed,
		Role:          role,
		EmailVerified: true,
		IsActive:      true,
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func seedEvent(t *testing.T, repo *repository.Repository, price float64, capacity int) *entity.Event {
	t.Helper()

	now := time.Now()
	event := &entity.Event{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:    "Jazz Night",
		Venue:    "Blue Hall",
		StartsAt: now.Add(72 * time.Hour),
		Price:    price,
		Currency: "USD",
		Capacity: capacity,
	}
	require.NoError(t, repo.Event.Create(context.Background(), event))
	return event
}

func seedPaymentMethod(t *testing.T, repo *repository.Repository, code string, active bool) *entity.PaymentMethod {
	t.Helper()

	method := &entity.PaymentMethod{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Code:       code,
		Name:       code,
		IsActive:   active,
	}
	require.NoError(t, repo.PaymentMethod.Create(context.Background(), method))
	return method
}
