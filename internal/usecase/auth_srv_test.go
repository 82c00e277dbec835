package usecase

import (
	"context"
	"testing"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	auth, err := service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, auth)
	assert.Equal(t, "alice@example.com", auth.Email)
	assert.NotEmpty(t, auth.Token)

	// Registration issues a verification OTP.
	user, err := repo.User.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.EmailVerified)

	login, err := service.Auth.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	req := &request.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "secret123"}
	_, err := service.Auth.Register(ctx, req)
	require.NoError(t, err)

	_, err = service.Auth.Register(ctx, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLoginInvalidCredentials(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	seedUser(t, repo, "carol@example.com", entity.RoleUser)

	_, err := service.Auth.Login(ctx, &request.LoginRequest{
		Email:    "carol@example.com",
		Password: "wrongpass",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	// Unknown email yields the same error so accounts cannot be probed.
	_, err = service.Auth.Login(ctx, &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginDeactivatedAccount(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "dave@example.com", entity.RoleUser)
	user.IsActive = false
	require.NoError(t, repo.User.Update(ctx, user))

	_, err := service.Auth.Login(ctx, &request.LoginRequest{
		Email:    "dave@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deactivated")
}

func TestVerifyEmailFlow(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	auth, err := service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Erin",
		Email:    "erin@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, auth)

	user, err := repo.User.FindByEmail(ctx, "erin@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	// Seed a code with a known value; delivery is log-only so the one
	// issued at registration is not observable here.
	code := "123456"
	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     user.ID,
		Email:      user.Email,
		OTPCode:    code,
		OTPType:    entity.OTPTypeEmailVerification,
		ExpiresAt:  time.Now().Add(10 * time.Minute),
	}
	require.NoError(t, repo.OTP.Create(ctx, otp))

	err = service.Auth.VerifyEmail(ctx, &request.VerifyEmailRequest{
		Email: "erin@example.com",
		OTP:   code,
	})
	require.NoError(t, err)

	user, err = repo.User.FindByEmail(ctx, "erin@example.com")
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)

	// A used code does not verify twice.
	err = service.Auth.VerifyEmail(ctx, &request.VerifyEmailRequest{
		Email: "erin@example.com",
		OTP:   code,
	})
	require.Error(t, err)
}

func TestVerifyEmailWrongCode(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Frank",
		Email:    "frank@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	err = service.Auth.VerifyEmail(ctx, &request.VerifyEmailRequest{
		Email: "frank@example.com",
		OTP:   "000000",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or expired")
}

func TestLogoutRevokesSession(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	auth, err := service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Grace",
		Email:    "grace@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)

	require.NoError(t, service.Auth.Logout(ctx, auth.Token))

	session, err := repo.Session.FindValidSession(ctx, auth.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}
