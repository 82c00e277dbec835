package usecase

import (
	"context"
	"testing"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/dto/request"
	"ticket-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "rename@example.com", entity.RoleUser)

	newPassword := "newsecret"
	updated, err := service.User.UpdateProfile(ctx, user.ID.String(), &request.UpdateProfileRequest{
		Name:     "Renamed",
		Password: &newPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	stored, err := repo.User.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("newsecret", stored.PasswordHash))
	assert.False(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
}

func TestAdminDeleteUser(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	admin := seedUser(t, repo, "admin@example.com", entity.RoleAdmin)
	victim := seedUser(t, repo, "victim@example.com", entity.RoleUser)

	require.NoError(t, service.User.DeleteUser(ctx, admin.ID.String(), victim.ID.String()))

	gone, err := repo.User.FindByID(ctx, victim.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	actions, err := repo.AdminAction.FindAll(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "user.delete", actions[0].Action)
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	admin := seedUser(t, repo, "admin@example.com", entity.RoleAdmin)

	err := service.User.DeleteUser(ctx, admin.ID.String(), admin.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "own account")
}

func TestGetAllUsersPaginated(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	seedUser(t, repo, "one@example.com", entity.RoleUser)
	seedUser(t, repo, "two@example.com", entity.RoleUser)
	seedUser(t, repo, "three@example.com", entity.RoleUser)

	page, err := service.User.GetAllUsers(ctx, &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(3), page.Pagination.Total)
}
