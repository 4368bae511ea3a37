package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/auth"
	"github.com/user/newswire-go/models"
	"github.com/user/newswire-go/store/memory"
)

func newFixture(t *testing.T) (*Service, *memory.UserStore, *models.User) {
	t.Helper()
	users := memory.NewUserStore()
	svc := NewService(users, zap.NewNop())

	hashed, err := auth.HashPassword("secret1234")
	require.NoError(t, err)
	u := &models.User{Name: "Jane", Email: "jane@example.com", HashedPassword: hashed, Role: models.RoleUser}
	require.NoError(t, users.Create(context.Background(), u))
	return svc, users, u
}

func TestUpdateProfileName(t *testing.T) {
	svc, _, u := newFixture(t)

	updated, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileRequest{Name: "  Jane Doe  "})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	// Password untouched.
	assert.True(t, auth.CheckPassword(updated.HashedPassword, "secret1234"))
}

func TestUpdateProfilePassword(t *testing.T) {
	svc, users, u := newFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileRequest{
		CurrentPassword: "secret1234",
		NewPassword:     "newsecret",
	})
	require.NoError(t, err)

	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(got.HashedPassword, "newsecret"))
	assert.False(t, auth.CheckPassword(got.HashedPassword, "secret1234"))
}

func TestUpdateProfileWrongCurrentPassword(t *testing.T) {
	svc, users, u := newFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	assert.True(t, apperror.IsAuthError(err))

	// Credential unchanged.
	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(got.HashedPassword, "secret1234"))
}

func TestUpdateProfileShortNewPassword(t *testing.T) {
	svc, _, u := newFixture(t)

	_, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileRequest{
		CurrentPassword: "secret1234",
		NewPassword:     "abc",
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc, _, _ := newFixture(t)

	_, err := svc.UpdateProfile(context.Background(), 999, UpdateProfileRequest{Name: "Ghost"})
	assert.True(t, apperror.IsNotFound(err))
}

func TestCount(t *testing.T) {
	svc, users, _ := newFixture(t)
	ctx := context.Background()

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, users.Create(ctx, &models.User{Name: "Two", Email: "two@example.com", HashedPassword: "x", Role: models.RoleUser}))

	count, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
