package controller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/psds-microservice/shop-api/internal/errors"
	"github.com/psds-microservice/shop-api/internal/model"
	"github.com/psds-microservice/shop-api/pkg/constants"
)

func newUserService() *UserServiceImpl {
	return NewUserService(zap.NewNop(), NewUserRepository())
}

var birthdate = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

func register(t *testing.T, svc *UserServiceImpl, username, role string) *model.User {
	t.Helper()
	user, err := svc.Register(context.Background(), username, "Test User", birthdate, "Password123", role)
	require.NoError(t, err)
	return user
}

func TestUserServiceRegisterDefaultsRole(t *testing.T) {
	svc := newUserService()
	user := register(t, svc, "alice", "")
	assert.Equal(t, constants.RoleUser, user.Role)
	assert.Equal(t, int64(1), user.UID)
}

func TestUserServiceRegisterPasswordRules(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "bob", "Bob", birthdate, "short1", "")
	assert.ErrorIs(t, err, errors.ErrInvalidPassword)

	_, err = svc.Register(ctx, "bob", "Bob", birthdate, "nodigitshere", "")
	assert.ErrorIs(t, err, errors.ErrInvalidPassword)

	_, err = svc.Register(ctx, "bob", "Bob", birthdate, "GoodPass1", "")
	assert.NoError(t, err)
}

func TestUserServiceRegisterDuplicateUsername(t *testing.T) {
	svc := newUserService()
	register(t, svc, "alice", "")
	_, err := svc.Register(context.Background(), "alice", "Other", birthdate, "Password123", "")
	assert.ErrorIs(t, err, errors.ErrUsernameTaken)
}

func TestUserServiceAuthenticate(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()
	register(t, svc, "alice", "")

	user, err := svc.Authenticate(ctx, "alice", "Password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Authenticate(ctx, "alice", "WrongPassword1")
	assert.ErrorIs(t, err, errors.ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "ghost", "Password123")
	assert.ErrorIs(t, err, errors.ErrUnauthorized)
}

func TestUserServiceGetAccessControl(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	admin := register(t, svc, "admin", constants.RoleAdmin)
	alice := register(t, svc, "alice", "")
	bob := register(t, svc, "bob", "")

	// Админ видит всех.
	got, err := svc.GetByID(ctx, admin, alice.UID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	// Пользователь видит себя.
	got, err = svc.GetByUsername(ctx, alice, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.UID, got.UID)

	// Чужой профиль — запрещено.
	_, err = svc.GetByID(ctx, alice, bob.UID)
	assert.ErrorIs(t, err, errors.ErrForbidden)
	_, err = svc.GetByUsername(ctx, alice, "bob")
	assert.ErrorIs(t, err, errors.ErrForbidden)

	// Несуществующий — 404 для админа.
	_, err = svc.GetByID(ctx, admin, 9999)
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestUserServicePromote(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	admin := register(t, svc, "admin", constants.RoleAdmin)
	alice := register(t, svc, "alice", "")

	_, err := svc.Promote(ctx, alice, alice.UID)
	assert.ErrorIs(t, err, errors.ErrForbidden)

	promoted, err := svc.Promote(ctx, admin, alice.UID)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, promoted.Role)

	_, err = svc.Promote(ctx, admin, 9999)
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}
