package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authapp "github.com/wyfcoding/poseidon/internal/auth/application"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/user/domain"
	usermysql "github.com/wyfcoding/poseidon/internal/user/infrastructure/persistence/mysql"
	"github.com/wyfcoding/poseidon/pkg/db/dbtest"
	"github.com/wyfcoding/poseidon/pkg/mq"
)

func newUserService(t *testing.T) (*UserService, *authapp.BcryptHasher) {
	t.Helper()
	gdb := dbtest.Open(t, &usermysql.UserModel{})
	hasher := authapp.NewBcryptHasher(bcrypt.MinCost)
	return NewUserService(usermysql.NewUserRepository(gdb), hasher, mq.LogPublisher{}, nil), hasher
}

func createUser(t *testing.T, svc *UserService, username string, role authdomain.Role) *domain.User {
	t.Helper()
	u, err := svc.Create(context.Background(), nil, CreateUserCommand{
		Username: username,
		Password: "Secret123",
		Fullname: username + " fullname",
		Role:     role,
	})
	require.NoError(t, err)
	return u
}

func TestUserService_CreateHashesPassword(t *testing.T) {
	svc, hasher := newUserService(t)

	u := createUser(t, svc, "jdoe", authdomain.RoleUser)
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "Secret123", u.PasswordHash)
	assert.True(t, hasher.Compare(u.PasswordHash, "Secret123"))

	got, err := svc.Get(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", got.Username)
	assert.Equal(t, authdomain.RoleUser, got.Role)
}

func TestUserService_CreateRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)
	createUser(t, svc, "jdoe", authdomain.RoleUser)

	_, err := svc.Create(ctx, nil, CreateUserCommand{Username: "jdoe", Password: "Secret123", Fullname: "x", Role: authdomain.RoleUser})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = svc.Create(ctx, nil, CreateUserCommand{Username: "bad name", Password: "Secret123", Fullname: "x", Role: authdomain.RoleUser})
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)

	_, err = svc.Create(ctx, nil, CreateUserCommand{Username: "weak", Password: "password", Fullname: "x", Role: authdomain.RoleUser})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)

	_, err = svc.Create(ctx, nil, CreateUserCommand{Username: "root", Password: "Secret123", Fullname: "x", Role: "ROOT"})
	assert.ErrorIs(t, err, authdomain.ErrUnknownRole)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_UpdateKeepsPasswordWhenBlank(t *testing.T) {
	ctx := context.Background()
	svc, hasher := newUserService(t)
	admin := createUser(t, svc, "admin", authdomain.RoleAdmin)
	u := createUser(t, svc, "jdoe", authdomain.RoleUser)
	actor := &authdomain.Principal{UserID: admin.ID, Username: admin.Username, Role: authdomain.RoleAdmin}

	updated, err := svc.Update(ctx, actor, u.ID, UpdateUserCommand{Fullname: "John Doe", Role: authdomain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", updated.Fullname)
	assert.Equal(t, authdomain.RoleAdmin, updated.Role)
	assert.True(t, hasher.Compare(updated.PasswordHash, "Secret123"))

	updated, err = svc.Update(ctx, actor, u.ID, UpdateUserCommand{Password: "Changed99", Fullname: "John Doe", Role: authdomain.RoleUser})
	require.NoError(t, err)
	assert.True(t, hasher.Compare(updated.PasswordHash, "Changed99"))
	assert.Equal(t, "jdoe", updated.Username)
}

func TestUserService_SelfActionRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)
	admin := createUser(t, svc, "admin", authdomain.RoleAdmin)
	actor := &authdomain.Principal{UserID: admin.ID, Username: admin.Username, Role: authdomain.RoleAdmin}

	_, err := svc.Update(ctx, actor, admin.ID, UpdateUserCommand{Fullname: "x", Role: authdomain.RoleUser})
	assert.ErrorIs(t, err, domain.ErrSelfAction)

	err = svc.Delete(ctx, actor, admin.ID)
	assert.ErrorIs(t, err, domain.ErrSelfAction)

	exists, err := svc.CheckIfIDExists(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserService_DeleteAndNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)
	u := createUser(t, svc, "jdoe", authdomain.RoleUser)

	require.NoError(t, svc.Delete(ctx, nil, u.ID))
	_, err := svc.Get(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, nil, u.ID), domain.ErrNotFound)

	_, err = svc.Update(ctx, nil, 999, UpdateUserCommand{Fullname: "x", Role: authdomain.RoleUser})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	created, err := svc.EnsureAdmin(ctx, "", "Secret123", "")
	require.NoError(t, err)
	assert.False(t, created)

	created, err = svc.EnsureAdmin(ctx, "admin", "", "")
	require.NoError(t, err)
	assert.False(t, created)

	created, err = svc.EnsureAdmin(ctx, "admin", "Secret123", "")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "admin", "Secret123", "")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = svc.EnsureAdmin(ctx, "other", "weak", "")
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
}
