package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/auth/infrastructure/persistence/memory"
	userdomain "github.com/wyfcoding/poseidon/internal/user/domain"
	usermysql "github.com/wyfcoding/poseidon/internal/user/infrastructure/persistence/mysql"
	"github.com/wyfcoding/poseidon/pkg/db/dbtest"
	"github.com/wyfcoding/poseidon/pkg/metrics"
)

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *recordingPublisher) Publish(_ context.Context, topic, _ string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	return nil
}

type authFixture struct {
	svc      *AuthService
	users    userdomain.UserRepository
	sessions *memory.SessionRepository
	pub      *recordingPublisher
	now      time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gdb := dbtest.Open(t, &usermysql.UserModel{})
	users := usermysql.NewUserRepository(gdb)
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)
	require.NoError(t, users.Save(context.Background(), userdomain.NewUser("admin", hash, "Administrator", domain.RoleAdmin)))
	require.NoError(t, users.Save(context.Background(), userdomain.NewUser("jdoe", hash, "John Doe", domain.Role("TRADER"))))

	f := &authFixture{
		users:    users,
		sessions: memory.NewSessionRepository(),
		pub:      &recordingPublisher{},
		now:      time.Now(),
	}
	f.svc = NewAuthService(users, f.sessions, hasher, f.pub, metrics.New("test"), 30*time.Minute)
	f.svc.now = func() time.Time { return f.now }
	return f
}

func TestAuthService_LoginSuccess(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	session, err := f.svc.Login(ctx, "admin", "Secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, f.now.Add(30*time.Minute), session.ExpiresAt)
	assert.Contains(t, f.pub.topics, domain.UserLoggedInEventType)

	_, principal, err := f.svc.Resolve(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, principal)
	assert.Equal(t, domain.RoleAdmin, principal.Role)
	assert.Equal(t, "Administrator", principal.Fullname)
}

func TestAuthService_LoginFailure(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	_, err := f.svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, "nobody", "Secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	assert.Equal(t, 0, f.sessions.Len())
	assert.Contains(t, f.pub.topics, domain.UserLoginFailedEventType)
}

func TestAuthService_UnknownStoredRoleMapsToUser(t *testing.T) {
	f := newAuthFixture(t)

	principal, _, err := f.svc.LoadPrincipal(context.Background(), "jdoe")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, principal.Role)

	_, _, err = f.svc.LoadPrincipal(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthService_ResolveRefreshesAndExpires(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	session, err := f.svc.Login(ctx, "admin", "Secret123")
	require.NoError(t, err)

	f.now = f.now.Add(20 * time.Minute)
	refreshed, principal, err := f.svc.Resolve(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, principal)
	assert.Equal(t, f.now.Add(30*time.Minute), refreshed.ExpiresAt)

	f.now = f.now.Add(31 * time.Minute)
	_, principal, err = f.svc.Resolve(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, principal)
}

func TestAuthService_ResolveDropsSessionOfDeletedUser(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	session, err := f.svc.Login(ctx, "jdoe", "Secret123")
	require.NoError(t, err)

	u, err := f.users.FindByUsername(ctx, "jdoe")
	require.NoError(t, err)
	require.NoError(t, f.users.DeleteByID(ctx, u.ID))

	s, principal, err := f.svc.Resolve(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Nil(t, principal)
	assert.Equal(t, 0, f.sessions.Len())
}

func TestAuthService_LogoutAndFlashes(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	session, err := f.svc.Login(ctx, "admin", "Secret123")
	require.NoError(t, err)

	require.NoError(t, f.svc.AddFlash(ctx, session, domain.FlashError, "nope"))
	flashes := f.svc.PopFlashes(ctx, session)
	require.Len(t, flashes, 1)
	assert.Equal(t, "nope", flashes[0].Message)
	assert.Empty(t, f.svc.PopFlashes(ctx, session))

	require.NoError(t, f.svc.Logout(ctx, session.ID))
	_, principal, err := f.svc.Resolve(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, principal)
	assert.Contains(t, f.pub.topics, domain.UserLoggedOutEventType)
	assert.NoError(t, f.svc.Logout(ctx, ""))
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)
	assert.True(t, h.Compare(hash, "Secret123"))
	assert.False(t, h.Compare(hash, "secret123"))
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
}
