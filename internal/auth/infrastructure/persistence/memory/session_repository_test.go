package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/poseidon/internal/auth/domain"
)

func TestSessionRepository_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	s := &domain.Session{ID: "s1", Username: "jdoe", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "jdoe", got.Username)

	require.NoError(t, repo.Delete(ctx, "s1"))
	got, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRepository_CopiesFlashes(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	s := &domain.Session{ID: "s1", ExpiresAt: time.Now().Add(time.Hour)}
	s.Flashes = []domain.Flash{{Kind: domain.FlashError, Message: "boom"}}
	require.NoError(t, repo.Save(ctx, s))
	s.Flashes[0].Message = "mutated"

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "boom", got.Flashes[0].Message)
}

func TestSessionRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := NewSessionRepository()
	repo.now = func() time.Time { return now }

	err := repo.Save(ctx, &domain.Session{ID: "old", ExpiresAt: now})
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	require.NoError(t, repo.Save(ctx, &domain.Session{ID: "a", ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, repo.Save(ctx, &domain.Session{ID: "b", ExpiresAt: now.Add(time.Hour)}))
	assert.Equal(t, 2, repo.Len())

	now = now.Add(2 * time.Minute)
	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Save(ctx, &domain.Session{ID: "c", ExpiresAt: now.Add(time.Minute)}))
	now = now.Add(5 * time.Minute)
	assert.Equal(t, 1, repo.Sweep())
	assert.Equal(t, 1, repo.Len())
}
