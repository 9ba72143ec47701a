package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/rating/domain"
	ratingmysql "github.com/wyfcoding/poseidon/internal/rating/infrastructure/persistence/mysql"
	"github.com/wyfcoding/poseidon/pkg/db/dbtest"
	"github.com/wyfcoding/poseidon/pkg/metrics"
	"github.com/wyfcoding/poseidon/pkg/mq"
)

func newRatingService(t *testing.T) *RatingService {
	gdb := dbtest.Open(t, &ratingmysql.RatingModel{})
	return NewRatingService(ratingmysql.NewRatingRepository(gdb), mq.LogPublisher{}, metrics.New("test"))
}

func intPtr(n int) *int { return &n }

func TestRatingService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := newRatingService(t)
	actor := &authdomain.Principal{UserID: 1, Username: "admin", Role: authdomain.RoleAdmin}

	r, err := svc.Create(ctx, actor, RatingCommand{MoodysRating: "Aaa", SandPRating: "AAA", FitchRating: "AAA", OrderNumber: intPtr(10)})
	require.NoError(t, err)
	require.NotZero(t, r.ID)

	got, err := svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aaa", got.MoodysRating)
	require.NotNil(t, got.OrderNumber)
	assert.Equal(t, 10, *got.OrderNumber)

	updated, err := svc.Update(ctx, actor, r.ID, RatingCommand{MoodysRating: "Baa1", SandPRating: "BBB+", FitchRating: "BBB"})
	require.NoError(t, err)
	assert.Equal(t, r.ID, updated.ID)

	got, err = svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Baa1", got.MoodysRating)
	assert.Nil(t, got.OrderNumber)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, actor, r.ID))
	exists, err := svc.CheckIfIDExists(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRatingService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newRatingService(t)

	_, err := svc.Get(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Update(ctx, nil, 42, RatingCommand{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, nil, 42), domain.ErrNotFound)
}

func TestRatingService_ListOrderedByID(t *testing.T) {
	ctx := context.Background()
	svc := newRatingService(t)
	for _, m := range []string{"Aaa", "Aa1", "A1"} {
		_, err := svc.Create(ctx, nil, RatingCommand{MoodysRating: m})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Less(t, list[0].ID, list[1].ID)
	assert.Less(t, list[1].ID, list[2].ID)
}
