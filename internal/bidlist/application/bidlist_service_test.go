package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/bidlist/domain"
	bidlistmysql "github.com/wyfcoding/poseidon/internal/bidlist/infrastructure/persistence/mysql"
	"github.com/wyfcoding/poseidon/pkg/db/dbtest"
	"github.com/wyfcoding/poseidon/pkg/mq"
)

func TestBidListService_AuditFields(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t, &bidlistmysql.BidListModel{})
	svc := NewBidListService(bidlistmysql.NewBidListRepository(gdb), mq.LogPublisher{}, nil)

	creator := &authdomain.Principal{UserID: 1, Username: "alice", Role: authdomain.RoleUser}
	reviser := &authdomain.Principal{UserID: 2, Username: "bob", Role: authdomain.RoleAdmin}

	bid, err := svc.Create(ctx, creator, BidListCommand{
		Account:     "ACC-1",
		Type:        "FX",
		BidQuantity: decimal.NewNullDecimal(decimal.RequireFromString("10.5")),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", bid.CreationName)
	assert.NotNil(t, bid.CreationDate)
	assert.Empty(t, bid.RevisionName)

	_, err = svc.Update(ctx, reviser, bid.ID, BidListCommand{
		Account:     "ACC-2",
		Type:        "FX",
		BidQuantity: decimal.NewNullDecimal(decimal.NewFromInt(20)),
		Commentary:  "revised",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, bid.ID)
	require.NoError(t, err)
	assert.Equal(t, "ACC-2", got.Account)
	assert.Equal(t, "revised", got.Commentary)
	assert.True(t, got.BidQuantity.Decimal.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "alice", got.CreationName)
	assert.Equal(t, "bob", got.RevisionName)
	require.NotNil(t, got.RevisionDate)
	assert.WithinDuration(t, time.Now(), *got.RevisionDate, time.Minute)
}

func TestBidListService_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t, &bidlistmysql.BidListModel{})
	svc := NewBidListService(bidlistmysql.NewBidListRepository(gdb), nil, nil)

	assert.ErrorIs(t, svc.Delete(ctx, nil, 7), domain.ErrNotFound)
	exists, err := svc.CheckIfIDExists(ctx, 7)
	require.NoError(t, err)
	assert.False(t, exists)
}
