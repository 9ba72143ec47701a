package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/trade/domain"
	trademysql "github.com/wyfcoding/poseidon/internal/trade/infrastructure/persistence/mysql"
	"github.com/wyfcoding/poseidon/pkg/db/dbtest"
	"github.com/wyfcoding/poseidon/pkg/mq"
)

func TestTradeService_CRUD(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t, &trademysql.TradeModel{})
	svc := NewTradeService(trademysql.NewTradeRepository(gdb), mq.LogPublisher{}, nil)
	actor := &authdomain.Principal{UserID: 1, Username: "trader1", Role: authdomain.RoleUser}

	tr, err := svc.Create(ctx, actor, TradeCommand{
		Account:     "ACC-1",
		Type:        "BUY",
		BuyQuantity: decimal.RequireFromString("100.25"),
		BuyPrice:    decimal.NewNullDecimal(decimal.RequireFromString("1.5")),
	})
	require.NoError(t, err)
	assert.Equal(t, "trader1", tr.CreationName)

	got, err := svc.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.True(t, got.BuyQuantity.Equal(decimal.RequireFromString("100.25")))
	assert.False(t, got.SellQuantity.Valid)

	_, err = svc.Update(ctx, actor, tr.ID, TradeCommand{
		Account:      "ACC-1",
		Type:         "SELL",
		BuyQuantity:  decimal.NewFromInt(5),
		SellQuantity: decimal.NewNullDecimal(decimal.NewFromInt(5)),
	})
	require.NoError(t, err)

	got, err = svc.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, "SELL", got.Type)
	assert.Equal(t, "trader1", got.RevisionName)
	assert.False(t, got.BuyPrice.Valid)

	require.NoError(t, svc.Delete(ctx, actor, tr.ID))
	_, err = svc.Get(ctx, tr.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
