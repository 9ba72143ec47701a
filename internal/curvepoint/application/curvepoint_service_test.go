package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/poseidon/internal/curvepoint/domain"
	curvepointmysql "github.com/wyfcoding/poseidon/internal/curvepoint/infrastructure/persistence/mysql"
	"github.com/wyfcoding/poseidon/pkg/db/dbtest"
	"github.com/wyfcoding/poseidon/pkg/mq"
)

func nullDecimal(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestCurvePointService_CreationDateIsKeptOnUpdate(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t, &curvepointmysql.CurvePointModel{})
	svc := NewCurvePointService(curvepointmysql.NewCurvePointRepository(gdb), mq.LogPublisher{}, nil)

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return created }

	p, err := svc.Create(ctx, nil, CurvePointCommand{CurveID: 3, Term: nullDecimal("1.5"), Value: nullDecimal("2.25")})
	require.NoError(t, err)
	require.NotNil(t, p.CreationDate)

	svc.now = func() time.Time { return created.Add(48 * time.Hour) }
	_, err = svc.Update(ctx, nil, p.ID, CurvePointCommand{CurveID: 4, Term: nullDecimal("2"), Value: decimal.NullDecimal{}})
	require.NoError(t, err)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.CurveID)
	assert.True(t, got.Term.Decimal.Equal(decimal.NewFromInt(2)))
	assert.False(t, got.Value.Valid)
	require.NotNil(t, got.CreationDate)
	assert.WithinDuration(t, created, *got.CreationDate, time.Second)
}

func TestCurvePointService_NotFound(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t, &curvepointmysql.CurvePointModel{})
	svc := NewCurvePointService(curvepointmysql.NewCurvePointRepository(gdb), nil, nil)

	_, err := svc.Get(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, nil, 1), domain.ErrNotFound)
}
