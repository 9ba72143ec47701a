package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/poseidon/internal/rulename/domain"
	rulenamemysql "github.com/wyfcoding/poseidon/internal/rulename/infrastructure/persistence/mysql"
	"github.com/wyfcoding/poseidon/pkg/db/dbtest"
	"github.com/wyfcoding/poseidon/pkg/mq"
)

func TestRuleNameService_CRUD(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t, &rulenamemysql.RuleNameModel{})
	svc := NewRuleNameService(rulenamemysql.NewRuleNameRepository(gdb), mq.LogPublisher{}, nil)

	cmd := RuleNameCommand{
		Name:        "limit",
		Description: "position limit",
		JSON:        `{"max":100}`,
		Template:    "tmpl",
		SQLStr:      "SELECT 1",
		SQLPart:     "WHERE 1=1",
	}
	r, err := svc.Create(ctx, nil, cmd)
	require.NoError(t, err)

	got, err := svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, `{"max":100}`, got.JSON)
	assert.Equal(t, "SELECT 1", got.SQLStr)
	assert.Equal(t, "WHERE 1=1", got.SQLPart)

	cmd.Description = "changed"
	cmd.SQLPart = ""
	_, err = svc.Update(ctx, nil, r.ID, cmd)
	require.NoError(t, err)

	got, err = svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Description)
	assert.Empty(t, got.SQLPart)

	require.NoError(t, svc.Delete(ctx, nil, r.ID))
	_, err = svc.Get(ctx, r.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
