// Package dbtest 为测试提供独立的 SQLite 内存库
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wyfcoding/poseidon/pkg/db"
)

var seq atomic.Int64

// Open 打开一个仅当前测试可见的内存库并迁移给定模型，测试结束时自动关闭
func Open(t testing.TB, models ...any) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	database, err := db.Init(db.Config{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	if len(models) > 0 {
		require.NoError(t, database.AutoMigrate(models...))
	}
	return database.DB
}
