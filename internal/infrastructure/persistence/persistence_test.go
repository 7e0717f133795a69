package persistence

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/batchtrack/backend/internal/domain/catalog"
	"github.com/batchtrack/backend/internal/domain/identity"
	"github.com/batchtrack/backend/internal/domain/intake"
	"github.com/batchtrack/backend/internal/domain/production"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// Each test gets its own named shared-cache database so the connection
// pool sees one schema without leaking state between tests.
// TranslateError is on, same as the production connection, so constraint
// violations map onto the domain taxonomy identically.
func newTestDB(t *testing.T) *Database {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&intake.IntakeRecord{},
		&intake.IntakeHistory{},
		&production.ProductionPlan{},
		&production.ProductionBatch{},
		&production.PlanHistory{},
		&production.PrebatchRecord{},
		&catalog.Ingredient{},
		&catalog.IngredientReceipt{},
		&catalog.Sku{},
		&catalog.SkuStep{},
		&catalog.SkuAction{},
		&catalog.SkuPhase{},
		&catalog.SkuDestination{},
		&catalog.Plant{},
		&identity.User{},
	)
	require.NoError(t, err)

	d := &Database{DB: db}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return d
}
