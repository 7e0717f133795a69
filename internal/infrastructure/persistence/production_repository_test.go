package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batchtrack/backend/internal/domain/production"
	"github.com/batchtrack/backend/internal/domain/sequence"
	"github.com/batchtrack/backend/internal/domain/shared"
)

func newPlan(planID string, numBatches int) *production.ProductionPlan {
	plan := &production.ProductionPlan{
		PlanID:      planID,
		SkuID:       "SKU-100",
		SkuName:     "Strawberry Base",
		Plant:       "Mixing 1",
		TotalVolume: decimal.NewFromInt(1000),
		BatchSize:   decimal.NewFromInt(300),
		NumBatches:  numBatches,
		Status:      production.StatusPlanned,
		CreatedBy:   "planner1",
	}
	plan.TotalPlanVolume = production.PlannedVolume(numBatches, plan.BatchSize)
	plan.Batches = plan.SpawnBatches()
	return plan
}

func TestCreateWithBatchesPersistsAggregate(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPlanRepository(db)
	ctx := context.Background()

	plan := newPlan("plan-Mixing1-2026-08-28-001", 4)
	entry := plan.CreationEntry()
	require.NoError(t, repo.CreateWithBatches(ctx, plan, &entry))

	got, err := repo.FindByID(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, got.Batches, 4)
	for i, batch := range got.Batches {
		assert.Equal(t, fmt.Sprintf("plan-Mixing1-2026-08-28-001-%03d", i+1), batch.BatchID)
		assert.Equal(t, production.BatchStatusCreated, batch.Status)
		assert.Equal(t, plan.ID, batch.ProductionPlanID)
	}

	history, err := repo.FindHistory(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, production.ActionCreate, history[0].Action)
	assert.Nil(t, history[0].OldStatus)
	assert.Equal(t, production.StatusPlanned, history[0].NewStatus)
}

func TestCreateWithBatchesDuplicatePlanIDRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPlanRepository(db)
	ctx := context.Background()

	first := newPlan("plan-Mixing1-2026-08-28-001", 2)
	firstEntry := first.CreationEntry()
	require.NoError(t, repo.CreateWithBatches(ctx, first, &firstEntry))

	dup := newPlan("plan-Mixing1-2026-08-28-001", 2)
	dupEntry := dup.CreationEntry()
	err := repo.CreateWithBatches(ctx, dup, &dupEntry)
	assert.ErrorIs(t, err, shared.ErrIntegrityConflict)

	var batchCount, historyCount int64
	require.NoError(t, db.DB.Model(&production.ProductionBatch{}).Count(&batchCount).Error)
	require.NoError(t, db.DB.Model(&production.PlanHistory{}).Count(&historyCount).Error)
	assert.Equal(t, int64(2), batchCount)
	assert.Equal(t, int64(1), historyCount)
}

func TestMaxPlanIDScopedPerPlantPerDay(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPlanRepository(db)
	ctx := context.Background()

	for _, planID := range []string{
		"plan-Mixing1-2026-08-28-001",
		"plan-Mixing1-2026-08-28-002",
		"plan-Mixing2-2026-08-28-007", // other plant, outside scope
		"plan-Mixing1-2026-08-27-009", // other day, outside scope
	} {
		plan := newPlan(planID, 1)
		entry := plan.CreationEntry()
		require.NoError(t, repo.CreateWithBatches(ctx, plan, &entry))
	}

	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	scope := sequence.NewScope("plan", sequence.PlantKey("Mixing 1"), today)
	maxID, err := repo.MaxPlanID(ctx, scope.Pattern())
	require.NoError(t, err)
	assert.Equal(t, "plan-Mixing1-2026-08-28-002", maxID)
	assert.Equal(t, "plan-Mixing1-2026-08-28-003", scope.Next(maxID))
}

func TestCancellationCascadesToBatches(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPlanRepository(db)
	ctx := context.Background()

	plan := newPlan("plan-Mixing1-2026-08-28-001", 3)
	entry := plan.CreationEntry()
	require.NoError(t, repo.CreateWithBatches(ctx, plan, &entry))

	cancelEntry := plan.Cancel("Line down for maintenance", "supervisor1")
	require.NoError(t, repo.SaveCancellation(ctx, plan, &cancelEntry))

	got, err := repo.FindByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, production.StatusCancelled, got.Status)
	for _, batch := range got.Batches {
		assert.Equal(t, production.StatusCancelled, batch.Status)
	}

	// One cancel row for the plan, none per batch.
	history, err := repo.FindHistory(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, production.ActionCancel, history[0].Action)
	require.NotNil(t, history[0].OldStatus)
	assert.Equal(t, production.StatusPlanned, *history[0].OldStatus)
	assert.Equal(t, "Line down for maintenance", history[0].Remarks)
	assert.Equal(t, "supervisor1", history[0].ChangedBy)
}

func TestUpdateWithoutEntryWritesNoHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPlanRepository(db)
	ctx := context.Background()

	plan := newPlan("plan-Mixing1-2026-08-28-001", 1)
	entry := plan.CreationEntry()
	require.NoError(t, repo.CreateWithBatches(ctx, plan, &entry))

	// Field-only update: no status change, nil entry.
	plan.FlavourHouse = true
	require.NoError(t, repo.Update(ctx, plan, nil))

	history, err := repo.FindHistory(ctx, plan.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestDeletePlanRetainsHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPlanRepository(db)
	ctx := context.Background()

	plan := newPlan("plan-Mixing1-2026-08-28-001", 2)
	entry := plan.CreationEntry()
	require.NoError(t, repo.CreateWithBatches(ctx, plan, &entry))
	planDBID := plan.ID

	cancelEntry := plan.Cancel("Cancelled before delete", "supervisor1")
	require.NoError(t, repo.SaveCancellation(ctx, plan, &cancelEntry))

	require.NoError(t, repo.Delete(ctx, planDBID))

	_, err := repo.FindByID(ctx, planDBID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	var batchCount int64
	require.NoError(t, db.DB.Model(&production.ProductionBatch{}).
		Where("production_plan_id = ?", planDBID).
		Count(&batchCount).Error)
	assert.Zero(t, batchCount)

	// Unlike the intake lineage, plan history outlives its plan.
	history, err := repo.FindHistory(ctx, planDBID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestPrebatchDuplicateRecordIDRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPrebatchRepository(db)
	ctx := context.Background()

	record := &production.PrebatchRecord{
		BatchRecordID: "plan-Mixing1-2026-08-28-001-RE1-1of4",
		PlanID:        "plan-Mixing1-2026-08-28-001",
		ReCode:        "RE1",
		PackageNo:     1,
		TotalPackages: 4,
		NetVolume:     decimal.NewFromInt(25),
	}
	require.NoError(t, repo.Create(ctx, record))

	dup := &production.PrebatchRecord{
		BatchRecordID: "plan-Mixing1-2026-08-28-001-RE1-1of4",
		PlanID:        "plan-Mixing1-2026-08-28-001",
	}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, shared.ErrIntegrityConflict)
}
