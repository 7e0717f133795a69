package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batchtrack/backend/internal/domain/intake"
	"github.com/batchtrack/backend/internal/domain/sequence"
	"github.com/batchtrack/backend/internal/domain/shared"
)

func newIntakeRecord(lotID string) *intake.IntakeRecord {
	return &intake.IntakeRecord{
		IntakeLotID: lotID,
		LotID:       "SUP-LOT-7",
		MatSAPCode:  "300001",
		IntakeVol:   decimal.NewFromInt(500),
		RemainVol:   decimal.NewFromInt(500),
		Status:      intake.StatusActive,
		IntakeBy:    "operator1",
	}
}

func TestIntakeCreatePersistsHistoryAtomically(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormIntakeRepository(db)
	ctx := context.Background()

	record := newIntakeRecord("intake-2026-08-28-001")
	entry := record.CreationEntry()
	require.NoError(t, repo.Create(ctx, record, &entry))
	require.NotZero(t, record.ID)

	got, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	require.Len(t, got.History, 1)
	assert.Equal(t, intake.ActionCreated, got.History[0].Action)
	assert.Nil(t, got.History[0].OldStatus)
	assert.Equal(t, intake.StatusActive, got.History[0].NewStatus)
	assert.Equal(t, "operator1", got.History[0].ChangedBy)
}

func TestIntakeDuplicateLotIDIsIntegrityConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormIntakeRepository(db)
	ctx := context.Background()

	first := newIntakeRecord("intake-2026-08-28-001")
	firstEntry := first.CreationEntry()
	require.NoError(t, repo.Create(ctx, first, &firstEntry))

	dup := newIntakeRecord("intake-2026-08-28-001")
	dupEntry := dup.CreationEntry()
	err := repo.Create(ctx, dup, &dupEntry)
	assert.ErrorIs(t, err, shared.ErrIntegrityConflict)

	// The failed create must not have left an orphan history row.
	var count int64
	require.NoError(t, db.DB.Model(&intake.IntakeHistory{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIntakeMaxLotIDScoping(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormIntakeRepository(db)
	ctx := context.Background()

	today := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	scope := sequence.NewScope("intake", "", today)

	for _, lotID := range []string{
		"intake-2026-08-27-005", // previous day, outside scope
		"intake-2026-08-28-001",
		"intake-2026-08-28-003",
	} {
		rec := newIntakeRecord(lotID)
		entry := rec.CreationEntry()
		require.NoError(t, repo.Create(ctx, rec, &entry))
	}

	maxID, err := repo.MaxLotID(ctx, scope.Pattern())
	require.NoError(t, err)
	assert.Equal(t, "intake-2026-08-28-003", maxID)
	assert.Equal(t, "intake-2026-08-28-004", scope.Next(maxID))
}

func TestIntakeMaxLotIDEmptyScope(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormIntakeRepository(db)
	ctx := context.Background()

	scope := sequence.NewScope("intake", "", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))
	maxID, err := repo.MaxLotID(ctx, scope.Pattern())
	require.NoError(t, err)
	assert.Empty(t, maxID)
	assert.Equal(t, "intake-2026-08-28-001", scope.Next(maxID))
}

func TestIntakeNumbersNotReusedAfterDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormIntakeRepository(db)
	ctx := context.Background()

	scope := sequence.NewScope("intake", "", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))

	var ids []uint
	for i := 1; i <= 3; i++ {
		maxID, err := repo.MaxLotID(ctx, scope.Pattern())
		require.NoError(t, err)
		rec := newIntakeRecord(scope.Next(maxID))
		entry := rec.CreationEntry()
		require.NoError(t, repo.Create(ctx, rec, &entry))
		ids = append(ids, rec.ID)
	}

	// Deleting the earlier records does not free their numbers.
	require.NoError(t, repo.Delete(ctx, ids[0]))
	require.NoError(t, repo.Delete(ctx, ids[1]))

	maxID, err := repo.MaxLotID(ctx, scope.Pattern())
	require.NoError(t, err)
	assert.Equal(t, "intake-2026-08-28-004", scope.Next(maxID))
}

func TestIntakeUpdateAppendsHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormIntakeRepository(db)
	ctx := context.Background()

	record := newIntakeRecord("intake-2026-08-28-001")
	entry := record.CreationEntry()
	require.NoError(t, repo.Create(ctx, record, &entry))

	oldStatus := record.Status
	newStatus := intake.StatusConsumed
	record.Status = newStatus
	record.EditBy = "operator2"
	updateEntry := record.UpdateEntry(oldStatus, &newStatus, "operator2")
	require.NoError(t, repo.Update(ctx, record, &updateEntry))

	got, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	require.Len(t, got.History, 2)

	var statusChange *intake.IntakeHistory
	for i := range got.History {
		if got.History[i].Action == intake.ActionStatusChange {
			statusChange = &got.History[i]
		}
	}
	require.NotNil(t, statusChange)
	require.NotNil(t, statusChange.OldStatus)
	assert.Equal(t, intake.StatusActive, *statusChange.OldStatus)
	assert.Equal(t, intake.StatusConsumed, statusChange.NewStatus)
}

func TestIntakeDeleteCascadesHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormIntakeRepository(db)
	ctx := context.Background()

	record := newIntakeRecord("intake-2026-08-28-001")
	entry := record.CreationEntry()
	require.NoError(t, repo.Create(ctx, record, &entry))

	require.NoError(t, repo.Delete(ctx, record.ID))

	_, err := repo.FindByID(ctx, record.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	var count int64
	require.NoError(t, db.DB.Model(&intake.IntakeHistory{}).
		Where("intake_record_id = ?", record.ID).
		Count(&count).Error)
	assert.Zero(t, count)
}

func TestIntakeDeleteMissingRecord(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormIntakeRepository(db)

	err := repo.Delete(context.Background(), 9999)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
