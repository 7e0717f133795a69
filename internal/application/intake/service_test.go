package intake

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/batchtrack/backend/internal/domain/intake"
	"github.com/batchtrack/backend/internal/domain/shared"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*intake.IntakeRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*intake.IntakeRecord), args.Error(1)
}

func (m *mockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]intake.IntakeRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]intake.IntakeRecord), args.Error(1)
}

func (m *mockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) MaxLotID(ctx context.Context, pattern string) (string, error) {
	args := m.Called(ctx, pattern)
	return args.String(0), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, record *intake.IntakeRecord, entry *intake.IntakeHistory) error {
	args := m.Called(ctx, record, entry)
	return args.Error(0)
}

func (m *mockRepository) Update(ctx context.Context, record *intake.IntakeRecord, entry *intake.IntakeHistory) error {
	args := m.Called(ctx, record, entry)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testDay = time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

func TestCreateGeneratesSequentialLotID(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, fixedClock{now: testDay})

	repo.On("MaxLotID", mock.Anything, "intake-2026-08-28-%").Return("intake-2026-08-28-007", nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *intake.IntakeRecord) bool {
		return r.IntakeLotID == "intake-2026-08-28-008"
	}), mock.MatchedBy(func(e *intake.IntakeHistory) bool {
		return e.Action == intake.ActionCreated && e.OldStatus == nil
	})).Return(nil)

	resp, err := svc.Create(context.Background(), CreateIntakeRequest{
		LotID:      "SUP-1",
		MatSAPCode: "300001",
		IntakeVol:  decimal.NewFromInt(500),
		IntakeBy:   "operator1",
	})
	require.NoError(t, err)
	assert.Equal(t, "intake-2026-08-28-008", resp.IntakeLotID)
	// Remaining volume starts equal to the intake volume.
	assert.True(t, resp.RemainVol.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, intake.StatusActive, resp.Status)
	repo.AssertExpectations(t)
}

func TestCreateFirstOfDayStartsAtOne(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, fixedClock{now: testDay})

	repo.On("MaxLotID", mock.Anything, "intake-2026-08-28-%").Return("", nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *intake.IntakeRecord) bool {
		return r.IntakeLotID == "intake-2026-08-28-001"
	}), mock.Anything).Return(nil)

	resp, err := svc.Create(context.Background(), CreateIntakeRequest{
		LotID:      "SUP-1",
		MatSAPCode: "300001",
		IntakeVol:  decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.Equal(t, "intake-2026-08-28-001", resp.IntakeLotID)
	// No actor supplied, the system actor is recorded.
	assert.Equal(t, shared.SystemActor, resp.IntakeBy)
}

func TestCreateSurfacesIntegrityConflict(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, fixedClock{now: testDay})

	repo.On("MaxLotID", mock.Anything, mock.Anything).Return("intake-2026-08-28-002", nil)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(shared.ErrIntegrityConflict)

	_, err := svc.Create(context.Background(), CreateIntakeRequest{
		LotID:      "SUP-1",
		MatSAPCode: "300001",
		IntakeVol:  decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, shared.ErrIntegrityConflict)
}

func existingRecord() *intake.IntakeRecord {
	rec := &intake.IntakeRecord{
		IntakeLotID: "intake-2026-08-28-001",
		LotID:       "SUP-1",
		MatSAPCode:  "300001",
		IntakeVol:   decimal.NewFromInt(500),
		RemainVol:   decimal.NewFromInt(500),
		Status:      intake.StatusActive,
		IntakeBy:    "operator1",
	}
	rec.ID = 1
	return rec
}

func TestUpdateWithStatusChange(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil)

	repo.On("FindByID", mock.Anything, uint(1)).Return(existingRecord(), nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(r *intake.IntakeRecord) bool {
		return r.Status == intake.StatusConsumed && r.IntakeLotID == "intake-2026-08-28-001"
	}), mock.MatchedBy(func(e *intake.IntakeHistory) bool {
		return e.Action == intake.ActionStatusChange &&
			e.OldStatus != nil && *e.OldStatus == intake.StatusActive &&
			e.NewStatus == intake.StatusConsumed &&
			e.ChangedBy == "operator2"
	})).Return(nil)

	newStatus := intake.StatusConsumed
	_, err := svc.Update(context.Background(), 1, UpdateIntakeRequest{
		Status: &newStatus,
		EditBy: "operator2",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateWithoutStatusIsModified(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil)

	repo.On("FindByID", mock.Anything, uint(1)).Return(existingRecord(), nil)
	repo.On("Update", mock.Anything, mock.Anything, mock.MatchedBy(func(e *intake.IntakeHistory) bool {
		return e.Action == intake.ActionModified
	})).Return(nil)

	loc := "WH-B2"
	_, err := svc.Update(context.Background(), 1, UpdateIntakeRequest{
		WarehouseLocation: &loc,
		EditBy:            "operator2",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateSameStatusIsModified(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil)

	repo.On("FindByID", mock.Anything, uint(1)).Return(existingRecord(), nil)
	repo.On("Update", mock.Anything, mock.Anything, mock.MatchedBy(func(e *intake.IntakeHistory) bool {
		return e.Action == intake.ActionModified
	})).Return(nil)

	// Payload carries the status but it does not differ from the stored one.
	sameStatus := intake.StatusActive
	_, err := svc.Update(context.Background(), 1, UpdateIntakeRequest{
		Status: &sameStatus,
		EditBy: "operator2",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateMissingRecord(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil)

	repo.On("FindByID", mock.Anything, uint(99)).Return(nil, shared.ErrNotFound)

	_, err := svc.Update(context.Background(), 99, UpdateIntakeRequest{})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil)

	repo.On("Delete", mock.Anything, uint(1)).Return(nil)
	require.NoError(t, svc.Delete(context.Background(), 1))
	repo.AssertExpectations(t)
}

func TestList(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil)

	records := []intake.IntakeRecord{*existingRecord()}
	repo.On("Count", mock.Anything).Return(int64(1), nil)
	repo.On("FindAll", mock.Anything, mock.Anything).Return(records, nil)

	page, err := svc.List(context.Background(), shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "intake-2026-08-28-001", page.Items[0].IntakeLotID)
}
