package production

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/batchtrack/backend/internal/domain/production"
	"github.com/batchtrack/backend/internal/domain/shared"
)

type mockPlanRepository struct {
	mock.Mock
}

func (m *mockPlanRepository) FindByID(ctx context.Context, id uint) (*production.ProductionPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.ProductionPlan), args.Error(1)
}

func (m *mockPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]production.ProductionPlan, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]production.ProductionPlan), args.Error(1)
}

func (m *mockPlanRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPlanRepository) MaxPlanID(ctx context.Context, pattern string) (string, error) {
	args := m.Called(ctx, pattern)
	return args.String(0), args.Error(1)
}

func (m *mockPlanRepository) FindHistory(ctx context.Context, planDBID uint) ([]production.PlanHistory, error) {
	args := m.Called(ctx, planDBID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]production.PlanHistory), args.Error(1)
}

func (m *mockPlanRepository) CreateWithBatches(ctx context.Context, plan *production.ProductionPlan, entry *production.PlanHistory) error {
	args := m.Called(ctx, plan, entry)
	return args.Error(0)
}

func (m *mockPlanRepository) Update(ctx context.Context, plan *production.ProductionPlan, entry *production.PlanHistory) error {
	args := m.Called(ctx, plan, entry)
	return args.Error(0)
}

func (m *mockPlanRepository) SaveCancellation(ctx context.Context, plan *production.ProductionPlan, entry *production.PlanHistory) error {
	args := m.Called(ctx, plan, entry)
	return args.Error(0)
}

func (m *mockPlanRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBatchRepository struct {
	mock.Mock
}

func (m *mockBatchRepository) FindByID(ctx context.Context, id uint) (*production.ProductionBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.ProductionBatch), args.Error(1)
}

func (m *mockBatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]production.ProductionBatch, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]production.ProductionBatch), args.Error(1)
}

func (m *mockBatchRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBatchRepository) Save(ctx context.Context, batch *production.ProductionBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

type mockPrebatchRepository struct {
	mock.Mock
}

func (m *mockPrebatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]production.PrebatchRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]production.PrebatchRecord), args.Error(1)
}

func (m *mockPrebatchRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPrebatchRepository) Create(ctx context.Context, record *production.PrebatchRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testDay = time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

func newTestService(plans *mockPlanRepository, batches *mockBatchRepository, prebatches *mockPrebatchRepository) *Service {
	return NewService(plans, batches, prebatches, fixedClock{now: testDay})
}

func TestCreatePlanDerivesBatchesFromVolume(t *testing.T) {
	plans := new(mockPlanRepository)
	svc := newTestService(plans, new(mockBatchRepository), new(mockPrebatchRepository))

	plans.On("MaxPlanID", mock.Anything, "plan-Mixing1-2026-08-28-%").Return("", nil)
	plans.On("CreateWithBatches", mock.Anything, mock.MatchedBy(func(p *production.ProductionPlan) bool {
		return p.PlanID == "plan-Mixing1-2026-08-28-001" &&
			p.NumBatches == 4 &&
			len(p.Batches) == 4 &&
			p.Batches[0].BatchID == "plan-Mixing1-2026-08-28-001-001" &&
			p.Batches[3].BatchID == "plan-Mixing1-2026-08-28-001-004" &&
			p.TotalPlanVolume.Equal(decimal.NewFromInt(1200))
	}), mock.MatchedBy(func(e *production.PlanHistory) bool {
		return e.Action == production.ActionCreate && e.OldStatus == nil
	})).Return(nil)

	resp, err := svc.CreatePlan(context.Background(), CreatePlanRequest{
		SkuID:       "SKU-100",
		Plant:       "Mixing 1",
		TotalVolume: decimal.NewFromInt(1000),
		BatchSize:   decimal.NewFromInt(300),
		CreatedBy:   "planner1",
	})
	require.NoError(t, err)
	// Rounding up to whole batches overshoots the requested volume.
	assert.True(t, resp.TotalPlanVolume.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, production.StatusPlanned, resp.Status)
	plans.AssertExpectations(t)
}

func TestCreatePlanExplicitBatchCountWins(t *testing.T) {
	plans := new(mockPlanRepository)
	svc := newTestService(plans, new(mockBatchRepository), new(mockPrebatchRepository))

	plans.On("MaxPlanID", mock.Anything, mock.Anything).Return("plan-Mixing1-2026-08-28-002", nil)
	plans.On("CreateWithBatches", mock.Anything, mock.MatchedBy(func(p *production.ProductionPlan) bool {
		return p.PlanID == "plan-Mixing1-2026-08-28-003" && p.NumBatches == 2
	}), mock.Anything).Return(nil)

	resp, err := svc.CreatePlan(context.Background(), CreatePlanRequest{
		SkuID:       "SKU-100",
		Plant:       "Mixing 1",
		TotalVolume: decimal.NewFromInt(1000),
		BatchSize:   decimal.NewFromInt(300),
		NumBatches:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.NumBatches)
}

func TestCreatePlanWithoutPlantUsesUnknownScope(t *testing.T) {
	plans := new(mockPlanRepository)
	svc := newTestService(plans, new(mockBatchRepository), new(mockPrebatchRepository))

	plans.On("MaxPlanID", mock.Anything, "plan-Unknown-2026-08-28-%").Return("", nil)
	plans.On("CreateWithBatches", mock.Anything, mock.MatchedBy(func(p *production.ProductionPlan) bool {
		return p.PlanID == "plan-Unknown-2026-08-28-001"
	}), mock.Anything).Return(nil)

	_, err := svc.CreatePlan(context.Background(), CreatePlanRequest{
		SkuID:      "SKU-100",
		BatchSize:  decimal.NewFromInt(300),
		NumBatches: 1,
	})
	require.NoError(t, err)
	plans.AssertExpectations(t)
}

func TestCreatePlanRejectsUnresolvableBatchCount(t *testing.T) {
	plans := new(mockPlanRepository)
	svc := newTestService(plans, new(mockBatchRepository), new(mockPrebatchRepository))

	_, err := svc.CreatePlan(context.Background(), CreatePlanRequest{
		SkuID: "SKU-100",
	})
	require.Error(t, err)
	plans.AssertNotCalled(t, "CreateWithBatches", mock.Anything, mock.Anything, mock.Anything)
}

func activePlan() *production.ProductionPlan {
	plan := &production.ProductionPlan{
		PlanID:     "plan-Mixing1-2026-08-28-001",
		SkuID:      "SKU-100",
		Plant:      "Mixing 1",
		BatchSize:  decimal.NewFromInt(300),
		NumBatches: 2,
		Status:     production.StatusPlanned,
	}
	plan.ID = 10
	plan.Batches = []production.ProductionBatch{
		{BatchID: "plan-Mixing1-2026-08-28-001-001", Status: production.BatchStatusCreated},
		{BatchID: "plan-Mixing1-2026-08-28-001-002", Status: production.BatchStatusCreated},
	}
	return plan
}

func TestUpdatePlanStatusChangeWritesHistory(t *testing.T) {
	plans := new(mockPlanRepository)
	svc := newTestService(plans, new(mockBatchRepository), new(mockPrebatchRepository))

	plans.On("FindByID", mock.Anything, uint(10)).Return(activePlan(), nil)
	plans.On("Update", mock.Anything, mock.Anything, mock.MatchedBy(func(e *production.PlanHistory) bool {
		return e != nil && e.Action == production.ActionUpdate &&
			e.OldStatus != nil && *e.OldStatus == production.StatusPlanned &&
			e.NewStatus == "InProgress"
	})).Return(nil)

	status := "InProgress"
	_, err := svc.UpdatePlan(context.Background(), 10, UpdatePlanRequest{
		Status:    &status,
		UpdatedBy: "planner1",
	})
	require.NoError(t, err)
	plans.AssertExpectations(t)
}

func TestUpdatePlanFieldOnlySkipsHistory(t *testing.T) {
	plans := new(mockPlanRepository)
	svc := newTestService(plans, new(mockBatchRepository), new(mockPrebatchRepository))

	plans.On("FindByID", mock.Anything, uint(10)).Return(activePlan(), nil)
	plans.On("Update", mock.Anything, mock.Anything, (*production.PlanHistory)(nil)).Return(nil)

	done := true
	_, err := svc.UpdatePlan(context.Background(), 10, UpdatePlanRequest{
		Done:      &done,
		UpdatedBy: "planner1",
	})
	require.NoError(t, err)
	plans.AssertExpectations(t)
}

func TestCancelPlanCascades(t *testing.T) {
	plans := new(mockPlanRepository)
	svc := newTestService(plans, new(mockBatchRepository), new(mockPrebatchRepository))

	plans.On("FindByID", mock.Anything, uint(10)).Return(activePlan(), nil)
	plans.On("SaveCancellation", mock.Anything, mock.MatchedBy(func(p *production.ProductionPlan) bool {
		if p.Status != production.StatusCancelled {
			return false
		}
		for _, b := range p.Batches {
			if b.Status != production.StatusCancelled {
				return false
			}
		}
		return true
	}), mock.MatchedBy(func(e *production.PlanHistory) bool {
		return e.Action == production.ActionCancel && e.Remarks == "Line down" && e.ChangedBy == "supervisor1"
	})).Return(nil)

	resp, err := svc.CancelPlan(context.Background(), 10, CancelPlanRequest{
		Remarks:     "Line down",
		CancelledBy: "supervisor1",
	})
	require.NoError(t, err)
	assert.Equal(t, production.StatusCancelled, resp.Status)
	plans.AssertExpectations(t)
}

func TestCancelAlreadyCancelledPlan(t *testing.T) {
	plans := new(mockPlanRepository)
	svc := newTestService(plans, new(mockBatchRepository), new(mockPrebatchRepository))

	cancelled := activePlan()
	cancelled.Status = production.StatusCancelled
	plans.On("FindByID", mock.Anything, uint(10)).Return(cancelled, nil)

	_, err := svc.CancelPlan(context.Background(), 10, CancelPlanRequest{})
	assert.ErrorIs(t, err, shared.ErrInvalidState)
	plans.AssertNotCalled(t, "SaveCancellation", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBatchTogglesFlags(t *testing.T) {
	batches := new(mockBatchRepository)
	svc := newTestService(new(mockPlanRepository), batches, new(mockPrebatchRepository))

	batch := &production.ProductionBatch{
		BatchID: "plan-Mixing1-2026-08-28-001-001",
		Status:  production.BatchStatusCreated,
	}
	batch.ID = 5
	batches.On("FindByID", mock.Anything, uint(5)).Return(batch, nil)
	batches.On("Save", mock.Anything, mock.MatchedBy(func(b *production.ProductionBatch) bool {
		return b.SPP && b.Status == "InProgress"
	})).Return(nil)

	spp := true
	status := "InProgress"
	resp, err := svc.UpdateBatch(context.Background(), 5, UpdateBatchRequest{
		Status: &status,
		SPP:    &spp,
	})
	require.NoError(t, err)
	assert.True(t, resp.SPP)
	batches.AssertExpectations(t)
}

func TestCreatePrebatchConflictOnDoubleScan(t *testing.T) {
	prebatches := new(mockPrebatchRepository)
	svc := newTestService(new(mockPlanRepository), new(mockBatchRepository), prebatches)

	prebatches.On("Create", mock.Anything, mock.Anything).Return(shared.ErrIntegrityConflict)

	_, err := svc.CreatePrebatch(context.Background(), CreatePrebatchRequest{
		BatchRecordID: "plan-Mixing1-2026-08-28-001-RE1-1of4",
	})
	assert.ErrorIs(t, err, shared.ErrIntegrityConflict)
}

func TestPlanHistorySurvivesDeletedPlan(t *testing.T) {
	plans := new(mockPlanRepository)
	svc := newTestService(plans, new(mockBatchRepository), new(mockPrebatchRepository))

	old := production.StatusPlanned
	plans.On("FindHistory", mock.Anything, uint(10)).Return([]production.PlanHistory{
		{PlanDBID: 10, Action: production.ActionCancel, OldStatus: &old, NewStatus: production.StatusCancelled},
		{PlanDBID: 10, Action: production.ActionCreate, NewStatus: production.StatusPlanned},
	}, nil)

	history, err := svc.PlanHistory(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, production.ActionCancel, history[0].Action)
}
