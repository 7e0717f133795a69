package production

import (
	"context"

	"github.com/batchtrack/backend/internal/domain/production"
	"github.com/batchtrack/backend/internal/domain/sequence"
	"github.com/batchtrack/backend/internal/domain/shared"
)

// Service provides application services for production plans, batches and
// prebatch records.
type Service struct {
	plans      production.PlanRepository
	batches    production.BatchRepository
	prebatches production.PrebatchRepository
	clock      sequence.Clock
}

// NewService creates a new production Service
func NewService(
	plans production.PlanRepository,
	batches production.BatchRepository,
	prebatches production.PrebatchRepository,
	clock sequence.Clock,
) *Service {
	if clock == nil {
		clock = sequence.SystemClock{}
	}
	return &Service{plans: plans, batches: batches, prebatches: prebatches, clock: clock}
}

// GetPlan retrieves one plan with its batches
func (s *Service) GetPlan(ctx context.Context, id uint) (*PlanResponse, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toPlanResponse(plan)
	return &resp, nil
}

// ListPlans retrieves a page of plans, newest first
func (s *Service) ListPlans(ctx context.Context, filter shared.Filter) (*shared.Paginated[PlanResponse], error) {
	total, err := s.plans.Count(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := s.plans.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(toPlanResponses(plans), total, filter.Offset, filter.Limit)
	return &page, nil
}

// PlanHistory retrieves a plan's audit trail, newest first. The trail is
// queried by surrogate key directly so it stays readable after the plan
// itself is deleted.
func (s *Service) PlanHistory(ctx context.Context, planDBID uint) ([]PlanHistoryResponse, error) {
	entries, err := s.plans.FindHistory(ctx, planDBID)
	if err != nil {
		return nil, err
	}
	return toPlanHistoryResponses(entries), nil
}

// CreatePlan schedules a new run. The plan identifier is scoped per plant
// per day; the batch count falls back to ceil(total/batchSize) and every
// batch row is created up front with a derived identifier.
func (s *Service) CreatePlan(ctx context.Context, req CreatePlanRequest) (*PlanResponse, error) {
	numBatches := production.ResolveBatchCount(req.NumBatches, req.TotalVolume, req.BatchSize)
	if numBatches <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Plan needs a batch count or a total volume and batch size")
	}

	scope := sequence.NewScope("plan", sequence.PlantKey(req.Plant), s.clock.Now())
	maxID, err := s.plans.MaxPlanID(ctx, scope.Pattern())
	if err != nil {
		return nil, err
	}

	plan := &production.ProductionPlan{
		PlanID:          scope.Next(maxID),
		SkuID:           req.SkuID,
		SkuName:         req.SkuName,
		Plant:           req.Plant,
		TotalVolume:     req.TotalVolume,
		TotalPlanVolume: production.PlannedVolume(numBatches, req.BatchSize),
		BatchSize:       req.BatchSize,
		NumBatches:      numBatches,
		StartDate:       req.StartDate,
		FinishDate:      req.FinishDate,
		Status:          production.StatusPlanned,
		CreatedBy:       shared.ActorOrSystem(req.CreatedBy),
	}
	plan.Batches = plan.SpawnBatches()

	entry := plan.CreationEntry()
	if err := s.plans.CreateWithBatches(ctx, plan, &entry); err != nil {
		return nil, err
	}

	resp := toPlanResponse(plan)
	return &resp, nil
}

// UpdatePlan applies a partial update. An audit row is written only when
// the status actually changes; field-only updates leave the trail alone.
func (s *Service) UpdatePlan(ctx context.Context, id uint, req UpdatePlanRequest) (*PlanResponse, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := plan.Status
	applyPlanUpdate(plan, req)
	plan.UpdatedBy = shared.ActorOrSystem(req.UpdatedBy)

	var entry *production.PlanHistory
	if plan.Status != oldStatus {
		e := plan.UpdateEntry(oldStatus, req.UpdatedBy)
		entry = &e
	}

	if err := s.plans.Update(ctx, plan, entry); err != nil {
		return nil, err
	}
	resp := toPlanResponse(plan)
	return &resp, nil
}

// CancelPlan cancels a plan and every batch under it, writing one cancel
// audit row. Cancelling an already cancelled plan is rejected.
func (s *Service) CancelPlan(ctx context.Context, id uint, req CancelPlanRequest) (*PlanResponse, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan.Status == production.StatusCancelled {
		return nil, shared.ErrInvalidState
	}

	entry := plan.Cancel(req.Remarks, req.CancelledBy)
	if err := s.plans.SaveCancellation(ctx, plan, &entry); err != nil {
		return nil, err
	}
	resp := toPlanResponse(plan)
	return &resp, nil
}

// DeletePlan removes a plan and its batches; the audit trail stays
func (s *Service) DeletePlan(ctx context.Context, id uint) error {
	return s.plans.Delete(ctx, id)
}

// GetBatch retrieves one batch
func (s *Service) GetBatch(ctx context.Context, id uint) (*BatchResponse, error) {
	batch, err := s.batches.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toBatchResponse(batch)
	return &resp, nil
}

// ListBatches retrieves a page of batches, newest first
func (s *Service) ListBatches(ctx context.Context, filter shared.Filter) (*shared.Paginated[BatchResponse], error) {
	total, err := s.batches.Count(ctx)
	if err != nil {
		return nil, err
	}
	batches, err := s.batches.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(toBatchResponses(batches), total, filter.Offset, filter.Limit)
	return &page, nil
}

// UpdateBatch applies a station-level batch update. Batch identifiers are
// immutable and batch changes write no plan history.
func (s *Service) UpdateBatch(ctx context.Context, id uint, req UpdateBatchRequest) (*BatchResponse, error) {
	batch, err := s.batches.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		batch.Status = *req.Status
	}
	if req.FlavourHouse != nil {
		batch.FlavourHouse = *req.FlavourHouse
	}
	if req.SPP != nil {
		batch.SPP = *req.SPP
	}
	if req.BatchPrepare != nil {
		batch.BatchPrepare = *req.BatchPrepare
	}
	if req.ReadyToProduct != nil {
		batch.ReadyToProduct = *req.ReadyToProduct
	}
	if req.Production != nil {
		batch.Production = *req.Production
	}
	if req.Done != nil {
		batch.Done = *req.Done
	}

	if err := s.batches.Save(ctx, batch); err != nil {
		return nil, err
	}
	resp := toBatchResponse(batch)
	return &resp, nil
}

// ListPrebatches retrieves a page of prebatch records, newest first
func (s *Service) ListPrebatches(ctx context.Context, filter shared.Filter) (*shared.Paginated[PrebatchResponse], error) {
	total, err := s.prebatches.Count(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.prebatches.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(toPrebatchResponses(records), total, filter.Offset, filter.Limit)
	return &page, nil
}

// CreatePrebatch stores one weighed package; a double scan of the same
// package surfaces as an integrity conflict.
func (s *Service) CreatePrebatch(ctx context.Context, req CreatePrebatchRequest) (*PrebatchResponse, error) {
	record := &production.PrebatchRecord{
		BatchRecordID:      req.BatchRecordID,
		PlanID:             req.PlanID,
		ReCode:             req.ReCode,
		PackageNo:          req.PackageNo,
		TotalPackages:      req.TotalPackages,
		NetVolume:          req.NetVolume,
		TotalVolume:        req.TotalVolume,
		TotalRequestVolume: req.TotalRequestVolume,
	}
	if err := s.prebatches.Create(ctx, record); err != nil {
		return nil, err
	}
	resp := toPrebatchResponse(record)
	return &resp, nil
}

func applyPlanUpdate(plan *production.ProductionPlan, req UpdatePlanRequest) {
	if req.SkuName != nil {
		plan.SkuName = *req.SkuName
	}
	if req.StartDate != nil {
		plan.StartDate = req.StartDate
	}
	if req.FinishDate != nil {
		plan.FinishDate = req.FinishDate
	}
	if req.Status != nil {
		plan.Status = *req.Status
	}
	if req.FlavourHouse != nil {
		plan.FlavourHouse = *req.FlavourHouse
	}
	if req.SPP != nil {
		plan.SPP = *req.SPP
	}
	if req.BatchPrepare != nil {
		plan.BatchPrepare = *req.BatchPrepare
	}
	if req.ReadyToProduct != nil {
		plan.ReadyToProduct = *req.ReadyToProduct
	}
	if req.Production != nil {
		plan.Production = *req.Production
	}
	if req.Done != nil {
		plan.Done = *req.Done
	}
}
