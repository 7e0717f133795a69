package production

import (
	"time"

	"github.com/batchtrack/backend/internal/domain/sequence"
	"github.com/batchtrack/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Recognized plan statuses. Status is an open string: external callers
// move plans through their own stations freely, and no transition table is
// enforced. Cancellation is the one transition implemented here, and it is
// one-way.
const (
	StatusPlanned   = "Planned"
	StatusCancelled = "Cancelled"
)

// ProductionPlan is a scheduled production run for one SKU on one plant.
// Its PlanID is generated once at creation; batches under the plan derive
// their identifiers from it.
type ProductionPlan struct {
	shared.BaseEntity
	PlanID          string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	SkuID           string          `gorm:"type:varchar(50);not null"`
	SkuName         string          `gorm:"type:varchar(200)"`
	Plant           string          `gorm:"type:varchar(50)"`
	TotalVolume     decimal.Decimal `gorm:"type:decimal(18,4)"`
	TotalPlanVolume decimal.Decimal `gorm:"type:decimal(18,4)"`
	BatchSize       decimal.Decimal `gorm:"type:decimal(18,4)"`
	NumBatches      int
	StartDate       *time.Time `gorm:"type:date"`
	FinishDate      *time.Time `gorm:"type:date"`
	Status          string     `gorm:"type:varchar(20);not null;default:'Planned'"`

	// Progress flags toggled by the shop-floor stations.
	FlavourHouse   bool
	SPP            bool `gorm:"column:spp"`
	BatchPrepare   bool
	ReadyToProduct bool
	Production     bool
	Done           bool

	CreatedBy string `gorm:"type:varchar(50)"`
	UpdatedBy string `gorm:"type:varchar(50)"`

	Batches []ProductionBatch `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ProductionPlan) TableName() string {
	return "production_plans"
}

// ResolveBatchCount returns the number of batches for a plan: the count
// supplied by the caller when positive, otherwise the requested total
// volume divided by the batch size, rounded up to the next whole batch.
func ResolveBatchCount(requested int, totalVolume, batchSize decimal.Decimal) int {
	if requested > 0 {
		return requested
	}
	if totalVolume.IsPositive() && batchSize.IsPositive() {
		return int(totalVolume.Div(batchSize).Ceil().IntPart())
	}
	return 0
}

// PlannedVolume is the volume the plan will actually produce:
// numBatches x batchSize. Because the batch count rounds up, this may
// exceed the requested total volume; that overshoot is intentional.
func PlannedVolume(numBatches int, batchSize decimal.Decimal) decimal.Decimal {
	if numBatches <= 0 {
		return decimal.Zero
	}
	return batchSize.Mul(decimal.NewFromInt(int64(numBatches)))
}

// SpawnBatches creates the plan's batch rows, one per batch index, each
// with a derived identifier and initial status "Created". Persisted
// together with the plan in one transaction.
func (p *ProductionPlan) SpawnBatches() []ProductionBatch {
	batches := make([]ProductionBatch, 0, p.NumBatches)
	for i := 1; i <= p.NumBatches; i++ {
		batches = append(batches, ProductionBatch{
			BatchID:   sequence.BatchID(p.PlanID, i),
			SkuID:     p.SkuID,
			Plant:     p.Plant,
			BatchSize: p.BatchSize,
			Status:    BatchStatusCreated,
		})
	}
	return batches
}

// Cancel moves the plan and every one of its batches to Cancelled and
// returns the single audit row documenting the transition (one row for the
// plan, none per batch). There is no code path that reverses a
// cancellation.
func (p *ProductionPlan) Cancel(remarks, actor string) PlanHistory {
	oldStatus := p.Status
	p.Status = StatusCancelled
	for i := range p.Batches {
		p.Batches[i].Status = StatusCancelled
	}
	return PlanHistory{
		PlanDBID:  p.ID,
		Action:    ActionCancel,
		OldStatus: &oldStatus,
		NewStatus: StatusCancelled,
		Remarks:   remarks,
		ChangedBy: shared.ActorOrSystem(actor),
	}
}

// CreationEntry builds the audit row documenting plan creation.
func (p *ProductionPlan) CreationEntry() PlanHistory {
	return PlanHistory{
		Action:    ActionCreate,
		NewStatus: p.Status,
		Remarks:   "Plan created",
		ChangedBy: shared.ActorOrSystem(p.CreatedBy),
	}
}

// UpdateEntry builds the audit row for a plan update whose status changed.
// The plan lineage records updates only on status changes; a field-only
// update writes no history.
func (p *ProductionPlan) UpdateEntry(oldStatus, actor string) PlanHistory {
	return PlanHistory{
		PlanDBID:  p.ID,
		Action:    ActionUpdate,
		OldStatus: &oldStatus,
		NewStatus: p.Status,
		Remarks:   "Plan updated",
		ChangedBy: shared.ActorOrSystem(actor),
	}
}
