package production

import (
	"context"

	"github.com/batchtrack/backend/internal/domain/shared"
)

// PlanRepository defines the interface for production plan persistence.
//
// CreateWithBatches, Update and SaveCancellation each run in one
// transaction: plan, batches and history either all persist or none do.
// Deleting a plan cascades to its batches but leaves its history rows in
// place.
type PlanRepository interface {
	// FindByID finds a plan by surrogate key, batches included
	FindByID(ctx context.Context, id uint) (*ProductionPlan, error)

	// FindAll lists plans, newest first, batches included
	FindAll(ctx context.Context, filter shared.Filter) ([]ProductionPlan, error)

	// Count counts all plans
	Count(ctx context.Context) (int64, error)

	// MaxPlanID returns the lexicographically maximal plan identifier
	// matching the LIKE pattern, or "" when none matches
	MaxPlanID(ctx context.Context, pattern string) (string, error)

	// FindHistory lists a plan's audit rows, newest first
	FindHistory(ctx context.Context, planDBID uint) ([]PlanHistory, error)

	// CreateWithBatches persists a new plan, its auto-created batches and
	// its creation audit row
	CreateWithBatches(ctx context.Context, plan *ProductionPlan, entry *PlanHistory) error

	// Update persists a mutated plan; entry may be nil when the status did
	// not change (the plan lineage records only status changes)
	Update(ctx context.Context, plan *ProductionPlan, entry *PlanHistory) error

	// SaveCancellation persists a cancelled plan, its cancelled batches and
	// the single cancel audit row
	SaveCancellation(ctx context.Context, plan *ProductionPlan, entry *PlanHistory) error

	// Delete removes a plan and its batches; history rows are retained
	Delete(ctx context.Context, id uint) error
}

// BatchRepository defines the interface for production batch persistence.
// Batches are created only through their plan aggregate; this repository
// serves the station-level reads and updates.
type BatchRepository interface {
	// FindByID finds a batch by surrogate key
	FindByID(ctx context.Context, id uint) (*ProductionBatch, error)

	// FindAll lists batches, newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]ProductionBatch, error)

	// Count counts all batches
	Count(ctx context.Context) (int64, error)

	// Save persists a mutated batch
	Save(ctx context.Context, batch *ProductionBatch) error
}

// PrebatchRepository defines the interface for prebatch record persistence
type PrebatchRepository interface {
	// FindAll lists prebatch records, newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]PrebatchRecord, error)

	// Count counts all prebatch records
	Count(ctx context.Context) (int64, error)

	// Create persists a new prebatch record
	Create(ctx context.Context, record *PrebatchRecord) error
}
