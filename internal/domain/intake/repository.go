package intake

import (
	"context"

	"github.com/batchtrack/backend/internal/domain/shared"
)

// Repository defines the interface for intake record persistence.
//
// Create and Update persist the record and its audit row in one
// transaction: if the record write fails no history is produced, and a
// failed history write rolls the record back. Delete removes the record
// together with its history (the intake lineage cascades; the production
// lineage does not).
type Repository interface {
	// FindByID finds an intake record by surrogate key, history included
	FindByID(ctx context.Context, id uint) (*IntakeRecord, error)

	// FindAll lists intake records, newest first, history included
	FindAll(ctx context.Context, filter shared.Filter) ([]IntakeRecord, error)

	// Count counts all intake records
	Count(ctx context.Context) (int64, error)

	// MaxLotID returns the lexicographically maximal intake lot identifier
	// matching the LIKE pattern, or "" when none matches
	MaxLotID(ctx context.Context, pattern string) (string, error)

	// Create persists a new record plus its creation audit row
	Create(ctx context.Context, record *IntakeRecord, entry *IntakeHistory) error

	// Update persists a mutated record plus its audit row
	Update(ctx context.Context, record *IntakeRecord, entry *IntakeHistory) error

	// Delete removes a record and cascades to its history
	Delete(ctx context.Context, id uint) error
}
