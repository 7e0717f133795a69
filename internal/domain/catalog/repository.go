package catalog

import (
	"context"

	"github.com/batchtrack/backend/internal/domain/shared"
)

// IngredientRepository defines the interface for ingredient persistence
type IngredientRepository interface {
	FindByID(ctx context.Context, id uint) (*Ingredient, error)
	// FindByCode looks an ingredient up by its business code
	FindByCode(ctx context.Context, code string) (*Ingredient, error)
	// Search tries ingredient code, SAP code, re-code and blind code in turn
	Search(ctx context.Context, query string) (*Ingredient, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Ingredient, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, ingredient *Ingredient) error
	Save(ctx context.Context, ingredient *Ingredient) error
	Delete(ctx context.Context, id uint) error
}

// ReceiptRepository defines the interface for ingredient receipt persistence
type ReceiptRepository interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]IngredientReceipt, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, receipt *IngredientReceipt) error
	Delete(ctx context.Context, id uint) error
}

// SkuRepository defines the interface for SKU persistence.
// SaveWithSteps replaces the step set only when steps is non-nil, so a
// header-only update cannot wipe a recipe.
type SkuRepository interface {
	FindByID(ctx context.Context, id uint) (*Sku, error)
	FindBySkuID(ctx context.Context, skuID string) (*Sku, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Sku, error)
	Count(ctx context.Context) (int64, error)
	CreateWithSteps(ctx context.Context, sku *Sku) error
	SaveWithSteps(ctx context.Context, sku *Sku, steps []SkuStep) error
	Delete(ctx context.Context, id uint) error
}

// LookupRepository defines the interface for the SKU lookup tables
type LookupRepository interface {
	FindActions(ctx context.Context, filter shared.Filter) ([]SkuAction, error)
	SaveAction(ctx context.Context, action *SkuAction) error
	DeleteAction(ctx context.Context, actionCode string) error

	FindPhases(ctx context.Context, filter shared.Filter) ([]SkuPhase, error)
	SavePhase(ctx context.Context, phase *SkuPhase) error
	DeletePhase(ctx context.Context, phaseID int) error

	FindDestinations(ctx context.Context, filter shared.Filter) ([]SkuDestination, error)
	SaveDestination(ctx context.Context, dest *SkuDestination) error
	DeleteDestination(ctx context.Context, id uint) error
}

// PlantRepository defines the interface for plant persistence
type PlantRepository interface {
	FindByPlantID(ctx context.Context, plantID string) (*Plant, error)
	// FindActive lists active plants ordered by plant code
	FindActive(ctx context.Context, filter shared.Filter) ([]Plant, error)
	Create(ctx context.Context, plant *Plant) error
	Save(ctx context.Context, plant *Plant) error
	Delete(ctx context.Context, plantID string) error
}
