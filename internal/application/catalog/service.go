package catalog

import (
	"context"

	"github.com/batchtrack/backend/internal/domain/catalog"
	"github.com/batchtrack/backend/internal/domain/shared"
)

// Service provides application services for the master-data catalog:
// ingredients, goods receipts, SKU recipes, lookups and plants.
type Service struct {
	ingredients catalog.IngredientRepository
	receipts    catalog.ReceiptRepository
	skus        catalog.SkuRepository
	lookups     catalog.LookupRepository
	plants      catalog.PlantRepository
}

// NewService creates a new catalog Service
func NewService(
	ingredients catalog.IngredientRepository,
	receipts catalog.ReceiptRepository,
	skus catalog.SkuRepository,
	lookups catalog.LookupRepository,
	plants catalog.PlantRepository,
) *Service {
	return &Service{
		ingredients: ingredients,
		receipts:    receipts,
		skus:        skus,
		lookups:     lookups,
		plants:      plants,
	}
}

// GetIngredient retrieves one ingredient by surrogate key
func (s *Service) GetIngredient(ctx context.Context, id uint) (*IngredientResponse, error) {
	ing, err := s.ingredients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toIngredientResponse(ing)
	return &resp, nil
}

// SearchIngredient resolves whichever code family a scanned label carries
func (s *Service) SearchIngredient(ctx context.Context, query string) (*IngredientResponse, error) {
	ing, err := s.ingredients.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	resp := toIngredientResponse(ing)
	return &resp, nil
}

// ListIngredients retrieves a page of ingredients
func (s *Service) ListIngredients(ctx context.Context, filter shared.Filter) (*shared.Paginated[IngredientResponse], error) {
	total, err := s.ingredients.Count(ctx)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.ingredients.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(toIngredientResponses(ingredients), total, filter.Offset, filter.Limit)
	return &page, nil
}

// CreateIngredient stores a new ingredient master row
func (s *Service) CreateIngredient(ctx context.Context, req CreateIngredientRequest) (*IngredientResponse, error) {
	status := req.Status
	if status == "" {
		status = catalog.IngredientStatusActive
	}
	unit := req.Unit
	if unit == "" {
		unit = "kg"
	}
	ing := &catalog.Ingredient{
		BlindCode:           req.BlindCode,
		MatSAPCode:          req.MatSAPCode,
		ReCode:              req.ReCode,
		IngredientCode:      req.IngredientCode,
		Name:                req.Name,
		Unit:                unit,
		Group:               req.Group,
		StdPackageSize:      req.StdPackageSize,
		StdPrebatchBatchVol: req.StdPrebatchBatchVol,
		Status:              status,
		CreatedBy:           shared.ActorOrSystem(req.CreatedBy),
	}
	if err := s.ingredients.Create(ctx, ing); err != nil {
		return nil, err
	}
	resp := toIngredientResponse(ing)
	return &resp, nil
}

// UpdateIngredient applies a partial ingredient update
func (s *Service) UpdateIngredient(ctx context.Context, id uint, req UpdateIngredientRequest) (*IngredientResponse, error) {
	ing, err := s.ingredients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.BlindCode != nil {
		ing.BlindCode = *req.BlindCode
	}
	if req.MatSAPCode != nil {
		ing.MatSAPCode = *req.MatSAPCode
	}
	if req.ReCode != nil {
		ing.ReCode = *req.ReCode
	}
	if req.Name != nil {
		ing.Name = *req.Name
	}
	if req.Unit != nil {
		ing.Unit = *req.Unit
	}
	if req.Group != nil {
		ing.Group = *req.Group
	}
	if req.StdPackageSize != nil {
		ing.StdPackageSize = *req.StdPackageSize
	}
	if req.StdPrebatchBatchVol != nil {
		ing.StdPrebatchBatchVol = *req.StdPrebatchBatchVol
	}
	if req.Status != nil {
		ing.Status = *req.Status
	}
	ing.UpdatedBy = shared.ActorOrSystem(req.UpdatedBy)

	if err := s.ingredients.Save(ctx, ing); err != nil {
		return nil, err
	}
	resp := toIngredientResponse(ing)
	return &resp, nil
}

// DeleteIngredient removes an ingredient master row
func (s *Service) DeleteIngredient(ctx context.Context, id uint) error {
	return s.ingredients.Delete(ctx, id)
}

// ListReceipts retrieves a page of goods receipts
func (s *Service) ListReceipts(ctx context.Context, filter shared.Filter) (*shared.Paginated[ReceiptResponse], error) {
	total, err := s.receipts.Count(ctx)
	if err != nil {
		return nil, err
	}
	receipts, err := s.receipts.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(toReceiptResponses(receipts), total, filter.Offset, filter.Limit)
	return &page, nil
}

// CreateReceipt books one scanned receipt; remaining volume starts at the
// received volume and a repeated scan of the same lot is a conflict.
func (s *Service) CreateReceipt(ctx context.Context, req CreateReceiptRequest) (*ReceiptResponse, error) {
	receipt := &catalog.IngredientReceipt{
		MatSAPCode:        req.MatSAPCode,
		ReCode:            req.ReCode,
		ReceiveLotID:      req.ReceiveLotID,
		LotNumber:         req.LotNumber,
		ReceiveVol:        req.ReceiveVol,
		RemainVol:         req.ReceiveVol,
		StdPackageSize:    req.StdPackageSize,
		PackageVol:        req.PackageVol,
		NumberOfPackages:  req.NumberOfPackages,
		WarehouseLocation: req.WarehouseLocation,
		ExpireDate:        req.ExpireDate,
		Status:            "Active",
		CreatedBy:         shared.ActorOrSystem(req.CreatedBy),
	}
	if err := s.receipts.Create(ctx, receipt); err != nil {
		return nil, err
	}
	resp := toReceiptResponse(receipt)
	return &resp, nil
}

// DeleteReceipt removes a receipt row
func (s *Service) DeleteReceipt(ctx context.Context, id uint) error {
	return s.receipts.Delete(ctx, id)
}

// GetSku retrieves a recipe with its steps by business SKU code
func (s *Service) GetSku(ctx context.Context, skuID string) (*SkuResponse, error) {
	sku, err := s.skus.FindBySkuID(ctx, skuID)
	if err != nil {
		return nil, err
	}
	resp := toSkuResponse(sku)
	return &resp, nil
}

// ListSkus retrieves a page of recipes, headers only
func (s *Service) ListSkus(ctx context.Context, filter shared.Filter) (*shared.Paginated[SkuResponse], error) {
	total, err := s.skus.Count(ctx)
	if err != nil {
		return nil, err
	}
	skus, err := s.skus.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(toSkuResponses(skus), total, filter.Offset, filter.Limit)
	return &page, nil
}

// CreateSku stores a new recipe with its steps
func (s *Service) CreateSku(ctx context.Context, req CreateSkuRequest) (*SkuResponse, error) {
	status := req.Status
	if status == "" {
		status = "Active"
	}
	sku := &catalog.Sku{
		SkuID:        req.SkuID,
		SkuName:      req.SkuName,
		StdBatchSize: req.StdBatchSize,
		UOM:          req.UOM,
		Status:       status,
		CreatedBy:    shared.ActorOrSystem(req.CreatedBy),
		Steps:        toSkuSteps(req.SkuID, req.Steps),
	}
	if err := s.skus.CreateWithSteps(ctx, sku); err != nil {
		return nil, err
	}
	resp := toSkuResponse(sku)
	return &resp, nil
}

// UpdateSku applies a partial recipe update. A request without steps keeps
// the stored step set untouched.
func (s *Service) UpdateSku(ctx context.Context, skuID string, req UpdateSkuRequest) (*SkuResponse, error) {
	sku, err := s.skus.FindBySkuID(ctx, skuID)
	if err != nil {
		return nil, err
	}
	if req.SkuName != nil {
		sku.SkuName = *req.SkuName
	}
	if req.StdBatchSize != nil {
		sku.StdBatchSize = *req.StdBatchSize
	}
	if req.UOM != nil {
		sku.UOM = *req.UOM
	}
	if req.Status != nil {
		sku.Status = *req.Status
	}
	sku.UpdatedBy = shared.ActorOrSystem(req.UpdatedBy)

	if err := s.skus.SaveWithSteps(ctx, sku, toSkuSteps(sku.SkuID, req.Steps)); err != nil {
		return nil, err
	}

	updated, err := s.skus.FindBySkuID(ctx, skuID)
	if err != nil {
		return nil, err
	}
	resp := toSkuResponse(updated)
	return &resp, nil
}

// DeleteSku removes a recipe and its steps
func (s *Service) DeleteSku(ctx context.Context, skuID string) error {
	sku, err := s.skus.FindBySkuID(ctx, skuID)
	if err != nil {
		return err
	}
	return s.skus.Delete(ctx, sku.ID)
}

// ListActions lists the action-code lookup table
func (s *Service) ListActions(ctx context.Context, filter shared.Filter) ([]catalog.SkuAction, error) {
	return s.lookups.FindActions(ctx, filter)
}

// SaveAction upserts one action-code row
func (s *Service) SaveAction(ctx context.Context, action *catalog.SkuAction) error {
	return s.lookups.SaveAction(ctx, action)
}

// DeleteAction removes one action-code row
func (s *Service) DeleteAction(ctx context.Context, actionCode string) error {
	return s.lookups.DeleteAction(ctx, actionCode)
}

// ListPhases lists the phase lookup table
func (s *Service) ListPhases(ctx context.Context, filter shared.Filter) ([]catalog.SkuPhase, error) {
	return s.lookups.FindPhases(ctx, filter)
}

// SavePhase upserts one phase row
func (s *Service) SavePhase(ctx context.Context, phase *catalog.SkuPhase) error {
	return s.lookups.SavePhase(ctx, phase)
}

// DeletePhase removes one phase row
func (s *Service) DeletePhase(ctx context.Context, phaseID int) error {
	return s.lookups.DeletePhase(ctx, phaseID)
}

// ListDestinations lists the destination lookup table
func (s *Service) ListDestinations(ctx context.Context, filter shared.Filter) ([]catalog.SkuDestination, error) {
	return s.lookups.FindDestinations(ctx, filter)
}

// SaveDestination upserts one destination row
func (s *Service) SaveDestination(ctx context.Context, dest *catalog.SkuDestination) error {
	return s.lookups.SaveDestination(ctx, dest)
}

// DeleteDestination removes one destination row
func (s *Service) DeleteDestination(ctx context.Context, id uint) error {
	return s.lookups.DeleteDestination(ctx, id)
}

// ListPlants lists active plants for the planning screens
func (s *Service) ListPlants(ctx context.Context, filter shared.Filter) ([]catalog.Plant, error) {
	return s.plants.FindActive(ctx, filter)
}

// GetPlant retrieves one plant by business code
func (s *Service) GetPlant(ctx context.Context, plantID string) (*catalog.Plant, error) {
	return s.plants.FindByPlantID(ctx, plantID)
}

// CreatePlant stores a new plant
func (s *Service) CreatePlant(ctx context.Context, req PlantRequest) (*catalog.Plant, error) {
	status := req.Status
	if status == "" {
		status = "Active"
	}
	plant := &catalog.Plant{
		PlantID:          req.PlantID,
		PlantName:        req.PlantName,
		PlantCapacity:    req.PlantCapacity,
		PlantDescription: req.PlantDescription,
		Status:           status,
	}
	if err := s.plants.Create(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

// UpdatePlant replaces a plant's mutable fields
func (s *Service) UpdatePlant(ctx context.Context, plantID string, req PlantRequest) (*catalog.Plant, error) {
	plant, err := s.plants.FindByPlantID(ctx, plantID)
	if err != nil {
		return nil, err
	}
	plant.PlantName = req.PlantName
	plant.PlantCapacity = req.PlantCapacity
	plant.PlantDescription = req.PlantDescription
	if req.Status != "" {
		plant.Status = req.Status
	}
	if err := s.plants.Save(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

// DeletePlant removes a plant by business code
func (s *Service) DeletePlant(ctx context.Context, plantID string) error {
	return s.plants.Delete(ctx, plantID)
}
