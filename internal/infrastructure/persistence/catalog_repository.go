package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/batchtrack/backend/internal/domain/catalog"
	"github.com/batchtrack/backend/internal/domain/shared"
)

// GormIngredientRepository implements catalog.IngredientRepository using GORM
type GormIngredientRepository struct {
	db *Database
}

func NewGormIngredientRepository(db *Database) *GormIngredientRepository {
	return &GormIngredientRepository{db: db}
}

func (r *GormIngredientRepository) FindByID(ctx context.Context, id uint) (*catalog.Ingredient, error) {
	var ing catalog.Ingredient
	if err := r.db.DB.WithContext(ctx).First(&ing, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &ing, nil
}

func (r *GormIngredientRepository) FindByCode(ctx context.Context, code string) (*catalog.Ingredient, error) {
	var ing catalog.Ingredient
	err := r.db.DB.WithContext(ctx).Where("ingredient_code = ?", code).First(&ing).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &ing, nil
}

// Search tries the identifying columns in a fixed order and returns the
// first hit. Scanning stations submit whichever code the label carries,
// so all four code families have to resolve.
func (r *GormIngredientRepository) Search(ctx context.Context, query string) (*catalog.Ingredient, error) {
	columns := []string{"ingredient_code", "mat_sap_code", "re_code", "blind_code"}
	for _, col := range columns {
		var ing catalog.Ingredient
		err := r.db.DB.WithContext(ctx).Where(col+" = ?", query).First(&ing).Error
		if err == nil {
			return &ing, nil
		}
		if translateError(err) != shared.ErrNotFound {
			return nil, translateError(err)
		}
	}
	return nil, shared.ErrNotFound
}

func (r *GormIngredientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Ingredient, error) {
	var ingredients []catalog.Ingredient
	err := r.db.DB.WithContext(ctx).
		Order(orderClause(filter)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&ingredients).Error
	if err != nil {
		return nil, translateError(err)
	}
	return ingredients, nil
}

func (r *GormIngredientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&catalog.Ingredient{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *GormIngredientRepository) Create(ctx context.Context, ingredient *catalog.Ingredient) error {
	return translateError(r.db.DB.WithContext(ctx).Create(ingredient).Error)
}

func (r *GormIngredientRepository) Save(ctx context.Context, ingredient *catalog.Ingredient) error {
	return translateError(r.db.DB.WithContext(ctx).Save(ingredient).Error)
}

func (r *GormIngredientRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).Delete(&catalog.Ingredient{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.IngredientRepository = (*GormIngredientRepository)(nil)

// GormReceiptRepository implements catalog.ReceiptRepository using GORM
type GormReceiptRepository struct {
	db *Database
}

func NewGormReceiptRepository(db *Database) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

func (r *GormReceiptRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.IngredientReceipt, error) {
	var receipts []catalog.IngredientReceipt
	err := r.db.DB.WithContext(ctx).
		Order(orderClause(filter)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&receipts).Error
	if err != nil {
		return nil, translateError(err)
	}
	return receipts, nil
}

func (r *GormReceiptRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&catalog.IngredientReceipt{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *GormReceiptRepository) Create(ctx context.Context, receipt *catalog.IngredientReceipt) error {
	return translateError(r.db.DB.WithContext(ctx).Create(receipt).Error)
}

func (r *GormReceiptRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).Delete(&catalog.IngredientReceipt{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.ReceiptRepository = (*GormReceiptRepository)(nil)

// GormSkuRepository implements catalog.SkuRepository using GORM
type GormSkuRepository struct {
	db *Database
}

func NewGormSkuRepository(db *Database) *GormSkuRepository {
	return &GormSkuRepository{db: db}
}

func (r *GormSkuRepository) FindByID(ctx context.Context, id uint) (*catalog.Sku, error) {
	var sku catalog.Sku
	err := r.db.DB.WithContext(ctx).Preload("Steps").First(&sku, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &sku, nil
}

func (r *GormSkuRepository) FindBySkuID(ctx context.Context, skuID string) (*catalog.Sku, error) {
	var sku catalog.Sku
	err := r.db.DB.WithContext(ctx).
		Preload("Steps").
		Where("sku_id = ?", skuID).
		First(&sku).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &sku, nil
}

func (r *GormSkuRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Sku, error) {
	var skus []catalog.Sku
	err := r.db.DB.WithContext(ctx).
		Order(orderClause(filter)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&skus).Error
	if err != nil {
		return nil, translateError(err)
	}
	return skus, nil
}

func (r *GormSkuRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&catalog.Sku{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *GormSkuRepository) CreateWithSteps(ctx context.Context, sku *catalog.Sku) error {
	return translateError(r.db.DB.WithContext(ctx).Create(sku).Error)
}

// SaveWithSteps updates the master row and, only when steps is non-nil,
// replaces the whole step set. A nil slice means the caller did not send a
// recipe, and the stored steps must survive the update.
func (r *GormSkuRepository) SaveWithSteps(ctx context.Context, sku *catalog.Sku, steps []catalog.SkuStep) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Omit("Steps").Save(sku).Error; err != nil {
			return err
		}
		if steps == nil {
			return nil
		}
		if err := tx.WithContext(ctx).
			Where("sku_id = ?", sku.SkuID).
			Delete(&catalog.SkuStep{}).Error; err != nil {
			return err
		}
		for i := range steps {
			steps[i].ID = 0
			steps[i].SkuID = sku.SkuID
		}
		if len(steps) == 0 {
			return nil
		}
		return tx.WithContext(ctx).Create(&steps).Error
	})
	return translateError(err)
}

func (r *GormSkuRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var sku catalog.Sku
		if err := tx.WithContext(ctx).First(&sku, id).Error; err != nil {
			return err
		}
		if err := tx.WithContext(ctx).
			Where("sku_id = ?", sku.SkuID).
			Delete(&catalog.SkuStep{}).Error; err != nil {
			return err
		}
		return tx.WithContext(ctx).Delete(&catalog.Sku{}, id).Error
	})
	return translateError(err)
}

var _ catalog.SkuRepository = (*GormSkuRepository)(nil)

// GormLookupRepository implements catalog.LookupRepository using GORM
type GormLookupRepository struct {
	db *Database
}

func NewGormLookupRepository(db *Database) *GormLookupRepository {
	return &GormLookupRepository{db: db}
}

func (r *GormLookupRepository) FindActions(ctx context.Context, filter shared.Filter) ([]catalog.SkuAction, error) {
	var actions []catalog.SkuAction
	err := r.db.DB.WithContext(ctx).
		Order("action_code asc").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&actions).Error
	if err != nil {
		return nil, translateError(err)
	}
	return actions, nil
}

func (r *GormLookupRepository) SaveAction(ctx context.Context, action *catalog.SkuAction) error {
	return translateError(r.db.DB.WithContext(ctx).Save(action).Error)
}

func (r *GormLookupRepository) DeleteAction(ctx context.Context, actionCode string) error {
	result := r.db.DB.WithContext(ctx).
		Where("action_code = ?", actionCode).
		Delete(&catalog.SkuAction{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormLookupRepository) FindPhases(ctx context.Context, filter shared.Filter) ([]catalog.SkuPhase, error) {
	var phases []catalog.SkuPhase
	err := r.db.DB.WithContext(ctx).
		Order("phase_id asc").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&phases).Error
	if err != nil {
		return nil, translateError(err)
	}
	return phases, nil
}

func (r *GormLookupRepository) SavePhase(ctx context.Context, phase *catalog.SkuPhase) error {
	return translateError(r.db.DB.WithContext(ctx).Save(phase).Error)
}

func (r *GormLookupRepository) DeletePhase(ctx context.Context, phaseID int) error {
	result := r.db.DB.WithContext(ctx).
		Where("phase_id = ?", phaseID).
		Delete(&catalog.SkuPhase{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormLookupRepository) FindDestinations(ctx context.Context, filter shared.Filter) ([]catalog.SkuDestination, error) {
	var dests []catalog.SkuDestination
	err := r.db.DB.WithContext(ctx).
		Order("destination_code asc").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&dests).Error
	if err != nil {
		return nil, translateError(err)
	}
	return dests, nil
}

func (r *GormLookupRepository) SaveDestination(ctx context.Context, dest *catalog.SkuDestination) error {
	return translateError(r.db.DB.WithContext(ctx).Save(dest).Error)
}

func (r *GormLookupRepository) DeleteDestination(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).Delete(&catalog.SkuDestination{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.LookupRepository = (*GormLookupRepository)(nil)

// GormPlantRepository implements catalog.PlantRepository using GORM
type GormPlantRepository struct {
	db *Database
}

func NewGormPlantRepository(db *Database) *GormPlantRepository {
	return &GormPlantRepository{db: db}
}

func (r *GormPlantRepository) FindByPlantID(ctx context.Context, plantID string) (*catalog.Plant, error) {
	var plant catalog.Plant
	err := r.db.DB.WithContext(ctx).Where("plant_id = ?", plantID).First(&plant).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &plant, nil
}

func (r *GormPlantRepository) FindActive(ctx context.Context, filter shared.Filter) ([]catalog.Plant, error) {
	var plants []catalog.Plant
	err := r.db.DB.WithContext(ctx).
		Where("status = ?", "Active").
		Order("plant_id asc").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&plants).Error
	if err != nil {
		return nil, translateError(err)
	}
	return plants, nil
}

func (r *GormPlantRepository) Create(ctx context.Context, plant *catalog.Plant) error {
	return translateError(r.db.DB.WithContext(ctx).Create(plant).Error)
}

func (r *GormPlantRepository) Save(ctx context.Context, plant *catalog.Plant) error {
	return translateError(r.db.DB.WithContext(ctx).Save(plant).Error)
}

func (r *GormPlantRepository) Delete(ctx context.Context, plantID string) error {
	result := r.db.DB.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Delete(&catalog.Plant{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.PlantRepository = (*GormPlantRepository)(nil)
