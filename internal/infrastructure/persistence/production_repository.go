package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/batchtrack/backend/internal/domain/production"
	"github.com/batchtrack/backend/internal/domain/shared"
)

// GormPlanRepository implements production.PlanRepository using GORM
type GormPlanRepository struct {
	db *Database
}

func NewGormPlanRepository(db *Database) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

func (r *GormPlanRepository) FindByID(ctx context.Context, id uint) (*production.ProductionPlan, error) {
	var plan production.ProductionPlan
	err := r.db.DB.WithContext(ctx).
		Preload("Batches").
		First(&plan, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &plan, nil
}

func (r *GormPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]production.ProductionPlan, error) {
	var plans []production.ProductionPlan
	err := r.db.DB.WithContext(ctx).
		Preload("Batches").
		Order(orderClause(filter)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&plans).Error
	if err != nil {
		return nil, translateError(err)
	}
	return plans, nil
}

func (r *GormPlanRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&production.ProductionPlan{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// MaxPlanID mirrors MaxLotID on the intake side; plan identifiers carry a
// plant segment so the pattern is per plant per day.
func (r *GormPlanRepository) MaxPlanID(ctx context.Context, pattern string) (string, error) {
	var maxID *string
	err := r.db.DB.WithContext(ctx).
		Model(&production.ProductionPlan{}).
		Where("plan_id LIKE ?", pattern).
		Select("MAX(plan_id)").
		Scan(&maxID).Error
	if err != nil {
		return "", translateError(err)
	}
	if maxID == nil {
		return "", nil
	}
	return *maxID, nil
}

func (r *GormPlanRepository) FindHistory(ctx context.Context, planDBID uint) ([]production.PlanHistory, error) {
	var entries []production.PlanHistory
	err := r.db.DB.WithContext(ctx).
		Where("plan_db_id = ?", planDBID).
		Order("changed_at desc").
		Find(&entries).Error
	if err != nil {
		return nil, translateError(err)
	}
	return entries, nil
}

// CreateWithBatches persists the plan, its auto-created batches and the
// creation audit row in one transaction. The batches ride along on the
// association, so a failure anywhere rolls everything back and the plan
// identifier is never half-used.
func (r *GormPlanRepository) CreateWithBatches(ctx context.Context, plan *production.ProductionPlan, entry *production.PlanHistory) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(plan).Error; err != nil {
			return err
		}
		entry.PlanDBID = plan.ID
		return tx.WithContext(ctx).Create(entry).Error
	})
	return translateError(err)
}

// Update persists a mutated plan. entry is nil for field-only updates,
// which write no history in this lineage.
func (r *GormPlanRepository) Update(ctx context.Context, plan *production.ProductionPlan, entry *production.PlanHistory) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Omit("Batches").Save(plan).Error; err != nil {
			return err
		}
		if entry == nil {
			return nil
		}
		entry.PlanDBID = plan.ID
		return tx.WithContext(ctx).Create(entry).Error
	})
	return translateError(err)
}

// SaveCancellation persists the cancelled plan, all of its cancelled
// batches and the single cancel audit row atomically.
func (r *GormPlanRepository) SaveCancellation(ctx context.Context, plan *production.ProductionPlan, entry *production.PlanHistory) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Omit("Batches").Save(plan).Error; err != nil {
			return err
		}
		for i := range plan.Batches {
			if err := tx.WithContext(ctx).Save(&plan.Batches[i]).Error; err != nil {
				return err
			}
		}
		entry.PlanDBID = plan.ID
		return tx.WithContext(ctx).Create(entry).Error
	})
	return translateError(err)
}

// Delete removes the plan and its batches. History rows are left in place
// on purpose; this lineage keeps its audit trail past the plan's lifetime.
func (r *GormPlanRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).
			Where("production_plan_id = ?", id).
			Delete(&production.ProductionBatch{}).Error; err != nil {
			return err
		}
		result := tx.WithContext(ctx).Delete(&production.ProductionPlan{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translateError(err)
}

var _ production.PlanRepository = (*GormPlanRepository)(nil)

// GormBatchRepository implements production.BatchRepository using GORM
type GormBatchRepository struct {
	db *Database
}

func NewGormBatchRepository(db *Database) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

func (r *GormBatchRepository) FindByID(ctx context.Context, id uint) (*production.ProductionBatch, error) {
	var batch production.ProductionBatch
	if err := r.db.DB.WithContext(ctx).First(&batch, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &batch, nil
}

func (r *GormBatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]production.ProductionBatch, error) {
	var batches []production.ProductionBatch
	err := r.db.DB.WithContext(ctx).
		Order(orderClause(filter)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&batches).Error
	if err != nil {
		return nil, translateError(err)
	}
	return batches, nil
}

func (r *GormBatchRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&production.ProductionBatch{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *GormBatchRepository) Save(ctx context.Context, batch *production.ProductionBatch) error {
	return translateError(r.db.DB.WithContext(ctx).Save(batch).Error)
}

var _ production.BatchRepository = (*GormBatchRepository)(nil)

// GormPrebatchRepository implements production.PrebatchRepository using GORM
type GormPrebatchRepository struct {
	db *Database
}

func NewGormPrebatchRepository(db *Database) *GormPrebatchRepository {
	return &GormPrebatchRepository{db: db}
}

func (r *GormPrebatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]production.PrebatchRecord, error) {
	var records []production.PrebatchRecord
	err := r.db.DB.WithContext(ctx).
		Order(orderClause(filter)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&records).Error
	if err != nil {
		return nil, translateError(err)
	}
	return records, nil
}

func (r *GormPrebatchRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&production.PrebatchRecord{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *GormPrebatchRepository) Create(ctx context.Context, record *production.PrebatchRecord) error {
	return translateError(r.db.DB.WithContext(ctx).Create(record).Error)
}

var _ production.PrebatchRepository = (*GormPrebatchRepository)(nil)
