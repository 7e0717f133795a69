package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/batchtrack/backend/internal/domain/intake"
	"github.com/batchtrack/backend/internal/domain/shared"
)

// GormIntakeRepository implements intake.Repository using GORM
type GormIntakeRepository struct {
	db *Database
}

func NewGormIntakeRepository(db *Database) *GormIntakeRepository {
	return &GormIntakeRepository{db: db}
}

func (r *GormIntakeRepository) FindByID(ctx context.Context, id uint) (*intake.IntakeRecord, error) {
	var record intake.IntakeRecord
	err := r.db.DB.WithContext(ctx).
		Preload("History").
		First(&record, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &record, nil
}

func (r *GormIntakeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]intake.IntakeRecord, error) {
	var records []intake.IntakeRecord
	err := r.db.DB.WithContext(ctx).
		Preload("History").
		Order(orderClause(filter)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&records).Error
	if err != nil {
		return nil, translateError(err)
	}
	return records, nil
}

func (r *GormIntakeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&intake.IntakeRecord{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// MaxLotID returns the highest existing lot identifier for a day's scope.
// The suffix is zero-padded to a fixed width, so lexicographic MAX is also
// the numeric max until the counter outgrows the padding.
func (r *GormIntakeRepository) MaxLotID(ctx context.Context, pattern string) (string, error) {
	var maxID *string
	err := r.db.DB.WithContext(ctx).
		Model(&intake.IntakeRecord{}).
		Where("intake_lot_id LIKE ?", pattern).
		Select("MAX(intake_lot_id)").
		Scan(&maxID).Error
	if err != nil {
		return "", translateError(err)
	}
	if maxID == nil {
		return "", nil
	}
	return *maxID, nil
}

// Create persists the record and its creation audit row in one transaction.
func (r *GormIntakeRepository) Create(ctx context.Context, record *intake.IntakeRecord, entry *intake.IntakeHistory) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Omit("History").Create(record).Error; err != nil {
			return err
		}
		entry.IntakeRecordID = record.ID
		return tx.WithContext(ctx).Create(entry).Error
	})
	return translateError(err)
}

// Update persists the mutated record and its audit row in one transaction.
func (r *GormIntakeRepository) Update(ctx context.Context, record *intake.IntakeRecord, entry *intake.IntakeHistory) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Omit("History").Save(record).Error; err != nil {
			return err
		}
		entry.IntakeRecordID = record.ID
		return tx.WithContext(ctx).Create(entry).Error
	})
	return translateError(err)
}

// Delete removes the record together with its history rows. The explicit
// history delete covers backends where the schema-level cascade is absent,
// sqlite in tests among them.
func (r *GormIntakeRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.WithContext(ctx).Delete(&intake.IntakeRecord{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.WithContext(ctx).
			Where("intake_record_id = ?", id).
			Delete(&intake.IntakeHistory{}).Error
	})
	return translateError(err)
}

var _ intake.Repository = (*GormIntakeRepository)(nil)

// orderClause builds the ORDER BY fragment from a filter, falling back to
// newest-first when the filter does not say otherwise.
func orderClause(filter shared.Filter) string {
	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at"
	}
	dir := filter.OrderDir
	if dir != "asc" {
		dir = "desc"
	}
	return fmt.Sprintf("%s %s", orderBy, dir)
}
