package catalog

import (
	"github.com/batchtrack/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Ingredient statuses
const (
	IngredientStatusActive   = "Active"
	IngredientStatusInactive = "Inactive"
)

// Ingredient is a master-data row for a raw material. IngredientCode is
// the business code printed on labels; it is indexed but deliberately not
// unique, since the same material can appear under several SAP codes.
type Ingredient struct {
	shared.BaseEntity
	BlindCode           string          `gorm:"type:varchar(50);index"`
	MatSAPCode          string          `gorm:"type:varchar(50);index"`
	ReCode              string          `gorm:"type:varchar(50)"`
	IngredientCode      string          `gorm:"type:varchar(50);not null;index"`
	Name                string          `gorm:"type:varchar(150);not null"`
	Unit                string          `gorm:"type:varchar(20);default:'kg'"`
	Group               string          `gorm:"type:varchar(50)"`
	StdPackageSize      decimal.Decimal `gorm:"type:decimal(18,4);default:25"`
	StdPrebatchBatchVol decimal.Decimal `gorm:"type:decimal(18,4);default:0"`
	Status              string          `gorm:"type:varchar(20);default:'Active'"`
	CreatedBy           string          `gorm:"type:varchar(50);not null"`
	UpdatedBy           string          `gorm:"type:varchar(50)"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
