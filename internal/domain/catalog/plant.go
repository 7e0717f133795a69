package catalog

import (
	"github.com/batchtrack/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Plant is a production line; its name feeds the plan identifier scope.
type Plant struct {
	shared.BaseEntity
	PlantID          string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	PlantName        string          `gorm:"type:varchar(100);not null"`
	PlantCapacity    decimal.Decimal `gorm:"type:decimal(18,4);default:0"`
	PlantDescription string          `gorm:"type:varchar(255)"`
	Status           string          `gorm:"type:varchar(20);default:'Active'"`
}

func (Plant) TableName() string {
	return "plants"
}
