package production

import (
	"github.com/batchtrack/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PrebatchRecord documents one weighed prebatch package for a plan. The
// BatchRecordID is composed by the weighing station from the plan
// identifier plus package coordinates and is only required to be unique.
type PrebatchRecord struct {
	shared.BaseEntity
	BatchRecordID      string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	PlanID             string          `gorm:"type:varchar(50);index"`
	ReCode             string          `gorm:"type:varchar(50);index"`
	PackageNo          int
	TotalPackages      int
	NetVolume          decimal.Decimal `gorm:"type:decimal(18,4)"`
	TotalVolume        decimal.Decimal `gorm:"type:decimal(18,4)"`
	TotalRequestVolume decimal.Decimal `gorm:"type:decimal(18,4)"`
}

// TableName returns the table name for GORM
func (PrebatchRecord) TableName() string {
	return "prebatch_records"
}
