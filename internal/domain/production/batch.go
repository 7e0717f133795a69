package production

import (
	"github.com/batchtrack/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BatchStatusCreated is the initial status of an auto-created batch.
// Like the plan status, batch status is an open string afterwards.
const BatchStatusCreated = "Created"

// ProductionBatch is one batch under a production plan. Its BatchID is a
// pure derivation from the plan identifier (<plan_id>-NNN), never drawn
// from a sequence of its own.
type ProductionBatch struct {
	shared.BaseEntity
	ProductionPlanID uint            `gorm:"not null;index"`
	BatchID          string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	SkuID            string          `gorm:"type:varchar(50);not null"`
	Plant            string          `gorm:"type:varchar(50)"`
	BatchSize        decimal.Decimal `gorm:"type:decimal(18,4)"`
	Status           string          `gorm:"type:varchar(50);not null;default:'Created'"`

	FlavourHouse   bool
	SPP            bool `gorm:"column:spp"`
	BatchPrepare   bool
	ReadyToProduct bool
	Production     bool
	Done           bool
}

// TableName returns the table name for GORM
func (ProductionBatch) TableName() string {
	return "production_batches"
}
