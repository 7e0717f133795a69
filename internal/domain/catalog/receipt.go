package catalog

import (
	"time"

	"github.com/batchtrack/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// IngredientReceipt is a barcode-scanned goods receipt. Unlike intake
// records, the ReceiveLotID comes from the scanning station, not from the
// sequence generator; the unique index still rejects double scans.
type IngredientReceipt struct {
	shared.BaseEntity
	MatSAPCode        string          `gorm:"type:varchar(50);not null;index"`
	ReCode            string          `gorm:"type:varchar(50)"`
	ReceiveLotID      string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	LotNumber         string          `gorm:"type:varchar(50);not null"`
	ReceiveVol        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	RemainVol         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	StdPackageSize    decimal.Decimal `gorm:"type:decimal(18,4);default:25"`
	PackageVol        decimal.Decimal `gorm:"type:decimal(18,4)"`
	NumberOfPackages  int
	WarehouseLocation string     `gorm:"type:varchar(50)"`
	ExpireDate        *time.Time
	Status            string `gorm:"type:varchar(20);default:'Active'"`
	CreatedBy         string `gorm:"type:varchar(50);not null"`
	UpdatedBy         string `gorm:"type:varchar(50)"`
}

func (IngredientReceipt) TableName() string {
	return "ingredient_receipts"
}
