package catalog

import (
	"time"

	"github.com/batchtrack/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Sku is a finished-goods recipe: a master row plus its ordered process
// steps. Steps join on the business SkuID string, not the surrogate key,
// because step imports arrive keyed by SKU code.
type Sku struct {
	shared.BaseEntity
	SkuID        string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	SkuName      string          `gorm:"type:varchar(200);not null"`
	StdBatchSize decimal.Decimal `gorm:"type:decimal(18,4)"`
	UOM          string          `gorm:"type:varchar(20)"`
	Status       string          `gorm:"type:varchar(20);default:'Active'"`
	CreatedBy    string          `gorm:"type:varchar(50);not null"`
	UpdatedBy    string          `gorm:"type:varchar(50)"`

	Steps []SkuStep `gorm:"foreignKey:SkuID;references:SkuID"`
}

func (Sku) TableName() string {
	return "sku_masters"
}

// SkuStep is one process instruction within a recipe phase.
type SkuStep struct {
	ID               uint    `gorm:"primaryKey"`
	SkuID            string  `gorm:"type:varchar(50);index"`
	PhaseNumber      string  `gorm:"type:varchar(20);index"`
	PhaseID          string  `gorm:"type:varchar(50);index"`
	MasterStep       bool
	SubStep          int    `gorm:"not null"`
	Action           string `gorm:"type:varchar(100)"`
	ReCode           string `gorm:"type:varchar(50)"`
	ActionCode       string `gorm:"type:varchar(50)"`
	SetupStep        string `gorm:"type:varchar(100)"`
	Destination      string `gorm:"type:varchar(100)"`
	Require          decimal.Decimal `gorm:"type:decimal(18,4)"`
	UOM              string          `gorm:"type:varchar(20)"`
	LowTol           decimal.Decimal `gorm:"type:decimal(18,4)"`
	HighTol          decimal.Decimal `gorm:"type:decimal(18,4)"`
	StepCondition    string          `gorm:"type:varchar(100)"`
	AgitatorRPM      decimal.Decimal `gorm:"type:decimal(18,4)"`
	HighShearRPM     decimal.Decimal `gorm:"type:decimal(18,4)"`
	Temperature      decimal.Decimal `gorm:"type:decimal(18,4)"`
	TempLow          decimal.Decimal `gorm:"type:decimal(18,4)"`
	TempHigh         decimal.Decimal `gorm:"type:decimal(18,4)"`
	StepTime         int // seconds
	StepTimerControl int

	QCTemp              bool
	RecordSteamPressure bool
	RecordCTW           bool
	OperationBrixRecord bool
	OperationPHRecord   bool
	BrixSP              string `gorm:"type:varchar(50)"`
	PHSP                string `gorm:"type:varchar(50)"`

	ActionDescription string `gorm:"type:varchar(200)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SkuStep) TableName() string {
	return "sku_steps"
}

// SkuAction is a lookup row describing a process action code.
type SkuAction struct {
	ActionCode        string `gorm:"type:varchar(50);primaryKey"`
	ActionDescription string `gorm:"type:varchar(200);not null"`
	ComponentFilter   string `gorm:"type:varchar(255)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (SkuAction) TableName() string {
	return "sku_actions"
}

// SkuPhase is a lookup row describing a recipe phase.
type SkuPhase struct {
	PhaseID          int    `gorm:"primaryKey"`
	PhaseCode        string `gorm:"type:varchar(50)"`
	PhaseDescription string `gorm:"type:varchar(200);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (SkuPhase) TableName() string {
	return "sku_phases"
}

// SkuDestination is a lookup row describing a step destination vessel.
type SkuDestination struct {
	shared.BaseEntity
	DestinationCode string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description     string `gorm:"type:varchar(200)"`
}

func (SkuDestination) TableName() string {
	return "sku_destinations"
}
