package intake

import (
	"time"

	"github.com/batchtrack/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Recognized intake record statuses. The status field is an open string;
// these are the values the rest of the system knows about, not an enforced
// state machine.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusConsumed = "Consumed"
)

// IntakeRecord is a received lot of an ingredient booked into the
// warehouse. Its IntakeLotID is generated once at creation and never
// changes afterwards.
type IntakeRecord struct {
	shared.BaseEntity
	IntakeLotID       string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	LotID             string          `gorm:"type:varchar(50);not null"`
	WarehouseLocation string          `gorm:"type:varchar(50)"`
	BlindCode         string          `gorm:"type:varchar(50);index"`
	MatSAPCode        string          `gorm:"type:varchar(50);not null;index"`
	ReCode            string          `gorm:"type:varchar(50)"`
	IntakeVol         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	RemainVol         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	IntakePackageVol  decimal.Decimal `gorm:"type:decimal(18,4)"`
	PackageIntake     int
	PONumber          string `gorm:"type:varchar(50)"`
	ManufacturingDate *time.Time
	ExpireDate        *time.Time
	Status            string `gorm:"type:varchar(20);not null;default:'Active'"`
	IntakeBy          string `gorm:"type:varchar(50);not null"`
	EditBy            string `gorm:"type:varchar(50)"`

	// Append-only audit trail, deleted together with the record.
	History []IntakeHistory `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (IntakeRecord) TableName() string {
	return "intake_records"
}

// CreationEntry builds the audit row documenting the initial insert.
// The creation row has no old status.
func (r *IntakeRecord) CreationEntry() IntakeHistory {
	return IntakeHistory{
		Action:    ActionCreated,
		NewStatus: r.Status,
		ChangedBy: shared.ActorOrSystem(r.IntakeBy),
		Remarks:   "Initial record creation",
	}
}

// UpdateEntry builds the audit row documenting an update that has already
// been applied to the record. oldStatus is the status immediately before
// mutation; payloadStatus is the status the update payload supplied, nil
// when the payload did not touch the status field. The row is labelled
// "Status Change" only when the payload supplied a status differing from
// the old one, otherwise "Modified".
func (r *IntakeRecord) UpdateEntry(oldStatus string, payloadStatus *string, actor string) IntakeHistory {
	action := ActionModified
	if payloadStatus != nil && *payloadStatus != oldStatus {
		action = ActionStatusChange
	}
	return IntakeHistory{
		Action:    action,
		OldStatus: &oldStatus,
		NewStatus: r.Status,
		ChangedBy: shared.ActorOrSystem(actor),
		Remarks:   "Record updated via API",
	}
}
