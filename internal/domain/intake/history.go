package intake

import "time"

// Audit action labels for the intake lineage. The production-plan lineage
// uses a different, lowercase vocabulary; the two evolved independently and
// downstream consumers key on the exact strings, so they are not unified.
const (
	ActionCreated      = "Created"
	ActionStatusChange = "Status Change"
	ActionModified     = "Modified"
)

// IntakeHistory is one append-only audit row for an intake record. Rows are
// written exactly once per triggering event and never updated or deleted on
// their own; they go away only when their owning record is deleted.
type IntakeHistory struct {
	ID             uint    `gorm:"primaryKey"`
	IntakeRecordID uint    `gorm:"not null;index"`
	Action         string  `gorm:"type:varchar(50);not null"`
	OldStatus      *string `gorm:"type:varchar(20)"`
	NewStatus      string  `gorm:"type:varchar(20)"`
	Remarks        string  `gorm:"type:varchar(255)"`
	ChangedBy      string  `gorm:"type:varchar(50);not null"`
	ChangedAt      time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (IntakeHistory) TableName() string {
	return "intake_history"
}
