package production

import "time"

// Audit action labels for the production-plan lineage. Lowercase verbs,
// unlike the intake lineage's capitalized nouns; both vocabularies are
// load-bearing for downstream consumers and stay as they are.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionCancel = "cancel"
)

// PlanHistory is one append-only audit row for a production plan. PlanDBID
// references the plan's surrogate key without a foreign-key constraint:
// plan history is retained even after its plan is deleted, unlike the
// intake lineage where history is cascaded away.
type PlanHistory struct {
	ID        uint    `gorm:"primaryKey"`
	PlanDBID  uint    `gorm:"not null;index"`
	Action    string  `gorm:"type:varchar(50);not null"`
	OldStatus *string `gorm:"type:varchar(20)"`
	NewStatus string  `gorm:"type:varchar(20)"`
	Remarks   string  `gorm:"type:varchar(255)"`
	ChangedBy string  `gorm:"type:varchar(50);not null"`
	ChangedAt time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (PlanHistory) TableName() string {
	return "production_plan_history"
}
