package shared

import "time"

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uint
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities. ID is the surrogate
// key assigned by the database, distinct from any business-facing
// identifier string an entity may carry.
type BaseEntity struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the surrogate key
func (e *BaseEntity) GetID() uint {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// SystemActor is recorded on audit rows when an operation carries no
// authenticated actor.
const SystemActor = "system"

// ActorOrSystem returns the given actor, or SystemActor when empty.
func ActorOrSystem(actor string) string {
	if actor == "" {
		return SystemActor
	}
	return actor
}
