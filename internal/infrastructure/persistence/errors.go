package persistence

import (
	"errors"

	"gorm.io/gorm"

	"github.com/batchtrack/backend/internal/domain/shared"
)

// translateError maps gorm errors onto the domain taxonomy. Constraint
// violations become integrity conflicts, missing rows become not-found,
// anything else is reported as the storage layer being unavailable so the
// caller never leaks driver details.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.ErrIntegrityConflict
	default:
		return shared.ErrStorageUnavailable
	}
}
