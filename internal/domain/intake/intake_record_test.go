package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntakeRecord_CreationEntry(t *testing.T) {
	t.Run("creation row has no old status", func(t *testing.T) {
		rec := &IntakeRecord{Status: StatusActive, IntakeBy: "operator1"}

		entry := rec.CreationEntry()

		assert.Equal(t, ActionCreated, entry.Action)
		assert.Nil(t, entry.OldStatus)
		assert.Equal(t, StatusActive, entry.NewStatus)
		assert.Equal(t, "operator1", entry.ChangedBy)
	})

	t.Run("missing actor defaults to system", func(t *testing.T) {
		rec := &IntakeRecord{Status: StatusActive}

		entry := rec.CreationEntry()

		assert.Equal(t, "system", entry.ChangedBy)
	})
}

func TestIntakeRecord_UpdateEntry(t *testing.T) {
	t.Run("status change when payload status differs", func(t *testing.T) {
		rec := &IntakeRecord{Status: StatusConsumed}
		consumed := StatusConsumed

		entry := rec.UpdateEntry(StatusActive, &consumed, "qc1")

		assert.Equal(t, ActionStatusChange, entry.Action)
		assert.Equal(t, StatusActive, *entry.OldStatus)
		assert.Equal(t, StatusConsumed, entry.NewStatus)
		assert.Equal(t, "qc1", entry.ChangedBy)
	})

	t.Run("modified when payload status equals old status", func(t *testing.T) {
		rec := &IntakeRecord{Status: StatusActive}
		active := StatusActive

		entry := rec.UpdateEntry(StatusActive, &active, "qc1")

		assert.Equal(t, ActionModified, entry.Action)
	})

	t.Run("modified when payload does not touch status", func(t *testing.T) {
		rec := &IntakeRecord{Status: StatusActive}

		entry := rec.UpdateEntry(StatusActive, nil, "")

		assert.Equal(t, ActionModified, entry.Action)
		assert.Equal(t, StatusActive, *entry.OldStatus)
		assert.Equal(t, "system", entry.ChangedBy)
	})
}
