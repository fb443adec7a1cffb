package services

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"gmao-system/internal/entities"
)

var (
	frozenNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	earlier   = time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
)

func TestDeriveResolvedAt(t *testing.T) {
	t.Run("stamps now on first transition to resolved", func(t *testing.T) {
		got := deriveResolvedAt(null.Time{}, entities.BreakdownStatusResolved, null.Time{}, frozenNow)
		assert.True(t, got.Valid)
		assert.Equal(t, frozenNow, got.Time)
	})

	t.Run("preserves stored value when already resolved", func(t *testing.T) {
		stored := null.TimeFrom(earlier)
		got := deriveResolvedAt(stored, entities.BreakdownStatusResolved, null.Time{}, frozenNow)
		assert.Equal(t, stored, got)
	})

	t.Run("supplied value wins over stamping", func(t *testing.T) {
		supplied := null.TimeFrom(earlier)
		got := deriveResolvedAt(null.Time{}, entities.BreakdownStatusResolved, supplied, frozenNow)
		assert.Equal(t, supplied, got)
	})

	t.Run("keeps stored value on non-resolved status", func(t *testing.T) {
		stored := null.TimeFrom(earlier)
		got := deriveResolvedAt(stored, entities.BreakdownStatusInProgress, null.Time{}, frozenNow)
		assert.Equal(t, stored, got)
	})

	t.Run("stays null when never resolved", func(t *testing.T) {
		got := deriveResolvedAt(null.Time{}, entities.BreakdownStatusReported, null.Time{}, frozenNow)
		assert.False(t, got.Valid)
	})
}

func TestDeriveInterventionTimestamps(t *testing.T) {
	t.Run("stamps started_at on first transition to in_progress", func(t *testing.T) {
		old := &entities.Intervention{}
		started, completed := deriveInterventionTimestamps(old, entities.InterventionStatusInProgress, null.Time{}, null.Time{}, frozenNow)
		assert.True(t, started.Valid)
		assert.Equal(t, frozenNow, started.Time)
		assert.False(t, completed.Valid)
	})

	t.Run("stamps completed_at on first transition to completed", func(t *testing.T) {
		old := &entities.Intervention{StartedAt: null.TimeFrom(earlier)}
		started, completed := deriveInterventionTimestamps(old, entities.InterventionStatusCompleted, null.Time{}, null.Time{}, frozenNow)
		assert.Equal(t, earlier, started.Time)
		assert.True(t, completed.Valid)
		assert.Equal(t, frozenNow, completed.Time)
	})

	t.Run("does not restamp already-set timestamps", func(t *testing.T) {
		old := &entities.Intervention{
			StartedAt:   null.TimeFrom(earlier),
			CompletedAt: null.TimeFrom(earlier),
		}
		started, completed := deriveInterventionTimestamps(old, entities.InterventionStatusCompleted, null.Time{}, null.Time{}, frozenNow)
		assert.Equal(t, earlier, started.Time)
		assert.Equal(t, earlier, completed.Time)
	})

	t.Run("supplied values win", func(t *testing.T) {
		supplied := null.TimeFrom(earlier)
		old := &entities.Intervention{}
		started, completed := deriveInterventionTimestamps(old, entities.InterventionStatusCompleted, supplied, supplied, frozenNow)
		assert.Equal(t, supplied, started)
		assert.Equal(t, supplied, completed)
	})

	t.Run("preserves timestamps on status regression", func(t *testing.T) {
		old := &entities.Intervention{
			StartedAt:   null.TimeFrom(earlier),
			CompletedAt: null.TimeFrom(earlier),
		}
		started, completed := deriveInterventionTimestamps(old, entities.InterventionStatusPlanned, null.Time{}, null.Time{}, frozenNow)
		assert.Equal(t, earlier, started.Time)
		assert.Equal(t, earlier, completed.Time)
	})
}

func TestStringOrDefault(t *testing.T) {
	value := "high"
	empty := ""
	assert.Equal(t, "high", stringOrDefault(&value, "medium"))
	assert.Equal(t, "medium", stringOrDefault(nil, "medium"))
	assert.Equal(t, "medium", stringOrDefault(&empty, "medium"))
}
