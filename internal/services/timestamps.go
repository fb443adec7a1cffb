package services

import (
	"time"

	"github.com/aarondl/null/v8"

	"gmao-system/internal/entities"
)

// The status-driven timestamp side effects are pure functions evaluated
// against the previously stored row before the update statement runs.

// deriveResolvedAt: a client-supplied value wins; the first transition into
// 'resolved' stamps now; otherwise the stored value is preserved.
func deriveResolvedAt(stored null.Time, newStatus string, supplied null.Time, now time.Time) null.Time {
	if supplied.Valid {
		return supplied
	}
	if newStatus == entities.BreakdownStatusResolved && !stored.Valid {
		return null.TimeFrom(now)
	}
	return stored
}

// deriveInterventionTimestamps applies the same rule to started_at (on
// in_progress) and completed_at (on completed).
func deriveInterventionTimestamps(old *entities.Intervention, newStatus string, suppliedStarted, suppliedCompleted null.Time, now time.Time) (startedAt, completedAt null.Time) {
	startedAt = old.StartedAt
	if suppliedStarted.Valid {
		startedAt = suppliedStarted
	} else if newStatus == entities.InterventionStatusInProgress && !old.StartedAt.Valid {
		startedAt = null.TimeFrom(now)
	}

	completedAt = old.CompletedAt
	if suppliedCompleted.Valid {
		completedAt = suppliedCompleted
	} else if newStatus == entities.InterventionStatusCompleted && !old.CompletedAt.Valid {
		completedAt = null.TimeFrom(now)
	}
	return startedAt, completedAt
}

func stringOrDefault(v *string, fallback string) string {
	if v != nil && *v != "" {
		return *v
	}
	return fallback
}

func int64OrZero(v *int64) int64 {
	if v != nil {
		return *v
	}
	return 0
}
