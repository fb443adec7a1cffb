package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	BreakdownStatusReported      = "reported"
	BreakdownStatusInvestigating = "investigating"
	BreakdownStatusInProgress    = "in_progress"
	BreakdownStatusResolved      = "resolved"
	BreakdownStatusClosed        = "closed"
)

// OpenBreakdownStatuses are the statuses a breakdown can have while still
// considered active; intervention listings join on them.
var OpenBreakdownStatuses = []string{
	BreakdownStatusReported,
	BreakdownStatusInvestigating,
	BreakdownStatusInProgress,
}

// Breakdown is a reported equipment failure. The Equipment* fields are
// display columns left-joined at read time; they stay null for dangling
// equipment references.
type Breakdown struct {
	ID              int64       `json:"id"`
	EquipmentID     null.Int64  `json:"equipment_id"`
	Title           string      `json:"title"`
	Description     null.String `json:"description"`
	Severity        string      `json:"severity"`
	ReportedBy      null.String `json:"reported_by"`
	ReportedAt      time.Time   `json:"reported_at"`
	Symptoms        null.String `json:"symptoms"`
	CauseAnalysis   null.String `json:"cause_analysis"`
	Resolution      null.String `json:"resolution"`
	Status          string      `json:"status"`
	ResolvedAt      null.Time   `json:"resolved_at"`
	DowntimeMinutes null.Int64  `json:"downtime_minutes"`
	Cost            null.Float64 `json:"cost"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	EquipmentName     null.String `json:"equipment_name"`
	EquipmentCode     null.String `json:"equipment_code"`
	EquipmentLocation null.String `json:"equipment_location"`
}
