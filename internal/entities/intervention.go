package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	InterventionTypePreventive = "preventive"
	InterventionTypeCurative   = "curative"
	InterventionTypeCorrective = "corrective"
	InterventionTypePredictive = "predictive"

	InterventionStatusPlanned    = "planned"
	InterventionStatusInProgress = "in_progress"
	InterventionStatusOnHold     = "on_hold"
	InterventionStatusCompleted  = "completed"
	InterventionStatusCancelled  = "cancelled"

	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Intervention is a maintenance action against equipment. Joined display
// fields (equipment, open breakdown, preventive schedule) are populated by
// the list queries and stay null elsewhere.
type Intervention struct {
	ID                 int64        `json:"id"`
	EquipmentID        null.Int64   `json:"equipment_id"`
	InterventionType   string       `json:"intervention_type"`
	Title              string       `json:"title"`
	Description        null.String  `json:"description"`
	Priority           string       `json:"priority"`
	Status             string       `json:"status"`
	AssignedTechnician null.String  `json:"assigned_technician"`
	PlannedDate        null.Time    `json:"planned_date"`
	StartedAt          null.Time    `json:"started_at"`
	CompletedAt        null.Time    `json:"completed_at"`
	EstimatedDuration  null.Int64   `json:"estimated_duration"`
	ActualDuration     null.Int64   `json:"actual_duration"`
	Cost               null.Float64 `json:"cost"`
	Notes              null.String  `json:"notes"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`

	EquipmentName        null.String `json:"equipment_name"`
	EquipmentCode        null.String `json:"equipment_code"`
	EquipmentLocation    null.String `json:"equipment_location"`
	EquipmentCriticality null.String `json:"equipment_criticality"`

	BreakdownID       null.Int64  `json:"breakdown_id"`
	BreakdownTitle    null.String `json:"breakdown_title"`
	BreakdownSeverity null.String `json:"breakdown_severity"`

	ScheduleID     null.Int64  `json:"schedule_id"`
	ScheduleName   null.String `json:"schedule_name"`
	FrequencyType  null.String `json:"frequency_type"`
	FrequencyValue null.Int64  `json:"frequency_value"`
}
