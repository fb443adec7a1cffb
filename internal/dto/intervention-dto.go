package dto

// CreateInterventionDTO covers POST /maintenance. New interventions always
// start as 'planned'; there is no status field on purpose.
type CreateInterventionDTO struct {
	EquipmentID        *int64   `json:"equipment_id"`
	InterventionType   string   `json:"intervention_type" validate:"required,oneof=preventive curative corrective predictive"`
	Title              string   `json:"title" validate:"required"`
	Description        *string  `json:"description"`
	Priority           *string  `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AssignedTechnician *string  `json:"assigned_technician"`
	PlannedDate        *string  `json:"planned_date"`
	EstimatedDuration  *int64   `json:"estimated_duration"`
	Cost               *float64 `json:"cost"`
	Notes              *string  `json:"notes"`
}

// CreateCurativeDTO covers POST /curative; the intervention type is forced
// to 'curative' server-side.
type CreateCurativeDTO struct {
	EquipmentID        *int64   `json:"equipment_id"`
	Title              string   `json:"title" validate:"required"`
	Description        *string  `json:"description"`
	Priority           *string  `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AssignedTechnician *string  `json:"assigned_technician"`
	PlannedDate        *string  `json:"planned_date"`
	EstimatedDuration  *int64   `json:"estimated_duration"`
	Cost               *float64 `json:"cost"`
	Notes              *string  `json:"notes"`
}

// UpdateInterventionDTO is a full replace except for started_at/completed_at,
// which follow the status-derived timestamp rules.
type UpdateInterventionDTO struct {
	EquipmentID        *int64   `json:"equipment_id"`
	InterventionType   string   `json:"intervention_type" validate:"required,oneof=preventive curative corrective predictive"`
	Title              string   `json:"title" validate:"required"`
	Description        *string  `json:"description"`
	Priority           string   `json:"priority" validate:"required,oneof=low medium high urgent"`
	Status             string   `json:"status" validate:"required,oneof=planned in_progress on_hold completed cancelled"`
	AssignedTechnician *string  `json:"assigned_technician"`
	PlannedDate        *string  `json:"planned_date"`
	StartedAt          *string  `json:"started_at"`
	CompletedAt        *string  `json:"completed_at"`
	EstimatedDuration  *int64   `json:"estimated_duration"`
	ActualDuration     *int64   `json:"actual_duration"`
	Cost               *float64 `json:"cost"`
	Notes              *string  `json:"notes"`
}

type InterventionFilter struct {
	Search      string
	Priority    string
	Status      string
	Type        string
	EquipmentID string
}
