package dto

type CreateBreakdownDTO struct {
	EquipmentID     *int64   `json:"equipment_id"`
	Title           string   `json:"title" validate:"required"`
	Description     *string  `json:"description"`
	Severity        *string  `json:"severity" validate:"omitempty,oneof=low medium high"`
	ReportedBy      *string  `json:"reported_by"`
	Symptoms        *string  `json:"symptoms"`
	CauseAnalysis   *string  `json:"cause_analysis"`
	Resolution      *string  `json:"resolution"`
	Status          *string  `json:"status" validate:"omitempty,oneof=reported investigating in_progress resolved closed"`
	DowntimeMinutes *int64   `json:"downtime_minutes"`
	Cost            *float64 `json:"cost"`
}

// UpdateBreakdownDTO is a full replace: clients send the complete row and
// omitted optional fields become NULL. Title, severity and status must be
// present since the columns do not accept NULL. ResolvedAt is special-cased:
// a supplied value wins, the first transition into 'resolved' stamps the
// current time, and otherwise the stored value is preserved.
type UpdateBreakdownDTO struct {
	EquipmentID     *int64   `json:"equipment_id"`
	Title           string   `json:"title" validate:"required"`
	Description     *string  `json:"description"`
	Severity        string   `json:"severity" validate:"required,oneof=low medium high"`
	ReportedBy      *string  `json:"reported_by"`
	Symptoms        *string  `json:"symptoms"`
	CauseAnalysis   *string  `json:"cause_analysis"`
	Resolution      *string  `json:"resolution"`
	Status          string   `json:"status" validate:"required,oneof=reported investigating in_progress resolved closed"`
	ResolvedAt      *string  `json:"resolved_at"`
	DowntimeMinutes *int64   `json:"downtime_minutes"`
	Cost            *float64 `json:"cost"`
}

type BreakdownFilter struct {
	Search      string
	Severity    string
	Status      string
	EquipmentID string
}
