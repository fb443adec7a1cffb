package dto

// DashboardStatsDTO mirrors the aggregates each list page derives from its
// list response; any consumer can recompute them from the same data.
type DashboardStatsDTO struct {
	Equipment     EquipmentStatsDTO    `json:"equipment"`
	Interventions InterventionStatsDTO `json:"interventions"`
	Breakdowns    BreakdownStatsDTO    `json:"breakdowns"`
	Stock         StockStatsDTO        `json:"stock"`
}

type EquipmentStatsDTO struct {
	Total           int `json:"total"`
	Active          int `json:"active"`
	InMaintenance   int `json:"in_maintenance"`
	Inactive        int `json:"inactive"`
	HighCriticality int `json:"high_criticality"`
}

type InterventionStatsDTO struct {
	Total           int     `json:"total"`
	Planned         int     `json:"planned"`
	InProgress      int     `json:"in_progress"`
	Completed       int     `json:"completed"`
	Urgent          int     `json:"urgent"`
	Preventive      int     `json:"preventive"`
	Curative        int     `json:"curative"`
	Corrective      int     `json:"corrective"`
	Predictive      int     `json:"predictive"`
	TotalCost       float64 `json:"total_cost"`
	AverageDuration int64   `json:"average_duration"`
}

type BreakdownStatsDTO struct {
	Total                int     `json:"total"`
	Reported             int     `json:"reported"`
	Investigating        int     `json:"investigating"`
	InProgress           int     `json:"in_progress"`
	Resolved             int     `json:"resolved"`
	Closed               int     `json:"closed"`
	TotalDowntimeMinutes int64   `json:"total_downtime_minutes"`
	TotalCost            float64 `json:"total_cost"`
}

type StockStatsDTO struct {
	Total      int `json:"total"`
	OutOfStock int `json:"out_of_stock"`
	LowStock   int `json:"low_stock"`
	Overstock  int `json:"overstock"`
	Normal     int `json:"normal"`
}
