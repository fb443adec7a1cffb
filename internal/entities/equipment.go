package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Equipment statuses and criticalities.
const (
	EquipmentStatusActive      = "active"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusInactive    = "inactive"

	CriticalityLow    = "low"
	CriticalityMedium = "medium"
	CriticalityHigh   = "high"
)

type Equipment struct {
	ID              int64       `json:"id"`
	Code            string      `json:"code"`
	Name            string      `json:"name"`
	Description     null.String `json:"description"`
	Category        null.String `json:"category"`
	Location        null.String `json:"location"`
	Manufacturer    null.String `json:"manufacturer"`
	Model           null.String `json:"model"`
	SerialNumber    null.String `json:"serial_number"`
	PurchaseDate    null.Time   `json:"purchase_date"`
	WarrantyEndDate null.Time   `json:"warranty_end_date"`
	Status          string      `json:"status"`
	Criticality     string      `json:"criticality"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
