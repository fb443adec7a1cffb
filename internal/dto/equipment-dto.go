package dto

import "github.com/aarondl/null/v8"

// CreateEquipmentDTO carries the full field set for a new equipment row.
// Code and name are mandatory; status and criticality fall back to their
// documented defaults when omitted.
type CreateEquipmentDTO struct {
	Code            string  `json:"code" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	Description     *string `json:"description"`
	Category        *string `json:"category"`
	Location        *string `json:"location"`
	Manufacturer    *string `json:"manufacturer"`
	Model           *string `json:"model"`
	SerialNumber    *string `json:"serial_number"`
	PurchaseDate    *string `json:"purchase_date"`
	WarrantyEndDate *string `json:"warranty_end_date"`
	Status          *string `json:"status" validate:"omitempty,oneof=active maintenance inactive"`
	Criticality     *string `json:"criticality" validate:"omitempty,oneof=low medium high"`
}

// UpdateEquipmentDTO is a partial update: only non-nil fields are written.
// JSON null and an absent key are both treated as "leave unchanged".
type UpdateEquipmentDTO struct {
	Code            *string `json:"code" validate:"omitempty,min=1"`
	Name            *string `json:"name" validate:"omitempty,min=1"`
	Description     *string `json:"description"`
	Category        *string `json:"category"`
	Location        *string `json:"location"`
	Manufacturer    *string `json:"manufacturer"`
	Model           *string `json:"model"`
	SerialNumber    *string `json:"serial_number"`
	PurchaseDate    *string `json:"purchase_date"`
	WarrantyEndDate *string `json:"warranty_end_date"`
	Status          *string `json:"status" validate:"omitempty,oneof=active maintenance inactive"`
	Criticality     *string `json:"criticality" validate:"omitempty,oneof=low medium high"`
}

// EquipmentPatch is the resolved form of UpdateEquipmentDTO handed to the
// repository: date strings already parsed, nil meaning "leave unchanged".
type EquipmentPatch struct {
	Code            *string
	Name            *string
	Description     *string
	Category        *string
	Location        *string
	Manufacturer    *string
	Model           *string
	SerialNumber    *string
	PurchaseDate    *null.Time
	WarrantyEndDate *null.Time
	Status          *string
	Criticality     *string
}

func (p EquipmentPatch) IsEmpty() bool {
	return p.Code == nil && p.Name == nil && p.Description == nil &&
		p.Category == nil && p.Location == nil && p.Manufacturer == nil &&
		p.Model == nil && p.SerialNumber == nil && p.PurchaseDate == nil &&
		p.WarrantyEndDate == nil && p.Status == nil && p.Criticality == nil
}

type EquipmentFilter struct {
	Search   string
	Category string
	Status   string
	Location string
}
