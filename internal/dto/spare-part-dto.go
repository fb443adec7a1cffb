package dto

type CreateSparePartDTO struct {
	PartNumber    string   `json:"part_number" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Manufacturer  *string  `json:"manufacturer"`
	Supplier      *string  `json:"supplier"`
	UnitPrice     *float64 `json:"unit_price"`
	Currency      *string  `json:"currency" validate:"omitempty,currency_code"`
	CurrentStock  *int64   `json:"current_stock"`
	MinimumStock  *int64   `json:"minimum_stock"`
	MaximumStock  *int64   `json:"maximum_stock"`
	Location      *string  `json:"location"`
	UnitOfMeasure *string  `json:"unit_of_measure"`
}

// UpdateSparePartDTO is a full replace: omitted optional fields become NULL
// and omitted stock counters fall back to 0.
type UpdateSparePartDTO struct {
	PartNumber    string   `json:"part_number" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Manufacturer  *string  `json:"manufacturer"`
	Supplier      *string  `json:"supplier"`
	UnitPrice     *float64 `json:"unit_price"`
	Currency      *string  `json:"currency" validate:"omitempty,currency_code"`
	CurrentStock  *int64   `json:"current_stock"`
	MinimumStock  *int64   `json:"minimum_stock"`
	MaximumStock  *int64   `json:"maximum_stock"`
	Location      *string  `json:"location"`
	UnitOfMeasure *string  `json:"unit_of_measure"`
}

type SparePartFilter struct {
	Search      string
	Category    string
	Supplier    string
	StockStatus string
}
