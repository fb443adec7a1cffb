package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	StockStatusOutOfStock = "out_of_stock"
	StockStatusLow        = "low_stock"
	StockStatusOverstock  = "overstock"
	StockStatusNormal     = "normal"
)

// SparePart is an inventory item. StockStatus is derived from the stock
// thresholds at query time, never stored.
type SparePart struct {
	ID            int64        `json:"id"`
	PartNumber    string       `json:"part_number"`
	Name          string       `json:"name"`
	Description   null.String  `json:"description"`
	Category      null.String  `json:"category"`
	Manufacturer  null.String  `json:"manufacturer"`
	Supplier      null.String  `json:"supplier"`
	UnitPrice     null.Float64 `json:"unit_price"`
	Currency      string       `json:"currency"`
	CurrentStock  int64        `json:"current_stock"`
	MinimumStock  int64        `json:"minimum_stock"`
	MaximumStock  int64        `json:"maximum_stock"`
	Location      null.String  `json:"location"`
	UnitOfMeasure null.String  `json:"unit_of_measure"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	StockStatus string `json:"stock_status"`
}

// ComputeStockStatus classifies a stock level against its thresholds.
// First matching rule wins, so current<=0 is out_of_stock even when the
// minimum is 0 too.
func ComputeStockStatus(current, minimum, maximum int64) string {
	switch {
	case current <= 0:
		return StockStatusOutOfStock
	case current <= minimum:
		return StockStatusLow
	case current >= maximum:
		return StockStatusOverstock
	default:
		return StockStatusNormal
	}
}
