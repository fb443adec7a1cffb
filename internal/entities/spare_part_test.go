package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStockStatus(t *testing.T) {
	testCases := []struct {
		name                      string
		current, minimum, maximum int64
		expected                  string
	}{
		{"zero stock", 0, 5, 50, StockStatusOutOfStock},
		{"negative stock", -2, 5, 50, StockStatusOutOfStock},
		{"zero stock with zero minimum", 0, 0, 50, StockStatusOutOfStock},
		{"at minimum", 5, 5, 50, StockStatusLow},
		{"below minimum", 3, 5, 50, StockStatusLow},
		{"at maximum", 50, 5, 50, StockStatusOverstock},
		{"above maximum", 60, 5, 50, StockStatusOverstock},
		{"in range", 20, 5, 50, StockStatusNormal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeStockStatus(tc.current, tc.minimum, tc.maximum))
		})
	}
}
