package services

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"gmao-system/internal/entities"
)

func TestReduceEquipmentStats(t *testing.T) {
	stats := reduceEquipmentStats([]entities.Equipment{
		{Status: entities.EquipmentStatusActive, Criticality: entities.CriticalityHigh},
		{Status: entities.EquipmentStatusActive, Criticality: entities.CriticalityLow},
		{Status: entities.EquipmentStatusMaintenance, Criticality: entities.CriticalityHigh},
		{Status: entities.EquipmentStatusInactive, Criticality: entities.CriticalityMedium},
	})

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.InMaintenance)
	assert.Equal(t, 1, stats.Inactive)
	assert.Equal(t, 2, stats.HighCriticality)
}

func TestReduceInterventionStatsAverageDuration(t *testing.T) {
	stats := reduceInterventionStats([]entities.Intervention{
		{Status: entities.InterventionStatusCompleted, ActualDuration: null.Int64From(60), InterventionType: entities.InterventionTypeCurative, Priority: entities.PriorityUrgent},
		{Status: entities.InterventionStatusCompleted, ActualDuration: null.Int64From(31), InterventionType: entities.InterventionTypePreventive, Priority: entities.PriorityLow},
		// completed without a recorded duration is excluded from the average
		{Status: entities.InterventionStatusCompleted, InterventionType: entities.InterventionTypeCorrective, Priority: entities.PriorityLow},
		// in-progress durations never count
		{Status: entities.InterventionStatusInProgress, ActualDuration: null.Int64From(500), InterventionType: entities.InterventionTypeCurative, Priority: entities.PriorityHigh},
	})

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Completed)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 1, stats.Urgent)
	assert.Equal(t, 2, stats.Curative)
	assert.Equal(t, int64(46), stats.AverageDuration) // round((60+31)/2)
}

func TestReduceInterventionStatsNoCompleted(t *testing.T) {
	stats := reduceInterventionStats([]entities.Intervention{
		{Status: entities.InterventionStatusPlanned, InterventionType: entities.InterventionTypePreventive, Priority: entities.PriorityMedium},
	})
	assert.Equal(t, int64(0), stats.AverageDuration)
}

func TestReduceBreakdownStats(t *testing.T) {
	stats := reduceBreakdownStats([]entities.Breakdown{
		{Status: entities.BreakdownStatusReported, DowntimeMinutes: null.Int64From(30), Cost: null.Float64From(100)},
		{Status: entities.BreakdownStatusResolved, DowntimeMinutes: null.Int64From(90), Cost: null.Float64From(250.5)},
		{Status: entities.BreakdownStatusInProgress},
	})

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Reported)
	assert.Equal(t, 1, stats.Resolved)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, int64(120), stats.TotalDowntimeMinutes)
	assert.InDelta(t, 350.5, stats.TotalCost, 0.001)
}

func TestReduceStockStats(t *testing.T) {
	stats := reduceStockStats([]entities.SparePart{
		{StockStatus: entities.StockStatusOutOfStock},
		{StockStatus: entities.StockStatusLow},
		{StockStatus: entities.StockStatusLow},
		{StockStatus: entities.StockStatusOverstock},
		{StockStatus: entities.StockStatusNormal},
	})

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.OutOfStock)
	assert.Equal(t, 2, stats.LowStock)
	assert.Equal(t, 1, stats.Overstock)
	assert.Equal(t, 1, stats.Normal)
}
