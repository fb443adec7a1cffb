package services

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"go.uber.org/zap"

	"gmao-system/internal/dto"
	"gmao-system/internal/entities"
	"gmao-system/internal/repositories"
)

const dashboardCacheKey = "dashboard:stats"

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

// DashboardService aggregates the four list queries into the landing-page
// counters. Results are cached briefly; a cache outage only costs the
// recomputation, never the request.
type DashboardService struct {
	equipmentRepository    repositories.EquipmentRepositoryInterface
	interventionRepository repositories.InterventionRepositoryInterface
	breakdownRepository    repositories.BreakdownRepositoryInterface
	sparePartRepository    repositories.SparePartRepositoryInterface
	cacheRepository        repositories.CacheRepositoryInterface
	cacheTTL               time.Duration
	logger                 *zap.Logger
}

func NewDashboardService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	interventionRepository repositories.InterventionRepositoryInterface,
	breakdownRepository repositories.BreakdownRepositoryInterface,
	sparePartRepository repositories.SparePartRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		equipmentRepository:    equipmentRepository,
		interventionRepository: interventionRepository,
		breakdownRepository:    breakdownRepository,
		sparePartRepository:    sparePartRepository,
		cacheRepository:        cacheRepository,
		cacheTTL:               cacheTTL,
		logger:                 logger,
	}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if s.cacheRepository != nil {
		if cached, err := s.cacheRepository.Get(ctx, dashboardCacheKey); err == nil && cached != "" {
			var stats dto.DashboardStatsDTO
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
			s.logger.Warn("discarding malformed dashboard cache entry")
		}
	}

	equipment, err := s.equipmentRepository.ListEquipment(ctx, dto.EquipmentFilter{})
	if err != nil {
		return nil, err
	}
	interventions, err := s.interventionRepository.ListInterventions(ctx, dto.InterventionFilter{}, "", false)
	if err != nil {
		return nil, err
	}
	breakdowns, err := s.breakdownRepository.ListBreakdowns(ctx, dto.BreakdownFilter{})
	if err != nil {
		return nil, err
	}
	spareParts, err := s.sparePartRepository.ListSpareParts(ctx, dto.SparePartFilter{})
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsDTO{
		Equipment:     reduceEquipmentStats(equipment),
		Interventions: reduceInterventionStats(interventions),
		Breakdowns:    reduceBreakdownStats(breakdowns),
		Stock:         reduceStockStats(spareParts),
	}

	if s.cacheRepository != nil {
		payload, err := json.Marshal(stats)
		if err == nil {
			if err := s.cacheRepository.Set(ctx, dashboardCacheKey, payload, s.cacheTTL); err != nil {
				s.logger.Warn("failed to cache dashboard stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}

func reduceEquipmentStats(items []entities.Equipment) dto.EquipmentStatsDTO {
	stats := dto.EquipmentStatsDTO{Total: len(items)}
	for _, e := range items {
		switch e.Status {
		case entities.EquipmentStatusActive:
			stats.Active++
		case entities.EquipmentStatusMaintenance:
			stats.InMaintenance++
		case entities.EquipmentStatusInactive:
			stats.Inactive++
		}
		if e.Criticality == entities.CriticalityHigh {
			stats.HighCriticality++
		}
	}
	return stats
}

func reduceInterventionStats(items []entities.Intervention) dto.InterventionStatsDTO {
	stats := dto.InterventionStatsDTO{Total: len(items)}
	var durationSum, durationCount int64
	for _, iv := range items {
		switch iv.Status {
		case entities.InterventionStatusPlanned:
			stats.Planned++
		case entities.InterventionStatusInProgress:
			stats.InProgress++
		case entities.InterventionStatusCompleted:
			stats.Completed++
		}
		if iv.Priority == entities.PriorityUrgent {
			stats.Urgent++
		}
		switch iv.InterventionType {
		case entities.InterventionTypePreventive:
			stats.Preventive++
		case entities.InterventionTypeCurative:
			stats.Curative++
		case entities.InterventionTypeCorrective:
			stats.Corrective++
		case entities.InterventionTypePredictive:
			stats.Predictive++
		}
		stats.TotalCost += iv.Cost.Float64
		// Average covers completed interventions with a recorded duration.
		if iv.Status == entities.InterventionStatusCompleted && iv.ActualDuration.Int64 > 0 {
			durationSum += iv.ActualDuration.Int64
			durationCount++
		}
	}
	if durationCount > 0 {
		stats.AverageDuration = int64(math.Round(float64(durationSum) / float64(durationCount)))
	}
	return stats
}

func reduceBreakdownStats(items []entities.Breakdown) dto.BreakdownStatsDTO {
	stats := dto.BreakdownStatsDTO{Total: len(items)}
	for _, b := range items {
		switch b.Status {
		case entities.BreakdownStatusReported:
			stats.Reported++
		case entities.BreakdownStatusInvestigating:
			stats.Investigating++
		case entities.BreakdownStatusInProgress:
			stats.InProgress++
		case entities.BreakdownStatusResolved:
			stats.Resolved++
		case entities.BreakdownStatusClosed:
			stats.Closed++
		}
		stats.TotalDowntimeMinutes += b.DowntimeMinutes.Int64
		stats.TotalCost += b.Cost.Float64
	}
	return stats
}

func reduceStockStats(items []entities.SparePart) dto.StockStatsDTO {
	stats := dto.StockStatsDTO{Total: len(items)}
	for _, p := range items {
		switch p.StockStatus {
		case entities.StockStatusOutOfStock:
			stats.OutOfStock++
		case entities.StockStatusLow:
			stats.LowStock++
		case entities.StockStatusOverstock:
			stats.Overstock++
		case entities.StockStatusNormal:
			stats.Normal++
		}
	}
	return stats
}
