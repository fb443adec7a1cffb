package services

import (
	"context"

	"go.uber.org/zap"

	"gmao-system/internal/dto"
	"gmao-system/internal/entities"
	"gmao-system/internal/repositories"
)

type ReportServiceInterface interface {
	EquipmentReport(ctx context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, error)
	StockReport(ctx context.Context, filter dto.SparePartFilter) ([]entities.SparePart, error)
}

// ReportService reuses the list queries; the export-specific work (xlsx
// rendering) lives in the controller.
type ReportService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	sparePartRepository repositories.SparePartRepositoryInterface
	logger              *zap.Logger
}

func NewReportService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	sparePartRepository repositories.SparePartRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		equipmentRepository: equipmentRepository,
		sparePartRepository: sparePartRepository,
		logger:              logger,
	}
}

func (s *ReportService) EquipmentReport(ctx context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, error) {
	return s.equipmentRepository.ListEquipment(ctx, filter)
}

func (s *ReportService) StockReport(ctx context.Context, filter dto.SparePartFilter) ([]entities.SparePart, error) {
	return s.sparePartRepository.ListSpareParts(ctx, filter)
}
