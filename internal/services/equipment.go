package services

import (
	"context"
	"errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gmao-system/internal/dto"
	"gmao-system/internal/entities"
	"gmao-system/internal/repositories"
	apperrors "gmao-system/pkg/errors"
	"gmao-system/pkg/utils"
)

type EquipmentServiceInterface interface {
	ListEquipment(ctx context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id int64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, d dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id int64) error
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func (s *EquipmentService) ListEquipment(ctx context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, error) {
	return s.equipmentRepository.ListEquipment(ctx, filter)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id int64) (*entities.Equipment, error) {
	e, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Equipment not found")
		}
		return nil, err
	}
	return e, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	purchaseDate, err := utils.ParseNullTime("purchase_date", d.PurchaseDate)
	if err != nil {
		return nil, err
	}
	warrantyEnd, err := utils.ParseNullTime("warranty_end_date", d.WarrantyEndDate)
	if err != nil {
		return nil, err
	}

	e := entities.Equipment{
		Code:            d.Code,
		Name:            d.Name,
		Description:     null.StringFromPtr(d.Description),
		Category:        null.StringFromPtr(d.Category),
		Location:        null.StringFromPtr(d.Location),
		Manufacturer:    null.StringFromPtr(d.Manufacturer),
		Model:           null.StringFromPtr(d.Model),
		SerialNumber:    null.StringFromPtr(d.SerialNumber),
		PurchaseDate:    purchaseDate,
		WarrantyEndDate: warrantyEnd,
		Status:          stringOrDefault(d.Status, entities.EquipmentStatusActive),
		Criticality:     stringOrDefault(d.Criticality, entities.CriticalityMedium),
	}

	created, err := s.equipmentRepository.CreateEquipment(ctx, e)
	if err != nil {
		s.logger.Error("failed to create equipment", zap.String("code", d.Code), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id int64, d dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	patch := dto.EquipmentPatch{
		Code:         d.Code,
		Name:         d.Name,
		Description:  d.Description,
		Category:     d.Category,
		Location:     d.Location,
		Manufacturer: d.Manufacturer,
		Model:        d.Model,
		SerialNumber: d.SerialNumber,
		Status:       d.Status,
		Criticality:  d.Criticality,
	}

	if d.PurchaseDate != nil {
		t, err := utils.ParseNullTime("purchase_date", d.PurchaseDate)
		if err != nil {
			return nil, err
		}
		patch.PurchaseDate = &t
	}
	if d.WarrantyEndDate != nil {
		t, err := utils.ParseNullTime("warranty_end_date", d.WarrantyEndDate)
		if err != nil {
			return nil, err
		}
		patch.WarrantyEndDate = &t
	}

	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("No fields to update")
	}

	updated, err := s.equipmentRepository.UpdateEquipment(ctx, id, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Equipment not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id int64) error {
	if err := s.equipmentRepository.DeleteEquipment(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Equipment not found")
		}
		return err
	}
	return nil
}
