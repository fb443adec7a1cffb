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
)

const defaultCurrency = "EUR"

type SparePartServiceInterface interface {
	ListSpareParts(ctx context.Context, filter dto.SparePartFilter) ([]entities.SparePart, error)
	FindSparePart(ctx context.Context, id int64) (*entities.SparePart, error)
	CreateSparePart(ctx context.Context, d dto.CreateSparePartDTO) (*entities.SparePart, error)
	UpdateSparePart(ctx context.Context, id int64, d dto.UpdateSparePartDTO) (*entities.SparePart, error)
	DeleteSparePart(ctx context.Context, id int64) error
}

type SparePartService struct {
	sparePartRepository repositories.SparePartRepositoryInterface
	logger              *zap.Logger
}

func NewSparePartService(sparePartRepository repositories.SparePartRepositoryInterface, logger *zap.Logger) SparePartServiceInterface {
	return &SparePartService{
		sparePartRepository: sparePartRepository,
		logger:              logger,
	}
}

func (s *SparePartService) ListSpareParts(ctx context.Context, filter dto.SparePartFilter) ([]entities.SparePart, error) {
	return s.sparePartRepository.ListSpareParts(ctx, filter)
}

func (s *SparePartService) FindSparePart(ctx context.Context, id int64) (*entities.SparePart, error) {
	p, err := s.sparePartRepository.FindSparePart(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Spare part not found")
		}
		return nil, err
	}
	return p, nil
}

func (s *SparePartService) CreateSparePart(ctx context.Context, d dto.CreateSparePartDTO) (*entities.SparePart, error) {
	p := entities.SparePart{
		PartNumber:    d.PartNumber,
		Name:          d.Name,
		Description:   null.StringFromPtr(d.Description),
		Category:      null.StringFromPtr(d.Category),
		Manufacturer:  null.StringFromPtr(d.Manufacturer),
		Supplier:      null.StringFromPtr(d.Supplier),
		UnitPrice:     null.Float64FromPtr(d.UnitPrice),
		Currency:      stringOrDefault(d.Currency, defaultCurrency),
		CurrentStock:  int64OrZero(d.CurrentStock),
		MinimumStock:  int64OrZero(d.MinimumStock),
		MaximumStock:  int64OrZero(d.MaximumStock),
		Location:      null.StringFromPtr(d.Location),
		UnitOfMeasure: null.StringFromPtr(d.UnitOfMeasure),
	}

	created, err := s.sparePartRepository.CreateSparePart(ctx, p)
	if err != nil {
		s.logger.Error("failed to create spare part", zap.String("part_number", d.PartNumber), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *SparePartService) UpdateSparePart(ctx context.Context, id int64, d dto.UpdateSparePartDTO) (*entities.SparePart, error) {
	p := entities.SparePart{
		PartNumber:    d.PartNumber,
		Name:          d.Name,
		Description:   null.StringFromPtr(d.Description),
		Category:      null.StringFromPtr(d.Category),
		Manufacturer:  null.StringFromPtr(d.Manufacturer),
		Supplier:      null.StringFromPtr(d.Supplier),
		UnitPrice:     null.Float64FromPtr(d.UnitPrice),
		Currency:      stringOrDefault(d.Currency, defaultCurrency),
		CurrentStock:  int64OrZero(d.CurrentStock),
		MinimumStock:  int64OrZero(d.MinimumStock),
		MaximumStock:  int64OrZero(d.MaximumStock),
		Location:      null.StringFromPtr(d.Location),
		UnitOfMeasure: null.StringFromPtr(d.UnitOfMeasure),
	}

	updated, err := s.sparePartRepository.UpdateSparePart(ctx, id, p)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Spare part not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *SparePartService) DeleteSparePart(ctx context.Context, id int64) error {
	if err := s.sparePartRepository.DeleteSparePart(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Spare part not found")
		}
		return err
	}
	return nil
}
