package services

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gmao-system/internal/dto"
	"gmao-system/internal/entities"
	"gmao-system/internal/repositories"
	apperrors "gmao-system/pkg/errors"
	"gmao-system/pkg/utils"
)

type BreakdownServiceInterface interface {
	ListBreakdowns(ctx context.Context, filter dto.BreakdownFilter) ([]entities.Breakdown, error)
	FindBreakdown(ctx context.Context, id int64) (*entities.Breakdown, error)
	CreateBreakdown(ctx context.Context, d dto.CreateBreakdownDTO) (*entities.Breakdown, error)
	UpdateBreakdown(ctx context.Context, id int64, d dto.UpdateBreakdownDTO) (*entities.Breakdown, error)
	DeleteBreakdown(ctx context.Context, id int64) error
}

type BreakdownService struct {
	breakdownRepository repositories.BreakdownRepositoryInterface
	logger              *zap.Logger
	now                 func() time.Time
}

func NewBreakdownService(breakdownRepository repositories.BreakdownRepositoryInterface, logger *zap.Logger) BreakdownServiceInterface {
	return &BreakdownService{
		breakdownRepository: breakdownRepository,
		logger:              logger,
		now:                 time.Now,
	}
}

func (s *BreakdownService) ListBreakdowns(ctx context.Context, filter dto.BreakdownFilter) ([]entities.Breakdown, error) {
	return s.breakdownRepository.ListBreakdowns(ctx, filter)
}

func (s *BreakdownService) FindBreakdown(ctx context.Context, id int64) (*entities.Breakdown, error) {
	b, err := s.breakdownRepository.FindBreakdown(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Breakdown not found")
		}
		return nil, err
	}
	return b, nil
}

func (s *BreakdownService) CreateBreakdown(ctx context.Context, d dto.CreateBreakdownDTO) (*entities.Breakdown, error) {
	b := entities.Breakdown{
		EquipmentID:     null.Int64FromPtr(d.EquipmentID),
		Title:           d.Title,
		Description:     null.StringFromPtr(d.Description),
		Severity:        stringOrDefault(d.Severity, entities.CriticalityMedium),
		ReportedBy:      null.StringFromPtr(d.ReportedBy),
		Symptoms:        null.StringFromPtr(d.Symptoms),
		CauseAnalysis:   null.StringFromPtr(d.CauseAnalysis),
		Resolution:      null.StringFromPtr(d.Resolution),
		Status:          stringOrDefault(d.Status, entities.BreakdownStatusReported),
		DowntimeMinutes: null.Int64FromPtr(d.DowntimeMinutes),
		Cost:            null.Float64FromPtr(d.Cost),
	}

	created, err := s.breakdownRepository.CreateBreakdown(ctx, b)
	if err != nil {
		s.logger.Error("failed to create breakdown", zap.String("title", d.Title), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *BreakdownService) UpdateBreakdown(ctx context.Context, id int64, d dto.UpdateBreakdownDTO) (*entities.Breakdown, error) {
	old, err := s.breakdownRepository.FindBreakdown(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Breakdown not found")
		}
		return nil, err
	}

	suppliedResolvedAt, err := utils.ParseNullTime("resolved_at", d.ResolvedAt)
	if err != nil {
		return nil, err
	}

	b := entities.Breakdown{
		EquipmentID:     null.Int64FromPtr(d.EquipmentID),
		Title:           d.Title,
		Description:     null.StringFromPtr(d.Description),
		Severity:        d.Severity,
		ReportedBy:      null.StringFromPtr(d.ReportedBy),
		Symptoms:        null.StringFromPtr(d.Symptoms),
		CauseAnalysis:   null.StringFromPtr(d.CauseAnalysis),
		Resolution:      null.StringFromPtr(d.Resolution),
		Status:          d.Status,
		ResolvedAt:      deriveResolvedAt(old.ResolvedAt, d.Status, suppliedResolvedAt, s.now()),
		DowntimeMinutes: null.Int64FromPtr(d.DowntimeMinutes),
		Cost:            null.Float64FromPtr(d.Cost),
	}

	updated, err := s.breakdownRepository.UpdateBreakdown(ctx, id, b)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Breakdown not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *BreakdownService) DeleteBreakdown(ctx context.Context, id int64) error {
	if err := s.breakdownRepository.DeleteBreakdown(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Breakdown not found")
		}
		return err
	}
	return nil
}
