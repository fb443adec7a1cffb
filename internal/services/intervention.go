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

// InterventionServiceInterface serves both the /maintenance resource (all
// intervention types) and /curative (typeRestriction = "curative").
type InterventionServiceInterface interface {
	ListInterventions(ctx context.Context, filter dto.InterventionFilter, typeRestriction string) ([]entities.Intervention, error)
	FindIntervention(ctx context.Context, id int64, typeRestriction string) (*entities.Intervention, error)
	CreateIntervention(ctx context.Context, d dto.CreateInterventionDTO) (*entities.Intervention, error)
	CreateCurative(ctx context.Context, d dto.CreateCurativeDTO) (*entities.Intervention, error)
	UpdateIntervention(ctx context.Context, id int64, d dto.UpdateInterventionDTO, typeRestriction string) (*entities.Intervention, error)
	DeleteIntervention(ctx context.Context, id int64, typeRestriction string) error
}

type InterventionService struct {
	interventionRepository repositories.InterventionRepositoryInterface
	logger                 *zap.Logger
	now                    func() time.Time
}

func NewInterventionService(interventionRepository repositories.InterventionRepositoryInterface, logger *zap.Logger) InterventionServiceInterface {
	return &InterventionService{
		interventionRepository: interventionRepository,
		logger:                 logger,
		now:                    time.Now,
	}
}

func (s *InterventionService) ListInterventions(ctx context.Context, filter dto.InterventionFilter, typeRestriction string) ([]entities.Intervention, error) {
	// The preventive-schedule join only applies to the unrestricted
	// maintenance listing.
	withSchedules := typeRestriction == ""
	return s.interventionRepository.ListInterventions(ctx, filter, typeRestriction, withSchedules)
}

func (s *InterventionService) FindIntervention(ctx context.Context, id int64, typeRestriction string) (*entities.Intervention, error) {
	iv, err := s.interventionRepository.FindIntervention(ctx, id, typeRestriction)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Intervention not found")
		}
		return nil, err
	}
	return iv, nil
}

func (s *InterventionService) CreateIntervention(ctx context.Context, d dto.CreateInterventionDTO) (*entities.Intervention, error) {
	plannedDate, err := utils.ParseNullTime("planned_date", d.PlannedDate)
	if err != nil {
		return nil, err
	}

	iv := entities.Intervention{
		EquipmentID:        null.Int64FromPtr(d.EquipmentID),
		InterventionType:   d.InterventionType,
		Title:              d.Title,
		Description:        null.StringFromPtr(d.Description),
		Priority:           stringOrDefault(d.Priority, entities.PriorityMedium),
		Status:             entities.InterventionStatusPlanned,
		AssignedTechnician: null.StringFromPtr(d.AssignedTechnician),
		PlannedDate:        plannedDate,
		EstimatedDuration:  null.Int64FromPtr(d.EstimatedDuration),
		Cost:               null.Float64FromPtr(d.Cost),
		Notes:              null.StringFromPtr(d.Notes),
	}

	created, err := s.interventionRepository.CreateIntervention(ctx, iv)
	if err != nil {
		s.logger.Error("failed to create intervention", zap.String("title", d.Title), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *InterventionService) CreateCurative(ctx context.Context, d dto.CreateCurativeDTO) (*entities.Intervention, error) {
	return s.CreateIntervention(ctx, dto.CreateInterventionDTO{
		EquipmentID:        d.EquipmentID,
		InterventionType:   entities.InterventionTypeCurative,
		Title:              d.Title,
		Description:        d.Description,
		Priority:           d.Priority,
		AssignedTechnician: d.AssignedTechnician,
		PlannedDate:        d.PlannedDate,
		EstimatedDuration:  d.EstimatedDuration,
		Cost:               d.Cost,
		Notes:              d.Notes,
	})
}

func (s *InterventionService) UpdateIntervention(ctx context.Context, id int64, d dto.UpdateInterventionDTO, typeRestriction string) (*entities.Intervention, error) {
	old, err := s.interventionRepository.FindIntervention(ctx, id, typeRestriction)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Intervention not found")
		}
		return nil, err
	}

	plannedDate, err := utils.ParseNullTime("planned_date", d.PlannedDate)
	if err != nil {
		return nil, err
	}
	suppliedStarted, err := utils.ParseNullTime("started_at", d.StartedAt)
	if err != nil {
		return nil, err
	}
	suppliedCompleted, err := utils.ParseNullTime("completed_at", d.CompletedAt)
	if err != nil {
		return nil, err
	}

	startedAt, completedAt := deriveInterventionTimestamps(old, d.Status, suppliedStarted, suppliedCompleted, s.now())

	iv := entities.Intervention{
		EquipmentID:        null.Int64FromPtr(d.EquipmentID),
		InterventionType:   d.InterventionType,
		Title:              d.Title,
		Description:        null.StringFromPtr(d.Description),
		Priority:           d.Priority,
		Status:             d.Status,
		AssignedTechnician: null.StringFromPtr(d.AssignedTechnician),
		PlannedDate:        plannedDate,
		StartedAt:          startedAt,
		CompletedAt:        completedAt,
		EstimatedDuration:  null.Int64FromPtr(d.EstimatedDuration),
		ActualDuration:     null.Int64FromPtr(d.ActualDuration),
		Cost:               null.Float64FromPtr(d.Cost),
		Notes:              null.StringFromPtr(d.Notes),
	}

	updated, err := s.interventionRepository.UpdateIntervention(ctx, id, iv)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Intervention not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *InterventionService) DeleteIntervention(ctx context.Context, id int64, typeRestriction string) error {
	if err := s.interventionRepository.DeleteIntervention(ctx, id, typeRestriction); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Intervention not found")
		}
		return err
	}
	return nil
}
