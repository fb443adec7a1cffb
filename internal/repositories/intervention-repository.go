package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gmao-system/internal/dto"
	"gmao-system/internal/entities"
	apperrors "gmao-system/pkg/errors"
)

const interventionTable = "maintenance_interventions"

var interventionColumns = []string{
	"id", "equipment_id", "intervention_type", "title", "description",
	"priority", "status", "assigned_technician", "planned_date",
	"started_at", "completed_at", "estimated_duration", "actual_duration",
	"cost", "notes", "created_at", "updated_at",
}

var interventionBaseListColumns = []string{
	"mi.id", "mi.equipment_id", "mi.intervention_type", "mi.title",
	"mi.description", "mi.priority", "mi.status", "mi.assigned_technician",
	"mi.planned_date", "mi.started_at", "mi.completed_at",
	"mi.estimated_duration", "mi.actual_duration", "mi.cost", "mi.notes",
	"mi.created_at", "mi.updated_at",
	"e.name AS equipment_name", "e.code AS equipment_code",
	"e.location AS equipment_location", "e.criticality AS equipment_criticality",
	"b.id AS breakdown_id", "b.title AS breakdown_title",
	"b.severity AS breakdown_severity",
}

var interventionScheduleColumns = []string{
	"ps.id AS schedule_id", "ps.name AS schedule_name",
	"ps.frequency_type", "ps.frequency_value",
}

// priorityRank orders urgent before high before medium before low.
const priorityRank = `CASE mi.priority
		WHEN 'urgent' THEN 1
		WHEN 'high' THEN 2
		WHEN 'medium' THEN 3
		WHEN 'low' THEN 4
	END`

type InterventionRepositoryInterface interface {
	ListInterventions(ctx context.Context, filter dto.InterventionFilter, forcedType string, withSchedules bool) ([]entities.Intervention, error)
	FindIntervention(ctx context.Context, id int64, typeRestriction string) (*entities.Intervention, error)
	CreateIntervention(ctx context.Context, iv entities.Intervention) (*entities.Intervention, error)
	UpdateIntervention(ctx context.Context, id int64, iv entities.Intervention) (*entities.Intervention, error)
	DeleteIntervention(ctx context.Context, id int64, typeRestriction string) error
}

type InterventionRepository struct {
	storage querier
}

func NewInterventionRepository(storage *pgxpool.Pool) InterventionRepositoryInterface {
	return &InterventionRepository{storage: storage}
}

// buildInterventionListQuery assembles the list query. forcedType restricts
// the listing to one intervention type (the /curative resource);
// withSchedules adds the preventive-schedule join used only by /maintenance.
// Multiple open breakdowns or schedules per equipment multiply rows; callers
// get the raw join output.
func buildInterventionListQuery(filter dto.InterventionFilter, forcedType string, withSchedules bool) (string, []interface{}, error) {
	columns := interventionBaseListColumns
	if withSchedules {
		columns = append(append([]string{}, columns...), interventionScheduleColumns...)
	}

	builder := psql.Select(columns...).
		From(interventionTable + " mi").
		LeftJoin("equipment e ON mi.equipment_id = e.id").
		LeftJoin("breakdowns b ON b.equipment_id = mi.equipment_id AND b.status IN ('reported', 'investigating', 'in_progress')")

	if withSchedules {
		builder = builder.LeftJoin("preventive_schedules ps ON ps.equipment_id = mi.equipment_id AND mi.intervention_type = 'preventive'")
	}

	if forcedType != "" {
		builder = builder.Where(sq.Eq{"mi.intervention_type": forcedType})
	}
	if filter.Search != "" {
		builder = builder.Where(searchPredicate(filter.Search, "mi.title", "mi.description", "e.name"))
	}
	if filter.Priority != "" {
		builder = builder.Where(sq.Eq{"mi.priority": filter.Priority})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"mi.status": filter.Status})
	}
	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"mi.intervention_type": filter.Type})
	}
	if filter.EquipmentID != "" {
		builder = builder.Where(sq.Eq{"mi.equipment_id": filter.EquipmentID})
	}

	return builder.
		OrderBy(priorityRank, "mi.planned_date ASC NULLS LAST", "mi.created_at DESC").
		ToSql()
}

func scanInterventionBase(row pgx.Row, iv *entities.Intervention) error {
	return row.Scan(
		&iv.ID, &iv.EquipmentID, &iv.InterventionType, &iv.Title,
		&iv.Description, &iv.Priority, &iv.Status, &iv.AssignedTechnician,
		&iv.PlannedDate, &iv.StartedAt, &iv.CompletedAt,
		&iv.EstimatedDuration, &iv.ActualDuration, &iv.Cost, &iv.Notes,
		&iv.CreatedAt, &iv.UpdatedAt,
	)
}

func (r *InterventionRepository) ListInterventions(ctx context.Context, filter dto.InterventionFilter, forcedType string, withSchedules bool) ([]entities.Intervention, error) {
	query, args, err := buildInterventionListQuery(filter, forcedType, withSchedules)
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Intervention, 0)
	for rows.Next() {
		var iv entities.Intervention
		dest := []interface{}{
			&iv.ID, &iv.EquipmentID, &iv.InterventionType, &iv.Title,
			&iv.Description, &iv.Priority, &iv.Status, &iv.AssignedTechnician,
			&iv.PlannedDate, &iv.StartedAt, &iv.CompletedAt,
			&iv.EstimatedDuration, &iv.ActualDuration, &iv.Cost, &iv.Notes,
			&iv.CreatedAt, &iv.UpdatedAt,
			&iv.EquipmentName, &iv.EquipmentCode, &iv.EquipmentLocation,
			&iv.EquipmentCriticality,
			&iv.BreakdownID, &iv.BreakdownTitle, &iv.BreakdownSeverity,
		}
		if withSchedules {
			dest = append(dest, &iv.ScheduleID, &iv.ScheduleName, &iv.FrequencyType, &iv.FrequencyValue)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		list = append(list, iv)
	}
	return list, rows.Err()
}

func (r *InterventionRepository) FindIntervention(ctx context.Context, id int64, typeRestriction string) (*entities.Intervention, error) {
	builder := psql.Select(
		"mi.id", "mi.equipment_id", "mi.intervention_type", "mi.title",
		"mi.description", "mi.priority", "mi.status", "mi.assigned_technician",
		"mi.planned_date", "mi.started_at", "mi.completed_at",
		"mi.estimated_duration", "mi.actual_duration", "mi.cost", "mi.notes",
		"mi.created_at", "mi.updated_at",
		"e.name AS equipment_name", "e.code AS equipment_code",
		"e.location AS equipment_location", "e.criticality AS equipment_criticality",
	).
		From(interventionTable + " mi").
		LeftJoin("equipment e ON mi.equipment_id = e.id").
		Where(sq.Eq{"mi.id": id})

	if typeRestriction != "" {
		builder = builder.Where(sq.Eq{"mi.intervention_type": typeRestriction})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var iv entities.Intervention
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&iv.ID, &iv.EquipmentID, &iv.InterventionType, &iv.Title,
		&iv.Description, &iv.Priority, &iv.Status, &iv.AssignedTechnician,
		&iv.PlannedDate, &iv.StartedAt, &iv.CompletedAt,
		&iv.EstimatedDuration, &iv.ActualDuration, &iv.Cost, &iv.Notes,
		&iv.CreatedAt, &iv.UpdatedAt,
		&iv.EquipmentName, &iv.EquipmentCode, &iv.EquipmentLocation,
		&iv.EquipmentCriticality,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &iv, nil
}

func (r *InterventionRepository) CreateIntervention(ctx context.Context, iv entities.Intervention) (*entities.Intervention, error) {
	query, args, err := psql.Insert(interventionTable).
		Columns("equipment_id", "intervention_type", "title", "description",
			"priority", "status", "assigned_technician", "planned_date",
			"estimated_duration", "cost", "notes").
		Values(iv.EquipmentID, iv.InterventionType, iv.Title, iv.Description,
			iv.Priority, iv.Status, iv.AssignedTechnician, iv.PlannedDate,
			iv.EstimatedDuration, iv.Cost, iv.Notes).
		Suffix(returning(interventionColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var created entities.Intervention
	if err := scanInterventionBase(r.storage.QueryRow(ctx, query, args...), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *InterventionRepository) UpdateIntervention(ctx context.Context, id int64, iv entities.Intervention) (*entities.Intervention, error) {
	query, args, err := psql.Update(interventionTable).
		Set("equipment_id", iv.EquipmentID).
		Set("intervention_type", iv.InterventionType).
		Set("title", iv.Title).
		Set("description", iv.Description).
		Set("priority", iv.Priority).
		Set("status", iv.Status).
		Set("assigned_technician", iv.AssignedTechnician).
		Set("planned_date", iv.PlannedDate).
		Set("started_at", iv.StartedAt).
		Set("completed_at", iv.CompletedAt).
		Set("estimated_duration", iv.EstimatedDuration).
		Set("actual_duration", iv.ActualDuration).
		Set("cost", iv.Cost).
		Set("notes", iv.Notes).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(interventionColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var updated entities.Intervention
	if err := scanInterventionBase(r.storage.QueryRow(ctx, query, args...), &updated); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *InterventionRepository) DeleteIntervention(ctx context.Context, id int64, typeRestriction string) error {
	builder := psql.Delete(interventionTable).Where(sq.Eq{"id": id})
	if typeRestriction != "" {
		builder = builder.Where(sq.Eq{"intervention_type": typeRestriction})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
