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

const breakdownTable = "breakdowns"

var breakdownColumns = []string{
	"id", "equipment_id", "title", "description", "severity", "reported_by",
	"reported_at", "symptoms", "cause_analysis", "resolution", "status",
	"resolved_at", "downtime_minutes", "cost", "created_at", "updated_at",
}

var breakdownListColumns = []string{
	"b.id", "b.equipment_id", "b.title", "b.description", "b.severity",
	"b.reported_by", "b.reported_at", "b.symptoms", "b.cause_analysis",
	"b.resolution", "b.status", "b.resolved_at", "b.downtime_minutes",
	"b.cost", "b.created_at", "b.updated_at",
	"e.name AS equipment_name", "e.code AS equipment_code",
	"e.location AS equipment_location",
}

type BreakdownRepositoryInterface interface {
	ListBreakdowns(ctx context.Context, filter dto.BreakdownFilter) ([]entities.Breakdown, error)
	FindBreakdown(ctx context.Context, id int64) (*entities.Breakdown, error)
	CreateBreakdown(ctx context.Context, b entities.Breakdown) (*entities.Breakdown, error)
	UpdateBreakdown(ctx context.Context, id int64, b entities.Breakdown) (*entities.Breakdown, error)
	DeleteBreakdown(ctx context.Context, id int64) error
}

type BreakdownRepository struct {
	storage querier
}

func NewBreakdownRepository(storage *pgxpool.Pool) BreakdownRepositoryInterface {
	return &BreakdownRepository{storage: storage}
}

func buildBreakdownListQuery(filter dto.BreakdownFilter) (string, []interface{}, error) {
	builder := psql.Select(breakdownListColumns...).
		From(breakdownTable + " b").
		LeftJoin("equipment e ON b.equipment_id = e.id").
		OrderBy("b.reported_at DESC")

	if filter.Search != "" {
		builder = builder.Where(searchPredicate(filter.Search, "b.title", "b.description", "e.name"))
	}
	if filter.Severity != "" {
		builder = builder.Where(sq.Eq{"b.severity": filter.Severity})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"b.status": filter.Status})
	}
	if filter.EquipmentID != "" {
		builder = builder.Where(sq.Eq{"b.equipment_id": filter.EquipmentID})
	}

	return builder.ToSql()
}

// scanBreakdownJoined scans a row produced with breakdownListColumns.
func scanBreakdownJoined(row pgx.Row, b *entities.Breakdown) error {
	return row.Scan(
		&b.ID, &b.EquipmentID, &b.Title, &b.Description, &b.Severity,
		&b.ReportedBy, &b.ReportedAt, &b.Symptoms, &b.CauseAnalysis,
		&b.Resolution, &b.Status, &b.ResolvedAt, &b.DowntimeMinutes,
		&b.Cost, &b.CreatedAt, &b.UpdatedAt,
		&b.EquipmentName, &b.EquipmentCode, &b.EquipmentLocation,
	)
}

// scanBreakdown scans a bare table row (insert/update RETURNING).
func scanBreakdown(row pgx.Row, b *entities.Breakdown) error {
	return row.Scan(
		&b.ID, &b.EquipmentID, &b.Title, &b.Description, &b.Severity,
		&b.ReportedBy, &b.ReportedAt, &b.Symptoms, &b.CauseAnalysis,
		&b.Resolution, &b.Status, &b.ResolvedAt, &b.DowntimeMinutes,
		&b.Cost, &b.CreatedAt, &b.UpdatedAt,
	)
}

func (r *BreakdownRepository) ListBreakdowns(ctx context.Context, filter dto.BreakdownFilter) ([]entities.Breakdown, error) {
	query, args, err := buildBreakdownListQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Breakdown, 0)
	for rows.Next() {
		var b entities.Breakdown
		if err := scanBreakdownJoined(rows, &b); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *BreakdownRepository) FindBreakdown(ctx context.Context, id int64) (*entities.Breakdown, error) {
	query, args, err := psql.Select(breakdownListColumns...).
		From(breakdownTable + " b").
		LeftJoin("equipment e ON b.equipment_id = e.id").
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var b entities.Breakdown
	if err := scanBreakdownJoined(r.storage.QueryRow(ctx, query, args...), &b); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BreakdownRepository) CreateBreakdown(ctx context.Context, b entities.Breakdown) (*entities.Breakdown, error) {
	query, args, err := psql.Insert(breakdownTable).
		Columns("equipment_id", "title", "description", "severity", "reported_by",
			"symptoms", "cause_analysis", "resolution", "status",
			"downtime_minutes", "cost").
		Values(b.EquipmentID, b.Title, b.Description, b.Severity, b.ReportedBy,
			b.Symptoms, b.CauseAnalysis, b.Resolution, b.Status,
			b.DowntimeMinutes, b.Cost).
		Suffix(returning(breakdownColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var created entities.Breakdown
	if err := scanBreakdown(r.storage.QueryRow(ctx, query, args...), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *BreakdownRepository) UpdateBreakdown(ctx context.Context, id int64, b entities.Breakdown) (*entities.Breakdown, error) {
	query, args, err := psql.Update(breakdownTable).
		Set("equipment_id", b.EquipmentID).
		Set("title", b.Title).
		Set("description", b.Description).
		Set("severity", b.Severity).
		Set("reported_by", b.ReportedBy).
		Set("symptoms", b.Symptoms).
		Set("cause_analysis", b.CauseAnalysis).
		Set("resolution", b.Resolution).
		Set("status", b.Status).
		Set("resolved_at", b.ResolvedAt).
		Set("downtime_minutes", b.DowntimeMinutes).
		Set("cost", b.Cost).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(breakdownColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var updated entities.Breakdown
	if err := scanBreakdown(r.storage.QueryRow(ctx, query, args...), &updated); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *BreakdownRepository) DeleteBreakdown(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(breakdownTable).Where(sq.Eq{"id": id}).ToSql()
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
