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

const equipmentTable = "equipment"

var equipmentColumns = []string{
	"id", "code", "name", "description", "category", "location",
	"manufacturer", "model", "serial_number", "purchase_date",
	"warranty_end_date", "status", "criticality", "created_at", "updated_at",
}

type EquipmentRepositoryInterface interface {
	ListEquipment(ctx context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id int64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, e entities.Equipment) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, patch dto.EquipmentPatch) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id int64) error
}

type EquipmentRepository struct {
	storage querier
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func buildEquipmentListQuery(filter dto.EquipmentFilter) (string, []interface{}, error) {
	builder := psql.Select(equipmentColumns...).
		From(equipmentTable).
		OrderBy("name ASC")

	if filter.Search != "" {
		builder = builder.Where(searchPredicate(filter.Search, "name", "code", "description"))
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Location != "" {
		builder = builder.Where(sq.Eq{"location": filter.Location})
	}

	return builder.ToSql()
}

func scanEquipment(row pgx.Row, e *entities.Equipment) error {
	return row.Scan(
		&e.ID, &e.Code, &e.Name, &e.Description, &e.Category, &e.Location,
		&e.Manufacturer, &e.Model, &e.SerialNumber, &e.PurchaseDate,
		&e.WarrantyEndDate, &e.Status, &e.Criticality, &e.CreatedAt, &e.UpdatedAt,
	)
}

func (r *EquipmentRepository) ListEquipment(ctx context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, error) {
	query, args, err := buildEquipmentListQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		var e entities.Equipment
		if err := scanEquipment(rows, &e); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id int64) (*entities.Equipment, error) {
	query, args, err := psql.Select(equipmentColumns...).
		From(equipmentTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var e entities.Equipment
	if err := scanEquipment(r.storage.QueryRow(ctx, query, args...), &e); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, e entities.Equipment) (*entities.Equipment, error) {
	query, args, err := psql.Insert(equipmentTable).
		Columns("code", "name", "description", "category", "location",
			"manufacturer", "model", "serial_number", "purchase_date",
			"warranty_end_date", "status", "criticality").
		Values(e.Code, e.Name, e.Description, e.Category, e.Location,
			e.Manufacturer, e.Model, e.SerialNumber, e.PurchaseDate,
			e.WarrantyEndDate, e.Status, e.Criticality).
		Suffix(returning(equipmentColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var created entities.Equipment
	if err := scanEquipment(r.storage.QueryRow(ctx, query, args...), &created); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Equipment code already exists", err)
		}
		return nil, err
	}
	return &created, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id int64, patch dto.EquipmentPatch) (*entities.Equipment, error) {
	builder := psql.Update(equipmentTable)

	if patch.Code != nil {
		builder = builder.Set("code", *patch.Code)
	}
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.Category != nil {
		builder = builder.Set("category", *patch.Category)
	}
	if patch.Location != nil {
		builder = builder.Set("location", *patch.Location)
	}
	if patch.Manufacturer != nil {
		builder = builder.Set("manufacturer", *patch.Manufacturer)
	}
	if patch.Model != nil {
		builder = builder.Set("model", *patch.Model)
	}
	if patch.SerialNumber != nil {
		builder = builder.Set("serial_number", *patch.SerialNumber)
	}
	if patch.PurchaseDate != nil {
		builder = builder.Set("purchase_date", *patch.PurchaseDate)
	}
	if patch.WarrantyEndDate != nil {
		builder = builder.Set("warranty_end_date", *patch.WarrantyEndDate)
	}
	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}
	if patch.Criticality != nil {
		builder = builder.Set("criticality", *patch.Criticality)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(equipmentColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var updated entities.Equipment
	if err := scanEquipment(r.storage.QueryRow(ctx, query, args...), &updated); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Equipment code already exists", err)
		}
		return nil, err
	}
	return &updated, nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(equipmentTable).Where(sq.Eq{"id": id}).ToSql()
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
