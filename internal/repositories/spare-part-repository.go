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

const sparePartTable = "spare_parts"

// stockStatusCase derives the stock classification; rule order matters so
// that a zero stock with a zero minimum still reads out_of_stock.
const stockStatusCase = `CASE
		WHEN current_stock <= 0 THEN 'out_of_stock'
		WHEN current_stock <= minimum_stock THEN 'low_stock'
		WHEN current_stock >= maximum_stock THEN 'overstock'
		ELSE 'normal'
	END AS stock_status`

var sparePartColumns = []string{
	"id", "part_number", "name", "description", "category", "manufacturer",
	"supplier", "unit_price", "currency", "current_stock", "minimum_stock",
	"maximum_stock", "location", "unit_of_measure", "created_at", "updated_at",
}

type SparePartRepositoryInterface interface {
	ListSpareParts(ctx context.Context, filter dto.SparePartFilter) ([]entities.SparePart, error)
	FindSparePart(ctx context.Context, id int64) (*entities.SparePart, error)
	CreateSparePart(ctx context.Context, p entities.SparePart) (*entities.SparePart, error)
	UpdateSparePart(ctx context.Context, id int64, p entities.SparePart) (*entities.SparePart, error)
	DeleteSparePart(ctx context.Context, id int64) error
}

type SparePartRepository struct {
	storage querier
}

func NewSparePartRepository(storage *pgxpool.Pool) SparePartRepositoryInterface {
	return &SparePartRepository{storage: storage}
}

func buildSparePartListQuery(filter dto.SparePartFilter) (string, []interface{}, error) {
	columns := append(append([]string{}, sparePartColumns...), stockStatusCase)
	builder := psql.Select(columns...).
		From(sparePartTable).
		OrderBy("name ASC")

	if filter.Search != "" {
		builder = builder.Where(searchPredicate(filter.Search, "name", "part_number", "description"))
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Supplier != "" {
		builder = builder.Where(sq.Eq{"supplier": filter.Supplier})
	}

	switch filter.StockStatus {
	case entities.StockStatusOutOfStock:
		builder = builder.Where("current_stock <= 0")
	case entities.StockStatusLow:
		builder = builder.Where("current_stock > 0 AND current_stock <= minimum_stock")
	case entities.StockStatusOverstock:
		builder = builder.Where("current_stock >= maximum_stock")
	case entities.StockStatusNormal:
		builder = builder.Where("current_stock > minimum_stock AND current_stock < maximum_stock")
	}

	return builder.ToSql()
}

// scanSparePartDerived scans rows that include the stock_status column.
func scanSparePartDerived(row pgx.Row, p *entities.SparePart) error {
	return row.Scan(
		&p.ID, &p.PartNumber, &p.Name, &p.Description, &p.Category,
		&p.Manufacturer, &p.Supplier, &p.UnitPrice, &p.Currency,
		&p.CurrentStock, &p.MinimumStock, &p.MaximumStock, &p.Location,
		&p.UnitOfMeasure, &p.CreatedAt, &p.UpdatedAt, &p.StockStatus,
	)
}

func scanSparePart(row pgx.Row, p *entities.SparePart) error {
	return row.Scan(
		&p.ID, &p.PartNumber, &p.Name, &p.Description, &p.Category,
		&p.Manufacturer, &p.Supplier, &p.UnitPrice, &p.Currency,
		&p.CurrentStock, &p.MinimumStock, &p.MaximumStock, &p.Location,
		&p.UnitOfMeasure, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *SparePartRepository) ListSpareParts(ctx context.Context, filter dto.SparePartFilter) ([]entities.SparePart, error) {
	query, args, err := buildSparePartListQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.SparePart, 0)
	for rows.Next() {
		var p entities.SparePart
		if err := scanSparePartDerived(rows, &p); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *SparePartRepository) FindSparePart(ctx context.Context, id int64) (*entities.SparePart, error) {
	columns := append(append([]string{}, sparePartColumns...), stockStatusCase)
	query, args, err := psql.Select(columns...).
		From(sparePartTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var p entities.SparePart
	if err := scanSparePartDerived(r.storage.QueryRow(ctx, query, args...), &p); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *SparePartRepository) CreateSparePart(ctx context.Context, p entities.SparePart) (*entities.SparePart, error) {
	query, args, err := psql.Insert(sparePartTable).
		Columns("part_number", "name", "description", "category", "manufacturer",
			"supplier", "unit_price", "currency", "current_stock",
			"minimum_stock", "maximum_stock", "location", "unit_of_measure").
		Values(p.PartNumber, p.Name, p.Description, p.Category, p.Manufacturer,
			p.Supplier, p.UnitPrice, p.Currency, p.CurrentStock,
			p.MinimumStock, p.MaximumStock, p.Location, p.UnitOfMeasure).
		Suffix(returning(sparePartColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var created entities.SparePart
	if err := scanSparePart(r.storage.QueryRow(ctx, query, args...), &created); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Part number already exists", err)
		}
		return nil, err
	}
	created.StockStatus = entities.ComputeStockStatus(created.CurrentStock, created.MinimumStock, created.MaximumStock)
	return &created, nil
}

func (r *SparePartRepository) UpdateSparePart(ctx context.Context, id int64, p entities.SparePart) (*entities.SparePart, error) {
	query, args, err := psql.Update(sparePartTable).
		Set("part_number", p.PartNumber).
		Set("name", p.Name).
		Set("description", p.Description).
		Set("category", p.Category).
		Set("manufacturer", p.Manufacturer).
		Set("supplier", p.Supplier).
		Set("unit_price", p.UnitPrice).
		Set("currency", p.Currency).
		Set("current_stock", p.CurrentStock).
		Set("minimum_stock", p.MinimumStock).
		Set("maximum_stock", p.MaximumStock).
		Set("location", p.Location).
		Set("unit_of_measure", p.UnitOfMeasure).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(sparePartColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var updated entities.SparePart
	if err := scanSparePart(r.storage.QueryRow(ctx, query, args...), &updated); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Part number already exists", err)
		}
		return nil, err
	}
	updated.StockStatus = entities.ComputeStockStatus(updated.CurrentStock, updated.MinimumStock, updated.MaximumStock)
	return &updated, nil
}

func (r *SparePartRepository) DeleteSparePart(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(sparePartTable).Where(sq.Eq{"id": id}).ToSql()
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
