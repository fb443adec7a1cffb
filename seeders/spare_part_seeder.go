package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedSpareParts(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - spare parts")

	var count int64
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM spare_parts").Scan(&count); err != nil {
		return fmt.Errorf("failed to count spare parts: %w", err)
	}
	if count > 0 {
		log.Println("    spare parts already present, skipping")
		return nil
	}

	rows := []struct {
		partNumber, name, category, supplier string
		price                                float64
		current, minimum, maximum            int64
	}{
		{"BRG-6204", "Ball Bearing 6204", "bearings", "SKF Distribution", 8.50, 24, 10, 50},
		{"BLT-A42", "V-Belt A42", "belts", "Gates Supply", 12.90, 3, 5, 30},
		{"FLT-H200", "Hydraulic Filter H200", "filters", "Parker Stock", 35.00, 0, 2, 20},
		{"OIL-68", "Hydraulic Oil ISO 68 (20L)", "lubricants", "Total Industrie", 89.00, 45, 10, 40},
	}
	for _, r := range rows {
		_, err := db.Exec(ctx,
			`INSERT INTO spare_parts
			   (part_number, name, category, supplier, unit_price, current_stock, minimum_stock, maximum_stock)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (part_number) DO NOTHING`,
			r.partNumber, r.name, r.category, r.supplier, r.price, r.current, r.minimum, r.maximum)
		if err != nil {
			return fmt.Errorf("failed to insert spare part %s: %w", r.partNumber, err)
		}
	}
	return nil
}
