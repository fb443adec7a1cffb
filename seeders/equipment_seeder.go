package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - equipment")

	var count int64
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM equipment").Scan(&count); err != nil {
		return fmt.Errorf("failed to count equipment: %w", err)
	}
	if count > 0 {
		log.Println("    equipment already present, skipping")
		return nil
	}

	rows := []struct {
		code, name, category, location, status, criticality string
	}{
		{"CNC-001", "CNC Milling Machine", "machining", "Workshop A", "active", "high"},
		{"CMP-001", "Air Compressor", "utilities", "Plant Room", "active", "medium"},
		{"CNV-001", "Conveyor Belt 1", "handling", "Assembly Line", "maintenance", "high"},
		{"PMP-001", "Hydraulic Pump", "hydraulics", "Workshop B", "active", "medium"},
		{"GEN-001", "Backup Generator", "utilities", "Plant Room", "inactive", "low"},
	}
	for _, r := range rows {
		_, err := db.Exec(ctx,
			`INSERT INTO equipment (code, name, category, location, status, criticality)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (code) DO NOTHING`,
			r.code, r.name, r.category, r.location, r.status, r.criticality)
		if err != nil {
			return fmt.Errorf("failed to insert equipment %s: %w", r.code, err)
		}
	}
	return nil
}
