package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedBreakdowns(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - breakdowns")

	var count int64
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM breakdowns").Scan(&count); err != nil {
		return fmt.Errorf("failed to count breakdowns: %w", err)
	}
	if count > 0 {
		log.Println("    breakdowns already present, skipping")
		return nil
	}

	rows := []struct {
		equipmentCode, title, severity, status string
		downtime                               int64
	}{
		{"CNV-001", "Belt misalignment", "high", "in_progress", 120},
		{"CNC-001", "Spindle vibration", "medium", "reported", 0},
		{"PMP-001", "Pressure drop under load", "medium", "resolved", 45},
	}
	for _, r := range rows {
		_, err := db.Exec(ctx,
			`INSERT INTO breakdowns (equipment_id, title, severity, status, downtime_minutes, resolved_at)
			 SELECT e.id, $2, $3, $4, $5,
			        CASE WHEN $4 = 'resolved' THEN now() END
			 FROM equipment e WHERE e.code = $1`,
			r.equipmentCode, r.title, r.severity, r.status, r.downtime)
		if err != nil {
			return fmt.Errorf("failed to insert breakdown %q: %w", r.title, err)
		}
	}
	return nil
}
