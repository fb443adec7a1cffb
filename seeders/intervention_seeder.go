package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedInterventions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - maintenance interventions")

	var count int64
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM maintenance_interventions").Scan(&count); err != nil {
		return fmt.Errorf("failed to count interventions: %w", err)
	}
	if count > 0 {
		log.Println("    interventions already present, skipping")
		return nil
	}

	rows := []struct {
		equipmentCode, ivType, title, priority, status, technician string
	}{
		{"CNC-001", "preventive", "Quarterly lubrication", "medium", "planned", "J. Martin"},
		{"CNV-001", "curative", "Realign conveyor belt", "urgent", "in_progress", "A. Dupont"},
		{"CMP-001", "predictive", "Vibration analysis", "low", "planned", ""},
		{"PMP-001", "corrective", "Replace pressure valve", "high", "completed", "J. Martin"},
	}
	for _, r := range rows {
		_, err := db.Exec(ctx,
			`INSERT INTO maintenance_interventions
			   (equipment_id, intervention_type, title, priority, status, assigned_technician,
			    planned_date, started_at, completed_at, actual_duration)
			 SELECT e.id, $2, $3, $4, $5, NULLIF($6, ''),
			        now() + interval '7 days',
			        CASE WHEN $5 IN ('in_progress', 'completed') THEN now() - interval '2 hours' END,
			        CASE WHEN $5 = 'completed' THEN now() END,
			        CASE WHEN $5 = 'completed' THEN 90::bigint END
			 FROM equipment e WHERE e.code = $1`,
			r.equipmentCode, r.ivType, r.title, r.priority, r.status, r.technician)
		if err != nil {
			return fmt.Errorf("failed to insert intervention %q: %w", r.title, err)
		}
	}
	return nil
}
