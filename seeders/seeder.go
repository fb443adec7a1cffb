package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoData loads a small demo dataset in dependency order: equipment
// first, then the records that reference it.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Seeding demo data...")

	if err := seedEquipment(ctx, db); err != nil {
		log.Fatalf("equipment seeding failed: %v", err)
	}
	if err := seedBreakdowns(ctx, db); err != nil {
		log.Fatalf("breakdown seeding failed: %v", err)
	}
	if err := seedInterventions(ctx, db); err != nil {
		log.Fatalf("intervention seeding failed: %v", err)
	}
	if err := seedSpareParts(ctx, db); err != nil {
		log.Fatalf("spare part seeding failed: %v", err)
	}

	log.Println("Demo data seeded.")
}
