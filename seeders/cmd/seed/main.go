package main

import (
	"flag"
	"log"

	"gmao-system/pkg/config"
	"gmao-system/pkg/database/postgresql"
	"gmao-system/seeders"
)

func main() {
	runDemo := flag.Bool("demo", false, "load the demo dataset (equipment, breakdowns, interventions, stock)")
	flag.Parse()

	if !*runDemo {
		log.Println("No seeder selected.")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	log.Println("Using DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	seeders.SeedDemoData(dbPool)
}
