package main

import (
	"flag"
	"log"

	"fytai-health-api/internal/config"
	"fytai-health-api/internal/database"
	"fytai-health-api/internal/logger"
)

func main() {
	migrationsPath := flag.String("path", "migrations", "path to the migrations directory")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewSQLXSQLiteDB(cfg.Archive.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open archive database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, *migrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")
}
