package main

import (
	"flag"
	"log"

	"daily-quiz/internal/config"
	"daily-quiz/internal/database"
)

func main() {
	var down bool
	var source string
	flag.BoolVar(&down, "down", false, "roll back the most recent migration instead of applying")
	flag.StringVar(&source, "source", "file://migrations", "migration source URL")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewSQLXSQLiteDB(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if down {
		if err := database.RollbackMigrations(db, source); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		log.Println("Rollback completed successfully")
		return
	}

	if err := database.RunMigrations(db, source); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully")
}
