package main

import (
	"flag"
	"log"
	"time"

	"github.com/osidou/osidou-web/internal/config"
	"github.com/osidou/osidou-web/internal/database"
	"github.com/osidou/osidou-web/internal/migration"
	"github.com/osidou/osidou-web/internal/repository"
)

func main() {
	configPath := flag.String("config", "configs/config.local.yaml", "config file path")
	purgeIdle := flag.Duration("purge-idle", 0, "delete sessions idle longer than this (e.g. 720h); 0 disables")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	config.LoadDotEnv()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Open(cfg.Database, *verbose)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying DB: %v", err)
	}
	defer sqlDB.Close()

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Schema up to date")

	if *purgeIdle > 0 {
		n, err := repository.NewSessionRepository(db).DeleteIdleSince(time.Now().Add(-*purgeIdle))
		if err != nil {
			log.Fatalf("Purge failed: %v", err)
		}
		log.Printf("Purged %d idle sessions", n)
	}
}
