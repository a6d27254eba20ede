// Command migrate applies the database schema explicitly. Production
// deployments run this before rolling out a new server version; in other
// environments the server applies the schema itself on startup.
package main

import (
	"log"

	"reelmates/internal/config"
	"reelmates/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("database schema is up to date")
}
