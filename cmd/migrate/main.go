// Command migrate applies the database schema.
package main

import (
	"log"

	"github.com/companyblog/backend/pkg/config"
)

func main() {
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	if err := config.Migrate(db.Postgres); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations applied.")
}
