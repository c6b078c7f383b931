package main

import (
	"database/sql"
	"flag"
	"os"

	"netpoleon-site/internal/config"

	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

// Seeds the resource-type lookup table and optionally applies a raw SQL file.
// AutoMigrate owns the schema; this covers the data migrations it cannot.
func main() {
	sqlFile := flag.String("file", "", "optional SQL file to apply")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	seedResourceTypes(db)

	if *sqlFile != "" {
		sqlBytes, err := os.ReadFile(*sqlFile)
		if err != nil {
			log.Fatalf("Failed to read migration file: %v", err)
		}

		log.Printf("Applying migration: %s", *sqlFile)
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			log.Fatalf("Failed to apply migration: %v", err)
		}
	}

	log.Println("Migration completed successfully")
}

func seedResourceTypes(db *sql.DB) {
	types := []string{"Blog", "Case Study", "Whitepaper", "Datasheet", "Video"}

	for _, name := range types {
		_, err := db.Exec(
			`INSERT INTO resource_types (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			name,
		)
		if err != nil {
			log.Fatalf("Failed to seed resource type %q: %v", name, err)
		}
	}
	log.Printf("Seeded %d resource types", len(types))
}
