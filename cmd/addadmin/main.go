package main

import (
	"context"
	"flag"

	"netpoleon-site/internal/config"
	"netpoleon-site/internal/database"
	"netpoleon-site/internal/services"

	log "github.com/sirupsen/logrus"
)

// Bootstraps a panel admin from the command line.
func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password (min 8 characters)")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Both -email and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := database.Connect(cfg.GetDSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	authService := services.NewAuthService(database.GetDB())
	admin, err := authService.CreateAdmin(context.Background(), *email, *password, *name)
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin %s created with id %d", admin.Email, admin.ID)
}
