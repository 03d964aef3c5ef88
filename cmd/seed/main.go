// Command seed fills an empty database with a small, fully connected demo
// marketplace: one worker, one petitioner, and one engagement in each direction.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"services-marketplace-server/config"
	"services-marketplace-server/database"
	"services-marketplace-server/models"
)

func main() {
	reset := flag.Bool("reset", false, "drop and recreate every table before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.Load()

	gormDB, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	registry := models.NewRegistry()
	if *reset {
		err = database.Reset(gormDB, registry)
	} else {
		err = database.Migrate(gormDB, registry)
	}
	if err != nil {
		log.Fatal("Failed to prepare schema:", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}
	log.Println("✅ Successfully connected to database")

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		log.Fatal("Failed to check users count:", err)
	}
	if count > 0 {
		log.Printf("⚠️  Users already exist (%d users found). Skipping insertion.", count)
		return
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Fatal("Failed to begin transaction:", err)
	}
	if err := seed(ctx, tx); err != nil {
		tx.Rollback()
		log.Fatalf("❌ Seeding failed: %v", database.Translate(err))
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("❌ Commit failed: %v", database.Translate(err))
	}

	log.Println("🎉 Demo marketplace seeded")
}
