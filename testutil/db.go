// Package testutil holds helpers shared by database-backed tests.
package testutil

import (
	"os"
	"testing"
	"time"

	"gorm.io/datatypes"

	"services-marketplace-server/config"
	"services-marketplace-server/database"
	"services-marketplace-server/models"
	"services-marketplace-server/store"
)

// OpenStore connects to TEST_DB_URL and recreates every table.
//
// It is destructive, and it skips the test when TEST_DB_URL is unset.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := os.Getenv("TEST_DB_URL")
	if dsn == "" {
		t.Skip("TEST_DB_URL not set; skipping Postgres tests")
	}
	db, err := database.Open(config.DatabaseConfig{URL: dsn, LogLevel: "silent"})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := database.Reset(db, models.NewRegistry()); err != nil {
		t.Fatalf("reset schema: %v", err)
	}
	return store.New(db)
}

func Date(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func Ptr[T any](v T) *T {
	return &v
}

// NewUser returns a valid, unsaved user.
func NewUser(mail string, phone int64) *models.User {
	return &models.User{
		FirstName:   "Ana",
		Lastname:    "Rojas",
		Mail:        mail,
		PhoneNumber: phone,
		RutDigit:    "K",
		RutNumber:   12345678,
		Age:         30,
		Rating:      4.5,
	}
}
