package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"services-marketplace-server/database"
	"services-marketplace-server/testutil"
)

func TestSeedBuildsConnectedMarketplace(t *testing.T) {
	testutil.OpenStore(t)

	db, err := sql.Open("postgres", os.Getenv("TEST_DB_URL"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := seed(ctx, tx); err != nil {
		tx.Rollback()
		t.Fatalf("seed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	want := map[string]int{
		"users": 2, "user_login": 2, "worker": 1, "petitioner": 1,
		"services": 1, "petitioner_services": 1, "evaluation_petitioner": 1, "evaluation_worker": 1,
		"request": 1, "worker_request": 1, "petitioner_review": 1, "worker_review": 1,
	}
	for table, n := range want {
		var got int
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&got); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if got != n {
			t.Errorf("%s has %d rows, want %d", table, got, n)
		}
	}

	// Deleting the worker's user empties everything hanging off the worker.
	if _, err := db.ExecContext(ctx, "DELETE FROM users WHERE mail = $1", workerUser.Mail); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for _, table := range []string{"services", "petitioner_services", "evaluation_worker", "worker_request", "worker_review"} {
		var got int
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&got); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if got != 0 {
			t.Errorf("%s has %d rows after cascade", table, got)
		}
	}
}

func TestSeedTwiceIsUniqueViolation(t *testing.T) {
	testutil.OpenStore(t)

	db, err := sql.Open("postgres", os.Getenv("TEST_DB_URL"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			t.Fatalf("begin: %v", err)
		}
		err = seed(ctx, tx)
		if i == 0 {
			if err != nil {
				t.Fatalf("first seed: %v", err)
			}
			tx.Commit()
			continue
		}
		tx.Rollback()
		if !errors.Is(database.Translate(err), database.ErrUniqueViolation) {
			t.Fatalf("second seed error = %v, want unique violation", err)
		}
	}
}
