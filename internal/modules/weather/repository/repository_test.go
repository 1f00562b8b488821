package repository

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"farmassist/internal/migrate"
)

// Minimal schema matching internal/migrate/sql/0001_schema.sql for in-memory tests.
const testSchema = `
CREATE TABLE IF NOT EXISTS forecast_days (
  day_offset    INTEGER PRIMARY KEY,
  temperature_c REAL    NOT NULL,
  humidity_pct  REAL    NOT NULL,
  wind_kmh      REAL    NOT NULL,
  precip_pct    REAL    NOT NULL
);
`

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(testSchema); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			t.Fatalf("close db: %v", closeErr)
		}
		t.Fatalf("exec schema: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("close db: %v", closeErr)
		}
	})
	return db
}

func TestListForecast_Empty(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	series, err := repo.ListForecast(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("ListForecast: %v", err)
	}
	if len(series) != 0 {
		t.Fatalf("ListForecast: got %d days, want 0", len(series))
	}
}

func TestListForecast_Seeded(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	if err := migrate.Run(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := NewRepository(db)

	ist := time.FixedZone("IST", 5*3600+1800)
	anchor := time.Date(2026, 10, 17, 22, 15, 0, 0, ist)
	series, err := repo.ListForecast(context.Background(), anchor)
	if err != nil {
		t.Fatalf("ListForecast: %v", err)
	}
	if len(series) != 7 {
		t.Fatalf("len(series) = %d; want 7", len(series))
	}
	if err := series.Validate(); err != nil {
		t.Fatalf("seeded series invalid: %v", err)
	}
	if got := series[0].Date.Format("2006-01-02"); got != "2026-10-17" {
		t.Errorf("day 0 date = %s; want 2026-10-17", got)
	}
	if got := series[6].Date.Format("2006-01-02"); got != "2026-10-23" {
		t.Errorf("day 6 date = %s; want 2026-10-23", got)
	}
	if series[3].PrecipPct != 70 {
		t.Errorf("day 3 precip = %v; want 70", series[3].PrecipPct)
	}
}

func TestListForecast_Gap(t *testing.T) {
	db := setupTestDB(t)
	if _, err := db.Exec(`INSERT INTO forecast_days VALUES (0, 30, 50, 5, 10), (2, 30, 50, 5, 10)`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	repo := NewRepository(db)

	_, err := repo.ListForecast(context.Background(), time.Now())
	if err == nil || !strings.Contains(err.Error(), "out of sequence") {
		t.Fatalf("ListForecast error = %v; want out of sequence", err)
	}
}
