package migrate

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	_ "github.com/mattn/go-sqlite3"
)

func openMemDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// one connection so every statement sees the same in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})
	return db
}

func count(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestRun_AppliesEmbeddedMigrations(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	if err := Run(ctx, db); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := count(t, db, "points"); got != 6 {
		t.Errorf("points = %d; want 6", got)
	}
	if got := count(t, db, "forecast_days"); got != 7 {
		t.Errorf("forecast_days = %d; want 7", got)
	}
	if got := count(t, db, "community_posts"); got != 3 {
		t.Errorf("community_posts = %d; want 3", got)
	}
	if got := count(t, db, "community_groups"); got != 3 {
		t.Errorf("community_groups = %d; want 3", got)
	}
	if got := count(t, db, tableName); got != 4 {
		t.Errorf("%s = %d; want 4", tableName, got)
	}
}

func TestRun_Idempotent(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	if err := Run(ctx, db); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := Run(ctx, db); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if got := count(t, db, "points"); got != 6 {
		t.Errorf("points after second run = %d; want 6", got)
	}
}

func TestRun_FailedMigrationRollsBack(t *testing.T) {
	db := openMemDB(t)
	fsys := fstest.MapFS{
		"sql/0001_ok.sql":     {Data: []byte(`CREATE TABLE a (id INTEGER);`)},
		"sql/0002_broken.sql": {Data: []byte(`INSERT INTO a (id) VALUES (1); INSERT INTO missing VALUES (1);`)},
		"sql/README.md":       {Data: []byte(`ignored`)},
	}

	err := run(context.Background(), db, fsys)
	if err == nil {
		t.Fatal("run() error = nil; want failure from 0002")
	}

	if got := count(t, db, "a"); got != 0 {
		t.Errorf("rows in a = %d; want 0 after rollback", got)
	}
	var versions []string
	rows, err := db.Query("SELECT version FROM " + tableName + " ORDER BY version")
	if err != nil {
		t.Fatalf("query versions: %v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			t.Fatalf("scan: %v", err)
		}
		versions = append(versions, v)
	}
	if len(versions) != 1 || versions[0] != "0001" {
		t.Errorf("applied versions = %v; want [0001]", versions)
	}
}

func Test_parseMigrationFilename(t *testing.T) {
	tests := []struct {
		in          string
		wantVersion string
		wantName    string
		wantOK      bool
	}{
		{in: "0001_schema.sql", wantVersion: "0001", wantName: "schema", wantOK: true},
		{in: "0042_seed_points.sql", wantVersion: "0042", wantName: "seed_points", wantOK: true},
		{in: "1_schema.sql", wantOK: false},
		{in: "0001_schema.txt", wantOK: false},
		{in: "schema.sql", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, n, ok := parseMigrationFilename(tt.in)
			if ok != tt.wantOK || v != tt.wantVersion || n != tt.wantName {
				t.Errorf("parseMigrationFilename(%q) = (%q, %q, %v); want (%q, %q, %v)",
					tt.in, v, n, ok, tt.wantVersion, tt.wantName, tt.wantOK)
			}
		})
	}
}

func TestPending(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	before, err := Pending(ctx, db)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	want := []string{"0001_schema.sql", "0002_seed_points.sql", "0003_seed_forecast.sql", "0004_seed_community.sql"}
	if len(before) != len(want) {
		t.Fatalf("pending = %v; want %v", before, want)
	}
	for i := range want {
		if before[i] != want[i] {
			t.Errorf("pending[%d] = %q; want %q", i, before[i], want[i])
		}
	}

	if err := Run(ctx, db); err != nil {
		t.Fatalf("Run: %v", err)
	}
	after, err := Pending(ctx, db)
	if err != nil {
		t.Fatalf("Pending after Run: %v", err)
	}
	if len(after) != 0 {
		t.Errorf("pending after Run = %v; want none", after)
	}
}
