package db

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"farmassist/internal/config"
)

func Test_buildDSN(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		cfg        config.Config
		wantPrefix string
		wantSuffix string
	}{
		{
			name:       "explicit DSN wins",
			cfg:        config.Config{SQLiteDSN: "file::memory:?cache=shared", SQLitePath: "ignored.db"},
			wantPrefix: "file::memory:?cache=shared",
			wantSuffix: "file::memory:?cache=shared",
		},
		{
			name:       "plain path gets file prefix and params",
			cfg:        config.Config{SQLitePath: filepath.Join(dir, "a", "app.db")},
			wantPrefix: "file:" + filepath.Join(dir, "a", "app.db") + "?",
			wantSuffix: "_journal_mode=WAL",
		},
		{
			name:       "file path with query is extended",
			cfg:        config.Config{SQLitePath: "file:" + filepath.Join(dir, "b.db") + "?mode=ro"},
			wantPrefix: "file:" + filepath.Join(dir, "b.db") + "?mode=ro&_foreign_keys=on",
			wantSuffix: "_journal_mode=WAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildDSN(tt.cfg)
			if err != nil {
				t.Fatalf("buildDSN: %v", err)
			}
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("dsn = %q; want prefix %q", got, tt.wantPrefix)
			}
			if !strings.HasSuffix(got, tt.wantSuffix) {
				t.Errorf("dsn = %q; want suffix %q", got, tt.wantSuffix)
			}
		})
	}
}

func TestOpen_InMemory(t *testing.T) {
	for _, logSQL := range []bool{false, true} {
		cfg := config.Config{
			SQLiteDriver:        "sqlite3",
			SQLiteDSN:           ":memory:",
			SQLiteMaxOpenConns:  1,
			SQLiteMaxIdleConns:  1,
			SQLiteLogStatements: logSQL,
		}
		conn, err := Open(context.Background(), cfg, slog.Default())
		if err != nil {
			t.Fatalf("Open(logSQL=%v): %v", logSQL, err)
		}
		var one int
		if err := conn.QueryRow(`SELECT 1`).Scan(&one); err != nil || one != 1 {
			t.Fatalf("SELECT 1 = %d, %v", one, err)
		}
		if err := Close(conn); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}
}

func TestClose_Nil(t *testing.T) {
	if err := Close(nil); err != nil {
		t.Fatalf("Close(nil) = %v; want nil", err)
	}
}
