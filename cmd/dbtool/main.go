// Command dbtool manages the farmassist SQLite database without starting the
// server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"farmassist/internal/config"
	"farmassist/internal/db"
	"farmassist/internal/logging"
	"farmassist/internal/migrate"
)

const usage = `usage: %s <command>
  migrate  apply pending schema/seed migrations
  status   list migrations not yet applied
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, usage, os.Args[0])
		os.Exit(1)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(cfg, "dev", "dbtool"))

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg, slog.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "db open: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := db.Close(conn); closeErr != nil {
			slog.Error("db close", "err", closeErr)
		}
	}()

	switch os.Args[1] {
	case "migrate":
		if err := migrate.Run(ctx, conn); err != nil {
			fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("migrations applied")
	case "status":
		names, err := migrate.Pending(ctx, conn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "status: %v\n", err)
			os.Exit(1)
		}
		if len(names) == 0 {
			fmt.Println("up to date")
			return
		}
		for _, n := range names {
			fmt.Println("pending", n)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}
