package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"farmassist/internal/modules/weather/types"
)

//go:embed sql/list-forecast-days.sql
var listForecastDaysSQL string

type ForecastRepository interface {
	// ListForecast returns the stored forecast with day offset 0 dated anchor.
	ListForecast(ctx context.Context, anchor time.Time) (types.Series, error)
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) ForecastRepository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) ListForecast(ctx context.Context, anchor time.Time) (types.Series, error) {
	rows, err := r.db.QueryContext(ctx, listForecastDaysSQL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close forecast rows", "error", err)
		}
	}()

	anchor = types.CivilDate(anchor)
	var out types.Series
	for rows.Next() {
		var (
			offset int
			s      types.Snapshot
		)
		if err := rows.Scan(&offset, &s.TemperatureC, &s.HumidityPct, &s.WindKmh, &s.PrecipPct); err != nil {
			return nil, err
		}
		if offset != len(out) {
			return nil, fmt.Errorf("forecast day offset %d out of sequence (want %d)", offset, len(out))
		}
		s.Date = anchor.AddDate(0, 0, offset)
		out = append(out, s)
	}
	return out, rows.Err()
}
