package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"farmassist/internal/modules/locator/types"
)

const courseSeparator = ";"

var pointColumns = []string{
	"id", "category", "name_en", "name_hi", "address_en", "address_hi", "lat", "lng",
	"phone", "rating", "opens_at", "closes_at", "distance_km",
	"website", "courses_en", "courses_hi",
}

type PointsRepository interface {
	// ListPoints returns points in catalog order; an empty category returns all of them.
	ListPoints(ctx context.Context, category types.Category) ([]types.Point, error)
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) PointsRepository {
	return &repositoryImpl{db: db}
}

func listPointsQuery(category types.Category) (string, []any, error) {
	q := sq.Select(pointColumns...).From("points").OrderBy("sort_order", "id")
	if category != "" {
		q = q.Where(sq.Eq{"category": string(category)})
	}
	return q.ToSql()
}

func (r *repositoryImpl) ListPoints(ctx context.Context, category types.Category) ([]types.Point, error) {
	query, args, err := listPointsQuery(category)
	if err != nil {
		return nil, fmt.Errorf("build points query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close points rows", "error", err)
		}
	}()

	var out []types.Point
	for rows.Next() {
		p, err := scanPoint(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPoint(rows *sql.Rows) (types.Point, error) {
	var (
		p                             types.Point
		category                      string
		phone, opens, closes          sql.NullString
		website, coursesEn, coursesHi sql.NullString
		rating, distance              sql.NullFloat64
	)
	err := rows.Scan(
		&p.ID, &category, &p.Name.En, &p.Name.Hi, &p.Address.En, &p.Address.Hi,
		&p.Coordinates.Lat, &p.Coordinates.Lng,
		&phone, &rating, &opens, &closes, &distance,
		&website, &coursesEn, &coursesHi,
	)
	if err != nil {
		return types.Point{}, err
	}
	p.Category = types.Category(category)

	if p.Category.IsCommercial() {
		if cols := setColumns(map[string]bool{
			"website": website.Valid, "courses_en": coursesEn.Valid, "courses_hi": coursesHi.Valid,
		}); len(cols) > 0 {
			return types.Point{}, fmt.Errorf("%w: shop %s has college columns %s", types.ErrInvalidPoint, p.ID, strings.Join(cols, ", "))
		}
		p.Details = types.ShopDetails{
			Phone:      phone.String,
			Rating:     rating.Float64,
			Opens:      opens.String,
			Closes:     closes.String,
			DistanceKm: distance.Float64,
		}
		return p, nil
	}

	if cols := setColumns(map[string]bool{
		"phone": phone.Valid, "rating": rating.Valid, "opens_at": opens.Valid,
		"closes_at": closes.Valid, "distance_km": distance.Valid,
	}); len(cols) > 0 {
		return types.Point{}, fmt.Errorf("%w: college %s has shop columns %s", types.ErrInvalidPoint, p.ID, strings.Join(cols, ", "))
	}

	courses, err := pairCourses(coursesEn.String, coursesHi.String)
	if err != nil {
		return types.Point{}, fmt.Errorf("point %s: %w", p.ID, err)
	}
	p.Details = types.CollegeDetails{Courses: courses, Website: website.String}
	return p, nil
}

// setColumns returns the sorted names of the columns that are not NULL.
func setColumns(valid map[string]bool) []string {
	var out []string
	for name, ok := range valid {
		if ok {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// pairCourses zips the ';'-separated English and Hindi course lists.
func pairCourses(en, hi string) ([]types.Text, error) {
	enParts := splitCourses(en)
	hiParts := splitCourses(hi)
	if len(enParts) != len(hiParts) {
		return nil, fmt.Errorf("course lists differ in length (en=%d, hi=%d)", len(enParts), len(hiParts))
	}
	out := make([]types.Text, len(enParts))
	for i := range enParts {
		out[i] = types.Text{En: enParts[i], Hi: hiParts[i]}
	}
	return out, nil
}

func splitCourses(s string) []string {
	var out []string
	for _, part := range strings.Split(s, courseSeparator) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
