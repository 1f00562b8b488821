package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"farmassist/internal/modules/locator/repository"
	"farmassist/internal/modules/locator/types"
)

var searchCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "farmassist_poi_search_cache_lookups_total",
	Help: "Point-of-interest search cache lookups by result.",
}, []string{"result"})

// Service serves searches over an immutable point catalog.
type Service struct {
	points []types.Point
	byID   map[string]int
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService validates points and takes a private copy of them. A cacheTTL
// of zero disables the search cache.
func NewService(points []types.Point, cacheTTL time.Duration, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	byID := make(map[string]int, len(points))
	for i, p := range points {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", types.ErrInvalidPoint, p.ID)
		}
		byID[p.ID] = i
	}

	s := &Service{
		points: clonePoints(points),
		byID:   byID,
		logger: logger,
	}
	if cacheTTL > 0 {
		s.cache = cache.New(cacheTTL, 2*cacheTTL)
	}
	return s, nil
}

// Load reads the whole catalog from repo and builds a Service over it.
func Load(ctx context.Context, repo repository.PointsRepository, cacheTTL time.Duration, logger *slog.Logger) (*Service, error) {
	points, err := repo.ListPoints(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("load points: %w", err)
	}
	s, err := NewService(points, cacheTTL, logger)
	if err != nil {
		return nil, err
	}
	s.logger.Info("point catalog loaded", "points", len(points))
	return s, nil
}

// MaxQueryRunes bounds the text query accepted by the HTTP layer.
const MaxQueryRunes = 100

// Search applies the category filter and then the text filter. The returned
// slice belongs to the caller. Only the per-category base list is cached, so
// the cache never holds more entries than there are categories.
func (s *Service) Search(query string, category types.Category) []types.Point {
	return clonePoints(Filter(s.byCategory(category), query))
}

func (s *Service) byCategory(category types.Category) []types.Point {
	if s.cache == nil {
		return FilterByCategory(s.points, category)
	}
	key := string(category)
	if cached, found := s.cache.Get(key); found {
		searchCacheLookups.WithLabelValues("hit").Inc()
		return cached.([]types.Point)
	}
	searchCacheLookups.WithLabelValues("miss").Inc()

	base := FilterByCategory(s.points, category)
	s.cache.Set(key, base, cache.DefaultExpiration)
	s.logger.Debug("poi category cached", "category", category, "points", len(base))
	return base
}

// Get returns a copy of the point with the given id.
func (s *Service) Get(id string) (types.Point, bool) {
	i, ok := s.byID[id]
	if !ok {
		return types.Point{}, false
	}
	return clonePoint(s.points[i]), true
}

// All returns every point in catalog order.
func (s *Service) All() []types.Point {
	return clonePoints(s.points)
}

// clonePoint copies the course list so callers cannot reach catalog memory.
func clonePoint(p types.Point) types.Point {
	if d, ok := p.College(); ok {
		d.Courses = slices.Clone(d.Courses)
		p.Details = d
	}
	return p
}

func clonePoints(points []types.Point) []types.Point {
	out := make([]types.Point, len(points))
	for i, p := range points {
		out[i] = clonePoint(p)
	}
	return out
}
