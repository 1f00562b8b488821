package service

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"farmassist/internal/modules/weather/types"
)

var (
	ErrStaleForecast  = errors.New("forecast has no days from today onward")
	ErrFutureForecast = errors.New("forecast starts after today")
)

const (
	SourceSeed = "seed"
	SourceMQTT = "mqtt"
)

type forecast struct {
	series    types.Series
	relative  bool
	source    string
	updatedAt time.Time
}

// Store holds the current forecast as an immutable snapshot. Readers never
// block; writers swap the whole snapshot.
type Store struct {
	current atomic.Pointer[forecast]
	loc     *time.Location
	now     func() time.Time
}

func NewStore(loc *time.Location, now func() time.Time) *Store {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Store{loc: loc, now: now}
}

// Today is the current civil date in the store's location.
func (s *Store) Today() time.Time {
	return types.CivilDate(s.now().In(s.loc))
}

// Seed installs mock data whose day 0 always follows today.
func (s *Store) Seed(series types.Series) error {
	if err := series.Validate(); err != nil {
		return err
	}
	s.current.Store(&forecast{
		series:    slices.Clone(series),
		relative:  true,
		source:    SourceSeed,
		updatedAt: s.now(),
	})
	return nil
}

// Replace installs a dated forecast. It must cover today; days before today
// are ignored on read.
func (s *Store) Replace(series types.Series, source string) error {
	if err := series.Validate(); err != nil {
		return err
	}
	today := s.Today()
	if first := types.CivilDate(series[0].Date); first.After(today) {
		return fmt.Errorf("%w: first day %s, today %s", ErrFutureForecast,
			first.Format(types.DateLayout), today.Format(types.DateLayout))
	}
	if len(series.Since(today)) == 0 {
		return fmt.Errorf("%w: last day %s", ErrStaleForecast, series[len(series)-1].Date.Format(types.DateLayout))
	}
	s.current.Store(&forecast{
		series:    slices.Clone(series),
		source:    source,
		updatedAt: s.now(),
	})
	return nil
}

// Current returns the forecast with offset 0 = today. It is empty before the
// first Seed or Replace.
func (s *Store) Current() types.Series {
	f := s.current.Load()
	if f == nil {
		return types.Series{}
	}
	today := s.Today()
	if f.relative {
		return f.series.Rebase(today)
	}
	return slices.Clone(f.series.Since(today))
}

// Info describes where the current forecast came from.
func (s *Store) Info() (source string, updatedAt time.Time) {
	f := s.current.Load()
	if f == nil {
		return "", time.Time{}
	}
	return f.source, f.updatedAt
}
