package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// Horizon is the number of forecast days, today included.
const Horizon = 7

const DateLayout = "2006-01-02"

var ErrInvalidSeries = errors.New("invalid forecast series")

// Snapshot is one day's forecast. Its spraying category is derived by
// Classify and only appears in the JSON encoding.
type Snapshot struct {
	Date         time.Time
	TemperatureC float64
	HumidityPct  float64
	WindKmh      float64
	PrecipPct    float64
}

type snapshotJSON struct {
	Date          string        `json:"date,omitempty"`
	TemperatureC  *float64      `json:"temperatureC"`
	HumidityPct   *float64      `json:"humidityPct"`
	WindKmh       *float64      `json:"windKmh"`
	PrecipPct     *float64      `json:"precipPct"`
	SprayCategory SprayCategory `json:"sprayCategory,omitempty"`
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	out := snapshotJSON{
		TemperatureC:  &s.TemperatureC,
		HumidityPct:   &s.HumidityPct,
		WindKmh:       &s.WindKmh,
		PrecipPct:     &s.PrecipPct,
		SprayCategory: Classify(s),
	}
	if !s.Date.IsZero() {
		out.Date = s.Date.Format(DateLayout)
	}
	return json.Marshal(out)
}

// UnmarshalJSON requires every reading; date is optional. A sprayCategory in
// the input is ignored and any other unknown field is rejected.
func (s *Snapshot) UnmarshalJSON(b []byte) error {
	var in snapshotJSON
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return err
	}
	fields := []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"temperatureC", in.TemperatureC, &s.TemperatureC},
		{"humidityPct", in.HumidityPct, &s.HumidityPct},
		{"windKmh", in.WindKmh, &s.WindKmh},
		{"precipPct", in.PrecipPct, &s.PrecipPct},
	}
	for _, f := range fields {
		if f.src == nil {
			return fmt.Errorf("%s is required", f.name)
		}
		*f.dst = *f.src
	}
	s.Date = time.Time{}
	if in.Date != "" {
		d, err := time.Parse(DateLayout, in.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", in.Date)
		}
		s.Date = d
	}
	return nil
}

// Validate checks value ranges. Any non-finite reading is rejected.
func (s Snapshot) Validate() error {
	readings := []struct {
		name string
		v    float64
	}{
		{"temperatureC", s.TemperatureC},
		{"humidityPct", s.HumidityPct},
		{"windKmh", s.WindKmh},
		{"precipPct", s.PrecipPct},
	}
	for _, r := range readings {
		if math.IsNaN(r.v) || math.IsInf(r.v, 0) {
			return fmt.Errorf("%s must be finite", r.name)
		}
	}
	if s.HumidityPct < 0 || s.HumidityPct > 100 {
		return fmt.Errorf("humidityPct %v out of range [0,100]", s.HumidityPct)
	}
	if s.PrecipPct < 0 || s.PrecipPct > 100 {
		return fmt.Errorf("precipPct %v out of range [0,100]", s.PrecipPct)
	}
	if s.WindKmh < 0 {
		return fmt.Errorf("windKmh %v must be >= 0", s.WindKmh)
	}
	return nil
}

// Series is a forecast indexed by day offset, 0 being its first day.
type Series []Snapshot

// Validate checks length, readings and that dates are consecutive civil days.
func (s Series) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no days", ErrInvalidSeries)
	}
	if len(s) > Horizon {
		return fmt.Errorf("%w: %d days exceeds horizon of %d", ErrInvalidSeries, len(s), Horizon)
	}
	for i, day := range s {
		if day.Date.IsZero() {
			return fmt.Errorf("%w: day %d has no date", ErrInvalidSeries, i)
		}
		if err := day.Validate(); err != nil {
			return fmt.Errorf("%w: day %d: %w", ErrInvalidSeries, i, err)
		}
		if i == 0 {
			continue
		}
		prev := CivilDate(s[i-1].Date)
		if want := prev.AddDate(0, 0, 1); !CivilDate(day.Date).Equal(want) {
			return fmt.Errorf("%w: day %d is %s, want %s", ErrInvalidSeries, i,
				day.Date.Format(DateLayout), want.Format(DateLayout))
		}
	}
	return nil
}

// Since drops the days before today, so offset 0 of the result is today.
// It is empty when s does not contain today.
func (s Series) Since(today time.Time) Series {
	today = CivilDate(today)
	for i, day := range s {
		d := CivilDate(day.Date)
		if d.Equal(today) {
			return s[i:]
		}
		if d.After(today) {
			break
		}
	}
	return Series{}
}

// Rebase returns a copy of s whose first day is today.
func (s Series) Rebase(today time.Time) Series {
	today = CivilDate(today)
	out := make(Series, len(s))
	for i, day := range s {
		day.Date = today.AddDate(0, 0, i)
		out[i] = day
	}
	return out
}

// CivilDate returns t's calendar date as midnight UTC, so dates compare and
// subtract in whole days regardless of zone or DST.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole civil days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(CivilDate(b).Sub(CivilDate(a)).Hours() / 24)
}
