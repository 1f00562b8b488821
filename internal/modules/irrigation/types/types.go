package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Crop string

const (
	Wheat     Crop = "wheat"
	Rice      Crop = "rice"
	Maize     Crop = "maize"
	Cotton    Crop = "cotton"
	Sugarcane Crop = "sugarcane"
)

var Crops = []Crop{Wheat, Rice, Maize, Cotton, Sugarcane}

type Soil string

const (
	Sandy Soil = "sandy"
	Loam  Soil = "loam"
	Clay  Soil = "clay"
)

var Soils = []Soil{Sandy, Loam, Clay}

// Reason explains an irrigation decision.
type Reason string

const (
	RainExpected       Reason = "rain-expected"
	MoistureSufficient Reason = "moisture-sufficient"
	HotDryConditions   Reason = "hot-dry-conditions"
)

var ErrInvalidQuery = errors.New("invalid irrigation query")

// InsufficientDataError means the forecast is too short to decide.
type InsufficientDataError struct {
	Have int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("forecast has %d days, need at least %d", e.Have, e.Need)
}

// InvalidDateError means the last-watered date is unparsable or in the future.
type InvalidDateError struct {
	Value  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid last-watered date %q: %s", e.Value, e.Reason)
}

func ParseCrop(s string) (Crop, error) {
	c := Crop(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return "", fmt.Errorf("%w: crop is required", ErrInvalidQuery)
	}
	for _, known := range Crops {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown crop %q", ErrInvalidQuery, s)
}

func ParseSoil(s string) (Soil, error) {
	soil := Soil(strings.ToLower(strings.TrimSpace(s)))
	if soil == "" {
		return "", fmt.Errorf("%w: soil is required", ErrInvalidQuery)
	}
	for _, known := range Soils {
		if soil == known {
			return soil, nil
		}
	}
	return "", fmt.Errorf("%w: unknown soil %q", ErrInvalidQuery, s)
}

// ParseDate parses a YYYY-MM-DD last-watered date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: lastWatered is required", ErrInvalidQuery)
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: s, Reason: "expected YYYY-MM-DD"}
	}
	return d, nil
}

// Query is the advisor input. Crop is validated but does not change thresholds.
type Query struct {
	Crop        Crop
	Soil        Soil
	LastWatered time.Time
}

func (q Query) Validate() error {
	if _, err := ParseCrop(string(q.Crop)); err != nil {
		return err
	}
	if _, err := ParseSoil(string(q.Soil)); err != nil {
		return err
	}
	if q.LastWatered.IsZero() {
		return fmt.Errorf("%w: lastWatered is required", ErrInvalidQuery)
	}
	return nil
}

// Decision is the advisor output. DaysSinceWatered and Threshold are unset
// when rain in the lookahead window decided the outcome.
type Decision struct {
	WaterToday       bool   `json:"waterToday"`
	Reason           Reason `json:"reason"`
	DaysSinceWatered *int   `json:"daysSinceWatered,omitempty"`
	Threshold        *int   `json:"threshold,omitempty"`
}
