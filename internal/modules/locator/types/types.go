package types

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Category is the fixed point-of-interest classification used for pins and filtering.
type Category string

const (
	FertilizerSeller    Category = "fertilizer-seller"
	PesticideSeller     Category = "pesticide-seller"
	SeedSeller          Category = "seed-seller"
	ToolSeller          Category = "tool-seller"
	AgriculturalCollege Category = "agricultural-college"
)

// Categories lists every known category in display order.
var Categories = []Category{FertilizerSeller, PesticideSeller, SeedSeller, ToolSeller, AgriculturalCollege}

var ErrInvalidPoint = errors.New("invalid point")

func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// IsCommercial reports whether points of this category are shops.
func (c Category) IsCommercial() bool {
	switch c {
	case FertilizerSeller, PesticideSeller, SeedSeller, ToolSeller:
		return true
	default:
		return false
	}
}

// Text is a string in the primary (English) and native (Hindi) language.
type Text struct {
	En string `json:"en"`
	Hi string `json:"hi"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Details is either ShopDetails or CollegeDetails, chosen by the point's category.
type Details interface {
	isDetails()
}

type ShopDetails struct {
	Phone      string  `json:"phone"`
	Rating     float64 `json:"rating"`
	Opens      string  `json:"opens"`
	Closes     string  `json:"closes"`
	DistanceKm float64 `json:"distanceKm"`
}

type CollegeDetails struct {
	Courses []Text `json:"courses"`
	Website string `json:"website,omitempty"`
}

func (ShopDetails) isDetails()    {}
func (CollegeDetails) isDetails() {}

type Point struct {
	ID          string
	Name        Text
	Address     Text
	Category    Category
	Coordinates Coordinates
	Details     Details
}

// Shop returns the commercial attributes when the point is a shop.
func (p Point) Shop() (ShopDetails, bool) {
	d, ok := p.Details.(ShopDetails)
	return d, ok
}

// College returns the curriculum attributes when the point is a college.
func (p Point) College() (CollegeDetails, bool) {
	d, ok := p.Details.(CollegeDetails)
	return d, ok
}

// Validate checks the category/details pairing and value ranges.
func (p Point) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidPoint)
	}
	if _, err := ParseCategory(string(p.Category)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidPoint, p.ID, err)
	}
	if p.Name.En == "" || p.Name.Hi == "" {
		return fmt.Errorf("%w: %s: name must be set in both languages", ErrInvalidPoint, p.ID)
	}
	c := p.Coordinates
	if !finite(c.Lat) || !finite(c.Lng) || c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("%w: %s: coordinates out of range (%f, %f)", ErrInvalidPoint, p.ID, c.Lat, c.Lng)
	}

	switch d := p.Details.(type) {
	case ShopDetails:
		if !p.Category.IsCommercial() {
			return fmt.Errorf("%w: %s: %s point cannot carry shop details", ErrInvalidPoint, p.ID, p.Category)
		}
		return d.validate(p.ID)
	case CollegeDetails:
		if p.Category != AgriculturalCollege {
			return fmt.Errorf("%w: %s: %s point cannot carry college details", ErrInvalidPoint, p.ID, p.Category)
		}
		return nil
	case nil:
		return fmt.Errorf("%w: %s: details are required", ErrInvalidPoint, p.ID)
	default:
		return fmt.Errorf("%w: %s: unsupported details %T", ErrInvalidPoint, p.ID, d)
	}
}

func (d ShopDetails) validate(id string) error {
	if !finite(d.Rating) || d.Rating < 0 || d.Rating > 5 {
		return fmt.Errorf("%w: %s: rating %v out of range [0,5]", ErrInvalidPoint, id, d.Rating)
	}
	if !finite(d.DistanceKm) || d.DistanceKm < 0 {
		return fmt.Errorf("%w: %s: distance must be >= 0", ErrInvalidPoint, id)
	}
	for _, hm := range []string{d.Opens, d.Closes} {
		if hm == "" {
			continue
		}
		if _, err := time.Parse("15:04", hm); err != nil {
			return fmt.Errorf("%w: %s: invalid time %q (expected HH:MM)", ErrInvalidPoint, id, hm)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
