package types

import "math"

type SprayCategory string

const (
	SprayOptimal     SprayCategory = "optimal"
	SprayIdeal       SprayCategory = "ideal"
	SprayUnfavorable SprayCategory = "unfavorable"
)

// SprayThresholds bound the spraying categories. Readings above any Max*
// value are unfavorable; readings within every Optimal* bound are optimal.
type SprayThresholds struct {
	MaxWindKmh      float64
	MaxPrecipPct    float64
	MaxTemperatureC float64

	OptimalMaxWindKmh      float64
	OptimalMaxPrecipPct    float64
	OptimalMaxTemperatureC float64
	OptimalMinHumidityPct  float64
}

// DefaultSprayThresholds limit pesticide drift and wash-off.
var DefaultSprayThresholds = SprayThresholds{
	MaxWindKmh:      15,
	MaxPrecipPct:    40,
	MaxTemperatureC: 35,

	OptimalMaxWindKmh:      10,
	OptimalMaxPrecipPct:    20,
	OptimalMaxTemperatureC: 30,
	OptimalMinHumidityPct:  40,
}

// Classify uses DefaultSprayThresholds.
func Classify(s Snapshot) SprayCategory {
	return DefaultSprayThresholds.Classify(s)
}

// Classify maps every snapshot to exactly one category. Raising wind or
// precipitation never yields a better category.
func (t SprayThresholds) Classify(s Snapshot) SprayCategory {
	for _, v := range []float64{s.TemperatureC, s.HumidityPct, s.WindKmh, s.PrecipPct} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return SprayUnfavorable
		}
	}
	if s.WindKmh > t.MaxWindKmh || s.PrecipPct > t.MaxPrecipPct || s.TemperatureC > t.MaxTemperatureC {
		return SprayUnfavorable
	}
	if s.WindKmh <= t.OptimalMaxWindKmh &&
		s.PrecipPct <= t.OptimalMaxPrecipPct &&
		s.TemperatureC <= t.OptimalMaxTemperatureC &&
		s.HumidityPct >= t.OptimalMinHumidityPct {
		return SprayOptimal
	}
	return SprayIdeal
}

// rank orders categories from best to worst.
func (c SprayCategory) rank() int {
	switch c {
	case SprayOptimal:
		return 0
	case SprayIdeal:
		return 1
	default:
		return 2
	}
}

// NoBetterThan reports whether c is the same as or worse than other.
func (c SprayCategory) NoBetterThan(other SprayCategory) bool {
	return c.rank() >= other.rank()
}
