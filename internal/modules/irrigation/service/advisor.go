package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"farmassist/internal/modules/irrigation/types"
	weathertypes "farmassist/internal/modules/weather/types"
)

const (
	// MinForecastDays covers today and the two lookahead days.
	MinForecastDays = 3
	// RainPrecipPct is the precipitation probability above which rain is expected.
	RainPrecipPct = 40.0
	// HighTemperatureC is the day-0 temperature above which watering comes a day early.
	HighTemperatureC = 32.0
)

var decisions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "farmassist_irrigation_decisions_total",
	Help: "Irrigation recommendations by reason.",
}, []string{"reason"})

// SoilThreshold is how many days a soil holds enough moisture.
func SoilThreshold(soil types.Soil) int {
	switch soil {
	case types.Sandy:
		return 2
	case types.Clay:
		return 4
	default:
		return 3
	}
}

// Recommend decides whether to water today. forecast[0] is today and today
// is a civil date in the farm's time zone. Rain on day 1 or 2 wins over
// every other rule.
func Recommend(q types.Query, forecast weathertypes.Series, today time.Time) (types.Decision, error) {
	if err := q.Validate(); err != nil {
		return types.Decision{}, err
	}
	if len(forecast) < MinForecastDays {
		return types.Decision{}, &types.InsufficientDataError{Have: len(forecast), Need: MinForecastDays}
	}

	if forecast[1].PrecipPct > RainPrecipPct || forecast[2].PrecipPct > RainPrecipPct {
		return types.Decision{WaterToday: false, Reason: types.RainExpected}, nil
	}

	days := weathertypes.DaysBetween(q.LastWatered, today)
	if days < 0 {
		return types.Decision{}, &types.InvalidDateError{
			Value:  q.LastWatered.Format(weathertypes.DateLayout),
			Reason: fmt.Sprintf("after today (%s)", weathertypes.CivilDate(today).Format(weathertypes.DateLayout)),
		}
	}
	threshold := SoilThreshold(q.Soil)
	highTemp := forecast[0].TemperatureC > HighTemperatureC

	d := types.Decision{DaysSinceWatered: &days, Threshold: &threshold}
	if days > threshold || (highTemp && days > threshold-1) {
		d.WaterToday = true
		d.Reason = types.HotDryConditions
		return d, nil
	}
	d.Reason = types.MoistureSufficient
	return d, nil
}

// ForecastSource supplies the current forecast and the civil date it starts on.
type ForecastSource interface {
	Current() weathertypes.Series
	Today() time.Time
}

// Advisor runs Recommend against the live forecast.
type Advisor struct {
	forecast ForecastSource
	logger   *slog.Logger
}

func NewAdvisor(forecast ForecastSource, logger *slog.Logger) *Advisor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Advisor{forecast: forecast, logger: logger}
}

func (a *Advisor) Recommend(q types.Query) (types.Decision, error) {
	today := a.forecast.Today()
	d, err := Recommend(q, a.forecast.Current(), today)
	if err != nil {
		decisions.WithLabelValues("error").Inc()
		return types.Decision{}, err
	}
	decisions.WithLabelValues(string(d.Reason)).Inc()
	a.logger.Debug("irrigation recommendation",
		"crop", q.Crop,
		"soil", q.Soil,
		"today", today.Format(weathertypes.DateLayout),
		"water_today", d.WaterToday,
		"reason", d.Reason,
	)
	return d, nil
}
