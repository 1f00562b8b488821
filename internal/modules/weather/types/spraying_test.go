package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want SprayCategory
	}{
		{name: "calm dry mild", snap: Snapshot{TemperatureC: 28, HumidityPct: 55, WindKmh: 6, PrecipPct: 10}, want: SprayOptimal},
		{name: "optimal boundaries inclusive", snap: Snapshot{TemperatureC: 30, HumidityPct: 40, WindKmh: 10, PrecipPct: 20}, want: SprayOptimal},
		{name: "wind just above optimal", snap: Snapshot{TemperatureC: 28, HumidityPct: 55, WindKmh: 10.5, PrecipPct: 10}, want: SprayIdeal},
		{name: "low humidity", snap: Snapshot{TemperatureC: 28, HumidityPct: 35, WindKmh: 6, PrecipPct: 10}, want: SprayIdeal},
		{name: "warm", snap: Snapshot{TemperatureC: 33, HumidityPct: 55, WindKmh: 6, PrecipPct: 10}, want: SprayIdeal},
		{name: "unfavorable boundaries inclusive", snap: Snapshot{TemperatureC: 35, HumidityPct: 55, WindKmh: 15, PrecipPct: 40}, want: SprayIdeal},
		{name: "high wind", snap: Snapshot{TemperatureC: 25, HumidityPct: 60, WindKmh: 16, PrecipPct: 0}, want: SprayUnfavorable},
		{name: "rain likely", snap: Snapshot{TemperatureC: 25, HumidityPct: 60, WindKmh: 5, PrecipPct: 41}, want: SprayUnfavorable},
		{name: "too hot", snap: Snapshot{TemperatureC: 36, HumidityPct: 60, WindKmh: 5, PrecipPct: 0}, want: SprayUnfavorable},
		{name: "NaN wind", snap: Snapshot{TemperatureC: 25, HumidityPct: 60, WindKmh: math.NaN(), PrecipPct: 0}, want: SprayUnfavorable},
		{name: "infinite humidity", snap: Snapshot{TemperatureC: 25, HumidityPct: math.Inf(1), WindKmh: 5, PrecipPct: 0}, want: SprayUnfavorable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.snap))
		})
	}
}

func TestClassify_MonotonicInWindAndPrecip(t *testing.T) {
	temps := []float64{20, 30, 33, 36}
	hums := []float64{30, 40, 80}
	steps := []float64{0, 5, 10, 10.1, 15, 15.1, 20, 25, 40, 40.1, 60, 100}

	for _, temp := range temps {
		for _, hum := range hums {
			for _, precip := range steps {
				prev := SprayOptimal
				for _, wind := range steps {
					got := Classify(Snapshot{TemperatureC: temp, HumidityPct: hum, WindKmh: wind, PrecipPct: precip})
					assert.True(t, got.NoBetterThan(prev), "wind %v (temp %v hum %v precip %v): %s after %s", wind, temp, hum, precip, got, prev)
					prev = got
				}
			}
			for _, wind := range steps {
				prev := SprayOptimal
				for _, precip := range steps {
					got := Classify(Snapshot{TemperatureC: temp, HumidityPct: hum, WindKmh: wind, PrecipPct: precip})
					assert.True(t, got.NoBetterThan(prev), "precip %v (temp %v hum %v wind %v): %s after %s", precip, temp, hum, wind, got, prev)
					prev = got
				}
			}
		}
	}
}

func TestSprayThresholds_Custom(t *testing.T) {
	strict := DefaultSprayThresholds
	strict.MaxWindKmh = 8
	snap := Snapshot{TemperatureC: 25, HumidityPct: 60, WindKmh: 9, PrecipPct: 0}

	assert.Equal(t, SprayOptimal, Classify(snap))
	assert.Equal(t, SprayUnfavorable, strict.Classify(snap))
}

func TestSprayCategory_NoBetterThan(t *testing.T) {
	assert.True(t, SprayUnfavorable.NoBetterThan(SprayOptimal))
	assert.True(t, SprayIdeal.NoBetterThan(SprayIdeal))
	assert.False(t, SprayOptimal.NoBetterThan(SprayIdeal))
}
