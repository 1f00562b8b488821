package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmassist/internal/modules/weather/types"
)

var ist = time.FixedZone("IST", 5*3600+1800)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func date(s string) time.Time {
	d, err := time.Parse(types.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func series(start string, precip ...float64) types.Series {
	out := make(types.Series, len(precip))
	for i, p := range precip {
		out[i] = types.Snapshot{Date: date(start).AddDate(0, 0, i), TemperatureC: 30, HumidityPct: 50, WindKmh: 5, PrecipPct: p}
	}
	return out
}

func TestStore_Today(t *testing.T) {
	// 20:00 UTC on the 16th is already the 17th in India
	clock := &fakeClock{now: time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)}
	s := NewStore(ist, clock.Now)
	assert.Equal(t, date("2026-10-17"), s.Today())
}

func TestStore_EmptyBeforeSeed(t *testing.T) {
	s := NewStore(ist, nil)
	assert.Empty(t, s.Current())
	src, _ := s.Info()
	assert.Empty(t, src)
}

func TestStore_SeedFollowsToday(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 10, 17, 9, 0, 0, 0, ist)}
	s := NewStore(ist, clock.Now)

	require.NoError(t, s.Seed(series("2026-10-17", 10, 20, 30)))
	got := s.Current()
	require.Len(t, got, 3)
	assert.Equal(t, date("2026-10-17"), got[0].Date)

	clock.Set(time.Date(2026, 10, 19, 9, 0, 0, 0, ist))
	got = s.Current()
	require.Len(t, got, 3)
	assert.Equal(t, date("2026-10-19"), got[0].Date)
	assert.Equal(t, 10.0, got[0].PrecipPct)

	src, _ := s.Info()
	assert.Equal(t, SourceSeed, src)
}

func TestStore_ReplaceDropsPastDays(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 10, 17, 9, 0, 0, 0, ist)}
	s := NewStore(ist, clock.Now)

	require.NoError(t, s.Replace(series("2026-10-16", 0, 10, 20, 30), SourceMQTT))
	got := s.Current()
	require.Len(t, got, 3)
	assert.Equal(t, date("2026-10-17"), got[0].Date)
	assert.Equal(t, 10.0, got[0].PrecipPct)

	clock.Set(time.Date(2026, 10, 19, 9, 0, 0, 0, ist))
	assert.Len(t, s.Current(), 1)

	src, updated := s.Info()
	assert.Equal(t, SourceMQTT, src)
	assert.Equal(t, time.Date(2026, 10, 17, 9, 0, 0, 0, ist), updated)
}

func TestStore_ReplaceRejects(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 10, 17, 9, 0, 0, 0, ist)}
	s := NewStore(ist, clock.Now)
	require.NoError(t, s.Seed(series("2026-10-17", 10, 20, 30)))

	err := s.Replace(series("2026-10-10", 0, 0), SourceMQTT)
	assert.True(t, errors.Is(err, ErrStaleForecast))

	gap := series("2026-10-17", 0, 0, 0)
	gap[2].Date = gap[2].Date.AddDate(0, 0, 2)
	assert.ErrorIs(t, s.Replace(gap, SourceMQTT), types.ErrInvalidSeries)

	// previous snapshot survives rejected updates
	src, _ := s.Info()
	assert.Equal(t, SourceSeed, src)
	assert.Len(t, s.Current(), 3)
}

func TestStore_ReplaceRejectsFutureStart(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 10, 17, 9, 0, 0, 0, ist)}
	s := NewStore(ist, clock.Now)
	require.NoError(t, s.Replace(series("2026-10-17", 10, 20, 30, 10), SourceMQTT))

	// rain on the 20th must never be read as tomorrow's
	err := s.Replace(series("2026-10-19", 10, 90, 10, 10, 10), SourceMQTT)
	assert.ErrorIs(t, err, ErrFutureForecast)

	got := s.Current()
	require.Len(t, got, 4)
	assert.Equal(t, date("2026-10-17"), got[0].Date)
	assert.Equal(t, 20.0, got[1].PrecipPct)
}

func TestStore_CurrentIsACopy(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 10, 17, 9, 0, 0, 0, ist)}
	s := NewStore(ist, clock.Now)
	require.NoError(t, s.Replace(series("2026-10-17", 10, 20), SourceMQTT))

	got := s.Current()
	got[0].PrecipPct = 99
	assert.Equal(t, 10.0, s.Current()[0].PrecipPct)
}

func TestStore_ConcurrentReadersAndWriters(t *testing.T) {
	s := NewStore(time.UTC, nil)
	today := s.Today().Format(types.DateLayout)
	require.NoError(t, s.Seed(series(today, 0, 0, 0)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Replace(series(today, 0, 50, 0), SourceMQTT)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Len(t, s.Current(), 3)
			}
		}()
	}
	wg.Wait()
}
