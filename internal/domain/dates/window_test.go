package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvirul/shopledger-api/internal/domain/dates"
)

func TestDayOf_Bounds(t *testing.T) {
	ts := time.Date(2026, 3, 10, 15, 42, 7, 123, time.UTC)
	w := dates.DayOf(ts)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999999999, time.UTC), w.End)
}

func TestWindow_Contains(t *testing.T) {
	w := dates.DayOf(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	assert.True(t, w.Contains(w.Start), "start bound is inclusive")
	assert.True(t, w.Contains(w.End), "end bound is inclusive")
	assert.True(t, w.Contains(time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)), "next midnight is outside")
	assert.False(t, w.Contains(time.Date(2026, 3, 9, 23, 59, 59, 0, time.UTC)))
}

func TestDayOf_TwoTimestampsSameDay(t *testing.T) {
	morning := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 10, 22, 15, 0, 0, time.UTC)

	assert.True(t, dates.DayOf(morning).Contains(evening))
	assert.True(t, dates.DayOf(evening).Contains(morning))
}

func TestRange_SpansWholeDays(t *testing.T) {
	from := time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	w := dates.Range(from, to)

	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), w.Start)
	assert.True(t, w.Contains(time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
}

func TestParseISO(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)

	got, err := dates.ParseISO("2026-03-10", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), got)

	_, err = dates.ParseISO("10/03/2026", loc)
	assert.Error(t, err)

	_, err = dates.ParseISO("", loc)
	assert.Error(t, err)
}

func TestDayOf_RespectsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	// 02:00 UTC is still the previous evening in Bogota (UTC-5).
	utc := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)
	local := utc.In(loc)

	assert.Equal(t, 9, dates.DayOf(local).Start.Day())
	assert.Equal(t, 10, dates.DayOf(utc).Start.Day())
}
