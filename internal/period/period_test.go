package period

import (
	"testing"
	"time"

	"github.com/shenikar/incident_admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve_Day(t *testing.T) {
	w, err := Resolve(Day, "2024-03-15", "")
	require.NoError(t, err)
	assert.Equal(t, KindExactDay, w.Kind)
	assert.Equal(t, date(2024, 3, 15), w.Start)
	assert.True(t, w.Contains(time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)))
	assert.False(t, w.Contains(date(2024, 3, 16)))
}

func TestResolve_WeekStartsOnSunday(t *testing.T) {
	// 2024-03-13 - среда
	w, err := Resolve(Week, "2024-03-13", "")
	require.NoError(t, err)
	assert.Equal(t, KindWeek, w.Kind)
	assert.Equal(t, date(2024, 3, 10), w.Start)
	assert.Equal(t, date(2024, 3, 16), dateOf(w.End))
	assert.Len(t, w.Days(), 7)

	// воскресенье само является началом недели
	w, err = Resolve(Week, "2024-03-10", "")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 10), w.Start)
}

func TestResolve_Month(t *testing.T) {
	w, err := Resolve(Month, "2024-02-10", "")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 1), w.Start)
	assert.Equal(t, date(2024, 2, 29), dateOf(w.End))
	assert.Len(t, w.Days(), 29)
	assert.True(t, w.Contains(time.Date(2024, 2, 29, 22, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(date(2024, 3, 1)))
}

func TestResolve_Year(t *testing.T) {
	w, err := Resolve(Year, "2024-06-01", "")
	require.NoError(t, err)
	assert.Equal(t, KindYear, w.Kind)
	assert.Equal(t, 2024, w.Year)

	w, err = Resolve(Year, "2024-06-01", "2021")
	require.NoError(t, err)
	assert.Equal(t, 2021, w.Year)
	assert.True(t, w.Contains(date(2021, 12, 31)))
	assert.False(t, w.Contains(date(2024, 1, 1)))

	w, err = Resolve(Year, "2024-06-01", YearAll)
	require.NoError(t, err)
	assert.Equal(t, KindAllYears, w.Kind)
	assert.True(t, w.Start.IsZero())
	assert.True(t, w.Contains(date(1999, 1, 1)))
}

func TestResolve_InvalidDate(t *testing.T) {
	for _, anchor := range []string{"", "yesterday", "2024-13-01", "2024-02-30"} {
		_, err := Resolve(Day, anchor, "")
		assert.ErrorIs(t, err, models.ErrInvalidDate, anchor)
	}

	_, err := Resolve(Year, "2024-01-01", "24")
	assert.ErrorIs(t, err, models.ErrInvalidDate)
}

func TestResolve_UnknownPeriod(t *testing.T) {
	_, err := Resolve(Period("decade"), "2024-01-01", "")
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = Parse("quarter")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestYearSelection(t *testing.T) {
	assert.Equal(t, YearAll, YearSelection(true, "", "2024-05-05"))
	assert.Equal(t, "2024", YearSelection(false, "", "2024-05-05"))
	assert.Equal(t, "2019", YearSelection(true, "2019", "2024-05-05"))
	assert.Equal(t, "", YearSelection(false, "", "bad"))
}
