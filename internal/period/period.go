// Package period вычисляет временные окна (день/неделя/месяц/год) вокруг опорной даты.
package period

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shenikar/incident_admin/internal/models"
)

// DateLayout - формат опорной даты
const DateLayout = "2006-01-02"

// YearAll - выбор "все годы"
const YearAll = "all"

type Period string

const (
	Day   Period = "day"
	Week  Period = "week"
	Month Period = "month"
	Year  Period = "year"
)

type Kind string

const (
	KindExactDay Kind = "exact-day"
	KindWeek     Kind = "week"
	KindMonth    Kind = "month"
	KindYear     Kind = "year"
	KindAllYears Kind = "all-years"
)

var ErrUnknownKind = errors.New("unknown period")

// Window - разрешенное временное окно. Start и End включительны; для all-years границ нет.
type Window struct {
	Period Period    `json:"period"`
	Kind   Kind      `json:"kind"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Year   int       `json:"year,omitempty"`
}

// Parse проверяет строковое значение периода
func Parse(s string) (Period, error) {
	switch p := Period(s); p {
	case Day, Week, Month, Year:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Resolve вычисляет окно для периода и опорной даты.
// yearSelection учитывается только для года: "all", четырехзначный год или пусто (год опорной даты).
func Resolve(p Period, anchorDate, yearSelection string) (Window, error) {
	anchor, err := time.Parse(DateLayout, anchorDate)
	if err != nil {
		return Window{}, fmt.Errorf("%w: anchor %q", models.ErrInvalidDate, anchorDate)
	}

	switch p {
	case Day:
		return Window{Period: p, Kind: KindExactDay, Start: anchor, End: endOfDay(anchor)}, nil
	case Week:
		// неделя с воскресенья по субботу
		start := anchor.AddDate(0, 0, -int(anchor.Weekday()))
		return Window{Period: p, Kind: KindWeek, Start: start, End: endOfDay(start.AddDate(0, 0, 6))}, nil
	case Month:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return Window{Period: p, Kind: KindMonth, Start: start, End: endOfDay(start.AddDate(0, 1, -1))}, nil
	case Year:
		if yearSelection == YearAll {
			return Window{Period: p, Kind: KindAllYears}, nil
		}
		year := anchor.Year()
		if yearSelection != "" {
			year, err = parseYear(yearSelection)
			if err != nil {
				return Window{}, err
			}
		}
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, anchor.Location())
		return Window{Period: p, Kind: KindYear, Start: start, End: endOfDay(time.Date(year, time.December, 31, 0, 0, 0, 0, anchor.Location())), Year: year}, nil
	}
	return Window{}, fmt.Errorf("%w: %q", ErrUnknownKind, p)
}

// YearSelection переводит устаревший флаг allYears в форму "all"/"YYYY".
// Явный yearSelection имеет приоритет над флагом.
func YearSelection(allYears bool, yearSelection, anchorDate string) string {
	if yearSelection != "" {
		return yearSelection
	}
	if allYears {
		return YearAll
	}
	if anchor, err := time.Parse(DateLayout, anchorDate); err == nil {
		return strconv.Itoa(anchor.Year())
	}
	return ""
}

// Contains сообщает, попадает ли момент t в окно (сравнение по календарным частям)
func (w Window) Contains(t time.Time) bool {
	switch w.Kind {
	case KindExactDay:
		return sameDay(t, w.Start)
	case KindWeek, KindMonth:
		d := dateOf(t)
		return !d.Before(dateOf(w.Start)) && !d.After(dateOf(w.End))
	case KindYear:
		return t.Year() == w.Year
	case KindAllYears:
		return true
	}
	return false
}

// Days перечисляет календарные дни окна (для недели и месяца)
func (w Window) Days() []time.Time {
	if w.Kind != KindWeek && w.Kind != KindMonth {
		return nil
	}
	var days []time.Time
	for d := dateOf(w.Start); !d.After(dateOf(w.End)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func parseYear(s string) (int, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("%w: year %q", models.ErrInvalidDate, s)
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 {
		return 0, fmt.Errorf("%w: year %q", models.ErrInvalidDate, s)
	}
	return year, nil
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Microsecond), t.Location())
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
