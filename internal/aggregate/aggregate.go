// Package aggregate группирует отфильтрованные инциденты во временные корзины и гистограммы.
package aggregate

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/period"
)

// Series - временной ряд: подписи корзин и количество инцидентов в каждой
type Series struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// Total возвращает сумму по всем корзинам
func (s Series) Total() int {
	total := 0
	for _, c := range s.Counts {
		total += c
	}
	return total
}

// Histograms - распределения по важности (только mobile), статусу и типу
type Histograms struct {
	Severity map[string]int `json:"severity,omitempty"`
	Status   map[string]int `json:"status"`
	Type     map[string]int `json:"type"`
}

// BuildSeries раскладывает инциденты по корзинам окна. Для фиксированных периодов
// все корзины присутствуют даже с нулем; для "всех лет" - только годы с данными.
func BuildSeries(incidents []*models.Incident, w period.Window) Series {
	switch w.Kind {
	case period.KindExactDay:
		return fixed(incidents, hourLabels(), func(t time.Time) string {
			return fmt.Sprintf("%02d:00", t.Hour())
		})
	case period.KindWeek, period.KindMonth:
		days := w.Days()
		labels := make([]string, len(days))
		for i, d := range days {
			labels[i] = d.Format(period.DateLayout)
		}
		return fixed(incidents, labels, func(t time.Time) string {
			return t.Format(period.DateLayout)
		})
	case period.KindYear:
		labels := make([]string, 12)
		for m := 1; m <= 12; m++ {
			labels[m-1] = fmt.Sprintf("%04d-%02d", w.Year, m)
		}
		return fixed(incidents, labels, func(t time.Time) string {
			return t.Format("2006-01")
		})
	case period.KindAllYears:
		return byYear(incidents)
	}
	return Series{Labels: []string{}, Counts: []int{}}
}

// BuildHistograms считает распределения; гистограмма важности - только для mobile.
// Пустая важность учитывается под ключом "".
func BuildHistograms(incidents []*models.Incident, source string) Histograms {
	h := Histograms{
		Status: make(map[string]int),
		Type:   make(map[string]int),
	}
	if source == models.SourceMobile {
		h.Severity = make(map[string]int)
	}
	for _, inc := range incidents {
		h.Status[inc.Status]++
		h.Type[inc.Type]++
		if h.Severity != nil {
			h.Severity[inc.Severity]++
		}
	}
	return h
}

func fixed(incidents []*models.Incident, labels []string, bucket func(time.Time) string) Series {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	counts := make([]int, len(labels))
	for _, inc := range incidents {
		if i, ok := index[bucket(inc.Timestamp)]; ok {
			counts[i]++
		}
	}
	return Series{Labels: labels, Counts: counts}
}

func byYear(incidents []*models.Incident) Series {
	perYear := make(map[int]int)
	for _, inc := range incidents {
		perYear[inc.Timestamp.Year()]++
	}
	years := make([]int, 0, len(perYear))
	for y := range perYear {
		years = append(years, y)
	}
	sort.Ints(years)

	s := Series{Labels: make([]string, len(years)), Counts: make([]int, len(years))}
	for i, y := range years {
		s.Labels[i] = strconv.Itoa(y)
		s.Counts[i] = perYear[y]
	}
	return s
}

func hourLabels() []string {
	labels := make([]string, 24)
	for h := range labels {
		labels[h] = fmt.Sprintf("%02d:00", h)
	}
	return labels
}
