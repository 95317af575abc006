// Package filter собирает набор условий отбора инцидентов. Один и тот же Predicate
// вычисляется в памяти (Match) и рендерится в WHERE для PostgreSQL (SQL).
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/period"
)

// TimestampLayout - строковое представление времени события, по которому работает поиск
const TimestampLayout = "2006-01-02 15:04:05"

// Criteria - неизменяемый набор критериев отбора
type Criteria struct {
	Source string
	Type   string
	Status string
	Hidden bool
	Search string
	Window period.Window
}

// Predicate - собранный предикат. Значение не изменяется после Build.
type Predicate struct {
	c      Criteria
	needle string
}

// Build собирает предикат из критериев
func Build(c Criteria) Predicate {
	return Predicate{c: c, needle: strings.ToLower(strings.TrimSpace(c.Search))}
}

// Criteria возвращает критерии, из которых собран предикат
func (p Predicate) Criteria() Criteria {
	return p.c
}

// Match вычисляет предикат для одного инцидента
func (p Predicate) Match(inc *models.Incident) bool {
	if inc == nil {
		return false
	}
	if inc.Source != p.c.Source || inc.Hidden != p.c.Hidden {
		return false
	}
	if p.c.Type != "" && inc.Type != p.c.Type {
		return false
	}
	if p.c.Status != "" && inc.Status != p.c.Status {
		return false
	}
	if p.needle != "" && !p.matchSearch(inc) {
		return false
	}
	return p.c.Window.Contains(inc.Timestamp)
}

func (p Predicate) matchSearch(inc *models.Incident) bool {
	for _, field := range p.searchFields(inc) {
		if strings.Contains(strings.ToLower(field), p.needle) {
			return true
		}
	}
	return false
}

func (p Predicate) searchFields(inc *models.Incident) []string {
	fields := []string{inc.FirebaseID, inc.Type, inc.Location, inc.Department, inc.Status}
	if p.c.Source == models.SourceMobile {
		fields = append(fields, inc.ReporterName, inc.Description)
	}
	return append(fields, TimestampProjections(inc.Timestamp)...)
}

// TimestampProjections возвращает строковые проекции времени события, по которым
// пользователь может искать: исходная строка, название месяца, год, день и "Month DD, YYYY".
func TimestampProjections(t time.Time) []string {
	return []string{
		t.Format(TimestampLayout),
		t.Format("January"),
		t.Format("2006"),
		t.Format("02"),
		t.Format("January 02, 2006"),
	}
}

// TimestampColumn - время инцидента; строки без timestamp датируются created_at
const TimestampColumn = `COALESCE("timestamp", created_at)`

// SQL рендерит предикат в WHERE-фрагмент с позиционными аргументами, начиная с $startArg
func (p Predicate) SQL(startArg int) (string, []any) {
	b := &sqlBuilder{next: startArg}

	b.add("source = %s", p.c.Source)
	b.add("hidden = %s", p.c.Hidden)
	if p.c.Type != "" {
		b.add("type = %s", p.c.Type)
	}
	if p.c.Status != "" {
		b.add("status = %s", p.c.Status)
	}
	if p.needle != "" {
		b.add(p.searchSQL(), "%"+escapeLike(p.needle)+"%")
	}

	w := p.c.Window
	switch w.Kind {
	case period.KindExactDay:
		b.add(TimestampColumn+"::date = %s::date", w.Start.Format(period.DateLayout))
	case period.KindWeek, period.KindMonth:
		b.addRange(TimestampColumn+" BETWEEN %s::timestamp AND %s::timestamp",
			w.Start.Format("2006-01-02 15:04:05.999999"), w.End.Format("2006-01-02 15:04:05.999999"))
	case period.KindYear:
		b.add("EXTRACT(YEAR FROM "+TimestampColumn+") = %s", w.Year)
	}

	return strings.Join(b.clauses, " AND "), b.args
}

func (p Predicate) searchSQL() string {
	cols := []string{
		"COALESCE(firebase_id, '')",
		"type",
		"COALESCE(location, '')",
		"COALESCE(department, '')",
		"status",
	}
	if p.c.Source == models.SourceMobile {
		cols = append(cols, "COALESCE(reporter_name, '')", "COALESCE(incident_description, '')")
	}
	cols = append(cols,
		"to_char("+TimestampColumn+", 'YYYY-MM-DD HH24:MI:SS')",
		"to_char("+TimestampColumn+", 'FMMonth')",
		"to_char("+TimestampColumn+", 'YYYY')",
		"to_char("+TimestampColumn+", 'DD')",
		"to_char("+TimestampColumn+", 'FMMonth DD, YYYY')",
	)
	parts := make([]string, len(cols))
	for i, col := range cols {
		// один и тот же аргумент переиспользуется всеми колонками группы
		parts[i] = col + " ILIKE %[1]s"
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

type sqlBuilder struct {
	clauses []string
	args    []any
	next    int
}

func (b *sqlBuilder) add(format string, arg any) {
	b.clauses = append(b.clauses, fmt.Sprintf(format, b.placeholder()))
	b.args = append(b.args, arg)
}

func (b *sqlBuilder) addRange(format string, from, to any) {
	a := b.placeholder()
	b.args = append(b.args, from)
	c := b.placeholder()
	b.args = append(b.args, to)
	b.clauses = append(b.clauses, fmt.Sprintf(format, a, c))
}

func (b *sqlBuilder) placeholder() string {
	ph := fmt.Sprintf("$%d", b.next)
	b.next++
	return ph
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
