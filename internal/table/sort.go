// Package table реализует движок таблицы инцидентов: сортировку, пагинацию
// и состояние выбора строк для массовых действий.
package table

import (
	"sort"
	"strings"
	"time"

	"github.com/shenikar/incident_admin/internal/filter"
	"github.com/shenikar/incident_admin/internal/models"
)

const (
	Asc  = "asc"
	Desc = "desc"
)

const (
	FieldSeverity  = "severity"
	FieldTimestamp = "timestamp"
)

// severityRank - фиксированный порядок важности: critical > high > medium > low, прочее в конце
var severityRank = map[string]int{
	"critical": 1,
	"high":     2,
	"medium":   3,
	"low":      4,
}

const unknownRank = 5

// sortable - разрешенные поля сортировки и соответствующие колонки
var sortable = map[string]string{
	"id":            "id",
	"firebase_id":   "firebase_id",
	"type":          "type",
	"status":        "status",
	"severity":      "severity",
	"priority":      "priority",
	"location":      "location",
	"camera_name":   "camera_name",
	"timestamp":     filter.TimestampColumn,
	"reporter_name": "reporter_name",
	"department":    "department",
	"created_at":    "created_at",
}

// Sort - поле и направление сортировки
type Sort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// DefaultSort возвращает сортировку по умолчанию для источника
func DefaultSort(source string) Sort {
	if source == models.SourceMobile {
		return Sort{Field: FieldSeverity, Direction: Asc}
	}
	return Sort{Field: FieldTimestamp, Direction: Desc}
}

// Normalize подставляет значения по умолчанию для неизвестного поля или направления
func (s Sort) Normalize(source string) Sort {
	if _, ok := sortable[s.Field]; !ok {
		return DefaultSort(source)
	}
	dir := strings.ToLower(s.Direction)
	if dir != Desc {
		dir = Asc
	}
	return Sort{Field: s.Field, Direction: dir}
}

// OrderBy рендерит ORDER BY (без ключевого слова) для нормализованной сортировки.
// Для severity направление не меняет порядок важности; дальше timestamp DESC.
func (s Sort) OrderBy() string {
	if s.Field == FieldSeverity {
		return `CASE lower(severity) WHEN 'critical' THEN 1 WHEN 'high' THEN 2 WHEN 'medium' THEN 3 WHEN 'low' THEN 4 ELSE 5 END ASC, ` +
			filter.TimestampColumn + ` DESC, id DESC`
	}
	dir := "ASC"
	if s.Direction == Desc {
		dir = "DESC"
	}
	return sortable[s.Field] + " " + dir + ", id " + dir
}

// SortIncidents упорядочивает инциденты в памяти по тем же правилам, что и OrderBy
func SortIncidents(incidents []*models.Incident, s Sort) {
	desc := s.Direction == Desc
	sort.SliceStable(incidents, func(i, j int) bool {
		a, b := incidents[i], incidents[j]
		if s.Field == FieldSeverity {
			ra, rb := rank(a.Severity), rank(b.Severity)
			if ra != rb {
				return ra < rb
			}
			if !a.Timestamp.Equal(b.Timestamp) {
				return a.Timestamp.After(b.Timestamp)
			}
			return a.ID > b.ID
		}
		if c := compareField(a, b, s.Field); c != 0 {
			if desc {
				return c > 0
			}
			return c < 0
		}
		if desc {
			return a.ID > b.ID
		}
		return a.ID < b.ID
	})
}

func rank(severity string) int {
	if r, ok := severityRank[strings.ToLower(severity)]; ok {
		return r
	}
	return unknownRank
}

func compareField(a, b *models.Incident, field string) int {
	switch field {
	case "id":
		return compareInt(a.ID, b.ID)
	case "timestamp":
		return compareTime(a.Timestamp, b.Timestamp)
	case "created_at":
		return compareTime(a.CreatedAt, b.CreatedAt)
	}
	return compareNullableString(stringField(a, field), stringField(b, field))
}

func stringField(inc *models.Incident, field string) string {
	switch field {
	case "firebase_id":
		return inc.FirebaseID
	case "type":
		return inc.Type
	case "status":
		return inc.Status
	case "priority":
		return inc.Priority
	case "location":
		return inc.Location
	case "camera_name":
		return inc.CameraName
	case "reporter_name":
		return inc.ReporterName
	case "department":
		return inc.Department
	}
	return ""
}

// compareNullableString сортирует пустые значения как NULL в PostgreSQL: после непустых
func compareNullableString(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	return strings.Compare(a, b)
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareTime(a, b time.Time) int {
	return a.Compare(b)
}
