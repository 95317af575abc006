// Package reconcile приводит записи об инциденте из БД и удаленного хранилища к одной схеме.
package reconcile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/incident_admin/internal/models"
)

type Origin string

const (
	OriginRelational Origin = "relational"
	OriginRemote     Origin = "remote"
)

// RawRecord - "сырая" запись с произвольным набором ключей и вложенностью.
// Поля извлекаются только через функции с явным порядком приоритета.
type RawRecord struct {
	Origin Origin
	Fields map[string]any
}

// lookup находит значение по пути вида "coords.lat"; nil считается отсутствием
func (r RawRecord) lookup(path string) (any, bool) {
	var cur any = r.Fields
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// FirstString возвращает первое присутствующее значение по списку путей, приведенное к строке
func (r RawRecord) FirstString(paths ...string) (string, bool) {
	for _, p := range paths {
		v, ok := r.lookup(p)
		if !ok {
			continue
		}
		if s, ok := toString(v); ok {
			return s, true
		}
	}
	return "", false
}

// FirstNonEmpty - как FirstString, но пропускает пустые строки
func (r RawRecord) FirstNonEmpty(paths ...string) (string, bool) {
	for _, p := range paths {
		if s, ok := r.FirstString(p); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// FirstFloat возвращает первое числовое значение по списку путей; нечисловые значения пропускаются
func (r RawRecord) FirstFloat(paths ...string) (*float64, bool) {
	for _, p := range paths {
		v, ok := r.lookup(p)
		if !ok {
			continue
		}
		if f, ok := toFloat(v); ok {
			return &f, true
		}
	}
	return nil, false
}

// FirstTime возвращает первое значение, которое разбирается как время
func (r RawRecord) FirstTime(paths ...string) (*time.Time, bool) {
	for _, p := range paths {
		v, ok := r.lookup(p)
		if !ok {
			continue
		}
		if t, ok := toTime(v); ok {
			return &t, true
		}
	}
	return nil, false
}

func toString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case json.Number:
		return x.String(), true
	case time.Time:
		return x.Format(time.RFC3339), true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	}
	return 0, false
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func toTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, !x.IsZero()
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, !x.IsZero()
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	case int64:
		return time.UnixMilli(x).UTC(), true
	case float64:
		return time.UnixMilli(int64(x)).UTC(), true
	}
	return time.Time{}, false
}

// FromIncident превращает строку БД в сырую запись с теми же ключами, что и у удаленных документов
func FromIncident(inc *models.Incident) RawRecord {
	f := map[string]any{
		"id":         inc.ID,
		"source":     inc.Source,
		"type":       inc.Type,
		"status":     inc.Status,
		"timestamp":  inc.Timestamp,
		"created_at": inc.CreatedAt,
		"hidden":     inc.Hidden,
	}
	optional := map[string]string{
		"firebase_id":          inc.FirebaseID,
		"severity":             inc.Severity,
		"priority":             inc.Priority,
		"location":             inc.Location,
		"camera_name":          inc.CameraName,
		"reporter_name":        inc.ReporterName,
		"department":           inc.Department,
		"incident_description": inc.Description,
		"proof_image_url":      inc.ImageURL,
	}
	for k, v := range optional {
		if v != "" {
			f[k] = v
		}
	}
	if inc.ResolvedAt != nil {
		f["resolved_at"] = *inc.ResolvedAt
	}
	if inc.Latitude != nil {
		f["latitude"] = *inc.Latitude
	}
	if inc.Longitude != nil {
		f["longitude"] = *inc.Longitude
	}
	if inc.Timestamp.IsZero() {
		delete(f, "timestamp")
	}
	return RawRecord{Origin: OriginRelational, Fields: f}
}

// FromDocument оборачивает документ удаленного хранилища
func FromDocument(fields map[string]any) RawRecord {
	if fields == nil {
		fields = map[string]any{}
	}
	return RawRecord{Origin: OriginRemote, Fields: fields}
}
