package reconcile

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/shenikar/incident_admin/internal/models"
)

// Списки синонимов в порядке приоритета
var (
	idKeys          = []string{"firebase_id", "incident_id", "id"}
	typeKeys        = []string{"type", "event"}
	locationKeys    = []string{"location", "camera_name"}
	timestampKeys   = []string{"timestamp", "datetime", "date_time"}
	descriptionKeys = []string{"incident_description", "description", "screenshot"}
	imageKeys       = []string{"proof_image_url", "proofImageUrl", "image_url"}
	latitudeKeys    = []string{"latitude", "lat", "coords.lat", "coordinates.lat"}
	longitudeKeys   = []string{"longitude", "lng", "long", "coords.lng", "coords.long", "coordinates.lng", "coordinates.long"}
)

// Source определяет источник: поле source, иначе cctv при наличии camera_name, иначе mobile
func Source(rec RawRecord) string {
	if s, ok := rec.FirstString("source"); ok {
		return s
	}
	if _, ok := rec.FirstNonEmpty("camera_name"); ok {
		return models.SourceCCTV
	}
	return models.SourceMobile
}

// Ref возвращает двойной идентификатор записи. Внешний id: firebase_id, incident_id,
// иначе fallback (идентификатор, по которому документ был найден в удаленном хранилище).
func Ref(rec RawRecord, fallback string) models.IncidentRef {
	var ref models.IncidentRef
	if rec.Origin == OriginRelational {
		if s, ok := rec.FirstString("id"); ok {
			ref.ID, _ = strconv.ParseInt(s, 10, 64)
		}
	}
	if s, ok := rec.FirstNonEmpty("firebase_id", "incident_id"); ok {
		ref.FirebaseID = s
	} else if rec.Origin == OriginRemote {
		ref.FirebaseID = fallback
	}
	return ref
}

// Normalize сводит синонимы полей к одной схеме. Связанные данные (реагирующие,
// заметки, хронология) присоединяются отдельно через Attach.
func Normalize(rec RawRecord, identifier string) *models.NormalizedIncident {
	n := &models.NormalizedIncident{
		Origin:               string(rec.Origin),
		Source:               Source(rec),
		Ref:                  Ref(rec, identifier),
		Type:                 stringOr(rec, "unknown", typeKeys...),
		Location:             stringOr(rec, "Unknown", locationKeys...),
		Status:               stringOr(rec, "unknown", "status"),
		Description:          stringOr(rec, "", descriptionKeys...),
		ImageURL:             stringOr(rec, "", imageKeys...),
		Severity:             stringOr(rec, "", "severity"),
		Priority:             stringOr(rec, "", "priority"),
		ReporterName:         stringOr(rec, "", "reporter_name"),
		Department:           stringOr(rec, "", "department"),
		Responders:           []models.Responder{},
		AdditionalResponders: []models.Responder{},
		Notes:                []models.IncidentNote{},
		Timeline:             []models.TimelineEntry{},
	}
	n.ID = stringOr(rec, identifier, idKeys...)
	n.Timestamp, _ = rec.FirstTime(timestampKeys...)
	if n.Timestamp == nil && rec.Origin == OriginRelational {
		n.Timestamp, _ = rec.FirstTime("created_at")
	}
	n.ResolvedAt, _ = rec.FirstTime("resolved_at")
	n.Latitude, _ = rec.FirstFloat(latitudeKeys...)
	n.Longitude, _ = rec.FirstFloat(longitudeKeys...)
	return n
}

// Attach присоединяет реагирующих (уже упорядоченных по времени и id), заметки и хронологию.
// Первый реагирующий - ведущий, остальные - дополнительные.
func Attach(n *models.NormalizedIncident, responders []models.Responder, notes []models.IncidentNote, timeline []models.TimelineEntry) {
	if responders != nil {
		n.Responders = responders
	}
	if len(responders) > 0 {
		lead := responders[0]
		n.LeadResponder = &lead
		n.AdditionalResponders = append([]models.Responder{}, responders[1:]...)
	}
	if notes != nil {
		n.Notes = notes
	}
	if timeline != nil {
		n.Timeline = timeline
	}
}

const mapboxStaticURL = "https://api.mapbox.com/styles/v1/mapbox/streets-v11/static/pin-s+ff0000(%[1]s,%[2]s)/%[1]s,%[2]s,15,0/400x200@2x?access_token=%[3]s"

// MapURL строит ссылку на статичную карту, если известны координаты и задан токен
func MapURL(n *models.NormalizedIncident, token string) string {
	if token == "" || !n.HasCoordinates() {
		return ""
	}
	lng := strconv.FormatFloat(*n.Longitude, 'f', -1, 64)
	lat := strconv.FormatFloat(*n.Latitude, 'f', -1, 64)
	return fmt.Sprintf(mapboxStaticURL, lng, lat, url.QueryEscape(token))
}

func stringOr(rec RawRecord, def string, paths ...string) string {
	if s, ok := rec.FirstString(paths...); ok {
		return s
	}
	return def
}

// ToIncident возвращает плоскую запись для фильтрации документов тем же предикатом, что и строки БД
func ToIncident(n *models.NormalizedIncident) *models.Incident {
	inc := &models.Incident{
		ID:           n.Ref.ID,
		FirebaseID:   n.Ref.FirebaseID,
		Source:       n.Source,
		Type:         n.Type,
		Status:       n.Status,
		Severity:     n.Severity,
		Priority:     n.Priority,
		Location:     n.Location,
		ReporterName: n.ReporterName,
		Department:   n.Department,
		Description:  n.Description,
		ImageURL:     n.ImageURL,
		ResolvedAt:   n.ResolvedAt,
		Latitude:     n.Latitude,
		Longitude:    n.Longitude,
	}
	if n.Timestamp != nil {
		inc.Timestamp = *n.Timestamp
	}
	if n.Source == models.SourceCCTV {
		inc.CameraName = n.Location
	}
	return inc
}
