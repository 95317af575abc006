package models

import (
	"strconv"
	"time"
)

const (
	SourceMobile = "mobile"
	SourceCCTV   = "cctv"
)

// Incident представляет запись об инциденте в реляционном хранилище
type Incident struct {
	ID           int64      `json:"id"`
	FirebaseID   string     `json:"firebase_id,omitempty"`
	Source       string     `json:"source"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	Severity     string     `json:"severity,omitempty"`
	Priority     string     `json:"priority,omitempty"`
	Location     string     `json:"location,omitempty"`
	CameraName   string     `json:"camera_name,omitempty"`
	Timestamp    time.Time  `json:"timestamp"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	ReporterName string     `json:"reporter_name,omitempty"`
	Department   string     `json:"department,omitempty"`
	Description  string     `json:"incident_description,omitempty"`
	ImageURL     string     `json:"proof_image_url,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	Hidden       bool       `json:"hidden"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Ref возвращает двойной идентификатор инцидента
func (i *Incident) Ref() IncidentRef {
	return IncidentRef{ID: i.ID, FirebaseID: i.FirebaseID}
}

// IncidentRef - двойной идентификатор: числовой id из БД и/или внешний id удаленного хранилища.
// Нулевой ID и пустой FirebaseID означают "неизвестно".
type IncidentRef struct {
	ID         int64  `json:"id,omitempty"`
	FirebaseID string `json:"firebase_id,omitempty"`
}

func (r IncidentRef) HasID() bool {
	return r.ID > 0
}

func (r IncidentRef) HasFirebaseID() bool {
	return r.FirebaseID != ""
}

// Resolvable сообщает, известна ли хотя бы одна форма идентификатора
func (r IncidentRef) Resolvable() bool {
	return r.HasID() || r.HasFirebaseID()
}

// Matches сравнивает ссылку (например, dispatches.incident_id) с любой из форм идентификатора
func (r IncidentRef) Matches(ref string) bool {
	if ref == "" {
		return false
	}
	if r.HasID() && ref == strconv.FormatInt(r.ID, 10) {
		return true
	}
	return r.HasFirebaseID() && ref == r.FirebaseID
}

// References возвращает строковые формы, под которыми на инцидент могут ссылаться дочерние записи
func (r IncidentRef) References() []string {
	refs := make([]string, 0, 2)
	if r.HasID() {
		refs = append(refs, strconv.FormatInt(r.ID, 10))
	}
	if r.HasFirebaseID() {
		refs = append(refs, r.FirebaseID)
	}
	return refs
}
