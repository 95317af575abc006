package models

import "time"

// NormalizedIncident - единое представление инцидента после сведения данных из БД и удаленного хранилища
type NormalizedIncident struct {
	ID           string      `json:"id"`
	Ref          IncidentRef `json:"ref"`
	Origin       string      `json:"origin"`
	Source       string      `json:"source"`
	Type         string      `json:"type"`
	Location     string      `json:"location"`
	Timestamp    *time.Time  `json:"timestamp,omitempty"`
	Status       string      `json:"status"`
	ResolvedAt   *time.Time  `json:"resolved_at,omitempty"`
	Severity     string      `json:"severity,omitempty"`
	Priority     string      `json:"priority,omitempty"`
	ReporterName string      `json:"reporter_name,omitempty"`
	Department   string      `json:"department,omitempty"`
	Description  string      `json:"description"`
	ImageURL     string      `json:"image,omitempty"`
	Latitude     *float64    `json:"latitude,omitempty"`
	Longitude    *float64    `json:"longitude,omitempty"`
	MapURL       string      `json:"map_url,omitempty"`

	Responders           []Responder     `json:"responders"`
	LeadResponder        *Responder      `json:"lead_responder,omitempty"`
	AdditionalResponders []Responder     `json:"additional_responders"`
	Notes                []IncidentNote  `json:"notes"`
	Timeline             []TimelineEntry `json:"timeline"`
}

// HasCoordinates сообщает, известны ли обе координаты
func (n *NormalizedIncident) HasCoordinates() bool {
	return n.Latitude != nil && n.Longitude != nil
}

// DeletionResult - итог массового удаления
type DeletionResult struct {
	Requested     int      `json:"requested"`
	Deleted       int64    `json:"deleted"`
	RemoteDeleted []string `json:"remote_deleted"`
	RemoteFailed  []string `json:"remote_failed"`
}

// RemoteDocument - документ инцидента в удаленном хранилище
type RemoteDocument struct {
	ID     string
	Fields map[string]any
}
