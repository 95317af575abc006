package models

import "time"

// User - пользователь системы (администратор или реагирующий)
type User struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ResponderType string `json:"responder_type,omitempty"`
}

// Dispatch связывает инцидент (по любой форме id, хранится строкой) с реагирующим
type Dispatch struct {
	ID          int64     `json:"id"`
	IncidentRef string    `json:"incident_id"`
	ResponderID int64     `json:"responder_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Responder - назначение, объединенное с данными пользователя
type Responder struct {
	DispatchID    int64     `json:"dispatch_id"`
	Name          string    `json:"name"`
	ResponderType string    `json:"responder_type,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// IncidentNote - заметка к инциденту
type IncidentNote struct {
	ID         int64     `json:"id"`
	IncidentID int64     `json:"incident_id"`
	UserName   string    `json:"user_name"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

// TimelineEntry - запись хронологии инцидента
type TimelineEntry struct {
	ID         int64     `json:"id"`
	IncidentID int64     `json:"incident_id"`
	UserName   string    `json:"user_name"`
	Event      string    `json:"event"`
	Details    string    `json:"details,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
