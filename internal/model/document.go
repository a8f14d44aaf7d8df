package model

import "time"

type DocumentType string

const (
	TypeTZ    DocumentType = "tz"
	TypeBrief DocumentType = "brief"
)

func (t DocumentType) Valid() bool {
	return t == TypeTZ || t == TypeBrief
}

// DefaultTitle is used when a document is created with a blank title.
func (t DocumentType) DefaultTitle() string {
	if t == TypeBrief {
		return "Бриф без названия"
	}
	return "ТЗ без названия"
}

type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusActive    DocumentStatus = "active"
	StatusCompleted DocumentStatus = "completed"
	StatusRejected  DocumentStatus = "rejected"
)

// Document is the persisted unit. Type is fixed at creation; Status follows
// the draft -> active -> completed/rejected convention but is not enforced by
// the store. IsTemplate is an independent axis from Status.
type Document struct {
	ID           string         `json:"id"`
	OwnerID      int64          `json:"user_id"`
	Title        string         `json:"title"`
	Type         DocumentType   `json:"type"`
	Status       DocumentStatus `json:"status"`
	Design       DesignConfig   `json:"design_config"`
	Content      Content        `json:"content"`
	PreviewImage *string        `json:"preview_image"`
	IsTemplate   bool           `json:"is_template"`
	SharedWith   []string       `json:"shared_with"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
