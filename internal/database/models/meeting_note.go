package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// MeetingNote is the single shared note document of a meeting. Writes are
// last-writer-wins; LastAuthorID tracks who wrote last. Content is an
// opaque structured-document blob, never interpreted here.
type MeetingNote struct {
	BaseModel
	MeetingID    uuid.UUID       `json:"meeting_id" gorm:"type:uuid;not null;uniqueIndex"`
	Content      json.RawMessage `json:"content,omitempty" gorm:"type:jsonb"`
	LastAuthorID uuid.UUID       `json:"last_author_id" gorm:"type:uuid;not null"`

	Meeting    *Meeting `json:"meeting,omitempty" gorm:"foreignKey:MeetingID"`
	LastAuthor *User    `json:"last_author,omitempty" gorm:"foreignKey:LastAuthorID"`
}

// TableName returns the table name for MeetingNote
func (MeetingNote) TableName() string {
	return "meeting_notes"
}
