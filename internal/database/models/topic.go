package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Topic is a discussion item owned by one user. Content is an opaque
// structured-document blob the backend stores and returns unchanged.
type Topic struct {
	BaseModel
	OwnerID uuid.UUID       `json:"owner_id" gorm:"type:uuid;not null;index"`
	Title   string          `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Content json.RawMessage `json:"content,omitempty" gorm:"type:jsonb"`
	Status  TopicStatus     `json:"status" gorm:"type:varchar(20);not null;default:'BACKLOG';index"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

// TableName returns the table name for Topic
func (Topic) TableName() string {
	return "topics"
}
