package models

import (
	"time"

	"github.com/google/uuid"
)

// MeetingDuration is the fixed length of every 1:1 meeting. It is not
// configurable per meeting; the conflict window derives from it.
const MeetingDuration = 60 * time.Minute

// Meeting is a single 1:1 between the leader and the IC of a relationship.
// The creator is always the leader side of the relationship.
type Meeting struct {
	BaseModel
	RelationshipID uuid.UUID     `json:"relationship_id" gorm:"type:uuid;not null;index"`
	CreatedByID    uuid.UUID     `json:"created_by_id" gorm:"type:uuid;not null;index"`
	Title          string        `json:"title" gorm:"not null;size:200"`
	ScheduledAt    time.Time     `json:"scheduled_at" gorm:"not null;index"`
	Status         MeetingStatus `json:"status" gorm:"type:varchar(20);not null;default:'SCHEDULED';index"`

	Relationship *Relationship  `json:"relationship,omitempty" gorm:"foreignKey:RelationshipID"`
	CreatedBy    *User          `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Topics       []MeetingTopic `json:"topics,omitempty" gorm:"foreignKey:MeetingID"`
	Note         *MeetingNote   `json:"note,omitempty" gorm:"foreignKey:MeetingID"`
}

// TableName returns the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// EndsAt returns the exclusive end of the meeting window
func (m *Meeting) EndsAt() time.Time {
	return m.ScheduledAt.Add(MeetingDuration)
}
