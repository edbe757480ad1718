package models

import (
	"github.com/google/uuid"
)

// MeetingTopic links one topic onto one meeting agenda. Order is a dense
// zero-based position within the meeting; Resolution stays nil until the
// pair decides an outcome. A topic sits on at most one non-completed
// meeting at a time.
type MeetingTopic struct {
	BaseModel
	MeetingID  uuid.UUID   `json:"meeting_id" gorm:"type:uuid;not null;uniqueIndex:idx_meeting_topics_pair;index"`
	TopicID    uuid.UUID   `json:"topic_id" gorm:"type:uuid;not null;uniqueIndex:idx_meeting_topics_pair;index"`
	Order      int         `json:"order" gorm:"column:display_order;not null;default:0"`
	Resolution *Resolution `json:"resolution,omitempty" gorm:"type:varchar(20)"`
	AddedByID  uuid.UUID   `json:"added_by_id" gorm:"type:uuid;not null"`

	Meeting *Meeting `json:"meeting,omitempty" gorm:"foreignKey:MeetingID"`
	Topic   *Topic   `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	AddedBy *User    `json:"added_by,omitempty" gorm:"foreignKey:AddedByID"`
}

// TableName returns the table name for MeetingTopic
func (MeetingTopic) TableName() string {
	return "meeting_topics"
}
