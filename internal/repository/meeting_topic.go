package repository

import (
	"errors"

	"oneonone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingTopicRepository handles database operations for meeting agendas
type MeetingTopicRepository struct {
	db *gorm.DB
}

// NewMeetingTopicRepository creates a new meeting topic repository
func NewMeetingTopicRepository(db *gorm.DB) *MeetingTopicRepository {
	return &MeetingTopicRepository{db: db}
}

// Attach appends the topic to the meeting agenda and marks the topic
// SCHEDULED, in one transaction. The agenda position is max(order)+1
// computed inside the same transaction as the insert, never cached.
func (r *MeetingTopicRepository) Attach(mt *models.MeetingTopic) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&models.MeetingTopic{}).
			Where("meeting_id = ?", mt.MeetingID).
			Select("COALESCE(MAX(display_order) + 1, 0)").
			Scan(&next).Error; err != nil {
			return err
		}
		mt.Order = next

		if err := tx.Create(mt).Error; err != nil {
			return err
		}

		return tx.Model(&models.Topic{}).Where("id = ?", mt.TopicID).
			Update("status", models.TopicStatusScheduled).Error
	})
}

// GetByID retrieves a meeting topic by ID
func (r *MeetingTopicRepository) GetByID(id uuid.UUID) (*models.MeetingTopic, error) {
	var mt models.MeetingTopic
	err := r.db.Preload("Topic").First(&mt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &mt, nil
}

// GetByMeetingAndTopic retrieves the attachment of a topic to a meeting, or
// nil when the topic is not on that agenda
func (r *MeetingTopicRepository) GetByMeetingAndTopic(meetingID, topicID uuid.UUID) (*models.MeetingTopic, error) {
	var mt models.MeetingTopic
	err := r.db.First(&mt, "meeting_id = ? AND topic_id = ?", meetingID, topicID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mt, nil
}

// ListByMeeting retrieves the agenda of a meeting in display order with
// topics preloaded
func (r *MeetingTopicRepository) ListByMeeting(meetingID uuid.UUID) ([]models.MeetingTopic, error) {
	var mts []models.MeetingTopic
	err := r.db.Preload("Topic").Where("meeting_id = ?", meetingID).
		Order("display_order ASC").Find(&mts).Error
	return mts, err
}

// CountByMeeting counts the attachments on a meeting
func (r *MeetingTopicRepository) CountByMeeting(meetingID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.MeetingTopic{}).Where("meeting_id = ?", meetingID).Count(&count).Error
	return count, err
}

// Update updates a meeting topic. The order is written verbatim; keeping
// sibling orders coherent across a batch of updates is the caller's job.
func (r *MeetingTopicRepository) Update(mt *models.MeetingTopic) error {
	return r.db.Save(mt).Error
}

// Detach removes the attachment and, when the topic has no remaining
// attachment on any meeting, reverts the topic to BACKLOG. Both steps run
// in one transaction. A topic still attached elsewhere keeps its status.
func (r *MeetingTopicRepository) Detach(mt *models.MeetingTopic) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.MeetingTopic{}, "id = ?", mt.ID).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&models.MeetingTopic{}).
			Where("topic_id = ?", mt.TopicID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		return tx.Model(&models.Topic{}).Where("id = ?", mt.TopicID).
			Update("status", models.TopicStatusBacklog).Error
	})
}
