package repository

import (
	"oneonone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TopicRepository handles database operations for topics
type TopicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

// Create creates a new topic
func (r *TopicRepository) Create(topic *models.Topic) error {
	return r.db.Create(topic).Error
}

// GetByID retrieves a topic by ID
func (r *TopicRepository) GetByID(id uuid.UUID) (*models.Topic, error) {
	var topic models.Topic
	err := r.db.First(&topic, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// ListByOwner retrieves topics of one owner, optionally filtered by status,
// newest first
func (r *TopicRepository) ListByOwner(ownerID uuid.UUID, status *models.TopicStatus) ([]models.Topic, error) {
	var topics []models.Topic
	query := r.db.Where("owner_id = ?", ownerID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at DESC").Find(&topics).Error
	return topics, err
}

// Update updates a topic
func (r *TopicRepository) Update(topic *models.Topic) error {
	return r.db.Save(topic).Error
}

// Delete deletes a topic
func (r *TopicRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Topic{}, "id = ?", id).Error
}

// CountMeetingLinks counts the meeting attachments of a topic
func (r *TopicRepository) CountMeetingLinks(topicID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.MeetingTopic{}).Where("topic_id = ?", topicID).Count(&count).Error
	return count, err
}
