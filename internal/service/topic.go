package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"oneonone-backend/internal/auth"
	"oneonone-backend/internal/database/models"
	apperrors "oneonone-backend/internal/errors"
	"oneonone-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TopicService handles business logic for discussion topics. Topics live in
// their owner's backlog until they are attached to a meeting agenda.
type TopicService struct {
	topicRepo repository.TopicRepositoryInterface
	validator *validator.Validate
}

// NewTopicService creates a new topic service
func NewTopicService(topicRepo repository.TopicRepositoryInterface, validator *validator.Validate) *TopicService {
	return &TopicService{topicRepo: topicRepo, validator: validator}
}

// CreateTopicRequest represents the request to create a topic
type CreateTopicRequest struct {
	Title   string          `json:"title" validate:"required,max=200"`
	Content json.RawMessage `json:"content,omitempty"`
}

// UpdateTopicRequest represents the request to update a topic. Status can
// only be moved between BACKLOG and ARCHIVED by hand; SCHEDULED and
// DISCUSSED are driven by meeting events.
type UpdateTopicRequest struct {
	Title   *string             `json:"title,omitempty" validate:"omitempty,max=200"`
	Content json.RawMessage     `json:"content,omitempty"`
	Status  *models.TopicStatus `json:"status,omitempty"`
}

// TopicResponse represents the response for topic operations
type TopicResponse struct {
	ID        uuid.UUID          `json:"id"`
	OwnerID   uuid.UUID          `json:"owner_id"`
	Title     string             `json:"title"`
	Content   json.RawMessage    `json:"content,omitempty"`
	Status    models.TopicStatus `json:"status"`
	CreatedAt string             `json:"created_at"`
	UpdatedAt string             `json:"updated_at"`
}

// Create creates a topic in the caller's backlog
func (s *TopicService) Create(identity auth.Identity, req *CreateTopicRequest) (*TopicResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	topic := &models.Topic{
		OwnerID: identity.UserID,
		Title:   req.Title,
		Content: req.Content,
		Status:  models.TopicStatusBacklog,
	}
	if err := s.topicRepo.Create(topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}
	return s.toResponse(topic), nil
}

// GetByID retrieves one of the caller's topics
func (s *TopicService) GetByID(identity auth.Identity, id uuid.UUID) (*TopicResponse, error) {
	topic, err := s.ownedTopic(identity, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(topic), nil
}

// List retrieves the caller's topics, optionally filtered by status
func (s *TopicService) List(identity auth.Identity, statusFilter string) ([]TopicResponse, error) {
	var status *models.TopicStatus
	if statusFilter != "" {
		candidate := models.TopicStatus(statusFilter)
		if !candidate.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown topic status")
		}
		status = &candidate
	}

	topics, err := s.topicRepo.ListByOwner(identity.UserID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	responses := make([]TopicResponse, len(topics))
	for i := range topics {
		responses[i] = *s.toResponse(&topics[i])
	}
	return responses, nil
}

// Update edits a topic's title or content. Only the owner may edit.
func (s *TopicService) Update(identity auth.Identity, id uuid.UUID, req *UpdateTopicRequest) (*TopicResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	topic, err := s.ownedTopic(identity, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != "" {
		topic.Title = *req.Title
	}
	if req.Content != nil {
		topic.Content = req.Content
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown topic status")
		}
		if *req.Status == models.TopicStatusScheduled || *req.Status == models.TopicStatusDiscussed {
			return nil, apperrors.ErrTopicScheduled
		}
		topic.Status = *req.Status
	}

	if err := s.topicRepo.Update(topic); err != nil {
		return nil, fmt.Errorf("failed to update topic: %w", err)
	}
	return s.toResponse(topic), nil
}

// Archive moves a topic out of the active backlog without losing it
func (s *TopicService) Archive(identity auth.Identity, id uuid.UUID) (*TopicResponse, error) {
	topic, err := s.ownedTopic(identity, id)
	if err != nil {
		return nil, err
	}

	topic.Status = models.TopicStatusArchived
	if err := s.topicRepo.Update(topic); err != nil {
		return nil, fmt.Errorf("failed to archive topic: %w", err)
	}
	return s.toResponse(topic), nil
}

// Delete removes a topic permanently. A topic that was ever attached to a
// meeting is part of meeting history and cannot be deleted, only archived.
func (s *TopicService) Delete(identity auth.Identity, id uuid.UUID) error {
	topic, err := s.ownedTopic(identity, id)
	if err != nil {
		return err
	}
	if topic.Status != models.TopicStatusBacklog {
		return apperrors.ErrTopicNotDeletable
	}

	links, err := s.topicRepo.CountMeetingLinks(topic.ID)
	if err != nil {
		return fmt.Errorf("failed to count meeting links: %w", err)
	}
	if links > 0 {
		return apperrors.ErrTopicNotDeletable
	}

	if err := s.topicRepo.Delete(topic.ID); err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	return nil
}

// ownedTopic loads a topic and hides it from everyone but its owner
func (s *TopicService) ownedTopic(identity auth.Identity, id uuid.UUID) (*models.Topic, error) {
	topic, err := s.topicRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}
	if topic.OwnerID != identity.UserID {
		return nil, apperrors.ErrTopicNotFound
	}
	return topic, nil
}

// toResponse converts a topic model to response
func (s *TopicService) toResponse(topic *models.Topic) *TopicResponse {
	return &TopicResponse{
		ID:        topic.ID,
		OwnerID:   topic.OwnerID,
		Title:     topic.Title,
		Content:   topic.Content,
		Status:    topic.Status,
		CreatedAt: topic.CreatedAt.Format(time.RFC3339),
		UpdatedAt: topic.UpdatedAt.Format(time.RFC3339),
	}
}
