package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oneonone-backend/internal/auth"
	"oneonone-backend/internal/database/models"
	apperrors "oneonone-backend/internal/errors"
	"oneonone-backend/internal/logger"
	"oneonone-backend/internal/notify"
	"oneonone-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingTopicService handles the agenda of a meeting: attaching topics,
// ordering them, recording resolutions and detaching.
type MeetingTopicService struct {
	meetingTopicRepo repository.MeetingTopicRepositoryInterface
	meetingRepo      repository.MeetingRepositoryInterface
	topicRepo        repository.TopicRepositoryInterface
	notifier         notify.Notifier
	validator        *validator.Validate
}

// NewMeetingTopicService creates a new meeting topic service
func NewMeetingTopicService(
	meetingTopicRepo repository.MeetingTopicRepositoryInterface,
	meetingRepo repository.MeetingRepositoryInterface,
	topicRepo repository.TopicRepositoryInterface,
	notifier notify.Notifier,
	validator *validator.Validate,
) *MeetingTopicService {
	return &MeetingTopicService{
		meetingTopicRepo: meetingTopicRepo,
		meetingRepo:      meetingRepo,
		topicRepo:        topicRepo,
		notifier:         notifier,
		validator:        validator,
	}
}

// AttachTopicRequest represents the request to put a topic on an agenda
type AttachTopicRequest struct {
	TopicID uuid.UUID `json:"topic_id" validate:"required"`
}

// UpdateMeetingTopicRequest represents the request to change an agenda
// entry. Resolution accepts DONE, NEXT, BACKLOG, ACTION and the aliases
// DEFERRED (NEXT) and DROPPED (BACKLOG); an empty string clears it.
type UpdateMeetingTopicRequest struct {
	Order      *int    `json:"order,omitempty" validate:"omitempty,min=0"`
	Resolution *string `json:"resolution,omitempty"`
}

// MeetingTopicResponse represents the response for agenda operations
type MeetingTopicResponse struct {
	ID         uuid.UUID          `json:"id"`
	MeetingID  uuid.UUID          `json:"meeting_id"`
	TopicID    uuid.UUID          `json:"topic_id"`
	Order      int                `json:"order"`
	Resolution *models.Resolution `json:"resolution,omitempty"`
	AddedByID  uuid.UUID          `json:"added_by_id"`
	TopicTitle string             `json:"topic_title,omitempty"`
	CreatedAt  string             `json:"created_at"`
}

// Attach puts one of the caller's topics on the meeting agenda at the end.
// The caller must be in the meeting's relationship, the meeting must not be
// completed, and the topic must not already be on that agenda.
func (s *MeetingTopicService) Attach(identity auth.Identity, meetingID uuid.UUID, req *AttachTopicRequest) (*MeetingTopicResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	meeting, err := s.memberMeeting(identity, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.Status == models.MeetingStatusCompleted {
		return nil, apperrors.ErrMeetingCompleted
	}

	topic, err := s.topicRepo.GetByID(req.TopicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}
	if topic.OwnerID != identity.UserID {
		return nil, apperrors.ErrNotTopicOwner
	}

	existing, err := s.meetingTopicRepo.GetByMeetingAndTopic(meetingID, req.TopicID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing attachment: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTopicAlreadyScheduled
	}

	mt := &models.MeetingTopic{
		MeetingID: meetingID,
		TopicID:   req.TopicID,
		AddedByID: identity.UserID,
	}
	if err := s.meetingTopicRepo.Attach(mt); err != nil {
		return nil, fmt.Errorf("failed to attach topic: %w", err)
	}
	mt.Topic = topic
	logger.WithUser(identity.UserID).WithFields(map[string]interface{}{
		"meeting": meetingID,
		"topic":   req.TopicID,
	}).Info("Topic attached to agenda")

	s.notifier.Notify(context.Background(), notify.Event{
		Kind:        notify.KindTopicAdded,
		RecipientID: otherMember(meeting.Relationship, identity.UserID),
		Message:     fmt.Sprintf("topic %q added to %s", topic.Title, meeting.Title),
	})

	return s.toResponse(mt), nil
}

// ListAgenda retrieves the meeting agenda in display order
func (s *MeetingTopicService) ListAgenda(identity auth.Identity, meetingID uuid.UUID) ([]MeetingTopicResponse, error) {
	if _, err := s.memberMeeting(identity, meetingID); err != nil {
		return nil, err
	}

	mts, err := s.meetingTopicRepo.ListByMeeting(meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list agenda: %w", err)
	}
	responses := make([]MeetingTopicResponse, len(mts))
	for i := range mts {
		responses[i] = *s.toResponse(&mts[i])
	}
	return responses, nil
}

// Update changes an agenda entry's position or resolution. Setting the
// resolution to ACTION notifies the topic owner of the followup.
func (s *MeetingTopicService) Update(identity auth.Identity, meetingID, id uuid.UUID, req *UpdateMeetingTopicRequest) (*MeetingTopicResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	meeting, err := s.memberMeeting(identity, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.Status == models.MeetingStatusCompleted {
		return nil, apperrors.ErrMeetingCompleted
	}

	mt, err := s.agendaEntry(meetingID, id)
	if err != nil {
		return nil, err
	}

	if req.Order != nil {
		mt.Order = *req.Order
	}

	actionAssigned := false
	if req.Resolution != nil {
		if *req.Resolution == "" {
			mt.Resolution = nil
		} else {
			resolution, ok := models.NormalizeResolution(*req.Resolution)
			if !ok {
				return nil, apperrors.ErrInvalidResolution
			}
			actionAssigned = resolution == models.ResolutionAction &&
				(mt.Resolution == nil || *mt.Resolution != models.ResolutionAction)
			mt.Resolution = &resolution
		}
	}

	if err := s.meetingTopicRepo.Update(mt); err != nil {
		return nil, fmt.Errorf("failed to update meeting topic: %w", err)
	}

	if actionAssigned && mt.Topic != nil {
		s.notifier.Notify(context.Background(), notify.Event{
			Kind:        notify.KindActionAssigned,
			RecipientID: mt.Topic.OwnerID,
			Message:     fmt.Sprintf("action item on topic %q from %s", mt.Topic.Title, meeting.Title),
		})
	}

	return s.toResponse(mt), nil
}

// Detach removes a topic from the agenda. Only the member who added it or
// the meeting creator may remove it; a topic left with no attachments
// reverts to the backlog.
func (s *MeetingTopicService) Detach(identity auth.Identity, meetingID, id uuid.UUID) error {
	meeting, err := s.memberMeeting(identity, meetingID)
	if err != nil {
		return err
	}
	if meeting.Status == models.MeetingStatusCompleted {
		return apperrors.ErrMeetingCompleted
	}

	mt, err := s.agendaEntry(meetingID, id)
	if err != nil {
		return err
	}
	if mt.AddedByID != identity.UserID && meeting.CreatedByID != identity.UserID {
		return apperrors.ErrNotMeetingTopicRemover
	}

	if err := s.meetingTopicRepo.Detach(mt); err != nil {
		return fmt.Errorf("failed to detach topic: %w", err)
	}
	logger.WithUser(identity.UserID).WithFields(map[string]interface{}{
		"meeting": meetingID,
		"topic":   mt.TopicID,
	}).Info("Topic detached from agenda")
	return nil
}

// memberMeeting loads a meeting and hides it from callers outside its
// relationship
func (s *MeetingTopicService) memberMeeting(identity auth.Identity, meetingID uuid.UUID) (*models.Meeting, error) {
	meeting, err := s.meetingRepo.GetWithRelationship(meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	if meeting.Relationship == nil || !meeting.Relationship.Includes(identity.UserID) {
		return nil, apperrors.ErrMeetingNotFound
	}
	return meeting, nil
}

// agendaEntry loads an attachment and checks it belongs to the meeting
func (s *MeetingTopicService) agendaEntry(meetingID, id uuid.UUID) (*models.MeetingTopic, error) {
	mt, err := s.meetingTopicRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingTopicNotFound
		}
		return nil, fmt.Errorf("failed to get meeting topic: %w", err)
	}
	if mt.MeetingID != meetingID {
		return nil, apperrors.ErrMeetingTopicNotFound
	}
	return mt, nil
}

// otherMember returns the relationship member who is not the caller
func otherMember(rel *models.Relationship, userID uuid.UUID) uuid.UUID {
	if rel == nil {
		return uuid.Nil
	}
	if rel.LeaderID == userID {
		return rel.ICID
	}
	return rel.LeaderID
}

// toResponse converts a meeting topic model to response
func (s *MeetingTopicService) toResponse(mt *models.MeetingTopic) *MeetingTopicResponse {
	response := &MeetingTopicResponse{
		ID:         mt.ID,
		MeetingID:  mt.MeetingID,
		TopicID:    mt.TopicID,
		Order:      mt.Order,
		Resolution: mt.Resolution,
		AddedByID:  mt.AddedByID,
		CreatedAt:  mt.CreatedAt.Format(time.RFC3339),
	}
	if mt.Topic != nil {
		response.TopicTitle = mt.Topic.Title
	}
	return response
}
