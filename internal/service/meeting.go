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

// conflictTimeFormat renders meeting times in conflict messages
const conflictTimeFormat = "2006-01-02 15:04"

// MeetingService handles business logic for 1:1 meetings: scheduling with
// conflict detection, the meeting state machine, and recurring series
// generation.
type MeetingService struct {
	meetingRepo      repository.MeetingRepositoryInterface
	relationshipRepo repository.RelationshipRepositoryInterface
	meetingTopicRepo repository.MeetingTopicRepositoryInterface
	notifier         notify.Notifier
	validator        *validator.Validate
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repository.MeetingRepositoryInterface,
	relationshipRepo repository.RelationshipRepositoryInterface,
	meetingTopicRepo repository.MeetingTopicRepositoryInterface,
	notifier notify.Notifier,
	validator *validator.Validate,
) *MeetingService {
	return &MeetingService{
		meetingRepo:      meetingRepo,
		relationshipRepo: relationshipRepo,
		meetingTopicRepo: meetingTopicRepo,
		notifier:         notifier,
		validator:        validator,
	}
}

// CreateMeetingRequest represents the request to schedule a single meeting
type CreateMeetingRequest struct {
	ICID        uuid.UUID `json:"ic_id" validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Title       string    `json:"title,omitempty" validate:"max=200"`
}

// GenerateSeriesRequest represents the request to create a recurring series
type GenerateSeriesRequest struct {
	ICID      uuid.UUID               `json:"ic_id" validate:"required"`
	Frequency models.MeetingFrequency `json:"frequency" validate:"required"`
	DayOfWeek int                     `json:"day_of_week" validate:"min=0,max=6"`
	Time      string                  `json:"time" validate:"required"`
	Count     int                     `json:"count" validate:"required,min=1,max=52"`
}

// UpdateMeetingRequest represents the request to rename or reschedule a meeting
type UpdateMeetingRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// MeetingResponse represents the response for meeting operations
type MeetingResponse struct {
	ID             uuid.UUID            `json:"id"`
	RelationshipID uuid.UUID            `json:"relationship_id"`
	CreatedByID    uuid.UUID            `json:"created_by_id"`
	Title          string               `json:"title"`
	ScheduledAt    time.Time            `json:"scheduled_at"`
	Status         models.MeetingStatus `json:"status"`
	ICName         string               `json:"ic_name,omitempty"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

// CompleteMeetingResponse carries the completed meeting and the number of
// agenda topics that had no resolution when the meeting closed
type CompleteMeetingResponse struct {
	Meeting         MeetingResponse `json:"meeting"`
	UnresolvedCount int64           `json:"unresolved_count"`
}

// Create schedules a single meeting. The caller must be the leader of the
// relationship with the IC; the slot must be at least the lead time away
// and free of overlap with the leader's other scheduled meetings.
func (s *MeetingService) Create(identity auth.Identity, req *CreateMeetingRequest) (*MeetingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	log := logger.WithUser(identity.UserID).WithFields(map[string]interface{}{
		"ic":           req.ICID,
		"scheduled_at": req.ScheduledAt,
	})

	rel, err := s.relationshipRepo.FindByLeaderAndIC(identity.UserID, req.ICID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRelationshipNotFound
		}
		return nil, fmt.Errorf("failed to resolve relationship: %w", err)
	}

	if req.ScheduledAt.Before(time.Now().Add(meetingLeadTime)) {
		return nil, apperrors.ErrMeetingInPast
	}

	title := req.Title
	if title == "" {
		title = defaultMeetingTitle(rel)
	}

	meeting := &models.Meeting{
		RelationshipID: rel.ID,
		CreatedByID:    identity.UserID,
		Title:          title,
		ScheduledAt:    req.ScheduledAt,
		Status:         models.MeetingStatusScheduled,
	}
	// The conflict check and the insert run in one transaction so a
	// concurrent request for the same leader cannot slip into the window.
	conflict, err := s.meetingRepo.CreateChecked(meeting)
	if err != nil {
		log.Errorf("Failed to create meeting: %v", err)
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	if conflict != nil {
		return nil, apperrors.NewMeetingConflictError(conflictICName(conflict), conflict.ScheduledAt.Format(conflictTimeFormat))
	}
	log.Info("Meeting scheduled")

	s.notifier.Notify(context.Background(), notify.Event{
		Kind:        notify.KindMeetingScheduled,
		RecipientID: rel.ICID,
		Message:     fmt.Sprintf("%s scheduled for %s", title, meeting.ScheduledAt.Format(conflictTimeFormat)),
	})

	return s.toResponse(meeting, rel), nil
}

// GenerateSeries creates a recurring series of meetings. Every candidate
// slot is conflict-checked against persisted meetings; any conflict aborts
// the whole series with one line per conflicting date, and creation is
// all-or-nothing.
func (s *MeetingService) GenerateSeries(identity auth.Identity, req *GenerateSeriesRequest) ([]MeetingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Frequency.IsValid() {
		return nil, apperrors.NewValidationError("frequency", "must be WEEKLY or BIWEEKLY")
	}
	hour, minute, err := parseTimeOfDay(req.Time)
	if err != nil {
		return nil, apperrors.NewValidationError("time", "must be HH:MM in 24-hour format")
	}

	rel, err := s.relationshipRepo.FindByLeaderAndIC(identity.UserID, req.ICID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRelationshipNotFound
		}
		return nil, fmt.Errorf("failed to resolve relationship: %w", err)
	}

	first := nextOccurrence(time.Now(), time.Weekday(req.DayOfWeek), hour, minute)
	// All later timestamps follow the first; checking the floor once suffices.
	if first.Before(time.Now().Add(meetingLeadTime)) {
		return nil, apperrors.ErrMeetingInPast
	}

	timestamps := seriesTimestamps(first, req.Frequency.IntervalDays(), req.Count)

	title := defaultMeetingTitle(rel)
	meetings := make([]models.Meeting, len(timestamps))
	for i, ts := range timestamps {
		meetings[i] = models.Meeting{
			RelationshipID: rel.ID,
			CreatedByID:    identity.UserID,
			Title:          title,
			ScheduledAt:    ts,
			Status:         models.MeetingStatusScheduled,
		}
	}

	log := logger.WithUser(identity.UserID).WithFields(map[string]interface{}{
		"ic":    req.ICID,
		"count": req.Count,
	})

	// Every slot is checked and the whole series inserted in one
	// transaction; a conflict on any slot leaves nothing persisted.
	conflicts, err := s.meetingRepo.CreateBatchChecked(meetings)
	if err != nil {
		log.Errorf("Failed to create meeting series: %v", err)
		return nil, fmt.Errorf("failed to create meeting series: %w", err)
	}
	if len(conflicts) > 0 {
		lines := make([]string, len(conflicts))
		for i := range conflicts {
			lines[i] = fmt.Sprintf("%s conflicts with a meeting with %s",
				conflicts[i].SlotAt.Format(conflictTimeFormat), conflictICName(&conflicts[i].Meeting))
		}
		return nil, apperrors.NewMeetingConflictsError(lines)
	}
	log.Infof("Created %d recurring meetings", len(meetings))

	s.notifier.Notify(context.Background(), notify.Event{
		Kind:        notify.KindMeetingScheduled,
		RecipientID: rel.ICID,
		Message:     fmt.Sprintf("%d recurring meetings scheduled starting %s", len(meetings), first.Format(conflictTimeFormat)),
	})

	responses := make([]MeetingResponse, len(meetings))
	for i := range meetings {
		responses[i] = *s.toResponse(&meetings[i], rel)
	}
	return responses, nil
}

// GetByID retrieves a meeting visible to the caller
func (s *MeetingService) GetByID(identity auth.Identity, id uuid.UUID) (*MeetingResponse, error) {
	meeting, err := s.visibleMeeting(identity, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(meeting, meeting.Relationship), nil
}

// List retrieves every meeting whose relationship includes the caller
func (s *MeetingService) List(identity auth.Identity) ([]MeetingResponse, error) {
	meetings, err := s.meetingRepo.ListForUser(identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	responses := make([]MeetingResponse, len(meetings))
	for i := range meetings {
		responses[i] = *s.toResponse(&meetings[i], meetings[i].Relationship)
	}
	return responses, nil
}

// Update renames and/or reschedules a meeting. Only the creator may modify
// it, never after completion; rescheduling re-runs the lead-time floor and
// the conflict check with the meeting excluded from its own window.
func (s *MeetingService) Update(identity auth.Identity, id uuid.UUID, req *UpdateMeetingRequest) (*MeetingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	meeting, err := s.visibleMeeting(identity, id)
	if err != nil {
		return nil, err
	}
	if meeting.CreatedByID != identity.UserID {
		return nil, apperrors.ErrNotMeetingCreator
	}
	if meeting.Status == models.MeetingStatusCompleted {
		return nil, apperrors.ErrMeetingCompleted
	}

	reschedule := req.ScheduledAt != nil
	if reschedule {
		if req.ScheduledAt.Before(time.Now().Add(meetingLeadTime)) {
			return nil, apperrors.ErrMeetingInPast
		}
		meeting.ScheduledAt = *req.ScheduledAt
	}
	if req.Title != nil && *req.Title != "" {
		meeting.Title = *req.Title
	}

	if reschedule {
		conflict, err := s.meetingRepo.UpdateChecked(meeting)
		if err != nil {
			return nil, fmt.Errorf("failed to update meeting: %w", err)
		}
		if conflict != nil {
			return nil, apperrors.NewMeetingConflictError(conflictICName(conflict), conflict.ScheduledAt.Format(conflictTimeFormat))
		}
	} else if err := s.meetingRepo.Update(meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	return s.toResponse(meeting, meeting.Relationship), nil
}

// Complete closes a meeting: status COMPLETED, every attached topic moved
// to DISCUSSED, and the count of unresolved agenda topics reported back.
// Completion is terminal for all further mutation.
func (s *MeetingService) Complete(identity auth.Identity, id uuid.UUID) (*CompleteMeetingResponse, error) {
	meeting, err := s.visibleMeeting(identity, id)
	if err != nil {
		return nil, err
	}
	if meeting.CreatedByID != identity.UserID {
		return nil, apperrors.ErrNotMeetingCreator
	}
	if meeting.Status == models.MeetingStatusCompleted {
		return nil, apperrors.ErrMeetingCompleted
	}

	log := logger.WithUser(identity.UserID).WithField("meeting", meeting.ID)
	unresolved, err := s.meetingRepo.Complete(meeting)
	if err != nil {
		log.Errorf("Failed to complete meeting: %v", err)
		return nil, fmt.Errorf("failed to complete meeting: %w", err)
	}
	log.WithField("unresolved", unresolved).Info("Meeting completed")

	return &CompleteMeetingResponse{
		Meeting:         *s.toResponse(meeting, meeting.Relationship),
		UnresolvedCount: unresolved,
	}, nil
}

// Delete removes a meeting. Only the creator may delete, only while the
// meeting is SCHEDULED, and only with an empty agenda.
func (s *MeetingService) Delete(identity auth.Identity, id uuid.UUID) error {
	meeting, err := s.visibleMeeting(identity, id)
	if err != nil {
		return err
	}
	if meeting.CreatedByID != identity.UserID {
		return apperrors.ErrNotMeetingCreator
	}
	if meeting.Status != models.MeetingStatusScheduled {
		return apperrors.ErrMeetingNotScheduled
	}

	topicCount, err := s.meetingTopicRepo.CountByMeeting(meeting.ID)
	if err != nil {
		return fmt.Errorf("failed to count meeting topics: %w", err)
	}
	if topicCount > 0 {
		return apperrors.ErrMeetingHasTopics
	}

	if err := s.meetingRepo.Delete(meeting.ID); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

// visibleMeeting loads a meeting and hides it from callers outside its
// relationship
func (s *MeetingService) visibleMeeting(identity auth.Identity, id uuid.UUID) (*models.Meeting, error) {
	meeting, err := s.meetingRepo.GetWithRelationship(id)
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

func defaultMeetingTitle(rel *models.Relationship) string {
	if rel.IC != nil {
		return "1:1 with " + rel.IC.FullName()
	}
	return "1:1"
}

func conflictICName(meeting *models.Meeting) string {
	if meeting.Relationship != nil && meeting.Relationship.IC != nil {
		return meeting.Relationship.IC.FullName()
	}
	return "another IC"
}

// toResponse converts a meeting model to response
func (s *MeetingService) toResponse(meeting *models.Meeting, rel *models.Relationship) *MeetingResponse {
	response := &MeetingResponse{
		ID:             meeting.ID,
		RelationshipID: meeting.RelationshipID,
		CreatedByID:    meeting.CreatedByID,
		Title:          meeting.Title,
		ScheduledAt:    meeting.ScheduledAt,
		Status:         meeting.Status,
		CreatedAt:      meeting.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      meeting.UpdatedAt.Format(time.RFC3339),
	}
	if rel != nil && rel.IC != nil {
		response.ICName = rel.IC.FullName()
	}
	return response
}
