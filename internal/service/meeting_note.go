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

// MeetingNoteService handles the single shared note of a meeting. Both
// relationship members write the same note; the last write wins and the
// last author is recorded. Notes stay writable after the meeting completes.
type MeetingNoteService struct {
	noteRepo    repository.MeetingNoteRepositoryInterface
	meetingRepo repository.MeetingRepositoryInterface
	validator   *validator.Validate
}

// NewMeetingNoteService creates a new meeting note service
func NewMeetingNoteService(
	noteRepo repository.MeetingNoteRepositoryInterface,
	meetingRepo repository.MeetingRepositoryInterface,
	validator *validator.Validate,
) *MeetingNoteService {
	return &MeetingNoteService{
		noteRepo:    noteRepo,
		meetingRepo: meetingRepo,
		validator:   validator,
	}
}

// UpsertNoteRequest represents the request to write the meeting note
type UpsertNoteRequest struct {
	Content json.RawMessage `json:"content" validate:"required"`
}

// MeetingNoteResponse represents the response for note operations
type MeetingNoteResponse struct {
	ID           uuid.UUID       `json:"id"`
	MeetingID    uuid.UUID       `json:"meeting_id"`
	Content      json.RawMessage `json:"content"`
	LastAuthorID uuid.UUID       `json:"last_author_id"`
	UpdatedAt    string          `json:"updated_at"`
}

// Get retrieves the note of a meeting, if one was written
func (s *MeetingNoteService) Get(identity auth.Identity, meetingID uuid.UUID) (*MeetingNoteResponse, error) {
	if err := s.checkMember(identity, meetingID); err != nil {
		return nil, err
	}

	note, err := s.noteRepo.GetByMeetingID(meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, apperrors.ErrMeetingNoteNotFound
	}
	return s.toResponse(note), nil
}

// Upsert writes the meeting note, creating it on first write
func (s *MeetingNoteService) Upsert(identity auth.Identity, meetingID uuid.UUID, req *UpsertNoteRequest) (*MeetingNoteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.checkMember(identity, meetingID); err != nil {
		return nil, err
	}

	note, err := s.noteRepo.GetByMeetingID(meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	if note == nil {
		note = &models.MeetingNote{
			MeetingID:    meetingID,
			Content:      req.Content,
			LastAuthorID: identity.UserID,
		}
		if err := s.noteRepo.Create(note); err != nil {
			return nil, fmt.Errorf("failed to create note: %w", err)
		}
		return s.toResponse(note), nil
	}

	note.Content = req.Content
	note.LastAuthorID = identity.UserID
	if err := s.noteRepo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return s.toResponse(note), nil
}

// checkMember hides the meeting from callers outside its relationship
func (s *MeetingNoteService) checkMember(identity auth.Identity, meetingID uuid.UUID) error {
	meeting, err := s.meetingRepo.GetWithRelationship(meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to get meeting: %w", err)
	}
	if meeting.Relationship == nil || !meeting.Relationship.Includes(identity.UserID) {
		return apperrors.ErrMeetingNotFound
	}
	return nil
}

// toResponse converts a note model to response
func (s *MeetingNoteService) toResponse(note *models.MeetingNote) *MeetingNoteResponse {
	return &MeetingNoteResponse{
		ID:           note.ID,
		MeetingID:    note.MeetingID,
		Content:      note.Content,
		LastAuthorID: note.LastAuthorID,
		UpdatedAt:    note.UpdatedAt.Format(time.RFC3339),
	}
}
