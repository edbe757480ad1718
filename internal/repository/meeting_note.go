package repository

import (
	"errors"

	"oneonone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingNoteRepository handles database operations for meeting notes
type MeetingNoteRepository struct {
	db *gorm.DB
}

// NewMeetingNoteRepository creates a new meeting note repository
func NewMeetingNoteRepository(db *gorm.DB) *MeetingNoteRepository {
	return &MeetingNoteRepository{db: db}
}

// GetByMeetingID retrieves the note of a meeting, or nil when none exists yet
func (r *MeetingNoteRepository) GetByMeetingID(meetingID uuid.UUID) (*models.MeetingNote, error) {
	var note models.MeetingNote
	err := r.db.First(&note, "meeting_id = ?", meetingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Create creates the note of a meeting
func (r *MeetingNoteRepository) Create(note *models.MeetingNote) error {
	return r.db.Create(note).Error
}

// Update overwrites the note content and last author (last writer wins)
func (r *MeetingNoteRepository) Update(note *models.MeetingNote) error {
	return r.db.Save(note).Error
}
