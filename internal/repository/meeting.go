package repository

import (
	"errors"
	"time"

	"oneonone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingRepository handles database operations for meetings
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// SlotConflict pairs a candidate slot with the persisted meeting already
// occupying it
type SlotConflict struct {
	SlotAt  time.Time
	Meeting models.Meeting
}

// Create creates a new meeting
func (r *MeetingRepository) Create(meeting *models.Meeting) error {
	return r.db.Create(meeting).Error
}

// CreateChecked re-runs the conflict window query and inserts the meeting
// inside one transaction, so two concurrent schedule requests cannot both
// pass the check against stale state and both commit. When the slot is
// taken it returns the conflicting meeting and inserts nothing.
func (r *MeetingRepository) CreateChecked(meeting *models.Meeting) (*models.Meeting, error) {
	var conflict *models.Meeting
	err := r.db.Transaction(func(tx *gorm.DB) error {
		found, err := findConflict(tx, meeting.CreatedByID, meeting.ScheduledAt, nil)
		if err != nil {
			return err
		}
		if found != nil {
			conflict = found
			return nil
		}
		return tx.Create(meeting).Error
	})
	if err != nil {
		return nil, err
	}
	return conflict, nil
}

// CreateBatch creates a series of meetings in one transaction; either every
// meeting is persisted or none is
func (r *MeetingRepository) CreateBatch(meetings []models.Meeting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range meetings {
			if err := tx.Create(&meetings[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateBatchChecked conflict-checks every candidate slot and inserts the
// whole series in one transaction. Any conflict aborts the batch before a
// single row is written; the returned slice lists every taken slot so the
// caller can report them all at once.
func (r *MeetingRepository) CreateBatchChecked(meetings []models.Meeting) ([]SlotConflict, error) {
	var conflicts []SlotConflict
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range meetings {
			found, err := findConflict(tx, meetings[i].CreatedByID, meetings[i].ScheduledAt, nil)
			if err != nil {
				return err
			}
			if found != nil {
				conflicts = append(conflicts, SlotConflict{SlotAt: meetings[i].ScheduledAt, Meeting: *found})
			}
		}
		if len(conflicts) > 0 {
			return nil
		}
		for i := range meetings {
			if err := tx.Create(&meetings[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conflicts, nil
}

// GetByID retrieves a meeting by ID
func (r *MeetingRepository) GetByID(id uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.First(&meeting, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// GetWithRelationship retrieves a meeting with its relationship and both
// participants preloaded
func (r *MeetingRepository) GetWithRelationship(id uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.
		Preload("Relationship").
		Preload("Relationship.Leader").
		Preload("Relationship.IC").
		First(&meeting, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// ListByRelationship retrieves all meetings of one relationship, soonest first
func (r *MeetingRepository) ListByRelationship(relationshipID uuid.UUID) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.Where("relationship_id = ?", relationshipID).
		Order("scheduled_at ASC").Find(&meetings).Error
	return meetings, err
}

// ListForUser retrieves all meetings whose relationship includes the user,
// soonest first
func (r *MeetingRepository) ListForUser(userID uuid.UUID) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.
		Joins("JOIN relationships ON relationships.id = meetings.relationship_id").
		Where("relationships.leader_id = ? OR relationships.ic_id = ?", userID, userID).
		Preload("Relationship.IC").
		Preload("Relationship.Leader").
		Order("meetings.scheduled_at ASC").
		Find(&meetings).Error
	return meetings, err
}

// FindConflict returns the earliest SCHEDULED meeting created by the leader
// whose 60-minute window overlaps the candidate window starting at
// scheduledAt, excluding excludeID when set. Both windows share the fixed
// meeting length, so overlap reduces to the starts lying strictly within
// one duration of each other. Returns nil when the slot is free.
func (r *MeetingRepository) FindConflict(leaderID uuid.UUID, scheduledAt time.Time, excludeID *uuid.UUID) (*models.Meeting, error) {
	return findConflict(r.db, leaderID, scheduledAt, excludeID)
}

func findConflict(db *gorm.DB, leaderID uuid.UUID, scheduledAt time.Time, excludeID *uuid.UUID) (*models.Meeting, error) {
	windowEnd := scheduledAt.Add(models.MeetingDuration)
	earliestStart := scheduledAt.Add(-models.MeetingDuration)

	query := db.
		Where("created_by_id = ? AND status = ?", leaderID, models.MeetingStatusScheduled).
		Where("scheduled_at < ? AND scheduled_at > ?", windowEnd, earliestStart)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var meeting models.Meeting
	err := query.Preload("Relationship.IC").Order("scheduled_at ASC").First(&meeting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Update updates a meeting
func (r *MeetingRepository) Update(meeting *models.Meeting) error {
	return r.db.Save(meeting).Error
}

// UpdateChecked conflict-checks the meeting's slot (excluding the meeting
// itself, so a reschedule to the same slot passes) and saves it inside one
// transaction. When the slot is taken it returns the conflicting meeting
// and saves nothing.
func (r *MeetingRepository) UpdateChecked(meeting *models.Meeting) (*models.Meeting, error) {
	var conflict *models.Meeting
	err := r.db.Transaction(func(tx *gorm.DB) error {
		found, err := findConflict(tx, meeting.CreatedByID, meeting.ScheduledAt, &meeting.ID)
		if err != nil {
			return err
		}
		if found != nil {
			conflict = found
			return nil
		}
		return tx.Save(meeting).Error
	})
	if err != nil {
		return nil, err
	}
	return conflict, nil
}

// Delete deletes a meeting
func (r *MeetingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Meeting{}, "id = ?", id).Error
}

// Complete marks the meeting COMPLETED and moves every attached topic to
// DISCUSSED in one transaction. It returns the number of attachments that
// had no resolution at the moment of completion.
func (r *MeetingRepository) Complete(meeting *models.Meeting) (int64, error) {
	var unresolved int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MeetingTopic{}).
			Where("meeting_id = ? AND resolution IS NULL", meeting.ID).
			Count(&unresolved).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Meeting{}).Where("id = ?", meeting.ID).
			Update("status", models.MeetingStatusCompleted).Error; err != nil {
			return err
		}

		return tx.Model(&models.Topic{}).
			Where("id IN (?)", tx.Model(&models.MeetingTopic{}).
				Select("topic_id").Where("meeting_id = ?", meeting.ID)).
			Update("status", models.TopicStatusDiscussed).Error
	})
	if err != nil {
		return 0, err
	}

	meeting.Status = models.MeetingStatusCompleted
	return unresolved, nil
}
