package repository

import (
	"time"

	"oneonone-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
	ListICsByLeader(leaderID uuid.UUID) ([]models.User, error)
	ListICsInColumn(leaderID uuid.UUID, positionTypeID *uuid.UUID) ([]models.User, error)
	ReorderIC(leaderID uuid.UUID, ic *models.User, positionTypeID *uuid.UUID, displayOrder int) error
}

// RelationshipRepositoryInterface defines the interface for relationship repository operations
type RelationshipRepositoryInterface interface {
	Create(rel *models.Relationship) error
	GetByID(id uuid.UUID) (*models.Relationship, error)
	GetWithUsers(id uuid.UUID) (*models.Relationship, error)
	FindByLeaderAndIC(leaderID, icID uuid.UUID) (*models.Relationship, error)
	FindByIC(icID uuid.UUID) (*models.Relationship, error)
	ListByLeader(leaderID uuid.UUID) ([]models.Relationship, error)
	Delete(id uuid.UUID) error
}

// MeetingRepositoryInterface defines the interface for meeting repository operations
type MeetingRepositoryInterface interface {
	Create(meeting *models.Meeting) error
	CreateChecked(meeting *models.Meeting) (*models.Meeting, error)
	CreateBatch(meetings []models.Meeting) error
	CreateBatchChecked(meetings []models.Meeting) ([]SlotConflict, error)
	GetByID(id uuid.UUID) (*models.Meeting, error)
	GetWithRelationship(id uuid.UUID) (*models.Meeting, error)
	ListByRelationship(relationshipID uuid.UUID) ([]models.Meeting, error)
	ListForUser(userID uuid.UUID) ([]models.Meeting, error)
	FindConflict(leaderID uuid.UUID, scheduledAt time.Time, excludeID *uuid.UUID) (*models.Meeting, error)
	Update(meeting *models.Meeting) error
	UpdateChecked(meeting *models.Meeting) (*models.Meeting, error)
	Delete(id uuid.UUID) error
	Complete(meeting *models.Meeting) (int64, error)
}

// TopicRepositoryInterface defines the interface for topic repository operations
type TopicRepositoryInterface interface {
	Create(topic *models.Topic) error
	GetByID(id uuid.UUID) (*models.Topic, error)
	ListByOwner(ownerID uuid.UUID, status *models.TopicStatus) ([]models.Topic, error)
	Update(topic *models.Topic) error
	Delete(id uuid.UUID) error
	CountMeetingLinks(topicID uuid.UUID) (int64, error)
}

// MeetingTopicRepositoryInterface defines the interface for meeting topic repository operations
type MeetingTopicRepositoryInterface interface {
	Attach(mt *models.MeetingTopic) error
	GetByID(id uuid.UUID) (*models.MeetingTopic, error)
	GetByMeetingAndTopic(meetingID, topicID uuid.UUID) (*models.MeetingTopic, error)
	ListByMeeting(meetingID uuid.UUID) ([]models.MeetingTopic, error)
	CountByMeeting(meetingID uuid.UUID) (int64, error)
	Update(mt *models.MeetingTopic) error
	Detach(mt *models.MeetingTopic) error
}

// MeetingNoteRepositoryInterface defines the interface for meeting note repository operations
type MeetingNoteRepositoryInterface interface {
	GetByMeetingID(meetingID uuid.UUID) (*models.MeetingNote, error)
	Create(note *models.MeetingNote) error
	Update(note *models.MeetingNote) error
}

// PositionTypeRepositoryInterface defines the interface for board column repository operations
type PositionTypeRepositoryInterface interface {
	Create(col *models.PositionType) error
	GetByID(id uuid.UUID) (*models.PositionType, error)
	GetByCode(leaderID uuid.UUID, code string) (*models.PositionType, error)
	ListByLeader(leaderID uuid.UUID) ([]models.PositionType, error)
	ReorderColumns(columnIDs []uuid.UUID) error
	DeleteWithMembers(col *models.PositionType) error
}
