package testutils

import (
	"time"

	"oneonone-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName: "Dana",
		LastName:  "Levi",
		Email:     "user-" + id.String()[:8] + "@test.com",
		Role:      models.UserRoleIC,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithName sets a custom name for the user
func (f *UserFactory) WithName(first, last string) *models.User {
	user := f.Create()
	user.FirstName = first
	user.LastName = last
	return user
}

// Leader creates a test user holding the leader role
func (f *UserFactory) Leader() *models.User {
	user := f.WithRole(models.UserRoleLeader)
	user.FirstName = "Noa"
	user.LastName = "Baron"
	return user
}

// RelationshipFactory provides methods to create test Relationship data
type RelationshipFactory struct{}

// NewRelationshipFactory creates a new RelationshipFactory
func NewRelationshipFactory() *RelationshipFactory {
	return &RelationshipFactory{}
}

// Create creates a test Relationship pairing the given leader and IC
func (f *RelationshipFactory) Create(leaderID, icID uuid.UUID) *models.Relationship {
	return &models.Relationship{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LeaderID: leaderID,
		ICID:     icID,
	}
}

// MeetingFactory provides methods to create test Meeting data
type MeetingFactory struct{}

// NewMeetingFactory creates a new MeetingFactory
func NewMeetingFactory() *MeetingFactory {
	return &MeetingFactory{}
}

// Create creates a scheduled test Meeting on the given relationship
func (f *MeetingFactory) Create(relationshipID, createdByID uuid.UUID, scheduledAt time.Time) *models.Meeting {
	return &models.Meeting{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RelationshipID: relationshipID,
		CreatedByID:    createdByID,
		Title:          "1:1 sync",
		ScheduledAt:    scheduledAt,
		Status:         models.MeetingStatusScheduled,
	}
}

// WithStatus creates a meeting in the given status
func (f *MeetingFactory) WithStatus(relationshipID, createdByID uuid.UUID, scheduledAt time.Time, status models.MeetingStatus) *models.Meeting {
	meeting := f.Create(relationshipID, createdByID, scheduledAt)
	meeting.Status = status
	return meeting
}

// TopicFactory provides methods to create test Topic data
type TopicFactory struct{}

// NewTopicFactory creates a new TopicFactory
func NewTopicFactory() *TopicFactory {
	return &TopicFactory{}
}

// Create creates a backlog test Topic owned by the given user
func (f *TopicFactory) Create(ownerID uuid.UUID) *models.Topic {
	return &models.Topic{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID: ownerID,
		Title:   "Career growth",
		Status:  models.TopicStatusBacklog,
	}
}

// WithStatus creates a topic in the given status
func (f *TopicFactory) WithStatus(ownerID uuid.UUID, status models.TopicStatus) *models.Topic {
	topic := f.Create(ownerID)
	topic.Status = status
	return topic
}

// PositionTypeFactory provides methods to create test board column data
type PositionTypeFactory struct{}

// NewPositionTypeFactory creates a new PositionTypeFactory
func NewPositionTypeFactory() *PositionTypeFactory {
	return &PositionTypeFactory{}
}

// Create creates a test board column for the given leader
func (f *PositionTypeFactory) Create(leaderID uuid.UUID, code string, displayOrder int) *models.PositionType {
	return &models.PositionType{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LeaderID:     leaderID,
		Code:         code,
		Name:         code + " column",
		DisplayOrder: displayOrder,
	}
}
