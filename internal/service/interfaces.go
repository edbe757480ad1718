package service

import (
	"oneonone-backend/internal/auth"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MeetingServiceInterface defines the interface for meeting operations
type MeetingServiceInterface interface {
	Create(identity auth.Identity, req *CreateMeetingRequest) (*MeetingResponse, error)
	GenerateSeries(identity auth.Identity, req *GenerateSeriesRequest) ([]MeetingResponse, error)
	GetByID(identity auth.Identity, id uuid.UUID) (*MeetingResponse, error)
	List(identity auth.Identity) ([]MeetingResponse, error)
	Update(identity auth.Identity, id uuid.UUID, req *UpdateMeetingRequest) (*MeetingResponse, error)
	Complete(identity auth.Identity, id uuid.UUID) (*CompleteMeetingResponse, error)
	Delete(identity auth.Identity, id uuid.UUID) error
}

// RelationshipServiceInterface defines the interface for relationship operations
type RelationshipServiceInterface interface {
	Create(identity auth.Identity, req *CreateRelationshipRequest) (*RelationshipResponse, error)
	ListMine(identity auth.Identity) ([]RelationshipResponse, error)
	Delete(identity auth.Identity, id uuid.UUID) error
}

// TopicServiceInterface defines the interface for topic operations
type TopicServiceInterface interface {
	Create(identity auth.Identity, req *CreateTopicRequest) (*TopicResponse, error)
	GetByID(identity auth.Identity, id uuid.UUID) (*TopicResponse, error)
	List(identity auth.Identity, statusFilter string) ([]TopicResponse, error)
	Update(identity auth.Identity, id uuid.UUID, req *UpdateTopicRequest) (*TopicResponse, error)
	Archive(identity auth.Identity, id uuid.UUID) (*TopicResponse, error)
	Delete(identity auth.Identity, id uuid.UUID) error
}

// MeetingTopicServiceInterface defines the interface for agenda operations
type MeetingTopicServiceInterface interface {
	Attach(identity auth.Identity, meetingID uuid.UUID, req *AttachTopicRequest) (*MeetingTopicResponse, error)
	ListAgenda(identity auth.Identity, meetingID uuid.UUID) ([]MeetingTopicResponse, error)
	Update(identity auth.Identity, meetingID, id uuid.UUID, req *UpdateMeetingTopicRequest) (*MeetingTopicResponse, error)
	Detach(identity auth.Identity, meetingID, id uuid.UUID) error
}

// MeetingNoteServiceInterface defines the interface for meeting note operations
type MeetingNoteServiceInterface interface {
	Get(identity auth.Identity, meetingID uuid.UUID) (*MeetingNoteResponse, error)
	Upsert(identity auth.Identity, meetingID uuid.UUID, req *UpsertNoteRequest) (*MeetingNoteResponse, error)
}

// BoardServiceInterface defines the interface for team board operations
type BoardServiceInterface interface {
	Get(identity auth.Identity) (*BoardResponse, error)
	CreateColumn(identity auth.Identity, req *CreateColumnRequest) (*ColumnResponse, error)
	ReorderColumns(identity auth.Identity, req *ReorderColumnsRequest) ([]ColumnResponse, error)
	DeleteColumn(identity auth.Identity, id uuid.UUID) error
	ReorderIC(identity auth.Identity, icID uuid.UUID, req *ReorderICRequest) error
}
