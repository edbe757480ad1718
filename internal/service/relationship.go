package service

import (
	"errors"
	"fmt"
	"time"

	"oneonone-backend/internal/auth"
	"oneonone-backend/internal/database/models"
	apperrors "oneonone-backend/internal/errors"
	"oneonone-backend/internal/logger"
	"oneonone-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelationshipService handles business logic for leader-IC relationships
type RelationshipService struct {
	relationshipRepo repository.RelationshipRepositoryInterface
	userRepo         repository.UserRepositoryInterface
	validator        *validator.Validate
}

// NewRelationshipService creates a new relationship service
func NewRelationshipService(
	relationshipRepo repository.RelationshipRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
) *RelationshipService {
	return &RelationshipService{
		relationshipRepo: relationshipRepo,
		userRepo:         userRepo,
		validator:        validator,
	}
}

// CreateRelationshipRequest represents the request to pair a leader with an IC
type CreateRelationshipRequest struct {
	LeaderID uuid.UUID `json:"leader_id" validate:"required"`
	ICID     uuid.UUID `json:"ic_id" validate:"required"`
}

// RelationshipResponse represents the response for relationship operations
type RelationshipResponse struct {
	ID         uuid.UUID `json:"id"`
	LeaderID   uuid.UUID `json:"leader_id"`
	ICID       uuid.UUID `json:"ic_id"`
	LeaderName string    `json:"leader_name,omitempty"`
	ICName     string    `json:"ic_name,omitempty"`
	CreatedAt  string    `json:"created_at"`
}

// Create pairs a leader with an IC. Admin only; an IC can report to at most
// one leader at a time.
func (s *RelationshipService) Create(identity auth.Identity, req *CreateRelationshipRequest) (*RelationshipResponse, error) {
	if !identity.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	leader, err := s.userRepo.GetByID(req.LeaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get leader: %w", err)
	}
	if leader.Role != models.UserRoleLeader {
		return nil, apperrors.ErrInvalidLeader
	}

	ic, err := s.userRepo.GetByID(req.ICID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get IC: %w", err)
	}
	if ic.Role != models.UserRoleIC {
		return nil, apperrors.ErrInvalidIC
	}

	existing, err := s.relationshipRepo.FindByIC(req.ICID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing relationship: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrICAlreadyAssigned
	}

	rel := &models.Relationship{
		LeaderID: req.LeaderID,
		ICID:     req.ICID,
	}
	if err := s.relationshipRepo.Create(rel); err != nil {
		return nil, fmt.Errorf("failed to create relationship: %w", err)
	}
	rel.Leader = leader
	rel.IC = ic
	logger.WithUser(identity.UserID).WithFields(map[string]interface{}{
		"leader": req.LeaderID,
		"ic":     req.ICID,
	}).Info("Relationship created")

	return s.toResponse(rel), nil
}

// ListMine retrieves the relationships the caller belongs to. Leaders see
// every IC reporting to them; an IC sees at most the one relationship to
// their leader.
func (s *RelationshipService) ListMine(identity auth.Identity) ([]RelationshipResponse, error) {
	if identity.Role == models.UserRoleIC {
		rel, err := s.relationshipRepo.FindByIC(identity.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []RelationshipResponse{}, nil
			}
			return nil, fmt.Errorf("failed to get relationship: %w", err)
		}
		return []RelationshipResponse{*s.toResponse(rel)}, nil
	}

	relationships, err := s.relationshipRepo.ListByLeader(identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}
	responses := make([]RelationshipResponse, len(relationships))
	for i := range relationships {
		responses[i] = *s.toResponse(&relationships[i])
	}
	return responses, nil
}

// Delete removes a relationship. Admin only.
func (s *RelationshipService) Delete(identity auth.Identity, id uuid.UUID) error {
	if !identity.IsAdmin() {
		return apperrors.ErrAdminRequired
	}

	if _, err := s.relationshipRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRelationshipNotFound
		}
		return fmt.Errorf("failed to get relationship: %w", err)
	}

	if err := s.relationshipRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete relationship: %w", err)
	}
	logger.WithUser(identity.UserID).WithField("relationship", id).Info("Relationship deleted")
	return nil
}

// toResponse converts a relationship model to response
func (s *RelationshipService) toResponse(rel *models.Relationship) *RelationshipResponse {
	response := &RelationshipResponse{
		ID:        rel.ID,
		LeaderID:  rel.LeaderID,
		ICID:      rel.ICID,
		CreatedAt: rel.CreatedAt.Format(time.RFC3339),
	}
	if rel.Leader != nil {
		response.LeaderName = rel.Leader.FullName()
	}
	if rel.IC != nil {
		response.ICName = rel.IC.FullName()
	}
	return response
}
