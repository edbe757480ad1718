package service

import (
	"errors"
	"fmt"

	"oneonone-backend/internal/auth"
	"oneonone-backend/internal/database/models"
	apperrors "oneonone-backend/internal/errors"
	"oneonone-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardService handles a leader's team board: the columns (position types)
// and the placement of ICs within them. Every reordering operation leaves
// each partition densely numbered from zero.
type BoardService struct {
	positionTypeRepo repository.PositionTypeRepositoryInterface
	relationshipRepo repository.RelationshipRepositoryInterface
	userRepo         repository.UserRepositoryInterface
	validator        *validator.Validate
}

// NewBoardService creates a new board service
func NewBoardService(
	positionTypeRepo repository.PositionTypeRepositoryInterface,
	relationshipRepo repository.RelationshipRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
) *BoardService {
	return &BoardService{
		positionTypeRepo: positionTypeRepo,
		relationshipRepo: relationshipRepo,
		userRepo:         userRepo,
		validator:        validator,
	}
}

// CreateColumnRequest represents the request to add a board column
type CreateColumnRequest struct {
	Code string `json:"code" validate:"required,max=40"`
	Name string `json:"name" validate:"required,max=100"`
}

// ReorderColumnsRequest represents the request to reorder the whole board.
// ColumnCodes must be a permutation of the leader's existing column codes.
type ReorderColumnsRequest struct {
	ColumnCodes []string `json:"column_codes" validate:"required,min=1"`
}

// ReorderICRequest represents the request to move an IC on the board. A nil
// ColumnID targets the unassigned partition.
type ReorderICRequest struct {
	ColumnID     *uuid.UUID `json:"column_id,omitempty"`
	DisplayOrder int        `json:"display_order" validate:"min=0"`
}

// ColumnResponse represents the response for column operations
type ColumnResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
}

// BoardMemberResponse represents an IC's placement on the board
type BoardMemberResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	ColumnID     *uuid.UUID `json:"column_id,omitempty"`
	DisplayOrder *int       `json:"display_order,omitempty"`
}

// BoardResponse represents the full board of a leader
type BoardResponse struct {
	Columns []ColumnResponse      `json:"columns"`
	Members []BoardMemberResponse `json:"members"`
}

// Get retrieves the caller's board: columns in display order and every IC
// with their placement
func (s *BoardService) Get(identity auth.Identity) (*BoardResponse, error) {
	columns, err := s.positionTypeRepo.ListByLeader(identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	members, err := s.userRepo.ListICsByLeader(identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list board members: %w", err)
	}

	response := &BoardResponse{
		Columns: make([]ColumnResponse, len(columns)),
		Members: make([]BoardMemberResponse, len(members)),
	}
	for i := range columns {
		response.Columns[i] = *toColumnResponse(&columns[i])
	}
	for i := range members {
		response.Members[i] = BoardMemberResponse{
			ID:           members[i].ID,
			Name:         members[i].FullName(),
			Email:        members[i].Email,
			ColumnID:     members[i].PositionTypeID,
			DisplayOrder: members[i].TeamDisplayOrder,
		}
	}
	return response, nil
}

// CreateColumn adds a column at the end of the caller's board. Codes are
// unique per leader.
func (s *BoardService) CreateColumn(identity auth.Identity, req *CreateColumnRequest) (*ColumnResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.positionTypeRepo.GetByCode(identity.UserID, req.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check column code: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrColumnExists
	}

	col := &models.PositionType{
		LeaderID: identity.UserID,
		Code:     req.Code,
		Name:     req.Name,
	}
	if err := s.positionTypeRepo.Create(col); err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}
	return toColumnResponse(col), nil
}

// ReorderColumns rewrites the board's column order. The request must list
// every existing column exactly once; the new orders are 0..n-1 in request
// order.
func (s *BoardService) ReorderColumns(identity auth.Identity, req *ReorderColumnsRequest) ([]ColumnResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	columns, err := s.positionTypeRepo.ListByLeader(identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	if len(req.ColumnCodes) != len(columns) {
		return nil, apperrors.NewValidationError("column_codes", "must list every column exactly once")
	}
	known := make(map[string]*models.PositionType, len(columns))
	for i := range columns {
		known[columns[i].Code] = &columns[i]
	}
	ordered := make([]uuid.UUID, len(req.ColumnCodes))
	seen := make(map[string]bool, len(req.ColumnCodes))
	for i, code := range req.ColumnCodes {
		col := known[code]
		if col == nil {
			return nil, apperrors.ErrColumnNotFound
		}
		if seen[code] {
			return nil, apperrors.NewValidationError("column_codes", "duplicate column code")
		}
		seen[code] = true
		ordered[i] = col.ID
	}

	if err := s.positionTypeRepo.ReorderColumns(ordered); err != nil {
		return nil, fmt.Errorf("failed to reorder columns: %w", err)
	}

	responses := make([]ColumnResponse, len(req.ColumnCodes))
	for i, code := range req.ColumnCodes {
		col := known[code]
		col.DisplayOrder = i
		responses[i] = *toColumnResponse(col)
	}
	return responses, nil
}

// DeleteColumn removes a column from the caller's board. Its members move
// to the unassigned partition and the remaining columns are renumbered.
func (s *BoardService) DeleteColumn(identity auth.Identity, id uuid.UUID) error {
	col, err := s.ownedColumn(identity, id)
	if err != nil {
		return err
	}
	if err := s.positionTypeRepo.DeleteWithMembers(col); err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}
	return nil
}

// ReorderIC moves one of the caller's ICs to a column and position. The IC
// must report to the caller and a non-nil target column must belong to the
// caller's board.
func (s *BoardService) ReorderIC(identity auth.Identity, icID uuid.UUID, req *ReorderICRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.relationshipRepo.FindByLeaderAndIC(identity.UserID, icID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRelationshipNotFound
		}
		return fmt.Errorf("failed to resolve relationship: %w", err)
	}

	if req.ColumnID != nil {
		if _, err := s.ownedColumn(identity, *req.ColumnID); err != nil {
			return err
		}
	}

	ic, err := s.userRepo.GetByID(icID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get IC: %w", err)
	}

	if err := s.userRepo.ReorderIC(identity.UserID, ic, req.ColumnID, req.DisplayOrder); err != nil {
		return fmt.Errorf("failed to reorder IC: %w", err)
	}
	return nil
}

// ownedColumn loads a column and hides it from leaders who do not own it
func (s *BoardService) ownedColumn(identity auth.Identity, id uuid.UUID) (*models.PositionType, error) {
	col, err := s.positionTypeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrColumnNotFound
		}
		return nil, fmt.Errorf("failed to get column: %w", err)
	}
	if col.LeaderID != identity.UserID {
		return nil, apperrors.ErrColumnNotFound
	}
	return col, nil
}

// toColumnResponse converts a column model to response
func toColumnResponse(col *models.PositionType) *ColumnResponse {
	return &ColumnResponse{
		ID:           col.ID,
		Code:         col.Code,
		Name:         col.Name,
		DisplayOrder: col.DisplayOrder,
	}
}
