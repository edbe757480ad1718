package models

import (
	"github.com/google/uuid"
)

// PositionType is a board column a leader groups ICs into. Code is unique
// per leader; DisplayOrder is dense 0..n-1 across the leader's columns.
// LeaderID carries no association: users already reference position_types
// for board placement and a back-reference would create a FK cycle.
type PositionType struct {
	BaseModel
	LeaderID     uuid.UUID `json:"leader_id" gorm:"type:uuid;not null;uniqueIndex:idx_position_types_leader_code;index"`
	Code         string    `json:"code" gorm:"not null;size:40;uniqueIndex:idx_position_types_leader_code" validate:"required,max=40"`
	Name         string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
}

// TableName returns the table name for PositionType
func (PositionType) TableName() string {
	return "position_types"
}
