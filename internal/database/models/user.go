package models

import (
	"github.com/google/uuid"
)

// User represents a member of the organization: an admin, a leader, or an
// individual contributor. Board placement (PositionTypeID, TeamDisplayOrder)
// is a leader-scoped concept stored on the IC's row; both are nil while the
// IC sits in the unassigned partition with no explicit order.
type User struct {
	BaseModel
	FirstName        string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName         string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role             UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'IC'" validate:"required"`
	PositionTypeID   *uuid.UUID `json:"position_type_id,omitempty" gorm:"type:uuid;index"`
	TeamDisplayOrder *int       `json:"team_display_order,omitempty"`

	PositionType *PositionType `json:"position_type,omitempty" gorm:"foreignKey:PositionTypeID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the display name used in meeting titles and notifications
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
