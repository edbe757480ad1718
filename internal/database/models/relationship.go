package models

import (
	"github.com/google/uuid"
)

// Relationship pairs exactly one leader with one individual contributor.
// An IC has at most one leader; a leader has many ICs. Every meeting and
// every cross-user topic operation is authorized against this table.
// Deleting a relationship never cascades into meeting data.
type Relationship struct {
	BaseModel
	LeaderID uuid.UUID `json:"leader_id" gorm:"type:uuid;not null;uniqueIndex:idx_relationships_leader_ic"`
	ICID     uuid.UUID `json:"ic_id" gorm:"type:uuid;not null;uniqueIndex;uniqueIndex:idx_relationships_leader_ic"`

	Leader *User `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`
	IC     *User `json:"ic,omitempty" gorm:"foreignKey:ICID"`
}

// TableName returns the table name for Relationship
func (Relationship) TableName() string {
	return "relationships"
}

// Includes reports whether the given user is either side of the pairing
func (r *Relationship) Includes(userID uuid.UUID) bool {
	return r.LeaderID == userID || r.ICID == userID
}
