package repository

import (
	"oneonone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

// ListICsByLeader retrieves every IC paired with the leader, board order
// first (column, then position within column, unassigned last)
func (r *UserRepository) ListICsByLeader(leaderID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN relationships ON relationships.ic_id = users.id").
		Where("relationships.leader_id = ?", leaderID).
		Order("users.position_type_id NULLS LAST, users.team_display_order NULLS LAST").
		Preload("PositionType").
		Find(&users).Error
	return users, err
}

// ListICsInColumn retrieves the leader's ICs in one board partition
// (positionTypeID nil selects the unassigned partition), ordered by their
// current display order
func (r *UserRepository) ListICsInColumn(leaderID uuid.UUID, positionTypeID *uuid.UUID) ([]models.User, error) {
	return listICsInColumn(r.db, leaderID, positionTypeID)
}

func listICsInColumn(db *gorm.DB, leaderID uuid.UUID, positionTypeID *uuid.UUID) ([]models.User, error) {
	var users []models.User
	query := db.
		Joins("JOIN relationships ON relationships.ic_id = users.id").
		Where("relationships.leader_id = ?", leaderID)
	if positionTypeID == nil {
		query = query.Where("users.position_type_id IS NULL")
	} else {
		query = query.Where("users.position_type_id = ?", *positionTypeID)
	}
	err := query.Order("users.team_display_order NULLS LAST, users.created_at").Find(&users).Error
	return users, err
}

// ReorderIC moves an IC to the target board column and display order, then
// renumbers both affected partitions densely. The destination is renumbered
// in a single pass that skips the moved IC's requested slot exactly once,
// so the requested position is preserved; a vacated source column is
// renumbered separately to close the gap. All writes happen in one
// transaction.
func (r *UserRepository) ReorderIC(leaderID uuid.UUID, ic *models.User, positionTypeID *uuid.UUID, displayOrder int) error {
	sourceColumnID := ic.PositionTypeID

	return r.db.Transaction(func(tx *gorm.DB) error {
		ic.PositionTypeID = positionTypeID
		ic.TeamDisplayOrder = &displayOrder
		if err := tx.Model(&models.User{}).Where("id = ?", ic.ID).
			Updates(map[string]interface{}{
				"position_type_id":   positionTypeID,
				"team_display_order": displayOrder,
			}).Error; err != nil {
			return err
		}

		// Renumber the destination partition around the moved IC.
		siblings, err := listICsInColumn(tx, leaderID, positionTypeID)
		if err != nil {
			return err
		}
		next := 0
		for i := range siblings {
			if siblings[i].ID == ic.ID {
				continue
			}
			if next == displayOrder {
				next++
			}
			if err := tx.Model(&models.User{}).Where("id = ?", siblings[i].ID).
				Update("team_display_order", next).Error; err != nil {
				return err
			}
			next++
		}

		// Close the gap in the column the IC left, if it changed.
		if !sameColumn(sourceColumnID, positionTypeID) && sourceColumnID != nil {
			if err := renumberColumn(tx, leaderID, sourceColumnID); err != nil {
				return err
			}
		}
		return nil
	})
}

func sameColumn(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func renumberColumn(tx *gorm.DB, leaderID uuid.UUID, positionTypeID *uuid.UUID) error {
	members, err := listICsInColumn(tx, leaderID, positionTypeID)
	if err != nil {
		return err
	}
	for i := range members {
		if err := tx.Model(&models.User{}).Where("id = ?", members[i].ID).
			Update("team_display_order", i).Error; err != nil {
			return err
		}
	}
	return nil
}
