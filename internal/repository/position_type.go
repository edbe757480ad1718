package repository

import (
	"errors"

	"oneonone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionTypeRepository handles database operations for board columns
type PositionTypeRepository struct {
	db *gorm.DB
}

// NewPositionTypeRepository creates a new position type repository
func NewPositionTypeRepository(db *gorm.DB) *PositionTypeRepository {
	return &PositionTypeRepository{db: db}
}

// Create appends a new column at the end of the leader's board. The display
// order is computed inside the insert transaction.
func (r *PositionTypeRepository) Create(col *models.PositionType) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&models.PositionType{}).
			Where("leader_id = ?", col.LeaderID).
			Select("COALESCE(MAX(display_order) + 1, 0)").
			Scan(&next).Error; err != nil {
			return err
		}
		col.DisplayOrder = next
		return tx.Create(col).Error
	})
}

// GetByID retrieves a column by ID
func (r *PositionTypeRepository) GetByID(id uuid.UUID) (*models.PositionType, error) {
	var col models.PositionType
	err := r.db.First(&col, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &col, nil
}

// GetByCode retrieves a leader's column by its code, or nil when absent
func (r *PositionTypeRepository) GetByCode(leaderID uuid.UUID, code string) (*models.PositionType, error) {
	var col models.PositionType
	err := r.db.First(&col, "leader_id = ? AND code = ?", leaderID, code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &col, nil
}

// ListByLeader retrieves the leader's columns in display order
func (r *PositionTypeRepository) ListByLeader(leaderID uuid.UUID) ([]models.PositionType, error) {
	var cols []models.PositionType
	err := r.db.Where("leader_id = ?", leaderID).Order("display_order ASC").Find(&cols).Error
	return cols, err
}

// ReorderColumns writes display orders 0..n-1 onto the given columns in the
// given sequence, in one transaction
func (r *PositionTypeRepository) ReorderColumns(columnIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range columnIDs {
			if err := tx.Model(&models.PositionType{}).Where("id = ?", id).
				Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteWithMembers deletes a column, moves its members to the unassigned
// partition (nil column, nil order) and renumbers the remaining columns
// densely, all in one transaction
func (r *PositionTypeRepository) DeleteWithMembers(col *models.PositionType) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("position_type_id = ?", col.ID).
			Updates(map[string]interface{}{
				"position_type_id":   nil,
				"team_display_order": nil,
			}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.PositionType{}, "id = ?", col.ID).Error; err != nil {
			return err
		}

		var remaining []models.PositionType
		if err := tx.Where("leader_id = ?", col.LeaderID).
			Order("display_order ASC").Find(&remaining).Error; err != nil {
			return err
		}
		for i := range remaining {
			if err := tx.Model(&models.PositionType{}).Where("id = ?", remaining[i].ID).
				Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
