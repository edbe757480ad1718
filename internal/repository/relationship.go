package repository

import (
	"oneonone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelationshipRepository handles database operations for leader/IC pairings
type RelationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository creates a new relationship repository
func NewRelationshipRepository(db *gorm.DB) *RelationshipRepository {
	return &RelationshipRepository{db: db}
}

// Create creates a new relationship
func (r *RelationshipRepository) Create(rel *models.Relationship) error {
	return r.db.Create(rel).Error
}

// GetByID retrieves a relationship by ID
func (r *RelationshipRepository) GetByID(id uuid.UUID) (*models.Relationship, error) {
	var rel models.Relationship
	err := r.db.First(&rel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// GetWithUsers retrieves a relationship with both sides preloaded
func (r *RelationshipRepository) GetWithUsers(id uuid.UUID) (*models.Relationship, error) {
	var rel models.Relationship
	err := r.db.Preload("Leader").Preload("IC").First(&rel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// FindByLeaderAndIC retrieves the pairing of a leader and an IC
func (r *RelationshipRepository) FindByLeaderAndIC(leaderID, icID uuid.UUID) (*models.Relationship, error) {
	var rel models.Relationship
	err := r.db.Preload("IC").First(&rel, "leader_id = ? AND ic_id = ?", leaderID, icID).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// FindByIC retrieves the pairing an IC belongs to, if any
func (r *RelationshipRepository) FindByIC(icID uuid.UUID) (*models.Relationship, error) {
	var rel models.Relationship
	err := r.db.Preload("Leader").First(&rel, "ic_id = ?", icID).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// ListByLeader retrieves all pairings of a leader with ICs preloaded
func (r *RelationshipRepository) ListByLeader(leaderID uuid.UUID) ([]models.Relationship, error) {
	var rels []models.Relationship
	err := r.db.Preload("IC").Where("leader_id = ?", leaderID).Order("created_at").Find(&rels).Error
	return rels, err
}

// Delete deletes a relationship. Meetings are intentionally left in place.
func (r *RelationshipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Relationship{}, "id = ?", id).Error
}
