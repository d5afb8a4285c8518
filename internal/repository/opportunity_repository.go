package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/opphub/opphub/internal/model"
)

type OpportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db}
}

// List returns the whole catalog in insertion order. Filtering happens in
// memory on top of this.
func (r *OpportunityRepository) List() ([]model.Opportunity, error) {
	var opportunities []model.Opportunity
	err := r.db.Order("created_at ASC").Find(&opportunities).Error
	return opportunities, err
}

func (r *OpportunityRepository) FindByID(id uuid.UUID) (*model.Opportunity, error) {
	var opp model.Opportunity
	err := r.db.First(&opp, "id = ?", id).Error
	return &opp, err
}

// UpsertBatch seeds the catalog, overwriting rows that share an ID so the
// seed endpoint stays idempotent.
func (r *OpportunityRepository) UpsertBatch(opportunities []model.Opportunity) error {
	if len(opportunities) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&opportunities).Error
}
