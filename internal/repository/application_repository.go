package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opphub/opphub/internal/model"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) ListByUser(userID string) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.Where("user_id = ?", userID).Order("applied_at DESC").Find(&applications).Error
	return applications, err
}

// FindByUserAndOpportunity returns the user's application for the
// opportunity, or (nil, nil) when there is none.
func (r *ApplicationRepository) FindByUserAndOpportunity(userID string, opportunityID uuid.UUID) (*model.Application, error) {
	var applications []model.Application
	err := r.db.Where("user_id = ? AND opportunity_id = ?", userID, opportunityID).
		Order("applied_at DESC").Limit(1).Find(&applications).Error
	if err != nil {
		return nil, err
	}
	if len(applications) == 0 {
		return nil, nil
	}
	return &applications[0], nil
}

func (r *ApplicationRepository) FindByID(id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.First(&app, "id = ?", id).Error
	return &app, err
}

func (r *ApplicationRepository) Create(app *model.Application) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepository) Update(app *model.Application) error {
	return r.db.Save(app).Error
}

func (r *ApplicationRepository) Delete(id uuid.UUID, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Application{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
