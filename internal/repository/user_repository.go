package repository

import (
	"gorm.io/gorm"

	"github.com/opphub/opphub/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

// FindByUserID looks up a profile by the identity provider's subject,
// returning (nil, nil) when no profile exists yet.
func (r *UserRepository) FindByUserID(userID string) (*model.User, error) {
	var users []model.User
	err := r.db.Where("user_id = ?", userID).Limit(1).Find(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}
