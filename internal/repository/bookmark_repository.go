package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opphub/opphub/internal/model"
)

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db}
}

func (r *BookmarkRepository) ListByUser(userID string) ([]model.Bookmark, error) {
	var bookmarks []model.Bookmark
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookmarks).Error
	return bookmarks, err
}

// FindByUserAndOpportunity returns the user's bookmark for the opportunity,
// or (nil, nil) when there is none.
func (r *BookmarkRepository) FindByUserAndOpportunity(userID string, opportunityID uuid.UUID) (*model.Bookmark, error) {
	var bookmarks []model.Bookmark
	err := r.db.Where("user_id = ? AND opportunity_id = ?", userID, opportunityID).
		Limit(1).Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	if len(bookmarks) == 0 {
		return nil, nil
	}
	return &bookmarks[0], nil
}

func (r *BookmarkRepository) Create(bookmark *model.Bookmark) error {
	return r.db.Create(bookmark).Error
}

func (r *BookmarkRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Bookmark{}, "id = ?", id).Error
}
