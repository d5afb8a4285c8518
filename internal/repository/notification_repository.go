package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opphub/opphub/internal/model"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db}
}

func (r *NotificationRepository) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

// ListDue returns unsent deadline reminders whose scheduled time has passed.
func (r *NotificationRepository) ListDue(now time.Time) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.
		Where("type = ? AND sent_at IS NULL AND scheduled_for IS NOT NULL AND scheduled_for <= ?",
			model.NotificationDeadlineReminder, now).
		Order("scheduled_for ASC").
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) MarkSent(id uuid.UUID, sentAt time.Time) error {
	return r.db.Model(&model.Notification{}).Where("id = ?", id).Update("sent_at", sentAt).Error
}
