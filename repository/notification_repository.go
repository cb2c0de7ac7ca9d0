package repository

import (
	"github.com/Div1912/Spice-Bite/entity"

	"gorm.io/gorm"
)

type NotificationRepository struct{ DB *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(tx *gorm.DB, n *entity.Notification) error {
	return tx.Create(n).Error
}

func (r *NotificationRepository) ListForUser(userID uint, limit int) ([]entity.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Notification
	err := r.DB.Where("for_role = ? AND user_id = ?", entity.RoleCustomer, userID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *NotificationRepository) ListUnreadForUser(userID uint) ([]entity.Notification, error) {
	var out []entity.Notification
	err := r.DB.Where("for_role = ? AND user_id = ? AND read = ?", entity.RoleCustomer, userID, false).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

// ListForOwner is the admin dashboard feed; owner notifications carry
// no user id.
func (r *NotificationRepository) ListForOwner(limit int) ([]entity.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Notification
	err := r.DB.Where("for_role = ?", entity.RoleOwner).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// MarkRead flips the flag for a notification the caller may see.
// Returns rows affected so the service can 404 on someone else's id.
func (r *NotificationRepository) MarkRead(id, userID uint, role string) (int64, error) {
	db := r.DB.Model(&entity.Notification{}).Where("id = ?", id)
	if role == entity.RoleOwner {
		db = db.Where("for_role = ?", entity.RoleOwner)
	} else {
		db = db.Where("for_role = ? AND user_id = ?", entity.RoleCustomer, userID)
	}
	res := db.Update("read", true)
	return res.RowsAffected, res.Error
}
