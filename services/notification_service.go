package services

import (
	"errors"
	"fmt"

	"github.com/Div1912/Spice-Bite/entity"
	"github.com/Div1912/Spice-Bite/repository"

	"gorm.io/gorm"
)

var ErrUnknownStatus = errors.New("no notification defined for status")

// statusNotice holds the customer-facing copy for one status advance.
type statusNotice struct {
	Title   string
	Message string
}

// statusNotices is total over every advanceable status; Advance rejects
// anything else, so an unknown status can never be mislabeled.
var statusNotices = map[entity.OrderStatus]statusNotice{
	entity.StatusConfirmed: {
		Title:   "Order Confirmed",
		Message: "Your order has been confirmed and will be prepared soon.",
	},
	entity.StatusPreparing: {
		Title:   "Food Preparation Started",
		Message: "Our chefs have started preparing your delicious meal.",
	},
	entity.StatusOutForDelivery: {
		Title:   "Order Out for Delivery",
		Message: "Your order is on the way to your location.",
	},
	entity.StatusDelivered: {
		Title:   "Order Delivered",
		Message: "Your order has been delivered. Enjoy your meal!",
	},
}

type NotificationService struct {
	DB   *gorm.DB
	Repo *repository.NotificationRepository
}

func NewNotificationService(db *gorm.DB, repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{DB: db, Repo: repo}
}

// NotifyStatusChange records exactly one customer notification for a
// status advance. Called inside the order transition transaction so the
// status change and its fan-out commit together.
func (s *NotificationService) NotifyStatusChange(tx *gorm.DB, order *entity.Order, to entity.OrderStatus) error {
	notice, ok := statusNotices[to]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownStatus, to)
	}
	n := entity.Notification{
		Title:     notice.Title,
		Message:   notice.Message,
		Type:      entity.NotifOrderUpdate,
		Read:      false,
		OrderCode: order.Code,
		ForRole:   entity.RoleCustomer,
		UserID:    order.UserID,
	}
	return s.Repo.Create(tx, &n)
}

// NotifyNewOrder tells the owner a checkout just happened.
func (s *NotificationService) NotifyNewOrder(tx *gorm.DB, order *entity.Order) error {
	n := entity.Notification{
		Title:     "New Order Received",
		Message:   fmt.Sprintf("Order #%s has been placed by %s", order.Code, order.CustomerName),
		Type:      entity.NotifNewOrder,
		Read:      false,
		OrderCode: order.Code,
		ForRole:   entity.RoleOwner,
	}
	return s.Repo.Create(tx, &n)
}

func (s *NotificationService) ListForUser(userID uint, limit int) ([]entity.Notification, error) {
	return s.Repo.ListForUser(userID, limit)
}

func (s *NotificationService) ListUnreadForUser(userID uint) ([]entity.Notification, error) {
	return s.Repo.ListUnreadForUser(userID)
}

func (s *NotificationService) ListForOwner(limit int) ([]entity.Notification, error) {
	return s.Repo.ListForOwner(limit)
}

var ErrNotificationNotFound = errors.New("notification not found")

func (s *NotificationService) MarkRead(id, userID uint, role string) error {
	forRole := entity.RoleCustomer
	if role == "admin" {
		forRole = entity.RoleOwner
	}
	affected, err := s.Repo.MarkRead(id, userID, forRole)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
