package repository

import (
	"strings"
	"time"

	"github.com/Div1912/Spice-Bite/entity"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetByCode(code string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("code = ?", code).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByCodeForUser scopes the lookup to the order's owner.
func (r *OrderRepository) GetByCodeForUser(userID uint, code string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("code = ? AND user_id = ?", code, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) CodeExists(code string) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Order{}).Where("code = ?", code).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

type OrderSummary struct {
	Code      string             `json:"code"`
	Total     decimal.Decimal    `json:"total"`
	Status    entity.OrderStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("code, total, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ---------------- Admin listing ----------------

type AdminOrderSummary struct {
	Code         string             `json:"code"`
	UserID       uint               `json:"userId"`
	CustomerName string             `json:"customerName"`
	Total        decimal.Decimal    `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForAdmin(status *entity.OrderStatus, page, limit int) ([]AdminOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	dbCount := r.DB.Model(&entity.Order{})
	if status != nil {
		dbCount = dbCount.Where("status = ?", *status)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		Code         string
		UserID       uint
		CustomerName string
		Total        decimal.Decimal
		Status       entity.OrderStatus
		CreatedAt    time.Time
		Name         string
	}
	db := r.DB.Table("orders AS o").
		Select("o.code, o.user_id, o.customer_name, o.total, o.status, o.created_at, u.name").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.deleted_at IS NULL")
	if status != nil {
		db = db.Where("o.status = ?", *status)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]AdminOrderSummary, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.CustomerName)
		if name == "" {
			name = row.Name
		}
		out = append(out, AdminOrderSummary{
			Code:         row.Code,
			UserID:       row.UserID,
			CustomerName: name,
			Total:        row.Total,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, total, nil
}

// AdvanceStatus is a compare-and-swap: the row only changes if it is
// still at `from`, so two admin tabs cannot both win the same advance.
func (r *OrderRepository) AdvanceStatus(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Order items & tracking ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) CreateTrackingStep(tx *gorm.DB, ts *entity.TrackingStep) error {
	return tx.Create(ts).Error
}

func (r *OrderRepository) GetTrackingSteps(orderID uint) ([]entity.TrackingStep, error) {
	var steps []entity.TrackingStep
	err := r.DB.Where("order_id = ?", orderID).
		Order("step_no ASC").
		Find(&steps).Error
	return steps, err
}

// CompleteTrackingStep stamps step stepNo of the order as done.
func (r *OrderRepository) CompleteTrackingStep(tx *gorm.DB, orderID uint, stepNo int, at time.Time) error {
	return tx.Model(&entity.TrackingStep{}).
		Where("order_id = ? AND step_no = ?", orderID, stepNo).
		Updates(map[string]any{"completed": true, "completed_at": at}).Error
}
