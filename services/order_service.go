package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Div1912/Spice-Bite/entity"
	"github.com/Div1912/Spice-Bite/repository"
	"github.com/google/uuid"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Notif    *NotificationService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	notif *NotificationService,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Notif: notif}
}

// ----- DTOs from Controller -----

type CheckoutReq struct {
	Address       string `json:"address" binding:"required"`
	City          string `json:"city" binding:"required"`
	PinCode       string `json:"pinCode" binding:"required"`
	FullName      string `json:"fullName" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,oneof=upi card cod"`
	Notes         string `json:"notes"`
}

type CheckoutRes struct {
	Code  string `json:"code"`
	Total string `json:"total"`
}

// newOrderCode draws a 6-digit code and retries on the rare collision.
func (s *OrderService) newOrderCode() (string, error) {
	for i := 0; i < 5; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(900000))
		if err != nil {
			return "", err
		}
		code := fmt.Sprintf("%06d", n.Int64()+100000)
		exists, err := s.Repo.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("could not allocate order code")
}

// Checkout turns the user's cart into a pending order: snapshot items,
// price via the shared quote, create the five tracking steps with the
// first one completed, notify the owner and clear the cart, all in one
// transaction.
func (s *OrderService) Checkout(userID uint, req *CheckoutReq) (*CheckoutRes, error) {
	code, err := s.newOrderCode()
	if err != nil {
		return nil, err
	}

	method := req.PaymentMethod
	if method == "" {
		method = "upi"
	}

	now := time.Now()
	var out CheckoutRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Read the cart inside the transaction so nothing slips in
		// between the snapshot and the clear below.
		cart, err := s.CartRepo.GetCartWithItems(tx, userID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		quote := QuoteCart(cart.Items)

		order := entity.Order{
			Code:             code,
			Subtotal:         quote.Subtotal,
			DeliveryFee:      quote.DeliveryFee,
			Tax:              quote.Tax,
			Total:            quote.Total,
			Status:           entity.StatusPending,
			Address:          req.Address,
			City:             req.City,
			PinCode:          req.PinCode,
			CustomerName:     req.FullName,
			CustomerPhone:    req.Phone,
			CustomerEmail:    req.Email,
			PaymentMethod:    method,
			PaymentRef:       uuid.NewString(),
			Notes:            req.Notes,
			EstimatedMinutes: 30,
			UserID:           userID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Name:       it.MenuItem.Name,
				Qty:        it.Qty,
				UnitPrice:  it.UnitPrice,
				Total:      it.Total,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		for i, title := range entity.StepTitles {
			ts := entity.TrackingStep{
				OrderID:   order.ID,
				StepNo:    i + 1,
				Title:     title,
				Completed: i == 0,
			}
			if i == 0 {
				at := now
				ts.CompletedAt = &at
			}
			if err := s.Repo.CreateTrackingStep(tx, &ts); err != nil {
				return err
			}
		}

		if err := s.Notif.NotifyNewOrder(tx, &order); err != nil {
			return err
		}

		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}

		out = CheckoutRes{Code: order.Code, Total: order.Total.StringFixed(2)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order entity.Order          `json:"order"`
	Items []entity.OrderItem    `json:"items"`
	Steps []entity.TrackingStep `json:"trackingSteps"`
}

func (s *OrderService) detail(o *entity.Order) (*OrderDetail, error) {
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	steps, err := s.Repo.GetTrackingSteps(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items, Steps: steps}, nil
}

func (s *OrderService) DetailForUser(userID uint, code string) (*OrderDetail, error) {
	o, err := s.Repo.GetByCodeForUser(userID, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.detail(o)
}

func (s *OrderService) DetailForAdmin(code string) (*OrderDetail, error) {
	o, err := s.Repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.detail(o)
}

type AdminOrderListOut struct {
	Items []repository.AdminOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListForAdmin(status *entity.OrderStatus, page, limit int) (*AdminOrderListOut, error) {
	items, total, err := s.Repo.ListOrdersForAdmin(status, page, limit)
	if err != nil {
		return nil, err
	}
	return &AdminOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// Tracking is the poll fallback for clients without a websocket.
type TrackingOut struct {
	Code             string                `json:"code"`
	Status           entity.OrderStatus    `json:"status"`
	EstimatedMinutes int                   `json:"estimatedDeliveryTime"`
	Steps            []entity.TrackingStep `json:"trackingSteps"`
}

func (s *OrderService) Tracking(userID uint, code string) (*TrackingOut, error) {
	d, err := s.DetailForUser(userID, code)
	if err != nil {
		return nil, err
	}
	return &TrackingOut{
		Code:             d.Order.Code,
		Status:           d.Order.Status,
		EstimatedMinutes: d.Order.EstimatedMinutes,
		Steps:            d.Steps,
	}, nil
}

// CanAccessOrder gates the tracking stream: the order's customer and
// any admin may subscribe.
func (s *OrderService) CanAccessOrder(userID uint, role, code string) (bool, error) {
	if role == "admin" {
		_, err := s.Repo.GetByCode(code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return err == nil, err
	}
	_, err := s.Repo.GetByCodeForUser(userID, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}
