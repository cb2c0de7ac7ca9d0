package services

import (
	"errors"

	"github.com/Div1912/Spice-Bite/entity"
	"github.com/Div1912/Spice-Bite/repository"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Qty        int  `json:"qty" binding:"min=1"`
}

type CartOut struct {
	Cart  *entity.Cart `json:"cart"`
	Quote Quote        `json:"quote"`
}

func (s *CartService) Get(userID uint) (*CartOut, error) {
	c, err := s.CartRepo.GetCartWithItems(s.DB, userID)
	if err != nil {
		return nil, err
	}
	return &CartOut{Cart: c, Quote: QuoteCart(c.Items)}, nil
}

// Add puts a menu item in the cart; the same item added again merges
// onto the existing line. Price is snapshotted from the menu.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	m, err := s.MenuRepo.GetByID(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}

	line := &entity.CartItem{
		MenuItemID: m.ID,
		Qty:        in.Qty,
		UnitPrice:  m.Price,
		Total:      m.Price.Mul(decimal.NewFromInt(int64(in.Qty))),
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
