package repository

import (
	"errors"

	"github.com/Div1912/Spice-Bite/entity"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart, or an empty one (not an
// error) so callers can always render something. Takes tx so checkout
// can read the cart inside the same transaction that clears it.
func (r *CartRepository) GetCartWithItems(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem merges by menu item: adding the same dish again sums the
// quantities onto the existing line.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, row.MenuItemID).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		exist.Total = exist.UnitPrice.Mul(decimal.NewFromInt(int64(exist.Qty)))
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// UpdateQty sets the line quantity; qty <= 0 removes the line.
func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, itemID)
	}
	var it entity.CartItem
	err := tx.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&it).Error
	if err != nil {
		return err
	}
	it.Qty = qty
	it.Total = it.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
	return tx.Save(&it).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	return tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
