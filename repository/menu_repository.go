package repository

import (
	"github.com/Div1912/Spice-Bite/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// MenuFilter narrows the catalog listing; zero values mean "no filter".
type MenuFilter struct {
	Category   string
	Vegetarian *bool
	Spicy      *bool
	Query      string
}

func (r *MenuRepository) List(f MenuFilter) ([]entity.MenuItem, error) {
	db := r.DB.Model(&entity.MenuItem{})
	if f.Category != "" {
		db = db.Where("category_slug = ?", f.Category)
	}
	if f.Vegetarian != nil {
		db = db.Where("is_vegetarian = ?", *f.Vegetarian)
	}
	if f.Spicy != nil {
		db = db.Where("is_spicy = ?", *f.Spicy)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		db = db.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	var items []entity.MenuItem
	err := db.Order("id ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) GetByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Related returns up to limit items from the same category, excluding
// the item itself.
func (r *MenuRepository) Related(id uint, category string, limit int) ([]entity.MenuItem, error) {
	if limit <= 0 {
		limit = 4
	}
	var items []entity.MenuItem
	err := r.DB.Where("category_slug = ? AND id <> ?", category, id).
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id ASC").Find(&cats).Error
	return cats, err
}

// ---------------- Favorites ----------------

func (r *MenuRepository) AddFavorite(userID, menuItemID uint) error {
	fav := entity.Favorite{UserID: userID, MenuItemID: menuItemID}
	return r.DB.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		FirstOrCreate(&fav).Error
}

func (r *MenuRepository) RemoveFavorite(userID, menuItemID uint) error {
	return r.DB.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Delete(&entity.Favorite{}).Error
}

func (r *MenuRepository) IsFavorite(userID, menuItemID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *MenuRepository) ListFavorites(userID uint) ([]entity.Favorite, error) {
	var favs []entity.Favorite
	err := r.DB.Where("user_id = ?", userID).
		Preload("MenuItem").
		Find(&favs).Error
	return favs, err
}
