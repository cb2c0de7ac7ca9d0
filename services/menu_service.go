package services

import (
	"errors"

	"github.com/Div1912/Spice-Bite/entity"
	"github.com/Div1912/Spice-Bite/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List(f repository.MenuFilter) ([]entity.MenuItem, error) {
	return s.Repo.List(f)
}

// MenuItemDetail bundles the item with the caller's favorite flag.
type MenuItemDetail struct {
	Item       entity.MenuItem   `json:"item"`
	IsFavorite bool              `json:"isFavorite"`
	Related    []entity.MenuItem `json:"related"`
}

// Detail returns one item plus up to four related dishes from the same
// category. userID 0 means anonymous (no favorite flag).
func (s *MenuService) Detail(id, userID uint) (*MenuItemDetail, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	related, err := s.Repo.Related(m.ID, m.CategorySlug, 4)
	if err != nil {
		return nil, err
	}

	out := &MenuItemDetail{Item: *m, Related: related}
	if userID != 0 {
		fav, err := s.Repo.IsFavorite(userID, m.ID)
		if err != nil {
			return nil, err
		}
		out.IsFavorite = fav
	}
	return out, nil
}

// Related returns up to four dishes from the same category, excluding
// the item itself.
func (s *MenuService) Related(id uint) ([]entity.MenuItem, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return s.Repo.Related(m.ID, m.CategorySlug, 4)
}

func (s *MenuService) Categories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *MenuService) AddFavorite(userID, menuItemID uint) error {
	if _, err := s.Repo.GetByID(menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}
	return s.Repo.AddFavorite(userID, menuItemID)
}

func (s *MenuService) RemoveFavorite(userID, menuItemID uint) error {
	return s.Repo.RemoveFavorite(userID, menuItemID)
}

func (s *MenuService) ListFavorites(userID uint) ([]entity.Favorite, error) {
	return s.Repo.ListFavorites(userID)
}
