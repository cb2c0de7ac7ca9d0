package services

import (
	"errors"

	"github.com/Div1912/Spice-Bite/entity"
	"github.com/Div1912/Spice-Bite/repository"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrAlreadyVoted   = errors.New("already voted on this review")
	ErrBadRating      = errors.New("rating must be between 1 and 5")
)

type ReviewService struct {
	DB       *gorm.DB
	Repo     *repository.ReviewRepository
	MenuRepo *repository.MenuRepository
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, menuRepo *repository.MenuRepository) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, MenuRepo: menuRepo}
}

type SubmitReviewIn struct {
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
	OrderCode string `json:"orderCode"`
}

// Submit inserts the review and recomputes the menu item's rating
// aggregates in the same transaction, like the add_review procedure the
// storefront used to call.
func (s *ReviewService) Submit(userID, menuItemID uint, in *SubmitReviewIn) (*entity.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrBadRating
	}
	if _, err := s.MenuRepo.GetByID(menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	rev := &entity.Review{
		Rating:     in.Rating,
		Comment:    in.Comment,
		OrderCode:  in.OrderCode,
		UserID:     userID,
		MenuItemID: menuItemID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, rev); err != nil {
			return err
		}
		avg, cnt, err := s.Repo.Aggregates(tx, menuItemID)
		if err != nil {
			return err
		}
		return s.Repo.UpdateMenuAggregates(tx, menuItemID, avg, cnt)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *ReviewService) ListForMenuItem(menuItemID uint) ([]repository.ReviewDetail, error) {
	return s.Repo.ListForMenuItem(menuItemID)
}

// VoteHelpful bumps the counter once per user per review.
func (s *ReviewService) VoteHelpful(reviewID, userID uint) error {
	if _, err := s.Repo.GetByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	voted, err := s.Repo.HasVoted(reviewID, userID)
	if err != nil {
		return err
	}
	if voted {
		return ErrAlreadyVoted
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.AddVote(tx, reviewID, userID)
	})
}
