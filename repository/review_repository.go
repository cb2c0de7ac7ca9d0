package repository

import (
	"time"

	"github.com/Div1912/Spice-Bite/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

// ReviewDetail joins the reviewer name in, like the review_details view
// the frontend reads.
type ReviewDetail struct {
	ID           uint      `json:"id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	HelpfulCount int       `json:"helpfulCount"`
	UserID       uint      `json:"userId"`
	ReviewerName string    `json:"reviewerName"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *ReviewRepository) ListForMenuItem(menuItemID uint) ([]ReviewDetail, error) {
	var out []ReviewDetail
	err := r.DB.Table("reviews AS rv").
		Select("rv.id, rv.rating, rv.comment, rv.helpful_count, rv.user_id, u.name AS reviewer_name, rv.created_at").
		Joins("JOIN users u ON u.id = rv.user_id").
		Where("rv.menu_item_id = ? AND rv.deleted_at IS NULL", menuItemID).
		Order("rv.id DESC").
		Scan(&out).Error
	return out, err
}

func (r *ReviewRepository) GetByID(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

// Aggregates recomputes average rating and count for a menu item.
func (r *ReviewRepository) Aggregates(tx *gorm.DB, menuItemID uint) (float64, int64, error) {
	var row struct {
		Avg float64
		Cnt int64
	}
	err := tx.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS cnt").
		Where("menu_item_id = ?", menuItemID).
		Scan(&row).Error
	return row.Avg, row.Cnt, err
}

func (r *ReviewRepository) UpdateMenuAggregates(tx *gorm.DB, menuItemID uint, avg float64, count int64) error {
	return tx.Model(&entity.MenuItem{}).
		Where("id = ?", menuItemID).
		Updates(map[string]any{"average_rating": avg, "review_count": count}).Error
}

// ---------------- Helpful votes ----------------

func (r *ReviewRepository) HasVoted(reviewID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.ReviewVote{}).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *ReviewRepository) AddVote(tx *gorm.DB, reviewID, userID uint) error {
	if err := tx.Create(&entity.ReviewVote{ReviewID: reviewID, UserID: userID}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Review{}).
		Where("id = ?", reviewID).
		Update("helpful_count", gorm.Expr("helpful_count + 1")).Error
}
