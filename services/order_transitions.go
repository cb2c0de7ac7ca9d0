package services

import (
	"errors"
	"time"

	"github.com/Div1912/Spice-Bite/entity"

	"gorm.io/gorm"
)

var (
	// ErrInvalidTransition covers skips, backward moves, unknown
	// statuses and advancing a delivered order.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrStatusConflict means another writer advanced the order first.
	ErrStatusConflict = errors.New("order status changed concurrently")
)

// Advance moves an order to the single legal next status. The status
// swap, tracking-step completion and customer notification commit
// together; the swap is a compare-and-swap so racing admin tabs cannot
// double-advance.
func (s *OrderService) Advance(code string, to entity.OrderStatus) (*OrderDetail, error) {
	o, err := s.Repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !to.Valid() || !o.Status.CanAdvanceTo(to) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.AdvanceStatus(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}
		if err := s.Repo.CompleteTrackingStep(tx, o.ID, to.Ordinal(), now); err != nil {
			return err
		}
		o.Status = to
		return s.Notif.NotifyStatusChange(tx, o, to)
	})
	if err != nil {
		return nil, err
	}

	return s.detail(o)
}
