package entity

import (
	"time"

	"gorm.io/gorm"
)

// TrackingStep is one of the five fixed milestones attached to an order.
// Step 1 ("Order Placed") is completed at checkout; each status advance
// completes the step whose number equals the new status ordinal.
type TrackingStep struct {
	gorm.Model
	StepNo      int        `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"time"`

	OrderID uint  `json:"-"`
	Order   Order `json:"-"`
}

// StepTitles in pipeline order, indexed by StepNo-1.
var StepTitles = [5]string{
	"Order Placed",
	"Order Confirmed",
	"Preparing Food",
	"Out for Delivery",
	"Delivered",
}
