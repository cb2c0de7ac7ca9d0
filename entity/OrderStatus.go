package entity

// OrderStatus is the closed set of order lifecycle stages.
// Orders only move forward one stage at a time; "delivered" is terminal.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// statusOrder maps each status to its 1-based position in the pipeline.
// The position doubles as the tracking step number completed at that stage.
var statusOrder = map[OrderStatus]int{
	StatusPending:        1,
	StatusConfirmed:      2,
	StatusPreparing:      3,
	StatusOutForDelivery: 4,
	StatusDelivered:      5,
}

func (s OrderStatus) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

// Ordinal returns the 1-based pipeline position, or 0 for unknown values.
func (s OrderStatus) Ordinal() int {
	return statusOrder[s]
}

// Next returns the following stage. ok is false at "delivered" and for
// unknown values.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusConfirmed, true
	case StatusConfirmed:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusOutForDelivery, true
	case StatusOutForDelivery:
		return StatusDelivered, true
	default:
		return "", false
	}
}

// CanAdvanceTo reports whether to is the single legal next stage.
// Skipping stages and moving backward are both rejected.
func (s OrderStatus) CanAdvanceTo(to OrderStatus) bool {
	next, ok := s.Next()
	return ok && next == to
}
