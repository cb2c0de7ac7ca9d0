package entity

import "testing"

func TestOrderStatusOrdinals(t *testing.T) {
	want := map[OrderStatus]int{
		StatusPending:        1,
		StatusConfirmed:      2,
		StatusPreparing:      3,
		StatusOutForDelivery: 4,
		StatusDelivered:      5,
	}
	for st, ord := range want {
		if got := st.Ordinal(); got != ord {
			t.Errorf("Ordinal(%s) = %d, want %d", st, got, ord)
		}
	}
	if OrderStatus("cancelled").Valid() {
		t.Error("unexpected valid status 'cancelled'")
	}
}

func TestOrderStatusCanAdvanceTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusPreparing, true},
		{StatusPreparing, StatusOutForDelivery, true},
		{StatusOutForDelivery, StatusDelivered, true},
		{StatusPending, StatusDelivered, false},   // no skipping
		{StatusConfirmed, StatusPending, false},   // no going back
		{StatusDelivered, StatusDelivered, false}, // terminal
		{StatusPending, OrderStatus("cancelled"), false},
	}
	for _, tc := range cases {
		if got := tc.from.CanAdvanceTo(tc.to); got != tc.want {
			t.Errorf("CanAdvanceTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
