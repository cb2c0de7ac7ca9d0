package services

import (
	"testing"

	"github.com/Div1912/Spice-Bite/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceEmitsOneCustomerNotification(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "adv@test.com")
	m := seedMenuItem(t, s.DB, "Dal Makhani", "199.99")
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 1}))
	res := placeOrder(t, s, u.ID)

	d, err := s.Orders.Advance(res.Code, entity.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, d.Order.Status)

	notifs, err := s.Notif.ListForUser(u.ID, 10)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, "Order Confirmed", notifs[0].Title)
	assert.Equal(t, "Your order has been confirmed and will be prepared soon.", notifs[0].Message)
	assert.Equal(t, res.Code, notifs[0].OrderCode)
	assert.Equal(t, entity.RoleCustomer, notifs[0].ForRole)
	assert.Equal(t, u.ID, notifs[0].UserID)
	assert.False(t, notifs[0].Read)
}

func TestAdvanceCompletesMatchingStep(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "adv@test.com")
	m := seedMenuItem(t, s.DB, "Mutton Biryani", "349.99")
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 1}))
	res := placeOrder(t, s, u.ID)

	d, err := s.Orders.Advance(res.Code, entity.StatusConfirmed)
	require.NoError(t, err)

	require.Len(t, d.Steps, 5)
	assert.True(t, d.Steps[0].Completed)
	assert.True(t, d.Steps[1].Completed)
	assert.NotNil(t, d.Steps[1].CompletedAt)
	assert.False(t, d.Steps[2].Completed)
}

func TestAdvanceRejectsSkips(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "adv@test.com")
	m := seedMenuItem(t, s.DB, "Malai Kofta", "229.99")
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 1}))
	res := placeOrder(t, s, u.ID)

	_, err := s.Orders.Advance(res.Code, entity.StatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// nothing was notified for the rejected jump
	notifs, err := s.Notif.ListForUser(u.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, notifs)
}

func TestAdvanceRejectsBackwardAndUnknown(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "adv@test.com")
	m := seedMenuItem(t, s.DB, "Prawn Biryani", "329.99")
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 1}))
	res := placeOrder(t, s, u.ID)

	_, err := s.Orders.Advance(res.Code, entity.StatusConfirmed)
	require.NoError(t, err)

	_, err = s.Orders.Advance(res.Code, entity.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.Orders.Advance(res.Code, entity.OrderStatus("cancelled"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAdvanceFullPipeline(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "adv@test.com")
	m := seedMenuItem(t, s.DB, "Chettinad Chicken", "279.99")
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 1}))
	res := placeOrder(t, s, u.ID)

	sequence := []entity.OrderStatus{
		entity.StatusConfirmed,
		entity.StatusPreparing,
		entity.StatusOutForDelivery,
		entity.StatusDelivered,
	}
	for _, st := range sequence {
		d, err := s.Orders.Advance(res.Code, st)
		require.NoError(t, err)

		// completed steps always match the status ordinal
		completed := 0
		for _, step := range d.Steps {
			if step.Completed {
				completed++
			}
		}
		assert.Equal(t, st.Ordinal(), completed)
	}

	// delivered is terminal
	_, err := s.Orders.Advance(res.Code, entity.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// one notification per transition, no dedupe and no extras
	notifs, err := s.Notif.ListForUser(u.ID, 10)
	require.NoError(t, err)
	assert.Len(t, notifs, len(sequence))
}

func TestAdvanceUnknownOrder(t *testing.T) {
	s := newStack(t)

	_, err := s.Orders.Advance("999999", entity.StatusConfirmed)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMarkNotificationRead(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "adv@test.com")
	m := seedMenuItem(t, s.DB, "Mysore Masala Dosa", "169.99")
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 1}))
	res := placeOrder(t, s, u.ID)

	_, err := s.Orders.Advance(res.Code, entity.StatusConfirmed)
	require.NoError(t, err)

	unread, err := s.Notif.ListUnreadForUser(u.ID)
	require.NoError(t, err)
	require.Len(t, unread, 1)

	require.NoError(t, s.Notif.MarkRead(unread[0].ID, u.ID, "customer"))

	unread, err = s.Notif.ListUnreadForUser(u.ID)
	require.NoError(t, err)
	assert.Empty(t, unread)

	// someone else's notification stays untouchable
	other := seedUser(t, s.DB, "other@test.com")
	err = s.Notif.MarkRead(unread0ID(t, s, u.ID), other.ID, "customer")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func unread0ID(t *testing.T, s *stack, userID uint) uint {
	t.Helper()
	all, err := s.Notif.ListForUser(userID, 10)
	require.NoError(t, err)
	require.NotEmpty(t, all)
	return all[0].ID
}
