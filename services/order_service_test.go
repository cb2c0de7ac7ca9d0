package services

import (
	"regexp"
	"testing"

	"github.com/Div1912/Spice-Bite/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codeRe = regexp.MustCompile(`^\d{6}$`)

func placeOrder(t *testing.T, s *stack, userID uint) *CheckoutRes {
	t.Helper()
	res, err := s.Orders.Checkout(userID, checkoutReq())
	require.NoError(t, err)
	return res
}

func TestCheckout(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "order@test.com")
	m := seedMenuItem(t, s.DB, "Butter Chicken", "100.00")
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 2}))

	res := placeOrder(t, s, u.ID)

	assert.Regexp(t, codeRe, res.Code)
	assert.Equal(t, "259.00", res.Total)

	d, err := s.Orders.DetailForUser(u.ID, res.Code)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, d.Order.Status)
	assert.Equal(t, 30, d.Order.EstimatedMinutes)
	assert.NotEmpty(t, d.Order.PaymentRef)

	require.Len(t, d.Items, 1)
	assert.Equal(t, "Butter Chicken", d.Items[0].Name)
	assert.Equal(t, 2, d.Items[0].Qty)

	// five tracking steps, exactly the first one completed
	require.Len(t, d.Steps, 5)
	assert.True(t, d.Steps[0].Completed)
	assert.NotNil(t, d.Steps[0].CompletedAt)
	for _, step := range d.Steps[1:] {
		assert.False(t, step.Completed)
		assert.Nil(t, step.CompletedAt)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "order@test.com")

	_, err := s.Orders.Checkout(u.ID, checkoutReq())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutSnapshotsEveryCartLine(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "order@test.com")
	m1 := seedMenuItem(t, s.DB, "Dal Makhani", "199.99")
	m2 := seedMenuItem(t, s.DB, "Garlic Naan", "49.99")
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m1.ID, Qty: 2}))
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m2.ID, Qty: 3}))

	res := placeOrder(t, s, u.ID)

	// Every line that was in the cart is on the order, and the cart
	// it was read from is empty; the snapshot and the clear commit
	// together.
	d, err := s.Orders.DetailForUser(u.ID, res.Code)
	require.NoError(t, err)
	require.Len(t, d.Items, 2)
	byName := map[string]int{}
	for _, it := range d.Items {
		byName[it.Name] = it.Qty
	}
	assert.Equal(t, 2, byName["Dal Makhani"])
	assert.Equal(t, 3, byName["Garlic Naan"])

	out, err := s.Cart.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Cart.Items)
}

func TestCheckoutClearsCartAndNotifiesOwner(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "order@test.com")
	m := seedMenuItem(t, s.DB, "Kulfi", "129.99")
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 1}))

	res := placeOrder(t, s, u.ID)

	out, err := s.Cart.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Cart.Items)

	owner, err := s.Notif.ListForOwner(10)
	require.NoError(t, err)
	require.Len(t, owner, 1)
	assert.Equal(t, "New Order Received", owner[0].Title)
	assert.Contains(t, owner[0].Message, res.Code)
	assert.Contains(t, owner[0].Message, "Asha Rao")
	assert.Equal(t, entity.NotifNewOrder, owner[0].Type)
	assert.False(t, owner[0].Read)
}

func TestDetailForUserNotFound(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "order@test.com")

	_, err := s.Orders.DetailForUser(u.ID, "000000")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDetailForUserScopedToOwner(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "order@test.com")
	other := seedUser(t, s.DB, "other@test.com")
	m := seedMenuItem(t, s.DB, "Jalebi", "89.99")
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 1}))

	res := placeOrder(t, s, u.ID)

	_, err := s.Orders.DetailForUser(other.ID, res.Code)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListForUser(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "order@test.com")
	m := seedMenuItem(t, s.DB, "Rasgulla", "99.99")

	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 1}))
	first := placeOrder(t, s, u.ID)
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 2}))
	second := placeOrder(t, s, u.ID)

	items, err := s.Orders.ListForUser(u.ID, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// newest first
	assert.Equal(t, second.Code, items[0].Code)
	assert.Equal(t, first.Code, items[1].Code)
}

func TestListForAdminStatusFilter(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "order@test.com")
	m := seedMenuItem(t, s.DB, "Medu Vada", "119.99")

	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 1}))
	pendingOrder := placeOrder(t, s, u.ID)
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 1}))
	advanced := placeOrder(t, s, u.ID)

	_, err := s.Orders.Advance(advanced.Code, entity.StatusConfirmed)
	require.NoError(t, err)

	st := entity.StatusPending
	out, err := s.Orders.ListForAdmin(&st, 1, 10)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, pendingOrder.Code, out.Items[0].Code)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, "Asha Rao", out.Items[0].CustomerName)
}

func TestTracking(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "order@test.com")
	m := seedMenuItem(t, s.DB, "Egg Biryani", "229.99")
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 1}))

	res := placeOrder(t, s, u.ID)

	tr, err := s.Orders.Tracking(u.ID, res.Code)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, tr.Status)
	require.Len(t, tr.Steps, 5)
	assert.Equal(t, "Order Placed", tr.Steps[0].Title)
	assert.Equal(t, "Delivered", tr.Steps[4].Title)
}

func TestCanAccessOrder(t *testing.T) {
	s := newStack(t)
	u := seedUser(t, s.DB, "order@test.com")
	other := seedUser(t, s.DB, "other@test.com")
	m := seedMenuItem(t, s.DB, "Chole Bhature", "189.99")
	require.NoError(t, s.Cart.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 1}))

	res := placeOrder(t, s, u.ID)

	ok, err := s.Orders.CanAccessOrder(u.ID, "customer", res.Code)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Orders.CanAccessOrder(other.ID, "customer", res.Code)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Orders.CanAccessOrder(0, "admin", res.Code)
	require.NoError(t, err)
	assert.True(t, ok)
}
