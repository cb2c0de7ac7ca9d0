package services

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/Div1912/Spice-Bite/entity"
	"github.com/Div1912/Spice-Bite/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testTTL = time.Hour

// newTestDB opens a fresh in-memory database named after the test so
// parallel tests don't share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.QueryEscape(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.TrackingStep{},
		&entity.Notification{},
		&entity.Favorite{},
		&entity.Review{}, &entity.ReviewVote{},
	))
	return db
}

// stack bundles every service over one test database.
type stack struct {
	DB      *gorm.DB
	Auth    *AuthService
	Cart    *CartService
	Orders  *OrderService
	Notif   *NotificationService
	Menu    *MenuService
	Reviews *ReviewService
}

func newStack(t *testing.T) *stack {
	t.Helper()
	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	notif := NewNotificationService(db, notifRepo)
	return &stack{
		DB:      db,
		Auth:    NewAuthService(userRepo, "test-secret", testTTL),
		Cart:    NewCartService(db, cartRepo, menuRepo),
		Orders:  NewOrderService(db, orderRepo, cartRepo, notif),
		Notif:   notif,
		Menu:    NewMenuService(menuRepo),
		Reviews: NewReviewService(db, reviewRepo, menuRepo),
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Name: "Test User", Role: "customer"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, price string) *entity.MenuItem {
	t.Helper()
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	m := &entity.MenuItem{Name: name, Price: p, CategorySlug: "north-indian"}
	require.NoError(t, db.Create(m).Error)
	return m
}

// checkoutReq is a valid checkout payload; tests tweak what they need.
func checkoutReq() *CheckoutReq {
	return &CheckoutReq{
		Address:       "42 MG Road",
		City:          "Bengaluru",
		PinCode:       "560001",
		FullName:      "Asha Rao",
		Phone:         "9876543210",
		Email:         "asha@example.com",
		PaymentMethod: "upi",
	}
}
