package routes

import (
	"github.com/Div1912/Spice-Bite/configs"
	"github.com/Div1912/Spice-Bite/controllers"
	"github.com/Div1912/Spice-Bite/middlewares"
	"github.com/Div1912/Spice-Bite/repository"
	"github.com/Div1912/Spice-Bite/services"
	"github.com/Div1912/Spice-Bite/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine and returns the tracking hub so main can run it.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) *ws.TrackingHub {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	notifSvc := services.NewNotificationService(db, notifRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, notifSvc)
	menuSvc := services.NewMenuService(menuRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, menuRepo)

	hub := ws.NewTrackingHub(orderSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminOrderCtrl := controllers.NewAdminOrderController(orderSvc, hub)
	notifCtrl := controllers.NewNotificationController(notifSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Menu (public)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)
	r.GET("/menu/:id/related", menuCtrl.Related)
	r.GET("/menu/:id/reviews", reviewCtrl.ListForMenuItem)
	r.GET("/categories", menuCtrl.Categories)

	// Customer (protected)
	u := r.Group("/", auth)
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/:id", cartCtrl.UpdateQty)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/checkout", orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:code", orderCtrl.Detail)
		u.GET("/orders/:code/tracking", orderCtrl.Tracking)

		u.GET("/notifications", notifCtrl.List)
		u.GET("/notifications/unread", notifCtrl.Unread)
		u.POST("/notifications/:id/read", notifCtrl.MarkRead)

		u.PUT("/menu/:id/favorite", menuCtrl.AddFavorite)
		u.DELETE("/menu/:id/favorite", menuCtrl.RemoveFavorite)
		u.GET("/favorites", menuCtrl.ListFavorites)

		u.POST("/menu/:id/reviews", reviewCtrl.Submit)
		u.POST("/reviews/:id/helpful", reviewCtrl.VoteHelpful)
	}

	// Live order tracking (token via query param for browser clients)
	r.GET("/ws/orders/:code", auth, hub.HandleWebSocket)

	// Admin dashboard
	adm := r.Group("/admin", adminOnly)
	{
		adm.GET("/orders", adminOrderCtrl.List)
		adm.GET("/orders/:code", adminOrderCtrl.Detail)
		adm.POST("/orders/:code/status", adminOrderCtrl.AdvanceStatus)
		adm.GET("/notifications", notifCtrl.ListForOwner)
	}

	return hub
}
