package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/configs"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/controllers"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/middlewares"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/pkg/payments"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/repository"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/services"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub, provider payments.CheckoutProvider) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	holeRepo := repository.NewHoleRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	holeSvc := services.NewHoleService(holeRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, orderRepo, holeSvc, provider, hub, cfg.Currency)
	orderSvc := services.NewOrderService(db, orderRepo, hub)
	reconcileSvc := services.NewReconcileService(db, orderRepo, cartRepo, cfg.LookupRetryDelay, cfg.LookupMaxAttempts)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, reconcileSvc)
	courseCtrl := controllers.NewCourseController(courseRepo, menuRepo, holeSvc)
	webhookCtrl := controllers.NewWebhookController(orderSvc, cfg.StripeWebhookSecret)

	// Auth (staff)
	r.POST("/auth/login", authCtrl.Login)

	// Public customer surface
	r.GET("/courses/:courseId/menu", courseCtrl.ListMenu)
	r.GET("/courses/:courseId/nearest-hole", courseCtrl.NearestHole)

	cart := r.Group("/cart/:courseId")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:itemId", cartCtrl.UpdateQty)
		cart.PUT("/items/:itemId/note", cartCtrl.SetNote)
		cart.DELETE("/items/:itemId", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	r.POST("/checkout/:courseId", checkoutCtrl.Submit)

	// Thank-you reconciliation (public: the customer is not logged in)
	r.GET("/orders/lookup", orderCtrl.Lookup)

	// Payment provider callback
	r.POST("/webhooks/stripe", webhookCtrl.HandleStripe)

	// Staff dashboard
	staff := r.Group("/courses/:courseId/orders", middlewares.AuthMiddleware(cfg.JWTSecret, "employee", "admin"))
	{
		staff.GET("", orderCtrl.ListForCourse)
		staff.PATCH("/:orderId/status", orderCtrl.Transition)
	}

	// Realtime order stream (staff)
	r.GET("/ws/orders/:courseId", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
