package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/pkg/gateway"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto the engine.
// It returns the order service so main can hand it to the expiry sweeper.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.Hub) *services.OrderService {
	// repositories
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	dashRepo := repository.NewDashboardRepository(db)

	// services
	gw := gateway.NewMidtrans(cfg.MidtransServerKey, cfg.MidtransProduction)
	authService := services.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL)
	tableService := services.NewTableService(tableRepo)
	menuService := services.NewMenuService(menuRepo, cfg.UploadDir)
	cartService := services.NewCartService(db, cartRepo, menuRepo, tableRepo)
	orderService := services.NewOrderService(db, orderRepo, cartRepo, hub)
	paymentService := services.NewPaymentService(db, orderRepo, gw, hub, cfg.MidtransServerKey)
	dashService := services.NewDashboardService(dashRepo)

	// controllers
	authCtl := controllers.NewAuthController(authService)
	tableCtl := controllers.NewTableController(tableService)
	menuCtl := controllers.NewMenuController(menuService, cfg.UploadDir)
	cartCtl := controllers.NewCartController(cartService, cfg.JWTSecret, cfg.SessionTTL)
	orderCtl := controllers.NewOrderController(orderService)
	paymentCtl := controllers.NewPaymentController(paymentService)
	dashCtl := controllers.NewDashboardController(dashService)
	legacyCtl := controllers.NewLegacyController(cartService, menuService, tableService, orderService, authService, cfg.JWTSecret, cfg.SessionTTL)

	requireSession := middlewares.SessionMiddleware(cfg.JWTSecret)
	requireAdmin := middlewares.AuthMiddleware(cfg.JWTSecret, authService)

	v1 := r.Group("/api/v1")
	{
		// public catalog + session bootstrap
		v1.GET("/tables", tableCtl.List)
		v1.GET("/tables/:id", tableCtl.Get)
		v1.GET("/menus", menuCtl.ListPublic)
		v1.GET("/menus/:id", menuCtl.Get)
		v1.GET("/menus/categories/list", menuCtl.Categories)
		v1.POST("/session", cartCtl.StartSession)
		v1.GET("/orders/tracking/:code", orderCtl.Track)

		// gateway server-to-server notification, signature-authenticated
		v1.POST("/payment/webhook", paymentCtl.Webhook)

		// customer, session-scoped
		customer := v1.Group("", requireSession)
		{
			customer.GET("/session", cartCtl.Session)
			customer.GET("/cart", cartCtl.List)
			customer.POST("/cart", cartCtl.Add)
			customer.PUT("/cart/:id", cartCtl.Update)
			customer.DELETE("/cart/:id", cartCtl.Remove)
			customer.DELETE("/cart", cartCtl.Clear)

			customer.POST("/orders", orderCtl.Checkout)
			customer.GET("/orders/history/table", orderCtl.History)
			customer.POST("/orders/:id/payment", paymentCtl.Create)
			customer.GET("/orders/:id/payment/status", paymentCtl.Status)
			customer.POST("/orders/:id/cancel", orderCtl.CancelOwn)
		}

		// admin
		v1.POST("/admin/login", authCtl.Login)
		admin := v1.Group("/admin", requireAdmin)
		{
			admin.POST("/logout", authCtl.Logout)
			admin.GET("/me", authCtl.Me)

			admin.GET("/tables", tableCtl.List)
			admin.GET("/tables/:id", tableCtl.Get)
			admin.POST("/tables", tableCtl.Create)
			admin.PUT("/tables/:id", tableCtl.Update)
			admin.DELETE("/tables/:id", tableCtl.Delete)

			admin.GET("/menus", menuCtl.List)
			admin.POST("/menus", menuCtl.Create)
			admin.POST("/menus/:id", menuCtl.Update)
			admin.PATCH("/menus/:id/status", menuCtl.UpdateStatus)
			admin.DELETE("/menus/:id", menuCtl.Delete)

			admin.GET("/orders", orderCtl.List)
			admin.GET("/orders/active", orderCtl.Active)
			admin.GET("/orders/:id", orderCtl.Get)
			admin.PUT("/orders/:id/status", orderCtl.UpdateStatus)
			admin.POST("/orders/:id/cancel", orderCtl.Cancel)

			admin.GET("/dashboard/statistics", dashCtl.Statistics)
			admin.GET("/dashboard/active-orders", orderCtl.Active)
			admin.GET("/dashboard/revenue-report", dashCtl.Revenue)
			admin.GET("/dashboard/order-history", orderCtl.List)
		}
	}

	// legacy surface for the first frontend generation
	legacy := r.Group("/api")
	{
		legacy.POST("/table/set", legacyCtl.SetTable)
		legacy.GET("/table/list", legacyCtl.ListTables)
		legacy.GET("/menu", legacyCtl.ListMenus)

		withSession := legacy.Group("", middlewares.OptionalSessionMiddleware(cfg.JWTSecret))
		{
			withSession.GET("/cart", legacyCtl.CartList)
			withSession.POST("/cart/add", legacyCtl.CartAdd)
		}

		legacy.POST("/admin/login", legacyCtl.Login)
		legacy.GET("/admin/orders/all", requireAdmin, legacyCtl.AllOrders)
	}

	// realtime order events
	r.GET("/ws/:channel", hub.HandleWebSocket)

	return orderService
}
