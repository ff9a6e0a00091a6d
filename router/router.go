package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rms-backend/controllers"
	"rms-backend/events"
	"rms-backend/middlewares"
	"rms-backend/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// 50 requests per second per IP, applied before any route registers
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	requestCtrl := controllers.NewUserRequestController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	menuCtrl := controllers.NewMenuController(db)
	tableCtrl := controllers.NewTableController(db)
	inventoryCtrl := controllers.NewInventoryController(db)
	orderCtrl := controllers.NewOrderController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	notificationCtrl := controllers.NewNotificationController(db)
	reportCtrl := controllers.NewReportController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Staff dashboards subscribe here for order/table/stock events
	r.GET("/ws", middlewares.AuthMiddleware(), events.Handler)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())

	api.POST("/logout", userCtrl.Logout)
	api.GET("/profile", userCtrl.GetProfile)

	// Catalog
	api.GET("/categories", categoryCtrl.GetAllCategories)
	api.GET("/menu", menuCtrl.GetAllMenuItems)
	api.GET("/menu/by-category", menuCtrl.GetMenuByCategory)

	// Floor plan
	api.GET("/tables", tableCtrl.GetAllTables)
	api.GET("/tables/:table_id", tableCtrl.GetTableByID)
	api.PATCH("/tables/:table_id", tableCtrl.UpdateTable)

	// Orders (waiter builds, kitchen advances, anyone authenticated reads)
	api.GET("/orders", orderCtrl.GetAllOrders)
	api.POST("/orders", orderCtrl.CreateOrder)
	api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	api.PATCH("/orders/:order_id", orderCtrl.UpdateOrderStatus)
	api.GET("/orders/:order_id/payment", paymentCtrl.GetPaymentByOrder)

	// Inventory (kitchen consumes, any staff restocks)
	api.GET("/inventory", inventoryCtrl.GetAllInventory)
	api.GET("/inventory/low-stock", inventoryCtrl.GetLowStock)
	api.GET("/inventory/:item_id", inventoryCtrl.GetInventoryItem)
	api.PATCH("/inventory/:item_id", inventoryCtrl.UpdateInventoryItem)
	api.POST("/inventory/consume", inventoryCtrl.ConsumeStock)

	api.GET("/notifications", notificationCtrl.GetNotifications)

	// Payments are the cashier's alone
	cashier := api.Group("/")
	cashier.Use(middlewares.RequireRoles(models.RoleCashier))
	{
		cashier.POST("/payments", paymentCtrl.CreatePayment)
	}

	// ----------------------------------------------------------------
	//                      MANAGER ROUTES
	// ----------------------------------------------------------------
	manager := api.Group("/")
	manager.Use(middlewares.RequireRoles(models.RoleManager))
	{
		manager.GET("/users", userCtrl.GetAllUsers)

		manager.GET("/user-requests", requestCtrl.GetPendingRequests)
		manager.PATCH("/user-requests/:request_id", requestCtrl.ReviewRequest)
		manager.DELETE("/user-requests/:request_id", requestCtrl.DeleteRequest)

		manager.POST("/categories", categoryCtrl.CreateCategory)
		manager.PATCH("/categories/:category_id", categoryCtrl.UpdateCategory)
		manager.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)

		manager.POST("/menu", menuCtrl.CreateMenuItem)
		manager.PATCH("/menu/:item_id", menuCtrl.UpdateMenuItem)
		manager.DELETE("/menu/:item_id", menuCtrl.DeleteMenuItem)

		manager.POST("/tables", tableCtrl.CreateTable)
		manager.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

		manager.POST("/inventory", inventoryCtrl.CreateInventoryItem)
		manager.DELETE("/inventory/:item_id", inventoryCtrl.DeleteInventoryItem)

		manager.GET("/reports/dashboard", reportCtrl.GetDashboardStats)
		manager.GET("/reports/sales", reportCtrl.GetSalesSummary)
	}

	return r
}
