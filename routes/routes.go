package routes

import (
	"net/http"

	"salonpos-backend/config"
	"salonpos-backend/controllers"
	"salonpos-backend/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, s *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	customerController := controllers.NewCustomerController(s)
	stylistController := controllers.NewStylistController(s)
	serviceController := controllers.NewServiceController(s)
	productController := controllers.NewProductController(s)
	appointmentController := controllers.NewAppointmentController(s)
	transactionController := controllers.NewTransactionController(s)
	posController := controllers.NewPOSController(s)
	dashboardController := controllers.NewDashboardController(s)
	reportController := controllers.NewReportController(s)

	api := r.Group("/api")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.GET("/:id/appointments", customerController.GetCustomerAppointments)
		}

		// Stylist routes
		stylists := api.Group("/stylists")
		{
			stylists.GET("", stylistController.GetStylists)
			stylists.GET("/:id", stylistController.GetStylist)
		}

		// Service routes
		svc := api.Group("/services")
		{
			svc.GET("", serviceController.GetServices)
			svc.GET("/:id", serviceController.GetService)
		}
		api.GET("/categories", serviceController.GetCategories)

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", productController.GetProducts)
			products.GET("/:id", productController.GetProduct)
		}

		// Appointment routes
		api.GET("/appointments", appointmentController.GetAppointments)

		// Transaction and gift card routes
		api.GET("/transactions", transactionController.GetTransactions)
		api.GET("/giftcards", transactionController.GetGiftCards)

		// Point-of-sale routes
		pos := api.Group("/pos")
		{
			pos.GET("/catalog", posController.GetCatalog)
			pos.GET("/cart", posController.GetCart)
			pos.POST("/cart/items", posController.AddCartItem)
			pos.PUT("/cart/items", posController.SetCartItemQuantity)
			pos.DELETE("/cart/items/:type/:id", posController.RemoveCartItem)
			pos.PUT("/customer", posController.SelectCustomer)
			pos.DELETE("/customer", posController.ClearCustomer)
			pos.POST("/checkout", posController.Checkout)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)

		// Reports routes
		api.GET("/reports", reportController.GetReportAnalytics)
	}

	return r
}
