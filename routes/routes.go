package routes

import (
	"storemate-backend/config"
	"storemate-backend/controllers"
	"storemate-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(messenger *services.Messenger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		// Unit routes
		units := api.Group("/units")
		{
			units.GET("", controllers.GetUnits)
			units.GET("/:id", controllers.GetUnit)
			units.POST("", controllers.CreateUnit)
			units.PATCH("/:id", controllers.UpdateUnit)
			units.DELETE("/:id", controllers.DeleteUnit)
		}

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.POST("", controllers.CreateCustomer)
			customers.PATCH("/:id", controllers.UpdateCustomer)
			customers.PATCH("/:id/autopay", controllers.UpdateCustomerAutopay)
		}

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.GET("", controllers.GetBookings)
			bookings.POST("", controllers.CreateBooking)
			bookings.PATCH("/:id/status", controllers.UpdateBookingStatus)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.GET("", controllers.GetPayments)
			payments.GET("/:id", controllers.GetPayment)
			payments.POST("", controllers.CreatePayment)
			payments.PATCH("/:id/status", controllers.UpdatePaymentStatus)
		}

		// Lead routes
		leads := api.Group("/leads")
		{
			leads.GET("", controllers.GetLeads)
			leads.GET("/:id", controllers.GetLead)
			leads.POST("", controllers.CreateLead)
			leads.PATCH("/:id/status", controllers.UpdateLeadStatus)
		}

		// Pricing group routes
		pricingGroups := api.Group("/pricing-groups")
		{
			pricingGroups.GET("", controllers.GetPricingGroups)
			pricingGroups.GET("/:id", controllers.GetPricingGroup)
			pricingGroups.POST("", controllers.CreatePricingGroup)
			pricingGroups.PATCH("/:id", controllers.UpdatePricingGroup)
		}

		// Notification template routes
		templates := api.Group("/notification-templates")
		{
			templates.GET("", controllers.GetNotificationTemplates)
			templates.POST("", controllers.CreateNotificationTemplate)
			templates.PATCH("/:id", controllers.UpdateNotificationTemplate)
		}

		// Messaging routes
		messageController := controllers.MessageController{Messenger: messenger}
		messages := api.Group("/messages")
		{
			messages.POST("/mass", messageController.SendMassMessage)
			messages.POST("/select", messageController.SendSelectMessage)
		}

		// Collections route
		api.GET("/collections", controllers.GetCollections)

		// Dashboard route
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Report routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReports)
		api.GET("/reports/export", reportController.ExportCollections)

		// Facility metrics routes
		api.GET("/facility-metrics", controllers.GetFacilityMetrics)
		api.GET("/facility-metrics/:id", controllers.GetFacilityMetricsByID)
	}

	return r
}
