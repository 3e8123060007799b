package main

import (
	"fmt"
	"log"
	"os"

	"storemate-backend/config"
	"storemate-backend/models"
	"storemate-backend/routes"
	"storemate-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Unit{},
		&models.Customer{},
		&models.Booking{},
		&models.Payment{},
		&models.Lead{},
		&models.PricingGroup{},
		&models.NotificationTemplate{},
		&models.NotificationLog{},
	)
}

func main() {
	if err := services.SeedUnits(config.DB); err != nil {
		log.Printf("Failed to seed units: %v", err)
	}

	messenger := services.NewMessenger(config.DB)
	reminders := services.NewReminderService(config.DB, messenger)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(messenger)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
