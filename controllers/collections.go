package controllers

import (
	"net/http"
	"time"

	"storemate-backend/config"
	"storemate-backend/models"
	"storemate-backend/services"
	"storemate-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetCollections returns the collections work queue: one row per customer
// with an outstanding pending balance, filtered by the optional query
// params and sorted by days overdue, worst first.
func GetCollections(c *gin.Context) {
	var payments []models.Payment
	var customers []models.Customer
	var bookings []models.Booking

	if err := config.DB.Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}
	if err := config.DB.Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	if err := config.DB.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	filter := services.CollectionsFilter{
		Search:      c.Query("search"),
		DaysOverdue: c.Query("daysOverdue"),
		Balance:     c.Query("balance"),
	}

	accounts := services.BuildCollections(payments, customers, bookings, time.Now(), filter)
	c.JSON(http.StatusOK, accounts)
}
