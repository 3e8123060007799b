package controllers

import (
	"net/http"

	"storemate-backend/config"
	"storemate-backend/models"
	"storemate-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalUnits     int `json:"totalUnits"`
	OccupiedUnits  int `json:"occupiedUnits"`
	AvailableUnits int `json:"availableUnits"`
	ActiveBookings int `json:"activeBookings"`
	MonthlyRevenue int `json:"monthlyRevenue"` // sum of occupied units' prices
}

// GetDashboardOverview returns the headline numbers for the manager home page.
func GetDashboardOverview(c *gin.Context) {
	var units []models.Unit
	if err := config.DB.Find(&units).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve units")
		return
	}

	var activeBookings int64
	if err := config.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusActive).
		Count(&activeBookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	overview := DashboardOverview{
		TotalUnits:     len(units),
		ActiveBookings: int(activeBookings),
	}
	for _, u := range units {
		if u.IsOccupied {
			overview.OccupiedUnits++
			overview.MonthlyRevenue += u.Price
		} else {
			overview.AvailableUnits++
		}
	}

	c.JSON(http.StatusOK, overview)
}
