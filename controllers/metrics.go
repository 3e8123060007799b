package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"storemate-backend/config"
	"storemate-backend/models"
	"storemate-backend/services"
	"storemate-backend/utils"

	"github.com/gin-gonic/gin"
)

// The console is single-facility; the metrics endpoints keep the
// multi-facility response shape the UI expects.
const defaultFacilityID = 1

// GetFacilityMetrics returns the rollup snapshot for every facility
func GetFacilityMetrics(c *gin.Context) {
	metrics, ok := buildMetrics(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, []services.FacilityMetrics{metrics})
}

// GetFacilityMetricsByID returns the rollup snapshot for one facility
func GetFacilityMetricsByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid facility ID")
		return
	}
	if id != defaultFacilityID {
		utils.RespondWithError(c, http.StatusNotFound, "Facility not found")
		return
	}

	metrics, ok := buildMetrics(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func buildMetrics(c *gin.Context) (services.FacilityMetrics, bool) {
	var units []models.Unit
	var customers []models.Customer
	var bookings []models.Booking
	var payments []models.Payment
	var leads []models.Lead

	for _, q := range []struct {
		dest interface{}
		name string
	}{
		{&units, "units"},
		{&customers, "customers"},
		{&bookings, "bookings"},
		{&payments, "payments"},
		{&leads, "leads"},
	} {
		if err := config.DB.Find(q.dest).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve "+q.name)
			return services.FacilityMetrics{}, false
		}
	}

	name := os.Getenv("FACILITY_NAME")
	if name == "" {
		name = "Main Facility"
	}
	code := os.Getenv("FACILITY_CODE")
	if code == "" {
		code = "MAIN"
	}

	return services.BuildFacilityMetrics(defaultFacilityID, name, code,
		units, customers, bookings, payments, leads, time.Now()), true
}
