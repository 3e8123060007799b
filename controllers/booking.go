package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"storemate-backend/config"
	"storemate-backend/models"
	"storemate-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	UnitID          uint     `json:"unitId" binding:"required"`
	CustomerID      uint     `json:"customerId" binding:"required"`
	StartDate       string   `json:"startDate" binding:"required"`
	EndDate         *string  `json:"endDate"`
	Status          string   `json:"status" binding:"omitempty,oneof=active completed cancelled"`
	MonthlyRate     float64  `json:"monthlyRate"`
	NextBillDate    string   `json:"nextBillDate"`
	InsuranceAmount *float64 `json:"insuranceAmount"`
}

// UpdateBookingStatusInput defines the expected JSON structure for a status change
type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required,oneof=active completed cancelled"`
}

var errUnitOccupied = errors.New("unit is already occupied")

// GetBookings retrieves all bookings
func GetBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CreateBooking books a vacant unit for a customer. The unit is claimed with
// a conditional update before the booking row is inserted, so two concurrent
// requests for the same unit cannot both succeed.
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking data")
		return
	}

	if _, ok := utils.ParseDate(input.StartDate); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking data")
		return
	}

	var unit models.Unit
	if err := config.DB.First(&unit, input.UnitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Unit not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	if unit.IsOccupied {
		utils.RespondWithError(c, http.StatusBadRequest, "Unit is already occupied")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	status := input.Status
	if status == "" {
		status = models.BookingStatusActive
	}
	monthlyRate := input.MonthlyRate
	if monthlyRate == 0 {
		monthlyRate = float64(unit.Price)
	}
	nextBillDate := input.NextBillDate
	if nextBillDate == "" {
		nextBillDate = input.StartDate
	}

	booking := models.Booking{
		UnitID:          input.UnitID,
		CustomerID:      input.CustomerID,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Status:          status,
		MonthlyRate:     monthlyRate,
		NextBillDate:    nextBillDate,
		InsuranceAmount: input.InsuranceAmount,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// Claim the unit only if it is still vacant; zero rows means another
		// booking got there first.
		claim := tx.Model(&models.Unit{}).
			Where("id = ? AND is_occupied = ?", input.UnitID, false).
			Updates(map[string]interface{}{"is_occupied": true, "customer_id": input.CustomerID})
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return errUnitOccupied
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		if errors.Is(err, errUnitOccupied) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unit is already occupied")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// UpdateBookingStatus transitions a booking. Completed and cancelled bookings
// release the unit.
func UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	booking.Status = input.Status

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		if input.Status == models.BookingStatusCompleted || input.Status == models.BookingStatusCancelled {
			return tx.Model(&models.Unit{}).
				Where("id = ?", booking.UnitID).
				Updates(map[string]interface{}{"is_occupied": false, "customer_id": nil}).Error
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}
