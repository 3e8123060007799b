package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"storemate-backend/config"
	"storemate-backend/models"
	"storemate-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePaymentInput defines the expected JSON structure for creating a payment
type CreatePaymentInput struct {
	BookingID     uint    `json:"bookingId" binding:"required"`
	Amount        *int    `json:"amount" binding:"required,min=0"`
	Status        string  `json:"status" binding:"required,oneof=pending completed failed refunded"`
	TransactionID *string `json:"transactionId"`
}

// UpdatePaymentStatusInput defines the expected JSON structure for a status change
type UpdatePaymentStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending completed failed refunded"`
}

// GetPayments retrieves all payments
func GetPayments(c *gin.Context) {
	var payments []models.Payment
	if err := config.DB.Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetPayment retrieves a specific payment by ID
func GetPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, payment)
}

// CreatePayment records a payment against a booking
func CreatePayment(c *gin.Context) {
	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment data")
		return
	}

	payment := models.Payment{
		BookingID:     input.BookingID,
		Amount:        *input.Amount,
		Status:        input.Status,
		TransactionID: input.TransactionID,
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// UpdatePaymentStatus transitions a payment. Completing a payment that has
// no transaction id yet assigns one.
func UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	var input UpdatePaymentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	payment.Status = input.Status
	if payment.Status == models.PaymentStatusCompleted && payment.TransactionID == nil {
		txn := uuid.New().String()
		payment.TransactionID = &txn
	}

	if err := config.DB.Save(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment")
		return
	}

	c.JSON(http.StatusOK, payment)
}
