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

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name       string       `json:"name" binding:"required"`
	Email      string       `json:"email" binding:"required,email"`
	Phone      string       `json:"phone" binding:"required"`
	Address    *string      `json:"address"`
	AccessCode *string      `json:"accessCode"`
	AutopayDay *int         `json:"autopayDay" binding:"omitempty,min=1,max=28"`
	Method     models.JSONB `json:"autopayMethod"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	AccessCode    *string `json:"accessCode"`
	AccountStatus *string `json:"accountStatus" binding:"omitempty,oneof=enabled disabled"`
}

// UpdateAutopayInput defines the expected JSON structure for autopay changes
type UpdateAutopayInput struct {
	Enabled *bool        `json:"enabled" binding:"required"`
	Method  models.JSONB `json:"method"`
	Day     *int         `json:"day" binding:"omitempty,min=1,max=28"`
}

// CreateCustomer creates a new customer
func CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer data")
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	customer := models.Customer{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		AccessCode:    input.AccessCode,
		AccountStatus: "enabled",
		AutopayDay:    input.AutopayDay,
		AutopayMethod: input.Method,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers
func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer's details
func UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer data")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.AccessCode != nil {
		customer.AccessCode = input.AccessCode
	}
	if input.AccountStatus != nil {
		customer.AccountStatus = *input.AccountStatus
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomerAutopay sets the autopay fields in one write. The recurring
// billing status is a pure function of the enabled flag.
func UpdateCustomerAutopay(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var input UpdateAutopayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid autopay data")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	customer.AutopayEnabled = *input.Enabled
	if input.Method != nil {
		customer.AutopayMethod = input.Method
	}
	if input.Day != nil {
		customer.AutopayDay = input.Day
	}
	if customer.AutopayEnabled {
		customer.RecurringBillingStatus = "active"
	} else {
		customer.RecurringBillingStatus = "not_activated"
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update autopay")
		return
	}

	c.JSON(http.StatusOK, customer)
}
