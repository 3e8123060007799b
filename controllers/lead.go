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

// CreateLeadInput defines the expected JSON structure for capturing a lead
type CreateLeadInput struct {
	Name             string  `json:"name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Phone            string  `json:"phone" binding:"required"`
	Status           string  `json:"status" binding:"omitempty,oneof=new contacted qualified converted lost"`
	Notes            *string `json:"notes"`
	UnitTypeInterest *string `json:"unitTypeInterest" binding:"omitempty,oneof=small medium large extra-large"`
}

// UpdateLeadStatusInput defines the expected JSON structure for a status change
type UpdateLeadStatusInput struct {
	Status string `json:"status" binding:"required,oneof=new contacted qualified converted lost"`
}

// GetLeads retrieves all leads
func GetLeads(c *gin.Context) {
	var leads []models.Lead
	if err := config.DB.Find(&leads).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve leads")
		return
	}

	c.JSON(http.StatusOK, leads)
}

// GetLead retrieves a specific lead by ID
func GetLead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, lead)
}

// CreateLead captures a new sales lead; status defaults to new
func CreateLead(c *gin.Context) {
	var input CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead data")
		return
	}

	status := input.Status
	if status == "" {
		status = models.LeadStatusNew
	}

	lead := models.Lead{
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Status:           status,
		Notes:            input.Notes,
		UnitTypeInterest: input.UnitTypeInterest,
	}

	if err := config.DB.Create(&lead).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create lead")
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// UpdateLeadStatus moves a lead through the pipeline. Converted and lost are
// terminal; a lead never leaves them.
func UpdateLeadStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	var input UpdateLeadStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if lead.Status == models.LeadStatusConverted || lead.Status == models.LeadStatusLost {
		utils.RespondWithError(c, http.StatusBadRequest, "Lead is already closed")
		return
	}

	lead.Status = input.Status
	if err := config.DB.Save(&lead).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}
