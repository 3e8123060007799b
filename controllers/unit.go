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

// CreateUnitInput defines the expected JSON structure for creating a unit.
// Occupancy is never client-supplied; new units start vacant.
type CreateUnitInput struct {
	Type           string `json:"type" binding:"required,oneof=small medium large extra-large"`
	Size           string `json:"size" binding:"required"`
	Price          *int   `json:"price" binding:"required,min=0"`
	Location       string `json:"location" binding:"required"`
	PricingGroupID *uint  `json:"pricingGroupId"`
}

// UpdateUnitInput defines the expected JSON structure for updating a unit
type UpdateUnitInput struct {
	Type           *string `json:"type" binding:"omitempty,oneof=small medium large extra-large"`
	Size           *string `json:"size"`
	Price          *int    `json:"price" binding:"omitempty,min=0"`
	Location       *string `json:"location"`
	PricingGroupID *uint   `json:"pricingGroupId"`
}

// GetUnits retrieves all units
func GetUnits(c *gin.Context) {
	var units []models.Unit
	if err := config.DB.Find(&units).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve units")
		return
	}

	c.JSON(http.StatusOK, units)
}

// GetUnit retrieves a specific unit by ID
func GetUnit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid unit ID")
		return
	}

	var unit models.Unit
	if err := config.DB.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Unit not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, unit)
}

// CreateUnit creates a new storage unit
func CreateUnit(c *gin.Context) {
	var input CreateUnitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid unit data")
		return
	}

	unit := models.Unit{
		Type:           input.Type,
		Size:           input.Size,
		Price:          *input.Price,
		Location:       input.Location,
		PricingGroupID: input.PricingGroupID,
	}

	if err := config.DB.Create(&unit).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create unit")
		return
	}

	c.JSON(http.StatusCreated, unit)
}

// UpdateUnit updates a unit's catalog fields. Occupancy only moves through
// the booking endpoints.
func UpdateUnit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid unit ID")
		return
	}

	var input UpdateUnitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid unit data")
		return
	}

	var unit models.Unit
	if err := config.DB.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Unit not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Type != nil {
		unit.Type = *input.Type
	}
	if input.Size != nil {
		unit.Size = *input.Size
	}
	if input.Price != nil {
		unit.Price = *input.Price
	}
	if input.Location != nil {
		unit.Location = *input.Location
	}
	if input.PricingGroupID != nil {
		unit.PricingGroupID = input.PricingGroupID
	}

	if err := config.DB.Save(&unit).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update unit")
		return
	}

	c.JSON(http.StatusOK, unit)
}

// DeleteUnit removes a vacant unit
func DeleteUnit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid unit ID")
		return
	}

	var unit models.Unit
	if err := config.DB.First(&unit, id).Error; err != nil {
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

	if err := config.DB.Delete(&unit).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete unit")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unit deleted successfully"})
}
