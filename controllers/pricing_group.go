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

// CreatePricingGroupInput defines the expected JSON structure for creating a pricing group
type CreatePricingGroupInput struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Multiplier  *float64 `json:"multiplier" binding:"required,gt=0"`
}

// UpdatePricingGroupInput defines the expected JSON structure for updating a pricing group
type UpdatePricingGroupInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Multiplier  *float64 `json:"multiplier" binding:"omitempty,gt=0"`
}

// GetPricingGroups retrieves all pricing groups
func GetPricingGroups(c *gin.Context) {
	var groups []models.PricingGroup
	if err := config.DB.Find(&groups).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve pricing groups")
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetPricingGroup retrieves a specific pricing group by ID
func GetPricingGroup(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pricing group ID")
		return
	}

	var group models.PricingGroup
	if err := config.DB.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Pricing group not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, group)
}

// CreatePricingGroup creates a new pricing group
func CreatePricingGroup(c *gin.Context) {
	var input CreatePricingGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pricing group data")
		return
	}

	group := models.PricingGroup{
		Name:        input.Name,
		Description: input.Description,
		Multiplier:  *input.Multiplier,
	}

	if err := config.DB.Create(&group).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create pricing group")
		return
	}

	c.JSON(http.StatusCreated, group)
}

// UpdatePricingGroup updates a pricing group. Unit prices are not recomputed;
// the multiplier only applies to future quotes.
func UpdatePricingGroup(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pricing group ID")
		return
	}

	var input UpdatePricingGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pricing group data")
		return
	}

	var group models.PricingGroup
	if err := config.DB.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Pricing group not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		group.Name = *input.Name
	}
	if input.Description != nil {
		group.Description = input.Description
	}
	if input.Multiplier != nil {
		group.Multiplier = *input.Multiplier
	}

	if err := config.DB.Save(&group).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update pricing group")
		return
	}

	c.JSON(http.StatusOK, group)
}
