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

// CreateTemplateInput defines the expected JSON structure for a new template
type CreateTemplateInput struct {
	Name    string  `json:"name" binding:"required"`
	Type    string  `json:"type" binding:"required,oneof=email sms"`
	Subject *string `json:"subject"`
	Content string  `json:"content" binding:"required"`
	Trigger string  `json:"trigger" binding:"required,oneof=payment_late payment_due lien_warning lien_filed custom"`
}

// UpdateTemplateInput defines the expected JSON structure for template changes
type UpdateTemplateInput struct {
	Name     *string `json:"name"`
	Type     *string `json:"type" binding:"omitempty,oneof=email sms"`
	Subject  *string `json:"subject"`
	Content  *string `json:"content"`
	Trigger  *string `json:"trigger" binding:"omitempty,oneof=payment_late payment_due lien_warning lien_filed custom"`
	IsActive *bool   `json:"isActive"`
}

// GetNotificationTemplates retrieves all notification templates
func GetNotificationTemplates(c *gin.Context) {
	var templates []models.NotificationTemplate
	if err := config.DB.Find(&templates).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve templates")
		return
	}

	c.JSON(http.StatusOK, templates)
}

// CreateNotificationTemplate creates a new notification template
func CreateNotificationTemplate(c *gin.Context) {
	var input CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid template data")
		return
	}

	template := models.NotificationTemplate{
		Name:     input.Name,
		Type:     input.Type,
		Subject:  input.Subject,
		Content:  input.Content,
		Trigger:  input.Trigger,
		IsActive: true,
	}

	if err := config.DB.Create(&template).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create template")
		return
	}

	c.JSON(http.StatusCreated, template)
}

// UpdateNotificationTemplate updates an existing template
func UpdateNotificationTemplate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid template ID")
		return
	}

	var input UpdateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid template data")
		return
	}

	var template models.NotificationTemplate
	if err := config.DB.First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Template not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		template.Name = *input.Name
	}
	if input.Type != nil {
		template.Type = *input.Type
	}
	if input.Subject != nil {
		template.Subject = input.Subject
	}
	if input.Content != nil {
		template.Content = *input.Content
	}
	if input.Trigger != nil {
		template.Trigger = *input.Trigger
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&template).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update template")
		return
	}

	c.JSON(http.StatusOK, template)
}
