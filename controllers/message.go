package controllers

import (
	"net/http"

	"storemate-backend/services"
	"storemate-backend/utils"

	"github.com/gin-gonic/gin"
)

// MessageController sends tenant SMS through the shared messenger; one
// Twilio client serves the whole process.
type MessageController struct {
	Messenger *services.Messenger
}

// MassMessageInput defines the expected JSON structure for a broadcast
type MassMessageInput struct {
	Message string `json:"message" binding:"required"`
}

// SelectMessageInput defines the expected JSON structure for a targeted send
type SelectMessageInput struct {
	Message   string `json:"message" binding:"required"`
	TenantIDs []uint `json:"tenantIds" binding:"required,min=1"`
}

// SendMassMessage texts every enabled tenant
func (mc *MessageController) SendMassMessage(c *gin.Context) {
	var input MassMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid message data")
		return
	}

	sent, failed, err := mc.Messenger.MassMessage(input.Message)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send mass message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": sent, "failed": failed})
}

// SendSelectMessage texts only the listed tenants
func (mc *MessageController) SendSelectMessage(c *gin.Context) {
	var input SelectMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid message data")
		return
	}

	sent, failed, err := mc.Messenger.SelectMessage(input.Message, input.TenantIDs)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": sent, "failed": failed})
}
