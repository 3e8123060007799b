package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes a JSON error body with the given status code.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
