// utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}
