package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONResponseWithWarnings sends a structured JSON response carrying
// non-fatal warnings alongside the data (e.g. a malformed auction
// window that was tolerated).
func JSONResponseWithWarnings(c *gin.Context, status int, data any, message string, warnings []string) {
	c.JSON(status, gin.H{
		"status":   status,
		"message":  message,
		"data":     data,
		"warnings": warnings,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
