package response

import "github.com/gin-gonic/gin"

// Success responses return the record or list directly, matching the wire
// contract the storefront already consumes. Only failures are enveloped,
// so the caller can always tell "fix your input" from "try again later".

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
