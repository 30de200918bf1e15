package handlers

import "github.com/gin-gonic/gin"

// HealthCheck reports service liveness.
// GET /health
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok", "service": "synergysphere"})
}
