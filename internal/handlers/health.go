package handlers

import (
	"net/http"

	"github.com/Prabhat-16/Careerion-Backend/internal/services"
	"github.com/gin-gonic/gin"
)

// Health is GET /api/health. Reports whether the AI gateway has a key and a
// model configured so deploys can be smoke-tested without burning a call.
func Health(gateway services.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":           "ok",
			"geminiKeyPresent": gateway.Configured(),
			"modelConfigured":  gateway.ModelName() != "",
		})
	}
}
