package handlers

import (
	"net/http"

	"core-d-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// HealthHandler godoc
// @Summary     Health check
// @Description Returns the health status of the API
// @Tags        health
// @Accept      json
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func HealthHandler(c *gin.Context) {
	response := models.HealthResponse{
		Status:  "ok",
		Service: "Core-D API",
	}
	c.JSON(http.StatusOK, response)
}
