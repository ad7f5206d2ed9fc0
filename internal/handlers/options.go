package handlers

import (
	"net/http"

	"core-d-backend/internal/fashion"
	"core-d-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// OptionsHandler godoc
// @Summary     Get styling options
// @Description Returns the accepted item types, aesthetics and personal colors.
// @Tags        options
// @Produce     json
// @Success     200 {object} models.OptionsResponse
// @Router      /api/options [get]
func OptionsHandler(c *gin.Context) {
	itemTypes := make([]string, len(fashion.ItemTypes))
	for i, t := range fashion.ItemTypes {
		itemTypes[i] = string(t)
	}

	c.JSON(http.StatusOK, models.OptionsResponse{
		ItemTypes:      itemTypes,
		Aesthetics:     fashion.Aesthetics,
		PersonalColors: fashion.PersonalColors,
	})
}
