package handlers

import (
	"net/http"

	"core-d-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ClosetCoordinate godoc
// @Summary     Coordinate with the user's wardrobe
// @Description Recommends up to three outfits, each pairing the selected item with one wardrobe item
// @Description from a complementary category. Returned ids are always drawn from wardrobe_items.
// @Tags        wardrobe
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ClosetCoordinateRequest true "Selected item, wardrobe and preferences"
// @Success     200 {object} models.ClosetCoordinateResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /api/closet-coordinate [post]
func (h *StylingHandler) ClosetCoordinate(c *gin.Context) {
	var req models.ClosetCoordinateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Coordinate(c.Request.Context(), &req)
	if err != nil {
		message, ok := rejectOrDescribe(c, err, "")
		if !ok {
			return
		}
		resp.Success = false
		resp.Error = message
	}

	c.JSON(http.StatusOK, resp)
}

// ShopSearch godoc
// @Summary     Shopping keywords for the selected item
// @Description Suggests up to three search keywords with a one-line reason and builds
// @Description search links for musinsa, zigzag, kream and ably.
// @Tags        shopping
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ShopSearchRequest true "Selected item image and preferences"
// @Success     200 {object} models.ShopSearchResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /api/shop-search [post]
func (h *StylingHandler) ShopSearch(c *gin.Context) {
	var req models.ShopSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.ShopSearch(c.Request.Context(), &req)
	if err != nil {
		message, ok := rejectOrDescribe(c, err, "")
		if !ok {
			return
		}
		resp.Success = false
		resp.Error = message
	}

	c.JSON(http.StatusOK, resp)
}
