package handlers

import (
	"net/http"

	"core-d-backend/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	analyzeNotImageMessage  = "이미지 파일(jpeg, png 등)을 업로드해주세요."
	wardrobeNotImageMessage = "이미지 파일을 업로드해주세요."
)

type StylingHandler struct {
	service *services.StylingService
}

func NewStylingHandler(service *services.StylingService) *StylingHandler {
	return &StylingHandler{service: service}
}

// Analyze godoc
// @Summary     Analyze a garment and recommend an outfit
// @Description Removes the background of the uploaded garment, classifies it as 아우터, 이너 or 하의,
// @Description and recommends the two other garment slots plus shoes for the chosen aesthetic and personal color.
// @Description
// @Description Upstream failures return 200 with success=false and, when available, the processed image.
// @Tags        styling
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       file formData file true "Garment photo (jpeg, png, webp, gif)"
// @Param       aesthetic formData string true "One of 모리걸, 고프코어, 발레코어, 올드머니, 긱시크"
// @Param       personal_color formData string true "One of 봄 웜, 여름 쿨, 가을 웜, 겨울 쿨"
// @Success     200 {object} models.AnalyzeResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /api/analyze [post]
func (h *StylingHandler) Analyze(c *gin.Context) {
	data, contentType, err := readUpload(c, "file")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.service.Analyze(c.Request.Context(), data, contentType,
		c.PostForm("aesthetic"), c.PostForm("personal_color"))
	if err != nil {
		message, ok := rejectOrDescribe(c, err, analyzeNotImageMessage)
		if !ok {
			return
		}
		resp.Success = false
		resp.Error = message
	}

	c.JSON(http.StatusOK, resp)
}

// ProcessWardrobe godoc
// @Summary     Add a garment to the wardrobe
// @Description Removes the background, classifies the garment and hosts the processed PNG in storage.
// @Description image_url is null when storage is not configured or the upload fails.
// @Tags        wardrobe
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       file formData file true "Garment photo"
// @Success     200 {object} models.WardrobeProcessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /api/wardrobe/process [post]
func (h *StylingHandler) ProcessWardrobe(c *gin.Context) {
	data, contentType, err := readUpload(c, "file")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.service.ProcessWardrobe(c.Request.Context(), data, contentType)
	if err != nil {
		message, ok := rejectOrDescribe(c, err, wardrobeNotImageMessage)
		if !ok {
			return
		}
		resp.Success = false
		resp.Error = message
	}

	c.JSON(http.StatusOK, resp)
}
