package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"core-d-backend/internal/imaging"
	"core-d-backend/internal/models"
	"core-d-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxUploadSize = 32 << 20

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: message})
}

// rejectOrDescribe writes a 400 for validation errors and returns false.
// Any other error is logged and rendered as the body's error message.
func rejectOrDescribe(c *gin.Context, err error, notImageMessage string) (string, bool) {
	if services.IsValidation(err) {
		if errors.Is(err, imaging.ErrNotImage) {
			badRequest(c, notImageMessage)
		} else {
			badRequest(c, err.Error())
		}
		return "", false
	}

	zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("styling request failed")
	return services.Describe(err), true
}

// readUpload reads the multipart file field and its declared content type.
func readUpload(c *gin.Context, field string) ([]byte, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, "", fmt.Errorf("%s 필드에 파일이 필요합니다.", field)
	}
	if header.Size > maxUploadSize {
		return nil, "", fmt.Errorf("파일 크기는 %dMB 이하여야 합니다.", maxUploadSize>>20)
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", fmt.Errorf("업로드된 파일을 열 수 없습니다: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return nil, "", fmt.Errorf("업로드된 파일을 읽을 수 없습니다: %w", err)
	}
	return data, header.Header.Get("Content-Type"), nil
}
