package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"core-d-backend/internal/config"
	"core-d-backend/internal/handlers"
	"core-d-backend/internal/imaging"
	"core-d-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRouter(jwtSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		SupabaseJWTSecret: jwtSecret,
		AllowedOrigins:    []string{"http://localhost:3000"},
		UpstreamTimeout:   time.Second,
	}
	service := services.NewStylingService(imaging.NewPreprocessor(nil), nil, nil, nil)
	return newRouter(cfg, handlers.NewStylingHandler(service))
}

func TestRouter_PublicRoutes(t *testing.T) {
	router := testRouter("secret")

	for _, path := range []string{"/health", "/api/options"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestRouter_AuthOnlyWhenConfigured(t *testing.T) {
	post := func(router *gin.Engine) int {
		req := httptest.NewRequest(http.MethodPost, "/api/shop-search", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, post(testRouter("secret")))
	// without a secret the request reaches binding and fails validation
	assert.Equal(t, http.StatusBadRequest, post(testRouter("")))
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	testRouter("").ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
