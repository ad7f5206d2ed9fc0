package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"core-d-backend/internal/config"
	"core-d-backend/internal/fashion"
	"core-d-backend/internal/gemini"
	"core-d-backend/internal/handlers"
	"core-d-backend/internal/imaging"
	"core-d-backend/internal/logging"
	"core-d-backend/internal/middleware"
	"core-d-backend/internal/rembg"
	"core-d-backend/internal/services"
	"core-d-backend/internal/stylist"
	"core-d-backend/internal/supabase"
	"core-d-backend/internal/trends"
	"core-d-backend/internal/youtube"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		port    string
		envFile string
	)

	cmd := &cobra.Command{
		Use:   "core-d",
		Short: "Start the Core-D styling API",
		Long: `Starts the Core-D HTTP API.

Configuration is read from the environment and an optional .env file.
Model-backed endpoints answer with success=false until GEMINI_API_KEY is set.`,
		Example: `  # Start on the port from PORT (default 8000)
  core-d

  # Start on a custom port with a specific env file
  core-d --port 9000 --env-file ./backend/.env`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Path to a .env file")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	logging.Setup(cfg.IsProduction())
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	service, cleanup := buildService(ctx, cfg)
	defer cleanup()

	router := newRouter(cfg, handlers.NewStylingHandler(service))

	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("environment", cfg.Environment).Msg("Core-D API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
			return err
		}
		log.Info().Msg("server stopped")
		return nil
	case err := <-serverErr:
		return err
	}
}

// buildService wires the styling pipeline from cfg. Missing optional
// credentials disable the feature they guard instead of failing startup.
func buildService(ctx context.Context, cfg *config.Config) (*services.StylingService, func()) {
	cleanup := func() {}

	preprocessor := imaging.NewPreprocessor(rembg.NewClient(cfg.RembgURL, cfg.RembgModel, cfg.UpstreamTimeout))

	var (
		st         *stylist.Stylist
		summarizer gemini.Generator
	)
	if cfg.GeminiEnabled() {
		client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.UpstreamTimeout)
		if err != nil {
			log.Error().Err(err).Msg("gemini client unavailable, model endpoints disabled")
		} else {
			cleanup = func() {
				if err := client.Close(); err != nil {
					log.Warn().Err(err).Msg("failed to close gemini client")
				}
			}
			summarizer = client
			st = stylist.New(client, fashion.ItemType(cfg.DefaultItemType))
		}
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, model endpoints will return success=false")
	}

	var searcher trends.VideoSearcher
	if cfg.YouTubeAPIKey != "" {
		s, err := youtube.NewSearcher(ctx, cfg.YouTubeAPIKey)
		if err != nil {
			log.Warn().Err(err).Msg("youtube search unavailable, using default trend summary")
		} else {
			searcher = s
		}
	}
	trendProvider := trends.NewProvider(searcher, youtube.NewTranscriptClient(cfg.UpstreamTimeout), summarizer)

	var store services.ImageStore
	if cfg.StorageEnabled() {
		sc, err := supabase.NewStorageClient(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("supabase storage unavailable, image_url will be null")
		} else {
			store = sc
		}
	}

	return services.NewStylingService(preprocessor, st, trendProvider, store), cleanup
}

func newRouter(cfg *config.Config, styling *handlers.StylingHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api")
	api.GET("/options", handlers.OptionsHandler)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	protected.POST("/analyze", styling.Analyze)
	protected.POST("/wardrobe/process", styling.ProcessWardrobe)
	protected.POST("/closet-coordinate", styling.ClosetCoordinate)
	protected.POST("/shop-search", styling.ShopSearch)

	return router
}
