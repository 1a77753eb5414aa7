package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/courseplan/courseplan/internal/app/controllers"
	appRoutes "github.com/courseplan/courseplan/internal/app/routes"
	appServices "github.com/courseplan/courseplan/internal/app/services"
	"github.com/courseplan/courseplan/internal/config"
	appMiddleware "github.com/courseplan/courseplan/internal/middleware"
	"github.com/courseplan/courseplan/internal/pkg/deepseek"
	"github.com/courseplan/courseplan/internal/pkg/logger"
	"github.com/courseplan/courseplan/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService      *appServices.CatalogService
	ProgressService     *appServices.ProgressService
	RecommendService    *appServices.RecommendService
	CatalogController   *appControllers.CatalogController
	ProgressController  *appControllers.ProgressController
	RecommendController *appControllers.RecommendController
	RelayController     *appControllers.RelayController
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	catalog, err := config.LoadRequirements(cfg.Requirements.Path)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Requirements.Path).Msg("Failed to load requirement catalog")
		return nil, err
	}

	deepseekClient := deepseek.NewClient(deepseek.Config{
		APIKey:      cfg.DeepSeek.APIKey,
		BaseURL:     cfg.DeepSeek.BaseURL,
		Model:       cfg.DeepSeek.Model,
		Temperature: cfg.DeepSeek.Temperature,
		Timeout:     cfg.DeepSeekTimeout(),
	})
	if !deepseekClient.Configured() {
		lgr.Warn().Msg("DeepSeek API key not set; semantic recommendations will return empty results")
	}

	deps.CatalogService = appServices.NewCatalogService(lgr)
	deps.ProgressService = appServices.NewProgressService(catalog)
	deps.RecommendService = appServices.NewRecommendService(appServices.RecommendConfig{
		MatchFields:   cfg.Recommender.MatchFields,
		MaxCandidates: cfg.Recommender.MaxCandidates,
		TopN:          cfg.Recommender.TopN,
	}, deepseekClient, lgr)

	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.ProgressController = appControllers.NewProgressController(deps.ProgressService)
	deps.RecommendController = appControllers.NewRecommendController(deps.CatalogService, deps.RecommendService)
	deps.RelayController = appControllers.NewRelayController(appControllers.RelayConfig{
		UpstreamURL: cfg.DeepSeek.BaseURL + "/v1/chat/completions",
		APIKey:      cfg.DeepSeek.APIKey,
		Timeout:     cfg.DeepSeekTimeout(),
	}, lgr)

	if cfg.Server.DemoData {
		if err := seed.LoadDemoCatalog(deps.CatalogService, time.Now().UnixNano(), lgr); err != nil {
			// Demo data is a convenience; keep starting up without it.
			lgr.Error().Err(err).Msg("Failed to load demo catalog, proceeding anyway...")
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	// The frontend is a browser app served from another origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", appMiddleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.CatalogController,
		deps.ProgressController,
		deps.RecommendController,
		deps.RelayController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
