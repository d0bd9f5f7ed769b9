package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/arda/campusconnect/internal/app/auth"
	appControllers "github.com/arda/campusconnect/internal/app/controllers"
	appRepos "github.com/arda/campusconnect/internal/app/repositories"
	appRoutes "github.com/arda/campusconnect/internal/app/routes"
	appServices "github.com/arda/campusconnect/internal/app/services"
	"github.com/arda/campusconnect/internal/config"
	appMiddleware "github.com/arda/campusconnect/internal/middleware"
	pkgAuth "github.com/arda/campusconnect/internal/pkg/auth"
	"github.com/arda/campusconnect/internal/pkg/filestorage"
	"github.com/arda/campusconnect/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	NoticeService      appServices.NoticeService
	EventService       appServices.EventService
	MaterialService    appServices.MaterialService
	ResumeService      appServices.ResumeService
	AuthController     *appControllers.AuthController
	NoticeController   *appControllers.NoticeController
	EventController    *appControllers.EventController
	MaterialController *appControllers.MaterialController
	ResumeController   *appControllers.ResumeController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	AuthzService       *appAuth.AuthorizationService
	Logger             zerolog.Logger
	FileStorage        *filestorage.LocalStorage
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(cfg.Storage.DataDir)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.AuthzService = appAuth.NewAuthorizationService()

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.NoticeService = appServices.NewNoticeService(deps.Repos.NoticeRepository, deps.AuthzService)
	deps.EventService = appServices.NewEventService(
		deps.Repos.EventRepository,
		deps.AuthzService,
		deps.FileStorage,
		cfg.Uploads.MaxFileSize,
		cfg.Uploads.ImageExtensions,
	)
	deps.MaterialService = appServices.NewMaterialService(
		deps.Repos.MaterialRepository,
		deps.AuthzService,
		deps.FileStorage,
		cfg.Uploads.MaxFileSize,
		cfg.Uploads.MaterialExtensions,
	)
	deps.ResumeService = appServices.NewResumeService(
		deps.Repos.ResumeRepository,
		deps.AuthzService,
		deps.FileStorage,
		cfg.Uploads.MaxFileSize,
		cfg.Uploads.ResumeExtensions,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.NoticeController = appControllers.NewNoticeController(deps.NoticeService, lgr)
	deps.EventController = appControllers.NewEventController(deps.EventService, lgr)
	deps.MaterialController = appControllers.NewMaterialController(deps.MaterialService, lgr)
	deps.ResumeController = appControllers.NewResumeController(deps.ResumeService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.ClientOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Stored filePath values are relative URLs under /uploads
	router.Static("/uploads", deps.FileStorage.BasePath())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.NoticeController,
		deps.EventController,
		deps.MaterialController,
		deps.ResumeController,
		deps.AuthMiddleware,
	)

	return router
}
