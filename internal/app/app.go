package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/solvex-capital/marketing-core/internal/config"
	"github.com/solvex-capital/marketing-core/internal/database"
	"github.com/solvex-capital/marketing-core/internal/middleware"
	"github.com/solvex-capital/marketing-core/internal/modules/content/pagecontent"
	"github.com/solvex-capital/marketing-core/internal/pkg/jwt"
	pkgredis "github.com/solvex-capital/marketing-core/internal/pkg/redis"
	"github.com/solvex-capital/marketing-core/internal/pkg/response"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	rdb    *pkgredis.Client
	logger *zap.Logger
}

// New initializes the application: config → DB → Redis → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if cfg.JWTSecret != "" {
		jwt.SetSecret(cfg.JWTSecret)
	}
	response.SetIncludeStack(cfg.IsDev())

	db, err := database.Connect(cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	rdb, err := pkgredis.Connect(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := pagecontent.RegisterValidators(engine); err != nil {
			return nil, fmt.Errorf("register validators: %w", err)
		}
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(buildCORSConfig(cfg)))

	app := &App{cfg: cfg, router: router, db: db, rdb: rdb, logger: logger}
	app.registerRoutes()

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// DB exposes the database handle for one-shot commands.
func (a *App) DB() *gorm.DB { return a.db }

// Shutdown releases held connections.
func (a *App) Shutdown() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
}
