package app

import (
	"net/http"

	"github.com/HorizonColonel/orient-launch-pad/internal/company"
	"github.com/HorizonColonel/orient-launch-pad/internal/config"
	"github.com/HorizonColonel/orient-launch-pad/internal/middleware"
	"github.com/HorizonColonel/orient-launch-pad/internal/progress"
	"github.com/HorizonColonel/orient-launch-pad/internal/rbac"
	"github.com/HorizonColonel/orient-launch-pad/internal/rbac/infra"
	"github.com/HorizonColonel/orient-launch-pad/internal/trainingmodule"
	"github.com/HorizonColonel/orient-launch-pad/internal/userprofile"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	svc := buildServices(cfg, gormDB, rdb, logger)
	companyService := company.NewService(company.NewRepository(gormDB), logger)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService, logger)
	profileHandler := userprofile.NewHandler(svc.profiles, logger)
	moduleHandler := trainingmodule.NewHandler(svc.modules, logger)
	progressHandler := progress.NewHandler(svc.progress, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Global middleware ---
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.Recovery(logger),
		middleware.RateLimitByIP(50, 100),
	)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.AuthMiddleware(cfg.Auth.JWTSecret)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		company.RegisterRoutes(api, companyHandler, rbacService, auth)
		userprofile.RegisterRoutes(api, profileHandler, rbacService, auth)
		trainingmodule.RegisterRoutes(api, moduleHandler, rbacService, auth)
		progress.RegisterRoutes(api, progressHandler, rbacService, middleware.Idempotency(rdb, logger), auth)
		rbac.RegisterRoutes(api, rbacHandler, auth)
	}

	return nil
}
