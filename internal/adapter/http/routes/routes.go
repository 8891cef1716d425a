package routes

import (
	"context"
	"log"
	"os/signal"
	_ "rubrox/docs" // swagger registration
	"rubrox/internal/adapter/http/middleware"
	"rubrox/internal/infrastructure/config"
	"rubrox/internal/infrastructure/logger"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.NewLogger(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("[app][routes] failed to wire dependencies", zap.Error(err))
	}
	defer func() {
		if err := deps.Close(); err != nil {
			zl.Warn("[app][routes] close dependencies", zap.Error(err))
		}
	}()

	if cfg.ExpirySweepInterval > 0 {
		go runExpirySweep(ctx, deps.movements, cfg.ExpirySweepInterval, zl)
	}

	if cfg.LogMode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := newRouter(deps, zl)

	zl.Info("[app][routes] listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zl.Fatal("[app][routes] failed to startup the application", zap.Error(err))
	}
}

func newRouter(deps *dependencies, zl *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, zl)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, deps)
	return router
}

func getRoutes(router *gin.Engine, deps *dependencies) {
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBudgetLineRoutes(v1, deps.budgetLineHandler, deps.movementHandler, deps.approvalFlowHandler)
	addMovementRoutes(v1, deps.movementHandler)
	addApprovalFlowRoutes(v1, deps.approvalFlowHandler)
}

func setMiddlewares(router *gin.Engine, zl *zap.Logger) {
	router.Use(middleware.RequestLogger(zl))
	router.Use(middleware.Recovery(zl))
	router.Use(middleware.Identity())
}
