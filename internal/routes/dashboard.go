package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"gmao-system/internal/controllers"
	"gmao-system/internal/repositories"
	"gmao-system/internal/services"
	"gmao-system/pkg/config"
	"gmao-system/pkg/logger"
)

func RUN_DASHBOARD_ROUTER(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config) {
	var (
		logger = logger.NewLogger()

		equipmentRepository    = repositories.NewEquipmentRepository(dbConn)
		interventionRepository = repositories.NewInterventionRepository(dbConn)
		breakdownRepository    = repositories.NewBreakdownRepository(dbConn)
		sparePartRepository    = repositories.NewSparePartRepository(dbConn)
	)

	// Without redis the dashboard recomputes on every request.
	var cacheRepository repositories.CacheRepositoryInterface
	if redisClient != nil {
		cacheRepository = repositories.NewRedisCacheRepository(redisClient)
	}

	dashboardService := services.NewDashboardService(
		equipmentRepository,
		interventionRepository,
		breakdownRepository,
		sparePartRepository,
		cacheRepository,
		cfg.Dashboard.CacheTTL,
		logger,
	)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	e.GET("/dashboard", dashboardCtrl.GetStats)
}
