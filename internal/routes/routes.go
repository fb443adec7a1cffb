package routes

import (
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"gmao-system/pkg/config"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config) {
	e.GET("/health", func(ctx echo.Context) error {
		if err := dbConn.Ping(ctx.Request().Context()); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return ctx.JSON(http.StatusOK, map[string]interface{}{"status": "ok"})
	})

	RUN_EQUIPMENT_ROUTER(e, dbConn)
	RUN_BREAKDOWN_ROUTER(e, dbConn)
	RUN_MAINTENANCE_ROUTER(e, dbConn)
	RUN_STOCK_ROUTER(e, dbConn)
	RUN_DASHBOARD_ROUTER(e, dbConn, redisClient, cfg)
	RUN_REPORT_ROUTER(e, dbConn)
}
