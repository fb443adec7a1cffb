package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"gmao-system/internal/controllers"
	"gmao-system/internal/repositories"
	"gmao-system/internal/services"
	"gmao-system/pkg/logger"
)

func RUN_BREAKDOWN_ROUTER(e *echo.Echo, dbConn *pgxpool.Pool) {
	var (
		logger = logger.NewLogger()

		breakdownRepository = repositories.NewBreakdownRepository(dbConn)
		breakdownService    = services.NewBreakdownService(breakdownRepository, logger)
		breakdownCtrl       = controllers.NewBreakdownController(breakdownService, logger)
	)
	e.GET("/breakdowns", breakdownCtrl.GetBreakdowns)
	e.GET("/breakdowns/:id", breakdownCtrl.FindBreakdown)
	e.POST("/breakdowns", breakdownCtrl.CreateBreakdown)
	e.PUT("/breakdowns/:id", breakdownCtrl.UpdateBreakdown)
	e.DELETE("/breakdowns/:id", breakdownCtrl.DeleteBreakdown)
}
