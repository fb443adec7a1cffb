package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"gmao-system/internal/controllers"
	"gmao-system/internal/repositories"
	"gmao-system/internal/services"
	"gmao-system/pkg/logger"
)

func RUN_STOCK_ROUTER(e *echo.Echo, dbConn *pgxpool.Pool) {
	var (
		logger = logger.NewLogger()

		sparePartRepository = repositories.NewSparePartRepository(dbConn)
		sparePartService    = services.NewSparePartService(sparePartRepository, logger)
		stockCtrl           = controllers.NewStockController(sparePartService, logger)
	)
	e.GET("/stock", stockCtrl.GetSpareParts)
	e.GET("/stock/:id", stockCtrl.FindSparePart)
	e.POST("/stock", stockCtrl.CreateSparePart)
	e.PUT("/stock/:id", stockCtrl.UpdateSparePart)
	e.DELETE("/stock/:id", stockCtrl.DeleteSparePart)
}
