package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"gmao-system/internal/controllers"
	"gmao-system/internal/repositories"
	"gmao-system/internal/services"
	"gmao-system/pkg/logger"
)

func RUN_REPORT_ROUTER(e *echo.Echo, dbConn *pgxpool.Pool) {
	var (
		logger = logger.NewLogger()

		equipmentRepository = repositories.NewEquipmentRepository(dbConn)
		sparePartRepository = repositories.NewSparePartRepository(dbConn)
		reportService       = services.NewReportService(equipmentRepository, sparePartRepository, logger)
		reportCtrl          = controllers.NewReportController(reportService, logger)
	)
	e.GET("/reports/equipment", reportCtrl.GetEquipmentReport)
	e.GET("/reports/stock", reportCtrl.GetStockReport)
}
