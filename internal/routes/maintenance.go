package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"gmao-system/internal/controllers"
	"gmao-system/internal/repositories"
	"gmao-system/internal/services"
	"gmao-system/pkg/logger"
)

// Maintenance and curative share the intervention service; /curative is the
// type-restricted view.
func RUN_MAINTENANCE_ROUTER(e *echo.Echo, dbConn *pgxpool.Pool) {
	var (
		logger = logger.NewLogger()

		interventionRepository = repositories.NewInterventionRepository(dbConn)
		interventionService    = services.NewInterventionService(interventionRepository, logger)
		maintenanceCtrl        = controllers.NewMaintenanceController(interventionService, logger)
		curativeCtrl           = controllers.NewCurativeController(interventionService, logger)
	)
	e.GET("/maintenance", maintenanceCtrl.GetInterventions)
	e.GET("/maintenance/:id", maintenanceCtrl.FindIntervention)
	e.POST("/maintenance", maintenanceCtrl.CreateIntervention)
	e.PUT("/maintenance/:id", maintenanceCtrl.UpdateIntervention)
	e.DELETE("/maintenance/:id", maintenanceCtrl.DeleteIntervention)

	e.GET("/curative", curativeCtrl.GetInterventions)
	e.GET("/curative/:id", curativeCtrl.FindIntervention)
	e.POST("/curative", curativeCtrl.CreateIntervention)
	e.PUT("/curative/:id", curativeCtrl.UpdateIntervention)
	e.DELETE("/curative/:id", curativeCtrl.DeleteIntervention)
}
