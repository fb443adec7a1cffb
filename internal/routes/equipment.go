package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"gmao-system/internal/controllers"
	"gmao-system/internal/repositories"
	"gmao-system/internal/services"
	"gmao-system/pkg/logger"
)

func RUN_EQUIPMENT_ROUTER(e *echo.Echo, dbConn *pgxpool.Pool) {
	var (
		logger = logger.NewLogger()

		equipmentRepository = repositories.NewEquipmentRepository(dbConn)
		equipmentService    = services.NewEquipmentService(equipmentRepository, logger)
		equipmentCtrl       = controllers.NewEquipmentController(equipmentService, logger)
	)
	e.GET("/equipment", equipmentCtrl.GetEquipment)
	e.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	e.POST("/equipment", equipmentCtrl.CreateEquipment)
	e.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment)
	e.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment)
}
