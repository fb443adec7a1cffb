package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gmao-system/internal/dto"
	"gmao-system/internal/services"
	apperrors "gmao-system/pkg/errors"
	"gmao-system/pkg/utils"
)

// MaintenanceController exposes the full intervention set, all types mixed.
type MaintenanceController struct {
	interventionService services.InterventionServiceInterface
	logger              *zap.Logger
}

func NewMaintenanceController(service services.InterventionServiceInterface, logger *zap.Logger) *MaintenanceController {
	return &MaintenanceController{
		interventionService: service,
		logger:              logger,
	}
}

func parseInterventionFilter(ctx echo.Context) dto.InterventionFilter {
	return dto.InterventionFilter{
		Search:      ctx.QueryParam("search"),
		Priority:    ctx.QueryParam("priority"),
		Status:      ctx.QueryParam("status"),
		Type:        ctx.QueryParam("type"),
		EquipmentID: ctx.QueryParam("equipmentId"),
	}
}

func (c *MaintenanceController) GetInterventions(ctx echo.Context) error {
	res, err := c.interventionService.ListInterventions(ctx.Request().Context(), parseInterventionFilter(ctx), "")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "interventions", res)
}

func (c *MaintenanceController) FindIntervention(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid intervention ID"), c.logger)
	}

	res, err := c.interventionService.FindIntervention(ctx.Request().Context(), id, "")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "intervention", res)
}

func (c *MaintenanceController) CreateIntervention(ctx echo.Context) error {
	var payload dto.CreateInterventionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.interventionService.CreateIntervention(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "intervention", res)
}

func (c *MaintenanceController) UpdateIntervention(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid intervention ID"), c.logger)
	}

	var payload dto.UpdateInterventionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.interventionService.UpdateIntervention(ctx.Request().Context(), id, payload, "")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "intervention", res)
}

func (c *MaintenanceController) DeleteIntervention(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid intervention ID"), c.logger)
	}

	if err := c.interventionService.DeleteIntervention(ctx.Request().Context(), id, ""); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, "Intervention deleted successfully")
}
