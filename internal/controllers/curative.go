package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gmao-system/internal/dto"
	"gmao-system/internal/entities"
	"gmao-system/internal/services"
	apperrors "gmao-system/pkg/errors"
	"gmao-system/pkg/utils"
)

// CurativeController is the /curative view over interventions: every
// operation is restricted to the curative type, so a preventive intervention
// is invisible here even by ID.
type CurativeController struct {
	interventionService services.InterventionServiceInterface
	logger              *zap.Logger
}

func NewCurativeController(service services.InterventionServiceInterface, logger *zap.Logger) *CurativeController {
	return &CurativeController{
		interventionService: service,
		logger:              logger,
	}
}

func (c *CurativeController) GetInterventions(ctx echo.Context) error {
	filter := dto.InterventionFilter{
		Search:      ctx.QueryParam("search"),
		Priority:    ctx.QueryParam("priority"),
		Status:      ctx.QueryParam("status"),
		EquipmentID: ctx.QueryParam("equipmentId"),
	}

	res, err := c.interventionService.ListInterventions(ctx.Request().Context(), filter, entities.InterventionTypeCurative)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "interventions", res)
}

func (c *CurativeController) FindIntervention(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid intervention ID"), c.logger)
	}

	res, err := c.interventionService.FindIntervention(ctx.Request().Context(), id, entities.InterventionTypeCurative)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "intervention", res)
}

func (c *CurativeController) CreateIntervention(ctx echo.Context) error {
	var payload dto.CreateCurativeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.interventionService.CreateCurative(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "intervention", res)
}

func (c *CurativeController) UpdateIntervention(ctx echo.Context) error {
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

	res, err := c.interventionService.UpdateIntervention(ctx.Request().Context(), id, payload, entities.InterventionTypeCurative)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "intervention", res)
}

func (c *CurativeController) DeleteIntervention(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid intervention ID"), c.logger)
	}

	if err := c.interventionService.DeleteIntervention(ctx.Request().Context(), id, entities.InterventionTypeCurative); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, "Intervention deleted successfully")
}
