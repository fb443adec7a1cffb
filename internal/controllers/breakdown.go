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

type BreakdownController struct {
	breakdownService services.BreakdownServiceInterface
	logger           *zap.Logger
}

func NewBreakdownController(service services.BreakdownServiceInterface, logger *zap.Logger) *BreakdownController {
	return &BreakdownController{
		breakdownService: service,
		logger:           logger,
	}
}

func (c *BreakdownController) GetBreakdowns(ctx echo.Context) error {
	filter := dto.BreakdownFilter{
		Search:      ctx.QueryParam("search"),
		Severity:    ctx.QueryParam("severity"),
		Status:      ctx.QueryParam("status"),
		EquipmentID: ctx.QueryParam("equipmentId"),
	}

	res, err := c.breakdownService.ListBreakdowns(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "breakdowns", res)
}

func (c *BreakdownController) FindBreakdown(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid breakdown ID"), c.logger)
	}

	res, err := c.breakdownService.FindBreakdown(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "breakdown", res)
}

func (c *BreakdownController) CreateBreakdown(ctx echo.Context) error {
	var payload dto.CreateBreakdownDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.breakdownService.CreateBreakdown(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "breakdown", res)
}

func (c *BreakdownController) UpdateBreakdown(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid breakdown ID"), c.logger)
	}

	var payload dto.UpdateBreakdownDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.breakdownService.UpdateBreakdown(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "breakdown", res)
}

func (c *BreakdownController) DeleteBreakdown(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid breakdown ID"), c.logger)
	}

	if err := c.breakdownService.DeleteBreakdown(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, "Breakdown deleted successfully")
}
