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

type StockController struct {
	sparePartService services.SparePartServiceInterface
	logger           *zap.Logger
}

func NewStockController(service services.SparePartServiceInterface, logger *zap.Logger) *StockController {
	return &StockController{
		sparePartService: service,
		logger:           logger,
	}
}

func (c *StockController) GetSpareParts(ctx echo.Context) error {
	filter := dto.SparePartFilter{
		Search:      ctx.QueryParam("search"),
		Category:    ctx.QueryParam("category"),
		Supplier:    ctx.QueryParam("supplier"),
		StockStatus: ctx.QueryParam("stockStatus"),
	}

	res, err := c.sparePartService.ListSpareParts(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "spareParts", res)
}

func (c *StockController) FindSparePart(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid spare part ID"), c.logger)
	}

	res, err := c.sparePartService.FindSparePart(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "sparePart", res)
}

func (c *StockController) CreateSparePart(ctx echo.Context) error {
	var payload dto.CreateSparePartDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.sparePartService.CreateSparePart(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "sparePart", res)
}

func (c *StockController) UpdateSparePart(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid spare part ID"), c.logger)
	}

	var payload dto.UpdateSparePartDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.sparePartService.UpdateSparePart(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.DataResponse(ctx, http.StatusOK, "sparePart", res)
}

func (c *StockController) DeleteSparePart(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("Invalid spare part ID"), c.logger)
	}

	if err := c.sparePartService.DeleteSparePart(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, "Spare part deleted successfully")
}
