package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gmao-system/internal/dto"
	"gmao-system/internal/entities"
	"gmao-system/internal/services"
	"gmao-system/pkg/utils"
)

// ReportController serves the equipment and stock exports. The default
// format is the JSON list envelope; ?format=xlsx streams a spreadsheet.
type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetEquipmentReport(ctx echo.Context) error {
	filter := dto.EquipmentFilter{
		Search:   ctx.QueryParam("search"),
		Category: ctx.QueryParam("category"),
		Status:   ctx.QueryParam("status"),
		Location: ctx.QueryParam("location"),
	}

	data, err := c.reportService.EquipmentReport(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		rows := make([][]interface{}, 0, len(data))
		for _, e := range data {
			rows = append(rows, equipmentReportRow(e))
		}
		return respondWithXLSX(ctx, "Equipment", equipmentReportHeaders, rows, "equipment_report")
	}
	return utils.DataResponse(ctx, http.StatusOK, "equipment", data)
}

func (c *ReportController) GetStockReport(ctx echo.Context) error {
	filter := dto.SparePartFilter{
		Search:      ctx.QueryParam("search"),
		Category:    ctx.QueryParam("category"),
		Supplier:    ctx.QueryParam("supplier"),
		StockStatus: ctx.QueryParam("stockStatus"),
	}

	data, err := c.reportService.StockReport(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		rows := make([][]interface{}, 0, len(data))
		for _, p := range data {
			rows = append(rows, stockReportRow(p))
		}
		return respondWithXLSX(ctx, "Stock", stockReportHeaders, rows, "stock_report")
	}
	return utils.DataResponse(ctx, http.StatusOK, "spareParts", data)
}

var equipmentReportHeaders = []interface{}{
	"ID", "Code", "Name", "Category", "Location", "Manufacturer", "Model",
	"Serial Number", "Purchase Date", "Warranty End", "Status", "Criticality",
}

var stockReportHeaders = []interface{}{
	"ID", "Part Number", "Name", "Category", "Manufacturer", "Supplier",
	"Unit Price", "Currency", "Current Stock", "Minimum Stock", "Maximum Stock",
	"Stock Status", "Location", "Unit",
}

func equipmentReportRow(e entities.Equipment) []interface{} {
	const dateFmt = "2006-01-02"
	var purchase, warranty string
	if e.PurchaseDate.Valid {
		purchase = e.PurchaseDate.Time.Format(dateFmt)
	}
	if e.WarrantyEndDate.Valid {
		warranty = e.WarrantyEndDate.Time.Format(dateFmt)
	}
	return []interface{}{
		e.ID, e.Code, e.Name, e.Category.String, e.Location.String,
		e.Manufacturer.String, e.Model.String, e.SerialNumber.String,
		purchase, warranty, e.Status, e.Criticality,
	}
}

func stockReportRow(p entities.SparePart) []interface{} {
	var unitPrice string
	if p.UnitPrice.Valid {
		unitPrice = fmt.Sprintf("%.2f", p.UnitPrice.Float64)
	}
	return []interface{}{
		p.ID, p.PartNumber, p.Name, p.Category.String, p.Manufacturer.String,
		p.Supplier.String, unitPrice, p.Currency, p.CurrentStock,
		p.MinimumStock, p.MaximumStock, p.StockStatus, p.Location.String,
		p.UnitOfMeasure.String,
	}
}

func respondWithXLSX(ctx echo.Context, sheet string, headers []interface{}, rows [][]interface{}, baseName string) error {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &headers)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetCellStyle(sheet, "A1", lastCol+"1", style)

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &rows[i])
	}
	f.SetColWidth(sheet, "B", lastCol, 18)

	fileName := fmt.Sprintf("%s_%s.xlsx", baseName, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
