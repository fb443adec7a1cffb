package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gmao-system/internal/dto"
	"gmao-system/internal/entities"
	apperrors "gmao-system/pkg/errors"
)

type fakeSparePartService struct {
	list       []entities.SparePart
	item       *entities.SparePart
	err        error
	lastFilter dto.SparePartFilter
}

func (f *fakeSparePartService) ListSpareParts(ctx context.Context, filter dto.SparePartFilter) ([]entities.SparePart, error) {
	f.lastFilter = filter
	return f.list, f.err
}

func (f *fakeSparePartService) FindSparePart(ctx context.Context, id int64) (*entities.SparePart, error) {
	return f.item, f.err
}

func (f *fakeSparePartService) CreateSparePart(ctx context.Context, d dto.CreateSparePartDTO) (*entities.SparePart, error) {
	return f.item, f.err
}

func (f *fakeSparePartService) UpdateSparePart(ctx context.Context, id int64, d dto.UpdateSparePartDTO) (*entities.SparePart, error) {
	return f.item, f.err
}

func (f *fakeSparePartService) DeleteSparePart(ctx context.Context, id int64) error {
	return f.err
}

func TestGetSparePartsEnvelopeAndFilters(t *testing.T) {
	e := newTestEcho(t)
	svc := &fakeSparePartService{list: []entities.SparePart{{ID: 1, PartNumber: "BRG-6204"}}}
	ctrl := NewStockController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/stock?stockStatus=low_stock&supplier=SKF", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.GetSpareParts(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "low_stock", svc.lastFilter.StockStatus)
	assert.Equal(t, "SKF", svc.lastFilter.Supplier)

	var body map[string][]entities.SparePart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "spareParts")
}

func TestCreateSparePartRejectsBadCurrency(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewStockController(&fakeSparePartService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/stock",
		strings.NewReader(`{"part_number": "BRG-6204", "name": "Ball Bearing", "currency": "euros"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.CreateSparePart(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSparePartDuplicatePartNumber(t *testing.T) {
	e := newTestEcho(t)
	svc := &fakeSparePartService{err: apperrors.NewConflictError("Part number already exists", nil)}
	ctrl := NewStockController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/stock",
		strings.NewReader(`{"part_number": "BRG-6204", "name": "Ball Bearing"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.CreateSparePart(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Part number already exists"}`, rec.Body.String())
}

func TestFindSparePartEnvelope(t *testing.T) {
	e := newTestEcho(t)
	svc := &fakeSparePartService{item: &entities.SparePart{ID: 2, PartNumber: "FLT-H200", StockStatus: entities.StockStatusOutOfStock}}
	ctrl := NewStockController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/stock/2", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("2")

	require.NoError(t, ctrl.FindSparePart(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]entities.SparePart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "sparePart")
	assert.Equal(t, entities.StockStatusOutOfStock, body["sparePart"].StockStatus)
}
