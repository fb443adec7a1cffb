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

type fakeInterventionService struct {
	list            []entities.Intervention
	item            *entities.Intervention
	err             error
	lastRestriction string
	lastCreate      *dto.CreateInterventionDTO
}

func (f *fakeInterventionService) ListInterventions(ctx context.Context, filter dto.InterventionFilter, typeRestriction string) ([]entities.Intervention, error) {
	f.lastRestriction = typeRestriction
	return f.list, f.err
}

func (f *fakeInterventionService) FindIntervention(ctx context.Context, id int64, typeRestriction string) (*entities.Intervention, error) {
	f.lastRestriction = typeRestriction
	return f.item, f.err
}

func (f *fakeInterventionService) CreateIntervention(ctx context.Context, d dto.CreateInterventionDTO) (*entities.Intervention, error) {
	f.lastCreate = &d
	return f.item, f.err
}

func (f *fakeInterventionService) CreateCurative(ctx context.Context, d dto.CreateCurativeDTO) (*entities.Intervention, error) {
	f.lastCreate = &dto.CreateInterventionDTO{
		InterventionType: entities.InterventionTypeCurative,
		Title:            d.Title,
	}
	return f.item, f.err
}

func (f *fakeInterventionService) UpdateIntervention(ctx context.Context, id int64, d dto.UpdateInterventionDTO, typeRestriction string) (*entities.Intervention, error) {
	f.lastRestriction = typeRestriction
	return f.item, f.err
}

func (f *fakeInterventionService) DeleteIntervention(ctx context.Context, id int64, typeRestriction string) error {
	f.lastRestriction = typeRestriction
	return f.err
}

func TestCurativeListRestrictsType(t *testing.T) {
	e := newTestEcho(t)
	svc := &fakeInterventionService{list: []entities.Intervention{}}
	ctrl := NewCurativeController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/curative", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.GetInterventions(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entities.InterventionTypeCurative, svc.lastRestriction)
	assert.JSONEq(t, `{"interventions": []}`, rec.Body.String())
}

func TestCurativeFindOtherTypeIs404(t *testing.T) {
	e := newTestEcho(t)
	svc := &fakeInterventionService{err: apperrors.NewNotFoundError("Intervention not found")}
	ctrl := NewCurativeController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/curative/5", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("5")

	require.NoError(t, ctrl.FindIntervention(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, entities.InterventionTypeCurative, svc.lastRestriction)
}

func TestCurativeCreateForcesType(t *testing.T) {
	e := newTestEcho(t)
	svc := &fakeInterventionService{item: &entities.Intervention{ID: 4, InterventionType: entities.InterventionTypeCurative}}
	ctrl := NewCurativeController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/curative",
		strings.NewReader(`{"title": "Realign conveyor belt", "intervention_type": "preventive"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.CreateIntervention(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastCreate)
	assert.Equal(t, entities.InterventionTypeCurative, svc.lastCreate.InterventionType)

	var body map[string]entities.Intervention
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "intervention")
}

func TestMaintenanceUpdateRejectsBadStatus(t *testing.T) {
	e := newTestEcho(t)
	svc := &fakeInterventionService{}
	ctrl := NewMaintenanceController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPut, "/maintenance/1",
		strings.NewReader(`{"title": "X", "intervention_type": "preventive", "priority": "high", "status": "done"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("1")

	require.NoError(t, ctrl.UpdateIntervention(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMaintenanceListEnvelope(t *testing.T) {
	e := newTestEcho(t)
	svc := &fakeInterventionService{list: []entities.Intervention{{ID: 1, Title: "Quarterly lubrication"}}}
	ctrl := NewMaintenanceController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/maintenance?priority=high", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.GetInterventions(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", svc.lastRestriction)

	var body map[string][]entities.Intervention
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "interventions")
	assert.Len(t, body["interventions"], 1)
}
