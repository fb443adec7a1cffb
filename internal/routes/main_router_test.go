package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"gmao-system/pkg/config"
	"gmao-system/pkg/customvalidator"
	"gmao-system/pkg/database/postgresql"
	"gmao-system/pkg/utils"
)

// EquipmentRouterTestSuite exercises the equipment CRUD end to end against a
// real database. Set TEST_DATABASE_URL to run it.
type EquipmentRouterTestSuite struct {
	suite.Suite
	Echo      *echo.Echo
	DB        *pgxpool.Pool
	CreatedID int64
}

func (s *EquipmentRouterTestSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		s.T().Skip("TEST_DATABASE_URL not set, skipping router integration tests")
	}
	os.Setenv("DATABASE_URL", dsn)

	e := echo.New()
	v := validator.New()
	s.Require().NoError(customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	cfg := config.New()
	s.DB = postgresql.ConnectDB(cfg.Postgres.DSN)
	InitRouter(e, s.DB, nil, cfg)
	s.Echo = e
}

func (s *EquipmentRouterTestSuite) TearDownSuite() {
	if s.DB != nil {
		s.DB.Close()
	}
}

func (s *EquipmentRouterTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *EquipmentRouterTestSuite) Test01_CreateEquipment() {
	rec := s.request(http.MethodPost, "/equipment", map[string]interface{}{
		"code": "IT-TEST-001",
		"name": "Integration Test Machine",
	})
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Contains(body, "equipment")
	s.Equal("active", body["equipment"]["status"])
	s.Equal("medium", body["equipment"]["criticality"])
	s.CreatedID = int64(body["equipment"]["id"].(float64))
}

func (s *EquipmentRouterTestSuite) Test02_DuplicateCodeIs400() {
	rec := s.request(http.MethodPost, "/equipment", map[string]interface{}{
		"code": "IT-TEST-001",
		"name": "Duplicate",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *EquipmentRouterTestSuite) Test03_PartialUpdate() {
	rec := s.request(http.MethodPut, fmt.Sprintf("/equipment/%d", s.CreatedID), map[string]interface{}{
		"location": "Test Bay",
	})
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("Test Bay", body["equipment"]["location"])
	s.Equal("Integration Test Machine", body["equipment"]["name"])
}

func (s *EquipmentRouterTestSuite) Test04_EmptyUpdateIs400() {
	rec := s.request(http.MethodPut, fmt.Sprintf("/equipment/%d", s.CreatedID), map[string]interface{}{})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *EquipmentRouterTestSuite) Test05_DeleteThenGoneIs404() {
	rec := s.request(http.MethodDelete, fmt.Sprintf("/equipment/%d", s.CreatedID), nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, fmt.Sprintf("/equipment/%d", s.CreatedID), nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.request(http.MethodDelete, fmt.Sprintf("/equipment/%d", s.CreatedID), nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func TestEquipmentRouterTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentRouterTestSuite))
}
