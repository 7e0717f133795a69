package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appintake "github.com/batchtrack/backend/internal/application/intake"
	"github.com/batchtrack/backend/internal/domain/intake"
	"github.com/batchtrack/backend/internal/domain/shared"
	"github.com/batchtrack/backend/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubIntakeRepo is a minimal in-memory repository for handler tests
type stubIntakeRepo struct {
	records map[uint]*intake.IntakeRecord
	nextID  uint
	maxLot  string
}

func newStubIntakeRepo() *stubIntakeRepo {
	return &stubIntakeRepo{records: map[uint]*intake.IntakeRecord{}, nextID: 1}
}

func (s *stubIntakeRepo) FindByID(ctx context.Context, id uint) (*intake.IntakeRecord, error) {
	r, ok := s.records[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return r, nil
}

func (s *stubIntakeRepo) FindAll(ctx context.Context, filter shared.Filter) ([]intake.IntakeRecord, error) {
	out := make([]intake.IntakeRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, *r)
	}
	return out, nil
}

func (s *stubIntakeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.records)), nil
}

func (s *stubIntakeRepo) MaxLotID(ctx context.Context, pattern string) (string, error) {
	return s.maxLot, nil
}

func (s *stubIntakeRepo) Create(ctx context.Context, record *intake.IntakeRecord, entry *intake.IntakeHistory) error {
	record.ID = s.nextID
	s.nextID++
	record.History = append(record.History, *entry)
	s.records[record.ID] = record
	return nil
}

func (s *stubIntakeRepo) Update(ctx context.Context, record *intake.IntakeRecord, entry *intake.IntakeHistory) error {
	record.History = append(record.History, *entry)
	s.records[record.ID] = record
	return nil
}

func (s *stubIntakeRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := s.records[id]; !ok {
		return shared.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func newIntakeRouter(repo intake.Repository) *gin.Engine {
	dto.RegisterValidations()
	h := NewIntakeHandler(appintake.NewService(repo, nil))
	r := gin.New()
	r.GET("/intake", h.List)
	r.GET("/intake/:id", h.Get)
	r.POST("/intake", h.Create)
	r.DELETE("/intake/:id", h.Delete)
	return r
}

func TestIntakeHandler_CreateGeneratesLotID(t *testing.T) {
	repo := newStubIntakeRepo()
	r := newIntakeRouter(repo)

	body := `{"lot_id":"SUP-881","mat_sap_code":"400123","intake_vol":"250.5","intake_by":"alice"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/intake", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool                      `json:"success"`
		Data    appintake.IntakeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Regexp(t, `^intake-\d{4}-\d{2}-\d{2}-001$`, resp.Data.IntakeLotID)
	assert.Equal(t, "Active", resp.Data.Status)
	require.Len(t, resp.Data.History, 1)
	assert.Equal(t, "Created", resp.Data.History[0].Action)
}

func TestIntakeHandler_CreateRejectsMissingFields(t *testing.T) {
	r := newIntakeRouter(newStubIntakeRepo())

	// mat_sap_code missing
	body := `{"lot_id":"SUP-881","intake_vol":"250.5"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/intake", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestIntakeHandler_GetNotFound(t *testing.T) {
	r := newIntakeRouter(newStubIntakeRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/intake/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestIntakeHandler_GetInvalidID(t *testing.T) {
	r := newIntakeRouter(newStubIntakeRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/intake/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntakeHandler_ListMeta(t *testing.T) {
	repo := newStubIntakeRepo()
	r := newIntakeRouter(repo)

	body := `{"lot_id":"SUP-1","mat_sap_code":"400123","intake_vol":"10"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/intake", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/intake?limit=10", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Meta dto.Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Meta.Total)
	assert.Equal(t, 10, resp.Meta.Limit)
}

func TestIntakeHandler_Delete(t *testing.T) {
	repo := newStubIntakeRepo()
	r := newIntakeRouter(repo)

	body := `{"lot_id":"SUP-1","mat_sap_code":"400123","intake_vol":"10"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/intake", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/intake/1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/intake/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
