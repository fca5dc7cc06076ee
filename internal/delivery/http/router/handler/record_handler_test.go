package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartcity/internal/domain/entity"
	domainerrors "smartcity/internal/domain/errors"
	mockUsecase "smartcity/internal/mocks/usecase"
	"smartcity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRecordTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockRecordUsecase) {
	uc := mockUsecase.NewMockRecordUsecase(t)
	h := NewRecordHandler(uc, newDiscardLogger())

	e := newTestEcho()
	group := e.Group("/api/records/:kind")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)

	return e, uc
}

func TestRecordHandler_List(t *testing.T) {
	e, uc := newRecordTestServer(t)

	uc.EXPECT().
		ListRecords(mock.Anything, "parking-lots").
		Return([]*entity.Record{
			{ID: uuid.New(), Kind: "parking-lots", Payload: json.RawMessage(`{"name":"north"}`)},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/records/parking-lots", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "parking-lots", body[0]["kind"])
}

func TestRecordHandler_Create(t *testing.T) {
	e, uc := newRecordTestServer(t)

	recordID := uuid.New()

	uc.EXPECT().
		CreateRecord(mock.Anything, mock.AnythingOfType("*usecase.CreateRecordInput")).
		RunAndReturn(func(_ context.Context, input *usecase.CreateRecordInput) (*entity.Record, error) {
			assert.Equal(t, "alerts", input.Kind)
			assert.JSONEq(t, `{"severity":"high"}`, string(input.Payload))

			return &entity.Record{
				ID:      recordID,
				Kind:    input.Kind,
				Payload: input.Payload,
			}, nil
		})

	rec := postJSON(e, "/api/records/alerts", `{"severity":"high"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, recordID.String(), body["id"])
}

func TestRecordHandler_Create_InvalidPayload(t *testing.T) {
	e, _ := newRecordTestServer(t)

	rec := postJSON(e, "/api/records/alerts", `{"severity":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation_failed"}`, rec.Body.String())
}

func TestRecordHandler_Get_NotFound(t *testing.T) {
	e, uc := newRecordTestServer(t)

	id := uuid.New()

	uc.EXPECT().
		GetRecord(mock.Anything, "alerts", id).
		Return(nil, errors.Wrap(domainerrors.ErrRecordNotFound, "record not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/records/alerts/"+id.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"record_not_found"}`, rec.Body.String())
}

func TestRecordHandler_Get_InvalidID(t *testing.T) {
	e, _ := newRecordTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/records/alerts/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation_failed"}`, rec.Body.String())
}

func TestRecordHandler_Delete(t *testing.T) {
	e, uc := newRecordTestServer(t)

	id := uuid.New()

	uc.EXPECT().DeleteRecord(mock.Anything, "alerts", id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/records/alerts/"+id.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
