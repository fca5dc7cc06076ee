package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"smartcity/internal/delivery/http/response"
	domainerrors "smartcity/internal/domain/errors"
	"smartcity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecordHandler exposes the generic record store over HTTP.
// Payloads are opaque JSON documents grouped by kind.
type RecordHandler struct {
	uc     usecase.RecordUsecase
	logger *slog.Logger
}

// NewRecordHandler is the constructor for RecordHandler, injected by Fx.
func NewRecordHandler(uc usecase.RecordUsecase, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /api/records/:kind.
func (h *RecordHandler) List(c echo.Context) error {
	records, err := h.uc.ListRecords(c.Request().Context(), c.Param("kind"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, records)
}

// Get handles GET /api/records/:kind/:id.
func (h *RecordHandler) Get(c echo.Context) error {
	id, err := parseRecordID(c)
	if err != nil {
		return err
	}

	record, err := h.uc.GetRecord(c.Request().Context(), c.Param("kind"), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, record)
}

// Create handles POST /api/records/:kind.
func (h *RecordHandler) Create(c echo.Context) error {
	payload, err := readPayload(c)
	if err != nil {
		return err
	}

	record, err := h.uc.CreateRecord(c.Request().Context(), &usecase.CreateRecordInput{
		Kind:    c.Param("kind"),
		Payload: payload,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, record)
}

// Update handles PUT /api/records/:kind/:id.
func (h *RecordHandler) Update(c echo.Context) error {
	id, err := parseRecordID(c)
	if err != nil {
		return err
	}

	payload, err := readPayload(c)
	if err != nil {
		return err
	}

	record, err := h.uc.UpdateRecord(c.Request().Context(), &usecase.UpdateRecordInput{
		Kind:    c.Param("kind"),
		ID:      id,
		Payload: payload,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, record)
}

// Delete handles DELETE /api/records/:kind/:id.
func (h *RecordHandler) Delete(c echo.Context) error {
	id, err := parseRecordID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRecord(c.Request().Context(), c.Param("kind"), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func parseRecordID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid record id")
	}

	return id, nil
}

// readPayload reads the request body as an opaque JSON document.
func readPayload(c echo.Context) (json.RawMessage, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("failed to read record payload")
	}
	if !json.Valid(body) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("record payload is not valid JSON")
	}

	return json.RawMessage(body), nil
}
