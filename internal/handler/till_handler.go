package handler

import (
	"encoding/json"
	"net/http"

	"cafe-till/internal/model"
	"cafe-till/internal/service"

	"github.com/rs/zerolog"
)

// TillHandler handles the clerk's billing actions.
type TillHandler struct {
	service service.TillService
	logger  zerolog.Logger
}

// NewTillHandler creates a new till handler.
func NewTillHandler(service service.TillService, logger zerolog.Logger) *TillHandler {
	return &TillHandler{
		service: service,
		logger:  logger.With().Str("handler", "till").Logger(),
	}
}

// Menu handles GET /api/menu.
func (h *TillHandler) Menu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Menu(r.Context()))
}

// Session handles GET /api/session.
func (h *TillHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Session(r.Context()))
}

// SetQuantity handles PUT /api/session/entries/{name}. The quantity may be a
// JSON string holding the raw field text or a JSON number; anything that is
// not a whole number counts as 0.
func (h *TillHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParam, "item name is required", h.logger)
		return
	}

	var req struct {
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	view, err := h.service.SetQuantity(r.Context(), name, quantityText(req.Quantity))
	if err != nil {
		writeServiceError(w, r, err, "failed to set quantity", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// quantityText returns the text of a string value, "" for null or a missing
// field, and the literal JSON text of any other value ("2", "2.5").
func quantityText(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return string(raw)
}

// CalculateTotal handles POST /api/session/total.
func (h *TillHandler) CalculateTotal(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.CalculateTotal(r.Context()))
}

// CompletePayment handles POST /api/session/payment.
func (h *TillHandler) CompletePayment(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.CompletePayment(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to complete payment", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Clear handles POST /api/session/clear.
func (h *TillHandler) Clear(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Clear(r.Context()))
}
