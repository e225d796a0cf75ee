package handler

import (
	"net/http"
	"strconv"

	"cafe-till/internal/model"
	"cafe-till/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TransactionHandler handles transaction log HTTP requests.
type TransactionHandler struct {
	service service.TransactionService
	logger  zerolog.Logger
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(service service.TransactionService, logger zerolog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		logger:  logger.With().Str("handler", "transaction").Logger(),
	}
}

// List handles GET /api/transactions requests with pagination.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.queryInt(w, r, "limit", 10)
	if !ok {
		return
	}
	offset, ok := h.queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	txs, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve transactions", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, txs)
}

// GetByID handles GET /api/transactions/{id} requests.
func (h *TransactionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParam, "invalid transaction ID format", h.logger)
		return
	}

	tx, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve transaction", h.logger)
		return
	}

	if tx == nil {
		writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "transaction not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) queryInt(w http.ResponseWriter, r *http.Request, key string, def int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParam, "invalid "+key+" parameter", h.logger)
		return 0, false
	}
	return v, true
}
