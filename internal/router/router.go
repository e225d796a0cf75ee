package router

import (
	"net/http"

	"cafe-till/internal/handler"
	"cafe-till/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	tillHandler *handler.TillHandler,
	txHandler *handler.TransactionHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("GET /api/menu", tillHandler.Menu)

	// Billing session
	mux.HandleFunc("GET /api/session", tillHandler.Session)
	mux.HandleFunc("PUT /api/session/entries/{name}", tillHandler.SetQuantity)
	mux.HandleFunc("POST /api/session/total", tillHandler.CalculateTotal)
	mux.HandleFunc("POST /api/session/payment", tillHandler.CompletePayment)
	mux.HandleFunc("POST /api/session/clear", tillHandler.Clear)

	// Transaction log
	mux.HandleFunc("GET /api/transactions", txHandler.List)
	mux.HandleFunc("GET /api/transactions/{id}", txHandler.GetByID)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
