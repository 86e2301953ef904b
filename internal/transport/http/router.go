package http

import (
	"log/slog"
	"net/http"
)

// NewRouter wires the ordering handlers with acting-user and request logging middleware.
func NewRouter(svc Ordering, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", HealthHandler)
	mux.Handle("POST /orders", HandleCreateOrder(svc))
	mux.Handle("POST /orders/{id}/products", HandleAddProduct(svc))
	mux.Handle("GET /orders/{id}/offer", HandleCalculateOffer(svc))
	mux.Handle("POST /orders/{id}/confirm", HandleConfirm(svc))

	return RequestLogger(ActingUser(mux), logger)
}

func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
