package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/smartinvest/apiserver/internal/predlog"
	"github.com/smartinvest/apiserver/internal/services"
)

// RecordsHandler exposes the prediction log to the admin account.
type RecordsHandler struct {
	predictionService *services.PredictionService
}

// NewRecordsHandler constructs a handler with the provided service.
func NewRecordsHandler(predictionService *services.PredictionService) *RecordsHandler {
	return &RecordsHandler{predictionService: predictionService}
}

// RecordsRouter registers the records route on the given router.
func RecordsRouter(r chi.Router, predictionService *services.PredictionService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewRecordsHandler(predictionService)

	r.With(authMiddleware, requireAdmin).Get("/", handler.ListRecords)
}

func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := usernameFromContext(r.Context())
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !services.IsAdmin(username) {
			writeError(w, http.StatusForbidden, "records are available to admin only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListRecords returns every logged prediction. An absent log file means
// there are no records yet, not an error.
func (h *RecordsHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.predictionService.Records(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read records")
		return
	}
	if records == nil {
		records = []predlog.Record{}
	}

	writeJSON(w, http.StatusOK, RecordsResponse{Items: records, Total: len(records)})
}

type RecordsResponse struct {
	Items []predlog.Record `json:"items"`
	Total int              `json:"total"`
}
