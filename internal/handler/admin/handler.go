package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindbridge/campus-care/backend/internal/service/analytics"
	"github.com/mindbridge/campus-care/backend/pkg/utils"
)

// Handler serves the admin dashboard data. Access is not restricted.
type Handler struct {
	tracker *analytics.Tracker
}

// New creates an admin handler.
func New(tracker *analytics.Tracker) *Handler {
	return &Handler{tracker: tracker}
}

// RegisterRoutes mounts the admin routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/admin/analytics", h.handleAnalytics)
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.tracker.Snapshot())
}
