package counselor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindbridge/campus-care/backend/internal/model/counselor"
	"github.com/mindbridge/campus-care/backend/pkg/utils"
)

// Handler serves the counselor roster.
type Handler struct {
	counselors counselor.Store
}

// New creates a counselor handler.
func New(counselors counselor.Store) *Handler {
	return &Handler{counselors: counselors}
}

// RegisterRoutes mounts the counselor routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/counselors", h.handleListCounselors)
	r.Get("/counselors/{counselorID}", h.handleGetCounselor)
}

func (h *Handler) handleListCounselors(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.counselors.List())
}

func (h *Handler) handleGetCounselor(w http.ResponseWriter, r *http.Request) {
	c, ok := h.counselors.FindByID(chi.URLParam(r, "counselorID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "counselor not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, c)
}
