package mood

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	moodService "github.com/mindbridge/campus-care/backend/internal/service/mood"
	"github.com/mindbridge/campus-care/backend/pkg/utils"
)

// Handler accepts mood check-ins.
type Handler struct {
	moodSvc *moodService.Service
}

// New creates a mood handler.
func New(moodSvc *moodService.Service) *Handler {
	return &Handler{moodSvc: moodSvc}
}

// RegisterRoutes mounts the mood routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/mood-checks", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload moodService.CheckIn
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.moodSvc.Submit(r.Context(), payload)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, moodService.ErrInvalidCheckIn) {
			status = http.StatusBadRequest
		}
		utils.RespondError(w, status, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, result)
}
