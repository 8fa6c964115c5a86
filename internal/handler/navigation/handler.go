package navigation

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindbridge/campus-care/backend/internal/middleware"
	"github.com/mindbridge/campus-care/backend/internal/model/navigation"
	"github.com/mindbridge/campus-care/backend/pkg/utils"
)

// Handler serves the sidebar for the requesting viewer.
type Handler struct{}

// New creates a navigation handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the navigation route on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/navigation", h.handleNavigation)
}

type navigationResponse struct {
	Role  navigation.Role   `json:"role"`
	Items []navigation.Item `json:"items"`
}

func (h *Handler) handleNavigation(w http.ResponseWriter, r *http.Request) {
	role := middleware.ViewerFrom(r.Context())
	utils.RespondJSON(w, http.StatusOK, navigationResponse{
		Role:  role,
		Items: navigation.ItemsFor(role),
	})
}
