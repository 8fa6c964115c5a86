package resource

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindbridge/campus-care/backend/internal/model/resource"
	"github.com/mindbridge/campus-care/backend/pkg/utils"
)

// Handler serves the self-help library.
type Handler struct {
	store *resource.Store
}

// New creates a resource handler.
func New(store *resource.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the library routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/resources", h.handleList)
	r.Get("/resources/featured", h.handleFeatured)
	r.Get("/resources/categories", h.handleCategories)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := h.store.Filter(resource.Query{
		Search:     q.Get("q"),
		Category:   q.Get("category"),
		Difficulty: q.Get("difficulty"),
	})
	utils.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) handleFeatured(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Featured())
}

func (h *Handler) handleCategories(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, resource.Categories())
}
