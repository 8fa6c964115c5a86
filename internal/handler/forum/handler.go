package forum

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	forumModel "github.com/mindbridge/campus-care/backend/internal/model/forum"
	forumService "github.com/mindbridge/campus-care/backend/internal/service/forum"
	"github.com/mindbridge/campus-care/backend/pkg/utils"
)

// Handler serves the peer support board.
type Handler struct {
	forumSvc *forumService.Service
	logger   *zap.Logger
}

// New creates a forum handler.
func New(forumSvc *forumService.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{forumSvc: forumSvc, logger: logger}
}

// RegisterRoutes mounts the forum routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/forum", func(r chi.Router) {
		r.Get("/posts", h.handleList)
		r.Post("/posts", h.handleCreate)
		r.Get("/categories", h.handleCategories)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	posts := h.forumSvc.List(r.Context(), forumModel.Query{
		Search:   q.Get("q"),
		Category: q.Get("category"),
	})
	utils.RespondJSON(w, http.StatusOK, posts)
}

func (h *Handler) handleCategories(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.forumSvc.Categories())
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload forumService.NewPost
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.forumSvc.Create(r.Context(), payload)
	if err != nil {
		if errors.Is(err, forumService.ErrInvalidPost) {
			utils.RespondError(w, http.StatusBadRequest, forumService.ErrInvalidPost.Error())
			return
		}
		h.logger.Error("forum post failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := utils.RespondJSON(w, http.StatusCreated, created); err != nil {
		h.logger.Warn("failed to encode forum post", zap.Error(err))
	}
}
