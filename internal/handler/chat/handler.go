package chat

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mindbridge/campus-care/backend/internal/model/chat"
	chatService "github.com/mindbridge/campus-care/backend/internal/service/chat"
	"github.com/mindbridge/campus-care/backend/pkg/utils"
)

// Handler serves the conversation endpoints.
type Handler struct {
	chatSvc *chatService.Service
	logger  *zap.Logger
}

// New creates a chat handler.
func New(chatSvc *chatService.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{chatSvc: chatSvc, logger: logger}
}

// RegisterRoutes mounts the chat routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/chat", func(r chi.Router) {
		r.Get("/quick-responses", h.handleQuickResponses)
		r.Post("/sessions", h.handleCreateSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/messages", h.handleListMessages)
			r.Post("/messages", h.handleSendMessage)
			r.Post("/reset", h.handleReset)
			r.Delete("/pending", h.handleCancelPending)
		})
	})
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type transcriptResponse struct {
	SessionID string         `json:"sessionId"`
	Messages  []chat.Message `json:"messages"`
	Typing    bool           `json:"typing"`
}

func (h *Handler) handleQuickResponses(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, chat.QuickResponses())
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	messages, err := h.chatSvc.LoadTranscript(r.Context(), session.ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"session":  session,
		"messages": messages,
	})
}

func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.chatSvc.LoadTranscript(r.Context(), sessionID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	typing, err := h.chatSvc.Pending(r.Context(), sessionID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, transcriptResponse{
		SessionID: sessionID,
		Messages:  messages,
		Typing:    typing,
	})
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload sendMessageRequest
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.chatSvc.Send(r.Context(), chi.URLParam(r, "sessionID"), payload.Text)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusAccepted, message)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.chatSvc.Reset(r.Context(), sessionID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, transcriptResponse{
		SessionID: sessionID,
		Messages:  messages,
	})
}

func (h *Handler) handleCancelPending(w http.ResponseWriter, r *http.Request) {
	canceled, err := h.chatSvc.Cancel(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]bool{"canceled": canceled})
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatService.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chatService.ErrEmptyMessage):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, chatService.ErrReplyPending):
		utils.RespondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("chat request failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
