package stream

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	chatService "github.com/mindbridge/campus-care/backend/internal/service/chat"
	"github.com/mindbridge/campus-care/backend/pkg/utils"
)

// SSE event names.
const (
	EventUser    = "user"
	EventTyping  = "typing"
	EventMessage = "message"
	EventEnd     = "end"
)

// Handler sends a user utterance and streams the bot reply back as
// Server-Sent Events once it lands.
type Handler struct {
	chatSvc *chatService.Service
	logger  *zap.Logger
}

// New creates a stream handler.
func New(chatSvc *chatService.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{chatSvc: chatSvc, logger: logger}
}

// RegisterRoutes mounts the SSE route on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stream/{sessionID}", h.handleStream)
}

// EndEvent closes a stream.
type EndEvent struct {
	SessionID string `json:"sessionId"`
	Canceled  bool   `json:"canceled,omitempty"`
}

type typingEvent struct {
	Typing bool `json:"typing"`
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	text := r.URL.Query().Get("message")
	if text == "" {
		utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	ctx := r.Context()
	userMsg, pending, err := h.chatSvc.Dispatch(ctx, sessionID, text)
	if err != nil {
		respondSendError(w, err)
		return
	}

	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)

	log := h.logger.With(zap.String("session_id", sessionID))
	log.Debug("sse stream opened")

	if err := h.send(w, flusher, EventUser, userMsg); err != nil {
		return
	}
	if err := h.send(w, flusher, EventTyping, typingEvent{Typing: true}); err != nil {
		return
	}

	// a client that goes away does not cancel the reply; it still lands in
	// the transcript
	botMsg, err := pending.Wait(ctx)
	switch {
	case err == nil:
		if err := h.send(w, flusher, EventMessage, botMsg); err != nil {
			return
		}
		_ = h.send(w, flusher, EventTyping, typingEvent{Typing: false})
		_ = h.send(w, flusher, EventEnd, EndEvent{SessionID: sessionID})
	case errors.Is(err, chatService.ErrReplyCanceled):
		_ = h.send(w, flusher, EventTyping, typingEvent{Typing: false})
		_ = h.send(w, flusher, EventEnd, EndEvent{SessionID: sessionID, Canceled: true})
	case ctx.Err() != nil:
		log.Debug("sse client disconnected")
	default:
		log.Error("awaiting reply failed", zap.Error(err))
		_ = h.send(w, flusher, EventEnd, EndEvent{SessionID: sessionID, Canceled: true})
	}
}

func (h *Handler) send(w http.ResponseWriter, flusher http.Flusher, event string, data any) error {
	if err := utils.SendSSEEvent(w, flusher, event, data); err != nil {
		h.logger.Debug("sse write failed", zap.String("event", event), zap.Error(err))
		return err
	}
	return nil
}

func respondSendError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatService.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chatService.ErrEmptyMessage):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, chatService.ErrReplyPending):
		utils.RespondError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondError(w, http.StatusInternalServerError, "streaming failed")
	}
}

