package stream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	chatService "github.com/mindbridge/campus-care/backend/internal/service/chat"
)

const (
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingPeriod   = 54 * time.Second
)

// WebSocketHandler runs a chat session over a websocket. Clients send text,
// reset and cancel frames; the server pushes user, typing, message and reset
// events.
type WebSocketHandler struct {
	chatSvc  *chatService.Service
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a websocket handler. checkOrigin may be nil to
// accept any origin.
func NewWebSocketHandler(chatSvc *chatService.Service, logger *zap.Logger, checkOrigin func(*http.Request) bool) *WebSocketHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &WebSocketHandler{
		chatSvc: chatSvc,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin:     checkOrigin,
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket route on r.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// TextMessage is the payload of a "text" frame.
type TextMessage struct {
	Text string `json:"text"`
}

type outgoingMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId,omitempty"`
	Data      any    `json:"data,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// socket serializes writes; gorilla allows one concurrent writer.
type socket struct {
	mu        sync.Mutex
	conn      *websocket.Conn
	sessionID string
}

func (s *socket) send(msgType string, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return s.conn.WriteJSON(outgoingMessage{
		Type:      msgType,
		SessionID: s.sessionID,
		Data:      data,
		Timestamp: time.Now().Unix(),
	})
}

func (s *socket) ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if _, err := h.chatSvc.GetSession(r.Context(), sessionID); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	log := h.logger.With(zap.String("session_id", sessionID))
	log.Info("websocket connected")

	// the upgraded request context is not canceled when the peer leaves
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sock := &socket{conn: conn, sessionID: sessionID}

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})
	go h.pingLoop(ctx, sock)

	transcript, err := h.chatSvc.LoadTranscript(ctx, sessionID)
	if err != nil {
		return
	}
	if err := sock.send("connected", map[string]any{"messages": transcript}); err != nil {
		return
	}

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		h.handleMessage(ctx, sock, &msg)
	}
}

func (h *WebSocketHandler) handleMessage(ctx context.Context, sock *socket, msg *inboundMessage) {
	switch msg.Type {
	case "text":
		var payload TextMessage
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			h.sendError(sock, "invalid text payload")
			return
		}
		h.handleText(ctx, sock, payload.Text)
	case "reset":
		messages, err := h.chatSvc.Reset(ctx, sock.sessionID)
		if err != nil {
			h.sendError(sock, err.Error())
			return
		}
		_ = sock.send("reset", map[string]any{"messages": messages})
	case "cancel":
		canceled, err := h.chatSvc.Cancel(ctx, sock.sessionID)
		if err != nil {
			h.sendError(sock, err.Error())
			return
		}
		_ = sock.send("canceled", map[string]bool{"canceled": canceled})
	default:
		h.sendError(sock, "unsupported message type: "+msg.Type)
	}
}

func (h *WebSocketHandler) handleText(ctx context.Context, sock *socket, text string) {
	userMsg, pending, err := h.chatSvc.Dispatch(ctx, sock.sessionID, text)
	if err != nil {
		h.sendError(sock, err.Error())
		return
	}
	if err := sock.send(EventUser, userMsg); err != nil {
		return
	}
	if err := sock.send(EventTyping, typingEvent{Typing: true}); err != nil {
		return
	}

	go h.forwardReply(ctx, sock, pending)
}

func (h *WebSocketHandler) forwardReply(ctx context.Context, sock *socket, pending *chatService.ReplyHandle) {
	botMsg, err := pending.Wait(ctx)
	switch {
	case err == nil:
		_ = sock.send(EventMessage, botMsg)
	case errors.Is(err, chatService.ErrReplyCanceled):
	case ctx.Err() != nil:
		return
	default:
		h.logger.Error("awaiting reply failed", zap.String("session_id", sock.sessionID), zap.Error(err))
	}
	_ = sock.send(EventTyping, typingEvent{Typing: false})
}

func (h *WebSocketHandler) sendError(sock *socket, message string) {
	if err := sock.send("error", map[string]string{"message": message}); err != nil {
		h.logger.Debug("websocket write failed", zap.Error(err))
	}
}

func (h *WebSocketHandler) pingLoop(ctx context.Context, sock *socket) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sock.ping(); err != nil {
				return
			}
		}
	}
}

