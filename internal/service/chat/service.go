package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindbridge/campus-care/backend/internal/model/chat"
	"github.com/mindbridge/campus-care/backend/internal/service/analytics"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyMessage    = errors.New("message text is required")
	ErrReplyPending    = errors.New("a reply is already pending")
	ErrNoPendingReply  = errors.New("no reply pending")
	ErrReplyCanceled   = errors.New("reply canceled")
)

// Options tunes a Service.
type Options struct {
	// ReplyDelay is how long the assistant "types" before answering.
	ReplyDelay time.Duration
	Logger     *zap.Logger
	Tracker    *analytics.Tracker
	Now        func() time.Time
}

// Service owns conversation state. Each session allows at most one pending
// bot reply; the reply is scheduled as a cancelable task and is always
// appended after the user message that triggered it.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*conversation

	replier Replier
	delay   time.Duration
	logger  *zap.Logger
	tracker *analytics.Tracker
	now     func() time.Time
}

type conversation struct {
	session  chat.Session
	messages []chat.Message
	pending  *pendingReply
}

type pendingReply struct {
	cancel context.CancelFunc
	done   chan struct{}

	// set before done is closed
	message   chat.Message
	delivered bool
}

// NewService bootstraps the in-memory chat service.
func NewService(replier Replier, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		sessions: make(map[string]*conversation),
		replier:  replier,
		delay:    opts.ReplyDelay,
		logger:   logger,
		tracker:  opts.Tracker,
		now:      now,
	}
}

// CreateSession provisions an anonymous conversation seeded with the greeting.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	session := chat.Session{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = &conversation{
		session:  session,
		messages: []chat.Message{s.greeting(session.ID)},
	}
	s.mu.Unlock()

	s.tracker.SessionStarted()
	s.logger.Info("chat session created", zap.String("session_id", session.ID))
	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return conv.session, nil
}

// LoadTranscript returns the messages of a session in order.
func (s *Service) LoadTranscript(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Message, len(conv.messages))
	copy(copied, conv.messages)
	return copied, nil
}

// Pending reports whether the assistant is still typing a reply.
func (s *Service) Pending(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.sessions[sessionID]
	if !ok {
		return false, ErrSessionNotFound
	}
	return conv.pending != nil, nil
}

// ReplyHandle tracks the bot reply scheduled by one Dispatch call. It stays
// valid after the reply lands, so waiting on it never misses a fast reply.
type ReplyHandle struct {
	pending *pendingReply
}

// Wait blocks until the reply is delivered or dropped. It returns
// ErrReplyCanceled when Cancel or Reset dropped the reply.
func (h *ReplyHandle) Wait(ctx context.Context) (chat.Message, error) {
	select {
	case <-ctx.Done():
		return chat.Message{}, ctx.Err()
	case <-h.pending.done:
	}
	if !h.pending.delivered {
		return chat.Message{}, ErrReplyCanceled
	}
	return h.pending.message, nil
}

// Send appends a user message and schedules the bot reply. It fails with
// ErrReplyPending while a previous reply has not landed yet.
func (s *Service) Send(ctx context.Context, sessionID, text string) (chat.Message, error) {
	message, _, err := s.Dispatch(ctx, sessionID, text)
	return message, err
}

// Dispatch is Send for callers that push the reply themselves: the returned
// handle waits on exactly the reply this message triggered.
func (s *Service) Dispatch(_ context.Context, sessionID, text string) (chat.Message, *ReplyHandle, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return chat.Message{}, nil, ErrEmptyMessage
	}

	s.mu.Lock()
	conv, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return chat.Message{}, nil, ErrSessionNotFound
	}
	if conv.pending != nil {
		s.mu.Unlock()
		s.tracker.SendRejected()
		return chat.Message{}, nil, ErrReplyPending
	}

	message := chat.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Text:      text,
		Sender:    chat.SenderUser,
		Timestamp: s.now().UTC(),
	}
	conv.messages = append(conv.messages, message)

	// Detached from the request: the reply outlives the call that triggered it.
	ctx, cancel := context.WithCancel(context.Background())
	pending := &pendingReply{cancel: cancel, done: make(chan struct{})}
	conv.pending = pending
	s.mu.Unlock()

	s.tracker.MessageReceived()
	go s.deliver(ctx, sessionID, pending, text)

	return message, &ReplyHandle{pending: pending}, nil
}

// Await blocks until the reply currently pending for a session is delivered
// and returns it. It returns ErrNoPendingReply when nothing is pending, which
// includes a reply that already landed; callers that must not miss their own
// reply use the handle returned by Dispatch instead.
func (s *Service) Await(ctx context.Context, sessionID string) (chat.Message, error) {
	s.mu.Lock()
	conv, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return chat.Message{}, ErrSessionNotFound
	}
	pending := conv.pending
	s.mu.Unlock()

	if pending == nil {
		return chat.Message{}, ErrNoPendingReply
	}
	return (&ReplyHandle{pending: pending}).Wait(ctx)
}

// Cancel drops the pending reply of a session. It reports whether a reply
// was pending.
func (s *Service) Cancel(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.sessions[sessionID]
	if !ok {
		return false, ErrSessionNotFound
	}
	return s.dropPendingLocked(conv), nil
}

// Reset clears the conversation back to the single greeting message,
// dropping any pending reply.
func (s *Service) Reset(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.dropPendingLocked(conv)
	conv.messages = []chat.Message{s.greeting(sessionID)}

	s.logger.Info("chat session reset", zap.String("session_id", sessionID))
	return append([]chat.Message(nil), conv.messages...), nil
}

func (s *Service) dropPendingLocked(conv *conversation) bool {
	if conv.pending == nil {
		return false
	}
	conv.pending.cancel()
	conv.pending = nil
	s.tracker.ReplyCanceled()
	return true
}

func (s *Service) deliver(ctx context.Context, sessionID string, pending *pendingReply, text string) {
	defer close(pending.done)
	defer pending.cancel()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	answer, err := s.replier.Reply(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.sessions[sessionID]
	if !ok || conv.pending != pending {
		// canceled or reset while the reply was being computed
		return
	}
	conv.pending = nil

	if err != nil {
		s.logger.Error("reply selection failed", zap.String("session_id", sessionID), zap.Error(err))
		return
	}

	message := chat.Message{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Text:        answer.Text,
		Sender:      chat.SenderBot,
		Category:    string(answer.Category),
		Suggestions: answer.Suggestions,
		Timestamp:   s.now().UTC(),
	}
	conv.messages = append(conv.messages, message)
	pending.message = message
	pending.delivered = true

	s.tracker.ReplyDelivered(string(answer.Category))
	s.logger.Debug("bot reply delivered",
		zap.String("session_id", sessionID),
		zap.String("category", string(answer.Category)),
	)
}

func (s *Service) greeting(sessionID string) chat.Message {
	return chat.Message{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Text:        chat.Greeting,
		Sender:      chat.SenderBot,
		Suggestions: chat.GreetingSuggestions(),
		Timestamp:   s.now().UTC(),
	}
}
