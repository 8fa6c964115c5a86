package stream

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindbridge/campus-care/backend/internal/analysis/reply"
	chatservice "github.com/mindbridge/campus-care/backend/internal/service/chat"
)

func newChatService(t *testing.T, delay time.Duration) *chatservice.Service {
	t.Helper()
	pipeline, err := chatservice.NewPipeline(context.Background(), reply.MustDefault())
	require.NoError(t, err)
	return chatservice.NewService(pipeline, chatservice.Options{ReplyDelay: delay})
}

func setupRouter(t *testing.T, chatSvc *chatservice.Service) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	New(chatSvc, nil).RegisterRoutes(r)
	return r
}

// sseEvents returns the event names of an SSE body in order.
func sseEvents(body string) []string {
	var events []string
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		if name, ok := strings.CutPrefix(scanner.Text(), "event: "); ok {
			events = append(events, name)
		}
	}
	return events
}

func TestStreamDeliversReply(t *testing.T) {
	chatSvc := newChatService(t, 5*time.Millisecond)
	r := setupRouter(t, chatSvc)
	session, _ := chatSvc.CreateSession(context.Background())

	req := httptest.NewRequest(http.MethodGet, "/stream/"+session.ID+"?message="+url.QueryEscape("I need breathing exercises"), nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/event-stream", resp.Header().Get("Content-Type"))
	assert.Equal(t, []string{EventUser, EventTyping, EventMessage, EventTyping, EventEnd}, sseEvents(resp.Body.String()))
	assert.Contains(t, resp.Body.String(), `"category":"breathing"`)

	messages, err := chatSvc.LoadTranscript(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 3)
}

func TestStreamDeliversReplyWithoutDelay(t *testing.T) {
	chatSvc := newChatService(t, 0)
	r := setupRouter(t, chatSvc)
	session, _ := chatSvc.CreateSession(context.Background())

	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/stream/"+session.ID+"?message=hello", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, []string{EventUser, EventTyping, EventMessage, EventTyping, EventEnd}, sseEvents(resp.Body.String()))
		assert.NotContains(t, resp.Body.String(), `"canceled":true`)
	}
}

func TestStreamCanceledReply(t *testing.T) {
	chatSvc := newChatService(t, time.Hour)
	r := setupRouter(t, chatSvc)
	session, _ := chatSvc.CreateSession(context.Background())

	go func() {
		assert.Eventually(t, func() bool {
			pending, _ := chatSvc.Pending(context.Background(), session.ID)
			return pending
		}, time.Second, 5*time.Millisecond)
		time.Sleep(10 * time.Millisecond)
		_, _ = chatSvc.Cancel(context.Background(), session.ID)
	}()

	req := httptest.NewRequest(http.MethodGet, "/stream/"+session.ID+"?message=hello", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, []string{EventUser, EventTyping, EventTyping, EventEnd}, sseEvents(resp.Body.String()))
	assert.Contains(t, resp.Body.String(), `"canceled":true`)
}

func TestStreamRejectsBadRequests(t *testing.T) {
	chatSvc := newChatService(t, time.Hour)
	r := setupRouter(t, chatSvc)
	session, _ := chatSvc.CreateSession(context.Background())

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/stream/"+session.ID, nil))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/stream/missing?message=hi", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	_, err := chatSvc.Send(context.Background(), session.ID, "first")
	require.NoError(t, err)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/stream/"+session.ID+"?message=second", nil))
	assert.Equal(t, http.StatusConflict, resp.Code)
}
