package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Text string `json:"text" validate:"required,max=10"`
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hello"}`))
	var p samplePayload
	require.NoError(t, DecodeJSON(req, &p))
	assert.Equal(t, "hello", p.Text)
}

func TestDecodeJSONErrors(t *testing.T) {
	cases := map[string]string{
		"empty body":    "",
		"malformed":     `{"text":`,
		"missing field": `{}`,
		"too long":      `{"text":"this is far too long"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			var p samplePayload
			assert.Error(t, DecodeJSON(req, &p))
		})
	}
}

func TestValidateMessage(t *testing.T) {
	err := Validate(samplePayload{})
	require.Error(t, err)
	assert.Equal(t, "text failed required", err.Error())
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusConflict, "busy")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"busy"}`, rec.Body.String())
}

func TestSendSSEEvent(t *testing.T) {
	rec := httptest.NewRecorder()
	SetupSSEHeaders(rec)
	require.NoError(t, SendSSEEvent(rec, rec, "typing", map[string]bool{"typing": true}))

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "event: typing\ndata: {\"typing\":true}\n\n", rec.Body.String())
	assert.True(t, rec.Flushed)
}

func TestRespondJSONReturnsEncodeError(t *testing.T) {
	rec := httptest.NewRecorder()
	err := RespondJSON(rec, http.StatusOK, map[string]any{"ch": make(chan int)})

	require.Error(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

type failingWriter struct {
	*httptest.ResponseRecorder
}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestSendSSEEventReturnsWriteError(t *testing.T) {
	w := failingWriter{httptest.NewRecorder()}
	err := SendSSEEvent(w, w, "message", map[string]string{"text": "hi"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write sse event message")
}
