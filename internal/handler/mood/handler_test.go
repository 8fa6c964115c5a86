package mood

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	moodservice "github.com/mindbridge/campus-care/backend/internal/service/mood"
)

func post(body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	New(moodservice.NewService(nil, nil)).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/mood-checks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestSubmitMoodCheck(t *testing.T) {
	resp := post(`{"mood":1,"stress":2}`)
	require.Equal(t, http.StatusCreated, resp.Code)

	var result moodservice.Result
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.True(t, result.FollowUp)
	assert.Equal(t, moodservice.FollowUpPrompt, result.Prompt)
}

func TestSubmitMoodCheckRequiresRatings(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(`{"mood":3}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{"mood":9,"stress":1}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(``).Code)
}
