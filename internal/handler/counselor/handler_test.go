package counselor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindbridge/campus-care/backend/internal/model/counselor"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New(counselor.NewMemoryStore(counselor.Seed())).RegisterRoutes(r)
	return r
}

func TestListCounselors(t *testing.T) {
	resp := httptest.NewRecorder()
	setupRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/counselors", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	var got []counselor.Counselor
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Dr. Sarah Johnson", got[0].Name)
}

func TestGetCounselor(t *testing.T) {
	r := setupRouter()

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/counselors/2", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Dr. Michael Chen")

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/counselors/9", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
