package forum

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	forumModel "github.com/mindbridge/campus-care/backend/internal/model/forum"
	forumService "github.com/mindbridge/campus-care/backend/internal/service/forum"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := zaptest.NewLogger(t)
	r := chi.NewRouter()
	New(forumService.NewService(forumModel.NewStore(forumModel.Seed()), logger), logger).RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodePosts(t *testing.T, resp *httptest.ResponseRecorder) []forumModel.Post {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.Code)
	var posts []forumModel.Post
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &posts))
	return posts
}

func TestListPosts(t *testing.T) {
	r := newRouter(t)

	assert.Len(t, decodePosts(t, do(r, http.MethodGet, "/forum/posts", "")), 4)

	posts := decodePosts(t, do(r, http.MethodGet, "/forum/posts?category=sleep", ""))
	require.Len(t, posts, 1)
	assert.Equal(t, "3", posts[0].ID)

	posts = decodePosts(t, do(r, http.MethodGet, "/forum/posts?q=Encouragement&category=all", ""))
	require.Len(t, posts, 1)
	assert.True(t, posts[0].IsModerator)
}

func TestListCategories(t *testing.T) {
	resp := do(newRouter(t), http.MethodGet, "/forum/categories", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var cats []forumModel.Category
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &cats))
	require.Len(t, cats, 8)
	assert.Equal(t, forumModel.All, cats[0].Value)
}

func TestCreatePost(t *testing.T) {
	r := newRouter(t)

	resp := do(r, http.MethodPost, "/forum/posts", `{"title":"Roommate stress","content":"How do you set boundaries?","category":"relationships","tags":"roommates, boundaries"}`)
	require.Equal(t, http.StatusCreated, resp.Code)

	var created forumService.Created
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, forumService.CreatedTitle, created.Title)
	assert.Equal(t, []string{"roommates", "boundaries"}, created.Post.Tags)
	assert.True(t, created.Post.IsAnonymous)

	posts := decodePosts(t, do(r, http.MethodGet, "/forum/posts?category=relationships", ""))
	require.Len(t, posts, 1)
	assert.Equal(t, created.Post.ID, posts[0].ID)
}

func TestCreatePostRejectsIncompleteSubmissions(t *testing.T) {
	r := newRouter(t)

	for name, body := range map[string]string{
		"empty body":     "",
		"missing title":  `{"content":"body","category":"stress"}`,
		"blank content":  `{"title":"t","content":"   ","category":"stress"}`,
		"wildcard topic": `{"title":"t","content":"body","category":"all"}`,
		"malformed":      `{"title":`,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/forum/posts", body).Code)
		})
	}
	assert.Len(t, decodePosts(t, do(r, http.MethodGet, "/forum/posts", "")), 4)
}
