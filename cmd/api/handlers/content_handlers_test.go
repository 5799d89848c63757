package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adichatupes-source/Portfolio/cmd/api/dto"
	"github.com/adichatupes-source/Portfolio/cmd/api/router"
	"github.com/adichatupes-source/Portfolio/config"
	"github.com/adichatupes-source/Portfolio/internal/contentstore"
)

// newFallbackRouter builds the API against a store with no fetcher, so every
// request is answered from the bundled datasets.
func newFallbackRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.AppConfig{
		Content: config.ContentConfig{
			BlogPosts:   config.ContentTypeConfig{PublishedStatus: "Publish"},
			CaseStudies: config.ContentTypeConfig{PublishedStatus: "Published"},
		},
	}
	store := contentstore.New(nil, contentstore.Options{})
	return router.New(cfg, store)
}

func TestListBlogPostsServesBundledDataset(t *testing.T) {
	r := newFallbackRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/blog-posts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var page dto.Pagination[dto.BlogPostDTO]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 6, page.PageSize)
	assert.Equal(t, int64(6), page.Total)
	require.Len(t, page.Data, 6)
	assert.NotEmpty(t, page.Data[0].Slug)
	assert.NotEmpty(t, page.Data[0].Content)
}

func TestListBlogPostsPageSizeQuery(t *testing.T) {
	r := newFallbackRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/blog-posts?page=2&page_size=4", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var page dto.Pagination[dto.BlogPostDTO]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 4, page.PageSize)
	assert.Equal(t, int64(6), page.Total)
	assert.Len(t, page.Data, 2)
}

func TestGetBlogPostBySlug(t *testing.T) {
	r := newFallbackRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/blog-posts/gtm-thinking-before-execution", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var post dto.BlogPostDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "gtm-thinking-before-execution", post.Slug)
	assert.NotEmpty(t, post.Title)
}

func TestGetBlogPostNotFound(t *testing.T) {
	r := newFallbackRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/blog-posts/does-not-exist", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestGetCaseStudyBySlug(t *testing.T) {
	r := newFallbackRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/case-studies/fintech-gtm-growth-scale", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var study dto.CaseStudyDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &study))
	assert.Equal(t, "WCT Pay", study.Company)
	assert.NotEmpty(t, study.Challenge)
}

func TestListCaseStudies(t *testing.T) {
	r := newFallbackRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/case-studies", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var page dto.Pagination[dto.CaseStudyDTO]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Data, 3)
	for _, cs := range page.Data {
		assert.NotEmpty(t, cs.Icon, "every study carries a presentational icon key")
	}
}
