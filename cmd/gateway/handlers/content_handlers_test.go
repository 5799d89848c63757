package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adichatupes-source/Portfolio/cmd/gateway/router"
	"github.com/adichatupes-source/Portfolio/config"
	"github.com/adichatupes-source/Portfolio/internal/content"
	"github.com/adichatupes-source/Portfolio/internal/notion"
)

const (
	blogDataSrcID  = "blog-src-123"
	studyDataSrcID = "study-src-456"
)

// notionStub records queried data source IDs and serves a canned response.
type notionStub struct {
	server   *httptest.Server
	lastPath atomic.Value
	calls    int32
	status   int
	body     string
}

func newNotionStub(status int, body string) *notionStub {
	s := &notionStub{status: status, body: body}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastPath.Store(r.URL.Path)
		atomic.AddInt32(&s.calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		w.Write([]byte(s.body))
	}))
	return s
}

func (s *notionStub) queriedPath() string {
	p, _ := s.lastPath.Load().(string)
	return p
}

func testConfig() config.AppConfig {
	return config.AppConfig{
		Gateway: config.GatewayConfig{
			AllowedOrigins: []string{"https://clickszy.com"},
		},
	}
}

func testSecrets() config.NotionSecrets {
	return config.NotionSecrets{
		Token:              "secret-token",
		BlogPostsDataSrcID: blogDataSrcID,
		CaseStudyDataSrcID: studyDataSrcID,
	}
}

func newTestRouter(secrets config.NotionSecrets, stub *notionStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	var client *notion.Client
	if stub != nil {
		client = notion.NewClientWithBaseURL(secrets.Token, stub.server.URL)
	}
	return router.New(testConfig(), secrets, client)
}

func TestMissingSecretsFailBeforeUpstreamCall(t *testing.T) {
	stub := newNotionStub(http.StatusOK, `{"results":[]}`)
	defer stub.server.Close()
	r := newTestRouter(config.NotionSecrets{}, stub)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Missing Notion environment variables."}`, rec.Body.String())
	assert.Equal(t, int32(0), atomic.LoadInt32(&stub.calls), "no upstream call on a configuration error")
}

func TestSelectorResolvesDataSource(t *testing.T) {
	testCases := []struct {
		name      string
		query     string
		wantSrcID string
	}{
		{name: "case-studies selector", query: "?type=case-studies", wantSrcID: studyDataSrcID},
		{name: "casestudies alias", query: "?type=casestudies", wantSrcID: studyDataSrcID},
		{name: "blogs selector", query: "?type=blogs", wantSrcID: blogDataSrcID},
		{name: "unknown selector defaults to blog posts", query: "?type=bogus", wantSrcID: blogDataSrcID},
		{name: "absent selector defaults to blog posts", query: "", wantSrcID: blogDataSrcID},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			stub := newNotionStub(http.StatusOK, `{"results":[]}`)
			defer stub.server.Close()
			r := newTestRouter(testSecrets(), stub)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content"+testCase.query, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, strings.Contains(stub.queriedPath(), testCase.wantSrcID),
				"queried %s, want data source %s", stub.queriedPath(), testCase.wantSrcID)
			assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()), "empty result set is an empty array")
		})
	}
}

func TestBlogPostsAreMapped(t *testing.T) {
	stub := newNotionStub(http.StatusOK, `{"results":[
		{
			"id": "page-1",
			"url": "https://www.notion.so/page-1",
			"properties": {
				"Slug": {"type": "rich_text", "rich_text": [{"plain_text": "hello-world"}]},
				"Blog Title": {"type": "title", "title": [{"plain_text": "Hello World"}]},
				"Excerpt": {"type": "rich_text", "rich_text": [{"plain_text": "The teaser."}]},
				"Category": {"type": "select", "select": {"name": "Fintech"}},
				"Status": {"type": "status", "status": {"name": "Publish", "color": "green"}}
			}
		},
		{"id": "page-2"}
	]}`)
	defer stub.server.Close()
	r := newTestRouter(testSecrets(), stub)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var posts []content.BlogPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 2)

	assert.Equal(t, "hello-world", posts[0].Slug)
	assert.Equal(t, "Hello World", posts[0].Title)
	assert.Equal(t, "The teaser.", posts[0].Excerpt)
	assert.Equal(t, posts[0].Excerpt, posts[0].Content)
	assert.Equal(t, "Fintech", posts[0].Category)
	assert.Equal(t, "Publish", posts[0].Status)
	assert.Equal(t, "green", posts[0].StatusColor)

	// A record without properties degrades field-by-field, it does not
	// abort the batch.
	assert.Equal(t, "page-2", posts[1].ID)
	assert.Empty(t, posts[1].Title)
}

func TestCaseStudiesAreMapped(t *testing.T) {
	stub := newNotionStub(http.StatusOK, `{"results":[
		{
			"id": "cs-1",
			"properties": {
				"Slug": {"type": "rich_text", "rich_text": [{"plain_text": "a-study"}]},
				"Title": {"type": "title", "title": [{"plain_text": "A Study"}]},
				"Company": {"type": "rich_text", "rich_text": [{"plain_text": "Acme"}]},
				"Challenge": {"type": "rich_text", "rich_text": [{"plain_text": "A\n\nB\nC"}]},
				"Industry": {"type": "select", "select": {"name": "Fintech / Payments"}}
			}
		}
	]}`)
	defer stub.server.Close()
	r := newTestRouter(testSecrets(), stub)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content?type=case-studies", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var studies []content.CaseStudy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &studies))
	require.Len(t, studies, 1)
	assert.Equal(t, "a-study", studies[0].Slug)
	assert.Equal(t, "Acme", studies[0].Company)
	assert.Equal(t, []string{"A", "B", "C"}, studies[0].Challenge)
	assert.NotNil(t, studies[0].Actions)
	assert.Len(t, studies[0].Actions, 0)
}

func TestUpstreamErrorMessageIsForwarded(t *testing.T) {
	stub := newNotionStub(http.StatusBadRequest, `{"object":"error","message":"Could not find data source."}`)
	defer stub.server.Close()
	r := newTestRouter(testSecrets(), stub)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Could not find data source."}`, rec.Body.String())
}
