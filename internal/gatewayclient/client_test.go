package gatewayclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adichatupes-source/Portfolio/internal/gatewayclient"
)

func TestListBlogPosts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "blogs", r.URL.Query().Get("type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"1","slug":"a-post","title":"A Post","author":{"name":"Aditya"}}]`))
	}))
	defer server.Close()

	client := gatewayclient.New(server.URL)
	posts, err := client.ListBlogPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "a-post", posts[0].Slug)
	assert.Equal(t, "Aditya", posts[0].Author.Name)
}

func TestListCaseStudiesSelector(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "case-studies", r.URL.Query().Get("type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"cs","slug":"a-study","challenge":["one","two"]}]`))
	}))
	defer server.Close()

	client := gatewayclient.New(server.URL)
	studies, err := client.ListCaseStudies(context.Background())
	require.NoError(t, err)
	require.Len(t, studies, 1)
	assert.Equal(t, []string{"one", "two"}, studies[0].Challenge)
}

func TestNonSuccessStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Missing Notion environment variables."}`))
	}))
	defer server.Close()

	client := gatewayclient.New(server.URL)
	_, err := client.ListBlogPosts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=500")
}

func TestMalformedBodyIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	client := gatewayclient.New(server.URL)
	_, err := client.ListBlogPosts(context.Background())
	require.Error(t, err)
}
