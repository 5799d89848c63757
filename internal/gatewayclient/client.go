// Package gatewayclient is a thin typed client for the content gateway's
// single endpoint. It knows nothing about caching or fallback; it fetches
// and decodes, and reports every failure as an error for the access layer
// to absorb.
package gatewayclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/adichatupes-source/Portfolio/internal/content"
	"github.com/adichatupes-source/Portfolio/internal/httpclient"
)

type Client struct {
	base *httpclient.BaseClient
}

// New creates a client for the given content endpoint URL
// (e.g. http://localhost:8080/api/content).
func New(baseURL string) *Client {
	return &Client{base: httpclient.NewBaseClient(baseURL)}
}

// NewWithHTTPClient exists so tests can inject an instrumented http.Client.
func NewWithHTTPClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{base: httpclient.NewBaseClientWithClient(httpClient, baseURL)}
}

// ListBlogPosts fetches the mapped blog post list from the gateway.
func (c *Client) ListBlogPosts(ctx context.Context) ([]content.BlogPost, error) {
	var out []content.BlogPost
	if err := c.list(ctx, "blogs", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCaseStudies fetches the mapped case study list from the gateway.
func (c *Client) ListCaseStudies(ctx context.Context) ([]content.CaseStudy, error) {
	var out []content.CaseStudy
	if err := c.list(ctx, "case-studies", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) list(ctx context.Context, selector string, out any) error {
	q := url.Values{}
	q.Set("type", selector)
	req, err := c.base.NewRequest(ctx, http.MethodGet, "", q, nil)
	if err != nil {
		return err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("gateway list %s: status=%d body=%s", selector, resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
