package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/adichatupes-source/Portfolio/internal/httpclient"
)

// DefaultBaseURL is the public Notion API host.
const DefaultBaseURL = "https://api.notion.com"

// notionVersion pins the data-source API revision.
const notionVersion = "2025-09-03"

// Client is a thin client for the Notion data-source query API. It knows
// nothing about our record shapes; it only authenticates and decodes pages.
type Client struct {
	base  *httpclient.BaseClient
	token string
}

func NewClient(token string) *Client {
	return NewClientWithBaseURL(token, DefaultBaseURL)
}

// NewClientWithBaseURL exists so tests can point the client at a stub server.
func NewClientWithBaseURL(token, baseURL string) *Client {
	return &Client{
		base:  httpclient.NewBaseClient(baseURL),
		token: token,
	}
}

type queryResponse struct {
	Results []Page `json:"results"`
}

// QueryDataSource fetches all records of one data source. Only the first
// page as returned by the upstream default is requested; the cursor is not
// followed.
func (c *Client) QueryDataSource(ctx context.Context, dataSourceID string) ([]Page, error) {
	relPath := path.Join("/v1/data_sources", dataSourceID, "query")
	req, err := c.base.NewRequest(ctx, http.MethodPost, relPath, nil, bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", notionVersion)

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// decodeError surfaces the upstream error message verbatim when the body is
// a Notion error object, and the raw body otherwise.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))

	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return fmt.Errorf("%s", e.Message)
	}
	return fmt.Errorf("notion: status=%d body=%s", resp.StatusCode, string(body))
}
