package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go-catalog/apis"
	"go-catalog/errors"
	"go-catalog/models"
	"go-catalog/objects"
)

// Client talks to the catalog API. Every request is built with the
// caller's context, so canceling the context is the cancellation token
// for an in-flight call.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Query mirrors the listing query parameters. Zero page/limit are omitted
// and the server applies its defaults.
type Query struct {
	Search string
	Page   int
	Limit  int
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status int
	Err    errors.BaseError
}

func (e *APIError) Error() string {

	if e.Err.IsNil() {
		return fmt.Sprintf("unexpected status %d", e.Status)
	}

	return e.Err.Message
}

func (c *Client) ListItems(ctx context.Context, q Query) (*models.PaginationData[objects.Item], error) {

	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	endpoint := c.baseURL + "/api/items"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var page models.PaginationData[objects.Item]
	if err := c.get(ctx, endpoint, http.StatusOK, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Client) GetItem(ctx context.Context, id int) (*objects.Item, error) {

	var item objects.Item
	endpoint := fmt.Sprintf("%s/api/items/%d", c.baseURL, id)

	if err := c.get(ctx, endpoint, http.StatusOK, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *Client) CreateItem(ctx context.Context, candidate objects.ItemCandidate) (*objects.Item, error) {

	b, err := json.Marshal(candidate)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/items", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var item objects.Item
	if err := c.do(req, http.StatusCreated, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *Client) Stats(ctx context.Context) (*objects.Stats, error) {

	var stats objects.Stats
	if err := c.get(ctx, c.baseURL+"/api/stats", http.StatusOK, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (c *Client) get(ctx context.Context, endpoint string, wantStatus int, out any) error {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	return c.do(req, wantStatus, out)
}

func (c *Client) do(req *http.Request, wantStatus int, out any) error {

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {

		apiErr := &APIError{Status: resp.StatusCode}

		var body apis.ErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Err = body.Error
		}

		return apiErr
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
