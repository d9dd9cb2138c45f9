package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	default_address = "http://127.0.0.1:8990"
)

// Client talks to a running spesabot server.
type Client struct {
	client   *http.Client
	Endpoint string
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = default_address
	}
	return &Client{
		client:   http.DefaultClient,
		Endpoint: endpoint,
	}
}

func (c *Client) AddItem(ctx context.Context, listID, text string) (*ItemResponse, error) {
	var out ItemResponse
	path := fmt.Sprintf("v1/lists/%s/items", url.PathEscape(listID))
	if err := c.do(ctx, http.MethodPost, path, AddItemRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) List(ctx context.Context, listID string) (*ListResponse, error) {
	var out ListResponse
	path := fmt.Sprintf("v1/lists/%s", url.PathEscape(listID))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveItem removes the item at the 0-based index.
func (c *Client) RemoveItem(ctx context.Context, listID string, index int) (*ItemResponse, error) {
	var out ItemResponse
	path := fmt.Sprintf("v1/lists/%s/items/%d", url.PathEscape(listID), index)
	if err := c.do(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ClearList(ctx context.Context, listID string) error {
	path := fmt.Sprintf("v1/lists/%s", url.PathEscape(listID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) SetQuantity(ctx context.Context, listID string, index int, quantity string) error {
	path := fmt.Sprintf("v1/lists/%s/items/%d/quantity", url.PathEscape(listID), index)
	return c.do(ctx, http.MethodPut, path, SetQuantityRequest{Quantity: quantity}, nil)
}

func (c *Client) Suggest(ctx context.Context, listID string) (*AssistResponse, error) {
	return c.assist(ctx, "suggest", AssistRequest{ListID: listID})
}

func (c *Client) Categories(ctx context.Context, listID string) (*AssistResponse, error) {
	return c.assist(ctx, "categories", AssistRequest{ListID: listID})
}

func (c *Client) MealPlan(ctx context.Context, listID string) (*AssistResponse, error) {
	return c.assist(ctx, "mealplan", AssistRequest{ListID: listID})
}

func (c *Client) Ask(ctx context.Context, listID, question string) (*AssistResponse, error) {
	return c.assist(ctx, "ask", AssistRequest{ListID: listID, Question: question})
}

func (c *Client) assist(ctx context.Context, op string, in AssistRequest) (*AssistResponse, error) {
	var out AssistResponse
	if err := c.do(ctx, http.MethodPost, "v1/assist/"+op, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	urlString := fmt.Sprintf("%s/%s", c.Endpoint, path)

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, urlString, body)
	if err != nil {
		return fmt.Errorf("client failed create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		var apiErr errorResponse
		b, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(b, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("API error: status %d, %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("API error: status %d, body: %s", resp.StatusCode, string(b))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}
	return nil
}
