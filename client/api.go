package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Likhithagandham/Digital-Cafe/models"
)

// Client is a typed HTTP client for the cafe API. Calls are single
// round-trips: no retries, no timeouts beyond the caller's context.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
}

// apiError is the server's {"error": message} envelope.
type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// FetchMenu returns every menu item.
func (c *Client) FetchMenu(ctx context.Context) ([]models.MenuItem, error) {
	var menu []models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/get-menu", nil, &menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// AddMenuItem creates a menu item and returns the stored document.
func (c *Client) AddMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	var created models.MenuItem
	err := c.do(ctx, http.MethodPost, "/add-menu", item, &created)
	return created, err
}

// EditMenuItem replaces the menu item with the given id.
func (c *Client) EditMenuItem(ctx context.Context, id string, item models.MenuItem) (models.MenuItem, error) {
	var updated models.MenuItem
	err := c.do(ctx, http.MethodPut, "/edit-menu/"+id, item, &updated)
	return updated, err
}

// DeleteMenuItem deletes the menu item with the given id.
func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/delete-menu/"+id, nil, nil)
}

// OrderRequest is the checkout payload: the cart's lines and its
// client-computed total, sent as-is.
type OrderRequest struct {
	Items []models.OrderItem `json:"items"`
	Total float64            `json:"total"`
}

// PlaceOrder submits a checkout snapshot and returns the created order.
func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (models.Order, error) {
	var order models.Order
	err := c.do(ctx, http.MethodPost, "/place-order", req, &order)
	return order, err
}

// FetchOrders returns all pending orders, newest first.
func (c *Client) FetchOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/get-orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CompleteOrder clears a served order.
func (c *Client) CompleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/complete-order/"+id, nil, nil)
}

// Stats mirrors the /get-stats response.
type Stats struct {
	TotalRevenue float64        `json:"totalRevenue"`
	TotalOrders  int            `json:"totalOrders"`
	ItemSales    map[string]int `json:"itemSales"`
}

// FetchStats returns the aggregate sales stats.
func (c *Client) FetchStats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := c.do(ctx, http.MethodGet, "/get-stats", nil, &stats)
	return stats, err
}
