package client

import (
	"context"
	"fmt"
	"net/http"
)

type Shop struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Currency     string `json:"currency,omitempty"`
	SalesChannel string `json:"sales_channel,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// ListShops returns every shop the access token can see.
func (c *Client) ListShops(ctx context.Context) ([]Shop, error) {
	var shops []Shop
	if err := c.do(ctx, http.MethodGet, "shops.json", nil, nil, &shops); err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	return shops, nil
}
