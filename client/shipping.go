package client

import (
	"context"
	"fmt"
	"net/http"
)

type ShippingOption struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// ShippingCosts is the vendor's cost structure, passed through
// undecoded beyond plain JSON: the set of keys (standard, express,
// priority, ...) is the vendor's to grow.
type ShippingCosts map[string]any

type shippingRequest struct {
	LineItems []LineItem `json:"line_items"`
	AddressTo Address    `json:"address_to"`
}

// GetShippingOptions lists the fulfillment methods available for a
// product.
func (c *Client) GetShippingOptions(ctx context.Context, shopID, productID string) ([]ShippingOption, error) {
	if err := missingID("get shipping options", "shop id", shopID); err != nil {
		return nil, err
	}
	if err := missingID("get shipping options", "product id", productID); err != nil {
		return nil, err
	}

	var options []ShippingOption
	path := shopPath(shopID, "products/"+productID+"/shipping.json")
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &options); err != nil {
		return nil, fmt.Errorf("get shipping options: %w", err)
	}
	return options, nil
}

// CalculateShipping quotes shipping for a would-be order.
func (c *Client) CalculateShipping(ctx context.Context, shopID string, items []LineItem, addr Address) (ShippingCosts, error) {
	if err := missingID("calculate shipping", "shop id", shopID); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("calculate shipping: at least one line item is required")
	}

	body := shippingRequest{
		LineItems: items,
		AddressTo: addr,
	}

	var costs ShippingCosts
	path := shopPath(shopID, "orders/shipping.json")
	if err := c.do(ctx, http.MethodPost, path, nil, body, &costs); err != nil {
		return nil, fmt.Errorf("calculate shipping: %w", err)
	}
	return costs, nil
}
