package client

import (
	"context"
	"fmt"
	"net/http"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusOnHold    OrderStatus = "on-hold"
	StatusCanceled  OrderStatus = "canceled"
	StatusFailed    OrderStatus = "failed"
	StatusCompleted OrderStatus = "completed"
)

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Country   string `json:"country"`
	Region    string `json:"region,omitempty"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

// LineItem is the wire shape for one orderable unit. Either
// ProductID+VariantID or SKU identifies it; the unused identifiers are
// omitted from the payload.
type LineItem struct {
	ProductID       string `json:"product_id,omitempty"`
	VariantID       int    `json:"variant_id,omitempty"`
	SKU             string `json:"sku,omitempty"`
	Quantity        int    `json:"quantity"`
	PrintProviderID int    `json:"print_provider_id,omitempty"`
	BlueprintID     int    `json:"blueprint_id,omitempty"`
}

// ProductLineItem is the constrained input for product/variant orders.
type ProductLineItem struct {
	ProductID string
	VariantID int
	Quantity  int
}

// SKULineItem is the constrained input for SKU orders.
type SKULineItem struct {
	SKU      string
	Quantity int
}

type OrderMetadata struct {
	OrderType      string `json:"order_type,omitempty"`
	ShopOrderID    string `json:"shop_order_id,omitempty"`
	ShopOrderLabel string `json:"shop_order_label,omitempty"`
}

type Order struct {
	ID                       string         `json:"id"`
	AddressTo                Address        `json:"address_to"`
	LineItems                []LineItem     `json:"line_items"`
	Metadata                 *OrderMetadata `json:"metadata,omitempty"`
	ShippingMethod           int            `json:"shipping_method,omitempty"`
	IsPrintifyExpress        bool           `json:"is_printify_express,omitempty"`
	IsEconomyShipping        bool           `json:"is_economy_shipping,omitempty"`
	SendShippingNotification bool           `json:"send_shipping_notification,omitempty"`
	Status                   OrderStatus    `json:"status,omitempty"`
	TotalPrice               int            `json:"total_price,omitempty"`
	TotalShipping            int            `json:"total_shipping,omitempty"`
	TotalTax                 int            `json:"total_tax,omitempty"`
	CreatedAt                string         `json:"created_at,omitempty"`
	UpdatedAt                string         `json:"updated_at,omitempty"`
}

// OrderSubmission is the single wire shape all four create operations
// produce. The three booleans are serialized unconditionally so their
// false defaults are explicit in the payload.
type OrderSubmission struct {
	ExternalID               string     `json:"external_id"`
	Label                    string     `json:"label,omitempty"`
	LineItems                []LineItem `json:"line_items"`
	ShippingMethod           int        `json:"shipping_method"`
	IsPrintifyExpress        bool       `json:"is_printify_express"`
	IsEconomyShipping        bool       `json:"is_economy_shipping"`
	SendShippingNotification bool       `json:"send_shipping_notification"`
	AddressTo                Address    `json:"address_to"`
}

// OrderUpdate carries partial order fields for PUT; keys go on the wire
// exactly as given.
type OrderUpdate map[string]any

// OrderOption toggles the submission flags; all default to false.
type OrderOption func(*OrderSubmission)

func WithPrintifyExpress() OrderOption {
	return func(s *OrderSubmission) { s.IsPrintifyExpress = true }
}

func WithEconomyShipping() OrderOption {
	return func(s *OrderSubmission) { s.IsEconomyShipping = true }
}

func WithShippingNotification() OrderOption {
	return func(s *OrderSubmission) { s.SendShippingNotification = true }
}

// newOrderSubmission is the shared assembler behind the four create
// operations; they differ only in the line-item shape they accept.
func newOrderSubmission(externalID, label string, items []LineItem, shippingMethod int, addr Address, opts ...OrderOption) OrderSubmission {
	sub := OrderSubmission{
		ExternalID:     externalID,
		Label:          label,
		LineItems:      items,
		ShippingMethod: shippingMethod,
		AddressTo:      addr,
	}
	for _, opt := range opts {
		opt(&sub)
	}
	return sub
}

func (c *Client) submitOrder(ctx context.Context, op, shopID string, sub OrderSubmission) (*Order, error) {
	if err := missingID(op, "shop id", shopID); err != nil {
		return nil, err
	}
	if len(sub.LineItems) == 0 {
		return nil, fmt.Errorf("%s: at least one line item is required", op)
	}

	var order Order
	path := shopPath(shopID, "orders.json")
	if err := c.do(ctx, http.MethodPost, path, nil, sub, &order); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &order, nil
}

// CreateOrder submits a fully caller-assembled payload.
func (c *Client) CreateOrder(ctx context.Context, shopID string, sub OrderSubmission) (*Order, error) {
	return c.submitOrder(ctx, "create order", shopID, sub)
}

// CreateOrderWithProductID orders by product id + variant id.
func (c *Client) CreateOrderWithProductID(ctx context.Context, shopID, externalID, label string, items []ProductLineItem, shippingMethod int, addr Address, opts ...OrderOption) (*Order, error) {
	lineItems := make([]LineItem, len(items))
	for i, it := range items {
		lineItems[i] = LineItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
		}
	}
	sub := newOrderSubmission(externalID, label, lineItems, shippingMethod, addr, opts...)
	return c.submitOrder(ctx, "create order", shopID, sub)
}

// CreateOrderWithSKU orders by SKU.
func (c *Client) CreateOrderWithSKU(ctx context.Context, shopID, externalID, label string, items []SKULineItem, shippingMethod int, addr Address, opts ...OrderOption) (*Order, error) {
	lineItems := make([]LineItem, len(items))
	for i, it := range items {
		lineItems[i] = LineItem{
			SKU:      it.SKU,
			Quantity: it.Quantity,
		}
	}
	sub := newOrderSubmission(externalID, label, lineItems, shippingMethod, addr, opts...)
	return c.submitOrder(ctx, "create order", shopID, sub)
}

// CreateFlexibleOrder accepts line items in either identification
// shape, mixed freely.
func (c *Client) CreateFlexibleOrder(ctx context.Context, shopID, externalID, label string, items []LineItem, shippingMethod int, addr Address, opts ...OrderOption) (*Order, error) {
	sub := newOrderSubmission(externalID, label, items, shippingMethod, addr, opts...)
	return c.submitOrder(ctx, "create order", shopID, sub)
}

func (c *Client) GetOrder(ctx context.Context, shopID, orderID string) (*Order, error) {
	if err := missingID("get order", "shop id", shopID); err != nil {
		return nil, err
	}
	if err := missingID("get order", "order id", orderID); err != nil {
		return nil, err
	}

	var order Order
	path := shopPath(shopID, "orders/"+orderID+".json")
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &order); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

func (c *Client) UpdateOrder(ctx context.Context, shopID, orderID string, update OrderUpdate) (*Order, error) {
	if err := missingID("update order", "shop id", shopID); err != nil {
		return nil, err
	}
	if err := missingID("update order", "order id", orderID); err != nil {
		return nil, err
	}

	var order Order
	path := shopPath(shopID, "orders/"+orderID+".json")
	if err := c.do(ctx, http.MethodPut, path, nil, update, &order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return &order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, shopID, orderID string) error {
	if err := missingID("delete order", "shop id", shopID); err != nil {
		return err
	}
	if err := missingID("delete order", "order id", orderID); err != nil {
		return err
	}

	path := shopPath(shopID, "orders/"+orderID+".json")
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// SendOrderToProduction releases an on-hold order for fulfillment. The
// request carries no body.
func (c *Client) SendOrderToProduction(ctx context.Context, shopID, orderID string) error {
	if err := missingID("send order to production", "shop id", shopID); err != nil {
		return err
	}
	if err := missingID("send order to production", "order id", orderID); err != nil {
		return err
	}

	path := shopPath(shopID, "orders/"+orderID+"/send_to_production.json")
	if err := c.do(ctx, http.MethodPost, path, nil, nil, nil); err != nil {
		return fmt.Errorf("send order to production: %w", err)
	}
	return nil
}
