package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type Product struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	Options         []ProductOption `json:"options,omitempty"`
	Variants        []Variant       `json:"variants,omitempty"`
	Images          []ProductImage  `json:"images,omitempty"`
	BlueprintID     int             `json:"blueprint_id,omitempty"`
	PrintProviderID int             `json:"print_provider_id,omitempty"`
	Visible         bool            `json:"visible,omitempty"`
	// Vendor timestamps are not RFC 3339; passed through verbatim.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type ProductOption struct {
	Name   string               `json:"name"`
	Type   string               `json:"type,omitempty"`
	Values []ProductOptionValue `json:"values,omitempty"`
}

type ProductOptionValue struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type Variant struct {
	ID           int           `json:"id"`
	SKU          string        `json:"sku,omitempty"`
	Price        int           `json:"price"` // minor currency units
	Title        string        `json:"title,omitempty"`
	Options      []int         `json:"options,omitempty"`
	Placeholders []Placeholder `json:"placeholders,omitempty"`
	IsDefault    bool          `json:"is_default,omitempty"`
	IsEnabled    bool          `json:"is_enabled,omitempty"`
}

type Placeholder struct {
	Position string             `json:"position"`
	Images   []PlaceholderImage `json:"images,omitempty"`
}

type PlaceholderImage struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
	Angle float64 `json:"angle"`
}

type ProductImage struct {
	Src        string `json:"src"`
	VariantIDs []int  `json:"variant_ids,omitempty"`
	Position   string `json:"position,omitempty"`
	IsDefault  bool   `json:"is_default,omitempty"`
}

// ListProductsParams are pass-through pagination knobs; zero values are
// omitted from the query string.
type ListProductsParams struct {
	Page  int
	Limit int
}

// publishFlags is the fixed publish body: every publishable field is
// always marked as included, regardless of the product's completeness.
// "keyFeatures" is camelCase on the wire; that is the vendor's spelling.
type publishFlags struct {
	Title            bool `json:"title"`
	Description      bool `json:"description"`
	Images           bool `json:"images"`
	Variants         bool `json:"variants"`
	Tags             bool `json:"tags"`
	KeyFeatures      bool `json:"keyFeatures"`
	ShippingTemplate bool `json:"shipping_template"`
}

type publishSucceeded struct {
	External struct {
		ID     string `json:"id"`
		Handle string `json:"handle"`
	} `json:"external"`
}

func (c *Client) ListProducts(ctx context.Context, shopID string, params ListProductsParams) ([]Product, error) {
	if err := missingID("list products", "shop id", shopID); err != nil {
		return nil, err
	}

	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	var products []Product
	path := shopPath(shopID, "products.json")
	if err := c.do(ctx, http.MethodGet, path, query, nil, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, shopID, productID string) (*Product, error) {
	if err := missingID("get product", "shop id", shopID); err != nil {
		return nil, err
	}
	if err := missingID("get product", "product id", productID); err != nil {
		return nil, err
	}

	var product Product
	path := shopPath(shopID, "products/"+productID+".json")
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &product); err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, shopID, productID string) error {
	if err := missingID("delete product", "shop id", shopID); err != nil {
		return err
	}
	if err := missingID("delete product", "product id", productID); err != nil {
		return err
	}

	path := shopPath(shopID, "products/"+productID+".json")
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// PublishProduct pushes the product's listing to the connected
// storefront. The body always flags all seven publishable fields.
func (c *Client) PublishProduct(ctx context.Context, shopID, productID string) error {
	if err := missingID("publish product", "shop id", shopID); err != nil {
		return err
	}
	if err := missingID("publish product", "product id", productID); err != nil {
		return err
	}

	body := publishFlags{
		Title:            true,
		Description:      true,
		Images:           true,
		Variants:         true,
		Tags:             true,
		KeyFeatures:      true,
		ShippingTemplate: true,
	}
	path := shopPath(shopID, "products/"+productID+"/publish.json")
	if err := c.do(ctx, http.MethodPost, path, nil, body, nil); err != nil {
		return fmt.Errorf("publish product: %w", err)
	}
	return nil
}

// SetPublishingSucceeded tells the vendor a publish completed on the
// caller's side, linking the product to its storefront listing.
func (c *Client) SetPublishingSucceeded(ctx context.Context, shopID, productID, handle, externalID string) error {
	if err := missingID("set publishing succeeded", "shop id", shopID); err != nil {
		return err
	}
	if err := missingID("set publishing succeeded", "product id", productID); err != nil {
		return err
	}
	if err := missingID("set publishing succeeded", "handle", handle); err != nil {
		return err
	}
	if err := missingID("set publishing succeeded", "external id", externalID); err != nil {
		return err
	}

	var body publishSucceeded
	body.External.ID = externalID
	body.External.Handle = handle

	path := shopPath(shopID, "products/"+productID+"/publishing_succeeded.json")
	if err := c.do(ctx, http.MethodPost, path, nil, body, nil); err != nil {
		return fmt.Errorf("set publishing succeeded: %w", err)
	}
	return nil
}
