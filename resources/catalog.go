package resources

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dev-saiful/go-storefront/core"
)

// Catalog reads the public product surface. All operations work anonymously;
// the guest session header rides along automatically.
type Catalog struct {
	client *core.Client
}

func NewCatalog(client *core.Client) *Catalog {
	return &Catalog{client: client}
}

type ListProductsRequest struct {
	Page     int
	PerPage  int
	Category string
	Search   string
	Sort     string
}

func (r ListProductsRequest) queryOptions() []core.RequestOption {
	query := map[string]string{}
	if r.Page > 0 {
		query["page"] = strconv.Itoa(r.Page)
	}
	if r.PerPage > 0 {
		query["per_page"] = strconv.Itoa(r.PerPage)
	}
	if category := strings.TrimSpace(r.Category); category != "" {
		query["category"] = category
	}
	if search := strings.TrimSpace(r.Search); search != "" {
		query["search"] = search
	}
	if sort := strings.TrimSpace(r.Sort); sort != "" {
		query["sort"] = sort
	}
	if len(query) == 0 {
		return nil
	}
	return []core.RequestOption{core.WithQuery(query)}
}

func (c *Catalog) ListProducts(ctx context.Context, req ListProductsRequest) (Page[Product], error) {
	if c == nil || c.client == nil {
		return Page[Product]{}, fmt.Errorf("resources: catalog is not configured")
	}
	envelope, err := c.client.Get(ctx, "/products", req.queryOptions()...)
	if err != nil {
		return Page[Product]{}, err
	}
	return decodePage[Product](envelope)
}

func (c *Catalog) GetProduct(ctx context.Context, id int64) (Product, error) {
	if c == nil || c.client == nil {
		return Product{}, fmt.Errorf("resources: catalog is not configured")
	}
	if id <= 0 {
		return Product{}, fmt.Errorf("resources: product id is required")
	}
	envelope, err := c.client.Get(ctx, fmt.Sprintf("/products/%d", id))
	if err != nil {
		return Product{}, err
	}
	return decodeOne[Product](envelope)
}

func (c *Catalog) ListCategories(ctx context.Context) ([]Category, error) {
	if c == nil || c.client == nil {
		return nil, fmt.Errorf("resources: catalog is not configured")
	}
	envelope, err := c.client.Get(ctx, "/categories")
	if err != nil {
		return nil, err
	}
	categories := []Category{}
	if err := envelope.DecodeData(&categories); err != nil {
		return nil, err
	}
	return categories, nil
}
