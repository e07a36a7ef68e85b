package resources

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dev-saiful/go-storefront/core"
)

// AdminResource is the management surface: product and category CRUD, order
// fulfillment, user listing, and inventory adjustments. The backend enforces
// the role; a non-admin caller sees the 403 classification path.
type AdminResource struct {
	client *core.Client
}

func NewAdmin(client *core.Client) *AdminResource {
	return &AdminResource{client: client}
}

type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  int64   `json:"category_id,omitempty"`
}

type CategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

func (a *AdminResource) CreateProduct(ctx context.Context, input ProductInput) (Product, error) {
	if a == nil || a.client == nil {
		return Product{}, fmt.Errorf("resources: admin resource is not configured")
	}
	if strings.TrimSpace(input.Name) == "" {
		return Product{}, fmt.Errorf("resources: product name is required")
	}
	envelope, err := a.client.Post(ctx, "/admin/products", input)
	if err != nil {
		return Product{}, err
	}
	return decodeOne[Product](envelope)
}

// CreateProductWithImages creates a product and uploads its images in one
// multipart request.
func (a *AdminResource) CreateProductWithImages(
	ctx context.Context,
	input ProductInput,
	images []FilePart,
) (Product, error) {
	if a == nil || a.client == nil {
		return Product{}, fmt.Errorf("resources: admin resource is not configured")
	}
	if strings.TrimSpace(input.Name) == "" {
		return Product{}, fmt.Errorf("resources: product name is required")
	}

	fields := map[string]string{
		"name":        input.Name,
		"description": input.Description,
		"price":       strconv.FormatFloat(input.Price, 'f', -1, 64),
		"stock":       strconv.Itoa(input.Stock),
	}
	if input.CategoryID > 0 {
		fields["category_id"] = strconv.FormatInt(input.CategoryID, 10)
	}
	contentType, body, err := EncodeMultipart(fields, images)
	if err != nil {
		return Product{}, err
	}

	envelope, err := a.client.Post(ctx, "/admin/products", nil, core.WithRawBody(contentType, body))
	if err != nil {
		return Product{}, err
	}
	return decodeOne[Product](envelope)
}

func (a *AdminResource) UpdateProduct(ctx context.Context, id int64, input ProductInput) (Product, error) {
	if a == nil || a.client == nil {
		return Product{}, fmt.Errorf("resources: admin resource is not configured")
	}
	if id <= 0 {
		return Product{}, fmt.Errorf("resources: product id is required")
	}
	envelope, err := a.client.Put(ctx, fmt.Sprintf("/admin/products/%d", id), input)
	if err != nil {
		return Product{}, err
	}
	return decodeOne[Product](envelope)
}

func (a *AdminResource) DeleteProduct(ctx context.Context, id int64) error {
	if a == nil || a.client == nil {
		return fmt.Errorf("resources: admin resource is not configured")
	}
	if id <= 0 {
		return fmt.Errorf("resources: product id is required")
	}
	_, err := a.client.Delete(ctx, fmt.Sprintf("/admin/products/%d", id))
	return err
}

func (a *AdminResource) CreateCategory(ctx context.Context, input CategoryInput) (Category, error) {
	if a == nil || a.client == nil {
		return Category{}, fmt.Errorf("resources: admin resource is not configured")
	}
	if strings.TrimSpace(input.Name) == "" {
		return Category{}, fmt.Errorf("resources: category name is required")
	}
	envelope, err := a.client.Post(ctx, "/admin/categories", input)
	if err != nil {
		return Category{}, err
	}
	return decodeOne[Category](envelope)
}

func (a *AdminResource) UpdateCategory(ctx context.Context, id int64, input CategoryInput) (Category, error) {
	if a == nil || a.client == nil {
		return Category{}, fmt.Errorf("resources: admin resource is not configured")
	}
	if id <= 0 {
		return Category{}, fmt.Errorf("resources: category id is required")
	}
	envelope, err := a.client.Put(ctx, fmt.Sprintf("/admin/categories/%d", id), input)
	if err != nil {
		return Category{}, err
	}
	return decodeOne[Category](envelope)
}

func (a *AdminResource) DeleteCategory(ctx context.Context, id int64) error {
	if a == nil || a.client == nil {
		return fmt.Errorf("resources: admin resource is not configured")
	}
	if id <= 0 {
		return fmt.Errorf("resources: category id is required")
	}
	_, err := a.client.Delete(ctx, fmt.Sprintf("/admin/categories/%d", id))
	return err
}

func (a *AdminResource) ListOrders(ctx context.Context, page int) (Page[Order], error) {
	if a == nil || a.client == nil {
		return Page[Order]{}, fmt.Errorf("resources: admin resource is not configured")
	}
	opts := []core.RequestOption{}
	if page > 0 {
		opts = append(opts, core.WithQueryParam("page", strconv.Itoa(page)))
	}
	envelope, err := a.client.Get(ctx, "/admin/orders", opts...)
	if err != nil {
		return Page[Order]{}, err
	}
	return decodePage[Order](envelope)
}

func (a *AdminResource) UpdateOrderStatus(ctx context.Context, id int64, status string) (Order, error) {
	if a == nil || a.client == nil {
		return Order{}, fmt.Errorf("resources: admin resource is not configured")
	}
	if id <= 0 {
		return Order{}, fmt.Errorf("resources: order id is required")
	}
	if strings.TrimSpace(status) == "" {
		return Order{}, fmt.Errorf("resources: order status is required")
	}
	envelope, err := a.client.Patch(ctx, fmt.Sprintf("/admin/orders/%d", id), map[string]string{"status": status})
	if err != nil {
		return Order{}, err
	}
	return decodeOne[Order](envelope)
}

func (a *AdminResource) ListUsers(ctx context.Context, page int) (Page[User], error) {
	if a == nil || a.client == nil {
		return Page[User]{}, fmt.Errorf("resources: admin resource is not configured")
	}
	opts := []core.RequestOption{}
	if page > 0 {
		opts = append(opts, core.WithQueryParam("page", strconv.Itoa(page)))
	}
	envelope, err := a.client.Get(ctx, "/admin/users", opts...)
	if err != nil {
		return Page[User]{}, err
	}
	return decodePage[User](envelope)
}

func (a *AdminResource) UpdateInventory(ctx context.Context, productID int64, stock int) (Product, error) {
	if a == nil || a.client == nil {
		return Product{}, fmt.Errorf("resources: admin resource is not configured")
	}
	if productID <= 0 {
		return Product{}, fmt.Errorf("resources: product id is required")
	}
	if stock < 0 {
		return Product{}, fmt.Errorf("resources: stock must not be negative")
	}
	envelope, err := a.client.Patch(ctx, fmt.Sprintf("/admin/products/%d/inventory", productID), map[string]int{"stock": stock})
	if err != nil {
		return Product{}, err
	}
	return decodeOne[Product](envelope)
}
