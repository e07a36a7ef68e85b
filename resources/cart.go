package resources

import (
	"context"
	"fmt"

	"github.com/dev-saiful/go-storefront/core"
)

// CartResource manages the shopping cart. The backend keys guest carts to
// the session header and authenticated carts to the bearer token, so the
// same calls serve both.
type CartResource struct {
	client *core.Client
}

func NewCart(client *core.Client) *CartResource {
	return &CartResource{client: client}
}

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (c *CartResource) Get(ctx context.Context) (Cart, error) {
	if c == nil || c.client == nil {
		return Cart{}, fmt.Errorf("resources: cart is not configured")
	}
	envelope, err := c.client.Get(ctx, "/cart")
	if err != nil {
		return Cart{}, err
	}
	return decodeOne[Cart](envelope)
}

func (c *CartResource) AddItem(ctx context.Context, req AddCartItemRequest) (Cart, error) {
	if c == nil || c.client == nil {
		return Cart{}, fmt.Errorf("resources: cart is not configured")
	}
	if req.ProductID <= 0 {
		return Cart{}, fmt.Errorf("resources: product id is required")
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	envelope, err := c.client.Post(ctx, "/cart/items", req)
	if err != nil {
		return Cart{}, err
	}
	return decodeOne[Cart](envelope)
}

func (c *CartResource) UpdateItem(ctx context.Context, itemID int64, req UpdateCartItemRequest) (Cart, error) {
	if c == nil || c.client == nil {
		return Cart{}, fmt.Errorf("resources: cart is not configured")
	}
	if itemID <= 0 {
		return Cart{}, fmt.Errorf("resources: cart item id is required")
	}
	if req.Quantity <= 0 {
		return Cart{}, fmt.Errorf("resources: quantity must be positive")
	}
	envelope, err := c.client.Put(ctx, fmt.Sprintf("/cart/items/%d", itemID), req)
	if err != nil {
		return Cart{}, err
	}
	return decodeOne[Cart](envelope)
}

func (c *CartResource) RemoveItem(ctx context.Context, itemID int64) (Cart, error) {
	if c == nil || c.client == nil {
		return Cart{}, fmt.Errorf("resources: cart is not configured")
	}
	if itemID <= 0 {
		return Cart{}, fmt.Errorf("resources: cart item id is required")
	}
	envelope, err := c.client.Delete(ctx, fmt.Sprintf("/cart/items/%d", itemID))
	if err != nil {
		return Cart{}, err
	}
	return decodeOne[Cart](envelope)
}

func (c *CartResource) Clear(ctx context.Context) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("resources: cart is not configured")
	}
	_, err := c.client.Delete(ctx, "/cart")
	return err
}
