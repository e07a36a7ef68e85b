package resources

import (
	"context"
	"fmt"

	"github.com/dev-saiful/go-storefront/core"
)

type WishlistResource struct {
	client *core.Client
}

func NewWishlist(client *core.Client) *WishlistResource {
	return &WishlistResource{client: client}
}

func (w *WishlistResource) List(ctx context.Context) ([]WishlistItem, error) {
	if w == nil || w.client == nil {
		return nil, fmt.Errorf("resources: wishlist resource is not configured")
	}
	envelope, err := w.client.Get(ctx, "/wishlist")
	if err != nil {
		return nil, err
	}
	items := []WishlistItem{}
	if err := envelope.DecodeData(&items); err != nil {
		return nil, err
	}
	return items, nil
}

func (w *WishlistResource) Add(ctx context.Context, productID int64) error {
	if w == nil || w.client == nil {
		return fmt.Errorf("resources: wishlist resource is not configured")
	}
	if productID <= 0 {
		return fmt.Errorf("resources: product id is required")
	}
	_, err := w.client.Post(ctx, "/wishlist", map[string]int64{"product_id": productID})
	return err
}

func (w *WishlistResource) Remove(ctx context.Context, productID int64) error {
	if w == nil || w.client == nil {
		return fmt.Errorf("resources: wishlist resource is not configured")
	}
	if productID <= 0 {
		return fmt.Errorf("resources: product id is required")
	}
	_, err := w.client.Delete(ctx, fmt.Sprintf("/wishlist/%d", productID))
	return err
}
