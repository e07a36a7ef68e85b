package resources

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dev-saiful/go-storefront/core"
)

// OrdersResource covers checkout and the customer's order history. All
// operations require an authenticated session.
type OrdersResource struct {
	client *core.Client
}

func NewOrders(client *core.Client) *OrdersResource {
	return &OrdersResource{client: client}
}

type ShippingAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type CheckoutRequest struct {
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
	Notes           string          `json:"notes,omitempty"`
}

func (o *OrdersResource) Checkout(ctx context.Context, req CheckoutRequest) (Order, error) {
	if o == nil || o.client == nil {
		return Order{}, fmt.Errorf("resources: orders resource is not configured")
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return Order{}, fmt.Errorf("resources: payment method is required")
	}
	if strings.TrimSpace(req.ShippingAddress.Line1) == "" {
		return Order{}, fmt.Errorf("resources: shipping address is required")
	}
	envelope, err := o.client.Post(ctx, "/orders", req)
	if err != nil {
		return Order{}, err
	}
	return decodeOne[Order](envelope)
}

func (o *OrdersResource) List(ctx context.Context, page int) (Page[Order], error) {
	if o == nil || o.client == nil {
		return Page[Order]{}, fmt.Errorf("resources: orders resource is not configured")
	}
	opts := []core.RequestOption{}
	if page > 0 {
		opts = append(opts, core.WithQueryParam("page", strconv.Itoa(page)))
	}
	envelope, err := o.client.Get(ctx, "/orders", opts...)
	if err != nil {
		return Page[Order]{}, err
	}
	return decodePage[Order](envelope)
}

func (o *OrdersResource) Get(ctx context.Context, id int64) (Order, error) {
	if o == nil || o.client == nil {
		return Order{}, fmt.Errorf("resources: orders resource is not configured")
	}
	if id <= 0 {
		return Order{}, fmt.Errorf("resources: order id is required")
	}
	envelope, err := o.client.Get(ctx, fmt.Sprintf("/orders/%d", id))
	if err != nil {
		return Order{}, err
	}
	return decodeOne[Order](envelope)
}

func (o *OrdersResource) Cancel(ctx context.Context, id int64) (Order, error) {
	if o == nil || o.client == nil {
		return Order{}, fmt.Errorf("resources: orders resource is not configured")
	}
	if id <= 0 {
		return Order{}, fmt.Errorf("resources: order id is required")
	}
	envelope, err := o.client.Post(ctx, fmt.Sprintf("/orders/%d/cancel", id), nil)
	if err != nil {
		return Order{}, err
	}
	return decodeOne[Order](envelope)
}
