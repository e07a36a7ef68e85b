package resources

import (
	"context"
	"strings"
	"testing"

	"github.com/dev-saiful/go-storefront/core"
)

func TestOrders_Checkout(t *testing.T) {
	adapter := &fakeAdapter{}
	adapter.handler = func(req core.TransportRequest) (core.TransportResponse, error) {
		return core.TransportResponse{
			StatusCode: 201,
			Body:       jsonEnvelope(map[string]any{"id": 42, "status": "pending", "total": 118.0}),
		}, nil
	}
	orders := NewOrders(newResourceClient(t, adapter))

	order, err := orders.Checkout(context.Background(), CheckoutRequest{
		ShippingAddress: ShippingAddress{Line1: "1 Main St", City: "Dhaka", PostalCode: "1000", Country: "BD"},
		PaymentMethod:   "cod",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.ID != 42 || order.Status != "pending" {
		t.Fatalf("unexpected order: %+v", order)
	}

	req := lastRequest(t, adapter)
	requireSuffix(t, req.URL, "/api/orders")
	if !strings.Contains(string(req.Body), `"payment_method":"cod"`) {
		t.Fatalf("unexpected body: %s", req.Body)
	}
}

func TestOrders_Checkout_RequiresPaymentMethod(t *testing.T) {
	orders := NewOrders(newResourceClient(t, &fakeAdapter{}))
	_, err := orders.Checkout(context.Background(), CheckoutRequest{
		ShippingAddress: ShippingAddress{Line1: "1 Main St"},
	})
	if err == nil {
		t.Fatal("expected missing payment method to fail")
	}
}

func TestOrders_ListAndCancel(t *testing.T) {
	adapter := &fakeAdapter{}
	adapter.handler = func(req core.TransportRequest) (core.TransportResponse, error) {
		if strings.HasSuffix(req.URL, "/cancel") {
			return core.TransportResponse{
				StatusCode: 200,
				Body:       jsonEnvelope(map[string]any{"id": 42, "status": "cancelled"}),
			}, nil
		}
		return core.TransportResponse{
			StatusCode: 200,
			Body: pagedEnvelope(
				[]map[string]any{{"id": 42, "status": "pending"}},
				core.PageMeta{CurrentPage: 1, LastPage: 1, PerPage: 15, Total: 1},
			),
		}, nil
	}
	orders := NewOrders(newResourceClient(t, adapter))

	page, err := orders.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ID != 42 {
		t.Fatalf("unexpected page: %+v", page)
	}

	order, err := orders.Cancel(context.Background(), 42)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if order.Status != "cancelled" {
		t.Fatalf("unexpected order: %+v", order)
	}
	requireSuffix(t, lastRequest(t, adapter).URL, "/api/orders/42/cancel")
}
