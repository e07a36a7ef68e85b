package command

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	gocmd "github.com/goliatone/go-command"

	"github.com/dev-saiful/go-storefront/core"
	"github.com/dev-saiful/go-storefront/resources"
)

func TestLoginCommand_ExecuteDelegatesAndStoresResult(t *testing.T) {
	expected := core.AuthSession{
		Credential: core.Credential{AccessToken: "tok", RefreshToken: "ref"},
	}
	called := false

	svc := stubAuthService{
		loginFn: func(_ context.Context, req core.LoginRequest) (core.AuthSession, error) {
			called = true
			if req.Email != "jo@example.com" {
				t.Fatalf("expected login email, got %q", req.Email)
			}
			return expected, nil
		},
	}

	cmd := NewLoginCommand(svc)
	collector := gocmd.NewResult[core.AuthSession]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)

	err := cmd.Execute(ctx, LoginMessage{Request: core.LoginRequest{
		Email:    "jo@example.com",
		Password: "secret",
	}})
	if err != nil {
		t.Fatalf("execute login: %v", err)
	}
	if !called {
		t.Fatalf("expected login service invocation")
	}
	result, ok := collector.Load()
	if !ok {
		t.Fatalf("expected result to be stored")
	}
	if result.Credential.AccessToken != expected.Credential.AccessToken {
		t.Fatalf("unexpected result: %#v", result)
	}
}

func TestAuthCommands_DelegateToService(t *testing.T) {
	t.Run("logout", func(t *testing.T) {
		called := false
		svc := stubAuthService{
			logoutFn: func(_ context.Context) error {
				called = true
				return nil
			},
		}
		cmd := NewLogoutCommand(svc)
		if err := cmd.Execute(context.Background(), LogoutMessage{}); err != nil {
			t.Fatalf("execute logout: %v", err)
		}
		if !called {
			t.Fatalf("expected logout invocation")
		}
	})

	t.Run("refresh session", func(t *testing.T) {
		expected := core.Credential{AccessToken: "tok2", RefreshToken: "ref2"}
		svc := stubAuthService{
			refreshSessionFn: func(_ context.Context) (core.Credential, error) {
				return expected, nil
			},
		}
		cmd := NewRefreshSessionCommand(svc)
		collector := gocmd.NewResult[core.Credential]()
		ctx := gocmd.ContextWithResult(context.Background(), collector)
		if err := cmd.Execute(ctx, RefreshSessionMessage{}); err != nil {
			t.Fatalf("execute refresh session: %v", err)
		}
		stored, ok := collector.Load()
		if !ok {
			t.Fatalf("expected credential result")
		}
		if stored.AccessToken != expected.AccessToken {
			t.Fatalf("unexpected credential: %#v", stored)
		}
	})
}

func TestCartCommands_DelegateToService(t *testing.T) {
	cart := resources.Cart{Items: []resources.CartItem{{ID: 11, ProductID: 3, Quantity: 2}}}

	t.Run("add item", func(t *testing.T) {
		called := false
		svc := stubCartService{
			addItemFn: func(_ context.Context, req resources.AddCartItemRequest) (resources.Cart, error) {
				called = true
				if req.ProductID != 3 {
					t.Fatalf("unexpected product id %d", req.ProductID)
				}
				return cart, nil
			},
		}
		cmd := NewAddCartItemCommand(svc)
		collector := gocmd.NewResult[resources.Cart]()
		ctx := gocmd.ContextWithResult(context.Background(), collector)
		if err := cmd.Execute(ctx, AddCartItemMessage{Request: resources.AddCartItemRequest{ProductID: 3, Quantity: 2}}); err != nil {
			t.Fatalf("execute add item: %v", err)
		}
		if !called {
			t.Fatalf("expected add item invocation")
		}
		stored, ok := collector.Load()
		if !ok || len(stored.Items) != 1 {
			t.Fatalf("unexpected cart result: %#v", stored)
		}
	})

	t.Run("update item", func(t *testing.T) {
		svc := stubCartService{
			updateItemFn: func(_ context.Context, itemID int64, req resources.UpdateCartItemRequest) (resources.Cart, error) {
				if itemID != 11 || req.Quantity != 4 {
					t.Fatalf("unexpected update payload: %d %d", itemID, req.Quantity)
				}
				return cart, nil
			},
		}
		cmd := NewUpdateCartItemCommand(svc)
		msg := UpdateCartItemMessage{ItemID: 11, Request: resources.UpdateCartItemRequest{Quantity: 4}}
		if err := cmd.Execute(context.Background(), msg); err != nil {
			t.Fatalf("execute update item: %v", err)
		}
	})

	t.Run("clear", func(t *testing.T) {
		called := false
		svc := stubCartService{
			clearFn: func(_ context.Context) error {
				called = true
				return nil
			},
		}
		cmd := NewClearCartCommand(svc)
		if err := cmd.Execute(context.Background(), ClearCartMessage{}); err != nil {
			t.Fatalf("execute clear: %v", err)
		}
		if !called {
			t.Fatalf("expected clear invocation")
		}
	})
}

func TestCheckoutCommand_StoresOrder(t *testing.T) {
	expected := resources.Order{ID: 42, Status: "pending"}
	svc := stubCheckoutService{
		checkoutFn: func(_ context.Context, req resources.CheckoutRequest) (resources.Order, error) {
			if req.PaymentMethod != "cod" {
				t.Fatalf("unexpected payment method %q", req.PaymentMethod)
			}
			return expected, nil
		},
	}
	cmd := NewCheckoutCommand(svc)
	collector := gocmd.NewResult[resources.Order]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)

	err := cmd.Execute(ctx, CheckoutMessage{Request: resources.CheckoutRequest{
		ShippingAddress: resources.ShippingAddress{Line1: "1 Main St"},
		PaymentMethod:   "cod",
	}})
	if err != nil {
		t.Fatalf("execute checkout: %v", err)
	}
	stored, ok := collector.Load()
	if !ok || stored.ID != expected.ID {
		t.Fatalf("unexpected order result: %#v", stored)
	}
}

func TestReviewAndWishlistCommands_DelegateToService(t *testing.T) {
	t.Run("submit review", func(t *testing.T) {
		svc := stubReviewService{
			submitFn: func(_ context.Context, productID int64, req resources.SubmitReviewRequest) (resources.Review, error) {
				if productID != 3 || req.Rating != 5 {
					t.Fatalf("unexpected review payload: %d %d", productID, req.Rating)
				}
				return resources.Review{ID: 9, Rating: 5}, nil
			},
		}
		cmd := NewSubmitReviewCommand(svc)
		msg := SubmitReviewMessage{ProductID: 3, Request: resources.SubmitReviewRequest{Rating: 5, Comment: "great"}}
		if err := cmd.Execute(context.Background(), msg); err != nil {
			t.Fatalf("execute submit review: %v", err)
		}
	})

	t.Run("wishlist add and remove", func(t *testing.T) {
		added, removed := int64(0), int64(0)
		svc := stubWishlistService{
			addFn:    func(_ context.Context, productID int64) error { added = productID; return nil },
			removeFn: func(_ context.Context, productID int64) error { removed = productID; return nil },
		}
		if err := NewAddWishlistItemCommand(svc).Execute(context.Background(), AddWishlistItemMessage{ProductID: 3}); err != nil {
			t.Fatalf("execute add wishlist: %v", err)
		}
		if err := NewRemoveWishlistItemCommand(svc).Execute(context.Background(), RemoveWishlistItemMessage{ProductID: 3}); err != nil {
			t.Fatalf("execute remove wishlist: %v", err)
		}
		if added != 3 || removed != 3 {
			t.Fatalf("unexpected wishlist invocations: %d %d", added, removed)
		}
	})
}

func TestCommandMessages_Validate(t *testing.T) {
	tests := []struct {
		name    string
		msg     interface{ Validate() error }
		wantErr bool
	}{
		{name: "login ok", msg: LoginMessage{Request: core.LoginRequest{Email: "a@b.c", Password: "x"}}},
		{name: "login missing email", msg: LoginMessage{Request: core.LoginRequest{Password: "x"}}, wantErr: true},
		{name: "register mismatch", msg: RegisterMessage{Request: core.RegisterRequest{
			Name: "Jo", Email: "a@b.c", Password: "x", PasswordConfirmation: "y",
		}}, wantErr: true},
		{name: "verify email missing token", msg: VerifyEmailMessage{Request: core.VerifyEmailRequest{Email: "a@b.c"}}, wantErr: true},
		{name: "add cart item missing product", msg: AddCartItemMessage{}, wantErr: true},
		{name: "update cart item zero quantity", msg: UpdateCartItemMessage{ItemID: 11}, wantErr: true},
		{name: "checkout missing payment method", msg: CheckoutMessage{Request: resources.CheckoutRequest{
			ShippingAddress: resources.ShippingAddress{Line1: "1 Main St"},
		}}, wantErr: true},
		{name: "cancel order missing id", msg: CancelOrderMessage{}, wantErr: true},
		{name: "submit review bad rating", msg: SubmitReviewMessage{ProductID: 3, Request: resources.SubmitReviewRequest{Rating: 6}}, wantErr: true},
		{name: "wishlist ok", msg: AddWishlistItemMessage{ProductID: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

type stubAuthService struct {
	loginFn          func(ctx context.Context, req core.LoginRequest) (core.AuthSession, error)
	registerFn       func(ctx context.Context, req core.RegisterRequest) (core.Envelope, error)
	verifyEmailFn    func(ctx context.Context, req core.VerifyEmailRequest) (core.AuthSession, error)
	logoutFn         func(ctx context.Context) error
	refreshSessionFn func(ctx context.Context) (core.Credential, error)
	meFn             func(ctx context.Context) (json.RawMessage, error)
}

func (s stubAuthService) Login(ctx context.Context, req core.LoginRequest) (core.AuthSession, error) {
	if s.loginFn == nil {
		return core.AuthSession{}, fmt.Errorf("login not configured")
	}
	return s.loginFn(ctx, req)
}

func (s stubAuthService) Register(ctx context.Context, req core.RegisterRequest) (core.Envelope, error) {
	if s.registerFn == nil {
		return core.Envelope{}, fmt.Errorf("register not configured")
	}
	return s.registerFn(ctx, req)
}

func (s stubAuthService) VerifyEmail(ctx context.Context, req core.VerifyEmailRequest) (core.AuthSession, error) {
	if s.verifyEmailFn == nil {
		return core.AuthSession{}, fmt.Errorf("verify email not configured")
	}
	return s.verifyEmailFn(ctx, req)
}

func (s stubAuthService) Logout(ctx context.Context) error {
	if s.logoutFn == nil {
		return fmt.Errorf("logout not configured")
	}
	return s.logoutFn(ctx)
}

func (s stubAuthService) RefreshSession(ctx context.Context) (core.Credential, error) {
	if s.refreshSessionFn == nil {
		return core.Credential{}, fmt.Errorf("refresh session not configured")
	}
	return s.refreshSessionFn(ctx)
}

func (s stubAuthService) Me(ctx context.Context) (json.RawMessage, error) {
	if s.meFn == nil {
		return nil, fmt.Errorf("me not configured")
	}
	return s.meFn(ctx)
}

type stubCartService struct {
	addItemFn    func(ctx context.Context, req resources.AddCartItemRequest) (resources.Cart, error)
	updateItemFn func(ctx context.Context, itemID int64, req resources.UpdateCartItemRequest) (resources.Cart, error)
	removeItemFn func(ctx context.Context, itemID int64) (resources.Cart, error)
	clearFn      func(ctx context.Context) error
}

func (s stubCartService) AddItem(ctx context.Context, req resources.AddCartItemRequest) (resources.Cart, error) {
	if s.addItemFn == nil {
		return resources.Cart{}, fmt.Errorf("add item not configured")
	}
	return s.addItemFn(ctx, req)
}

func (s stubCartService) UpdateItem(ctx context.Context, itemID int64, req resources.UpdateCartItemRequest) (resources.Cart, error) {
	if s.updateItemFn == nil {
		return resources.Cart{}, fmt.Errorf("update item not configured")
	}
	return s.updateItemFn(ctx, itemID, req)
}

func (s stubCartService) RemoveItem(ctx context.Context, itemID int64) (resources.Cart, error) {
	if s.removeItemFn == nil {
		return resources.Cart{}, fmt.Errorf("remove item not configured")
	}
	return s.removeItemFn(ctx, itemID)
}

func (s stubCartService) Clear(ctx context.Context) error {
	if s.clearFn == nil {
		return fmt.Errorf("clear not configured")
	}
	return s.clearFn(ctx)
}

type stubCheckoutService struct {
	checkoutFn func(ctx context.Context, req resources.CheckoutRequest) (resources.Order, error)
	cancelFn   func(ctx context.Context, id int64) (resources.Order, error)
}

func (s stubCheckoutService) Checkout(ctx context.Context, req resources.CheckoutRequest) (resources.Order, error) {
	if s.checkoutFn == nil {
		return resources.Order{}, fmt.Errorf("checkout not configured")
	}
	return s.checkoutFn(ctx, req)
}

func (s stubCheckoutService) Cancel(ctx context.Context, id int64) (resources.Order, error) {
	if s.cancelFn == nil {
		return resources.Order{}, fmt.Errorf("cancel not configured")
	}
	return s.cancelFn(ctx, id)
}

type stubReviewService struct {
	submitFn func(ctx context.Context, productID int64, req resources.SubmitReviewRequest) (resources.Review, error)
	deleteFn func(ctx context.Context, reviewID int64) error
}

func (s stubReviewService) Submit(ctx context.Context, productID int64, req resources.SubmitReviewRequest) (resources.Review, error) {
	if s.submitFn == nil {
		return resources.Review{}, fmt.Errorf("submit not configured")
	}
	return s.submitFn(ctx, productID, req)
}

func (s stubReviewService) Delete(ctx context.Context, reviewID int64) error {
	if s.deleteFn == nil {
		return fmt.Errorf("delete not configured")
	}
	return s.deleteFn(ctx, reviewID)
}

type stubWishlistService struct {
	addFn    func(ctx context.Context, productID int64) error
	removeFn func(ctx context.Context, productID int64) error
}

func (s stubWishlistService) Add(ctx context.Context, productID int64) error {
	if s.addFn == nil {
		return fmt.Errorf("add not configured")
	}
	return s.addFn(ctx, productID)
}

func (s stubWishlistService) Remove(ctx context.Context, productID int64) error {
	if s.removeFn == nil {
		return fmt.Errorf("remove not configured")
	}
	return s.removeFn(ctx, productID)
}
