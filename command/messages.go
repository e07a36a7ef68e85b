package command

import (
	"strings"

	"github.com/dev-saiful/go-storefront/core"
	"github.com/dev-saiful/go-storefront/resources"
)

const (
	TypeLogin          = "storefront.command.auth.login"
	TypeRegister       = "storefront.command.auth.register"
	TypeVerifyEmail    = "storefront.command.auth.verify_email"
	TypeLogout         = "storefront.command.auth.logout"
	TypeRefreshSession = "storefront.command.auth.refresh_session"
	TypeAddCartItem    = "storefront.command.cart.add_item"
	TypeUpdateCartItem = "storefront.command.cart.update_item"
	TypeRemoveCartItem = "storefront.command.cart.remove_item"
	TypeClearCart      = "storefront.command.cart.clear"
	TypeCheckout       = "storefront.command.orders.checkout"
	TypeCancelOrder    = "storefront.command.orders.cancel"
	TypeSubmitReview   = "storefront.command.reviews.submit"
	TypeDeleteReview   = "storefront.command.reviews.delete"
	TypeAddWishlist    = "storefront.command.wishlist.add"
	TypeRemoveWishlist = "storefront.command.wishlist.remove"
)

type LoginMessage struct {
	Request core.LoginRequest
}

func (LoginMessage) Type() string { return TypeLogin }

func (m LoginMessage) Validate() error {
	if strings.TrimSpace(m.Request.Email) == "" {
		return commandValidationError("email", "email is required")
	}
	if strings.TrimSpace(m.Request.Password) == "" {
		return commandValidationError("password", "password is required")
	}
	return nil
}

type RegisterMessage struct {
	Request core.RegisterRequest
}

func (RegisterMessage) Type() string { return TypeRegister }

func (m RegisterMessage) Validate() error {
	if strings.TrimSpace(m.Request.Name) == "" {
		return commandValidationError("name", "name is required")
	}
	if strings.TrimSpace(m.Request.Email) == "" {
		return commandValidationError("email", "email is required")
	}
	if strings.TrimSpace(m.Request.Password) == "" {
		return commandValidationError("password", "password is required")
	}
	if m.Request.Password != m.Request.PasswordConfirmation {
		return commandValidationError("password_confirmation", "password confirmation does not match")
	}
	return nil
}

type VerifyEmailMessage struct {
	Request core.VerifyEmailRequest
}

func (VerifyEmailMessage) Type() string { return TypeVerifyEmail }

func (m VerifyEmailMessage) Validate() error {
	if strings.TrimSpace(m.Request.Email) == "" {
		return commandValidationError("email", "email is required")
	}
	if strings.TrimSpace(m.Request.Token) == "" {
		return commandValidationError("token", "verification token is required")
	}
	return nil
}

type LogoutMessage struct{}

func (LogoutMessage) Type() string { return TypeLogout }

func (LogoutMessage) Validate() error { return nil }

type RefreshSessionMessage struct{}

func (RefreshSessionMessage) Type() string { return TypeRefreshSession }

func (RefreshSessionMessage) Validate() error { return nil }

type AddCartItemMessage struct {
	Request resources.AddCartItemRequest
}

func (AddCartItemMessage) Type() string { return TypeAddCartItem }

func (m AddCartItemMessage) Validate() error {
	if m.Request.ProductID <= 0 {
		return commandValidationError("product_id", "product id is required")
	}
	return nil
}

type UpdateCartItemMessage struct {
	ItemID  int64
	Request resources.UpdateCartItemRequest
}

func (UpdateCartItemMessage) Type() string { return TypeUpdateCartItem }

func (m UpdateCartItemMessage) Validate() error {
	if m.ItemID <= 0 {
		return commandValidationError("item_id", "cart item id is required")
	}
	if m.Request.Quantity <= 0 {
		return commandInvalidInputError("command: quantity must be positive")
	}
	return nil
}

type RemoveCartItemMessage struct {
	ItemID int64
}

func (RemoveCartItemMessage) Type() string { return TypeRemoveCartItem }

func (m RemoveCartItemMessage) Validate() error {
	if m.ItemID <= 0 {
		return commandValidationError("item_id", "cart item id is required")
	}
	return nil
}

type ClearCartMessage struct{}

func (ClearCartMessage) Type() string { return TypeClearCart }

func (ClearCartMessage) Validate() error { return nil }

type CheckoutMessage struct {
	Request resources.CheckoutRequest
}

func (CheckoutMessage) Type() string { return TypeCheckout }

func (m CheckoutMessage) Validate() error {
	if strings.TrimSpace(m.Request.PaymentMethod) == "" {
		return commandValidationError("payment_method", "payment method is required")
	}
	if strings.TrimSpace(m.Request.ShippingAddress.Line1) == "" {
		return commandValidationError("shipping_address.line1", "shipping address is required")
	}
	return nil
}

type CancelOrderMessage struct {
	OrderID int64
}

func (CancelOrderMessage) Type() string { return TypeCancelOrder }

func (m CancelOrderMessage) Validate() error {
	if m.OrderID <= 0 {
		return commandValidationError("order_id", "order id is required")
	}
	return nil
}

type SubmitReviewMessage struct {
	ProductID int64
	Request   resources.SubmitReviewRequest
}

func (SubmitReviewMessage) Type() string { return TypeSubmitReview }

func (m SubmitReviewMessage) Validate() error {
	if m.ProductID <= 0 {
		return commandValidationError("product_id", "product id is required")
	}
	if m.Request.Rating < 1 || m.Request.Rating > 5 {
		return commandInvalidInputError("command: rating must be between 1 and 5")
	}
	return nil
}

type DeleteReviewMessage struct {
	ReviewID int64
}

func (DeleteReviewMessage) Type() string { return TypeDeleteReview }

func (m DeleteReviewMessage) Validate() error {
	if m.ReviewID <= 0 {
		return commandValidationError("review_id", "review id is required")
	}
	return nil
}

type AddWishlistItemMessage struct {
	ProductID int64
}

func (AddWishlistItemMessage) Type() string { return TypeAddWishlist }

func (m AddWishlistItemMessage) Validate() error {
	if m.ProductID <= 0 {
		return commandValidationError("product_id", "product id is required")
	}
	return nil
}

type RemoveWishlistItemMessage struct {
	ProductID int64
}

func (RemoveWishlistItemMessage) Type() string { return TypeRemoveWishlist }

func (m RemoveWishlistItemMessage) Validate() error {
	if m.ProductID <= 0 {
		return commandValidationError("product_id", "product id is required")
	}
	return nil
}
