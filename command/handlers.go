package command

import (
	"context"
	"encoding/json"

	gocmd "github.com/goliatone/go-command"

	"github.com/dev-saiful/go-storefront/core"
	"github.com/dev-saiful/go-storefront/resources"
)

// AuthService is the slice of the core client the auth commands need.
type AuthService interface {
	Login(ctx context.Context, req core.LoginRequest) (core.AuthSession, error)
	Register(ctx context.Context, req core.RegisterRequest) (core.Envelope, error)
	VerifyEmail(ctx context.Context, req core.VerifyEmailRequest) (core.AuthSession, error)
	Logout(ctx context.Context) error
	RefreshSession(ctx context.Context) (core.Credential, error)
	Me(ctx context.Context) (json.RawMessage, error)
}

type CartService interface {
	AddItem(ctx context.Context, req resources.AddCartItemRequest) (resources.Cart, error)
	UpdateItem(ctx context.Context, itemID int64, req resources.UpdateCartItemRequest) (resources.Cart, error)
	RemoveItem(ctx context.Context, itemID int64) (resources.Cart, error)
	Clear(ctx context.Context) error
}

type CheckoutService interface {
	Checkout(ctx context.Context, req resources.CheckoutRequest) (resources.Order, error)
	Cancel(ctx context.Context, id int64) (resources.Order, error)
}

type ReviewService interface {
	Submit(ctx context.Context, productID int64, req resources.SubmitReviewRequest) (resources.Review, error)
	Delete(ctx context.Context, reviewID int64) error
}

type WishlistService interface {
	Add(ctx context.Context, productID int64) error
	Remove(ctx context.Context, productID int64) error
}

type LoginCommand struct {
	service AuthService
}

func NewLoginCommand(service AuthService) *LoginCommand {
	return &LoginCommand{service: service}
}

func (c *LoginCommand) Execute(ctx context.Context, msg LoginMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: auth service is required")
	}
	out, err := c.service.Login(ctx, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type RegisterCommand struct {
	service AuthService
}

func NewRegisterCommand(service AuthService) *RegisterCommand {
	return &RegisterCommand{service: service}
}

func (c *RegisterCommand) Execute(ctx context.Context, msg RegisterMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: auth service is required")
	}
	out, err := c.service.Register(ctx, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type VerifyEmailCommand struct {
	service AuthService
}

func NewVerifyEmailCommand(service AuthService) *VerifyEmailCommand {
	return &VerifyEmailCommand{service: service}
}

func (c *VerifyEmailCommand) Execute(ctx context.Context, msg VerifyEmailMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: auth service is required")
	}
	out, err := c.service.VerifyEmail(ctx, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type LogoutCommand struct {
	service AuthService
}

func NewLogoutCommand(service AuthService) *LogoutCommand {
	return &LogoutCommand{service: service}
}

func (c *LogoutCommand) Execute(ctx context.Context, _ LogoutMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: auth service is required")
	}
	return c.service.Logout(ctx)
}

type RefreshSessionCommand struct {
	service AuthService
}

func NewRefreshSessionCommand(service AuthService) *RefreshSessionCommand {
	return &RefreshSessionCommand{service: service}
}

func (c *RefreshSessionCommand) Execute(ctx context.Context, _ RefreshSessionMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: auth service is required")
	}
	out, err := c.service.RefreshSession(ctx)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type AddCartItemCommand struct {
	service CartService
}

func NewAddCartItemCommand(service CartService) *AddCartItemCommand {
	return &AddCartItemCommand{service: service}
}

func (c *AddCartItemCommand) Execute(ctx context.Context, msg AddCartItemMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: cart service is required")
	}
	out, err := c.service.AddItem(ctx, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type UpdateCartItemCommand struct {
	service CartService
}

func NewUpdateCartItemCommand(service CartService) *UpdateCartItemCommand {
	return &UpdateCartItemCommand{service: service}
}

func (c *UpdateCartItemCommand) Execute(ctx context.Context, msg UpdateCartItemMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: cart service is required")
	}
	out, err := c.service.UpdateItem(ctx, msg.ItemID, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type RemoveCartItemCommand struct {
	service CartService
}

func NewRemoveCartItemCommand(service CartService) *RemoveCartItemCommand {
	return &RemoveCartItemCommand{service: service}
}

func (c *RemoveCartItemCommand) Execute(ctx context.Context, msg RemoveCartItemMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: cart service is required")
	}
	out, err := c.service.RemoveItem(ctx, msg.ItemID)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type ClearCartCommand struct {
	service CartService
}

func NewClearCartCommand(service CartService) *ClearCartCommand {
	return &ClearCartCommand{service: service}
}

func (c *ClearCartCommand) Execute(ctx context.Context, _ ClearCartMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: cart service is required")
	}
	return c.service.Clear(ctx)
}

type CheckoutCommand struct {
	service CheckoutService
}

func NewCheckoutCommand(service CheckoutService) *CheckoutCommand {
	return &CheckoutCommand{service: service}
}

func (c *CheckoutCommand) Execute(ctx context.Context, msg CheckoutMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: checkout service is required")
	}
	out, err := c.service.Checkout(ctx, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type CancelOrderCommand struct {
	service CheckoutService
}

func NewCancelOrderCommand(service CheckoutService) *CancelOrderCommand {
	return &CancelOrderCommand{service: service}
}

func (c *CancelOrderCommand) Execute(ctx context.Context, msg CancelOrderMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: checkout service is required")
	}
	out, err := c.service.Cancel(ctx, msg.OrderID)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type SubmitReviewCommand struct {
	service ReviewService
}

func NewSubmitReviewCommand(service ReviewService) *SubmitReviewCommand {
	return &SubmitReviewCommand{service: service}
}

func (c *SubmitReviewCommand) Execute(ctx context.Context, msg SubmitReviewMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: review service is required")
	}
	out, err := c.service.Submit(ctx, msg.ProductID, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type DeleteReviewCommand struct {
	service ReviewService
}

func NewDeleteReviewCommand(service ReviewService) *DeleteReviewCommand {
	return &DeleteReviewCommand{service: service}
}

func (c *DeleteReviewCommand) Execute(ctx context.Context, msg DeleteReviewMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: review service is required")
	}
	return c.service.Delete(ctx, msg.ReviewID)
}

type AddWishlistItemCommand struct {
	service WishlistService
}

func NewAddWishlistItemCommand(service WishlistService) *AddWishlistItemCommand {
	return &AddWishlistItemCommand{service: service}
}

func (c *AddWishlistItemCommand) Execute(ctx context.Context, msg AddWishlistItemMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: wishlist service is required")
	}
	return c.service.Add(ctx, msg.ProductID)
}

type RemoveWishlistItemCommand struct {
	service WishlistService
}

func NewRemoveWishlistItemCommand(service WishlistService) *RemoveWishlistItemCommand {
	return &RemoveWishlistItemCommand{service: service}
}

func (c *RemoveWishlistItemCommand) Execute(ctx context.Context, msg RemoveWishlistItemMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: wishlist service is required")
	}
	return c.service.Remove(ctx, msg.ProductID)
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
