package command

import gocmd "github.com/goliatone/go-command"

var (
	_ gocmd.Commander[LoginMessage]              = (*LoginCommand)(nil)
	_ gocmd.Commander[RegisterMessage]           = (*RegisterCommand)(nil)
	_ gocmd.Commander[VerifyEmailMessage]        = (*VerifyEmailCommand)(nil)
	_ gocmd.Commander[LogoutMessage]             = (*LogoutCommand)(nil)
	_ gocmd.Commander[RefreshSessionMessage]     = (*RefreshSessionCommand)(nil)
	_ gocmd.Commander[AddCartItemMessage]        = (*AddCartItemCommand)(nil)
	_ gocmd.Commander[UpdateCartItemMessage]     = (*UpdateCartItemCommand)(nil)
	_ gocmd.Commander[RemoveCartItemMessage]     = (*RemoveCartItemCommand)(nil)
	_ gocmd.Commander[ClearCartMessage]          = (*ClearCartCommand)(nil)
	_ gocmd.Commander[CheckoutMessage]           = (*CheckoutCommand)(nil)
	_ gocmd.Commander[CancelOrderMessage]        = (*CancelOrderCommand)(nil)
	_ gocmd.Commander[SubmitReviewMessage]       = (*SubmitReviewCommand)(nil)
	_ gocmd.Commander[DeleteReviewMessage]       = (*DeleteReviewCommand)(nil)
	_ gocmd.Commander[AddWishlistItemMessage]    = (*AddWishlistItemCommand)(nil)
	_ gocmd.Commander[RemoveWishlistItemMessage] = (*RemoveWishlistItemCommand)(nil)
)
