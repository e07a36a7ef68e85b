package query

import (
	gocmd "github.com/goliatone/go-command"

	"github.com/dev-saiful/go-storefront/resources"
)

var (
	_ gocmd.Querier[ListProductsMessage, resources.Page[resources.Product]] = (*ListProductsQuery)(nil)
	_ gocmd.Querier[GetProductMessage, resources.Product]                   = (*GetProductQuery)(nil)
	_ gocmd.Querier[ListCategoriesMessage, []resources.Category]            = (*ListCategoriesQuery)(nil)
	_ gocmd.Querier[GetCartMessage, resources.Cart]                         = (*GetCartQuery)(nil)
	_ gocmd.Querier[ListOrdersMessage, resources.Page[resources.Order]]     = (*ListOrdersQuery)(nil)
	_ gocmd.Querier[GetOrderMessage, resources.Order]                       = (*GetOrderQuery)(nil)
	_ gocmd.Querier[ListReviewsMessage, resources.Page[resources.Review]]   = (*ListReviewsQuery)(nil)
	_ gocmd.Querier[ListWishlistMessage, []resources.WishlistItem]          = (*ListWishlistQuery)(nil)
	_ gocmd.Querier[GetCurrentUserMessage, resources.User]                  = (*GetCurrentUserQuery)(nil)
)
