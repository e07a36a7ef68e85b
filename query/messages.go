package query

import (
	"github.com/dev-saiful/go-storefront/resources"
)

const (
	TypeListProducts   = "storefront.query.catalog.list_products"
	TypeGetProduct     = "storefront.query.catalog.get_product"
	TypeListCategories = "storefront.query.catalog.list_categories"
	TypeGetCart        = "storefront.query.cart.get"
	TypeListOrders     = "storefront.query.orders.list"
	TypeGetOrder       = "storefront.query.orders.get"
	TypeListReviews    = "storefront.query.reviews.list"
	TypeListWishlist   = "storefront.query.wishlist.list"
	TypeGetCurrentUser = "storefront.query.profile.current_user"
)

type ListProductsMessage struct {
	Request resources.ListProductsRequest
}

func (ListProductsMessage) Type() string { return TypeListProducts }

func (m ListProductsMessage) Validate() error {
	if m.Request.Page < 0 {
		return queryInvalidInputError("query: page must be >= 0")
	}
	if m.Request.PerPage < 0 {
		return queryInvalidInputError("query: per_page must be >= 0")
	}
	return nil
}

type GetProductMessage struct {
	ProductID int64
}

func (GetProductMessage) Type() string { return TypeGetProduct }

func (m GetProductMessage) Validate() error {
	if m.ProductID <= 0 {
		return queryValidationError("product_id", "product id is required")
	}
	return nil
}

type ListCategoriesMessage struct{}

func (ListCategoriesMessage) Type() string { return TypeListCategories }

func (ListCategoriesMessage) Validate() error { return nil }

type GetCartMessage struct{}

func (GetCartMessage) Type() string { return TypeGetCart }

func (GetCartMessage) Validate() error { return nil }

type ListOrdersMessage struct {
	Page int
}

func (ListOrdersMessage) Type() string { return TypeListOrders }

func (m ListOrdersMessage) Validate() error {
	if m.Page < 0 {
		return queryInvalidInputError("query: page must be >= 0")
	}
	return nil
}

type GetOrderMessage struct {
	OrderID int64
}

func (GetOrderMessage) Type() string { return TypeGetOrder }

func (m GetOrderMessage) Validate() error {
	if m.OrderID <= 0 {
		return queryValidationError("order_id", "order id is required")
	}
	return nil
}

type ListReviewsMessage struct {
	ProductID int64
	Page      int
}

func (ListReviewsMessage) Type() string { return TypeListReviews }

func (m ListReviewsMessage) Validate() error {
	if m.ProductID <= 0 {
		return queryValidationError("product_id", "product id is required")
	}
	if m.Page < 0 {
		return queryInvalidInputError("query: page must be >= 0")
	}
	return nil
}

type ListWishlistMessage struct{}

func (ListWishlistMessage) Type() string { return TypeListWishlist }

func (ListWishlistMessage) Validate() error { return nil }

type GetCurrentUserMessage struct{}

func (GetCurrentUserMessage) Type() string { return TypeGetCurrentUser }

func (GetCurrentUserMessage) Validate() error { return nil }
