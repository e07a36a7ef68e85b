package query

import (
	"context"
	"encoding/json"

	"github.com/dev-saiful/go-storefront/resources"
)

// CatalogReader is satisfied by both resources.Catalog and
// resources.CachedCatalog, so callers choose whether reads go
// through the cache.
type CatalogReader interface {
	ListProducts(ctx context.Context, req resources.ListProductsRequest) (resources.Page[resources.Product], error)
	GetProduct(ctx context.Context, id int64) (resources.Product, error)
	ListCategories(ctx context.Context) ([]resources.Category, error)
}

type CartReader interface {
	Get(ctx context.Context) (resources.Cart, error)
}

type OrdersReader interface {
	List(ctx context.Context, page int) (resources.Page[resources.Order], error)
	Get(ctx context.Context, id int64) (resources.Order, error)
}

type ReviewsReader interface {
	ListForProduct(ctx context.Context, productID int64, page int) (resources.Page[resources.Review], error)
}

type WishlistReader interface {
	List(ctx context.Context) ([]resources.WishlistItem, error)
}

type ProfileReader interface {
	Me(ctx context.Context) (json.RawMessage, error)
}

type ListProductsQuery struct {
	reader CatalogReader
}

func NewListProductsQuery(reader CatalogReader) *ListProductsQuery {
	return &ListProductsQuery{reader: reader}
}

func (q *ListProductsQuery) Query(ctx context.Context, msg ListProductsMessage) (resources.Page[resources.Product], error) {
	if q == nil || q.reader == nil {
		return resources.Page[resources.Product]{}, queryDependencyError("query: catalog reader is required")
	}
	return q.reader.ListProducts(ctx, msg.Request)
}

type GetProductQuery struct {
	reader CatalogReader
}

func NewGetProductQuery(reader CatalogReader) *GetProductQuery {
	return &GetProductQuery{reader: reader}
}

func (q *GetProductQuery) Query(ctx context.Context, msg GetProductMessage) (resources.Product, error) {
	if q == nil || q.reader == nil {
		return resources.Product{}, queryDependencyError("query: catalog reader is required")
	}
	return q.reader.GetProduct(ctx, msg.ProductID)
}

type ListCategoriesQuery struct {
	reader CatalogReader
}

func NewListCategoriesQuery(reader CatalogReader) *ListCategoriesQuery {
	return &ListCategoriesQuery{reader: reader}
}

func (q *ListCategoriesQuery) Query(ctx context.Context, _ ListCategoriesMessage) ([]resources.Category, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: catalog reader is required")
	}
	return q.reader.ListCategories(ctx)
}

type GetCartQuery struct {
	reader CartReader
}

func NewGetCartQuery(reader CartReader) *GetCartQuery {
	return &GetCartQuery{reader: reader}
}

func (q *GetCartQuery) Query(ctx context.Context, _ GetCartMessage) (resources.Cart, error) {
	if q == nil || q.reader == nil {
		return resources.Cart{}, queryDependencyError("query: cart reader is required")
	}
	return q.reader.Get(ctx)
}

type ListOrdersQuery struct {
	reader OrdersReader
}

func NewListOrdersQuery(reader OrdersReader) *ListOrdersQuery {
	return &ListOrdersQuery{reader: reader}
}

func (q *ListOrdersQuery) Query(ctx context.Context, msg ListOrdersMessage) (resources.Page[resources.Order], error) {
	if q == nil || q.reader == nil {
		return resources.Page[resources.Order]{}, queryDependencyError("query: orders reader is required")
	}
	return q.reader.List(ctx, msg.Page)
}

type GetOrderQuery struct {
	reader OrdersReader
}

func NewGetOrderQuery(reader OrdersReader) *GetOrderQuery {
	return &GetOrderQuery{reader: reader}
}

func (q *GetOrderQuery) Query(ctx context.Context, msg GetOrderMessage) (resources.Order, error) {
	if q == nil || q.reader == nil {
		return resources.Order{}, queryDependencyError("query: orders reader is required")
	}
	return q.reader.Get(ctx, msg.OrderID)
}

type ListReviewsQuery struct {
	reader ReviewsReader
}

func NewListReviewsQuery(reader ReviewsReader) *ListReviewsQuery {
	return &ListReviewsQuery{reader: reader}
}

func (q *ListReviewsQuery) Query(ctx context.Context, msg ListReviewsMessage) (resources.Page[resources.Review], error) {
	if q == nil || q.reader == nil {
		return resources.Page[resources.Review]{}, queryDependencyError("query: reviews reader is required")
	}
	return q.reader.ListForProduct(ctx, msg.ProductID, msg.Page)
}

type ListWishlistQuery struct {
	reader WishlistReader
}

func NewListWishlistQuery(reader WishlistReader) *ListWishlistQuery {
	return &ListWishlistQuery{reader: reader}
}

func (q *ListWishlistQuery) Query(ctx context.Context, _ ListWishlistMessage) ([]resources.WishlistItem, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: wishlist reader is required")
	}
	return q.reader.List(ctx)
}

type GetCurrentUserQuery struct {
	reader ProfileReader
}

func NewGetCurrentUserQuery(reader ProfileReader) *GetCurrentUserQuery {
	return &GetCurrentUserQuery{reader: reader}
}

func (q *GetCurrentUserQuery) Query(ctx context.Context, _ GetCurrentUserMessage) (resources.User, error) {
	if q == nil || q.reader == nil {
		return resources.User{}, queryDependencyError("query: profile reader is required")
	}
	raw, err := q.reader.Me(ctx)
	if err != nil {
		return resources.User{}, err
	}
	var user resources.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return resources.User{}, queryWrapValidation(err, "query: decode current user")
	}
	return user, nil
}
