package storefront

import (
	"fmt"

	repositorycache "github.com/goliatone/go-repository-cache/cache"

	"github.com/dev-saiful/go-storefront/adapters/gocommand"
	storefrontcommand "github.com/dev-saiful/go-storefront/command"
	"github.com/dev-saiful/go-storefront/core"
	storefrontquery "github.com/dev-saiful/go-storefront/query"
	"github.com/dev-saiful/go-storefront/resources"
)

type Commands struct {
	Login          *storefrontcommand.LoginCommand
	Register       *storefrontcommand.RegisterCommand
	VerifyEmail    *storefrontcommand.VerifyEmailCommand
	Logout         *storefrontcommand.LogoutCommand
	RefreshSession *storefrontcommand.RefreshSessionCommand
	AddCartItem    *storefrontcommand.AddCartItemCommand
	UpdateCartItem *storefrontcommand.UpdateCartItemCommand
	RemoveCartItem *storefrontcommand.RemoveCartItemCommand
	ClearCart      *storefrontcommand.ClearCartCommand
	Checkout       *storefrontcommand.CheckoutCommand
	CancelOrder    *storefrontcommand.CancelOrderCommand
	SubmitReview   *storefrontcommand.SubmitReviewCommand
	DeleteReview   *storefrontcommand.DeleteReviewCommand
	AddWishlist    *storefrontcommand.AddWishlistItemCommand
	RemoveWishlist *storefrontcommand.RemoveWishlistItemCommand
}

type Queries struct {
	ListProducts   *storefrontquery.ListProductsQuery
	GetProduct     *storefrontquery.GetProductQuery
	ListCategories *storefrontquery.ListCategoriesQuery
	GetCart        *storefrontquery.GetCartQuery
	ListOrders     *storefrontquery.ListOrdersQuery
	GetOrder       *storefrontquery.GetOrderQuery
	ListReviews    *storefrontquery.ListReviewsQuery
	ListWishlist   *storefrontquery.ListWishlistQuery
	GetCurrentUser *storefrontquery.GetCurrentUserQuery
}

// Facade bundles one client, its resource surfaces, and the command/query
// handlers wired against them.
type Facade struct {
	client   *core.Client
	catalog  *resources.Catalog
	cached   *resources.CachedCatalog
	cart     *resources.CartResource
	orders   *resources.OrdersResource
	reviews  *resources.ReviewsResource
	wishlist *resources.WishlistResource
	admin    *resources.AdminResource
	commands Commands
	queries  Queries
}

type FacadeOption func(*facadeOptions)

type facadeOptions struct {
	catalogCache repositorycache.CacheService
}

// WithCatalogCache routes catalog reads through the cache service instead of
// hitting the backend on every call.
func WithCatalogCache(cacheService repositorycache.CacheService) FacadeOption {
	return func(options *facadeOptions) {
		options.catalogCache = cacheService
	}
}

func NewFacade(client *core.Client, opts ...FacadeOption) (*Facade, error) {
	if client == nil {
		return nil, fmt.Errorf("storefront: client is required")
	}
	cfg := facadeOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	facade := &Facade{
		client:   client,
		catalog:  resources.NewCatalog(client),
		cart:     resources.NewCart(client),
		orders:   resources.NewOrders(client),
		reviews:  resources.NewReviews(client),
		wishlist: resources.NewWishlist(client),
		admin:    resources.NewAdmin(client),
	}

	var catalogReader storefrontquery.CatalogReader = facade.catalog
	if cfg.catalogCache != nil {
		cached, err := resources.NewCachedCatalog(facade.catalog, cfg.catalogCache)
		if err != nil {
			return nil, err
		}
		facade.cached = cached
		catalogReader = cached
	}

	facade.commands = Commands{
		Login:          storefrontcommand.NewLoginCommand(client),
		Register:       storefrontcommand.NewRegisterCommand(client),
		VerifyEmail:    storefrontcommand.NewVerifyEmailCommand(client),
		Logout:         storefrontcommand.NewLogoutCommand(client),
		RefreshSession: storefrontcommand.NewRefreshSessionCommand(client),
		AddCartItem:    storefrontcommand.NewAddCartItemCommand(facade.cart),
		UpdateCartItem: storefrontcommand.NewUpdateCartItemCommand(facade.cart),
		RemoveCartItem: storefrontcommand.NewRemoveCartItemCommand(facade.cart),
		ClearCart:      storefrontcommand.NewClearCartCommand(facade.cart),
		Checkout:       storefrontcommand.NewCheckoutCommand(facade.orders),
		CancelOrder:    storefrontcommand.NewCancelOrderCommand(facade.orders),
		SubmitReview:   storefrontcommand.NewSubmitReviewCommand(facade.reviews),
		DeleteReview:   storefrontcommand.NewDeleteReviewCommand(facade.reviews),
		AddWishlist:    storefrontcommand.NewAddWishlistItemCommand(facade.wishlist),
		RemoveWishlist: storefrontcommand.NewRemoveWishlistItemCommand(facade.wishlist),
	}
	facade.queries = Queries{
		ListProducts:   storefrontquery.NewListProductsQuery(catalogReader),
		GetProduct:     storefrontquery.NewGetProductQuery(catalogReader),
		ListCategories: storefrontquery.NewListCategoriesQuery(catalogReader),
		GetCart:        storefrontquery.NewGetCartQuery(facade.cart),
		ListOrders:     storefrontquery.NewListOrdersQuery(facade.orders),
		GetOrder:       storefrontquery.NewGetOrderQuery(facade.orders),
		ListReviews:    storefrontquery.NewListReviewsQuery(facade.reviews),
		ListWishlist:   storefrontquery.NewListWishlistQuery(facade.wishlist),
		GetCurrentUser: storefrontquery.NewGetCurrentUserQuery(client),
	}

	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Client() *core.Client {
	if f == nil {
		return nil
	}
	return f.client
}

func (f *Facade) Catalog() *resources.Catalog {
	if f == nil {
		return nil
	}
	return f.catalog
}

// CachedCatalog returns the caching read surface, or nil when no cache
// service was configured.
func (f *Facade) CachedCatalog() *resources.CachedCatalog {
	if f == nil {
		return nil
	}
	return f.cached
}

func (f *Facade) Cart() *resources.CartResource {
	if f == nil {
		return nil
	}
	return f.cart
}

func (f *Facade) Orders() *resources.OrdersResource {
	if f == nil {
		return nil
	}
	return f.orders
}

func (f *Facade) Reviews() *resources.ReviewsResource {
	if f == nil {
		return nil
	}
	return f.reviews
}

func (f *Facade) Wishlist() *resources.WishlistResource {
	if f == nil {
		return nil
	}
	return f.wishlist
}

func (f *Facade) Admin() *resources.AdminResource {
	if f == nil {
		return nil
	}
	return f.admin
}

// DispatcherHandlers maps the facade's wiring onto the dispatcher
// registration contract so callers can register every handler in one call.
func (f *Facade) DispatcherHandlers() gocommand.Handlers {
	if f == nil || f.client == nil {
		return gocommand.Handlers{}
	}
	var catalogReader storefrontquery.CatalogReader = f.catalog
	if f.cached != nil {
		catalogReader = f.cached
	}
	return gocommand.Handlers{
		Auth:     f.client,
		Cart:     f.cart,
		Checkout: f.orders,
		Reviews:  f.reviews,
		Wishlist: f.wishlist,

		Catalog:      catalogReader,
		CartRead:     f.cart,
		Orders:       f.orders,
		ReviewsRead:  f.reviews,
		WishlistRead: f.wishlist,
		Profile:      f.client,
	}
}
