package resources

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	repositorycache "github.com/goliatone/go-repository-cache/cache"
)

const catalogCacheKeyPrefix = "storefront::catalog::v1"

// CachedCatalog memoizes catalog reads through the shared cache service.
// Writes never happen on this surface, so entries only expire by TTL.
type CachedCatalog struct {
	base  *Catalog
	cache repositorycache.CacheService
}

func NewCachedCatalog(base *Catalog, cacheService repositorycache.CacheService) (*CachedCatalog, error) {
	if base == nil {
		return nil, fmt.Errorf("resources: base catalog is required")
	}
	if cacheService == nil {
		return nil, fmt.Errorf("resources: cache service is required")
	}
	return &CachedCatalog{base: base, cache: cacheService}, nil
}

// ProductListCacheKey is the deterministic key contract for a product page:
// storefront::catalog::v1::products::<page>::<per_page>::<category>::<search>::<sort>
// with each segment URL-path escaped.
func ProductListCacheKey(req ListProductsRequest) string {
	segments := []string{
		"products",
		fmt.Sprint(req.Page),
		fmt.Sprint(req.PerPage),
		strings.TrimSpace(req.Category),
		strings.TrimSpace(req.Search),
		strings.TrimSpace(req.Sort),
	}
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(append([]string{catalogCacheKeyPrefix}, segments...), "::")
}

func productCacheKey(id int64) string {
	return fmt.Sprintf("%s::product::%d", catalogCacheKeyPrefix, id)
}

func categoriesCacheKey() string {
	return catalogCacheKeyPrefix + "::categories"
}

func (c *CachedCatalog) ListProducts(ctx context.Context, req ListProductsRequest) (Page[Product], error) {
	if c == nil || c.base == nil || c.cache == nil {
		return Page[Product]{}, fmt.Errorf("resources: cached catalog is not configured")
	}
	return repositorycache.GetOrFetch(ctx, c.cache, ProductListCacheKey(req), func(ctx context.Context) (Page[Product], error) {
		return c.base.ListProducts(ctx, req)
	})
}

func (c *CachedCatalog) GetProduct(ctx context.Context, id int64) (Product, error) {
	if c == nil || c.base == nil || c.cache == nil {
		return Product{}, fmt.Errorf("resources: cached catalog is not configured")
	}
	return repositorycache.GetOrFetch(ctx, c.cache, productCacheKey(id), func(ctx context.Context) (Product, error) {
		return c.base.GetProduct(ctx, id)
	})
}

func (c *CachedCatalog) ListCategories(ctx context.Context) ([]Category, error) {
	if c == nil || c.base == nil || c.cache == nil {
		return nil, fmt.Errorf("resources: cached catalog is not configured")
	}
	return repositorycache.GetOrFetch(ctx, c.cache, categoriesCacheKey(), func(ctx context.Context) ([]Category, error) {
		return c.base.ListCategories(ctx)
	})
}

// Invalidate drops the cached entry for one product after an admin write.
func (c *CachedCatalog) Invalidate(ctx context.Context, id int64) error {
	if c == nil || c.cache == nil {
		return fmt.Errorf("resources: cached catalog is not configured")
	}
	return c.cache.Delete(ctx, productCacheKey(id))
}
