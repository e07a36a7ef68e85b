// Package resources exposes typed accessors for the storefront backend on
// top of the core client: catalog, cart, orders, reviews, wishlist, and the
// admin surface. Resources never talk to the wire themselves; resilience
// (refresh, replay, classification) lives in core.
package resources
