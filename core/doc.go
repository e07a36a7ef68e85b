// Package core implements the resilient storefront API client: credential
// attachment, single-flight token refresh, guest session identity, and
// failure classification broadcast.
package core
