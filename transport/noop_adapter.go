package transport

import (
	"context"
	"fmt"
	"strings"

	"github.com/dev-saiful/go-storefront/core"
)

const KindMock = "mock"

// UnsupportedAdapter stands in for a transport kind the deployment knows
// about but has not wired. Every request fails with a descriptive error.
type UnsupportedAdapter struct {
	kind   string
	reason string
}

func NewUnsupportedAdapter(kind string, reason string) *UnsupportedAdapter {
	return &UnsupportedAdapter{
		kind:   strings.TrimSpace(strings.ToLower(kind)),
		reason: strings.TrimSpace(reason),
	}
}

func (a *UnsupportedAdapter) Kind() string {
	if a == nil {
		return ""
	}
	return a.kind
}

func (a *UnsupportedAdapter) Do(context.Context, core.TransportRequest) (core.TransportResponse, error) {
	if a == nil {
		return core.TransportResponse{}, fmt.Errorf("transport: adapter is nil")
	}
	message := fmt.Sprintf("transport: %s adapter is not configured", a.kind)
	if a.reason != "" {
		message += ": " + a.reason
	}
	return core.TransportResponse{}, fmt.Errorf("%s", message)
}

var _ core.TransportAdapter = (*UnsupportedAdapter)(nil)
