package resources

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/dev-saiful/go-storefront/core"
)

type fakeAdapter struct {
	mu       sync.Mutex
	requests []core.TransportRequest
	handler  func(req core.TransportRequest) (core.TransportResponse, error)
}

func (a *fakeAdapter) Kind() string { return "test" }

func (a *fakeAdapter) Do(_ context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	a.mu.Lock()
	a.requests = append(a.requests, req)
	handler := a.handler
	a.mu.Unlock()
	if handler == nil {
		return core.TransportResponse{StatusCode: 200, Body: jsonEnvelope(nil)}, nil
	}
	return handler(req)
}

func (a *fakeAdapter) recorded() []core.TransportRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]core.TransportRequest(nil), a.requests...)
}

func jsonEnvelope(data any) []byte {
	payload := map[string]any{"success": true}
	if data != nil {
		payload["data"] = data
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return encoded
}

func pagedEnvelope(data any, meta core.PageMeta) []byte {
	encoded, err := json.Marshal(map[string]any{
		"success": true,
		"data":    data,
		"meta":    meta,
	})
	if err != nil {
		panic(err)
	}
	return encoded
}

func newResourceClient(t *testing.T, adapter *fakeAdapter) *core.Client {
	t.Helper()
	client, err := core.New(
		core.Config{BaseURL: "https://shop.example.com"},
		core.WithTransportAdapter(adapter),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func lastRequest(t *testing.T, adapter *fakeAdapter) core.TransportRequest {
	t.Helper()
	requests := adapter.recorded()
	if len(requests) == 0 {
		t.Fatal("expected at least one request")
	}
	return requests[len(requests)-1]
}

func requireSuffix(t *testing.T, url string, suffix string) {
	t.Helper()
	if !strings.HasSuffix(url, suffix) {
		t.Fatalf("expected url %q to end with %q", url, suffix)
	}
}
