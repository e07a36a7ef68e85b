package core

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
)

// routedAdapter is the transport fake: every request is recorded and
// answered by the configured handler.
type routedAdapter struct {
	mu       sync.Mutex
	requests []TransportRequest
	handler  func(req TransportRequest) (TransportResponse, error)
}

func (a *routedAdapter) Kind() string { return "test" }

func (a *routedAdapter) Do(_ context.Context, req TransportRequest) (TransportResponse, error) {
	a.mu.Lock()
	a.requests = append(a.requests, req)
	handler := a.handler
	a.mu.Unlock()
	if handler == nil {
		return TransportResponse{StatusCode: 200, Body: envelopeBody(nil)}, nil
	}
	return handler(req)
}

func (a *routedAdapter) recorded() []TransportRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]TransportRequest(nil), a.requests...)
}

func (a *routedAdapter) countPath(suffix string) int {
	count := 0
	for _, req := range a.recorded() {
		if strings.HasSuffix(req.URL, suffix) {
			count++
		}
	}
	return count
}

type recordingRedirector struct {
	mu      sync.Mutex
	reasons []string
}

func (r *recordingRedirector) RedirectToLogin(_ context.Context, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reasons = append(r.reasons, reason)
}

func (r *recordingRedirector) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.reasons...)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []Notification
}

func (n *recordingNotifier) Publish(_ context.Context, notification Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notification)
}

func (n *recordingNotifier) published() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification(nil), n.events...)
}

func envelopeBody(data any) []byte {
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

func errorEnvelopeBody(message string, fieldErrors map[string][]string) []byte {
	payload := map[string]any{"success": false, "message": message}
	if len(fieldErrors) > 0 {
		payload["errors"] = fieldErrors
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return encoded
}

func tokenEnvelopeBody(access string, refresh string) []byte {
	return envelopeBody(map[string]any{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func newTestClient(t *testing.T, adapter TransportAdapter, options ...Option) *Client {
	t.Helper()
	options = append([]Option{WithTransportAdapter(adapter)}, options...)
	client, err := New(Config{BaseURL: "https://shop.example.com"}, options...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func seedCredential(t *testing.T, client *Client, cred Credential) {
	t.Helper()
	if err := client.credentials.Save(context.Background(), cred); err != nil {
		t.Fatalf("seed credential: %v", err)
	}
}

func bearerOf(req TransportRequest) string {
	return req.Headers[HeaderAuthorization]
}

func sessionOf(req TransportRequest) string {
	return req.Headers[HeaderSessionID]
}
