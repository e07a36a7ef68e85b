package transport

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dev-saiful/go-storefront/core"
)

type AdapterFactory func(config map[string]any) (core.TransportAdapter, error)

// registryEntry holds either a ready adapter or a factory that builds one
// on demand. Ready adapters win when both are present.
type registryEntry struct {
	adapter core.TransportAdapter
	factory AdapterFactory
}

// Registry holds the transport adapters available to the client by kind.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
}

func NewRegistry() *Registry {
	return &Registry{entries: map[string]registryEntry{}}
}

// NewDefaultRegistry registers the REST adapter plus a placeholder factory
// for kinds the deployment has not wired.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	_ = registry.Register(NewRESTAdapter(nil))
	_ = registry.RegisterFactory(KindMock, defaultNoopFactory(KindMock))
	return registry
}

func (r *Registry) Register(adapter core.TransportAdapter) error {
	if r == nil {
		return fmt.Errorf("transport: registry is nil")
	}
	if adapter == nil {
		return fmt.Errorf("transport: adapter is nil")
	}
	kind := normalizeKind(adapter.Kind())
	if kind == "" {
		return fmt.Errorf("transport: adapter kind is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries[kind].adapter != nil {
		return fmt.Errorf("transport: adapter kind %q already registered", kind)
	}
	entry := r.entries[kind]
	entry.adapter = adapter
	r.entries[kind] = entry
	return nil
}

func (r *Registry) RegisterFactory(kind string, factory AdapterFactory) error {
	if r == nil {
		return fmt.Errorf("transport: registry is nil")
	}
	kind = normalizeKind(kind)
	if kind == "" {
		return fmt.Errorf("transport: adapter kind is required")
	}
	if factory == nil {
		return fmt.Errorf("transport: adapter factory is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries[kind].factory != nil {
		return fmt.Errorf("transport: adapter factory kind %q already registered", kind)
	}
	entry := r.entries[kind]
	entry.factory = factory
	r.entries[kind] = entry
	return nil
}

// Build returns the registered adapter for kind, falling back to the kind's
// factory when no ready adapter exists.
func (r *Registry) Build(kind string, config map[string]any) (core.TransportAdapter, error) {
	if r == nil {
		return nil, fmt.Errorf("transport: registry is nil")
	}
	kind = normalizeKind(kind)
	if kind == "" {
		return nil, fmt.Errorf("transport: adapter kind is required")
	}

	r.mu.RLock()
	entry := r.entries[kind]
	r.mu.RUnlock()

	if entry.adapter != nil {
		return entry.adapter, nil
	}
	if entry.factory == nil {
		return nil, fmt.Errorf("transport: adapter kind %q not registered", kind)
	}
	built, err := entry.factory(cloneConfig(config))
	if err != nil {
		return nil, err
	}
	if built == nil {
		return nil, fmt.Errorf("transport: factory for %q returned nil adapter", kind)
	}
	return built, nil
}

func (r *Registry) Get(kind string) (core.TransportAdapter, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry := r.entries[normalizeKind(kind)]
	return entry.adapter, entry.adapter != nil
}

// List returns the ready adapters ordered by kind.
func (r *Registry) List() []core.TransportAdapter {
	if r == nil {
		return []core.TransportAdapter{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.entries))
	for kind, entry := range r.entries {
		if entry.adapter != nil {
			kinds = append(kinds, kind)
		}
	}
	sort.Strings(kinds)

	result := make([]core.TransportAdapter, 0, len(kinds))
	for _, kind := range kinds {
		result = append(result, r.entries[kind].adapter)
	}
	return result
}

func normalizeKind(kind string) string {
	return strings.TrimSpace(strings.ToLower(kind))
}

func defaultNoopFactory(kind string) AdapterFactory {
	return func(config map[string]any) (core.TransportAdapter, error) {
		reason := ""
		if raw, ok := config["reason"]; ok {
			reason = strings.TrimSpace(fmt.Sprint(raw))
		}
		return NewUnsupportedAdapter(kind, reason), nil
	}
}

func cloneConfig(input map[string]any) map[string]any {
	output := make(map[string]any, len(input))
	for key, value := range input {
		output[key] = value
	}
	return output
}
