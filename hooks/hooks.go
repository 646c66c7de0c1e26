// Package hooks provides observation points for the composition layer.
// Hooks are used for logging, metrics, and test synchronization; they never
// influence control flow.
package hooks

import "sync"

// NavigateHook is called when the dispatcher resolves a symbolic action.
// Parameters: action, resolved resource path, target region.
type NavigateHook func(action, path, region string)

// FragmentHook is called when an asynchronous fragment load completes.
// ok is false when the fetch failed and the region was left unchanged.
type FragmentHook func(region, url string, ok bool)

// ComposeHook is called after a menu composition pass.
// kind is "modules" or "links"; rendered is the number of descriptors
// that produced a snippet.
type ComposeHook func(kind string, rendered int)

// Registry holds all registered hooks. A nil *Registry is valid: all
// trigger methods become no-ops, so callers never need a nil check.
type Registry struct {
	mu       sync.RWMutex
	navigate []NavigateHook
	fragment []FragmentHook
	compose  []ComposeHook
}

// NewRegistry creates a new hook registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// OnNavigate registers a hook called on every dispatched navigation.
func (r *Registry) OnNavigate(hook NavigateHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navigate = append(r.navigate, hook)
}

// OnFragment registers a hook called when a fragment load completes.
func (r *Registry) OnFragment(hook FragmentHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fragment = append(r.fragment, hook)
}

// OnCompose registers a hook called after every composition pass.
func (r *Registry) OnCompose(hook ComposeHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.compose = append(r.compose, hook)
}

// TriggerNavigate calls all registered navigation hooks.
func (r *Registry) TriggerNavigate(action, path, region string) {
	if r == nil {
		return
	}
	r.mu.RLock()
	hooks := make([]NavigateHook, len(r.navigate))
	copy(hooks, r.navigate)
	r.mu.RUnlock()

	for _, hook := range hooks {
		hook(action, path, region)
	}
}

// TriggerFragment calls all registered fragment hooks.
func (r *Registry) TriggerFragment(region, url string, ok bool) {
	if r == nil {
		return
	}
	r.mu.RLock()
	hooks := make([]FragmentHook, len(r.fragment))
	copy(hooks, r.fragment)
	r.mu.RUnlock()

	for _, hook := range hooks {
		hook(region, url, ok)
	}
}

// TriggerCompose calls all registered composition hooks.
func (r *Registry) TriggerCompose(kind string, rendered int) {
	if r == nil {
		return
	}
	r.mu.RLock()
	hooks := make([]ComposeHook, len(r.compose))
	copy(hooks, r.compose)
	r.mu.RUnlock()

	for _, hook := range hooks {
		hook(kind, rendered)
	}
}
