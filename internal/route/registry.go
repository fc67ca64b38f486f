package route

import (
	"io"
	"log/slog"
)

// Listener is called after every successful Dispatch with the new state.
type Listener func(NavigationState)

// Registry owns the authoritative route list for one stack.
// It is not safe for concurrent use; all calls are expected on the UI loop.
type Registry struct {
	state     NavigationState
	screens   map[string]bool
	options   map[string]Options
	listeners []Listener
	logger    *slog.Logger
}

// NewRegistry creates a registry that accepts pushes for the given screen names.
func NewRegistry(screens []string, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	known := make(map[string]bool, len(screens))
	for _, s := range screens {
		known[s] = true
	}
	return &Registry{
		state:   NavigationState{Index: -1},
		screens: known,
		options: make(map[string]Options),
		logger:  logger,
	}
}

// State returns a snapshot of the current stack.
func (r *Registry) State() NavigationState {
	return r.state.clone()
}

// Options returns the route-level options given at push time.
func (r *Registry) Options(key string) Options {
	return r.options[key]
}

// Subscribe registers fn to be called after each state change.
// The returned func removes the subscription.
func (r *Registry) Subscribe(fn Listener) func() {
	r.listeners = append(r.listeners, fn)
	idx := len(r.listeners) - 1
	return func() {
		if idx < len(r.listeners) {
			r.listeners[idx] = nil
		}
	}
}

// Dispatch applies a to the stack. On error the stack is unchanged.
func (r *Registry) Dispatch(a Action) error {
	next, err := a.apply(r.state, func(name string) bool { return r.screens[name] })
	if err != nil {
		r.logger.Debug("dispatch rejected", "action", a.String(), "error", err)
		return err
	}

	if push, ok := a.(PushAction); ok {
		top, _ := next.Top()
		r.options[top.Key] = push.Options
	}
	for key := range r.options {
		if !next.Contains(key) {
			delete(r.options, key)
		}
	}

	r.state = next
	r.logger.Debug("dispatch", "action", a.String(), "depth", len(next.Routes))
	for _, l := range r.listeners {
		if l != nil {
			l(next.clone())
		}
	}
	return nil
}

// Push is shorthand for dispatching a PushAction. It returns the new route's key.
func (r *Registry) Push(name string, params map[string]string) (string, error) {
	if err := r.Dispatch(PushAction{Name: name, Params: params}); err != nil {
		return "", err
	}
	top, _ := r.state.Top()
	return top.Key, nil
}

// Navigation returns a handle bound to the route with key.
func (r *Registry) Navigation(key string) *Navigation {
	return &Navigation{key: key, registry: r}
}

// Navigation is the per-route handle a screen uses to drive the stack.
type Navigation struct {
	key      string
	registry *Registry
}

// Key returns the route key this handle is bound to.
func (n *Navigation) Key() string {
	return n.key
}

// Params returns the bound route's params, or nil if it has left the stack.
func (n *Navigation) Params() map[string]string {
	st := n.registry.state
	if i := st.indexOf(n.key); i >= 0 {
		return st.Routes[i].Params
	}
	return nil
}

// Push pushes a new screen above the current top.
func (n *Navigation) Push(name string, params map[string]string) error {
	_, err := n.registry.Push(name, params)
	return err
}

// Dispatch forwards a to the registry.
func (n *Navigation) Dispatch(a Action) error {
	return n.registry.Dispatch(a)
}

// Pop removes the bound route immediately, with no exit transition.
func (n *Navigation) Pop() error {
	return n.registry.Dispatch(PopAction{Key: n.key})
}
