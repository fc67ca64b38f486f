// Package route holds the navigation state for a single screen stack and the
// in-memory registry that owns it.
//
// The registry is the only place the route list is mutated. Everything else
// reads NavigationState snapshots and sends Actions through Dispatch.
package route

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrUnknownRoute is returned when an action names a key that is not in the stack.
	ErrUnknownRoute = errors.New("route: unknown route key")
	// ErrUnknownScreen is returned when a push names a screen the registry was not told about.
	ErrUnknownScreen = errors.New("route: unknown screen")
	// ErrEmptyStack is returned by BackAction when there is nothing to pop.
	ErrEmptyStack = errors.New("route: stack is empty")
)

// Route is a single entry in the stack. Key is unique per push.
type Route struct {
	Key    string
	Name   string
	Params map[string]string
}

// Options are the per-route display options.
// HeaderTitle is a pointer so "not set" and "set to empty" stay distinct.
type Options struct {
	Title       string
	HeaderTitle *string
}

// Merge returns o with any fields set in override applied on top.
func (o Options) Merge(override Options) Options {
	if override.Title != "" {
		o.Title = override.Title
	}
	if override.HeaderTitle != nil {
		o.HeaderTitle = override.HeaderTitle
	}
	return o
}

// HeaderTitle is a helper for building Options literals.
func HeaderTitle(s string) *string {
	return &s
}

// NavigationState is an ordered stack of routes plus the index of the active one.
type NavigationState struct {
	Routes []Route
	Index  int
}

// Keys returns the route keys in stack order.
func (s NavigationState) Keys() []string {
	keys := make([]string, len(s.Routes))
	for i, r := range s.Routes {
		keys[i] = r.Key
	}
	return keys
}

// Contains reports whether key is in the stack.
func (s NavigationState) Contains(key string) bool {
	return s.indexOf(key) >= 0
}

// Top returns the active route, or false if the stack is empty.
func (s NavigationState) Top() (Route, bool) {
	if len(s.Routes) == 0 || s.Index < 0 || s.Index >= len(s.Routes) {
		return Route{}, false
	}
	return s.Routes[s.Index], true
}

func (s NavigationState) indexOf(key string) int {
	for i, r := range s.Routes {
		if r.Key == key {
			return i
		}
	}
	return -1
}

// clone returns a copy whose Routes slice does not alias s.
func (s NavigationState) clone() NavigationState {
	routes := make([]Route, len(s.Routes))
	copy(routes, s.Routes)
	return NavigationState{Routes: routes, Index: s.Index}
}

// NewKey generates a key for a route named name.
func NewKey(name string) string {
	return fmt.Sprintf("%s-%s", name, uuid.NewString()[:8])
}
