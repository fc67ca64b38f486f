package route

import "fmt"

// Action is a command sent to the registry via Dispatch.
type Action interface {
	fmt.Stringer
	apply(s NavigationState, known func(name string) bool) (NavigationState, error)
}

// PushAction pushes a new route for the named screen.
type PushAction struct {
	Name    string
	Params  map[string]string
	Options Options
	// Key is optional; a fresh key is generated when empty.
	Key string
}

func (a PushAction) String() string { return fmt.Sprintf("push(%s)", a.Name) }

func (a PushAction) apply(s NavigationState, known func(string) bool) (NavigationState, error) {
	if !known(a.Name) {
		return s, fmt.Errorf("%w: %q", ErrUnknownScreen, a.Name)
	}
	key := a.Key
	if key == "" {
		key = NewKey(a.Name)
	}
	if s.Contains(key) {
		return s, fmt.Errorf("route: duplicate key %q", key)
	}
	next := s.clone()
	next.Routes = append(next.Routes, Route{Key: key, Name: a.Name, Params: a.Params})
	next.Index = len(next.Routes) - 1
	return next, nil
}

// PopAction removes the route with Key and every route above it.
type PopAction struct {
	Key string
}

func (a PopAction) String() string { return fmt.Sprintf("pop(%s)", a.Key) }

func (a PopAction) apply(s NavigationState, _ func(string) bool) (NavigationState, error) {
	i := s.indexOf(a.Key)
	if i < 0 {
		return s, fmt.Errorf("%w: %q", ErrUnknownRoute, a.Key)
	}
	next := s.clone()
	next.Routes = next.Routes[:i]
	next.Index = len(next.Routes) - 1
	return next, nil
}

// BackAction pops the active route.
type BackAction struct{}

func (BackAction) String() string { return "back" }

func (BackAction) apply(s NavigationState, known func(string) bool) (NavigationState, error) {
	top, ok := s.Top()
	if !ok {
		return s, ErrEmptyStack
	}
	return PopAction{Key: top.Key}.apply(s, known)
}
