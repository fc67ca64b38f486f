package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"stackview/internal/route"
)

// ErrMissingDescriptor is returned when a route has no descriptor. It means
// the registry and the screen table disagree, which is an integration bug.
var ErrMissingDescriptor = errors.New("ui: no descriptor for route")

// ScreenProps are shared properties handed to every scene.
type ScreenProps map[string]any

// SceneProps is what a component receives when it is instantiated.
type SceneProps struct {
	Route       route.Route
	Navigation  *route.Navigation
	ScreenProps ScreenProps
}

// Navigate returns a command asking the stack to push name.
func (p SceneProps) Navigate(name string, params map[string]string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Name: name, Params: params}
	}
}

// GoBack returns a command asking the stack to close this scene's route
// with its exit transition.
func (p SceneProps) GoBack() tea.Cmd {
	key := p.Route.Key
	return func() tea.Msg {
		return GoBackMsg{Key: key}
	}
}

// Component builds the view for a scene.
type Component func(props SceneProps) View

// RouteConfig binds a screen name to its component and default options.
type RouteConfig struct {
	Screen  Component
	Options route.Options
}

// Screens maps screen names to their config.
type Screens map[string]RouteConfig

// Descriptor is everything needed to title and render one route.
type Descriptor struct {
	Key          string
	Options      route.Options
	Navigation   *route.Navigation
	GetComponent func() Component
}

// Descriptors maps route keys to descriptors.
type Descriptors map[string]Descriptor

// BuildDescriptors creates one descriptor per route in reg's current state.
// Push-time options override the screen defaults. Routes for screens missing
// from screens get no descriptor.
func BuildDescriptors(reg *route.Registry, screens Screens) Descriptors {
	st := reg.State()
	out := make(Descriptors, len(st.Routes))
	for _, r := range st.Routes {
		cfg, ok := screens[r.Name]
		if !ok {
			continue
		}
		component := cfg.Screen
		out[r.Key] = Descriptor{
			Key:          r.Key,
			Options:      cfg.Options.Merge(reg.Options(r.Key)),
			Navigation:   reg.Navigation(r.Key),
			GetComponent: func() Component { return component },
		}
	}
	return out
}

// SceneView wraps a component's view with the scene's props.
type SceneView struct {
	Props SceneProps
	Child View
}

var _ View = (*SceneView)(nil)

// Init implements View.
func (s *SceneView) Init() tea.Cmd {
	return s.Child.Init()
}

// Update implements View.
func (s *SceneView) Update(msg tea.Msg) (View, tea.Cmd) {
	child, cmd := s.Child.Update(msg)
	s.Child = child
	return s, cmd
}

// View implements View.
func (s *SceneView) View() string {
	return s.Child.View()
}

func missingDescriptor(key string) error {
	return fmt.Errorf("%w: %q", ErrMissingDescriptor, key)
}
