package ui

import (
	"log/slog"

	"stackview/internal/logging"
	"stackview/internal/route"
	"stackview/internal/stack"
	"stackview/internal/transition"
)

// StackProps is the full set of inputs a renderer needs for one frame.
type StackProps struct {
	Preset     transition.Preset
	HeaderMode transition.HeaderMode
	State      route.NavigationState
	Initial    []string
	Closing    []string
}

// StackView connects a route registry to the close-lifecycle machine and
// resolves titles and scenes for the renderer.
type StackView struct {
	registry    *route.Registry
	screens     Screens
	descriptors Descriptors
	machine     *stack.Machine
	transition  transition.Resolved
	screenProps ScreenProps
	logger      *slog.Logger
	unsubscribe func()
}

// StackViewOption configures a StackView.
type StackViewOption func(*stackViewOptions)

type stackViewOptions struct {
	screenProps ScreenProps
	logger      *slog.Logger
	machineOpts []stack.Option
}

// WithScreenProps sets the props shared by every scene.
func WithScreenProps(p ScreenProps) StackViewOption {
	return func(o *stackViewOptions) { o.screenProps = p }
}

// WithLogger sets the logger for the view and its machine.
func WithLogger(l *slog.Logger) StackViewOption {
	return func(o *stackViewOptions) { o.logger = l }
}

// WithMachineOptions passes extra options to the underlying stack.Machine.
func WithMachineOptions(opts ...stack.Option) StackViewOption {
	return func(o *stackViewOptions) { o.machineOpts = append(o.machineOpts, opts...) }
}

// NewStackView mounts a stack over reg. Routes already in reg become the
// machine's initial routes.
func NewStackView(reg *route.Registry, screens Screens, cfg transition.Config, platform transition.Platform, opts ...StackViewOption) *StackView {
	o := stackViewOptions{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	machineOpts := append([]stack.Option{stack.WithLogger(o.logger)}, o.machineOpts...)
	v := &StackView{
		registry:    reg,
		screens:     screens,
		descriptors: BuildDescriptors(reg, screens),
		machine:     stack.New(reg, machineOpts...),
		transition:  transition.Resolve(cfg, platform),
		screenProps: o.screenProps,
		logger:      o.logger,
	}
	v.unsubscribe = reg.Subscribe(v.sync)
	v.logger.Info("stack view mounted",
		"preset", v.transition.Preset.Name,
		"header_mode", string(v.transition.HeaderMode),
		"routes", len(reg.State().Routes))
	return v
}

// sync runs after every registry change.
func (v *StackView) sync(st route.NavigationState) {
	v.descriptors = BuildDescriptors(v.registry, v.screens)
	v.machine.Reconcile(st)
}

// Close detaches the view from the registry.
func (v *StackView) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// Registry returns the registry this view is mounted on.
func (v *StackView) Registry() *route.Registry {
	return v.registry
}

// Preset returns the selected transition preset.
func (v *StackView) Preset() transition.Preset {
	return v.transition.Preset
}

// HeaderMode returns the effective header mode.
func (v *StackView) HeaderMode() transition.HeaderMode {
	return v.transition.HeaderMode
}

// Props returns a snapshot of everything the renderer reads.
func (v *StackView) Props() StackProps {
	snap := v.machine.Snapshot()
	return StackProps{
		Preset:     v.transition.Preset,
		HeaderMode: v.transition.HeaderMode,
		State:      v.registry.State(),
		Initial:    snap.Initial,
		Closing:    snap.Closing,
	}
}

// IsInitial reports whether key was mounted with the stack.
func (v *StackView) IsInitial(key string) bool {
	return v.machine.IsInitial(key)
}

// IsClosing reports whether key is mid-exit.
func (v *StackView) IsClosing(key string) bool {
	return v.machine.IsClosing(key)
}

// OnGoBack starts closing r. The route stays on screen until OnCloseRoute.
func (v *StackView) OnGoBack(r route.Route) error {
	return v.machine.BeginClose(r)
}

// OnCloseRoute is called when r's exit transition finishes. It pops r from
// the registry.
func (v *StackView) OnCloseRoute(r route.Route) error {
	return v.machine.ConfirmClose(r)
}

// ResolveTitle returns the header title for r. A set HeaderTitle wins over
// Title, even when empty.
func (v *StackView) ResolveTitle(r route.Route) (string, error) {
	d, ok := v.descriptors[r.Key]
	if !ok {
		return "", missingDescriptor(r.Key)
	}
	if d.Options.HeaderTitle != nil {
		return *d.Options.HeaderTitle, nil
	}
	return d.Options.Title, nil
}

// RenderScene instantiates r's component inside a SceneView. Each call
// builds a fresh view; nothing is cached.
func (v *StackView) RenderScene(r route.Route) (View, error) {
	d, ok := v.descriptors[r.Key]
	if !ok {
		return nil, missingDescriptor(r.Key)
	}
	component := d.GetComponent()
	if component == nil {
		return nil, missingDescriptor(r.Key)
	}
	props := SceneProps{
		Route:       r,
		Navigation:  d.Navigation,
		ScreenProps: v.screenProps,
	}
	return &SceneView{Props: props, Child: component(props)}, nil
}
