// Package stack tracks the transition lifecycle of routes in a single screen stack.
//
// A Machine keeps two key sets next to the registry's route list:
//   - initial: routes present when the machine was created (no entrance animation)
//   - closing: routes whose exit has begun but whose removal is not yet confirmed
//
// Per key the lifecycle is ABSENT -> PRESENT -> CLOSING -> ABSENT. BeginClose
// never touches the registry; ConfirmClose is the only place a pop is dispatched.
package stack

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"stackview/internal/route"
)

// ErrRouteNotPresent is returned by BeginClose for a key that is not in the stack.
var ErrRouteNotPresent = errors.New("stack: route not present in navigation state")

// Navigator is the part of the route registry the machine depends on.
type Navigator interface {
	State() route.NavigationState
	Dispatch(route.Action) error
}

// Observer receives lifecycle notifications. Implementations must not call
// back into the Machine.
type Observer interface {
	BeginClose(key string)
	ConfirmClose(key string, dispatchErr error)
	Reconciled(dropped []string)
}

// State is a snapshot of the machine's key sets, in insertion order.
type State struct {
	Initial []string
	Closing []string
}

// Machine is not safe for concurrent use. It is meant to be driven from a
// single UI event loop.
type Machine struct {
	nav      Navigator
	initial  []string
	closing  []string
	logger   *slog.Logger
	observer Observer
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithObserver attaches an Observer.
func WithObserver(o Observer) Option {
	return func(m *Machine) { m.observer = o }
}

// New creates a Machine whose initial set is the keys currently in nav.
func New(nav Navigator, opts ...Option) *Machine {
	m := &Machine{
		nav:     nav,
		initial: nav.State().Keys(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger.Debug("stack mounted", "initial", m.initial)
	return m
}

// IsInitial reports whether key was in the stack at construction and has not been closed since.
func (m *Machine) IsInitial(key string) bool {
	return slices.Contains(m.initial, key)
}

// IsClosing reports whether key has begun closing and is awaiting confirmation.
func (m *Machine) IsClosing(key string) bool {
	return slices.Contains(m.closing, key)
}

// Snapshot returns a copy of the current key sets.
func (m *Machine) Snapshot() State {
	return State{
		Initial: slices.Clone(m.initial),
		Closing: slices.Clone(m.closing),
	}
}

// BeginClose marks r as closing. Repeated calls before ConfirmClose are
// coalesced. The route stays in the registry until ConfirmClose.
func (m *Machine) BeginClose(r route.Route) error {
	st := m.nav.State()
	m.Reconcile(st)

	if !st.Contains(r.Key) {
		m.logger.Warn("begin close for route not in stack", "key", r.Key)
		return fmt.Errorf("%w: %q", ErrRouteNotPresent, r.Key)
	}
	if m.IsClosing(r.Key) {
		m.logger.Debug("begin close coalesced", "key", r.Key)
		return nil
	}

	m.closing = append(m.closing, r.Key)
	m.logger.Debug("begin close", "key", r.Key, "closing", len(m.closing))
	if m.observer != nil {
		m.observer.BeginClose(r.Key)
	}
	return nil
}

// ConfirmClose completes the close cycle for r: it dispatches a pop for
// r.Key and drops the key from both sets. Without a prior BeginClose it acts
// as an immediate pop. If the key is no longer in the stack, nothing is
// dispatched and only the local sets are cleared; this absorbs duplicate
// completion signals and pops that bypassed the machine.
//
// The local sets are updated even if the dispatch fails, so the key can
// start a fresh cycle; the dispatch error is returned.
func (m *Machine) ConfirmClose(r route.Route) error {
	wasClosing := m.IsClosing(r.Key)
	m.closing = remove(m.closing, r.Key)
	m.initial = remove(m.initial, r.Key)

	if !m.nav.State().Contains(r.Key) {
		if wasClosing {
			m.logger.Debug("closing route left stack before confirm", "key", r.Key)
			if m.observer != nil {
				m.observer.ConfirmClose(r.Key, nil)
			}
		} else {
			m.logger.Debug("confirm close ignored, already closed", "key", r.Key)
		}
		return nil
	}

	err := m.nav.Dispatch(route.PopAction{Key: r.Key})

	if m.observer != nil {
		m.observer.ConfirmClose(r.Key, err)
	}
	if err != nil {
		m.logger.Error("pop dispatch failed", "key", r.Key, "error", err)
		return fmt.Errorf("confirm close %q: %w", r.Key, err)
	}
	m.logger.Debug("confirm close", "key", r.Key)
	return nil
}

// Reconcile drops keys that are no longer in st. This covers pops that went
// straight to the registry without ConfirmClose, so a reused key is not
// blocked from a later BeginClose.
func (m *Machine) Reconcile(st route.NavigationState) {
	var dropped []string
	keep := func(keys []string) []string {
		out := keys[:0]
		for _, k := range keys {
			if st.Contains(k) {
				out = append(out, k)
			} else if !slices.Contains(dropped, k) {
				dropped = append(dropped, k)
			}
		}
		return out
	}
	m.closing = keep(m.closing)
	m.initial = keep(m.initial)

	if len(dropped) == 0 {
		return
	}
	m.logger.Debug("reconciled stale keys", "dropped", dropped)
	if m.observer != nil {
		m.observer.Reconciled(dropped)
	}
}

func remove(keys []string, key string) []string {
	return slices.DeleteFunc(keys, func(k string) bool { return k == key })
}
