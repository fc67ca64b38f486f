package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stackview/internal/route"
	"stackview/internal/transition"
	"stackview/internal/ui/textutil"
)

// AppModel is the root model. It renders a StackView as a column of cards
// and turns key presses and scene messages into stack operations.
type AppModel struct {
	Stack  *StackView
	Keys   KeyMap
	Cards  CardStack
	Width  int
	Height int
	Err    error // last stack error, shown in the status line

	help help.Model
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model for sv.
func NewAppModel(sv *StackView) *AppModel {
	m := &AppModel{
		Stack: sv,
		Keys:  DefaultKeyMap(),
		Width: 60,
		help:  newHelpModel(),
	}
	// Initial cards are already on screen; no entrance transition.
	_, err := m.Cards.Sync(sv.Registry().State().Routes, m.buildCard)
	m.Err = err
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range a.Cards.Cards {
		cmds = append(cmds, c.View.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	return a, tea.Batch(cmd, a.syncCards())
}

func (a *appModelAdapter) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return nil
	case NavigateMsg:
		if err := a.Stack.Registry().Dispatch(route.PushAction{Name: msg.Name, Params: msg.Params}); err != nil {
			a.Err = err
		}
		return nil
	case GoBackMsg:
		r, ok := a.routeByKey(msg.Key)
		if !ok {
			return nil
		}
		return a.goBack(r)
	case CloseRouteMsg:
		a.Err = a.Stack.OnCloseRoute(msg.Route)
		return nil
	case EnteredMsg:
		if c := a.Cards.Find(msg.Key); c != nil {
			c.Entering = false
		}
		return nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.Keys.Quit):
			return tea.Quit
		case key.Matches(msg, a.Keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return nil
		case key.Matches(msg, a.Keys.Back):
			top, ok := a.Stack.Registry().State().Top()
			if !ok {
				return nil
			}
			return a.goBack(top)
		}
	}

	top := a.Cards.Peek()
	if top == nil || a.Stack.IsClosing(top.Route.Key) {
		return nil
	}
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd
}

// goBack begins closing r and schedules its confirmation after the preset's
// close duration. The first route in the stack has nothing to reveal and
// is not closed.
func (a *appModelAdapter) goBack(r route.Route) tea.Cmd {
	st := a.Stack.Registry().State()
	if len(st.Routes) <= 1 || a.Stack.IsClosing(r.Key) {
		return nil
	}
	if err := a.Stack.OnGoBack(r); err != nil {
		a.Err = err
		return nil
	}
	a.Err = nil
	return tea.Tick(a.Stack.Preset().Close.Duration, func(time.Time) tea.Msg {
		return CloseRouteMsg{Route: r}
	})
}

func (a *appModelAdapter) routeByKey(key string) (route.Route, bool) {
	st := a.Stack.Registry().State()
	i := stateIndex(st, key)
	if i < 0 {
		return route.Route{}, false
	}
	return st.Routes[i], true
}

// syncCards brings the card stack in line with the registry. New cards run
// their entrance transition unless they were mounted with the stack.
func (m *AppModel) syncCards() tea.Cmd {
	added, err := m.Cards.Sync(m.Stack.Registry().State().Routes, m.buildCard)
	if err != nil {
		m.Err = err
	}
	var cmds []tea.Cmd
	for _, c := range added {
		cmds = append(cmds, c.View.Init())
		if c.Entering {
			k := c.Route.Key
			cmds = append(cmds, tea.Tick(m.Stack.Preset().Open.Duration, func(time.Time) tea.Msg {
				return EnteredMsg{Key: k}
			}))
		}
	}
	return tea.Batch(cmds...)
}

func (m *AppModel) buildCard(r route.Route) (Card, error) {
	v, err := m.Stack.RenderScene(r)
	if err != nil {
		return Card{}, err
	}
	return Card{Route: r, View: v, Entering: !m.Stack.IsInitial(r.Key)}, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	props := a.Stack.Props()

	if props.HeaderMode == transition.HeaderFloat {
		b.WriteString(a.renderHeader(props.State, len(props.State.Routes)-1))
		b.WriteString("\n")
	}

	// While the top card closes, the card it reveals is drawn beneath it.
	n := len(a.Cards.Cards)
	start := n - 1
	if n > 1 && a.Stack.IsClosing(a.Cards.Cards[n-1].Route.Key) {
		start = n - 2
	}
	for i := max(start, 0); i < n; i++ {
		b.WriteString(a.renderCard(props, i))
		b.WriteString("\n")
	}

	b.WriteString(a.renderBreadcrumb(props))
	if a.Err != nil {
		b.WriteString("\n" + Styles.Error.Render(a.Err.Error()))
	}
	b.WriteString("\n" + a.help.View(a.Keys))
	return b.String()
}

func (a *appModelAdapter) renderCard(props StackProps, i int) string {
	c := a.Cards.Cards[i]
	style := Styles.Card
	switch {
	case a.Stack.IsClosing(c.Route.Key):
		style = Styles.CardClosing
	case c.Entering:
		style = Styles.CardEntering
	}
	width := max(a.Width-style.GetHorizontalFrameSize(), 10)

	body := c.View.View()
	if props.HeaderMode == transition.HeaderScreen {
		body = a.renderHeader(props.State, stateIndex(props.State, c.Route.Key)) + "\n" + body
	}
	return style.Width(width).Render(body)
}

func stateIndex(st route.NavigationState, key string) int {
	for i, r := range st.Routes {
		if r.Key == key {
			return i
		}
	}
	return -1
}

// renderHeader draws the header for the route at index i.
func (a *appModelAdapter) renderHeader(st route.NavigationState, i int) string {
	if i < 0 || i >= len(st.Routes) {
		return ""
	}
	title, err := a.Stack.ResolveTitle(st.Routes[i])
	if err != nil {
		return Styles.Error.Render(err.Error())
	}
	back := ""
	if i > 0 {
		if prev, err := a.Stack.ResolveTitle(st.Routes[i-1]); err == nil {
			back = "‹ " + prev
		}
	}
	width := max(a.Width-Styles.Header.GetHorizontalFrameSize(), 1)
	back, title = textutil.HeaderLine(back, title, width)

	line := Styles.HeaderTitle.Render(title)
	if back != "" {
		line = Styles.HeaderBack.Render(back) + " " + line
	}
	return Styles.Header.Render(line)
}

// renderBreadcrumb lists route keys with lifecycle markers:
// "•" initial, "+" entering, "×" closing.
func (a *appModelAdapter) renderBreadcrumb(props StackProps) string {
	parts := make([]string, 0, len(props.State.Routes))
	for _, r := range props.State.Routes {
		marker := ""
		switch {
		case a.Stack.IsClosing(r.Key):
			marker = "×"
		case a.Stack.IsInitial(r.Key):
			marker = "•"
		default:
			if c := a.Cards.Find(r.Key); c != nil && c.Entering {
				marker = "+"
			}
		}
		parts = append(parts, marker+r.Key)
	}
	line := fmt.Sprintf("%s  %s", props.Preset.Name, strings.Join(parts, " › "))
	return Styles.Marker.Render(lipgloss.NewStyle().MaxWidth(max(a.Width, 1)).Render(line))
}
