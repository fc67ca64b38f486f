package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TextScreen returns a component that shows body and pushes next on enter.
func TextScreen(body, next string) Component {
	return func(props SceneProps) View {
		return &textScreen{props: props, body: body, next: next}
	}
}

type textScreen struct {
	props SceneProps
	body  string
	next  string
}

func (s *textScreen) Init() tea.Cmd { return nil }

func (s *textScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "l":
			if s.next != "" {
				return s, s.props.Navigate(s.next, map[string]string{"from": s.props.Route.Key})
			}
		case "x":
			return s, s.props.GoBack()
		}
	}
	return s, nil
}

func (s *textScreen) View() string {
	out := Styles.Body.Render(s.body)
	if from := s.props.Navigation.Params()["from"]; from != "" {
		out += "\n" + Styles.Hint.Render("opened from "+from)
	}
	if s.next != "" {
		out += "\n\n" + Styles.Hint.Render("enter: open "+s.next)
	}
	return out
}
