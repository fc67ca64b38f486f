package ui

import "stackview/internal/route"

// NavigateMsg asks the stack to push a screen. Scenes send it via SceneProps.Navigate.
type NavigateMsg struct {
	Name   string
	Params map[string]string
}

// GoBackMsg asks the stack to close the route with Key through its exit transition.
type GoBackMsg struct {
	Key string
}

// CloseRouteMsg fires when a route's exit transition has finished.
type CloseRouteMsg struct {
	Route route.Route
}

// EnteredMsg fires when a card's entrance transition has finished.
type EnteredMsg struct {
	Key string
}
