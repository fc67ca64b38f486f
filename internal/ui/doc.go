// Package ui renders a navigable screen stack with Bubble Tea.
//
// Core abstractions:
//   - View: a scene with its own model, update, view (Elm-style)
//   - StackView: joins the route registry and the close-lifecycle machine; resolves titles and scenes
//   - SceneView: a component's view wrapped with its route, navigation handle and screen props
//   - CardStack: live scenes in stack order, one per route
//   - AppModel: the tea.Model that draws headers and cards and drives back/close transitions
package ui
