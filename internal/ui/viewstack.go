package ui

import "stackview/internal/route"

// Card is a live scene in the renderer, keyed by route.
type Card struct {
	Route    route.Route
	View     View
	Entering bool // entrance transition still running
}

// CardStack keeps one card per route, in stack order.
type CardStack struct {
	Cards []Card
}

// Push adds a card to the top of the stack.
func (s *CardStack) Push(c Card) {
	s.Cards = append(s.Cards, c)
}

// Peek returns the top card without removing it.
// Returns nil if the stack is empty.
func (s *CardStack) Peek() *Card {
	if len(s.Cards) == 0 {
		return nil
	}
	return &s.Cards[len(s.Cards)-1]
}

// Find returns the card for key, or nil.
func (s *CardStack) Find(key string) *Card {
	for i := range s.Cards {
		if s.Cards[i].Route.Key == key {
			return &s.Cards[i]
		}
	}
	return nil
}

// Len returns the number of cards in the stack.
func (s *CardStack) Len() int {
	return len(s.Cards)
}

// Sync rebuilds the stack to match routes. Existing cards keep their views;
// build is called for routes without a card. Cards whose route is gone are
// dropped. It returns the cards that were newly built.
func (s *CardStack) Sync(routes []route.Route, build func(route.Route) (Card, error)) ([]Card, error) {
	next := make([]Card, 0, len(routes))
	var added []Card
	var firstErr error
	for _, r := range routes {
		if c := s.Find(r.Key); c != nil {
			next = append(next, *c)
			continue
		}
		c, err := build(r)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		next = append(next, c)
		added = append(added, c)
	}
	s.Cards = next
	return added, firstErr
}
