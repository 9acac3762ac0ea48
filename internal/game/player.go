package game

import (
	"github.com/lox/notty/internal/deck"
	"github.com/lox/notty/internal/group"
)

// Player is one seat at the table. Its hand is only mutated by State.
type Player struct {
	ID         PlayerID
	Name       string
	Controller Controller

	hand    *deck.Hand
	valid   *group.Group
	largest *group.Group
}

func newPlayer(id PlayerID, cfg PlayerConfig) *Player {
	return &Player{
		ID:         id,
		Name:       cfg.Name,
		Controller: cfg.Controller,
		hand:       deck.NewHand(),
	}
}

// IsHuman returns true for human-controlled seats
func (p *Player) IsHuman() bool {
	return p.Controller == Human
}

// Hand returns a copy of the player's cards in insertion order
func (p *Player) Hand() []deck.Card {
	return p.hand.Cards()
}

// HandSize returns the number of cards held
func (p *Player) HandSize() int {
	return p.hand.Len()
}

// refreshGroups reruns the group detector over the hand
func (p *Player) refreshGroups() {
	cards := p.hand.Cards()
	p.valid, p.largest = nil, nil
	if g, ok := group.FindValid(cards); ok {
		p.valid = &g
	}
	if g, ok := group.FindLargest(cards); ok {
		p.largest = &g
	}
}
