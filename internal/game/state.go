package game

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/lox/notty/internal/deck"
	"github.com/lox/notty/internal/group"
)

// TurnState is the bookkeeping for the turn in progress
type TurnState struct {
	Current PlayerID
	Drawn   []deck.Card  // staged from the deck, not yet in the hand
	Pending *group.Group // group awaiting an accept or decline
}

// State is a complete game: deck, players and turn state. It is not safe for
// concurrent use; exactly one host drives it.
type State struct {
	players []*Player
	deck    *deck.Deck
	rules   Rules
	rng     *rand.Rand
	events  EventBus

	turn   TurnState
	phase  Phase
	winner PlayerID
	turns  int

	inventory map[deck.Card]int // every card in play, for conservation checks
}

// New shuffles a full deck with rng and deals the opening hands
func New(cfg Config, rng *rand.Rand) (*State, error) {
	return NewWithDeck(cfg, deck.NewDeck(rng), rng)
}

// NewWithDeck deals the opening hands from d, one card at a time round the
// table starting at seat 1. rng is used for reshuffles and snatches.
func NewWithDeck(cfg Config, d *deck.Deck, rng *rand.Rand) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if need := len(cfg.Players) * cfg.Rules.InitialHandSize; d.Len() < need {
		return nil, fmt.Errorf("%w: deck holds %d cards, deal needs %d", ErrInvalidConfig, d.Len(), need)
	}

	s := &State{
		deck:      d,
		rules:     cfg.Rules,
		rng:       rng,
		events:    cfg.Events,
		inventory: make(map[deck.Card]int),
	}
	if s.events == nil {
		s.events = nopBus{}
	}
	for _, c := range d.Cards() {
		s.inventory[c]++
	}
	for i, pc := range cfg.Players {
		s.players = append(s.players, newPlayer(PlayerID(i+1), pc))
	}

	if err := s.deal(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *State) deal() error {
	for range s.rules.InitialHandSize {
		for _, p := range s.players {
			card, err := s.deck.Draw()
			if err != nil {
				return fmt.Errorf("deal: %w", err)
			}
			p.hand.Add(card)
		}
	}

	sizes := make(map[PlayerID]int, len(s.players))
	for _, p := range s.players {
		p.refreshGroups()
		sizes[p.ID] = p.HandSize()
	}

	s.turn = TurnState{Current: s.players[0].ID}
	s.phase = AwaitingAction
	s.turns = 1
	s.events.Publish(DealtEvent{HandSizes: sizes, DeckSize: s.deck.Len()})
	s.events.Publish(TurnStartedEvent{Player: s.turn.Current, Turn: s.turns})
	return nil
}

// Phase returns the current phase
func (s *State) Phase() Phase {
	return s.phase
}

// Rules returns the limits this game was created with
func (s *State) Rules() Rules {
	return s.rules
}

// Current returns the player whose turn it is
func (s *State) Current() *Player {
	return s.player(s.turn.Current)
}

// Turn returns a copy of the turn state
func (s *State) Turn() TurnState {
	t := TurnState{Current: s.turn.Current, Drawn: slices.Clone(s.turn.Drawn)}
	if s.turn.Pending != nil {
		g := s.turn.Pending.Clone()
		t.Pending = &g
	}
	return t
}

// TurnNumber returns how many turns have started, counting the first as 1
func (s *State) TurnNumber() int {
	return s.turns
}

// Players returns the seats in id order
func (s *State) Players() []*Player {
	return slices.Clone(s.players)
}

// Player returns the seat with id, or nil
func (s *State) Player(id PlayerID) *Player {
	return s.player(id)
}

// NumPlayers returns the number of seats
func (s *State) NumPlayers() int {
	return len(s.players)
}

// DeckSize returns the number of cards left in the deck
func (s *State) DeckSize() int {
	return s.deck.Len()
}

// Winner returns the winning seat once the game is over
func (s *State) Winner() (PlayerID, bool) {
	return s.winner, s.winner != NoPlayer
}

// GroupView is the pair of groups shown for one hand
type GroupView struct {
	Valid   *group.Group // the group offered for discard
	Largest *group.Group // the biggest group present
}

// Groups returns copies of the valid and largest groups last detected in the
// player's hand
func (s *State) Groups(id PlayerID) GroupView {
	p := s.player(id)
	if p == nil {
		return GroupView{}
	}
	var v GroupView
	if p.valid != nil {
		g := p.valid.Clone()
		v.Valid = &g
	}
	if p.largest != nil {
		g := p.largest.Clone()
		v.Largest = &g
	}
	return v
}

// CardCount returns deck plus hands plus staging. It never changes during a
// game.
func (s *State) CardCount() int {
	n := s.deck.Len() + len(s.turn.Drawn)
	for _, p := range s.players {
		n += p.hand.Len()
	}
	return n
}

// CheckConservation verifies every card dealt at the start is still in
// exactly one place: the deck, a hand, or staging
func (s *State) CheckConservation() error {
	seen := make(map[deck.Card]int, len(s.inventory))
	for _, c := range s.deck.Cards() {
		seen[c]++
	}
	for _, c := range s.turn.Drawn {
		seen[c]++
	}
	for _, p := range s.players {
		for _, c := range p.hand.Cards() {
			seen[c]++
		}
	}

	for c, want := range s.inventory {
		if got := seen[c]; got != want {
			return fmt.Errorf("card conservation violated: %s seen %d times, want %d", c, got, want)
		}
	}
	for c, got := range seen {
		if _, ok := s.inventory[c]; !ok {
			return fmt.Errorf("card conservation violated: %s appeared %d times from nowhere", c, got)
		}
	}
	return nil
}

func (s *State) player(id PlayerID) *Player {
	if id < 1 || int(id) > len(s.players) {
		return nil
	}
	return s.players[id-1]
}

func (s *State) next(id PlayerID) PlayerID {
	return PlayerID(int(id)%len(s.players) + 1)
}
