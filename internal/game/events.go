package game

import (
	"github.com/lox/notty/internal/deck"
	"github.com/lox/notty/internal/group"
)

// EventType names a game event
type EventType string

const (
	EventTypeDealt           EventType = "dealt"
	EventTypeTurnStarted     EventType = "turn_started"
	EventTypeCardDrawn       EventType = "card_drawn"
	EventTypeCardReturned    EventType = "card_returned"
	EventTypeDrawCommitted   EventType = "draw_committed"
	EventTypeCardSnatched    EventType = "card_snatched"
	EventTypeSkipped         EventType = "skipped"
	EventTypeGroupFound      EventType = "group_found"
	EventTypeLargerGroup     EventType = "larger_group"
	EventTypeGroupDiscarded  EventType = "group_discarded"
	EventTypeDiscardDeclined EventType = "discard_declined"
	EventTypeGameOver        EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is anything published by State while it changes
type Event interface {
	EventType() EventType
}

// DealtEvent is published once the initial hands are dealt
type DealtEvent struct {
	HandSizes map[PlayerID]int
	DeckSize  int
}

// TurnStartedEvent is published whenever play passes to a player
type TurnStartedEvent struct {
	Player PlayerID
	Turn   int
}

// CardDrawnEvent is published when a card moves from the deck to staging
type CardDrawnEvent struct {
	Player PlayerID
	Card   deck.Card
	Staged int
}

// CardReturnedEvent is published when a staged card goes back to the deck
type CardReturnedEvent struct {
	Player PlayerID
	Card   deck.Card
}

// DrawCommittedEvent is published when staged cards join the hand
type DrawCommittedEvent struct {
	Player   PlayerID
	Cards    []deck.Card
	HandSize int
}

// CardSnatchedEvent is published when a card moves between hands
type CardSnatchedEvent struct {
	Player PlayerID
	From   PlayerID
	Card   deck.Card
}

// SkippedEvent is published when a player passes without acting
type SkippedEvent struct {
	Player PlayerID
}

// GroupFoundEvent is published when the acting player's hand holds a valid
// group and a discard decision is now pending
type GroupFoundEvent struct {
	Player PlayerID
	Group  group.Group
}

// LargerGroupEvent is published alongside GroupFoundEvent when the hand
// holds a strictly larger group than the one offered for discard
type LargerGroupEvent struct {
	Player  PlayerID
	Valid   group.Group
	Largest group.Group
}

// GroupDiscardedEvent is published when a pending group is discarded back
// into the deck
type GroupDiscardedEvent struct {
	Player   PlayerID
	Group    group.Group
	HandSize int
}

// DiscardDeclinedEvent is published when a player keeps a pending group
type DiscardDeclinedEvent struct {
	Player PlayerID
	Group  group.Group
}

// GameOverEvent is published when a hand reaches zero cards
type GameOverEvent struct {
	Winner PlayerID
	Turns  int
}

func (DealtEvent) EventType() EventType           { return EventTypeDealt }
func (TurnStartedEvent) EventType() EventType     { return EventTypeTurnStarted }
func (CardDrawnEvent) EventType() EventType       { return EventTypeCardDrawn }
func (CardReturnedEvent) EventType() EventType    { return EventTypeCardReturned }
func (DrawCommittedEvent) EventType() EventType   { return EventTypeDrawCommitted }
func (CardSnatchedEvent) EventType() EventType    { return EventTypeCardSnatched }
func (SkippedEvent) EventType() EventType         { return EventTypeSkipped }
func (GroupFoundEvent) EventType() EventType      { return EventTypeGroupFound }
func (LargerGroupEvent) EventType() EventType     { return EventTypeLargerGroup }
func (GroupDiscardedEvent) EventType() EventType  { return EventTypeGroupDiscarded }
func (DiscardDeclinedEvent) EventType() EventType { return EventTypeDiscardDeclined }
func (GameOverEvent) EventType() EventType        { return EventTypeGameOver }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event Event)
}

// SubscriberFunc adapts a function to EventSubscriber
type SubscriberFunc func(Event)

// OnEvent calls f(event)
func (f SubscriberFunc) OnEvent(event Event) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Publish(event Event)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers run on
// the caller's goroutine and must not call back into State.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to all subscribers in subscription order
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

type nopBus struct{}

func (nopBus) Subscribe(EventSubscriber) {}
func (nopBus) Publish(Event)             {}
