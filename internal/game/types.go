package game

import "fmt"

// PlayerID identifies a seat. Seats are numbered from 1.
type PlayerID int

// NoPlayer is the zero PlayerID
const NoPlayer PlayerID = 0

// Controller says who makes decisions for a seat
type Controller int

const (
	Human Controller = iota
	Computer
)

// String returns the string representation of the controller
func (c Controller) String() string {
	switch c {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "unknown"
	}
}

// Phase is the state of the turn state machine
type Phase int

const (
	// AwaitingAction: the current player may draw, snatch or skip
	AwaitingAction Phase = iota
	// AwaitingDiscardDecision: a valid group was found in the current
	// player's hand and they must accept or decline discarding it
	AwaitingDiscardDecision
	// GameOver: a hand reached zero cards
	GameOver
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case AwaitingAction:
		return "awaiting_action"
	case AwaitingDiscardDecision:
		return "awaiting_discard_decision"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ActionKind enumerates the moves a player can make
type ActionKind int

const (
	Draw ActionKind = iota
	CommitDraw
	ReturnCard
	Snatch
	Skip
	AcceptDiscard
	DeclineDiscard
)

var actionNames = map[ActionKind]string{
	Draw:           "draw",
	CommitDraw:     "commit_draw",
	ReturnCard:     "return_card",
	Snatch:         "snatch",
	Skip:           "skip",
	AcceptDiscard:  "accept_discard",
	DeclineDiscard: "decline_discard",
}

// String returns the string representation of the action kind
func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// ParseActionKind parses the name produced by ActionKind.String
func ParseActionKind(s string) (ActionKind, error) {
	for k, name := range actionNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown action: %q", s)
}

// Action is a move submitted by the current player. Target is only read for
// Snatch and names the opponent to take from.
type Action struct {
	Kind   ActionKind
	Target PlayerID
}

// SnatchFrom returns a Snatch action against target
func SnatchFrom(target PlayerID) Action {
	return Action{Kind: Snatch, Target: target}
}

// String returns the string representation of the action
func (a Action) String() string {
	if a.Kind == Snatch {
		return fmt.Sprintf("snatch(%d)", a.Target)
	}
	return a.Kind.String()
}
