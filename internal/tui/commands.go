package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/notty/internal/game"
)

var errUnknownCommand = errors.New("unknown command")

// command is one parsed line of input
type command struct {
	action game.Action
	quit   bool
	help   bool
}

// parseCommand turns typed input into a game action for the seat whose view
// is v. Snatch takes the target seat number and may omit it when only one
// opponent can be snatched from.
func parseCommand(input string, v game.View) (command, error) {
	parts := strings.Fields(strings.ToLower(input))
	if len(parts) == 0 {
		return command{}, fmt.Errorf("%w: type 'help' for commands", errUnknownCommand)
	}
	name, args := parts[0], parts[1:]

	switch name {
	case "quit", "q", "exit":
		return command{quit: true}, nil
	case "help", "?", "h":
		return command{help: true}, nil
	case "draw", "d":
		return command{action: game.Action{Kind: game.Draw}}, nil
	case "commit", "done", "c":
		return command{action: game.Action{Kind: game.CommitDraw}}, nil
	case "return", "r":
		return command{action: game.Action{Kind: game.ReturnCard}}, nil
	case "skip", "pass", "k":
		return command{action: game.Action{Kind: game.Skip}}, nil
	case "accept", "yes", "y":
		return command{action: game.Action{Kind: game.AcceptDiscard}}, nil
	case "decline", "no", "n":
		return command{action: game.Action{Kind: game.DeclineDiscard}}, nil
	case "snatch", "s":
		target, err := snatchTarget(args, v)
		if err != nil {
			return command{}, err
		}
		return command{action: game.SnatchFrom(target)}, nil
	}
	return command{}, fmt.Errorf("%w: %s", errUnknownCommand, name)
}

func snatchTarget(args []string, v game.View) (game.PlayerID, error) {
	if len(args) == 0 {
		if len(v.SnatchTargets) == 1 {
			return v.SnatchTargets[0], nil
		}
		return game.NoPlayer, fmt.Errorf("snatch from whom? 'snatch <seat>'")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return game.NoPlayer, fmt.Errorf("invalid seat: %s", args[0])
	}
	return game.PlayerID(n), nil
}

// helpLines describes every command
var helpLines = []string{
	"Commands:",
	"  draw (d)          - draw a card from the deck (up to 3 per turn)",
	"  commit (c)        - add the drawn cards to your hand",
	"  return (r)        - put the last drawn card back",
	"  snatch (s) <seat> - take a random card from an opponent",
	"  skip (k)          - end your turn without acting",
	"  accept (y)        - discard the group found in your hand",
	"  decline (n)       - keep the group",
	"  help, quit",
}
