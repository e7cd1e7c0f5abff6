// Package parser converts command strings into Command structs.
// Intentionally dumb: the verb is the first whitespace-delimited token,
// matched case-insensitively against a fixed synonym table. Everything
// after it is the argument.
package parser

import "strings"

// Action is the canonical command a verb maps to.
type Action int

const (
	ActionUnknown Action = iota
	ActionMove
	ActionLook
	ActionTake
	ActionUse
	ActionAttack
	ActionInventory
	ActionStatus
	ActionHelp
)

// Command is the parsed representation of a player command.
type Command struct {
	Action Action
	Arg    string // direction, item name, or creature name; may be empty
}

var verbs = map[string]Action{
	"go":   ActionMove,
	"move": ActionMove,
	"walk": ActionMove,

	"look": ActionLook,
	"l":    ActionLook,

	"take": ActionTake,
	"get":  ActionTake,

	"use": ActionUse,

	"attack": ActionAttack,
	"fight":  ActionAttack,
	"hit":    ActionAttack,

	"inventory": ActionInventory,
	"inv":       ActionInventory,
	"i":         ActionInventory,

	"status": ActionStatus,
	"health": ActionStatus,
	"hp":     ActionStatus,

	"help": ActionHelp,
	"h":    ActionHelp,
	"?":    ActionHelp,
}

// Parse converts a raw input line into a Command. Blank input and
// unrecognized verbs both come back as ActionUnknown, never an error.
func Parse(input string) Command {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(words) == 0 {
		return Command{}
	}

	action, ok := verbs[words[0]]
	if !ok {
		return Command{}
	}

	return Command{
		Action: action,
		Arg:    strings.Join(words[1:], " "),
	}
}
