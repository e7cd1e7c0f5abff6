// Package engine provides the Step() orchestrator that wires together
// parsing, dispatch, item effects, combat, and end-condition checks into a
// single synchronous turn.
package engine

import (
	"fmt"
	"strings"

	"github.com/avlec/stranded/engine/effects"
	"github.com/avlec/stranded/engine/parser"
	"github.com/avlec/stranded/engine/world"
	"github.com/avlec/stranded/types"
)

// Engine owns the world, the RNG, and the two terminal flags for one game
// session. All turn processing is synchronous: one command is fully
// resolved before the next is accepted.
type Engine struct {
	World *world.World
	RNG   *RNG

	turn     int
	gameOver bool
	win      bool
}

// New creates an engine from definitions. The starting room is marked
// visited; its description is produced by the caller's initial "look".
func New(defs *world.Defs, seed int64) *Engine {
	w := world.New(defs)
	w.Visit(w.Player.Location)
	return &Engine{
		World: w,
		RNG:   NewRNG(seed),
	}
}

// GameOver reports whether the session has reached a terminal state.
func (e *Engine) GameOver() bool { return e.gameOver }

// Win reports whether the terminal state was a victory.
func (e *Engine) Win() bool { return e.win }

// Turn returns the number of commands processed so far.
func (e *Engine) Turn() int { return e.turn }

// Step processes one player command and returns the result. Invalid input
// is never an error: every unrecognized or impossible action resolves to a
// descriptive line and leaves state unchanged.
func (e *Engine) Step(input string) types.Result {
	var result types.Result

	// Terminal state: all commands short-circuit with no mutation.
	if e.gameOver {
		result.Lines = append(result.Lines, types.Line{
			Text: "The game is over.", Kind: types.LineWarning,
		})
		return result
	}

	cmd := parser.Parse(input)

	switch cmd.Action {
	case parser.ActionMove:
		result.Lines = e.move(cmd.Arg)
	case parser.ActionLook:
		result.Lines = e.describeRoom(e.World.Player.Location)
	case parser.ActionTake:
		result.Lines = e.take(cmd.Arg)
	case parser.ActionUse:
		result.Lines = e.use(cmd.Arg)
	case parser.ActionAttack:
		result.Lines = e.attack(cmd.Arg)
	case parser.ActionInventory:
		result.Lines = e.inventory()
	case parser.ActionStatus:
		result.Lines = e.status()
	case parser.ActionHelp:
		result.Lines = helpLines()
	default:
		result.Lines = append(result.Lines, types.Line{
			Text: "I don't understand that. Type 'help' for a list of commands.",
			Kind: types.LineInfo,
		})
	}

	// End-condition check runs after every command, success or not. Win is
	// only ever set inside the use path.
	if !e.World.Player.Alive && !e.gameOver {
		e.gameOver = true
		result.Lines = append(result.Lines, types.Line{
			Text: "Your vision fades. You have died, far from home.",
			Kind: types.LineDanger,
		})
	}

	e.turn++
	return result
}

func (e *Engine) move(direction string) []types.Line {
	if direction == "" {
		return []types.Line{{Text: "Go where?", Kind: types.LineWarning}}
	}

	room := e.World.CurrentRoom()
	if room == nil {
		return []types.Line{{Text: "You are somewhere unknown.", Kind: types.LineWarning}}
	}

	target, ok := room.Def.Exits[direction]
	if !ok {
		return []types.Line{{Text: "You can't go that way.", Kind: types.LineWarning}}
	}
	// An exit pointing at a room missing from the registry is treated as
	// unknown-location, not a crash.
	if e.World.Room(target) == nil {
		return []types.Line{{Text: "You can't go that way.", Kind: types.LineWarning}}
	}

	e.World.Player.Location = target
	e.World.Visit(target)
	return e.describeRoom(target)
}

func (e *Engine) take(name string) []types.Line {
	if name == "" {
		return []types.Line{{Text: "Take what?", Kind: types.LineWarning}}
	}

	loc := e.World.Player.Location
	item, ok := e.World.FindItemInRoom(loc, name)
	if !ok {
		return []types.Line{{
			Text: fmt.Sprintf("There's no %s here.", name),
			Kind: types.LineWarning,
		}}
	}

	if !e.World.TakeItem(loc, item.ID) {
		return []types.Line{{
			Text: fmt.Sprintf("There's no %s here.", name),
			Kind: types.LineWarning,
		}}
	}

	return []types.Line{{
		Text: fmt.Sprintf("You take the %s.", item.Name),
		Kind: types.LineSuccess,
	}}
}

func (e *Engine) use(name string) []types.Line {
	if name == "" {
		return []types.Line{{Text: "Use what?", Kind: types.LineWarning}}
	}

	item, ok := e.World.FindItemInInventory(name)
	if !ok {
		return []types.Line{{
			Text: fmt.Sprintf("You don't have a %s.", name),
			Kind: types.LineWarning,
		}}
	}

	if !item.Usable {
		return []types.Line{{
			Text: fmt.Sprintf("You can't use the %s.", item.Name),
			Kind: types.LineWarning,
		}}
	}

	out := effects.Apply(item, e.World)
	if out.Win {
		e.win = true
		e.gameOver = true
	}
	return out.Lines
}

func (e *Engine) inventory() []types.Line {
	inv := e.World.Player.Inventory
	if len(inv) == 0 {
		return []types.Line{{Text: "You are carrying nothing.", Kind: types.LineInfo}}
	}
	names := e.World.ItemNames(inv)
	return []types.Line{{
		Text: "You are carrying: " + strings.Join(names, ", ") + ".",
		Kind: types.LineInfo,
	}}
}

func (e *Engine) status() []types.Line {
	p := e.World.Player
	kind := types.LineInfo
	switch {
	case p.Health*4 <= p.MaxHealth:
		kind = types.LineDanger
	case p.Health*2 <= p.MaxHealth:
		kind = types.LineWarning
	}
	return []types.Line{{
		Text: fmt.Sprintf("Health: %d/%d.", p.Health, p.MaxHealth),
		Kind: kind,
	}}
}

func helpLines() []types.Line {
	help := []string{
		"Commands:",
		"  go/move/walk <direction>  — Travel north, south, east, or west",
		"  look (l)                  — Describe your surroundings",
		"  take/get <item>           — Pick something up",
		"  use <item>                — Use something you're carrying",
		"  attack/fight/hit <creature> — Fight a creature",
		"  inventory (i)             — Check what you're carrying",
		"  status (hp)               — Check your health",
		"  help (h, ?)               — Show this help",
	}
	lines := make([]types.Line, 0, len(help))
	for _, h := range help {
		lines = append(lines, types.Line{Text: h, Kind: types.LineInfo})
	}
	return lines
}

// describeRoom produces the full room description: name and description,
// contained items in insertion order, contained creatures, and available
// exits. This is the canonical output of `look` and of entering a room.
func (e *Engine) describeRoom(roomID string) []types.Line {
	room := e.World.Room(roomID)
	if room == nil {
		return []types.Line{{Text: "You are somewhere unknown.", Kind: types.LineWarning}}
	}

	lines := []types.Line{
		{Text: room.Def.Name, Kind: types.LineInfo},
		{Text: room.Def.Description, Kind: types.LineInfo},
	}

	if len(room.Items) > 0 {
		names := e.World.ItemNames(room.Items)
		lines = append(lines, types.Line{
			Text: "You see: " + strings.Join(names, ", ") + ".",
			Kind: types.LineInfo,
		})
	}

	if len(room.Creatures) > 0 {
		kind := types.LineInfo
		var names []string
		for _, id := range room.Creatures {
			c := e.World.Creatures[id]
			if c == nil {
				continue
			}
			names = append(names, c.Def.Name)
			if c.Def.Hostile && c.Alive {
				kind = types.LineDanger
			}
		}
		if len(names) > 0 {
			lines = append(lines, types.Line{
				Text: "Creatures: " + strings.Join(names, ", ") + ".",
				Kind: kind,
			})
		}
	}

	dirs := room.ExitDirections()
	if len(dirs) == 0 {
		lines = append(lines, types.Line{Text: "There are no exits.", Kind: types.LineInfo})
	} else {
		lines = append(lines, types.Line{
			Text: "Exits: " + strings.Join(dirs, ", ") + ".",
			Kind: types.LineInfo,
		})
	}

	return lines
}

// Snapshot exposes the current status for the presentation layer: room,
// health, inventory, available exits, and the context-relevant actions.
func (e *Engine) Snapshot() types.Snapshot {
	w := e.World
	snap := types.Snapshot{
		Health:    w.Player.Health,
		MaxHealth: w.Player.MaxHealth,
		Inventory: w.ItemNames(w.Player.Inventory),
		Turn:      e.turn,
		GameOver:  e.gameOver,
		Win:       e.win,
	}

	for _, id := range w.Player.Inventory {
		if def, ok := w.Defs.Items[id]; ok && def.Usable {
			snap.Usable = append(snap.Usable, def.Name)
		}
	}

	room := w.CurrentRoom()
	if room == nil {
		snap.Room = w.Player.Location
		return snap
	}

	snap.Room = room.Def.Name
	snap.Exits = room.ExitDirections()
	snap.Takeable = w.ItemNames(room.Items)
	for _, id := range room.Creatures {
		if c := w.Creatures[id]; c != nil && c.Def.Hostile && c.Alive {
			snap.Attackable = append(snap.Attackable, c.Def.Name)
		}
	}

	return snap
}
