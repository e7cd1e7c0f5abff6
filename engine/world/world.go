// Package world manages the mutable game session state: room contents,
// creature instances, and the player. Immutable definitions stay in Defs;
// everything a command can change lives on World.
package world

import (
	"strings"

	"github.com/avlec/stranded/types"
)

// Defs holds the immutable game definitions produced by the loader.
// ItemOrder and CreatureOrder preserve declaration order so room contents
// display deterministically.
type Defs struct {
	Game          types.GameDef
	Rooms         map[string]types.RoomDef
	Items         map[string]types.ItemDef
	Creatures     map[string]types.CreatureDef
	ItemOrder     []string
	CreatureOrder []string
}

// Room is the runtime state of one location.
type Room struct {
	Def       types.RoomDef
	Items     []string // contained item ids, insertion order
	Creatures []string // contained creature ids
	Visited   bool
}

// Creature is the runtime state of one creature. Invariant:
// Alive == (Health > 0) after every mutation.
type Creature struct {
	Def    types.CreatureDef
	Health int
	Alive  bool
}

// Player is the session actor. Invariant: Alive == (Health > 0).
type Player struct {
	Health    int
	MaxHealth int
	Location  string
	Inventory []string // owned item ids, acquisition order, unique
	Alive     bool
}

// World is the complete mutable state of one game session.
type World struct {
	Defs      *Defs
	Rooms     map[string]*Room
	Creatures map[string]*Creature
	Player    *Player
}

// New instantiates a fresh session from definitions: every item and
// creature is placed into its starting room in declaration order, and the
// player starts in the designated start room with full health.
func New(defs *Defs) *World {
	w := &World{
		Defs:      defs,
		Rooms:     make(map[string]*Room, len(defs.Rooms)),
		Creatures: make(map[string]*Creature, len(defs.Creatures)),
	}

	for id, def := range defs.Rooms {
		w.Rooms[id] = &Room{Def: def}
	}

	for _, id := range defs.ItemOrder {
		def := defs.Items[id]
		if room, ok := w.Rooms[def.Location]; ok {
			room.Items = append(room.Items, id)
		}
	}

	for _, id := range defs.CreatureOrder {
		def := defs.Creatures[id]
		c := &Creature{Def: def, Health: def.MaxHealth, Alive: def.MaxHealth > 0}
		w.Creatures[id] = c
		if room, ok := w.Rooms[def.Location]; ok {
			room.Creatures = append(room.Creatures, id)
		}
	}

	maxHealth := defs.Game.MaxHealth
	if maxHealth <= 0 {
		maxHealth = 100
	}
	w.Player = &Player{
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Location:  defs.Game.Start,
		Alive:     true,
	}

	return w
}

// Room returns the runtime room for an id, or nil if unknown.
func (w *World) Room(id string) *Room {
	return w.Rooms[id]
}

// CurrentRoom returns the player's room, or nil if the player is somehow
// in an unknown location.
func (w *World) CurrentRoom() *Room {
	return w.Rooms[w.Player.Location]
}

// ExitDirections returns the room's available directions in compass order.
func (r *Room) ExitDirections() []string {
	var dirs []string
	for _, d := range types.Directions {
		if _, ok := r.Def.Exits[d]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Visit marks a room visited. Idempotent.
func (w *World) Visit(roomID string) {
	if room, ok := w.Rooms[roomID]; ok {
		room.Visited = true
	}
}

// HasItem reports whether the player holds the given item id.
func (w *World) HasItem(itemID string) bool {
	for _, id := range w.Player.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// matchesItem resolves a query against an item: exact id match first,
// then case-insensitive name match.
func matchesItem(def types.ItemDef, query string) bool {
	if def.ID == query {
		return true
	}
	return strings.EqualFold(def.Name, query)
}

// FindItemInRoom resolves a name-or-id query against the room's contents.
func (w *World) FindItemInRoom(roomID, query string) (types.ItemDef, bool) {
	room, ok := w.Rooms[roomID]
	if !ok {
		return types.ItemDef{}, false
	}
	// Exact id match takes priority over name matches.
	for _, id := range room.Items {
		if id == query {
			return w.Defs.Items[id], true
		}
	}
	for _, id := range room.Items {
		if def := w.Defs.Items[id]; strings.EqualFold(def.Name, query) {
			return def, true
		}
	}
	return types.ItemDef{}, false
}

// FindItemInInventory resolves a name-or-id query against the inventory.
func (w *World) FindItemInInventory(query string) (types.ItemDef, bool) {
	for _, id := range w.Player.Inventory {
		def := w.Defs.Items[id]
		if matchesItem(def, query) {
			return def, true
		}
	}
	return types.ItemDef{}, false
}

// FindCreatureInRoom resolves a creature by case-insensitive name (or id)
// among the room's creatures. Returns nil if none match.
func (w *World) FindCreatureInRoom(roomID, query string) *Creature {
	room, ok := w.Rooms[roomID]
	if !ok {
		return nil
	}
	for _, id := range room.Creatures {
		c := w.Creatures[id]
		if c == nil {
			continue
		}
		if id == query || strings.EqualFold(c.Def.Name, query) {
			return c
		}
	}
	return nil
}

// TakeItem relocates an item from a room into the inventory. Returns false
// if the item is not (or no longer) in the room, so a double take reports
// not-found instead of duplicating.
func (w *World) TakeItem(roomID, itemID string) bool {
	room, ok := w.Rooms[roomID]
	if !ok {
		return false
	}
	for i, id := range room.Items {
		if id == itemID {
			room.Items = append(room.Items[:i], room.Items[i+1:]...)
			if !w.HasItem(itemID) {
				w.Player.Inventory = append(w.Player.Inventory, itemID)
			}
			return true
		}
	}
	return false
}

// RemoveCreature drops a dead creature from its room so it can no longer
// be targeted or displayed. Removing an already-removed creature is a no-op.
func (w *World) RemoveCreature(roomID, creatureID string) {
	room, ok := w.Rooms[roomID]
	if !ok {
		return
	}
	for i, id := range room.Creatures {
		if id == creatureID {
			room.Creatures = append(room.Creatures[:i], room.Creatures[i+1:]...)
			return
		}
	}
}

// DamageCreature decrements a creature's health, clamping at 0 and
// deriving the alive flag. Returns remaining health.
func (w *World) DamageCreature(c *Creature, amount int) int {
	c.Health -= amount
	if c.Health < 0 {
		c.Health = 0
	}
	c.Alive = c.Health > 0
	return c.Health
}

// DamagePlayer decrements player health, clamping at 0 and deriving the
// alive flag. Returns remaining health.
func (w *World) DamagePlayer(amount int) int {
	p := w.Player
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.Alive = p.Health > 0
	return p.Health
}

// HealPlayer increments player health, clamping at max. Returns current
// health.
func (w *World) HealPlayer(amount int) int {
	p := w.Player
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	p.Alive = p.Health > 0
	return p.Health
}

// ItemNames maps item ids to display names, preserving order.
func (w *World) ItemNames(ids []string) []string {
	var names []string
	for _, id := range ids {
		if def, ok := w.Defs.Items[id]; ok {
			names = append(names, def.Name)
		} else {
			names = append(names, id)
		}
	}
	return names
}
