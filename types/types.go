// Package types defines the shared data structures for the Stranded engine.
// This package contains only type definitions, no logic and no methods.
package types

// Compass directions a room may declare exits for.
const (
	North = "north"
	South = "south"
	East  = "east"
	West  = "west"
)

// Directions lists the valid compass directions in display order.
var Directions = []string{North, South, East, West}

// EffectKind tags the variant of a usable item's effect.
type EffectKind int

const (
	// EffectNone marks items that cannot be used.
	EffectNone EffectKind = iota
	// EffectHeal restores player health, clamped to max health.
	EffectHeal
	// EffectFlavor prints a message and changes nothing.
	EffectFlavor
	// EffectChargeStatus prints one of two messages depending on whether a
	// companion item is currently in the inventory. Never mutates state.
	EffectChargeStatus
	// EffectConditionalWin ends the game in victory when the player is in
	// the required room holding the required item.
	EffectConditionalWin
)

// EffectSpec is the data-driven description of what using an item does.
// Which fields are meaningful depends on Kind.
type EffectSpec struct {
	Kind        EffectKind
	Amount      int    // Heal: health restored
	Message     string // Flavor text / ChargeStatus not-held text
	HeldMessage string // ChargeStatus: text when Companion is held
	Companion   string // ChargeStatus: item id whose presence switches the text
	RequireRoom string // ConditionalWin: room the player must be in
	RequireItem string // ConditionalWin: item that must be in inventory
	WinMessage  string // ConditionalWin: victory text
}

// ItemDef is an immutable item template. Each item exists exactly once in
// the world and is relocated between a room and the inventory, never
// copied or destroyed.
type ItemDef struct {
	ID          string
	Name        string
	Description string
	Usable      bool
	Equippable  bool // declared by the data model, unused by any logic
	Location    string
	Effect      EffectSpec
}

// CreatureDef is the immutable part of a creature.
type CreatureDef struct {
	ID          string
	Name        string
	Description string
	MaxHealth   int
	Damage      int // inclusive upper bound of its counter-attack roll
	Hostile     bool
	Location    string
}

// RoomDef is the immutable part of a room. Exits are directed edges and
// are not required to be symmetric.
type RoomDef struct {
	ID          string
	Name        string
	Description string
	Image       string // display-image reference for the presentation layer
	Exits       map[string]string
}

// GameDef holds game metadata.
type GameDef struct {
	Title     string
	Author    string
	Version   string
	Start     string // starting room id
	Intro     string
	MaxHealth int
}

// LineKind is an advisory styling annotation on a result line. The
// presentation layer may render kinds distinctly; the engine never
// depends on them being rendered.
type LineKind int

const (
	LineInfo LineKind = iota
	LineSuccess
	LineWarning
	LineDanger
)

// Line is one line of result text with its styling annotation.
type Line struct {
	Text string
	Kind LineKind
}

// Result is the output of a single processed command.
type Result struct {
	Lines []Line
}

// Snapshot is the status the engine exposes to the presentation layer
// after each command.
type Snapshot struct {
	Room       string // current room display name
	Health     int
	MaxHealth  int
	Inventory  []string // item names, acquisition order
	Exits      []string // available directions, compass order
	Takeable   []string // item names in the current room
	Attackable []string // hostile, alive creature names in the current room
	Usable     []string // usable inventory item names
	Turn       int
	GameOver   bool
	Win        bool
}
