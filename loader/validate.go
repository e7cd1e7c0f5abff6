package loader

import (
	"fmt"
	"strings"

	"github.com/avlec/stranded/engine/world"
	"github.com/avlec/stranded/types"
)

// ValidationError collects every problem found in a world definition so
// authors see the full list in one pass.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid world definition:\n  %s", strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) add(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

func validate(defs *world.Defs) error {
	verr := &ValidationError{}

	if defs.Game.Title == "" {
		verr.add("game: title is required")
	}
	if defs.Game.Start == "" {
		verr.add("game: start room is required")
	} else if _, ok := defs.Rooms[defs.Game.Start]; !ok {
		verr.add("game: start room %q does not exist", defs.Game.Start)
	}
	if defs.Game.MaxHealth < 0 {
		verr.add("game: max_health must not be negative")
	}

	for id, room := range defs.Rooms {
		if room.Name == "" {
			verr.add("room %q: name is required", id)
		}
		for dir, target := range room.Exits {
			if !validDirection(dir) {
				verr.add("room %q: unknown exit direction %q", id, dir)
			}
			if _, ok := defs.Rooms[target]; !ok {
				verr.add("room %q: exit %s leads to unknown room %q", id, dir, target)
			}
		}
	}

	for _, id := range defs.ItemOrder {
		item := defs.Items[id]
		if item.Name == "" {
			verr.add("item %q: name is required", id)
		}
		if item.Location == "" {
			verr.add("item %q: location is required", id)
		} else if _, ok := defs.Rooms[item.Location]; !ok {
			verr.add("item %q: location %q does not exist", id, item.Location)
		}
		if item.Usable && item.Effect.Kind == types.EffectNone {
			verr.add("item %q: usable items need an effect", id)
		}
		if !item.Usable && item.Effect.Kind != types.EffectNone {
			verr.add("item %q: only usable items may carry an effect", id)
		}
		validateEffect(verr, defs, id, item.Effect)
	}

	for _, id := range defs.CreatureOrder {
		creature := defs.Creatures[id]
		if creature.Name == "" {
			verr.add("creature %q: name is required", id)
		}
		if creature.Location == "" {
			verr.add("creature %q: location is required", id)
		} else if _, ok := defs.Rooms[creature.Location]; !ok {
			verr.add("creature %q: location %q does not exist", id, creature.Location)
		}
		if creature.MaxHealth < 1 {
			verr.add("creature %q: health must be at least 1", id)
		}
		if creature.Hostile && creature.Damage < 1 {
			verr.add("creature %q: hostile creatures need damage of at least 1", id)
		}
	}

	if len(verr.Errors) > 0 {
		return verr
	}
	return nil
}

func validateEffect(verr *ValidationError, defs *world.Defs, id string, eff types.EffectSpec) {
	switch eff.Kind {
	case types.EffectHeal:
		if eff.Amount < 1 {
			verr.add("item %q: heal amount must be at least 1", id)
		}
	case types.EffectChargeStatus:
		if eff.Companion == "" {
			verr.add("item %q: charge status needs a companion item", id)
		} else if _, ok := defs.Items[eff.Companion]; !ok {
			verr.add("item %q: companion item %q does not exist", id, eff.Companion)
		}
	case types.EffectConditionalWin:
		if eff.RequireRoom == "" {
			verr.add("item %q: win condition needs a room", id)
		} else if _, ok := defs.Rooms[eff.RequireRoom]; !ok {
			verr.add("item %q: win condition room %q does not exist", id, eff.RequireRoom)
		}
		if eff.RequireItem == "" {
			verr.add("item %q: win condition needs a required item", id)
		} else if _, ok := defs.Items[eff.RequireItem]; !ok {
			verr.add("item %q: win condition requires unknown item %q", id, eff.RequireItem)
		}
	}
}

func validDirection(dir string) bool {
	for _, d := range types.Directions {
		if d == dir {
			return true
		}
	}
	return false
}
