package engine

import (
	"fmt"

	"github.com/avlec/stranded/types"
)

// Player attack rolls are uniform in [attackMin, attackMax]. A surviving
// creature counters for a uniform roll in [1, its damage rating].
const (
	attackMin = 5
	attackMax = 20
)

// attack resolves one combat exchange: one player hit and, if the creature
// survives, one counter-attack. There is no multi-round auto-resolution.
func (e *Engine) attack(name string) []types.Line {
	if name == "" {
		return []types.Line{{Text: "Attack what?", Kind: types.LineWarning}}
	}

	c := e.World.FindCreatureInRoom(e.World.Player.Location, name)
	if c == nil {
		return []types.Line{{
			Text: fmt.Sprintf("There's no %s here.", name),
			Kind: types.LineWarning,
		}}
	}

	// Dead creatures are removed from the room, so this branch only fires
	// if a removal was missed. Guard anyway: no damage either way.
	if !c.Alive {
		return []types.Line{{
			Text: fmt.Sprintf("The %s is already dead.", c.Def.Name),
			Kind: types.LineWarning,
		}}
	}

	if !c.Def.Hostile {
		return []types.Line{{
			Text: fmt.Sprintf("The %s drifts away from you, uninterested in fighting.", c.Def.Name),
			Kind: types.LineInfo,
		}}
	}

	damage := e.RNG.Between(attackMin, attackMax)
	remaining := e.World.DamageCreature(c, damage)

	lines := []types.Line{{
		Text: fmt.Sprintf("You hit the %s for %d damage.", c.Def.Name, damage),
		Kind: types.LineSuccess,
	}}

	if remaining == 0 {
		e.World.RemoveCreature(e.World.Player.Location, c.Def.ID)
		lines = append(lines, types.Line{
			Text: fmt.Sprintf("The %s collapses. It won't trouble you again.", c.Def.Name),
			Kind: types.LineSuccess,
		})
		return lines
	}

	counter := e.RNG.Between(1, c.Def.Damage)
	hp := e.World.DamagePlayer(counter)
	lines = append(lines, types.Line{
		Text: fmt.Sprintf("The %s strikes back for %d damage. (Health: %d/%d)",
			c.Def.Name, counter, hp, e.World.Player.MaxHealth),
		Kind: types.LineDanger,
	})

	return lines
}
