// Package effects applies item use-effects to the game state. Effects are
// a closed set of tagged variants resolved through one Apply switch; the
// world is passed explicitly so there is no hidden engine state.
package effects

import (
	"fmt"

	"github.com/avlec/stranded/engine/world"
	"github.com/avlec/stranded/types"
)

// Outcome is the result of applying one effect.
type Outcome struct {
	Lines []types.Line
	Win   bool // set only by a satisfied conditional-win effect
}

// Apply runs the item's effect against the world, mutating it where the
// effect says so. The caller is responsible for acting on Outcome.Win.
func Apply(item types.ItemDef, w *world.World) Outcome {
	switch item.Effect.Kind {
	case types.EffectHeal:
		return applyHeal(item, w)
	case types.EffectFlavor:
		return Outcome{Lines: []types.Line{{Text: item.Effect.Message, Kind: types.LineInfo}}}
	case types.EffectChargeStatus:
		return applyChargeStatus(item, w)
	case types.EffectConditionalWin:
		return applyConditionalWin(item, w)
	default:
		return Outcome{Lines: []types.Line{{
			Text: fmt.Sprintf("Nothing happens when you use the %s.", item.Name),
			Kind: types.LineInfo,
		}}}
	}
}

func applyHeal(item types.ItemDef, w *world.World) Outcome {
	current := w.HealPlayer(item.Effect.Amount)
	return Outcome{Lines: []types.Line{{
		Text: fmt.Sprintf("You use the %s. Health restored to %d/%d.",
			item.Name, current, w.Player.MaxHealth),
		Kind: types.LineSuccess,
	}}}
}

func applyChargeStatus(item types.ItemDef, w *world.World) Outcome {
	text := item.Effect.Message
	if w.HasItem(item.Effect.Companion) {
		text = item.Effect.HeldMessage
	}
	return Outcome{Lines: []types.Line{{Text: text, Kind: types.LineInfo}}}
}

func applyConditionalWin(item types.ItemDef, w *world.World) Outcome {
	eff := item.Effect

	if w.Player.Location != eff.RequireRoom {
		roomName := eff.RequireRoom
		if def, ok := w.Defs.Rooms[eff.RequireRoom]; ok {
			roomName = def.Name
		}
		return Outcome{Lines: []types.Line{{
			Text: fmt.Sprintf("You switch on the %s, but there is no signal down here. It needs to be activated at the %s.",
				item.Name, roomName),
			Kind: types.LineWarning,
		}}}
	}

	if !w.HasItem(eff.RequireItem) {
		itemName := eff.RequireItem
		if def, ok := w.Defs.Items[eff.RequireItem]; ok {
			itemName = def.Name
		}
		return Outcome{Lines: []types.Line{{
			Text: fmt.Sprintf("The %s's indicator stays dark. It has no power source — you need a %s.",
				item.Name, itemName),
			Kind: types.LineWarning,
		}}}
	}

	return Outcome{
		Lines: []types.Line{{Text: eff.WinMessage, Kind: types.LineSuccess}},
		Win:   true,
	}
}
