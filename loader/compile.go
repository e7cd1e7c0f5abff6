package loader

import (
	"fmt"

	"github.com/avlec/stranded/engine/world"
	"github.com/avlec/stranded/types"
	lua "github.com/yuin/gopher-lua"
)

// compile converts the collected raw Lua tables into immutable defs.
// Declaration order is preserved in ItemOrder/CreatureOrder so placement
// and display stay deterministic.
func compile(coll *collector) (*world.Defs, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game declaration found")
	}

	defs := &world.Defs{
		Game:      compileGame(coll.game),
		Rooms:     map[string]types.RoomDef{},
		Items:     map[string]types.ItemDef{},
		Creatures: map[string]types.CreatureDef{},
	}

	for _, raw := range coll.rooms {
		if _, dup := defs.Rooms[raw.id]; dup {
			return nil, fmt.Errorf("duplicate room id %q", raw.id)
		}
		room, err := compileRoom(raw)
		if err != nil {
			return nil, err
		}
		defs.Rooms[raw.id] = room
	}

	for _, raw := range coll.items {
		if _, dup := defs.Items[raw.id]; dup {
			return nil, fmt.Errorf("duplicate item id %q", raw.id)
		}
		defs.Items[raw.id] = compileItem(raw)
		defs.ItemOrder = append(defs.ItemOrder, raw.id)
	}

	for _, raw := range coll.creatures {
		if _, dup := defs.Creatures[raw.id]; dup {
			return nil, fmt.Errorf("duplicate creature id %q", raw.id)
		}
		defs.Creatures[raw.id] = compileCreature(raw)
		defs.CreatureOrder = append(defs.CreatureOrder, raw.id)
	}

	return defs, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:     getString(tbl, "title"),
		Author:    getString(tbl, "author"),
		Version:   getString(tbl, "version"),
		Start:     getString(tbl, "start"),
		Intro:     getString(tbl, "intro"),
		MaxHealth: getInt(tbl, "max_health"),
	}
}

func compileRoom(raw rawDef) (types.RoomDef, error) {
	room := types.RoomDef{
		ID:          raw.id,
		Name:        getString(raw.table, "name"),
		Description: getString(raw.table, "description"),
		Image:       getString(raw.table, "image"),
		Exits:       map[string]string{},
	}

	exitsVal := raw.table.RawGetString("exits")
	if exitsVal == lua.LNil {
		return room, nil
	}
	exits, ok := exitsVal.(*lua.LTable)
	if !ok {
		return room, fmt.Errorf("room %q: exits must be a table", raw.id)
	}

	var err error
	exits.ForEach(func(k, v lua.LValue) {
		dir, kok := k.(lua.LString)
		target, vok := v.(lua.LString)
		if !kok || !vok {
			err = fmt.Errorf("room %q: exits must map direction strings to room ids", raw.id)
			return
		}
		room.Exits[string(dir)] = string(target)
	})
	return room, err
}

func compileItem(raw rawDef) types.ItemDef {
	item := types.ItemDef{
		ID:          raw.id,
		Name:        getString(raw.table, "name"),
		Description: getString(raw.table, "description"),
		Usable:      getBool(raw.table, "usable"),
		Equippable:  getBool(raw.table, "equippable"),
		Location:    getString(raw.table, "location"),
	}

	if eff, ok := raw.table.RawGetString("effect").(*lua.LTable); ok {
		item.Effect = compileEffect(eff)
	}
	return item
}

func compileEffect(tbl *lua.LTable) types.EffectSpec {
	switch getString(tbl, "kind") {
	case "heal":
		return types.EffectSpec{
			Kind:   types.EffectHeal,
			Amount: getInt(tbl, "amount"),
		}
	case "flavor":
		return types.EffectSpec{
			Kind:    types.EffectFlavor,
			Message: getString(tbl, "message"),
		}
	case "charge_status":
		return types.EffectSpec{
			Kind:        types.EffectChargeStatus,
			Companion:   getString(tbl, "companion"),
			HeldMessage: getString(tbl, "held"),
			Message:     getString(tbl, "empty"),
		}
	case "win_condition":
		return types.EffectSpec{
			Kind:        types.EffectConditionalWin,
			RequireRoom: getString(tbl, "room"),
			RequireItem: getString(tbl, "requires"),
			WinMessage:  getString(tbl, "message"),
		}
	default:
		return types.EffectSpec{}
	}
}

func compileCreature(raw rawDef) types.CreatureDef {
	return types.CreatureDef{
		ID:          raw.id,
		Name:        getString(raw.table, "name"),
		Description: getString(raw.table, "description"),
		MaxHealth:   getInt(raw.table, "health"),
		Damage:      getInt(raw.table, "damage"),
		Hostile:     getBool(raw.table, "hostile"),
		Location:    getString(raw.table, "location"),
	}
}

func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func getInt(tbl *lua.LTable, key string) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

func getBool(tbl *lua.LTable, key string) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return false
}
