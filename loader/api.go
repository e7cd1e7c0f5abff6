package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua constructors and effect helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", start = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	// Room "id" { ... } is curried: Room("id") returns a function that
	// takes a table.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.rooms = append(coll.rooms, rawDef{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Item "id" { ... }, curried the same way.
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.items = append(coll.items, rawDef{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Creature "id" { ... }, curried the same way.
	L.SetGlobal("Creature", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.creatures = append(coll.creatures, rawDef{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	registerEffectHelpers(L)
}

func registerEffectHelpers(L *lua.LState) {
	// Heal(amount)
	L.SetGlobal("Heal", L.NewFunction(func(L *lua.LState) int {
		amount := L.CheckNumber(1)
		tbl := L.NewTable()
		tbl.RawSetString("kind", lua.LString("heal"))
		tbl.RawSetString("amount", amount)
		L.Push(tbl)
		return 1
	}))

	// Flavor("text")
	L.SetGlobal("Flavor", L.NewFunction(func(L *lua.LState) int {
		text := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("kind", lua.LString("flavor"))
		tbl.RawSetString("message", lua.LString(text))
		L.Push(tbl)
		return 1
	}))

	// ChargeStatus { companion = "id", held = "...", empty = "..." }
	L.SetGlobal("ChargeStatus", L.NewFunction(func(L *lua.LState) int {
		opts := L.CheckTable(1)
		tbl := L.NewTable()
		tbl.RawSetString("kind", lua.LString("charge_status"))
		tbl.RawSetString("companion", opts.RawGetString("companion"))
		tbl.RawSetString("held", opts.RawGetString("held"))
		tbl.RawSetString("empty", opts.RawGetString("empty"))
		L.Push(tbl)
		return 1
	}))

	// WinCondition { room = "id", requires = "id", message = "..." }
	L.SetGlobal("WinCondition", L.NewFunction(func(L *lua.LState) int {
		opts := L.CheckTable(1)
		tbl := L.NewTable()
		tbl.RawSetString("kind", lua.LString("win_condition"))
		tbl.RawSetString("room", opts.RawGetString("room"))
		tbl.RawSetString("requires", opts.RawGetString("requires"))
		tbl.RawSetString("message", opts.RawGetString("message"))
		L.Push(tbl)
		return 1
	}))
}
