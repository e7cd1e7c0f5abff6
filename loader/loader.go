// Package loader reads Lua world definitions, compiles them into immutable
// game definitions, and validates referential integrity. The Lua VM is
// sandboxed and discarded after loading.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/avlec/stranded/engine/world"
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates Lua definitions during file execution, preserving
// declaration order.
type collector struct {
	game      *lua.LTable
	rooms     []rawDef
	items     []rawDef
	creatures []rawDef
}

// rawDef is one uncompiled Lua declaration.
type rawDef struct {
	id    string
	table *lua.LTable
}

// Load reads all .lua files from a directory on disk.
func Load(dir string) (*world.Defs, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS reads all .lua files from dir inside fsys (which may be an
// embed.FS), executes them in a sandboxed VM, compiles the collected
// declarations, and validates the result.
func LoadFS(fsys fs.FS, dir string) (*world.Defs, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading game directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	sortLuaFiles(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, name := range luaFiles {
		path := name
		if dir != "." {
			path = dir + "/" + name
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if err := L.DoString(string(data)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", name, err)
		}
	}

	defs, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling game data: %w", err)
	}

	if err := validate(defs); err != nil {
		return nil, err
	}

	return defs, nil
}

// sortLuaFiles orders game.lua first, the rest alphabetical.
func sortLuaFiles(files []string) {
	sort.Slice(files, func(i, j int) bool {
		if files[i] == "game.lua" {
			return true
		}
		if files[j] == "game.lua" {
			return false
		}
		return files[i] < files[j]
	})
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Remove math.randomseed to preserve determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
