package loader

import (
	"strings"
	"testing"

	"github.com/avlec/stranded/engine/world"
	"github.com/avlec/stranded/types"
)

// validDefs returns a minimal valid Defs for testing.
func validDefs() *world.Defs {
	return &world.Defs{
		Game: types.GameDef{
			Title: "Test",
			Start: "hall",
		},
		Rooms: map[string]types.RoomDef{
			"hall": {
				ID:          "hall",
				Name:        "Hall",
				Description: "A hall.",
			},
		},
		Items:     map[string]types.ItemDef{},
		Creatures: map[string]types.CreatureDef{},
	}
}

func TestValidate_ValidDefs(t *testing.T) {
	defs := validDefs()
	if err := validate(defs); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_MissingStartRoom(t *testing.T) {
	defs := validDefs()
	defs.Game.Start = "nonexistent"

	err := validate(defs)
	if err == nil {
		t.Fatal("expected error for missing start room")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	assertContains(t, ve.Errors, "start room")
}

func TestValidate_EmptyTitle(t *testing.T) {
	defs := validDefs()
	defs.Game.Title = ""

	err := validate(defs)
	if err == nil {
		t.Fatal("expected error for empty title")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, "title")
}

func TestValidate_InvalidExitTarget(t *testing.T) {
	defs := validDefs()
	defs.Rooms["hall"] = types.RoomDef{
		ID:    "hall",
		Name:  "Hall",
		Exits: map[string]string{"north": "void"},
	}

	err := validate(defs)
	if err == nil {
		t.Fatal("expected error for invalid exit target")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, "unknown room")
}

func TestValidate_UnknownDirection(t *testing.T) {
	defs := validDefs()
	defs.Rooms["hall"] = types.RoomDef{
		ID:    "hall",
		Name:  "Hall",
		Exits: map[string]string{"up": "hall"},
	}

	err := validate(defs)
	if err == nil {
		t.Fatal("expected error for unknown direction")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, "direction")
}

func TestValidate_ItemPlacement(t *testing.T) {
	defs := validDefs()
	defs.Items["orb"] = types.ItemDef{ID: "orb", Name: "Orb", Location: "basement"}
	defs.ItemOrder = []string{"orb"}

	err := validate(defs)
	if err == nil {
		t.Fatal("expected error for unplaced item")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, "basement")
}

func TestValidate_UsableNeedsEffect(t *testing.T) {
	defs := validDefs()
	defs.Items["orb"] = types.ItemDef{ID: "orb", Name: "Orb", Location: "hall", Usable: true}
	defs.ItemOrder = []string{"orb"}

	err := validate(defs)
	if err == nil {
		t.Fatal("expected error for usable item without effect")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, "effect")
}

func TestValidate_NonUsableRejectsEffect(t *testing.T) {
	defs := validDefs()
	defs.Items["orb"] = types.ItemDef{
		ID: "orb", Name: "Orb", Location: "hall",
		Effect: types.EffectSpec{Kind: types.EffectHeal, Amount: 10},
	}
	defs.ItemOrder = []string{"orb"}

	err := validate(defs)
	if err == nil {
		t.Fatal("expected error for effect on non-usable item")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, "usable")
}

func TestValidate_EffectReferences(t *testing.T) {
	defs := validDefs()
	defs.Items["torch"] = types.ItemDef{
		ID: "torch", Name: "Torch", Location: "hall", Usable: true,
		Effect: types.EffectSpec{Kind: types.EffectChargeStatus, Companion: "cell"},
	}
	defs.Items["radio"] = types.ItemDef{
		ID: "radio", Name: "Radio", Location: "hall", Usable: true,
		Effect: types.EffectSpec{
			Kind:        types.EffectConditionalWin,
			RequireRoom: "roof",
			RequireItem: "cell",
		},
	}
	defs.ItemOrder = []string{"torch", "radio"}

	err := validate(defs)
	if err == nil {
		t.Fatal("expected errors for dangling effect references")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, "companion")
	assertContains(t, ve.Errors, `room "roof"`)
	assertContains(t, ve.Errors, `unknown item "cell"`)
}

func TestValidate_CreatureStats(t *testing.T) {
	defs := validDefs()
	defs.Creatures["wisp"] = types.CreatureDef{
		ID: "wisp", Name: "Wisp", Location: "hall",
		MaxHealth: 0, Damage: 0, Hostile: true,
	}
	defs.CreatureOrder = []string{"wisp"}

	err := validate(defs)
	if err == nil {
		t.Fatal("expected errors for degenerate creature stats")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, "health")
	assertContains(t, ve.Errors, "damage")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	defs := validDefs()
	defs.Game.Title = ""
	defs.Game.Start = "nowhere"
	defs.Creatures["wisp"] = types.CreatureDef{ID: "wisp", Name: "Wisp", Location: "hall"}
	defs.CreatureOrder = []string{"wisp"}

	err := validate(defs)
	if err == nil {
		t.Fatal("expected errors")
	}
	ve := err.(*ValidationError)
	if len(ve.Errors) < 3 {
		t.Errorf("expected at least 3 collected errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
}

func assertContains(t *testing.T, strs []string, substr string) {
	t.Helper()
	for _, s := range strs {
		if strings.Contains(s, substr) {
			return
		}
	}
	t.Errorf("expected one of %v to contain %q", strs, substr)
}
