package registry_test

import (
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/registry"
)

func TestDoodleRegistered(t *testing.T) {
	if !registry.Exists(doodle.GameID) {
		t.Fatalf("game %q not registered", doodle.GameID)
	}

	found := false
	for _, info := range registry.List() {
		if info.ID == doodle.GameID {
			found = true
			if info.Title != "Doodle Jump" {
				t.Errorf("title = %q, expected %q", info.Title, "Doodle Jump")
			}
		}
	}
	if !found {
		t.Error("List() is missing the doodle game")
	}
}

func TestCreate(t *testing.T) {
	g, err := registry.Create(doodle.GameID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g.Reset(core.DefaultConfig())
	res := g.Step(1.0/60, core.NewInputFrame())
	if res.State.GameOver {
		t.Error("fresh game should not be over")
	}

	// Each call returns an independent instance.
	g2, _ := registry.Create(doodle.GameID)
	if g == g2 {
		t.Error("Create returned the same instance twice")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := registry.Create("no-such-game"); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic on duplicate registration")
		}
	}()
	registry.Register(doodle.GameID, func() registry.Game { return doodle.New() })
}
