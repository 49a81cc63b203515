package levels

import (
	"errors"
	"testing"
)

func TestLoadArena(t *testing.T) {
	for _, name := range []string{"arena", "arena.json", "levels/arena.json"} {
		t.Run(name, func(t *testing.T) {
			lvl, err := LoadLevelFromFS(name)
			if err != nil {
				t.Fatalf("LoadLevelFromFS: %v", err)
			}
			if lvl.Width != 32 || lvl.Height != 14 {
				t.Fatalf("size = %dx%d", lvl.Width, lvl.Height)
			}
			spawn, err := lvl.Spawn("player")
			if err != nil {
				t.Fatal(err)
			}
			if tile := lvl.Layers[0][spawn.Y*lvl.Width+spawn.X]; tile != 0 {
				t.Fatalf("player spawns inside a solid tile")
			}
		})
	}
}

func TestLevelValidate(t *testing.T) {
	cases := []struct {
		name string
		lvl  Level
		ok   bool
	}{
		{"ok", Level{Width: 2, Height: 1, Layers: [][]int{{0, 1}}}, true},
		{"empty", Level{}, false},
		{"short_layer", Level{Width: 2, Height: 2, Layers: [][]int{{0, 1, 1}}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.lvl.Validate(); (err == nil) != tc.ok {
				t.Fatalf("Validate() = %v, ok=%v", err, tc.ok)
			}
		})
	}
}

func TestSpawnMissing(t *testing.T) {
	lvl := Level{Width: 1, Height: 1, Layers: [][]int{{0}}}
	if _, err := lvl.Spawn("player"); !errors.Is(err, ErrNoSpawn) {
		t.Fatalf("err = %v, want ErrNoSpawn", err)
	}
}
