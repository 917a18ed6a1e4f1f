package simulation

import (
	"math/rand"
	"testing"
)

func TestSpawnerNeverSpawnsAtZeroChance(t *testing.T) {
	w := NewWorld(DefaultConfig(), nil)
	sp := NewSpawner(0, rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		if sp.Tick(w) {
			t.Fatal("Expected no spawn with zero chance")
		}
	}
	if w.Store.LenTargets() != 0 {
		t.Errorf("Expected no targets, got %d", w.Store.LenTargets())
	}
}

func TestSpawnerPlacesTargetsJustOffscreen(t *testing.T) {
	w := NewWorld(DefaultConfig(), nil)
	sp := NewSpawner(1, rand.New(rand.NewSource(5)))

	edges := make(map[Edge]int)
	for i := 0; i < 400; i++ {
		if !sp.Tick(w) {
			t.Fatal("Expected a spawn every tick with chance 1")
		}
	}

	for _, tg := range w.Store.Targets() {
		switch {
		case tg.Pos.Y == -20 && tg.Pos.X >= 0 && tg.Pos.X <= 800:
			edges[EdgeTop]++
		case tg.Pos.X == 820 && tg.Pos.Y >= 0 && tg.Pos.Y <= 600:
			edges[EdgeRight]++
		case tg.Pos.Y == 620 && tg.Pos.X >= 0 && tg.Pos.X <= 800:
			edges[EdgeBottom]++
		case tg.Pos.X == -20 && tg.Pos.Y >= 0 && tg.Pos.Y <= 600:
			edges[EdgeLeft]++
		default:
			t.Errorf("Target spawned off any edge at %v", tg.Pos)
		}
		if tg.Size != 20 || tg.Speed != 2 {
			t.Errorf("Expected default size 20 speed 2, got %v %v", tg.Size, tg.Speed)
		}
	}

	for e := EdgeTop; e <= EdgeLeft; e++ {
		if edges[e] == 0 {
			t.Errorf("Expected some spawns on edge %d", e)
		}
	}
}

func TestSpawnerRate(t *testing.T) {
	w := NewWorld(DefaultConfig(), nil)
	sp := NewSpawner(0.02, rand.New(rand.NewSource(9)))

	spawned := 0
	for i := 0; i < 50000; i++ {
		if sp.Tick(w) {
			spawned++
		}
	}

	// Expect about 1000; allow a wide margin.
	if spawned < 800 || spawned > 1200 {
		t.Errorf("Expected roughly 1000 spawns, got %d", spawned)
	}
}
