package entity

import (
	"math/rand"
	"testing"

	"chosenoffset.com/warren/internal/gamestate"
	"chosenoffset.com/warren/internal/level"
)

func smallLevel(t *testing.T) *level.Level {
	t.Helper()
	return level.Generate(level.ConfigForTier(level.TierSmall, 42))
}

func TestSpawnEnemiesOnePerPoint(t *testing.T) {
	lvl := smallLevel(t)
	enemies := SpawnEnemies(lvl)

	if len(enemies) != len(lvl.EnemySpawns) {
		t.Fatalf("Got %d enemies for %d spawn points", len(enemies), len(lvl.EnemySpawns))
	}
	for i, e := range enemies {
		if e.X != lvl.EnemySpawns[i].X || e.Y != lvl.EnemySpawns[i].Y {
			t.Errorf("Enemy %d spawned at (%v,%v), want %v", i, e.X, e.Y, lvl.EnemySpawns[i])
		}
		if e.State != StateIdle {
			t.Errorf("Enemy %d spawned in state %v, want Idle", i, e.State)
		}
		if !e.Alive() {
			t.Errorf("Enemy %d spawned dead", i)
		}
	}
}

func TestSpawnSpritesGuaranteesKey(t *testing.T) {
	lvl := smallLevel(t)
	sprites := SpawnSprites(lvl, rand.New(rand.NewSource(1)))

	if len(sprites) == 0 {
		t.Fatal("No sprites spawned")
	}
	first := sprites[0]
	if first.Kind != KindPickup || first.Pickup != gamestate.PickupKey {
		t.Errorf("First sprite must be a key pickup, got kind=%v pickup=%v", first.Kind, first.Pickup)
	}
}

func TestSpawnSpritesMix(t *testing.T) {
	lvl := smallLevel(t)
	sprites := SpawnSprites(lvl, rand.New(rand.NewSource(1)))

	var pickups, decorations int
	for _, s := range sprites {
		switch s.Kind {
		case KindPickup:
			pickups++
		case KindDecoration:
			decorations++
			if s.Frame < 0 || s.Frame >= decorationFrames {
				t.Errorf("Decoration frame %d out of range", s.Frame)
			}
		default:
			t.Errorf("Unexpected sprite kind %v from spawner", s.Kind)
		}
		if !s.Active {
			t.Error("Sprites must spawn active")
		}
	}
	if pickups == 0 || decorations == 0 {
		t.Errorf("Expected a mix of pickups (%d) and decorations (%d)", pickups, decorations)
	}
}

func TestSpriteCollect(t *testing.T) {
	s := NewSprite(KindPickup, 10, 10, 0)
	s.Pickup = gamestate.PickupAmmo

	kind, ok := s.Collect()
	if !ok || kind != gamestate.PickupAmmo {
		t.Fatalf("Collect() = %v, %v", kind, ok)
	}
	if s.Active {
		t.Error("Collected pickup should deactivate")
	}
	if _, ok := s.Collect(); ok {
		t.Error("Collecting twice should fail")
	}

	d := NewSprite(KindDecoration, 10, 10, 0)
	if _, ok := d.Collect(); ok {
		t.Error("Decorations are not collectible")
	}
}
