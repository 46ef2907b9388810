package entity

import (
	"math/rand"

	"chosenoffset.com/warren/internal/gamestate"
	"chosenoffset.com/warren/internal/level"
)

// Decoration texture frames available to the spawner.
const decorationFrames = 4

// SpawnEnemies creates one enemy per generated spawn point.
func SpawnEnemies(lvl *level.Level) []*Enemy {
	enemies := make([]*Enemy, 0, len(lvl.EnemySpawns))
	for _, p := range lvl.EnemySpawns {
		enemies = append(enemies, NewRat(p.X, p.Y))
	}
	return enemies
}

// SpawnSprites fills the level's sprite spawn points with a mix of pickups
// and decorations. The first spawn is always a key so the exit can always
// be unlocked; after that every third sprite is a decoration and the rest
// cycle through the pickup kinds.
func SpawnSprites(lvl *level.Level, rng *rand.Rand) []*Sprite {
	pickupCycle := []gamestate.PickupKind{
		gamestate.PickupTreasure,
		gamestate.PickupAmmo,
		gamestate.PickupHealth,
		gamestate.PickupKey,
	}

	sprites := make([]*Sprite, 0, len(lvl.SpriteSpawns))
	pickups := 0
	for i, p := range lvl.SpriteSpawns {
		switch {
		case i == 0:
			s := NewSprite(KindPickup, p.X, p.Y, 0)
			s.Pickup = gamestate.PickupKey
			sprites = append(sprites, s)
		case i%3 == 2:
			s := NewSprite(KindDecoration, p.X, p.Y, rng.Intn(decorationFrames))
			sprites = append(sprites, s)
		default:
			s := NewSprite(KindPickup, p.X, p.Y, 0)
			s.Pickup = pickupCycle[pickups%len(pickupCycle)]
			pickups++
			sprites = append(sprites, s)
		}
	}
	return sprites
}
