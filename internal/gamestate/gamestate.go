// Package gamestate tracks the aggregate run state: health, ammo, inventory
// counts, score, and kills. It is owned by the game loop and read/written by
// the core systems through narrow calls.
package gamestate

import "fmt"

// PickupKind identifies what a collected pickup grants.
type PickupKind int

const (
	PickupHealth PickupKind = iota
	PickupAmmo
	PickupKey
	PickupTreasure
)

// GameState holds all per-run progress data.
type GameState struct {
	Health    int
	MaxHealth int
	Ammo      int
	Keys      int
	Treasure  int
	Score     int
	Kills     int
}

// New returns the starting state for a fresh run.
func New() *GameState {
	return &GameState{
		Health:    100,
		MaxHealth: 100,
		Ammo:      200,
	}
}

// CollectPickup applies a pickup's effect and returns the message shown to
// the player.
func (gs *GameState) CollectPickup(kind PickupKind) string {
	switch kind {
	case PickupHealth:
		old := gs.Health
		gs.Health += 25
		if gs.Health > gs.MaxHealth {
			gs.Health = gs.MaxHealth
		}
		return fmt.Sprintf("Health +%d", gs.Health-old)
	case PickupAmmo:
		gs.Ammo += 20
		gs.Score += 10
		return "Ammo +20"
	case PickupKey:
		gs.Keys++
		gs.Score += 50
		return "Key collected!"
	case PickupTreasure:
		gs.Treasure++
		gs.Score += 100
		return "Treasure +100 points!"
	default:
		return ""
	}
}

// TakeDamage reduces health, clamped at zero.
func (gs *GameState) TakeDamage(amount int) {
	gs.Health -= amount
	if gs.Health < 0 {
		gs.Health = 0
	}
}

// IsDead reports whether the player is out of health.
func (gs *GameState) IsDead() bool {
	return gs.Health <= 0
}

// AddKill records an enemy kill and its score reward.
func (gs *GameState) AddKill() {
	gs.Kills++
	gs.Score += 25
}

// UseKey consumes one key if held and reports whether a key was spent.
func (gs *GameState) UseKey() bool {
	if gs.Keys < 1 {
		return false
	}
	gs.Keys--
	return true
}

// UseAmmo spends rounds if available and reports whether the shot is
// allowed.
func (gs *GameState) UseAmmo(amount int) bool {
	if gs.Ammo < amount {
		return false
	}
	gs.Ammo -= amount
	return true
}
