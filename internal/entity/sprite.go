// Package entity defines the world objects that live on top of the grid:
// decorative sprites, pickups, and the stateful enemies.
package entity

import (
	"math"

	"github.com/google/uuid"

	"chosenoffset.com/warren/internal/gamestate"
)

// Kind classifies what a sprite is.
type Kind int

const (
	KindEnemy Kind = iota
	KindPickup
	KindDecoration
)

// Sprite is a billboard object at a world position. Enemies embed it and
// add AI state on top.
type Sprite struct {
	ID     uuid.UUID
	Kind   Kind
	X, Y   float64
	Frame  int     // Current texture/animation frame index
	Scale  float64 // Render size relative to a full wall height
	Active bool    // Cleared when a pickup is collected

	// Pickup holds the effect of collecting this sprite; only meaningful
	// for KindPickup.
	Pickup gamestate.PickupKind
}

// NewSprite creates an active sprite at a world position.
func NewSprite(kind Kind, x, y float64, frame int) *Sprite {
	return &Sprite{
		ID:     uuid.New(),
		Kind:   kind,
		X:      x,
		Y:      y,
		Frame:  frame,
		Scale:  1.0,
		Active: true,
	}
}

// DistanceTo returns the Euclidean distance to a world position.
func (s *Sprite) DistanceTo(x, y float64) float64 {
	return math.Hypot(s.X-x, s.Y-y)
}

// Collect deactivates a pickup and returns its effect kind. Collecting an
// inactive or non-pickup sprite is a no-op and reports false.
func (s *Sprite) Collect() (gamestate.PickupKind, bool) {
	if s.Kind != KindPickup || !s.Active {
		return 0, false
	}
	s.Active = false
	return s.Pickup, true
}
