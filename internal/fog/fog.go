// Package fog tracks per-cell visibility for the minimap: which cells the
// player currently sees, has ever seen, or has never seen.
package fog

import (
	"math"

	"chosenoffset.com/warren/internal/level"
	"chosenoffset.com/warren/internal/raycast"
)

// State is the visibility tri-state of a single grid cell.
type State uint8

const (
	Unseen State = iota
	Explored
	Visible
)

// Tracker owns the fog grid for one level. The Visible set is rebuilt every
// frame; Explored is monotonic and never reverts to Unseen.
type Tracker struct {
	cells  [][]State
	width  int
	height int
	radius float64 // vision radius in world units
}

// New creates a tracker sized to the grid with the given vision radius in
// world units.
func New(g *level.Grid, radius float64) *Tracker {
	cells := make([][]State, g.Height())
	for y := range cells {
		cells[y] = make([]State, g.Width())
	}
	return &Tracker{
		cells:  cells,
		width:  g.Width(),
		height: g.Height(),
		radius: radius,
	}
}

// At returns the fog state of a cell; out-of-bounds cells read Unseen.
func (t *Tracker) At(x, y int) State {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return Unseen
	}
	return t.cells[y][x]
}

// Update recomputes the Visible set from the player's position. Cells inside
// the vision radius with a clear line of sight are Visible; everything that
// was Visible before and isn't now drops back to Explored. The cost is
// bounded by the fixed radius, not the maze size.
func (t *Tracker) Update(g *level.Grid, px, py float64) {
	for y := range t.cells {
		for x := range t.cells[y] {
			if t.cells[y][x] == Visible {
				t.cells[y][x] = Explored
			}
		}
	}

	pgx, pgy := level.WorldToCell(px, py)
	radiusCells := int(math.Ceil(t.radius / level.BlockSize))

	for dy := -radiusCells; dy <= radiusCells; dy++ {
		for dx := -radiusCells; dx <= radiusCells; dx++ {
			gx, gy := pgx+dx, pgy+dy
			if gx < 0 || gy < 0 || gx >= t.width || gy >= t.height {
				continue
			}
			cx, cy := level.CellCenter(gx, gy)
			if math.Hypot(cx-px, cy-py) > t.radius {
				continue
			}
			if raycast.LineOfSight(g, px, py, cx, cy) {
				t.cells[gy][gx] = Visible
			}
		}
	}
}

// ExploredCount returns how many cells have ever been seen. Used by tests
// and the HUD completion stat.
func (t *Tracker) ExploredCount() int {
	n := 0
	for y := range t.cells {
		for x := range t.cells[y] {
			if t.cells[y][x] != Unseen {
				n++
			}
		}
	}
	return n
}
