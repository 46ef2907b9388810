// Package level provides the grid-based dungeon model and the procedural
// maze generator that produces it.
package level

// BlockSize is the width of one grid cell in world units. Player and enemy
// positions are continuous world coordinates; dividing by BlockSize maps
// them back onto the grid.
const BlockSize = 64.0

// Cell is the kind of a single grid cell.
type Cell uint8

const (
	Floor Cell = iota
	Wall1
	Wall2
	Wall3
	Wall4
	DoorClosed
	DoorOpen
	Exit
)

// IsWall reports whether the cell is a solid wall of any texture kind.
func (c Cell) IsWall() bool {
	return c >= Wall1 && c <= Wall4
}

// Walkable reports whether an actor can occupy the cell. Closed doors are
// not walkable until opened.
func (c Cell) Walkable() bool {
	return c == Floor || c == DoorOpen || c == Exit
}

// BlocksSight reports whether the cell stops line-of-sight and rays.
func (c Cell) BlocksSight() bool {
	return c.IsWall() || c == DoorClosed
}

// Passable reports whether the cell can ever be traversed, treating closed
// doors as traversable since the player can open them. Reachability and
// exit placement use this rather than Walkable.
func (c Cell) Passable() bool {
	return c.Walkable() || c == DoorClosed
}

// Point is a grid cell coordinate.
type Point struct {
	X, Y int
}

// Grid is the generated dungeon layout. It is created once per level and is
// immutable afterwards except for door open state.
type Grid struct {
	cells  [][]Cell
	width  int
	height int
	start  Point
	exit   Point
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Start returns the player start cell.
func (g *Grid) Start() Point { return g.start }

// ExitCell returns the single exit cell.
func (g *Grid) ExitCell() Point { return g.exit }

// At returns the cell at grid coordinates. Out-of-bounds lookups read as
// solid wall so callers never walk or see past the edge of the level.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Wall1
	}
	return g.cells[y][x]
}

// AtWorld returns the cell containing the world-space position.
func (g *Grid) AtWorld(wx, wy float64) Cell {
	return g.At(int(wx/BlockSize), int(wy/BlockSize))
}

// WalkableAt reports whether the world-space position is inside a walkable
// cell.
func (g *Grid) WalkableAt(wx, wy float64) bool {
	if wx < 0 || wy < 0 {
		return false
	}
	return g.AtWorld(wx, wy).Walkable()
}

// OpenDoor opens the door at the given cell, if there is one. It is the only
// mutation a Grid permits after generation.
func (g *Grid) OpenDoor(x, y int) bool {
	if g.At(x, y) != DoorClosed {
		return false
	}
	g.cells[y][x] = DoorOpen
	return true
}

// CellCenter returns the world-space center of a grid cell.
func CellCenter(x, y int) (float64, float64) {
	return float64(x)*BlockSize + BlockSize/2, float64(y)*BlockSize + BlockSize/2
}

// WorldToCell maps a world-space coordinate onto its grid cell.
func WorldToCell(wx, wy float64) (int, int) {
	return int(wx / BlockSize), int(wy / BlockSize)
}

// ParseGrid builds a grid from ASCII rows, for fixtures and hand-authored
// maps: '#' wall, '.' floor, 'D' closed door, 'E' exit, 'S' floor marked as
// the start cell. Rows must be non-empty and equal length.
func ParseGrid(rows []string) *Grid {
	if len(rows) == 0 {
		return newGrid(0, 0)
	}
	g := newGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '#':
				g.cells[y][x] = Wall1
			case '.':
				g.cells[y][x] = Floor
			case 'D':
				g.cells[y][x] = DoorClosed
			case 'E':
				g.cells[y][x] = Exit
				g.exit = Point{X: x, Y: y}
			case 'S':
				g.cells[y][x] = Floor
				g.start = Point{X: x, Y: y}
			}
		}
	}
	return g
}

func newGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Wall1
		}
	}
	return &Grid{cells: cells, width: width, height: height}
}
