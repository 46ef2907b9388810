package level

import (
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/warren/pkg/logger"
)

// GeneratorConfig holds the parameters for one level generation run.
type GeneratorConfig struct {
	Width        int   // Grid width in cells (must be odd)
	Height       int   // Grid height in cells (must be odd)
	Rooms        int   // Number of rooms to attempt
	MinRoomSize  int   // Minimum room dimension in cells
	MaxRoomSize  int   // Maximum room dimension in cells
	EnemySpawns  int   // Enemy spawn points to place
	SpriteSpawns int   // Pickup/decoration spawn points to place
	Seed         int64 // Random seed (0 = derive from current time)
}

// ConfigForTier returns the generation config for a tier.
func ConfigForTier(t Tier, seed int64) GeneratorConfig {
	spec := t.Spec()
	return GeneratorConfig{
		Width:        spec.GridWidth,
		Height:       spec.GridHeight,
		Rooms:        spec.Rooms,
		MinRoomSize:  3,
		MaxRoomSize:  7,
		EnemySpawns:  spec.Enemies,
		SpriteSpawns: spec.Sprites,
		Seed:         seed,
	}
}

// WorldPoint is a continuous world-space position.
type WorldPoint struct {
	X, Y float64
}

// Level is the output of one generation run: the grid plus every placement
// decision the rest of the game needs to initialize from it.
type Level struct {
	Grid         *Grid
	Seed         int64
	PlayerSpawn  WorldPoint
	EnemySpawns  []WorldPoint
	SpriteSpawns []WorldPoint
}

// room is a rectangular room placed during generation.
type room struct {
	x, y, w, h int
}

func (r room) center() (int, int) {
	return r.x + r.w/2, r.y + r.h/2
}

// overlaps reports whether two rooms intersect when grown by margin cells.
func (r room) overlaps(other room, margin int) bool {
	return r.x < other.x+other.w+margin &&
		r.x+r.w+margin > other.x &&
		r.y < other.y+other.h+margin &&
		r.y+r.h+margin > other.y
}

const (
	// enemySpawnMinDist keeps enemies from spawning on top of the player.
	enemySpawnMinDist = 5 * BlockSize
	// spriteSpawnMinDist keeps pickups outside the start area.
	spriteSpawnMinDist = 3 * BlockSize

	enemySpawnSpacing  = 3 * BlockSize
	spriteSpawnSpacing = 1.5 * BlockSize
)

// Generate produces a connected maze with rooms, a start cell, a single
// exit at the farthest reachable cell from the start, and spawn points for
// enemies and sprites. The result is deterministic for a fixed seed.
func Generate(cfg GeneratorConfig) *Level {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := newGrid(cfg.Width, cfg.Height)

	carvePassages(g, rng)
	rooms := placeRooms(g, cfg, rng)
	placeDoors(g, rooms)
	sealBorder(g)

	start := pickStart(g, rooms, rng)
	g.start = start

	dist := bfsDistances(g, start)
	g.exit = farthestCell(g, dist)
	g.cells[g.exit.Y][g.exit.X] = Exit

	varyWallKinds(g, rng)

	lvl := &Level{Grid: g, Seed: seed}
	sx, sy := CellCenter(start.X, start.Y)
	lvl.PlayerSpawn = WorldPoint{X: sx, Y: sy}
	lvl.EnemySpawns = pickSpawns(g, rng, lvl.PlayerSpawn, cfg.EnemySpawns, enemySpawnMinDist, enemySpawnSpacing, false)
	lvl.SpriteSpawns = pickSpawns(g, rng, lvl.PlayerSpawn, cfg.SpriteSpawns, spriteSpawnMinDist, spriteSpawnSpacing, true)

	logger.Log.WithFields(logrus.Fields{
		"seed":    seed,
		"size":    cfg.Width,
		"rooms":   len(rooms),
		"enemies": len(lvl.EnemySpawns),
		"sprites": len(lvl.SpriteSpawns),
		"exit":    g.exit,
	}).Info("Level generated")

	return lvl
}

// carvePassages carves the corridor tree over the odd-cell lattice using
// depth-first backtracking with an explicit stack, so stack depth stays
// bounded for large grids.
func carvePassages(g *Grid, rng *rand.Rand) {
	lw := (g.width - 1) / 2
	lh := (g.height - 1) / 2
	if lw <= 0 || lh <= 0 {
		return
	}

	visited := make([][]bool, lh)
	for i := range visited {
		visited[i] = make([]bool, lw)
	}

	dirs := [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	stack := []Point{{0, 0}}
	visited[0][0] = true
	g.cells[1][1] = Floor

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Collect unvisited lattice neighbors.
		var next []Point
		for _, d := range dirs {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx < 0 || ny < 0 || nx >= lw || ny >= lh || visited[ny][nx] {
				continue
			}
			next = append(next, Point{nx, ny})
		}

		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		n := next[rng.Intn(len(next))]
		visited[n.Y][n.X] = true

		// Knock out the wall between the two lattice cells and open the
		// destination.
		wx := cur.X*2 + 1 + (n.X - cur.X)
		wy := cur.Y*2 + 1 + (n.Y - cur.Y)
		g.cells[wy][wx] = Floor
		g.cells[n.Y*2+1][n.X*2+1] = Floor

		stack = append(stack, n)
	}
}

// placeRooms overlays rectangular rooms on the corridor tree. Rooms that
// would collide with an already placed room or poke out of bounds are
// skipped silently; generation never fails over room placement.
func placeRooms(g *Grid, cfg GeneratorConfig, rng *rand.Rand) []room {
	var rooms []room
	for i := 0; i < cfg.Rooms; i++ {
		w := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		h := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)

		maxX := g.width - w - 1
		maxY := g.height - h - 1
		if maxX <= 1 || maxY <= 1 {
			logger.Log.WithField("room", i).Debug("Room too large for grid, skipped")
			continue
		}
		r := room{x: 1 + rng.Intn(maxX), y: 1 + rng.Intn(maxY), w: w, h: h}

		collides := false
		for _, other := range rooms {
			if r.overlaps(other, 2) {
				collides = true
				break
			}
		}
		if collides {
			continue
		}

		for y := r.y; y < r.y+r.h; y++ {
			for x := r.x; x < r.x+r.w; x++ {
				g.cells[y][x] = Floor
			}
		}
		rooms = append(rooms, r)
	}
	return rooms
}

// placeDoors converts at most one corridor mouth per room into a closed
// door. A mouth is a floor cell on the room's outer ring whose perpendicular
// neighbors are walls, so the door fills the full opening.
func placeDoors(g *Grid, rooms []room) {
	for _, r := range rooms {
		if placeDoorOnRing(g, r.x-1, r.y, r.x-1, r.y+r.h-1, true) {
			continue
		}
		if placeDoorOnRing(g, r.x+r.w, r.y, r.x+r.w, r.y+r.h-1, true) {
			continue
		}
		if placeDoorOnRing(g, r.x, r.y-1, r.x+r.w-1, r.y-1, false) {
			continue
		}
		placeDoorOnRing(g, r.x, r.y+r.h, r.x+r.w-1, r.y+r.h, false)
	}
}

func placeDoorOnRing(g *Grid, x0, y0, x1, y1 int, vertical bool) bool {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if g.At(x, y) != Floor {
				continue
			}
			var a, b Cell
			if vertical {
				a, b = g.At(x, y-1), g.At(x, y+1)
			} else {
				a, b = g.At(x-1, y), g.At(x+1, y)
			}
			if a.IsWall() && b.IsWall() {
				g.cells[y][x] = DoorClosed
				return true
			}
		}
	}
	return false
}

// sealBorder forces the outer ring to solid wall.
func sealBorder(g *Grid) {
	for x := 0; x < g.width; x++ {
		g.cells[0][x] = Wall1
		g.cells[g.height-1][x] = Wall1
	}
	for y := 0; y < g.height; y++ {
		g.cells[y][0] = Wall1
		g.cells[y][g.width-1] = Wall1
	}
}

// pickStart prefers the center of the first placed room, falling back to a
// random floor cell.
func pickStart(g *Grid, rooms []room, rng *rand.Rand) Point {
	if len(rooms) > 0 {
		r := rooms[rng.Intn(len(rooms))]
		cx, cy := r.center()
		if g.At(cx, cy).Walkable() {
			return Point{cx, cy}
		}
	}
	for i := 0; i < 1000; i++ {
		x := 1 + rng.Intn(g.width-2)
		y := 1 + rng.Intn(g.height-2)
		if g.At(x, y) == Floor {
			return Point{x, y}
		}
	}
	// The corridor lattice guarantees (1,1) is open.
	return Point{1, 1}
}

// bfsDistances returns the shortest-path cell distance from start to every
// passable cell, -1 for unreachable cells. Closed doors count as passable
// because the player can open them.
func bfsDistances(g *Grid, start Point) [][]int {
	dist := make([][]int, g.height)
	for y := range dist {
		dist[y] = make([]int, g.width)
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}

	queue := []Point{start}
	dist[start.Y][start.X] = 0
	dirs := [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx < 0 || ny < 0 || nx >= g.width || ny >= g.height {
				continue
			}
			if dist[ny][nx] >= 0 || !g.At(nx, ny).Passable() {
				continue
			}
			dist[ny][nx] = dist[cur.Y][cur.X] + 1
			queue = append(queue, Point{nx, ny})
		}
	}
	return dist
}

// farthestCell returns the reachable floor cell with the highest BFS
// distance from the start. Ties break toward the first cell in scan order so
// the result stays deterministic.
func farthestCell(g *Grid, dist [][]int) Point {
	best := g.start
	bestDist := -1
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.At(x, y) != Floor {
				continue
			}
			if dist[y][x] > bestDist {
				bestDist = dist[y][x]
				best = Point{x, y}
			}
		}
	}
	return best
}

// varyWallKinds rolls a weighted texture kind for every wall cell so the
// rendered dungeon isn't a single repeated texture.
func varyWallKinds(g *Grid, rng *rand.Rand) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.cells[y][x].IsWall() {
				continue
			}
			switch roll := rng.Intn(100); {
			case roll < 65:
				g.cells[y][x] = Wall1
			case roll < 75:
				g.cells[y][x] = Wall2
			case roll < 95:
				g.cells[y][x] = Wall3
			default:
				g.cells[y][x] = Wall4
			}
		}
	}
}

// pickSpawns selects count spawn points from floor cells at least minDist
// world units from origin. A first pass honors the mutual spacing; if the
// grid is too crowded to satisfy it, a second pass fills the remainder from
// the leftover candidates so tiers always get their full complement.
func pickSpawns(g *Grid, rng *rand.Rand, origin WorldPoint, count int, minDist, spacing float64, nearWalls bool) []WorldPoint {
	var candidates []WorldPoint
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if g.At(x, y) != Floor {
				continue
			}
			if nearWalls && !hasNearbyWall(g, x, y, 2) {
				continue
			}
			wx, wy := CellCenter(x, y)
			if math.Hypot(wx-origin.X, wy-origin.Y) <= minDist {
				continue
			}
			candidates = append(candidates, WorldPoint{X: wx, Y: wy})
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	spawns := make([]WorldPoint, 0, count)
	var rejected []WorldPoint
	for _, c := range candidates {
		if len(spawns) >= count {
			break
		}
		tooClose := false
		for _, s := range spawns {
			if math.Hypot(s.X-c.X, s.Y-c.Y) < spacing {
				tooClose = true
				break
			}
		}
		if tooClose {
			rejected = append(rejected, c)
			continue
		}
		spawns = append(spawns, c)
	}

	for _, c := range rejected {
		if len(spawns) >= count {
			break
		}
		spawns = append(spawns, c)
	}

	if len(spawns) < count {
		logger.Log.WithFields(logrus.Fields{
			"wanted": count,
			"placed": len(spawns),
		}).Warn("Not enough spawn candidates, level will run short")
	}
	return spawns
}

func hasNearbyWall(g *Grid, x, y, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if g.At(x+dx, y+dy).IsWall() {
				return true
			}
		}
	}
	return false
}
