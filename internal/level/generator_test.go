package level

import (
	"math"
	"testing"
)

func TestGenerateSmallTier(t *testing.T) {
	cfg := ConfigForTier(TierSmall, 42)
	lvl := Generate(cfg)
	g := lvl.Grid

	if g.Width() != 21 || g.Height() != 21 {
		t.Fatalf("Expected 21x21 grid, got %dx%d", g.Width(), g.Height())
	}

	// The border must be sealed everywhere.
	for x := 0; x < g.Width(); x++ {
		if !g.At(x, 0).IsWall() || !g.At(x, g.Height()-1).IsWall() {
			t.Errorf("Border cell at x=%d is not a wall", x)
		}
	}
	for y := 0; y < g.Height(); y++ {
		if !g.At(0, y).IsWall() || !g.At(g.Width()-1, y).IsWall() {
			t.Errorf("Border cell at y=%d is not a wall", y)
		}
	}

	if len(lvl.EnemySpawns) != 20 {
		t.Errorf("Expected 20 enemy spawns, got %d", len(lvl.EnemySpawns))
	}
	if len(lvl.SpriteSpawns) != 15 {
		t.Errorf("Expected 15 sprite spawns, got %d", len(lvl.SpriteSpawns))
	}
}

func TestGenerateSingleExit(t *testing.T) {
	lvl := Generate(ConfigForTier(TierSmall, 7))
	g := lvl.Grid

	exits := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) == Exit {
				exits++
			}
		}
	}
	if exits != 1 {
		t.Fatalf("Expected exactly one exit cell, got %d", exits)
	}

	exit := g.ExitCell()
	if g.At(exit.X, exit.Y) != Exit {
		t.Errorf("ExitCell() points at %v which is %v, not Exit", exit, g.At(exit.X, exit.Y))
	}
}

func TestGenerateFullyConnected(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99, 1234} {
		lvl := Generate(ConfigForTier(TierMedium, seed))
		g := lvl.Grid

		dist := bfsDistances(g, g.Start())
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				if g.At(x, y).Passable() && dist[y][x] < 0 {
					t.Fatalf("seed %d: passable cell (%d,%d) unreachable from start", seed, x, y)
				}
			}
		}
	}
}

func TestGenerateExitIsFarthest(t *testing.T) {
	lvl := Generate(ConfigForTier(TierSmall, 11))
	g := lvl.Grid

	dist := bfsDistances(g, g.Start())
	exit := g.ExitCell()
	exitDist := dist[exit.Y][exit.X]
	if exitDist < 0 {
		t.Fatal("Exit is unreachable from start")
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) != Floor && g.At(x, y) != Exit {
				continue
			}
			if dist[y][x] > exitDist {
				t.Errorf("Floor cell (%d,%d) at distance %d is farther than the exit at %d",
					x, y, dist[y][x], exitDist)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(ConfigForTier(TierSmall, 1234))
	b := Generate(ConfigForTier(TierSmall, 1234))

	for y := 0; y < a.Grid.Height(); y++ {
		for x := 0; x < a.Grid.Width(); x++ {
			if a.Grid.At(x, y) != b.Grid.At(x, y) {
				t.Fatalf("Same seed produced different cells at (%d,%d)", x, y)
			}
		}
	}
	if a.PlayerSpawn != b.PlayerSpawn {
		t.Errorf("Same seed produced different player spawns: %v vs %v", a.PlayerSpawn, b.PlayerSpawn)
	}
	if len(a.EnemySpawns) != len(b.EnemySpawns) {
		t.Fatalf("Same seed produced different spawn counts")
	}
	for i := range a.EnemySpawns {
		if a.EnemySpawns[i] != b.EnemySpawns[i] {
			t.Errorf("Same seed produced different enemy spawn %d", i)
		}
	}
}

func TestGenerateSpawnDistances(t *testing.T) {
	lvl := Generate(ConfigForTier(TierSmall, 5))

	for i, sp := range lvl.EnemySpawns {
		d := math.Hypot(sp.X-lvl.PlayerSpawn.X, sp.Y-lvl.PlayerSpawn.Y)
		if d <= enemySpawnMinDist {
			t.Errorf("Enemy spawn %d at distance %.1f, want > %.1f from player", i, d, float64(enemySpawnMinDist))
		}
	}
	for i, sp := range lvl.SpriteSpawns {
		d := math.Hypot(sp.X-lvl.PlayerSpawn.X, sp.Y-lvl.PlayerSpawn.Y)
		if d <= spriteSpawnMinDist {
			t.Errorf("Sprite spawn %d at distance %.1f, want > %.1f from player", i, d, float64(spriteSpawnMinDist))
		}
	}
}

func TestGenerateSpawnsOnFloor(t *testing.T) {
	lvl := Generate(ConfigForTier(TierLarge, 8))
	g := lvl.Grid

	check := func(pts []WorldPoint, what string) {
		for i, sp := range pts {
			x, y := WorldToCell(sp.X, sp.Y)
			if g.At(x, y) != Floor {
				t.Errorf("%s spawn %d sits on %v at (%d,%d), want Floor", what, i, g.At(x, y), x, y)
			}
		}
	}
	check(lvl.EnemySpawns, "enemy")
	check(lvl.SpriteSpawns, "sprite")

	px, py := WorldToCell(lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)
	if !g.At(px, py).Walkable() {
		t.Errorf("Player spawn sits on %v, want walkable", g.At(px, py))
	}
}

func TestGenerateWallKindsVaried(t *testing.T) {
	lvl := Generate(ConfigForTier(TierMedium, 3))
	g := lvl.Grid

	counts := map[Cell]int{}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.At(x, y)
			if c.IsWall() {
				counts[c]++
			}
		}
	}
	// Wall1 dominates the distribution but the others must all appear on a
	// grid this size.
	for _, kind := range []Cell{Wall1, Wall2, Wall3, Wall4} {
		if counts[kind] == 0 {
			t.Errorf("Wall kind %v never appears", kind)
		}
	}
	if counts[Wall1] <= counts[Wall2] {
		t.Errorf("Expected Wall1 (%d) to outnumber Wall2 (%d)", counts[Wall1], counts[Wall2])
	}
}
