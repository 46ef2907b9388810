package game

import (
	"math"
	"testing"

	"chosenoffset.com/warren/internal/config"
	"chosenoffset.com/warren/internal/entity"
	"chosenoffset.com/warren/internal/fog"
	"chosenoffset.com/warren/internal/gamestate"
	"chosenoffset.com/warren/internal/level"
	"chosenoffset.com/warren/internal/player"
	"chosenoffset.com/warren/internal/raycast"
)

const dt = 1.0 / 60.0

// recordSink captures audio cues for assertions.
type recordSink struct {
	events []entity.AudioEvent
}

func (r *recordSink) Play(event entity.AudioEvent) {
	r.events = append(r.events, event)
}

func (r *recordSink) has(want entity.AudioEvent) bool {
	for _, e := range r.events {
		if e == want {
			return true
		}
	}
	return false
}

// fixtureSession builds a session over a hand-authored grid instead of a
// generated level, so tests control every placement.
func fixtureSession(rows []string, px, py float64) (*Session, *recordSink) {
	cfg := config.Default()
	g := level.ParseGrid(rows)
	lvl := &level.Level{Grid: g, PlayerSpawn: level.WorldPoint{X: px, Y: py}}

	p := player.New(px, py, 0)
	sink := &recordSink{}
	return &Session{
		Tier:   level.TierSmall,
		Level:  lvl,
		Player: p,
		Fog:    fog.New(g, cfg.Render.VisionRadius),
		State:  gamestate.New(),
		Caster: raycast.New(cfg.Render.FOV(), cfg.Render.MaxViewDistance),
		cfg:    cfg,
		audio:  sink,
	}, sink
}

func TestFireHitsEnemyAhead(t *testing.T) {
	px, py := level.CellCenter(1, 1)
	s, sink := fixtureSession([]string{
		"######",
		"#....#",
		"######",
	}, px, py)

	e := entity.NewRat(px+2*level.BlockSize, py)
	s.Enemies = []*entity.Enemy{e}

	startAmmo := s.State.Ammo
	s.fire()

	if e.Health != e.MaxHealth-weaponDamage {
		t.Errorf("Enemy health %d, want %d", e.Health, e.MaxHealth-weaponDamage)
	}
	if s.State.Ammo != startAmmo-1 {
		t.Errorf("Ammo %d, want one round spent", s.State.Ammo)
	}
	if !sink.has(entity.EventPlayerFire) || !sink.has(entity.EventEnemyHit) {
		t.Errorf("Expected fire and hit cues, got %v", sink.events)
	}
}

func TestFireKillAwardsScore(t *testing.T) {
	px, py := level.CellCenter(1, 1)
	s, sink := fixtureSession([]string{
		"######",
		"#....#",
		"######",
	}, px, py)

	e := entity.NewRat(px+level.BlockSize, py)
	s.Enemies = []*entity.Enemy{e}

	for e.Alive() {
		s.fireTimer = 0
		s.fire()
	}

	if s.State.Kills != 1 {
		t.Errorf("Kills = %d, want 1", s.State.Kills)
	}
	if s.State.Score != 25 {
		t.Errorf("Score = %d, want 25", s.State.Score)
	}
	if !sink.has(entity.EventDeath) {
		t.Error("Kill should emit a death cue")
	}
}

func TestFireBlockedByWall(t *testing.T) {
	px, py := level.CellCenter(1, 1)
	s, _ := fixtureSession([]string{
		"#######",
		"#.#...#",
		"#######",
	}, px, py)

	// Enemy straight ahead but behind the wall column at x=2.
	e := entity.NewRat(level.BlockSize*4.5, py)
	s.Enemies = []*entity.Enemy{e}

	s.fire()
	if e.Health != e.MaxHealth {
		t.Errorf("Shot through a wall dealt %d damage", e.MaxHealth-e.Health)
	}
}

func TestFireOutsideAimCone(t *testing.T) {
	px, py := level.CellCenter(2, 2)
	s, _ := fixtureSession([]string{
		"######",
		"#....#",
		"#....#",
		"#....#",
		"######",
	}, px, py)

	// Enemy well off to the side of the facing direction.
	e := entity.NewRat(px, py+level.BlockSize)
	s.Enemies = []*entity.Enemy{e}

	s.fire()
	if e.Health != e.MaxHealth {
		t.Error("Enemy outside the aim cone must not be hit")
	}
	if s.State.Ammo == 200 {
		t.Error("A missed shot still costs ammo")
	}
}

func TestFireAmmoGate(t *testing.T) {
	px, py := level.CellCenter(1, 1)
	s, sink := fixtureSession([]string{
		"####",
		"#..#",
		"####",
	}, px, py)
	s.State.Ammo = 0

	s.fire()
	if sink.has(entity.EventPlayerFire) {
		t.Error("Empty weapon must not fire")
	}
	found := false
	for _, m := range s.Messages() {
		if m.Text == "Out of ammo!" {
			found = true
		}
	}
	if !found {
		t.Error("Dry fire should surface an out-of-ammo message")
	}
}

func TestStepCollectsContactPickups(t *testing.T) {
	px, py := level.CellCenter(1, 1)
	s, _ := fixtureSession([]string{
		"####",
		"#..#",
		"####",
	}, px, py)

	sp := entity.NewSprite(entity.KindPickup, px+4, py, 0)
	sp.Pickup = gamestate.PickupAmmo
	far := entity.NewSprite(entity.KindPickup, px+level.BlockSize, py, 0)
	far.Pickup = gamestate.PickupHealth
	s.Sprites = []*entity.Sprite{sp, far}

	if out := s.Step(player.Input{}, dt); out != OutcomeRunning {
		t.Fatalf("Step outcome = %v, want running", out)
	}

	if sp.Active {
		t.Error("Pickup in contact range should be collected")
	}
	if !far.Active {
		t.Error("Pickup out of range should remain")
	}
	if s.State.Ammo != 220 {
		t.Errorf("Ammo = %d, want 220 after the pickup", s.State.Ammo)
	}
}

func TestStepExitRequiresKey(t *testing.T) {
	px, py := level.CellCenter(2, 1)
	s, _ := fixtureSession([]string{
		"####",
		"#.E#",
		"####",
	}, px, py)

	if out := s.Step(player.Input{}, dt); out != OutcomeRunning {
		t.Fatalf("Exit without a key should not complete the level, got %v", out)
	}

	s.State.CollectPickup(gamestate.PickupKey)
	if out := s.Step(player.Input{}, dt); out != OutcomeLevelClear {
		t.Fatalf("Exit with a key should complete the level, got %v", out)
	}
	if s.State.Keys != 0 {
		t.Errorf("Unlocking the exit should consume the key, %d left", s.State.Keys)
	}
}

func TestStepPlayerDeath(t *testing.T) {
	px, py := level.CellCenter(1, 1)
	s, _ := fixtureSession([]string{
		"####",
		"#..#",
		"####",
	}, px, py)

	s.State.Health = 0
	if out := s.Step(player.Input{}, dt); out != OutcomePlayerDead {
		t.Errorf("Step with zero health = %v, want player dead", out)
	}
}

func TestStepEnemyDamageReachesPlayer(t *testing.T) {
	px, py := level.CellCenter(1, 1)
	s, sink := fixtureSession([]string{
		"######",
		"#....#",
		"######",
	}, px, py)

	e := entity.NewRat(px+10, py)
	e.State = entity.StateAttack
	s.Enemies = []*entity.Enemy{e}

	start := s.State.Health
	for i := 0; i < 300 && s.State.Health == start; i++ {
		s.Step(player.Input{}, dt)
	}
	if s.State.Health != start-e.AttackDamage {
		t.Errorf("Health %d, want %d after one strike", s.State.Health, start-e.AttackDamage)
	}
	if !sink.has(entity.EventAttack) {
		t.Error("Enemy strike should emit an attack cue")
	}
}

func TestMessagesExpire(t *testing.T) {
	px, py := level.CellCenter(1, 1)
	s, _ := fixtureSession([]string{
		"####",
		"#..#",
		"####",
	}, px, py)

	s.ShowMessage("hello")
	if len(s.Messages()) != 1 {
		t.Fatal("Message should be queued")
	}
	for i := 0; i < 4*60; i++ {
		s.Step(player.Input{}, dt)
	}
	if len(s.Messages()) != 0 {
		t.Errorf("Messages should expire after their lifetime, %d left", len(s.Messages()))
	}
}

func TestWrapAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{2 * math.Pi, 0},
		{-2 * math.Pi, 0},
		{3 * math.Pi, math.Pi},
	}
	for _, c := range cases {
		if got := wrapAngle(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("wrapAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
