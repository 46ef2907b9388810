package game

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/warren/internal/config"
	"chosenoffset.com/warren/internal/entity"
	"chosenoffset.com/warren/internal/fog"
	"chosenoffset.com/warren/internal/gamestate"
	"chosenoffset.com/warren/internal/level"
	"chosenoffset.com/warren/internal/player"
	"chosenoffset.com/warren/internal/raycast"
	"chosenoffset.com/warren/pkg/logger"
)

// Weapon tuning for the machine gun, the only weapon type so far.
const (
	weaponDamage   = 5
	weaponCooldown = 0.05 // Seconds between shots
	weaponFlash    = 0.1  // How long the muzzle frame stays on screen

	// aimCone is the half-angle in radians inside which a hitscan shot
	// connects. Roughly 3.5 degrees, wide enough to be forgiving at range.
	aimCone = 0.06

	// pickupRadius is the contact distance for collecting sprites.
	pickupRadius = level.BlockSize * 0.5
)

// Outcome reports how a simulation step left the session.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeLevelClear
	OutcomePlayerDead
)

// Message is a transient on-screen text line.
type Message struct {
	Text     string
	TimeLeft float64
}

// Session is one level in progress: the generated maze plus every live
// system that runs against it. The run-wide game state is shared across
// sessions so health, ammo, and score carry over between tiers.
type Session struct {
	Tier    level.Tier
	Level   *level.Level
	Player  *player.Player
	Enemies []*entity.Enemy
	Sprites []*entity.Sprite
	Fog     *fog.Tracker
	State   *gamestate.GameState
	Caster  *raycast.Caster

	cfg   *config.Config
	audio AudioSink

	fireTimer  float64
	flashTimer float64
	messages   []Message
}

// NewSession generates a level for the tier and assembles the systems
// around it. Seed 0 generates a random level.
func NewSession(cfg *config.Config, tier level.Tier, seed int64, gs *gamestate.GameState, audio AudioSink) *Session {
	lvl := level.Generate(level.ConfigForTier(tier, seed))

	p := player.New(lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y, 0)
	p.MoveSpeed = cfg.Player.MoveSpeed
	p.RotSpeed = cfg.Player.RotSpeed
	p.ClampToFloor(lvl.Grid)

	rng := rand.New(rand.NewSource(lvl.Seed))
	s := &Session{
		Tier:    tier,
		Level:   lvl,
		Player:  p,
		Enemies: entity.SpawnEnemies(lvl),
		Sprites: entity.SpawnSprites(lvl, rng),
		Fog:     fog.New(lvl.Grid, cfg.Render.VisionRadius),
		State:   gs,
		Caster:  raycast.New(cfg.Render.FOV(), cfg.Render.MaxViewDistance),
		cfg:     cfg,
		audio:   audio,
	}

	logger.Log.WithFields(logrus.Fields{
		"tier":    tier.String(),
		"seed":    lvl.Seed,
		"enemies": len(s.Enemies),
		"sprites": len(s.Sprites),
	}).Info("session started")

	return s
}

// Step advances the whole simulation by one frame: movement, fog, AI,
// combat, pickups, and the exit check, in that order.
func (s *Session) Step(in player.Input, dt float64) Outcome {
	g := s.Level.Grid

	s.Player.Apply(in.Commands, g)
	s.Fog.Update(g, s.Player.X, s.Player.Y)

	if s.fireTimer > 0 {
		s.fireTimer -= dt
	}
	if s.flashTimer > 0 {
		s.flashTimer -= dt
	}
	if in.Fire {
		s.fire()
	}

	for _, e := range s.Enemies {
		res := e.Update(dt, s.Player.X, s.Player.Y, g)
		if res.Damage > 0 {
			s.State.TakeDamage(res.Damage)
		}
		for _, ev := range res.Events {
			s.audio.Play(ev)
		}
	}
	s.updateMessages(dt)

	if s.State.IsDead() {
		return OutcomePlayerDead
	}

	s.collectPickups()

	if s.atExit() {
		if s.State.UseKey() {
			logger.Log.WithField("tier", s.Tier.String()).Info("level complete")
			return OutcomeLevelClear
		}
		s.showOnce("The exit is locked. Find a key.")
	}

	return OutcomeRunning
}

// fire performs one hitscan shot if the cooldown and ammo allow it. The
// nearest alive enemy inside the aim cone takes the hit, unless a wall
// stands closer along the line to it.
func (s *Session) fire() {
	if s.fireTimer > 0 {
		return
	}
	if !s.State.UseAmmo(1) {
		s.showOnce("Out of ammo!")
		return
	}
	s.fireTimer = weaponCooldown
	s.flashTimer = weaponFlash
	s.audio.Play(entity.EventPlayerFire)

	var target *entity.Enemy
	bestDist := math.MaxFloat64
	for _, e := range s.Enemies {
		if !e.Alive() {
			continue
		}
		dist := e.DistanceTo(s.Player.X, s.Player.Y)
		if dist >= bestDist {
			continue
		}
		angle := math.Atan2(e.Y-s.Player.Y, e.X-s.Player.X)
		if math.Abs(wrapAngle(angle-s.Player.Angle)) > aimCone {
			continue
		}
		// A wall between the player and the enemy blocks the shot.
		wall := s.Caster.Cast(s.Level.Grid, s.Player.X, s.Player.Y, angle)
		if !wall.Miss && wall.RayDist < dist {
			continue
		}
		target = e
		bestDist = dist
	}

	if target == nil {
		return
	}
	s.audio.Play(entity.EventEnemyHit)
	if target.TakeDamage(weaponDamage) {
		s.audio.Play(entity.EventDeath)
		s.State.AddKill()
		s.ShowMessage("Enemy down! +25")
	}
}

// collectPickups collects every active pickup within contact range.
func (s *Session) collectPickups() {
	for _, sp := range s.Sprites {
		if sp.Kind != entity.KindPickup || !sp.Active {
			continue
		}
		if sp.DistanceTo(s.Player.X, s.Player.Y) > pickupRadius {
			continue
		}
		if kind, ok := sp.Collect(); ok {
			s.ShowMessage(s.State.CollectPickup(kind))
		}
	}
}

// atExit reports whether the player stands on the exit cell.
func (s *Session) atExit() bool {
	px, py := s.Player.CellPosition()
	exit := s.Level.Grid.ExitCell()
	return px == exit.X && py == exit.Y
}

// WeaponFiring reports whether the muzzle flash frame should be drawn.
func (s *Session) WeaponFiring() bool {
	return s.flashTimer > 0
}

// Messages returns the live on-screen text lines.
func (s *Session) Messages() []Message {
	return s.messages
}

// ShowMessage queues a transient text line for a few seconds.
func (s *Session) ShowMessage(text string) {
	s.messages = append(s.messages, Message{Text: text, TimeLeft: 3.0})
}

// showOnce queues a message only if it is not already on screen, for
// conditions that hold across many frames.
func (s *Session) showOnce(text string) {
	for _, m := range s.messages {
		if m.Text == text {
			return
		}
	}
	s.ShowMessage(text)
}

func (s *Session) updateMessages(dt float64) {
	var live []Message
	for _, m := range s.messages {
		m.TimeLeft -= dt
		if m.TimeLeft > 0 {
			live = append(live, m)
		}
	}
	s.messages = live
}

// wrapAngle normalizes an angle difference into (-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
