package entity

import (
	"math"

	"chosenoffset.com/warren/internal/level"
)

// AIState is the finite state an enemy is in.
type AIState uint8

const (
	StateIdle AIState = iota
	StateChase
	StateAttack
	StateDead
)

// String implements fmt.Stringer for log output.
func (s AIState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// AudioEvent is a sound cue an enemy emits; the core never plays audio
// itself, the game loop forwards these to the audio collaborator.
type AudioEvent uint8

const (
	EventChaseStart AudioEvent = iota
	EventAttack
	EventDeath
	EventPlayerFire
	EventEnemyHit
)

func (e AudioEvent) String() string {
	switch e {
	case EventChaseStart:
		return "chase_start"
	case EventAttack:
		return "attack"
	case EventDeath:
		return "death"
	case EventPlayerFire:
		return "player_fire"
	case EventEnemyHit:
		return "enemy_hit"
	default:
		return "unknown"
	}
}

// Hysteresis factors for the state machine. An enemy locks on at the
// detection radius but only disengages beyond 1.5x it, and leaves Attack
// only beyond 1.2x the attack range, so it cannot flap across either
// boundary.
const (
	chaseReleaseFactor  = 1.5
	attackReleaseFactor = 1.2
)

// Animation tracks for enemies: frame counts and base indices into the
// enemy texture sheet.
type animTrack struct {
	frames int
	base   int
	loop   bool
}

var (
	animWalk   = animTrack{frames: 4, base: 0, loop: true}
	animAttack = animTrack{frames: 3, base: 4, loop: true}
	animDeath  = animTrack{frames: 3, base: 7, loop: false}
)

type animState struct {
	track    animTrack
	index    int
	timer    float64
	duration float64
	finished bool
}

func (a *animState) set(track animTrack) {
	if a.track == track && !a.finished {
		return
	}
	a.track = track
	a.index = 0
	a.timer = 0
	a.finished = false
}

func (a *animState) update(dt float64) {
	if a.finished {
		return
	}
	a.timer += dt
	if a.timer < a.duration {
		return
	}
	a.timer = 0
	a.index++
	if a.index >= a.track.frames {
		if a.track.loop {
			a.index = 0
		} else {
			a.index = a.track.frames - 1
			a.finished = true
		}
	}
}

func (a *animState) frame() int {
	return a.track.base + a.index
}

// Enemy is a sprite with health and a chase/attack state machine.
type Enemy struct {
	Sprite
	Health    int
	MaxHealth int
	State     AIState

	DetectionRadius float64
	AttackRange     float64
	MoveSpeed       float64 // World units per second
	AttackDamage    int
	AttackCooldown  float64 // Seconds between damage events

	attackTimer float64
	flashTimer  float64
	anim        animState
}

// NewRat builds the basic enemy type at a world position.
func NewRat(x, y float64) *Enemy {
	e := &Enemy{
		Sprite:          *NewSprite(KindEnemy, x, y, 0),
		Health:          20,
		MaxHealth:       20,
		State:           StateIdle,
		DetectionRadius: 300,
		AttackRange:     40,
		MoveSpeed:       80,
		AttackDamage:    10,
		AttackCooldown:  1.0,
	}
	e.Scale = 0.7
	e.anim = animState{track: animWalk, duration: 0.15}
	return e
}

// Alive reports whether the enemy still acts and collides.
func (e *Enemy) Alive() bool {
	return e.State != StateDead
}

// Flashing reports whether the damage flash is active, for render tinting.
func (e *Enemy) Flashing() bool {
	return e.flashTimer > 0
}

// UpdateResult carries the side effects of one enemy update tick.
type UpdateResult struct {
	Damage int          // Damage dealt to the player this tick
	Events []AudioEvent // Sound cues emitted this tick
}

// Update advances the state machine one frame. It is a pure function of the
// enemy's own state, the player position, and the grid; the returned result
// carries any damage or audio side effects for the caller to apply.
func (e *Enemy) Update(dt, px, py float64, g *level.Grid) UpdateResult {
	var res UpdateResult

	e.anim.update(dt)
	e.Frame = e.anim.frame()
	if e.flashTimer > 0 {
		e.flashTimer -= dt
	}

	// Health/state desync resolves here: zero health is always Dead before
	// anything else runs.
	if e.Health <= 0 && e.State != StateDead {
		e.State = StateDead
		e.anim.set(animDeath)
		res.Events = append(res.Events, EventDeath)
		return res
	}
	if e.State == StateDead {
		e.anim.set(animDeath)
		return res
	}

	if e.attackTimer > 0 {
		e.attackTimer -= dt
	}

	dist := math.Hypot(px-e.X, py-e.Y)

	switch e.State {
	case StateIdle:
		e.anim.set(animWalk)
		if dist <= e.DetectionRadius {
			e.State = StateChase
			res.Events = append(res.Events, EventChaseStart)
		}

	case StateChase:
		e.anim.set(animWalk)
		switch {
		case dist <= e.AttackRange:
			e.State = StateAttack
			e.anim.set(animAttack)
		case dist > e.DetectionRadius*chaseReleaseFactor:
			e.State = StateIdle
		default:
			e.moveToward(dt, px, py, g)
		}

	case StateAttack:
		e.anim.set(animAttack)
		if dist > e.AttackRange*attackReleaseFactor {
			e.State = StateChase
		} else if e.attackTimer <= 0 && e.anim.index == 1 {
			// Damage lands on the strike frame of the attack animation.
			e.attackTimer = e.AttackCooldown
			res.Damage = e.AttackDamage
			res.Events = append(res.Events, EventAttack)
		}
	}

	return res
}

// moveToward steps toward the player at MoveSpeed, collision-checked
// against the grid. A blocked diagonal slides along whichever single axis
// is free; there is no pathfinding beyond that.
func (e *Enemy) moveToward(dt, px, py float64, g *level.Grid) {
	dx := px - e.X
	dy := py - e.Y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return
	}

	step := e.MoveSpeed * dt
	nx := e.X + dx/dist*step
	ny := e.Y + dy/dist*step

	switch {
	case g.WalkableAt(nx, ny):
		e.X, e.Y = nx, ny
	case g.WalkableAt(nx, e.Y):
		e.X = nx
	case g.WalkableAt(e.X, ny):
		e.Y = ny
	}
}

// TakeDamage applies damage and reports whether this hit killed the enemy.
// Dead enemies ignore further damage.
func (e *Enemy) TakeDamage(amount int) bool {
	if !e.Alive() {
		return false
	}
	e.Health -= amount
	e.flashTimer = 0.2
	if e.Health <= 0 {
		e.Health = 0
		e.State = StateDead
		e.anim.set(animDeath)
		return true
	}
	return false
}
