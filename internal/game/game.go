// Package game runs the frame loop: it samples input, steps the simulation,
// and blits the composited framebuffer to the screen. It also owns the thin
// screen flow around the simulation (menu, playing, game over, victory).
package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/warren/internal/config"
	"chosenoffset.com/warren/internal/gamestate"
	"chosenoffset.com/warren/internal/raycast"
	"chosenoffset.com/warren/internal/render"
	"chosenoffset.com/warren/pkg/logger"
)

// Mode is the current top-level screen.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
	ModeVictory
)

// Game implements ebiten.Game and holds everything that outlives a single
// level: the config, the texture set, the compositor, and the run state.
type Game struct {
	cfg        *config.Config
	mode       Mode
	session    *Session
	state      *gamestate.GameState
	textures   *render.TextureSet
	compositor *render.Compositor
	audio      AudioSink
	seed       int64
}

// New assembles the game shell. Seed 0 means a random level each run.
func New(cfg *config.Config, seed int64, audio AudioSink) *Game {
	if audio == nil {
		audio = LogSink{}
	}
	textures := render.GenerateTextures(1)
	return &Game{
		cfg:      cfg,
		mode:     ModeMenu,
		textures: textures,
		compositor: render.NewCompositor(
			cfg.Screen.Width, cfg.Screen.ViewHeight, cfg.Screen.HUDHeight,
			cfg.Render.FOV(), cfg.Render.MaxViewDistance, textures),
		audio: audio,
		seed:  seed,
	}
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	const dt = 1.0 / 60.0

	switch g.mode {
	case ModeMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.startRun()
		}

	case ModePlaying:
		switch g.session.Step(ReadInput(), dt) {
		case OutcomeLevelClear:
			g.nextTier()
		case OutcomePlayerDead:
			logger.Log.WithField("score", g.state.Score).Info("player died")
			g.mode = ModeGameOver
		}

	case ModeGameOver, ModeVictory:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.mode = ModeMenu
		}
	}

	return nil
}

func (g *Game) startRun() {
	g.state = gamestate.New()
	g.session = NewSession(g.cfg, g.cfg.Level.StartTier(), g.seed, g.state, g.audio)
	g.mode = ModePlaying
}

func (g *Game) nextTier() {
	next, ok := g.session.Tier.Next()
	if !ok {
		logger.Log.WithField("score", g.state.Score).Info("run complete")
		g.mode = ModeVictory
		return
	}
	// Derive the next seed from the current one so a fixed -seed run is
	// reproducible across all tiers.
	var seed int64
	if g.seed != 0 {
		seed = g.session.Level.Seed + 1
	}
	g.session = NewSession(g.cfg, next, seed, g.state, g.audio)
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case ModeMenu:
		g.drawMenu(screen)
	case ModePlaying:
		g.drawPlaying(screen)
	case ModeGameOver:
		g.drawEndScreen(screen, "YOU DIED")
	case ModeVictory:
		g.drawEndScreen(screen, "YOU ESCAPED THE WARREN")
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 12, 20, 255})
	cx := g.cfg.Screen.Width / 2
	cy := g.cfg.Screen.TotalHeight() / 2
	ebitenutil.DebugPrintAt(screen, "W A R R E N", cx-40, cy-40)
	ebitenutil.DebugPrintAt(screen, "WASD move, arrows turn, Space/Mouse fire", cx-120, cy)
	ebitenutil.DebugPrintAt(screen, "Find the key, reach the exit", cx-90, cy+16)
	ebitenutil.DebugPrintAt(screen, "Press Enter to start", cx-60, cy+48)
}

func (g *Game) drawPlaying(screen *ebiten.Image) {
	s := g.session
	hits := s.Caster.CastFan(s.Level.Grid, s.Player.X, s.Player.Y, s.Player.Angle, g.cfg.Render.RayCount)

	fb := g.compositor.Render(&render.Frame{
		Grid:         s.Level.Grid,
		Fog:          s.Fog,
		Hits:         hits,
		Depth:        raycast.DepthBuffer(hits),
		Sprites:      buildBillboards(s, g.textures),
		Markers:      buildMarkers(s),
		State:        s.State,
		PlayerX:      s.Player.X,
		PlayerY:      s.Player.Y,
		Facing:       s.Player.Angle,
		HeightOffset: s.Player.HeightOffset,
		WeaponFiring: s.WeaponFiring(),
	})
	screen.WritePixels(fb.Pix())

	// Text layers go straight on the screen, on top of the framebuffer.
	hudY := g.cfg.Screen.ViewHeight + 8
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("HP %d/%d  AMMO %d  KEYS %d  SCORE %d  KILLS %d  [%s]",
			s.State.Health, s.State.MaxHealth, s.State.Ammo, s.State.Keys,
			s.State.Score, s.State.Kills, s.Tier.String()),
		12, hudY)

	for i, m := range s.Messages() {
		ebitenutil.DebugPrintAt(screen, m.Text, 12, 12+i*16)
	}
}

func (g *Game) drawEndScreen(screen *ebiten.Image, title string) {
	screen.Fill(color.RGBA{15, 12, 20, 255})
	cx := g.cfg.Screen.Width / 2
	cy := g.cfg.Screen.TotalHeight() / 2
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, cy-32)
	if g.state != nil {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Score %d   Kills %d   Treasure %d", g.state.Score, g.state.Kills, g.state.Treasure),
			cx-100, cy)
	}
	ebitenutil.DebugPrintAt(screen, "Press Enter for menu", cx-60, cy+32)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.TotalHeight()
}
