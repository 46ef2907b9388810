package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/warren/internal/player"
)

// ReadInput samples the keyboard and mouse into one frame's command list.
// WASD moves and strafes, the arrow keys rotate (left/right) or move
// (up/down), and Space or the left mouse button fires.
func ReadInput() player.Input {
	var in player.Input

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Commands = append(in.Commands, player.Forward)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.Commands = append(in.Commands, player.Backward)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Commands = append(in.Commands, player.StrafeLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Commands = append(in.Commands, player.StrafeRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.Commands = append(in.Commands, player.RotateLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.Commands = append(in.Commands, player.RotateRight)
	}

	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return in
}
