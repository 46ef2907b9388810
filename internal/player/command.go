package player

// Command is a discrete movement or rotation order, sampled once per frame
// by the input collaborator.
type Command uint8

const (
	Forward Command = iota
	Backward
	StrafeLeft
	StrafeRight
	RotateLeft
	RotateRight
)

// Input is one frame's sampled player intent: movement commands plus the
// fire trigger.
type Input struct {
	Commands []Command
	Fire     bool
}
