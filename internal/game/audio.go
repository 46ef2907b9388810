package game

import (
	"chosenoffset.com/warren/internal/entity"
	"chosenoffset.com/warren/pkg/logger"
)

// AudioSink receives sound cues from the simulation. The core never plays
// audio itself; a real mixer can be plugged in here without touching the
// game loop.
type AudioSink interface {
	Play(event entity.AudioEvent)
}

// LogSink is the default sink: it logs each cue at debug level.
type LogSink struct{}

// Play implements AudioSink.
func (LogSink) Play(event entity.AudioEvent) {
	logger.Log.WithField("event", event.String()).Debug("audio cue")
}
