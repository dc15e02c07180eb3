// Package media holds the play/pause toggle shared by the radio, the TV and
// the turntables.
package media

import (
	"lounge/internal/locale"
	"lounge/internal/logging"
)

// Playable is an audio or video source that can be paused and resumed.
// HasMedia is false while there is nothing to play (no clip, no URL).
type Playable interface {
	HasMedia() bool
	IsPlaying() bool
	Play()
	Pause()
}

// Channel is a Playable with a volume, as mixed by the DJ booth.
type Channel interface {
	Playable
	SetVolume(v float32)
	GetVolume() float32
}

// Outcome says what Toggle did.
type Outcome int

const (
	Ignored Outcome = iota // nothing to play; state unchanged
	Paused
	Started
)

func (o Outcome) String() string {
	switch o {
	case Paused:
		return "paused"
	case Started:
		return "started"
	default:
		return "ignored"
	}
}

// Toggle pauses p when it is playing and plays it otherwise. A nil p or one
// without media is left untouched and reported as a warning.
func Toggle(p Playable, label string, log *logging.Logger) Outcome {
	if p == nil || !p.HasMedia() {
		log.Warnf("%s", locale.T("Cannot play/pause %s. No media assigned.", label))
		return Ignored
	}
	if p.IsPlaying() {
		p.Pause()
		log.Infof("%s", locale.T("%s Paused", label))
		return Paused
	}
	p.Play()
	log.Infof("%s", locale.T("%s Playing", label))
	return Started
}
