// Package audio plays short feedback tones through the system speaker.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	bumpFreq     = 220.0
	bumpDuration = 60 * time.Millisecond
)

// Player emits feedback sounds. The game only depends on this interface
// so it can run silently.
type Player interface {
	// Bump signals that a move was refused.
	Bump()
}

// Silent is a Player that does nothing.
type Silent struct{}

// Bump does nothing.
func (Silent) Bump() {}

// Speaker plays tones on the default audio device.
type Speaker struct {
	tone beep.Streamer
}

// NewSpeaker initializes the audio device. Audio is optional: callers
// should fall back to Silent on error.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	sine, err := generators.SineTone(sampleRate, bumpFreq)
	if err != nil {
		return nil, err
	}
	return &Speaker{tone: sine}, nil
}

// Bump plays a short low tone.
func (s *Speaker) Bump() {
	speaker.Play(beep.Take(sampleRate.N(bumpDuration), s.tone))
}

// Close releases the audio device.
func (s *Speaker) Close() {
	speaker.Close()
}

var (
	_ Player = Silent{}
	_ Player = (*Speaker)(nil)
)
