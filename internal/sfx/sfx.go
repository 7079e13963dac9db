// Package sfx describes short synthesized sound effects and the sinks that play them.
package sfx

import (
	"fmt"
	"sync"
	"time"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Sawtooth
	Triangle
)

func (w Wave) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	default:
		return fmt.Sprintf("wave(%d)", int(w))
	}
}

// Tone is a single oscillator note with an optional exponential frequency ramp.
type Tone struct {
	Name     string
	Wave     Wave
	Freq     float64 // start frequency, Hz
	RampTo   float64 // end frequency, Hz; 0 keeps Freq
	Gain     float64
	Duration time.Duration
}

// Effects used by the games.
var (
	Flap  = Tone{Name: "flap", Wave: Square, Freq: 700, RampTo: 1000, Gain: 0.05, Duration: 100 * time.Millisecond}
	Hit   = Tone{Name: "hit", Wave: Sawtooth, Freq: 180, RampTo: 80, Gain: 0.1, Duration: 150 * time.Millisecond}
	Score = Tone{Name: "score", Wave: Triangle, Freq: 1000, Gain: 0.035, Duration: 90 * time.Millisecond}
	Jump  = Tone{Name: "jump", Wave: Square, Freq: 600, RampTo: 900, Gain: 0.06, Duration: 110 * time.Millisecond}
	Eat   = Tone{Name: "eat", Wave: Square, Freq: 880, Gain: 0.06, Duration: 90 * time.Millisecond}
)

// Sink plays tones. Implementations must not block the caller.
type Sink interface {
	Play(t Tone)
}

// Nop discards every tone.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Tone) {}

// Switch gates a sink behind a mute toggle.
type Switch struct {
	mu    sync.Mutex
	sink  Sink
	muted bool
}

// NewSwitch wraps sink. A nil sink is treated as Nop.
func NewSwitch(sink Sink, muted bool) *Switch {
	if sink == nil {
		sink = Nop{}
	}
	return &Switch{sink: sink, muted: muted}
}

// Play forwards t unless muted.
func (s *Switch) Play(t Tone) {
	s.mu.Lock()
	muted := s.muted
	s.mu.Unlock()
	if muted {
		return
	}
	s.sink.Play(t)
}

// Toggle flips the mute state and returns the new state.
func (s *Switch) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	return s.muted
}

// Muted reports whether tones are being dropped.
func (s *Switch) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Recorder keeps every tone it receives. Useful in tests.
type Recorder struct {
	mu    sync.Mutex
	tones []Tone
}

// Play records t.
func (r *Recorder) Play(t Tone) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tones = append(r.tones, t)
}

// Names returns the names of recorded tones in order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.tones))
	for i, t := range r.tones {
		names[i] = t.Name
	}
	return names
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tones = nil
}
