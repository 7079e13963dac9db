package sfx

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Bell rings the terminal bell for each tone, at most once per MinGap.
// Terminals have no pitch control, so every tone sounds alike.
type Bell struct {
	mu     sync.Mutex
	w      io.Writer
	minGap time.Duration
	last   time.Time
	now    func() time.Time
}

// NewBell creates a bell sink writing to w.
func NewBell(w io.Writer, minGap time.Duration) *Bell {
	return &Bell{w: w, minGap: minGap, now: time.Now}
}

// Play writes BEL unless a bell rang less than minGap ago.
func (b *Bell) Play(Tone) {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	if !b.last.IsZero() && now.Sub(b.last) < b.minGap {
		return
	}
	b.last = now
	_, _ = b.w.Write([]byte{'\a'})
}

// LogSink reports tones to a logger at debug level.
type LogSink struct {
	Logger *log.Logger
}

// Play logs the tone.
func (l LogSink) Play(t Tone) {
	if l.Logger == nil {
		return
	}
	l.Logger.Debug("tone", "name", t.Name, "wave", t.Wave, "freq", t.Freq, "ramp", t.RampTo, "dur", t.Duration)
}

// Multi fans a tone out to several sinks.
type Multi []Sink

// Play forwards t to every sink.
func (m Multi) Play(t Tone) {
	for _, s := range m {
		s.Play(t)
	}
}
