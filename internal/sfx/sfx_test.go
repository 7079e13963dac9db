package sfx

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwitchMuted(t *testing.T) {
	rec := &Recorder{}
	sw := NewSwitch(rec, true)

	sw.Play(Flap)
	sw.Play(Hit)
	assert.Empty(t, rec.Names(), "muted switch must not reach the sink")

	assert.False(t, sw.Toggle())
	sw.Play(Score)
	assert.Equal(t, []string{"score"}, rec.Names())

	assert.True(t, sw.Toggle())
	sw.Play(Eat)
	assert.Equal(t, []string{"score"}, rec.Names())
}

func TestSwitchNilSink(t *testing.T) {
	sw := NewSwitch(nil, false)
	require.NotPanics(t, func() { sw.Play(Jump) })
}

func TestBellRateLimit(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBell(&buf, 50*time.Millisecond)
	clock := time.Unix(0, 0)
	bell.now = func() time.Time { return clock }

	bell.Play(Flap)
	bell.Play(Flap)
	assert.Equal(t, 1, buf.Len())

	clock = clock.Add(60 * time.Millisecond)
	bell.Play(Score)
	assert.Equal(t, "\a\a", buf.String())
}

func TestLogSinkAndMulti(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	rec := &Recorder{}

	Multi{LogSink{Logger: logger}, rec}.Play(Hit)

	assert.True(t, strings.Contains(buf.String(), "hit"))
	assert.Equal(t, []string{"hit"}, rec.Names())
}

func TestEffectShapes(t *testing.T) {
	assert.Equal(t, Square, Flap.Wave)
	assert.Equal(t, 1000.0, Flap.RampTo)
	assert.Equal(t, Sawtooth, Hit.Wave)
	assert.Equal(t, Triangle, Score.Wave)
	assert.Zero(t, Eat.RampTo)
	assert.Equal(t, "sawtooth", Hit.Wave.String())
}
