package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flappy, err := LoadFlappy("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFlappyConfig(), flappy)

	jumper, err := LoadJumper("")
	require.NoError(t, err)
	assert.Equal(t, DefaultJumperConfig(), jumper)

	snake, err := LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSnakeConfig(), snake)

	ttt, err := LoadTicTacToe("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTicTacToeConfig(), ttt)
	assert.Equal(t, 300*time.Millisecond, ttt.CPUDelay())
}

func TestCustomPathOverridesOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boundary: wall\n"), 0o644))

	cfg, err := LoadSnake(path)
	require.NoError(t, err)
	assert.Equal(t, BoundaryWall, cfg.Boundary)
	assert.Equal(t, 20, cfg.Grid.Width, "unnamed fields keep defaults")
	assert.Equal(t, 100.0, cfg.Interval.Start)
}

func TestCustomPathErrors(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("pipes: [unterminated"), 0o644))
	_, err = LoadFlappy(bad)
	assert.Error(t, err)

	mode := filepath.Join(t.TempDir(), "ttt.yaml")
	require.NoError(t, os.WriteFile(mode, []byte("mode: online\n"), 0o644))
	_, err = LoadTicTacToe(mode)
	assert.Error(t, err)
}

func TestLocalConfigsDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "flappy.yaml"), []byte("pipes:\n  gap: 140\n"), 0o644))

	cfg, err := LoadFlappy("")
	require.NoError(t, err)
	assert.Equal(t, 140.0, cfg.Pipes.Gap)
	assert.Equal(t, 2.6, cfg.Pipes.Speed)
}

func TestScheduleValue(t *testing.T) {
	speed := DefaultJumperConfig().Speed
	assert.Equal(t, 4.0, speed.Value(0))
	assert.Equal(t, 4.0, speed.Value(199))
	assert.InDelta(t, 4.8, speed.Value(200), 1e-9)
	assert.InDelta(t, 11.0, speed.Value(100000), 1e-9)

	prev := speed.Value(0)
	for score := 0; score <= 3000; score += 7 {
		v := speed.Value(score)
		assert.GreaterOrEqual(t, v, prev, "speed must not decrease")
		prev = v
	}

	interval := DefaultSnakeConfig().Interval
	assert.Equal(t, 100.0, interval.Value(0))
	assert.Equal(t, 95.0, interval.Value(3))
	assert.Equal(t, 55.0, interval.Value(400))
}

func TestPresets(t *testing.T) {
	p, ok := ParsePreset("")
	assert.True(t, ok)
	assert.Equal(t, DifficultyNormal, p)
	_, ok = ParsePreset("insane")
	assert.False(t, ok)

	easy := DefaultFlappyConfig()
	ApplyFlappyPreset(&easy, DifficultyEasy)
	hard := DefaultFlappyConfig()
	ApplyFlappyPreset(&hard, DifficultyHard)
	assert.Greater(t, easy.Pipes.Gap, hard.Pipes.Gap)

	normal := DefaultSnakeConfig()
	ApplySnakePreset(&normal, DifficultyNormal)
	assert.Equal(t, DefaultSnakeConfig(), normal)

	j := DefaultJumperConfig()
	ApplyJumperPreset(&j, DifficultyHard)
	assert.Greater(t, j.Speed.Start, DefaultJumperConfig().Speed.Start)
}
