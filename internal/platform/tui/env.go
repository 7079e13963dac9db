package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/registry"
	"github.com/vovakirdan/tui-minigames/internal/sfx"
	"github.com/vovakirdan/tui-minigames/internal/storage"
)

// bellGap keeps bursts of tones from turning into a buzz.
const bellGap = 80 * time.Millisecond

// Env is what every screen of one player session shares.
type Env struct {
	Store   *storage.Store      // run history; nil without a database
	Best    core.BestScoreStore // never nil
	Sound   *sfx.Switch
	Palette *Palette
	Logger  *log.Logger
	Options registry.Options // applied to every game created in the session
}

// EnvConfig describes a session's outputs and persistence.
type EnvConfig struct {
	Store    *storage.Store
	Bell     io.Writer // receives BEL for each tone; nil keeps the bell silent
	Muted    bool
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
	Options  registry.Options
}

// NewEnv wires the sound chain, palette and best-score store for a session.
func NewEnv(c EnvConfig) *Env {
	logger := c.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sinks := sfx.Multi{sfx.LogSink{Logger: logger}}
	if c.Bell != nil {
		sinks = append(sinks, sfx.NewBell(c.Bell, bellGap))
	}

	var best core.BestScoreStore = core.NewMemoryStore()
	if c.Store != nil {
		best = c.Store
	}

	return &Env{
		Store:   c.Store,
		Best:    best,
		Sound:   sfx.NewSwitch(sinks, c.Muted),
		Palette: NewPalette(c.Renderer),
		Logger:  logger,
		Options: c.Options,
	}
}

// runtime fills the session's collaborators into cfg.
func (e *Env) runtime(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.Scores = e.Best
	cfg.Sound = e.Sound
	return cfg
}
