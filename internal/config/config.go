// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import "time"

// World is the simulated playfield in game pixels.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyConfig contains all configuration for the Flappy game.
type FlappyConfig struct {
	World   World         `yaml:"world"`
	Physics FlappyPhysics `yaml:"physics"`
	Pipes   FlappyPipes   `yaml:"pipes"`
	Bird    FlappyBird    `yaml:"bird"`
}

// FlappyPhysics defines per-frame physics for the bird.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"`
}

// FlappyPipes defines pipe geometry and cadence.
type FlappyPipes struct {
	Gap         float64 `yaml:"gap"`
	Speed       float64 `yaml:"speed"`
	Width       float64 `yaml:"width"`
	EveryMS     int     `yaml:"every_ms"`
	SpawnOffset float64 `yaml:"spawn_offset"` // distance past the right edge
	Margin      float64 `yaml:"margin"`       // minimum pipe height at top and bottom
	CullMargin  float64 `yaml:"cull_margin"`
}

// Every returns the spawn period.
func (p FlappyPipes) Every() time.Duration {
	return time.Duration(p.EveryMS) * time.Millisecond
}

// FlappyBird defines the bird hitbox.
type FlappyBird struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// JumperConfig contains all configuration for the Jumper runner.
type JumperConfig struct {
	World     World           `yaml:"world"`
	Physics   JumperPhysics   `yaml:"physics"`
	Player    JumperPlayer    `yaml:"player"`
	Speed     Schedule        `yaml:"speed"`
	Obstacles JumperObstacles `yaml:"obstacles"`
}

// JumperPhysics defines per-frame physics for the runner.
type JumperPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// JumperPlayer defines the runner hitbox and ground line.
type JumperPlayer struct {
	X            float64 `yaml:"x"`
	Size         float64 `yaml:"size"`
	GroundOffset float64 `yaml:"ground_offset"` // ground line distance from the bottom
}

// JumperObstacles defines obstacle generation.
type JumperObstacles struct {
	SpawnMinMS    int      `yaml:"spawn_min_ms"`
	SpawnMaxMS    int      `yaml:"spawn_max_ms"`
	SpawnOffset   float64  `yaml:"spawn_offset"`
	GroundChance  float64  `yaml:"ground_chance"`
	Ground        SizeSpan `yaml:"ground"`
	Flying        SizeSpan `yaml:"flying"`
	FlyingLift    float64  `yaml:"flying_lift"`   // flying obstacle y = height - lift
	FlyingJitter  float64  `yaml:"flying_jitter"` // +/- around the lift
	PairMinSpeed  float64  `yaml:"pair_min_speed"`
	PairChance    float64  `yaml:"pair_chance"`
	PairGapMin    float64  `yaml:"pair_gap_min"`
	PairGapMax    float64  `yaml:"pair_gap_max"`
	CullMargin    float64  `yaml:"cull_margin"`
	DistanceFrame int      `yaml:"distance_frame_ms"` // distance += speed * dt / frame
}

// SizeSpan is an inclusive range of obstacle sizes.
type SizeSpan struct {
	MinW float64 `yaml:"min_w"`
	MaxW float64 `yaml:"max_w"`
	MinH float64 `yaml:"min_h"`
	MaxH float64 `yaml:"max_h"`
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Grid     SnakeGrid `yaml:"grid"`
	Boundary string    `yaml:"boundary"` // "wrap" or "wall"
	Interval Schedule  `yaml:"interval"` // milliseconds, driven by body length
}

// SnakeGrid defines the board size.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Boundary policies.
const (
	BoundaryWrap = "wrap"
	BoundaryWall = "wall"
)

// TicTacToeConfig contains all configuration for Tic-Tac-Toe.
type TicTacToeConfig struct {
	Mode       string `yaml:"mode"` // "cpu" or "pvp"
	CPUDelayMS int    `yaml:"cpu_delay_ms"`
	Memoize    bool   `yaml:"memoize"`
}

// CPUDelay returns the pause before the CPU answers.
func (c TicTacToeConfig) CPUDelay() time.Duration {
	return time.Duration(c.CPUDelayMS) * time.Millisecond
}

// Tic-Tac-Toe modes.
const (
	ModeCPU = "cpu"
	ModePvP = "pvp"
)
