package config

import "math"

// Schedule is a stepped progression: the value starts at Start and moves
// by Step for every Every units of progress until it reaches Limit.
// A positive Step climbs to Limit as a ceiling; a negative Step falls to it as a floor.
type Schedule struct {
	Start float64 `yaml:"start"`
	Step  float64 `yaml:"step"`
	Every int     `yaml:"every"`
	Limit float64 `yaml:"limit"`
}

// Value returns the scheduled value after progress units.
func (s Schedule) Value(progress int) float64 {
	if s.Every <= 0 || progress <= 0 {
		return s.bound(s.Start)
	}
	steps := math.Floor(float64(progress) / float64(s.Every))
	return s.bound(s.Start + steps*s.Step)
}

func (s Schedule) bound(v float64) float64 {
	if s.Step == 0 {
		return v
	}
	if s.Step > 0 {
		return math.Min(v, s.Limit)
	}
	return math.Max(v, s.Limit)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// ApplyFlappyPreset adjusts pipe gap and speed for a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Pipes.Gap = 125
		cfg.Pipes.Speed = 2.2
	case DifficultyHard:
		cfg.Pipes.Gap = 85
		cfg.Pipes.Speed = 3.1
	}
}

// ApplyJumperPreset adjusts the speed schedule for a difficulty preset.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Start = 3.5
		cfg.Speed.Step = 0.6
	case DifficultyHard:
		cfg.Speed.Start = 5
		cfg.Speed.Step = 1
	}
}

// ApplySnakePreset adjusts the tick schedule for a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Interval.Start = 130
		cfg.Interval.Limit = 70
	case DifficultyHard:
		cfg.Interval.Start = 85
		cfg.Interval.Limit = 45
	}
}
