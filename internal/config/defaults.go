package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultFlappyConfig returns the default Flappy configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: World{Width: 520, Height: 360},
		Physics: FlappyPhysics{
			Gravity:     0.45,
			FlapImpulse: -6.5,
		},
		Pipes: FlappyPipes{
			Gap:         100,
			Speed:       2.6,
			Width:       50,
			EveryMS:     1400,
			SpawnOffset: 40,
			Margin:      40,
			CullMargin:  20,
		},
		Bird: FlappyBird{X: 100, Width: 28, Height: 20},
	}
}

// DefaultJumperConfig returns the default Jumper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: World{Width: 600, Height: 260},
		Physics: JumperPhysics{
			Gravity:     0.6,
			JumpImpulse: -10,
		},
		Player: JumperPlayer{X: 60, Size: 30, GroundOffset: 10},
		Speed:  Schedule{Start: 4, Step: 0.8, Every: 200, Limit: 11},
		Obstacles: JumperObstacles{
			SpawnMinMS:    900,
			SpawnMaxMS:    1600,
			SpawnOffset:   40,
			GroundChance:  0.65,
			Ground:        SizeSpan{MinW: 18, MaxW: 30, MinH: 20, MaxH: 48},
			Flying:        SizeSpan{MinW: 22, MaxW: 30, MinH: 14, MaxH: 20},
			FlyingLift:    110,
			FlyingJitter:  8,
			PairMinSpeed:  7,
			PairChance:    0.25,
			PairGapMin:    90,
			PairGapMax:    130,
			CullMargin:    20,
			DistanceFrame: 16,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:     SnakeGrid{Width: 20, Height: 20},
		Boundary: BoundaryWrap,
		Interval: Schedule{Start: 100, Step: -5, Every: 3, Limit: 55},
	}
}

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Mode:       ModeCPU,
		CPUDelayMS: 300,
		Memoize:    true,
	}
}
