package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigames/internal/platform/tui"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBoundary   string
	flagMode       string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Up/W   - Flap, jump (click works too)
  Arrows/WASD  - Steer the snake, move the board cursor
  Enter, 1-9   - Place a mark (or click a cell)
  T            - Tic-Tac-Toe: switch vs Computer / Two Players
  M            - Sound on/off
  P            - Pause
  R            - Restart
  Esc          - Leave
  Ctrl+S       - Save a text screenshot

Difficulty presets (flappy, jumper, snake): easy, normal, hard.

Snake and Tic-Tac-Toe ask for a mode first unless --boundary or --mode is given.

Examples:
  arcade play flappy
  arcade play jumper --difficulty easy
  arcade play snake --boundary wall
  arcade play tictactoe --mode cpu
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagBoundary, "boundary", "", "Snake edges: wrap or wall")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Tic-Tac-Toe opponent: cpu or pvp")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts := registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Boundary:   flagBoundary,
		Mode:       flagMode,
	}
	// Validate flags before taking over the terminal.
	if _, err := registry.Create(gameID, opts); err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	env := tui.NewEnv(tui.EnvConfig{
		Store:   store,
		Bell:    bellOutput(),
		Muted:   flagMute,
		Logger:  logger,
		Options: opts,
	})

	ok, err := tui.RunChoiceSelector(env, gameID, cfg, &opts)
	if err != nil {
		return fmt.Errorf("mode selector: %w", err)
	}
	if !ok {
		return nil
	}

	game, err := registry.Create(gameID, opts)
	if err != nil {
		return err
	}

	logger.Info("playing", "game", gameID, "difficulty", opts.Difficulty, "boundary", opts.Boundary, "mode", opts.Mode)
	if err := tui.Run(game, env, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
