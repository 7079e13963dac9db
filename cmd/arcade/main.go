// arcade is a terminal arcade of small games: Flappy, Jumper, Snake and
// Tic-Tac-Toe.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show run history for a game
//	arcade best              - Show the best score of every game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn, error
//	--mute               - Start with sound off
//
// ARCADE_DB, ARCADE_LOG_LEVEL and ARCADE_SSH_ADDR, from the environment or a
// .env file, replace the defaults of the matching flags.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-minigames/internal/games/flappy"
	_ "github.com/vovakirdan/tui-minigames/internal/games/jumper"
	_ "github.com/vovakirdan/tui-minigames/internal/games/snake"
	_ "github.com/vovakirdan/tui-minigames/internal/games/tictactoe"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
	flagMute     bool
)

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Mini games in your terminal",
	Long: `A terminal arcade with four small games:

  flappy     - flap through the gaps between pipes
  jumper     - jump over and under obstacles on an endless run
  snake      - eat, grow, don't bite yourself (wrap or wall mode)
  tictactoe  - against a computer that never loses, or a friend

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View run history
  best     - View best scores

Examples:
  arcade play flappy --difficulty hard
  arcade play snake --boundary wall
  arcade play tictactoe --mode pvp
  arcade serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		envDefault(cmd, "db", "ARCADE_DB", &flagDBPath)
		envDefault(cmd, "log-level", "ARCADE_LOG_LEVEL", &flagLogLevel)
		return nil
	},
}

// envDefault replaces a flag's default with an environment value unless
// the flag was given on the command line.
func envDefault(cmd *cobra.Command, name, key string, target *string) {
	if cmd.Flags().Changed(name) {
		return
	}
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*target = v
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bestCmd)
}
