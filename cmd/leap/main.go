// leap is Purr-fect Leap, an endless vertical platformer for the terminal.
//
// Usage:
//
//	leap                - Play (same as "leap play")
//	leap play           - Play the game
//	leap scores         - Show run history and the best score
//	leap config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--db <path>      - Set database path (default: ~/.purrfect-leap/scores.db)
//	--config <path>  - Use a custom config YAML
//	--log <path>     - Set log file (default: ~/.purrfect-leap/leap.log)
//	--mute           - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
	flagLogPath    string
	flagMute       bool
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leap",
	Short: "Purr-fect Leap - an endless platformer in your terminal",
	Long: `Purr-fect Leap is an endless vertical platformer: guide a cat up an
infinite column of platforms, grab power-ups and don't fall off the screen.

Available commands:
  play     - Play the game (default)
  scores   - View run history and the best score
  config   - Print the default configuration

Examples:
  leap
  leap play --seed 42
  leap scores --plain
  leap config > my-leap.yaml && leap --config my-leap.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.purrfect-leap/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.purrfect-leap/leap.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
