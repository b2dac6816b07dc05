// breakout is a terminal brick breaker.
//
// Usage:
//
//	breakout list            - List game modes
//	breakout play [mode]     - Play campaign or endless
//	breakout menu            - Pick a mode or level interactively
//	breakout serve           - Start SSH server for remote play
//	breakout scores [mode]   - Show high scores
//	breakout levels          - List or validate level files
//	breakout sim             - Run a headless deterministic simulation
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.breakout/scores.db)
//	--config <path>      - Game config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--levels <dir>       - Extra level directory
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/content"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a terminal brick breaker with a campaign of hand-made
levels, an endless mode and an SSH server for remote play.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode and level picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - List or validate level files
  sim      - Headless deterministic run

Examples:
  breakout play
  breakout play endless --difficulty hard
  breakout menu --levels ./my-levels
  breakout serve --ssh :2222
  breakout sim --seed 42 --ticks 3600`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		log.SetLevel(level)
		log.SetReportTimestamp(true)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of extra level YAML files")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
}

// app bundles what every command builds from the global flags.
type app struct {
	cfg config.BreakoutConfig
	res *content.Resources
	reg *registry.Registry
}

// loadApp reads the config and levels and registers both game modes.
func loadApp() (*app, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyBreakoutPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res, err := content.Load(flagLevelsDir)
	if err != nil {
		return nil, err
	}
	log.Debug("levels loaded", "count", res.Count(), "dir", flagLevelsDir)

	reg := registry.New()
	if err := breakout.Register(reg, cfg, res, ""); err != nil {
		return nil, err
	}
	return &app{cfg: cfg, res: res, reg: reg}, nil
}

// openStore opens the scores database. Failure is logged and play goes on
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		log.Warn("could not close scores database", "err", err)
	}
}

// gameIDForMode maps a mode argument to its registry ID.
func gameIDForMode(arg string) (string, error) {
	mode, err := breakout.ParseMode(arg)
	if err != nil {
		return "", err
	}
	if mode == breakout.ModeEndless {
		return "breakout_endless", nil
	}
	return "breakout", nil
}

// modeArg maps a stored game ID back to the mode argument of play and sim.
func modeArg(gameID string) string {
	if gameID == "breakout_endless" {
		return "endless"
	}
	return "campaign"
}
