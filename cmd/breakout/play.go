package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var flagStartLevel string

var playCmd = &cobra.Command{
	Use:   "play [campaign|endless]",
	Short: "Play a game",
	Long: `Start playing straight away. The mode defaults to campaign.

Controls:
  Left/Right/A/D  - Move paddle
  Space/Up        - Launch ball
  P/Esc           - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Extra lives, wide paddle, slow ball
  normal - Default settings, moderate progression
  hard   - Two lives, narrow paddle, fast ball
  fixed  - No progression

Examples:
  breakout play
  breakout play endless
  breakout play --level 05
  breakout play --difficulty hard --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStartLevel, "level", "", "Level ID to start from (campaign only)")
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := ""
	if len(args) == 1 {
		mode = args[0]
	}
	gameID, err := gameIDForMode(mode)
	if err != nil {
		return err
	}
	if flagStartLevel != "" && gameID != "breakout" {
		return fmt.Errorf("--level only applies to the campaign")
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	game, err := tui.CreateGame(a.reg, tui.Selection{GameID: gameID, LevelID: flagStartLevel})
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	if _, err := tui.Run(game, store, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
