package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and level picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game, Esc returns to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  breakout menu
  breakout menu --fps 30
  breakout menu --levels ./my-levels`,
	RunE: runMenu,
}

func runMenu(*cobra.Command, []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(a.reg, a.res, cfg)
		if err != nil {
			return err
		}
		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(a.reg, store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := tui.CreateGame(a.reg, menuResult.Selection)
		if err != nil {
			log.Error("could not create game", "game", menuResult.Selection.GameID, "err", err)
			continue
		}

		// Fresh seed per game unless one was pinned
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, store, runCfg)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
