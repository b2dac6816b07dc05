package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/content"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the loaded levels",
	Long: `List the built-in levels plus those from --levels.

Examples:
  breakout levels
  breakout levels --levels ./my-levels
  breakout levels validate ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Check every level file in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsValidate,
}

func init() {
	levelsCmd.AddCommand(levelsValidateCmd)
}

func runLevels(*cobra.Command, []string) error {
	res, err := content.Load(flagLevelsDir)
	if err != nil {
		return err
	}

	fmt.Printf("  %-3s  %-10s  %-16s  %-7s  %s\n", "#", "ID", "Name", "Bricks", "Size")
	for i, lvl := range res.Levels {
		fmt.Printf("  %-3d  %-10s  %-16s  %-7d  %dx%d\n",
			i+1, lvl.ID, lvl.Name, lvl.Breakable(), lvl.Columns(), len(lvl.Rows))
	}
	return nil
}

func runLevelsValidate(_ *cobra.Command, args []string) error {
	levels, err := content.NewLoader(args[0]).Validate()
	for _, lvl := range levels {
		fmt.Printf("ok  %-10s %s\n", lvl.ID, lvl.Source)
	}
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		return errors.New("no level files found")
	}
	return nil
}
