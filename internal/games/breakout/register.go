package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/content"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	_ registry.Game    = (*Game)(nil)
	_ registry.Resizer = (*Game)(nil)

	_ registry.LevelSelector = (*Game)(nil)
)

// Register adds the campaign and endless modes to reg. Every created game
// shares cfg and res.
func Register(reg *registry.Registry, cfg config.BreakoutConfig, res *content.Resources, startLevel string) error {
	modes := []struct {
		id, title string
		mode      Mode
	}{
		{"breakout", "Breakout", ModeCampaign},
		{"breakout_endless", "Breakout (Endless)", ModeEndless},
	}

	for _, m := range modes {
		opts := Options{Mode: m.mode, Config: cfg, Resources: res, StartLevel: startLevel}
		err := reg.Register(m.id, m.title, func() (registry.Game, error) {
			return New(opts)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
