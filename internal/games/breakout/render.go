package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/content"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/particle"
)

// Display characters
const (
	BallChar        = '●'
	PaddleChar      = '═'
	HardBrickGlyph  = '▓'
	SolidBrickGlyph = '█'
	BorderHoriz     = '─'
	TrailDim        = '·'
	TrailBright     = '•'
)

// BrickGlyphs cycle by row for normal bricks.
var BrickGlyphs = []rune{'█', '▇', '▆', '▅'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	grid := core.CellGrid{CellW: g.cfg.World.CellWidth, CellH: g.cfg.World.CellHeight}

	g.renderHUD(dst)
	g.renderBricks(dst, grid)
	g.renderTrail(dst, grid)
	g.renderPickups(dst, grid)
	g.renderPaddle(dst, grid)
	g.renderBall(dst, grid)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.levelNumber())
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.levelNumber(), g.res.Count())
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	// Effects on row 1, separator otherwise
	if effects := g.effectsString(); effects != "" {
		dst.DrawTextColored(1, 1, effects, core.ColorYellow)
	} else {
		dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
	}
}

// effectsString builds a compact list like "W(9) P(3)".
func (g *Game) effectsString() string {
	parts := make([]string, 0, len(g.powerups.Effects))
	for _, e := range g.powerups.Effects {
		parts = append(parts, fmt.Sprintf("%s(%d)", e.Type, int(e.Remaining(g.clock)+0.5)))
	}
	return strings.Join(parts, " ")
}

// renderBricks draws all alive bricks.
func (g *Game) renderBricks(dst *core.Screen, grid core.CellGrid) {
	for _, b := range g.field.Bricks {
		if !b.Alive() {
			continue
		}

		var glyph rune
		switch {
		case b.Type == content.BrickSolid:
			glyph = SolidBrickGlyph
		case b.Type == content.BrickHard && b.HP > 1:
			glyph = HardBrickGlyph
		default:
			glyph = BrickGlyphs[b.Row%len(BrickGlyphs)]
		}

		fillSpan(dst, grid.Span(b.Position, b.Size), glyph, b.Color)
	}
}

// renderTrail draws live particles, brighter glyphs for fresher ones.
func (g *Game) renderTrail(dst *core.Screen, grid core.CellGrid) {
	g.trail.Live(func(p *particle.Particle) {
		x, y := grid.Cell(p.Position)
		glyph := TrailDim
		if p.Color.A > 0.5 {
			glyph = TrailBright
		}
		dst.SetRGB(x, y, glyph, p.Color.Premultiplied())
	})
}

// renderPickups draws falling power-ups. They blink between the type glyph
// and a marker on alternate animation frames.
func (g *Game) renderPickups(dst *core.Screen, grid core.CellGrid) {
	for _, p := range g.powerups.Pickups {
		if !p.Alive() {
			continue
		}
		x, y := grid.Cell(p.Center())
		glyph := p.Type.Glyph()
		if p.Anim != nil && p.Anim.Frame() == 1 {
			glyph = '◆'
		}
		dst.SetRGB(x, y, glyph, p.Color)
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen, grid core.CellGrid) {
	fillSpan(dst, grid.Span(g.paddle.Position, g.paddle.Size), PaddleChar, g.paddle.Color)
}

// renderBall draws the ball at the cell holding its centre.
func (g *Game) renderBall(dst *core.Screen, grid core.CellGrid) {
	x, y := grid.Cell(g.ball.Center())
	dst.SetRGB(x, y, BallChar, g.ball.Color)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		if g.serveTimer <= 0 {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		} else {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		}

	case StatePlaying:
		if g.ball.Stuck {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to release")
		}

	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))

	case StateWin:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score))
	}
}

// fillSpan fills a cell rectangle with one coloured glyph.
func fillSpan(dst *core.Screen, r core.Rect, glyph rune, c core.RGB) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetRGB(x, y, glyph, c)
		}
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
