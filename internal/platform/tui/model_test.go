package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	id      string
	state   core.GameState
	resets  int
	resized [2]int
	steps   []core.InputFrame
	dts     []float64
	start   string
}

func (g *fakeGame) ID() string    { return g.id }
func (g *fakeGame) Title() string { return g.id }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Lives: 3, Level: 1}
}

func (g *fakeGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	g.dts = append(g.dts, dt)
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, g.id) }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *fakeGame) SetStartLevel(id string) error {
	g.start = id
	return nil
}

var (
	_ registry.Resizer       = (*fakeGame)(nil)
	_ registry.LevelSelector = (*fakeGame)(nil)
)

var modelConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}

func newTestModel(t *testing.T, store *storage.Store) (Model, *fakeGame) {
	t.Helper()
	g := &fakeGame{id: "breakout"}
	m := NewModel(g, store, modelConfig)
	m.Init()
	return m, g
}

func pressKey(m Model, msg tea.KeyMsg, now time.Time) Model {
	next, _ := m.handleKey(msg, now)
	return next.(Model)
}

func tick(m Model, now time.Time) Model {
	next, _ := m.Update(TickMsg{Time: now, Loop: m.loop})
	return next.(Model)
}

func TestModelInitResetsGame(t *testing.T) {
	_, g := newTestModel(t, nil)
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestModelSteeringHold(t *testing.T) {
	m, g := newTestModel(t, nil)
	t0 := time.Unix(1000, 0)

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyLeft}, t0)
	m = tick(m, t0.Add(16*time.Millisecond))
	m = tick(m, t0.Add(100*time.Millisecond))
	m = tick(m, t0.Add(steerHold+time.Millisecond))

	want := []bool{true, true, false}
	for i, w := range want {
		if got := g.steps[i].Has(core.ActionLeft); got != w {
			t.Errorf("tick %d: Left = %v, expected %v", i, got, w)
		}
	}

	// The opposite key cancels the hold at once.
	now := t0.Add(time.Second)
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyLeft}, now)
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyRight}, now)
	tick(m, now.Add(time.Millisecond))
	last := g.steps[len(g.steps)-1]
	if last.Steer() != 1 {
		t.Errorf("Steer after left then right = %v, expected 1", last.Steer())
	}
}

func TestModelOneShotActionsClearEachTick(t *testing.T) {
	m, g := newTestModel(t, nil)
	t0 := time.Unix(1000, 0)

	m = pressKey(m, tea.KeyMsg{Type: tea.KeySpace}, t0)
	m = tick(m, t0.Add(16*time.Millisecond))
	tick(m, t0.Add(32*time.Millisecond))

	if !g.steps[0].Has(core.ActionLaunch) {
		t.Error("first tick should carry Launch")
	}
	if g.steps[1].Has(core.ActionLaunch) {
		t.Error("Launch should not repeat on the next tick")
	}
}

func TestModelTickDelta(t *testing.T) {
	m, g := newTestModel(t, nil)
	t0 := time.Unix(1000, 0)

	m = tick(m, t0)
	m = tick(m, t0.Add(25*time.Millisecond))
	tick(m, t0.Add(5*time.Second))

	want := []float64{modelConfig.TickSeconds(), 0.025, maxFrameDelta}
	for i, w := range want {
		if d := g.dts[i] - w; d > 1e-9 || d < -1e-9 {
			t.Errorf("dt[%d] = %v, expected %v", i, g.dts[i], w)
		}
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m, g := newTestModel(t, nil)

	_, cmd := m.Update(TickMsg{Time: time.Unix(1000, 0), Loop: m.loop + 1})
	if cmd != nil || len(g.steps) != 0 {
		t.Error("a tick from another loop should be dropped without rescheduling")
	}
}

func TestModelResizeFollowsGame(t *testing.T) {
	m, g := newTestModel(t, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v, expected [100 30]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resize should not reset a Resizer, resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBackKey(t *testing.T) {
	m, g := newTestModel(t, nil)
	t0 := time.Unix(1000, 0)

	// While playing, back pauses.
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEsc}, t0)
	m = tick(m, t0.Add(16*time.Millisecond))
	if !g.steps[0].Has(core.ActionPause) || !m.State().Paused {
		t.Fatal("esc while playing should pause")
	}
	if m.BackToMenu() {
		t.Fatal("esc while playing should not leave the game")
	}

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc}, t0)
	m = next.(Model)
	if !m.BackToMenu() || cmd == nil {
		t.Error("esc while paused should return to the menu")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next, cmd := m.handleKey(runeKey('q'), time.Now())
	m = next.(Model)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m, g := newTestModel(t, store)
	t0 := time.Unix(1000, 0)
	m = tick(m, t0)

	g.state = core.GameState{Score: 120, Level: 3, GameOver: true}
	m = tick(m, t0.Add(16*time.Millisecond))
	tick(m, t0.Add(32*time.Millisecond))

	scores, err := store.TopScores("breakout", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	got := scores[0]
	if got.Score != 120 || got.Level != 3 || got.Seed != modelConfig.Seed {
		t.Errorf("saved %+v, expected score 120 level 3 seed %d", got, modelConfig.Seed)
	}
}

func TestModelRestartReseeds(t *testing.T) {
	m, g := newTestModel(t, nil)
	t0 := time.Unix(1000, 0)

	g.state.GameOver = true
	m = tick(m, t0)
	m = pressKey(m, runeKey('r'), t0)
	m = tick(m, t0.Add(16*time.Millisecond))

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	if m.config.Seed == modelConfig.Seed {
		t.Error("restart should pick a new seed")
	}
}
