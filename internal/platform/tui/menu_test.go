package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/content"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	for _, id := range []string{"breakout", "breakout_endless"} {
		err := reg.Register(id, id, func() (registry.Game, error) {
			return &fakeGame{id: id}, nil
		})
		if err != nil {
			t.Fatalf("Register(%s): %v", id, err)
		}
	}
	return reg
}

func press(m MenuModel, msgs ...tea.KeyMsg) (MenuModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(MenuModel)
	}
	return m, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestMenuItems(t *testing.T) {
	res := content.NewResources(content.Builtin())

	m := NewMenuModel(testRegistry(t), res, modelConfig)
	if len(m.items) != 3 || !m.items[2].pickLevel {
		t.Fatalf("items = %+v, expected two modes and the level picker", m.items)
	}

	m = NewMenuModel(testRegistry(t), nil, modelConfig)
	if len(m.items) != 2 {
		t.Errorf("without levels the picker should be hidden, items = %+v", m.items)
	}
}

func TestMenuSelectMode(t *testing.T) {
	m := NewMenuModel(testRegistry(t), nil, modelConfig)

	m, cmd := press(m, keyDown, keyEnter)
	if cmd == nil {
		t.Fatal("select should quit the menu program")
	}
	sel := m.Selected()
	if sel == nil || sel.GameID != "breakout_endless" || sel.LevelID != "" {
		t.Errorf("selected %+v, expected breakout_endless", sel)
	}
}

func TestMenuSelectLevel(t *testing.T) {
	res := content.NewResources(content.Builtin())
	m := NewMenuModel(testRegistry(t), res, modelConfig)

	m, _ = press(m, keyDown, keyDown, keyEnter)
	if !m.inLevels {
		t.Fatal("the last item should open the level list")
	}
	if !strings.Contains(m.View(), res.Levels[0].Name) {
		t.Error("level list should show level names")
	}

	// Back returns to the mode list without selecting.
	m, _ = press(m, keyEsc)
	if m.inLevels || m.Selected() != nil {
		t.Fatal("esc should leave the level list")
	}

	m, _ = press(m, keyEnter, keyDown, keyEnter)
	sel := m.Selected()
	if sel == nil || sel.GameID != "breakout" || sel.LevelID != res.Levels[1].ID {
		t.Errorf("selected %+v, expected breakout from %s", sel, res.Levels[1].ID)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(testRegistry(t), nil, modelConfig)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = NewMenuModel(testRegistry(t), nil, modelConfig)
	m, _ = press(m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestCreateGame(t *testing.T) {
	reg := testRegistry(t)

	game, err := CreateGame(reg, Selection{GameID: "breakout", LevelID: "02"})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if fg := game.(*fakeGame); fg.start != "02" {
		t.Errorf("start level = %q, expected 02", fg.start)
	}

	if _, err := CreateGame(reg, Selection{GameID: "pong"}); !errors.Is(err, registry.ErrUnknownGame) {
		t.Errorf("unknown game error = %v, expected ErrUnknownGame", err)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText should not clip, got %q", got)
	}
}
