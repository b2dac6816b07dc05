package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func TestScoreboardShowsReplaySeed(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	entries := []storage.ScoreEntry{
		{GameID: "breakout", Score: 500, Level: 2, Seed: 42},
		{GameID: "breakout", Score: 90, Level: 1, Seed: 3},
		{GameID: "breakout_endless", Score: 1200, Level: 4, Seed: 7},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	m := NewScoreboardModel(testRegistry(t), store, 120, 40)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("campaign rows = %d, expected 2", len(rows))
	}
	if rows[0][3] != "42" || rows[1][3] != "3" {
		t.Errorf("seed column = %q, %q", rows[0][3], rows[1][3])
	}
	if got := m.replayCommand(); got != "breakout sim campaign --seed 42" {
		t.Errorf("campaign replay = %q", got)
	}
	if !strings.Contains(m.View(), "breakout sim campaign --seed 42") {
		t.Error("view should show the replay command")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := m.replayCommand(); got != "breakout sim endless --seed 7" {
		t.Errorf("endless replay = %q", got)
	}
}

func TestScoreboardReplayWithoutScores(t *testing.T) {
	m := NewScoreboardModel(testRegistry(t), nil, 120, 40)

	if got := m.replayCommand(); got != "" {
		t.Errorf("replay with no scores = %q", got)
	}
	if strings.Contains(m.View(), "replay:") {
		t.Error("empty scoreboard should not show a replay hint")
	}
}
