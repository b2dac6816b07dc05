package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/content"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// campaignID is the game the level picker starts.
const campaignID = "breakout"

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	GameID string
	Title  string
	// pickLevel opens the level list instead of starting right away.
	pickLevel bool
}

// Selection is what the player picked: a game and an optional start level.
type Selection struct {
	GameID  string
	LevelID string
}

// MenuModel is the Bubble Tea model for the mode and level picker.
type MenuModel struct {
	items       []MenuItem
	levels      []content.LevelDef
	cursor      int
	levelCursor int
	inLevels    bool
	width       int
	height      int
	config      core.RuntimeConfig
	keys        MenuKeyMap
	help        help.Model

	quitting       bool
	selected       *Selection // Set when user selects a game
	openScoreboard bool       // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a menu over the registered games. When res is
// non-nil and the campaign is registered a level picker is offered too.
func NewMenuModel(reg *registry.Registry, res *content.Resources, cfg core.RuntimeConfig) MenuModel {
	games := reg.List()
	items := make([]MenuItem, 0, len(games)+1)
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	var levels []content.LevelDef
	if res != nil && res.Count() > 1 && reg.Exists(campaignID) {
		levels = res.Levels
		items = append(items, MenuItem{GameID: campaignID, Title: "Select Level", pickLevel: true})
	}

	return MenuModel{
		items:  items,
		levels: levels,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if m.inLevels {
		return m.handleLevelKey(action)
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		if item.pickLevel {
			m.inLevels = true
			m.levelCursor = 0
			return m, nil
		}
		m.selected = &Selection{GameID: item.GameID}
		return m, tea.Quit // Exit menu to start game

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

func (m MenuModel) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selected = &Selection{GameID: campaignID, LevelID: m.levels[m.levelCursor].ID}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevels = false
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  B R E A K O U T  ", m.width))
	b.WriteString("\n\n")

	if m.inLevels {
		b.WriteString(centerText("Select a starting level", m.width))
		b.WriteString("\n\n")
		for i, lvl := range m.levels {
			cursor := "  "
			if i == m.levelCursor {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%2d. %-14s", cursor, i+1, lvl.Name)
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Select a mode", m.width))
		b.WriteString("\n\n")
		for i, item := range m.items {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(cursor+item.Title, m.width))
			b.WriteString("\n")
		}
	}

	// Footer with controls
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(reg *registry.Registry, res *content.Resources, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(reg, res, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.Selection = *m.Selected()
	}
	return result, nil
}

// CreateGame instantiates the selected game and applies its start level.
func CreateGame(reg *registry.Registry, sel Selection) (registry.Game, error) {
	game, err := reg.Create(sel.GameID)
	if err != nil {
		return nil, err
	}
	if sel.LevelID == "" {
		return game, nil
	}
	ls, ok := game.(registry.LevelSelector)
	if !ok {
		return nil, fmt.Errorf("%s cannot start from a chosen level", sel.GameID)
	}
	if err := ls.SetStartLevel(sel.LevelID); err != nil {
		return nil, err
	}
	return game, nil
}
