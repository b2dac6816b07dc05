// Package content loads level layouts from YAML and bundles them into a
// Resources value that is handed to the game at construction.
package content

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrLevelNotFound is returned when a level ID is not present.
var ErrLevelNotFound = errors.New("content: level not found")

// BrickType represents different types of bricks.
type BrickType int

const (
	BrickEmpty  BrickType = iota // No brick
	BrickNormal                  // Destroyed in one hit
	BrickHard                    // Requires 2 hits to destroy
	BrickSolid                   // Indestructible
)

func (t BrickType) String() string {
	switch t {
	case BrickNormal:
		return "normal"
	case BrickHard:
		return "hard"
	case BrickSolid:
		return "solid"
	default:
		return "empty"
	}
}

// BrickSpec describes the brick a layout glyph stands for.
type BrickSpec struct {
	Type   BrickType
	Points int
	HP     int
}

// LevelDef is a brick layout as written in a level file.
//
// Row glyphs:
//
//	'#'     normal brick (10 points)
//	'1'-'9' normal brick worth 10 * digit
//	'H'     hard brick (2 HP, 20 points)
//	'X'     solid brick, never destroyed
//	'.'     empty
type LevelDef struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Order int      `yaml:"order"`
	Rows  []string `yaml:"rows"`

	Source string `yaml:"-"`
}

// Columns returns the widest row length.
func (l LevelDef) Columns() int {
	w := 0
	for _, r := range l.Rows {
		w = max(w, len(r))
	}
	return w
}

// Grid expands the rows into brick specs, padding short rows with empties.
func (l LevelDef) Grid() [][]BrickSpec {
	w := l.Columns()
	grid := make([][]BrickSpec, len(l.Rows))
	for row, line := range l.Rows {
		grid[row] = make([]BrickSpec, w)
		for col := range w {
			ch := byte('.')
			if col < len(line) {
				ch = line[col]
			}
			grid[row][col], _ = glyph(ch)
		}
	}
	return grid
}

// Breakable counts bricks that must be destroyed to clear the level.
func (l LevelDef) Breakable() int {
	n := 0
	for _, row := range l.Grid() {
		for _, b := range row {
			if b.Type == BrickNormal || b.Type == BrickHard {
				n++
			}
		}
	}
	return n
}

// Validate checks that the level has an ID, at least one row, only known
// glyphs, and at least one breakable brick.
func (l LevelDef) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return errors.New("content: level id is required")
	}
	if len(l.Rows) == 0 {
		return fmt.Errorf("content: level %s has no rows", l.ID)
	}
	for i, line := range l.Rows {
		for j := 0; j < len(line); j++ {
			if _, ok := glyph(line[j]); !ok {
				return fmt.Errorf("content: level %s row %d col %d: unknown glyph %q", l.ID, i, j, line[j])
			}
		}
	}
	if l.Breakable() == 0 {
		return fmt.Errorf("content: level %s has no breakable bricks", l.ID)
	}
	return nil
}

// ParseLevel decodes a YAML level document.
func ParseLevel(data []byte) (LevelDef, error) {
	var l LevelDef
	if err := yaml.Unmarshal(data, &l); err != nil {
		return LevelDef{}, fmt.Errorf("content: parsing level: %w", err)
	}
	if l.Name == "" {
		l.Name = l.ID
	}
	if err := l.Validate(); err != nil {
		return LevelDef{}, err
	}
	return l, nil
}

func glyph(ch byte) (BrickSpec, bool) {
	switch {
	case ch == '#':
		return BrickSpec{Type: BrickNormal, Points: 10, HP: 1}, true
	case ch >= '1' && ch <= '9':
		return BrickSpec{Type: BrickNormal, Points: int(ch-'0') * 10, HP: 1}, true
	case ch == 'H' || ch == 'h':
		return BrickSpec{Type: BrickHard, Points: 20, HP: 2}, true
	case ch == 'X' || ch == 'x':
		return BrickSpec{Type: BrickSolid}, true
	case ch == '.' || ch == ' ':
		return BrickSpec{}, true
	default:
		return BrickSpec{}, false
	}
}
