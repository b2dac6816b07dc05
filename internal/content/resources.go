package content

import (
	"fmt"
	"os"
)

// Resources is the content context built once at startup and passed to
// whatever needs levels. There is no package-level registry.
type Resources struct {
	Levels []LevelDef
}

// NewResources wraps an explicit level list.
func NewResources(levels []LevelDef) *Resources {
	return &Resources{Levels: levels}
}

// Load returns the built-in levels, overlaid with the levels found in dir.
// A level in dir replaces a built-in one with the same ID. An empty dir
// means built-ins only.
func Load(dir string) (*Resources, error) {
	levels := Builtin()
	if dir == "" {
		return NewResources(levels), nil
	}

	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("content: level directory: %w", err)
	}
	extra, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	for _, lvl := range extra {
		replaced := false
		for i := range levels {
			if levels[i].ID == lvl.ID {
				levels[i] = lvl
				replaced = true
				break
			}
		}
		if !replaced {
			levels = append(levels, lvl)
		}
	}
	sortLevels(levels)
	return NewResources(levels), nil
}

// Count returns the number of levels.
func (r *Resources) Count() int {
	return len(r.Levels)
}

// Level returns the level at index, wrapping around past the end.
func (r *Resources) Level(index int) (LevelDef, error) {
	if len(r.Levels) == 0 {
		return LevelDef{}, fmt.Errorf("%w: no levels loaded", ErrLevelNotFound)
	}
	n := len(r.Levels)
	return r.Levels[((index%n)+n)%n], nil
}

// LevelByID looks a level up by ID.
func (r *Resources) LevelByID(id string) (LevelDef, int, error) {
	for i, lvl := range r.Levels {
		if lvl.ID == id {
			return lvl, i, nil
		}
	}
	return LevelDef{}, -1, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}
