// Package breakout implements a Breakout/Arkanoid-style brick breaker game
// on top of the float collision engine.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/content"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/entity"
)

// Row colours, cycled by brick row.
var brickPalette = []core.RGB{
	{R: 0.2, G: 0.6, B: 1.0},
	{R: 0.0, G: 0.7, B: 0.0},
	{R: 0.8, G: 0.8, B: 0.4},
	{R: 1.0, G: 0.5, B: 0.0},
	{R: 0.9, G: 0.3, B: 0.4},
	{R: 0.6, G: 0.4, B: 0.9},
}

var (
	hardBrickColor  = core.RGB{R: 0.75, G: 0.75, B: 0.8}
	solidBrickColor = core.RGB{R: 0.8, G: 0.8, B: 0.7}
)

// Brick is an entity placed from a level grid cell.
type Brick struct {
	entity.Entity
	Type   content.BrickType
	Points int
	HP     int
	MaxHP  int
	Row    int
	Col    int
}

// Breakable reports whether the brick counts towards clearing the level.
func (b *Brick) Breakable() bool {
	return b.Type == content.BrickNormal || b.Type == content.BrickHard
}

// restyle sets the brick colour for its type, darkened once per hit taken.
func (b *Brick) restyle() {
	switch b.Type {
	case content.BrickSolid:
		b.Color = solidBrickColor
	case content.BrickHard:
		b.Color = hardBrickColor
	default:
		b.Color = brickPalette[b.Row%len(brickPalette)]
	}
	for range b.MaxHP - b.HP {
		b.Color = b.Color.Scale(0.6)
	}
}

// Field is the set of bricks for the current level plus the obstacle
// slice handed to the collision resolver.
type Field struct {
	Level     content.LevelDef
	Bricks    []*Brick
	Obstacles []*entity.Entity

	byEntity map[*entity.Entity]*Brick
}

// NewField creates bricks for every non-empty cell of the level.
// Positions are assigned by Layout.
func NewField(level content.LevelDef) *Field {
	f := &Field{
		Level:    level,
		byEntity: make(map[*entity.Entity]*Brick),
	}

	for row, cells := range level.Grid() {
		for col, spec := range cells {
			if spec.Type == content.BrickEmpty {
				continue
			}
			b := &Brick{
				Entity: entity.Entity{Kind: entity.KindBrick},
				Type:   spec.Type,
				Points: spec.Points,
				HP:     spec.HP,
				MaxHP:  spec.HP,
				Row:    row,
				Col:    col,
			}
			b.Solid = spec.Type == content.BrickSolid
			b.restyle()
			f.Bricks = append(f.Bricks, b)
			f.Obstacles = append(f.Obstacles, &b.Entity)
			f.byEntity[&b.Entity] = b
		}
	}
	return f
}

// Layout stretches the grid across the given width, starting at top.
func (f *Field) Layout(width, top, rowHeight float64) {
	cols := f.Level.Columns()
	if cols == 0 {
		return
	}
	w := width / float64(cols)
	for _, b := range f.Bricks {
		b.Position = core.V(float64(b.Col)*w, top+float64(b.Row)*rowHeight)
		b.Size = core.V(w, rowHeight)
	}
}

// Bottom returns the lowest y covered by the grid.
func (f *Field) Bottom() float64 {
	y := 0.0
	for _, b := range f.Bricks {
		y = max(y, b.Max().Y)
	}
	return y
}

// Lookup maps a resolver obstacle back to its brick.
func (f *Field) Lookup(e *entity.Entity) (*Brick, bool) {
	b, ok := f.byEntity[e]
	return b, ok
}

// Remaining counts breakable bricks still standing.
func (f *Field) Remaining() int {
	n := 0
	for _, b := range f.Bricks {
		if b.Alive() && b.Breakable() {
			n++
		}
	}
	return n
}
