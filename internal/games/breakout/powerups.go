package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/entity"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// PickupType represents different types of power-up pickups.
type PickupType int

const (
	PickupWiden       PickupType = iota // Widen paddle
	PickupShrink                        // Shrink paddle
	PickupSticky                        // Sticky paddle
	PickupPassThrough                   // Ball passes through bricks
	PickupSpeedUp                       // Speed up ball
	PickupSlowDown                      // Slow down ball
	PickupExtraLife                     // Extra life
	PickupCount                         // Sentinel for counting types
)

// Glyph returns the display character for a pickup type.
func (p PickupType) Glyph() rune {
	switch p {
	case PickupWiden:
		return 'W'
	case PickupShrink:
		return 'S'
	case PickupSticky:
		return 'T'
	case PickupPassThrough:
		return 'P'
	case PickupSpeedUp:
		return '+'
	case PickupSlowDown:
		return '-'
	case PickupExtraLife:
		return '♥'
	default:
		return '?'
	}
}

// String returns the name of the pickup type.
func (p PickupType) String() string {
	switch p {
	case PickupWiden:
		return "Widen"
	case PickupShrink:
		return "Shrink"
	case PickupSticky:
		return "Sticky"
	case PickupPassThrough:
		return "Pass"
	case PickupSpeedUp:
		return "Fast"
	case PickupSlowDown:
		return "Slow"
	case PickupExtraLife:
		return "Life"
	default:
		return "?"
	}
}

// Color returns the tint used to draw the pickup.
func (p PickupType) Color() core.RGB {
	switch p {
	case PickupWiden:
		return core.RGB{R: 0.5, G: 0.5, B: 1.0}
	case PickupShrink, PickupSpeedUp:
		return core.RGB{R: 1.0, G: 0.4, B: 0.3}
	case PickupSticky:
		return core.RGB{R: 1.0, G: 0.5, B: 1.0}
	case PickupPassThrough:
		return core.RGB{R: 0.5, G: 1.0, B: 0.5}
	case PickupSlowDown:
		return core.RGB{R: 0.3, G: 0.8, B: 1.0}
	default:
		return core.RGB{R: 1.0, G: 0.3, B: 0.5}
	}
}

// Pickup is a falling power-up. It is a plain entity of KindPickup.
type Pickup struct {
	entity.Entity
	Type PickupType
}

// EffectType represents active effects on the game.
type EffectType int

const (
	EffectWiden       EffectType = iota // Paddle is widened
	EffectShrink                        // Paddle is shrunk
	EffectSticky                        // Paddle catches the ball
	EffectPassThrough                   // Ball ignores breakable bricks
	EffectSpeedUp                       // Ball speed increased
	EffectSlowDown                      // Ball speed decreased
	EffectCount                         // Sentinel for counting types
)

// String returns the short name for effect display.
func (e EffectType) String() string {
	switch e {
	case EffectWiden:
		return "W"
	case EffectShrink:
		return "S"
	case EffectSticky:
		return "T"
	case EffectPassThrough:
		return "P"
	case EffectSpeedUp:
		return "+"
	case EffectSlowDown:
		return "-"
	default:
		return "?"
	}
}

// Effect represents an active timed effect.
type Effect struct {
	Type  EffectType
	Until float64 // Simulation time in seconds at which the effect expires
}

// Remaining returns how many seconds are left at time now.
func (e *Effect) Remaining(now float64) float64 {
	return max(e.Until-now, 0)
}

// PowerUpManager handles pickup spawning, falling, collection, and effects.
type PowerUpManager struct {
	Config  config.PowerUpConfig
	Pickups []*Pickup // Active falling pickups
	Effects []*Effect // Active effects
	RNG     core.RNG  // Deterministic RNG
}

// NewPowerUpManager creates a new power-up manager.
func NewPowerUpManager(cfg config.PowerUpConfig, rng core.RNG) *PowerUpManager {
	return &PowerUpManager{
		Config:  cfg,
		Pickups: make([]*Pickup, 0),
		Effects: make([]*Effect, 0),
		RNG:     rng,
	}
}

// Clear drops all pickups and effects.
func (pm *PowerUpManager) Clear() {
	pm.Pickups = pm.Pickups[:0]
	pm.Effects = pm.Effects[:0]
}

// TrySpawnPickup rolls for a pickup dropping from the given point.
// Returns true if a pickup was spawned.
func (pm *PowerUpManager) TrySpawnPickup(at core.Vec2) bool {
	if !pm.Config.Enabled {
		return false
	}

	// Roll for spawn chance
	if pm.RNG.Intn(100) >= pm.Config.SpawnChance {
		return false
	}

	size := core.V(pm.Config.Size.X, pm.Config.Size.Y)
	p := &Pickup{
		Entity: entity.Entity{
			Kind:     entity.KindPickup,
			Position: at.Sub(size.Scale(0.5)),
			Size:     size,
			Velocity: core.V(0, pm.Config.FallSpeed),
			Anim:     entity.NewAnimation(2, 4),
		},
		Type: pm.rollPickupType(),
	}
	p.Color = p.Type.Color()

	pm.Pickups = append(pm.Pickups, p)
	return true
}

// rollPickupType selects a random pickup type based on weights.
func (pm *PowerUpManager) rollPickupType() PickupType {
	w := pm.Config.Weights
	weights := []struct {
		Type   PickupType
		Weight int
	}{
		{PickupWiden, w.Widen},
		{PickupShrink, w.Shrink},
		{PickupSticky, w.Sticky},
		{PickupPassThrough, w.PassThrough},
		{PickupSpeedUp, w.SpeedUp},
		{PickupSlowDown, w.SlowDown},
		{PickupExtraLife, w.ExtraLife},
	}

	total := 0
	for _, e := range weights {
		total += max(e.Weight, 0)
	}
	if total <= 0 {
		return PickupWiden
	}

	roll := pm.RNG.Intn(total)
	cumulative := 0
	for _, e := range weights {
		cumulative += max(e.Weight, 0)
		if roll < cumulative {
			return e.Type
		}
	}
	return PickupWiden
}

// Update moves all pickups, collects the first one touching the paddle,
// and drops any that left the bottom of the world.
// Returns the collected type, or -1 if none.
func (pm *PowerUpManager) Update(dt float64, paddle *entity.Entity, worldH float64) PickupType {
	collected := PickupType(-1)

	active := pm.Pickups[:0]
	for _, p := range pm.Pickups {
		if p.Destroyed {
			continue
		}
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		p.Update(dt)

		if collected < 0 && physics.AABBOverlap(paddle, &p.Entity) {
			p.Destroy()
			collected = p.Type
			continue
		}
		if p.Position.Y < worldH {
			active = append(active, p)
		}
	}
	pm.Pickups = active
	return collected
}

// AddEffect adds or extends an effect.
func (pm *PowerUpManager) AddEffect(effectType EffectType, now, duration float64) {
	for _, e := range pm.Effects {
		if e.Type == effectType {
			e.Until = now + duration
			return
		}
	}
	pm.Effects = append(pm.Effects, &Effect{Type: effectType, Until: now + duration})
}

// RemoveEffect removes an effect by type.
func (pm *PowerUpManager) RemoveEffect(effectType EffectType) {
	for i, e := range pm.Effects {
		if e.Type == effectType {
			pm.Effects = append(pm.Effects[:i], pm.Effects[i+1:]...)
			return
		}
	}
}

// ExpireEffects removes effects that have expired by time now.
func (pm *PowerUpManager) ExpireEffects(now float64) []EffectType {
	var expired []EffectType
	active := pm.Effects[:0]

	for _, e := range pm.Effects {
		if e.Until <= now {
			expired = append(expired, e.Type)
		} else {
			active = append(active, e)
		}
	}

	pm.Effects = active
	return expired
}

// HasEffect returns true if the given effect is active.
func (pm *PowerUpManager) HasEffect(effectType EffectType) bool {
	for _, e := range pm.Effects {
		if e.Type == effectType {
			return true
		}
	}
	return false
}

// EffectRemaining returns seconds remaining for an effect, or 0 if not active.
func (pm *PowerUpManager) EffectRemaining(effectType EffectType, now float64) float64 {
	for _, e := range pm.Effects {
		if e.Type == effectType {
			return e.Remaining(now)
		}
	}
	return 0
}
