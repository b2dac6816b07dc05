// Package particle is a fixed-capacity particle pool that trails an emitter.
// Slots are recycled in place; nothing is allocated after construction.
package particle

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/entity"
)

const (
	// Lifetime of a freshly spawned particle, in seconds.
	Lifetime = 1.0
	// FadeRate is the alpha lost per second.
	FadeRate = 2.5
	// VelocityFactor scales the emitter velocity into particle velocity.
	VelocityFactor = 0.1
)

// Particle is one pool slot. Life <= 0 means the slot is dead.
type Particle struct {
	Position core.Vec2
	Velocity core.Vec2
	Color    core.RGBA
	Life     float64
}

// Alive reports whether the particle should be simulated and drawn.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Pool owns a fixed array of particles and a cursor hinting where the next
// dead slot is likely to be.
type Pool struct {
	particles []Particle
	lastUsed  int
	rng       core.RNG
}

// NewPool pre-allocates amount dead particles. A pool with amount <= 0 is
// disabled: it accepts updates but never spawns.
func NewPool(amount int, rng core.RNG) *Pool {
	if amount < 0 {
		amount = 0
	}
	if rng == nil {
		rng = core.NewSimpleRNG(1)
	}
	return &Pool{
		particles: make([]Particle, amount),
		rng:       rng,
	}
}

// Cap returns the fixed capacity.
func (p *Pool) Cap() int {
	return len(p.particles)
}

// Cursor returns the index of the last slot handed out.
func (p *Pool) Cursor() int {
	return p.lastUsed
}

// FindDeadSlot returns the index of a dead particle, scanning from the
// cursor to the end and then from the start up to the cursor. When every
// slot is alive, slot 0 is reused and the cursor resets. A disabled pool
// returns -1.
func (p *Pool) FindDeadSlot() int {
	if len(p.particles) == 0 {
		return -1
	}
	for i := p.lastUsed; i < len(p.particles); i++ {
		if p.particles[i].Life <= 0 {
			p.lastUsed = i
			return i
		}
	}
	for i := 0; i < p.lastUsed; i++ {
		if p.particles[i].Life <= 0 {
			p.lastUsed = i
			return i
		}
	}
	p.lastUsed = 0
	return 0
}

// Respawn revives a particle at the emitter position with a little jitter,
// a random gray brightness, full alpha and full life.
func (p *Pool) Respawn(pt *Particle, emitter *entity.Entity, offset core.Vec2) {
	jitter := float64(p.rng.Intn(100)-50) / 10
	brightness := 0.5 + float64(p.rng.Intn(100))/100

	pt.Position = emitter.Position.AddScalar(jitter).Add(offset)
	pt.Color = core.RGBA{R: brightness, G: brightness, B: brightness, A: 1}
	pt.Life = Lifetime
	pt.Velocity = emitter.Velocity.Scale(VelocityFactor)
}

// Update spawns new particles from the emitter and then ages every slot.
// Only particles still alive after aging move and fade.
func (p *Pool) Update(dt float64, emitter *entity.Entity, spawn int, offset core.Vec2) {
	if len(p.particles) == 0 {
		return
	}

	for i := 0; i < spawn; i++ {
		p.Respawn(&p.particles[p.FindDeadSlot()], emitter, offset)
	}

	for i := range p.particles {
		pt := &p.particles[i]
		pt.Life -= dt
		if pt.Life > 0 {
			pt.Position = pt.Position.Sub(pt.Velocity.Scale(dt))
			pt.Color.A -= dt * FadeRate
		}
	}
}

// Live calls fn for every particle with life left, in slot order.
func (p *Pool) Live(fn func(*Particle)) {
	for i := range p.particles {
		if p.particles[i].Life > 0 {
			fn(&p.particles[i])
		}
	}
}

// LiveCount returns the number of live particles.
func (p *Pool) LiveCount() int {
	n := 0
	for i := range p.particles {
		if p.particles[i].Life > 0 {
			n++
		}
	}
	return n
}

// Reset kills every particle and rewinds the cursor.
func (p *Pool) Reset() {
	for i := range p.particles {
		p.particles[i] = Particle{}
	}
	p.lastUsed = 0
}
