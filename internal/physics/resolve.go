package physics

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/entity"
)

// ResolvePolicy selects how many obstacle hits are resolved per tick.
type ResolvePolicy int

const (
	// ResolveFirst resolves only the first colliding obstacle in slice order.
	ResolveFirst ResolvePolicy = iota
	// ResolveAll resolves every simultaneous hit, deepest first, re-testing
	// each before applying it.
	ResolveAll
)

func (p ResolvePolicy) String() string {
	switch p {
	case ResolveFirst:
		return "first"
	case ResolveAll:
		return "all"
	default:
		return fmt.Sprintf("ResolvePolicy(%d)", int(p))
	}
}

// ParsePolicy converts a config value ("first" or "all") into a policy.
func ParsePolicy(s string) (ResolvePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first":
		return ResolveFirst, nil
	case "all":
		return ResolveAll, nil
	default:
		return ResolveFirst, fmt.Errorf("physics: unknown collision policy %q", s)
	}
}

// Hit records one resolved obstacle collision.
type Hit struct {
	Obstacle  *entity.Entity
	Collision Collision
	// Reflected is false when the ball passed through the obstacle.
	Reflected bool
}

// Resolver applies collision results to the ball. It never destroys
// obstacles; callers act on the returned hits.
type Resolver struct {
	Policy ResolvePolicy
}

// Resolve tests the ball against every live obstacle and applies the
// hits allowed by the policy.
func (r Resolver) Resolve(ball *entity.Ball, obstacles []*entity.Entity) []Hit {
	if r.Policy == ResolveAll {
		return r.resolveAll(ball, obstacles)
	}
	for _, o := range obstacles {
		if o == nil || o.Destroyed {
			continue
		}
		if c := Check(ball, o); c.Collided {
			return []Hit{apply(ball, o, c)}
		}
	}
	return nil
}

type candidate struct {
	obstacle *entity.Entity
	depth    float64
}

func (r Resolver) resolveAll(ball *entity.Ball, obstacles []*entity.Entity) []Hit {
	var candidates []candidate
	for _, o := range obstacles {
		if o == nil || o.Destroyed {
			continue
		}
		if c := Check(ball, o); c.Collided {
			candidates = append(candidates, candidate{obstacle: o, depth: c.Depth(ball.Radius)})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(b.depth, a.depth)
	})

	hits := make([]Hit, 0, len(candidates))
	for _, cand := range candidates {
		// An earlier push-out may already have cleared this one.
		c := Check(ball, cand.obstacle)
		if !c.Collided {
			continue
		}
		hits = append(hits, apply(ball, cand.obstacle, c))
	}
	return hits
}

func apply(ball *entity.Ball, o *entity.Entity, c Collision) Hit {
	if ball.PassThrough && !o.Solid {
		return Hit{Obstacle: o, Collision: c}
	}
	Reflect(ball, c)
	return Hit{Obstacle: o, Collision: c, Reflected: true}
}
