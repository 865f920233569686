package object

import (
	"math"
	"math/rand"
	"sync"

	"tankbox/internal/geometry"
)

// particlePool reuses Particle objects to reduce allocations during bursts.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect.
type Particle struct {
	Pos         geometry.Vector2
	Vel         geometry.Vector2
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay (1.0 = no drag)
	Fade        bool    // Whether to fade out over lifetime
}

// NewParticle creates a single particle from the pool.
func NewParticle(pos, vel geometry.Vector2, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.Pos = pos
	p.Vel = vel
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	p.Fade = true
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion creates particles in a circular burst pattern.
func SpawnExplosion(pos geometry.Vector2, count int, speed, lifetime float64, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		// Random speed variation (50% to 150%)
		spd := speed * (0.5 + rand.Float64())
		// Random lifetime variation (50% to 100%)
		life := lifetime * (0.5 + rand.Float64()*0.5)

		vel := geometry.Vector2{
			X: math.Cos(angle) * spd,
			Y: math.Sin(angle) * spd,
		}
		spawner.Spawn(NewParticle(pos, vel, life))
	}
}

// SpawnExhaust creates particles behind a throttling tank.
func SpawnExhaust(pos geometry.Vector2, angle float64, spawner Spawner) {
	if spawner == nil {
		return
	}

	count := 1 + rand.Intn(2)
	for i := 0; i < count; i++ {
		// Opposite direction of facing, with spread
		exhaustAngle := angle + math.Pi + (rand.Float64()-0.5)*0.5
		speed := 8.0 + rand.Float64()*4.0
		lifetime := 0.1 + rand.Float64()*0.15

		vel := geometry.Vector2{
			X: math.Cos(exhaustAngle) * speed,
			Y: math.Sin(exhaustAngle) * speed,
		}
		p := NewParticle(pos, vel, lifetime)
		p.Drag = 0.85
		spawner.Spawn(p)
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true, nil
	}

	// Normalize drag to ~60fps
	dragFactor := math.Pow(p.Drag, dt*60)
	p.Vel = p.Vel.Scale(dragFactor)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	return false, nil
}

// Draw renders the particle as a single pixel on the canvas.
func (p *Particle) Draw(ctx DrawContext) error {
	// Skip faded particles (< 25% lifetime)
	if p.Fade && p.MaxLifetime > 0 {
		if p.Lifetime/p.MaxLifetime < 0.25 {
			return nil
		}
	}

	ctx.Canvas.Set(WorldToScreen(p.Pos, ctx.Camera, ctx.View))
	return nil
}
