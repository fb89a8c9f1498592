package field

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/decker502/heroparticles/pkg/frame"
)

// Animator owns a fixed-size particle collection and repaints it every tick.
//
// Lifecycle:
//  1. New: normalize configuration, seed the random source
//  2. Mount: schedule Tick on a frame.Loop and attach a Surface
//  3. Tick: measure (deferred init / resize), update, repaint
//  4. Unmount: cancel the handle, release the surface, drop particles
type Animator struct {
	cfg    Config
	ranges ranges
	rng    *rand.Rand

	particles []Particle
	width     float64
	height    float64

	initialized bool
	elapsed     float64
	ticks       uint64

	// last sampled pointer input
	pointer frame.Pointer

	spring   harmonica.Spring
	springDT float64

	surface Surface
	handle  *frame.Handle
}

// New creates an animator. Configuration values outside sane ranges are
// clamped (see Config.Normalize).
func New(cfg Config) *Animator {
	cfg = cfg.Normalize()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Animator{
		cfg:    cfg,
		ranges: parseRanges(cfg),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Config returns the normalized configuration.
func (a *Animator) Config() Config {
	return a.cfg
}

// Mount attaches the surface and schedules Tick on loop. The returned handle
// is owned by the caller; Unmount cancels it. Mounting again first unmounts.
func (a *Animator) Mount(loop *frame.Loop, surface Surface) *frame.Handle {
	if a.handle != nil || a.surface != nil {
		a.Unmount()
	}
	a.surface = surface
	a.handle = loop.Schedule(a.Tick)
	return a.handle
}

// Unmount cancels tick scheduling and releases the surface. No particle
// state survives. Safe to call more than once.
func (a *Animator) Unmount() {
	if a.handle != nil {
		a.handle.Cancel()
		a.handle = nil
	}
	if a.surface != nil {
		if r, ok := a.surface.(Releaser); ok {
			r.Release()
		}
		a.surface = nil
	}
	if a.initialized {
		log.Printf("[Field] unmounted after %d ticks (%d particles released)", a.ticks, len(a.particles))
	}
	a.particles = nil
	a.initialized = false
	a.width, a.height = 0, 0
}

// Mounted reports whether a tick callback is scheduled.
func (a *Animator) Mounted() bool {
	return a.handle.Active()
}

// Initialized reports whether particles have been seeded.
func (a *Animator) Initialized() bool {
	return a.initialized
}

// Bounds returns the last measured container size.
func (a *Animator) Bounds() (w, h float64) {
	return a.width, a.height
}

// Ticks returns the number of completed update-and-repaint steps.
func (a *Animator) Ticks() uint64 {
	return a.ticks
}

// Particles returns a copy of the particle collection.
func (a *Animator) Particles() []Particle {
	out := make([]Particle, len(a.particles))
	copy(out, a.particles)
	return out
}

// Tick performs one update-then-repaint step. It is the callback scheduled
// by Mount and may also be called directly by a host that runs its own loop.
//
// A surface reporting zero size defers initialization to the next tick.
func (a *Animator) Tick(f frame.Frame) {
	if a.surface == nil {
		return
	}

	w, h := a.surface.Size()
	if w <= 0 || h <= 0 {
		// 容器尚未布局完成，下一帧重试
		return
	}

	if !a.initialized {
		a.seed(w, h)
	} else if w != a.width || h != a.height {
		a.Resize(w, h)
	}

	a.pointer = f.Pointer
	a.step(f.DT)
	a.paint()
	a.ticks++
}

// Resize re-measures the bounds and rescales existing particle positions
// proportionally, clamping them into the new bounds. It never re-seeds an
// initialized field. Resizing to the current bounds is a no-op.
func (a *Animator) Resize(w, h float64) {
	if w <= 0 || h <= 0 || !a.initialized {
		return
	}
	if w == a.width && h == a.height {
		return
	}

	sx := w / a.width
	sy := h / a.height
	for i := range a.particles {
		p := &a.particles[i]
		p.X = clampInto(p.X*sx, w)
		p.Y = clampInto(p.Y*sy, h)
	}

	log.Printf("[Field] resized %.0fx%.0f -> %.0fx%.0f", a.width, a.height, w, h)
	a.width, a.height = w, h
}

// Reseed replaces the random source and re-creates every particle at the
// current bounds. Used by tuning tools; the particle count is unchanged.
func (a *Animator) Reseed(seed int64) {
	a.rng = rand.New(rand.NewSource(seed))
	a.cfg.Seed = seed
	if a.initialized {
		a.seed(a.width, a.height)
	}
}

// seed creates Quantity particles uniformly inside the bounds.
func (a *Animator) seed(w, h float64) {
	a.width, a.height = w, h
	a.particles = make([]Particle, a.cfg.Quantity)
	for i := range a.particles {
		a.particles[i] = a.newParticle()
	}
	a.initialized = true
	log.Printf("[Field] seeded %d particles in %.0fx%.0f", len(a.particles), w, h)
}

func (a *Animator) newParticle() Particle {
	r := a.ranges
	return Particle{
		X:           a.rng.Float64() * a.width,
		Y:           a.rng.Float64() * a.height,
		VX:          r.speed.Sample(a.rng),
		VY:          r.speed.Sample(a.rng),
		Size:        r.size.Sample(a.rng),
		TargetAlpha: r.alpha.Sample(a.rng),
		Magnetism:   r.magnetism.Sample(a.rng),
		Phase:       a.rng.Float64(),
	}
}

// step advances every particle by dt seconds.
func (a *Animator) step(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	if dt > MaxTickDT {
		dt = MaxTickDT
	}
	a.elapsed += dt

	// 指针相对容器中心的偏移；指针离开后粒子缓慢回到原位
	var ox, oy float64
	if a.pointer.Inside {
		ox = a.pointer.X - a.width/2
		oy = a.pointer.Y - a.height/2
	}

	if dt > 0 && dt != a.springDT {
		a.spring = harmonica.NewSpring(dt, a.cfg.Ease, a.cfg.Damping)
		a.springDT = dt
	}

	for i := range a.particles {
		p := &a.particles[i]

		p.X = wrap(p.X+p.VX*dt, a.width)
		p.Y = wrap(p.Y+p.VY*dt, a.height)

		if dt > 0 {
			k := p.Magnetism / a.cfg.Staticity
			p.TX, p.TVX = a.spring.Update(p.TX, p.TVX, ox*k)
			p.TY, p.TVY = a.spring.Update(p.TY, p.TVY, oy*k)
		}

		if p.Alpha < p.TargetAlpha {
			p.Alpha = math.Min(p.TargetAlpha, p.Alpha+a.cfg.FadeIn*dt)
		}
	}
}

// visibleAlpha combines fade-in, edge attenuation and twinkle.
func (a *Animator) visibleAlpha(p *Particle, x, y float64) float64 {
	closest := math.Min(
		math.Min(x-p.Size, a.width-x-p.Size),
		math.Min(y-p.Size, a.height-y-p.Size),
	)
	alpha := p.Alpha * clamp01(remap(closest, 0, a.cfg.EdgeFade, 0, 1))

	if a.ranges.hasTwinkle {
		t := a.elapsed/a.cfg.TwinklePeriod + p.Phase
		t -= math.Floor(t)
		alpha *= clamp01(a.ranges.twinkle.At(t))
	}
	return alpha
}

// paint clears the surface and draws every visible particle in one pass.
func (a *Animator) paint() {
	a.surface.Clear()
	for i := range a.particles {
		p := &a.particles[i]
		x, y := p.DrawPosition(a.width, a.height)
		c := withAlpha(a.cfg.Color, a.visibleAlpha(p, x, y))
		if c.A == 0 {
			continue
		}
		a.surface.DrawDot(x, y, p.Size, c)
	}
	if f, ok := a.surface.(Flusher); ok {
		f.Flush()
	}
}
