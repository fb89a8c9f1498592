// Package field implements the particle field animator: an ambient
// background of slowly drifting dots that leans toward the pointer.
//
// The animator is host-agnostic. It draws through a Surface and is driven by
// a frame.Loop; the host samples the pointer once per frame and passes it in
// the frame.Frame, so each tick is a pure function of the previous state,
// the frame input and the seeded random source.
package field

import (
	"image/color"
	"math"
)

// Particle is the runtime state of one dot.
//
// Position is kept inside [0, width) × [0, height). The pointer offset
// (TX, TY) is eased separately and added at draw time, wrapped the same way.
type Particle struct {
	// Position (像素)
	X, Y float64
	// Drift velocity (像素/秒)
	VX, VY float64

	// Size is the dot radius in pixels.
	Size float64
	// Alpha is the fade-in opacity, rising toward TargetAlpha.
	Alpha       float64
	TargetAlpha float64

	// Magnetism scales how far this particle leans toward the pointer.
	Magnetism float64
	// Pointer offset and its spring velocity.
	TX, TY   float64
	TVX, TVY float64

	// Phase offsets the twinkle cycle, in [0, 1).
	Phase float64
}

// DrawPosition returns the on-screen position: position plus pointer offset,
// wrapped into the bounds.
func (p Particle) DrawPosition(w, h float64) (x, y float64) {
	return wrap(p.X+p.TX, w), wrap(p.Y+p.TY, h)
}

// wrap folds v into [0, size) (toroidal wrap).
func wrap(v, size float64) float64 {
	if size <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// math.Mod(-tiny, size)+size can round up to size
	if v >= size {
		v = 0
	}
	return v
}

// clampInto limits v to [0, size).
func clampInto(v, size float64) float64 {
	if v < 0 {
		return 0
	}
	if v >= size {
		return math.Nextafter(size, 0)
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// remap linearly maps v from [a1, a2] to [b1, b2].
func remap(v, a1, a2, b1, b2 float64) float64 {
	if a2 == a1 {
		return b2
	}
	return b1 + (v-a1)*(b2-b1)/(a2-a1)
}

// withAlpha scales the color's alpha channel by a.
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * clamp01(a)))
	return c
}
