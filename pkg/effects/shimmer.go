package effects

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Shimmer 默认参数
const (
	DefaultShimmerPeriod = 2.0  // seconds per sweep
	DefaultShimmerBand   = 0.5  // band half-width as a fraction of the button width
	DefaultShimmerPeak   = 0.3  // peak highlight opacity
	HoverScale           = 1.05 // button scale while hovered
	PressScale           = 0.95 // button scale while pressed
)

// Shimmer is a highlight band sweeping across a button, repeating forever.
type Shimmer struct {
	Period float64
	Band   float64
	Peak   float64
}

// NewShimmer returns a shimmer with default timing.
func NewShimmer() Shimmer {
	return Shimmer{Period: DefaultShimmerPeriod, Band: DefaultShimmerBand, Peak: DefaultShimmerPeak}
}

// Phase returns the sweep position in [0, 1) at elapsed seconds.
func (s Shimmer) Phase(elapsed float64) float64 {
	period := s.Period
	if period <= 0 {
		period = DefaultShimmerPeriod
	}
	p := math.Mod(elapsed/period, 1)
	if p < 0 {
		p++
	}
	return p
}

// BandCenter returns the band center in button-relative x, starting fully
// off the left edge and ending fully off the right edge.
func (s Shimmer) BandCenter(elapsed float64) float64 {
	band := s.band()
	return -band + s.Phase(elapsed)*(1+2*band)
}

// Intensity returns the highlight opacity at button-relative x ∈ [0, 1].
// The band profile is a triangle: transparent, peak, transparent.
func (s Shimmer) Intensity(x, elapsed float64) float64 {
	band := s.band()
	d := math.Abs(x-s.BandCenter(elapsed)) / band
	if d >= 1 {
		return 0
	}
	peak := s.Peak
	if peak <= 0 {
		peak = DefaultShimmerPeak
	}
	return (1 - d) * peak
}

func (s Shimmer) band() float64 {
	if s.Band <= 0 {
		return DefaultShimmerBand
	}
	return s.Band
}

// ButtonScale returns the target scale for the pointer state. Pressing
// takes precedence over hovering.
func ButtonScale(hovered, pressed bool) float64 {
	switch {
	case pressed:
		return PressScale
	case hovered:
		return HoverScale
	default:
		return 1
	}
}

// ScaleSpring eases a button's scale toward ButtonScale with a critically
// damped spring.
type ScaleSpring struct {
	spring   harmonica.Spring
	dt       float64
	value    float64
	velocity float64
}

// NewScaleSpring creates a spring settled at scale 1. frequency controls
// responsiveness (higher settles faster).
func NewScaleSpring(dt, frequency float64) *ScaleSpring {
	return &ScaleSpring{
		spring: harmonica.NewSpring(dt, frequency, 1),
		dt:     dt,
		value:  1,
	}
}

// Update advances one step toward the target for the pointer state.
func (s *ScaleSpring) Update(hovered, pressed bool) float64 {
	s.value, s.velocity = s.spring.Update(s.value, s.velocity, ButtonScale(hovered, pressed))
	return s.value
}

// Value returns the current scale.
func (s *ScaleSpring) Value() float64 {
	return s.value
}
