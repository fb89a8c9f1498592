package field

import (
	"image/color"
	"math"

	"github.com/decker502/heroparticles/internal/particle"
)

const (
	// DefaultQuantity is the particle count used when none is configured.
	DefaultQuantity = 100
	// MaxQuantity caps the particle count; larger values are clamped.
	MaxQuantity = 10000
	// DefaultStaticity is the pointer resistance used when none is configured.
	DefaultStaticity = 50.0
	// MinStaticity is the smallest accepted staticity.
	MinStaticity = 1.0

	// MaxTickDT bounds a single tick so a stalled host does not teleport particles.
	MaxTickDT = 0.25
)

// Default value strings, in the notation understood by internal/particle.
const (
	DefaultSize      = "[0.4 1.4]" // dot radius in pixels
	DefaultAlpha     = "[0.1 0.7]" // target opacity
	DefaultSpeed     = "[-3 3]"    // per-axis drift in pixels per second
	DefaultMagnetism = "[0.1 4.1]" // pointer response multiplier
)

// DefaultColor is applied when Config.Color is unset.
var DefaultColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Config is the animator configuration. It is read once at creation;
// changing it afterwards requires a remount.
type Config struct {
	// Quantity is the number of particles. Negative values mean no particles.
	Quantity int
	// Staticity controls resistance to pointer drift (higher = less reactive).
	Staticity float64
	// Color is applied uniformly to every particle.
	Color color.NRGBA

	// Size, Alpha, Speed and Magnetism are fixed values or "[min max]" ranges.
	Size      string
	Alpha     string
	Speed     string
	Magnetism string

	// Twinkle is an optional keyframe curve ("0,1 0.5,0.3 1,1") multiplied
	// into each particle's opacity over TwinklePeriod seconds.
	Twinkle       string
	TwinklePeriod float64

	// EdgeFade is the distance in pixels over which particles fade out
	// when approaching the container edges. 0 uses the default.
	EdgeFade float64
	// FadeIn is the opacity gained per second after creation.
	FadeIn float64

	// Ease and Damping parameterize the spring that eases each particle's
	// pointer offset toward its target.
	Ease    float64
	Damping float64

	// Seed drives every random choice. 0 selects a time-based seed.
	Seed int64
}

// DefaultConfig returns the configuration used by the hero banner.
func DefaultConfig() Config {
	return Config{
		Quantity:      DefaultQuantity,
		Staticity:     DefaultStaticity,
		Color:         DefaultColor,
		Size:          DefaultSize,
		Alpha:         DefaultAlpha,
		Speed:         DefaultSpeed,
		Magnetism:     DefaultMagnetism,
		TwinklePeriod: 4,
		EdgeFade:      20,
		FadeIn:        1.2,
		Ease:          6,
		Damping:       1,
	}
}

// Normalize clamps out-of-range values to safe minimums and fills unset
// fields with defaults. It never fails.
func (c Config) Normalize() Config {
	if c.Quantity < 0 {
		c.Quantity = 0
	}
	if c.Quantity > MaxQuantity {
		c.Quantity = MaxQuantity
	}

	if c.Staticity == 0 || !finite(c.Staticity) {
		c.Staticity = DefaultStaticity
	}
	if c.Staticity < MinStaticity {
		c.Staticity = MinStaticity
	}

	// 零值颜色（完全透明）视为未配置
	if c.Color == (color.NRGBA{}) {
		c.Color = DefaultColor
	}

	if c.TwinklePeriod <= 0 || !finite(c.TwinklePeriod) {
		c.TwinklePeriod = 4
	}
	if c.EdgeFade <= 0 || !finite(c.EdgeFade) {
		c.EdgeFade = 20
	}
	if c.FadeIn <= 0 || !finite(c.FadeIn) {
		c.FadeIn = 1.2
	}
	if c.Ease <= 0 || !finite(c.Ease) {
		c.Ease = 6
	}
	if c.Damping <= 0 || !finite(c.Damping) {
		c.Damping = 1
	}
	return c
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ranges holds the parsed sampling windows of a Config.
type ranges struct {
	size      particle.Range
	alpha     particle.Range
	speed     particle.Range
	magnetism particle.Range

	twinkle    particle.Curve
	hasTwinkle bool
}

func parseRanges(c Config) ranges {
	r := ranges{
		size:      particle.ParseRange(c.Size, particle.Range{Min: 0.4, Max: 1.4}),
		alpha:     particle.ParseRange(c.Alpha, particle.Range{Min: 0.1, Max: 0.7}),
		speed:     particle.ParseRange(c.Speed, particle.Range{Min: -3, Max: 3}),
		magnetism: particle.ParseRange(c.Magnetism, particle.Range{Min: 0.1, Max: 4.1}),
	}

	if r.size.Min < 0 {
		r.size.Min = 0
	}
	if r.size.Max < r.size.Min {
		r.size.Max = r.size.Min
	}
	r.alpha.Min = clamp01(r.alpha.Min)
	r.alpha.Max = clamp01(r.alpha.Max)

	r.twinkle, r.hasTwinkle = particle.ParseCurve(c.Twinkle)
	return r
}
