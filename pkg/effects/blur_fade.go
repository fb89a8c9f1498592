// Package effects contains the decorative hero animations. Each effect is a
// small state machine evaluated as a pure function of elapsed seconds, so
// hosts can render them on any backend and tests can sample them directly.
package effects

import (
	"log"

	"github.com/decker502/heroparticles/pkg/utils"
)

// BlurFade 默认参数
const (
	DefaultBlurFadeDuration  = 0.6
	DefaultBlurFadeYOffset   = 20.0
	DefaultBlurFadeBlur      = 10.0
	DefaultBlurFadeThreshold = 0.3
)

// BlurFadeState is the visual state of a blur-fade element at one instant.
type BlurFadeState struct {
	Opacity float64 // 0..1
	YOffset float64 // pixels below the resting position
	Blur    float64 // blur radius in pixels
}

// BlurFade reveals an element the first time enough of it scrolls into view:
// opacity 0→1, vertical offset YOffset→0 and blur Blur→0, eased out.
// Once triggered it never reverts.
type BlurFade struct {
	Delay     float64 // seconds after triggering before the reveal starts
	Duration  float64
	YOffset   float64
	Blur      float64
	Threshold float64 // visible fraction that triggers the reveal
	Ease      utils.EasingFunc

	triggered bool
	startAt   float64
}

// NewBlurFade returns a blur-fade with the default timing and the given delay.
func NewBlurFade(delay float64) *BlurFade {
	return &BlurFade{
		Delay:     delay,
		Duration:  DefaultBlurFadeDuration,
		YOffset:   DefaultBlurFadeYOffset,
		Blur:      DefaultBlurFadeBlur,
		Threshold: DefaultBlurFadeThreshold,
		Ease:      utils.EaseOut,
	}
}

// Observe reports the element's visible fraction at time now. The first call
// with fraction >= Threshold triggers the reveal. Returns true on that call.
func (b *BlurFade) Observe(fraction, now float64) bool {
	if b.triggered {
		return false
	}
	threshold := b.Threshold
	if threshold <= 0 {
		threshold = DefaultBlurFadeThreshold
	}
	if fraction < threshold {
		return false
	}
	b.triggered = true
	b.startAt = now
	log.Printf("[Effects] blur-fade triggered at %.2fs (visible %.0f%%)", now, fraction*100)
	return true
}

// Triggered reports whether the reveal has started (or finished).
func (b *BlurFade) Triggered() bool {
	return b.triggered
}

// State returns the visual state at time now.
func (b *BlurFade) State(now float64) BlurFadeState {
	if !b.triggered {
		return BlurFadeState{Opacity: 0, YOffset: b.YOffset, Blur: b.Blur}
	}

	ease := b.Ease
	if ease == nil {
		ease = utils.EaseOut
	}
	p := ease(utils.Progress(now-b.startAt, b.Delay, b.Duration))
	return BlurFadeState{
		Opacity: p,
		YOffset: utils.Lerp(b.YOffset, 0, p),
		Blur:    utils.Lerp(b.Blur, 0, p),
	}
}

// Done reports whether the reveal has completed at time now.
func (b *BlurFade) Done(now float64) bool {
	return b.triggered && now-b.startAt >= b.Delay+b.Duration
}

// VisibleFraction returns how much of the span [top, bottom) lies inside the
// viewport [viewTop, viewBottom), in [0, 1].
func VisibleFraction(top, bottom, viewTop, viewBottom float64) float64 {
	h := bottom - top
	if h <= 0 {
		return 0
	}
	lo := max(top, viewTop)
	hi := min(bottom, viewBottom)
	if hi <= lo {
		return 0
	}
	return utils.Clamp01((hi - lo) / h)
}
