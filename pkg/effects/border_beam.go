package effects

import (
	"image/color"
	"math"

	"github.com/decker502/heroparticles/pkg/utils"
)

// BorderBeam 默认参数
const (
	DefaultBeamSize      = 200.0 // beam length in pixels
	DefaultBeamDuration  = 15.0  // seconds per lap
	DefaultBeamColorFrom = "#ec4899"
	DefaultBeamColorTo   = "#a855f7"
)

// BeamSample is one point of the beam's trail.
type BeamSample struct {
	X, Y  float64
	Color color.NRGBA
}

// BorderBeam is a short gradient segment travelling clockwise around a
// rectangle's perimeter at constant speed, starting from the top-left corner.
type BorderBeam struct {
	Size      float64
	Duration  float64
	Delay     float64
	ColorFrom color.NRGBA
	ColorTo   color.NRGBA
}

// NewBorderBeam returns a beam with the default size, timing and colors.
func NewBorderBeam() BorderBeam {
	return BorderBeam{
		Size:      DefaultBeamSize,
		Duration:  DefaultBeamDuration,
		ColorFrom: utils.ParseHexColor(DefaultBeamColorFrom, color.NRGBA{A: 255}),
		ColorTo:   utils.ParseHexColor(DefaultBeamColorTo, color.NRGBA{A: 255}),
	}
}

// Progress returns the lap fraction in [0, 1) at elapsed seconds. Before
// Delay the beam rests at the start.
func (b BorderBeam) Progress(elapsed float64) float64 {
	t := elapsed - b.Delay
	if t <= 0 {
		return 0
	}
	d := b.Duration
	if d <= 0 {
		d = DefaultBeamDuration
	}
	return math.Mod(t/d, 1)
}

// Point returns the head position on a w×h rectangle at elapsed seconds.
func (b BorderBeam) Point(elapsed, w, h float64) (x, y float64) {
	return perimeterPoint(b.Progress(elapsed)*2*(w+h), w, h)
}

// Gradient returns the beam color at t ∈ [0, 1] along its length, t=0 at the
// head: ColorFrom blends to ColorTo over the first half, then fades out.
func (b BorderBeam) Gradient(t float64) color.NRGBA {
	t = utils.Clamp01(t)
	if t <= 0.5 {
		return utils.BlendColors(b.ColorFrom, b.ColorTo, t*2)
	}
	return utils.WithAlpha(b.ColorTo, 1-(t-0.5)*2)
}

// Trail samples n points from the head backward along the perimeter. The
// beam is clipped to the perimeter length when the rectangle is small.
func (b BorderBeam) Trail(elapsed, w, h float64, n int) []BeamSample {
	if n <= 0 || w <= 0 || h <= 0 {
		return nil
	}
	perimeter := 2 * (w + h)
	size := b.Size
	if size <= 0 {
		size = DefaultBeamSize
	}
	size = math.Min(size, perimeter)

	head := b.Progress(elapsed) * perimeter
	out := make([]BeamSample, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		x, y := perimeterPoint(head-t*size, w, h)
		out[i] = BeamSample{X: x, Y: y, Color: b.Gradient(t)}
	}
	return out
}

// perimeterPoint 将周长距离映射到矩形边上（顺时针：上、右、下、左）
func perimeterPoint(d, w, h float64) (float64, float64) {
	perimeter := 2 * (w + h)
	if perimeter <= 0 {
		return 0, 0
	}
	d = math.Mod(d, perimeter)
	if d < 0 {
		d += perimeter
	}
	switch {
	case d < w:
		return d, 0
	case d < w+h:
		return w, d - w
	case d < 2*w+h:
		return w - (d - w - h), h
	default:
		return 0, h - (d - 2*w - h)
	}
}
