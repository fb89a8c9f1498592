package effects

import (
	"image/color"
	"math"
	"testing"
)

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestBlurFadeBeforeTrigger(t *testing.T) {
	b := NewBlurFade(0.2)
	s := b.State(100)
	if s.Opacity != 0 || s.YOffset != DefaultBlurFadeYOffset || s.Blur != DefaultBlurFadeBlur {
		t.Errorf("untriggered state = %+v", s)
	}
	if b.Done(100) {
		t.Error("Done() before trigger")
	}
}

func TestBlurFadeThreshold(t *testing.T) {
	b := NewBlurFade(0)

	if b.Observe(0.29, 1) {
		t.Error("triggered below threshold")
	}
	if !b.Observe(0.3, 2) {
		t.Error("did not trigger at threshold")
	}
	// 只触发一次
	if b.Observe(1, 3) {
		t.Error("triggered twice")
	}
	if !b.Triggered() {
		t.Error("Triggered() = false")
	}
}

func TestBlurFadeTimeline(t *testing.T) {
	b := NewBlurFade(0.1)
	b.Observe(1, 5)

	tests := []struct {
		name string
		now  float64
		want func(BlurFadeState) bool
	}{
		{"延迟中", 5.05, func(s BlurFadeState) bool { return s.Opacity == 0 && s.YOffset == 20 && s.Blur == 10 }},
		{"进行中", 5.4, func(s BlurFadeState) bool { return s.Opacity > 0.5 && s.Opacity < 1 && s.YOffset > 0 && s.YOffset < 10 }},
		{"完成", 5.7, func(s BlurFadeState) bool { return near(s.Opacity, 1, 1e-9) && near(s.YOffset, 0, 1e-9) && near(s.Blur, 0, 1e-9) }},
		{"完成后保持", 50, func(s BlurFadeState) bool { return near(s.Opacity, 1, 1e-9) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s := b.State(tt.now); !tt.want(s) {
				t.Errorf("State(%v) = %+v", tt.now, s)
			}
		})
	}

	if b.Done(5.69) {
		t.Error("Done() too early")
	}
	if !b.Done(5.7) {
		t.Error("Done() = false at delay+duration")
	}
}

func TestBlurFadeMonotonic(t *testing.T) {
	b := NewBlurFade(0)
	b.Observe(1, 0)
	prev := BlurFadeState{YOffset: math.Inf(1), Blur: math.Inf(1)}
	for now := 0.0; now <= 1; now += 0.02 {
		s := b.State(now)
		if s.Opacity < prev.Opacity || s.YOffset > prev.YOffset || s.Blur > prev.Blur {
			t.Fatalf("non-monotonic at %v: %+v after %+v", now, s, prev)
		}
		prev = s
	}
}

func TestVisibleFraction(t *testing.T) {
	tests := []struct {
		name                string
		top, bottom         float64
		viewTop, viewBottom float64
		want                float64
	}{
		{"完全可见", 100, 200, 0, 600, 1},
		{"完全不可见", 700, 800, 0, 600, 0},
		{"部分可见", 550, 650, 0, 600, 0.5},
		{"上方裁剪", -70, 30, 0, 600, 0.3},
		{"零高度", 100, 100, 0, 600, 0},
		{"比视口大", -100, 900, 0, 600, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleFraction(tt.top, tt.bottom, tt.viewTop, tt.viewBottom)
			if !near(got, tt.want, 1e-9) {
				t.Errorf("VisibleFraction = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShimmerPhase(t *testing.T) {
	s := NewShimmer()
	tests := []struct {
		elapsed, want float64
	}{
		{0, 0},
		{0.5, 0.25},
		{1, 0.5},
		{2, 0},
		{5, 0.5},
		{-0.5, 0.75},
	}
	for _, tt := range tests {
		if got := s.Phase(tt.elapsed); !near(got, tt.want, 1e-9) {
			t.Errorf("Phase(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestShimmerSweep(t *testing.T) {
	s := NewShimmer()

	// 开始时光带完全在按钮左侧外
	for x := 0.0; x <= 1; x += 0.1 {
		if v := s.Intensity(x, 0); v != 0 {
			t.Fatalf("Intensity(%v, 0) = %v, want 0", x, v)
		}
	}

	// 中点时光带在按钮中央
	if c := s.BandCenter(1); !near(c, 0.5, 1e-9) {
		t.Errorf("BandCenter(1) = %v, want 0.5", c)
	}
	if v := s.Intensity(0.5, 1); !near(v, DefaultShimmerPeak, 1e-9) {
		t.Errorf("peak intensity = %v, want %v", v, DefaultShimmerPeak)
	}
	if v := s.Intensity(0.75, 1); !near(v, DefaultShimmerPeak/2, 1e-9) {
		t.Errorf("half-band intensity = %v, want %v", v, DefaultShimmerPeak/2)
	}
}

func TestButtonScale(t *testing.T) {
	tests := []struct {
		name             string
		hovered, pressed bool
		want             float64
	}{
		{"idle", false, false, 1},
		{"hover", true, false, 1.05},
		{"press", true, true, 0.95},
		{"press without hover", false, true, 0.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ButtonScale(tt.hovered, tt.pressed); got != tt.want {
				t.Errorf("ButtonScale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleSpringSettles(t *testing.T) {
	s := NewScaleSpring(1.0/60, 20)
	if s.Value() != 1 {
		t.Fatalf("initial scale = %v", s.Value())
	}
	for i := 0; i < 120; i++ {
		s.Update(true, false)
	}
	if !near(s.Value(), HoverScale, 1e-3) {
		t.Errorf("hover scale = %v, want ~%v", s.Value(), HoverScale)
	}
	for i := 0; i < 120; i++ {
		s.Update(true, true)
	}
	if !near(s.Value(), PressScale, 1e-3) {
		t.Errorf("press scale = %v, want ~%v", s.Value(), PressScale)
	}
}

func TestBorderBeamPoint(t *testing.T) {
	b := NewBorderBeam()
	b.Duration = 10
	w, h := 300.0, 200.0 // 周长 1000

	tests := []struct {
		name   string
		t      float64
		wx, wy float64
	}{
		{"起点", 0, 0, 0},
		{"上边", 1, 100, 0},
		{"右上角", 3, 300, 0},
		{"右边", 4, 300, 100},
		{"下边", 6, 200, 200},
		{"左边", 9, 0, 100},
		{"一圈后", 11, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := b.Point(tt.t, w, h)
			if !near(x, tt.wx, 1e-6) || !near(y, tt.wy, 1e-6) {
				t.Errorf("Point(%v) = (%v, %v), want (%v, %v)", tt.t, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestBorderBeamDelay(t *testing.T) {
	b := NewBorderBeam()
	b.Delay = 2
	if p := b.Progress(1); p != 0 {
		t.Errorf("Progress before delay = %v, want 0", p)
	}
	if p := b.Progress(2 + DefaultBeamDuration/4); !near(p, 0.25, 1e-9) {
		t.Errorf("Progress = %v, want 0.25", p)
	}
}

func TestBorderBeamGradient(t *testing.T) {
	b := NewBorderBeam()
	if got := b.Gradient(0); got != b.ColorFrom {
		t.Errorf("Gradient(0) = %+v, want %+v", got, b.ColorFrom)
	}
	if got := b.Gradient(0.5); got != b.ColorTo {
		t.Errorf("Gradient(0.5) = %+v, want %+v", got, b.ColorTo)
	}
	if got := b.Gradient(1); got.A != 0 {
		t.Errorf("Gradient(1) alpha = %d, want 0", got.A)
	}
	want := color.NRGBA{R: 0xec, G: 0x48, B: 0x99, A: 255}
	if b.ColorFrom != want {
		t.Errorf("default ColorFrom = %+v, want #ec4899", b.ColorFrom)
	}
}

func TestBorderBeamTrail(t *testing.T) {
	b := NewBorderBeam()
	w, h := 400.0, 300.0
	trail := b.Trail(3, w, h, 16)
	if len(trail) != 16 {
		t.Fatalf("len(trail) = %d, want 16", len(trail))
	}

	hx, hy := b.Point(3, w, h)
	if !near(trail[0].X, hx, 1e-9) || !near(trail[0].Y, hy, 1e-9) {
		t.Errorf("trail head (%v, %v) != Point (%v, %v)", trail[0].X, trail[0].Y, hx, hy)
	}
	for i, s := range trail {
		onEdge := near(s.X, 0, 1e-9) || near(s.X, w, 1e-9) || near(s.Y, 0, 1e-9) || near(s.Y, h, 1e-9)
		if !onEdge {
			t.Errorf("sample %d (%v, %v) not on the perimeter", i, s.X, s.Y)
		}
	}
	if trail[15].Color.A != 0 {
		t.Errorf("tail alpha = %d, want 0", trail[15].Color.A)
	}

	if got := b.Trail(3, 0, 100, 8); got != nil {
		t.Error("Trail on empty rectangle should be nil")
	}
}
