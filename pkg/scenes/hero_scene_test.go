package scenes

import (
	"testing"

	"github.com/decker502/heroparticles/pkg/config"
	"github.com/decker502/heroparticles/pkg/utils"
)

// fakePointer 可控的指针输入
type fakePointer struct {
	state utils.PointerState
}

func (f *fakePointer) sample() utils.PointerState {
	s := f.state
	// JustPressed 只持续一帧
	f.state.JustPressed = false
	return s
}

func newTestHeroScene(t *testing.T, w, h int) (*HeroScene, *fakePointer) {
	t.Helper()
	cfg := config.DefaultHeroConfig()
	fc := cfg.ToFieldConfig()
	fc.Quantity = 30
	fc.Seed = 7

	s := NewHeroScene(cfg, fc, w, h)
	p := &fakePointer{}
	s.SetPointerSource(p.sample)
	t.Cleanup(s.Close)
	return s, p
}

func runFrames(s *HeroScene, n int) {
	for i := 0; i < n; i++ {
		s.Update(heroFrameDT)
	}
}

func TestHeroSceneSeedsFieldOnFirstUpdate(t *testing.T) {
	s, _ := newTestHeroScene(t, 800, 600)
	if s.Animator().Initialized() {
		t.Fatal("field should not be seeded before the first frame")
	}

	runFrames(s, 1)

	a := s.Animator()
	if !a.Initialized() {
		t.Fatal("field not seeded after first frame")
	}
	if got := len(a.Particles()); got != 30 {
		t.Errorf("particles = %d, want 30", got)
	}
	if w, h := a.Bounds(); w != 800 || h != 600 {
		t.Errorf("bounds = %vx%v, want 800x600", w, h)
	}
}

func TestHeroSceneResizePropagates(t *testing.T) {
	s, _ := newTestHeroScene(t, 800, 600)
	runFrames(s, 2)

	s.Resize(400, 300)
	runFrames(s, 1)

	if w, h := s.Animator().Bounds(); w != 400 || h != 300 {
		t.Errorf("bounds after resize = %vx%v, want 400x300", w, h)
	}
	if got := len(s.Animator().Particles()); got != 30 {
		t.Errorf("resize changed particle count to %d", got)
	}
}

func TestHeroSceneHeadlineFadesTrigger(t *testing.T) {
	s, _ := newTestHeroScene(t, 800, 600)
	runFrames(s, 1)

	for i, f := range s.fades {
		if !f.Triggered() {
			t.Errorf("fade %d not triggered while on screen", i)
		}
	}

	runFrames(s, 120)
	if op := s.fades[0].State(s.elapsed).Opacity; op < 0.99 {
		t.Errorf("title opacity after 2s = %v, want ~1", op)
	}
}

func TestHeroSceneButtonClick(t *testing.T) {
	s, p := newTestHeroScene(t, 800, 600)
	clicked := 0
	s.OnClick(func() { clicked++ })

	cx, cy := s.layout.button.center()
	p.state = utils.PointerState{X: int(cx), Y: int(cy), Pressed: true, JustPressed: true, Present: true}

	t.Run("淡入前忽略点击", func(t *testing.T) {
		runFrames(s, 1)
		if s.Clicks() != 0 {
			t.Errorf("click registered before button appeared")
		}
	})

	t.Run("淡入后点击", func(t *testing.T) {
		p.state.Pressed = false
		runFrames(s, 60)

		p.state.Pressed = true
		p.state.JustPressed = true
		runFrames(s, 1)
		if s.Clicks() != 1 || clicked != 1 {
			t.Errorf("clicks = %d, callback = %d, want 1", s.Clicks(), clicked)
		}
		if !s.hovered || !s.pressed {
			t.Errorf("hovered=%v pressed=%v, want both true", s.hovered, s.pressed)
		}
	})

	t.Run("按下时缩小", func(t *testing.T) {
		runFrames(s, 60)
		if v := s.scale.Value(); v > 0.97 {
			t.Errorf("pressed scale = %v, want ~0.95", v)
		}
	})
}

func TestHeroScenePointerOutside(t *testing.T) {
	s, p := newTestHeroScene(t, 800, 600)
	p.state = utils.PointerState{X: 900, Y: 10, Present: true}
	runFrames(s, 30)

	// 指针在容器外时，粒子不产生偏移
	for i, pt := range s.Animator().Particles() {
		if pt.TX != 0 || pt.TY != 0 {
			t.Fatalf("particle %d offset (%v, %v) with pointer outside", i, pt.TX, pt.TY)
		}
	}
}

func TestHeroSceneClose(t *testing.T) {
	s, _ := newTestHeroScene(t, 800, 600)
	runFrames(s, 3)

	s.Close()
	if s.Animator().Mounted() {
		t.Error("animator still mounted after Close")
	}
	if !s.surface.Released() {
		t.Error("surface not released after Close")
	}

	ticks := s.Animator().Ticks()
	runFrames(s, 3)
	if s.Animator().Ticks() != ticks {
		t.Error("field ticked after Close")
	}
}

func TestComputeHeroLayout(t *testing.T) {
	l := computeHeroLayout(1280, 720)

	for i := 1; i < len(l.lines); i++ {
		if l.lines[i].Y <= l.lines[i-1].Y {
			t.Errorf("line %d not below line %d", i, i-1)
		}
	}
	if l.button.Y <= l.lines[2].Y+l.lines[2].H {
		t.Error("button overlaps headline")
	}
	if l.card.Y <= l.button.Y+l.button.H {
		t.Error("card overlaps button")
	}
	if cx, _ := l.button.center(); cx != 640 {
		t.Errorf("button center x = %v, want 640", cx)
	}
	if l.fadeRect(3) != l.button {
		t.Error("fadeRect(3) should be the button")
	}

	if zero := computeHeroLayout(0, 720); zero != (heroLayout{}) {
		t.Errorf("zero width layout = %+v", zero)
	}
}

func TestRectScaled(t *testing.T) {
	r := rect{X: 10, Y: 10, W: 100, H: 50}.scaled(0.5)
	if r != (rect{X: 35, Y: 22.5, W: 50, H: 25}) {
		t.Errorf("scaled = %+v", r)
	}
}
