package render

import (
	"image/color"
	"testing"

	"github.com/decker502/heroparticles/pkg/field"
	"github.com/decker502/heroparticles/pkg/frame"
)

func TestEbitenSurfaceBatchesQuads(t *testing.T) {
	s := NewEbitenSurface(100, 50)

	s.Clear()
	s.DrawDot(10, 10, 2, color.NRGBA{R: 255, G: 128, B: 0, A: 255})
	s.DrawDot(20, 20, 1, color.NRGBA{R: 255, A: 51})

	if s.DotCount() != 0 {
		t.Fatalf("DotCount() before Flush = %d, want 0", s.DotCount())
	}
	s.Flush()
	if s.DotCount() != 2 {
		t.Fatalf("DotCount() = %d, want 2", s.DotCount())
	}

	b := s.front
	if len(b.vertices) != 8 || len(b.indices) != 12 {
		t.Fatalf("batch has %d vertices / %d indices, want 8 / 12", len(b.vertices), len(b.indices))
	}

	v := b.vertices[0]
	if v.DstX != 8 || v.DstY != 8 {
		t.Errorf("top-left = (%v, %v), want (8, 8)", v.DstX, v.DstY)
	}
	v = b.vertices[3]
	if v.DstX != 12 || v.DstY != 12 || v.SrcX != dotTextureSize || v.SrcY != dotTextureSize {
		t.Errorf("bottom-right vertex = %+v", v)
	}
	if v.ColorR != 1 || v.ColorA != 1 {
		t.Errorf("vertex color = (%v, %v), want (1, 1)", v.ColorR, v.ColorA)
	}
	if a := b.vertices[4].ColorA; a != 0.2 {
		t.Errorf("second dot alpha = %v, want 0.2", a)
	}

	want := []uint16{4, 5, 6, 5, 7, 6}
	for i, idx := range b.indices[6:] {
		if idx != want[i] {
			t.Errorf("index[%d] = %d, want %d", 6+i, idx, want[i])
		}
	}
}

func TestEbitenSurfaceFlushSwapsFrames(t *testing.T) {
	s := NewEbitenSurface(10, 10)

	s.Clear()
	s.DrawDot(1, 1, 1, color.NRGBA{A: 255})
	s.Flush()

	// 下一帧绘制中途，Draw 仍使用上一帧
	s.Clear()
	s.DrawDot(1, 1, 1, color.NRGBA{A: 255})
	s.DrawDot(2, 2, 1, color.NRGBA{A: 255})
	s.DrawDot(3, 3, 1, color.NRGBA{A: 255})
	if s.DotCount() != 1 {
		t.Errorf("DotCount() mid-frame = %d, want 1", s.DotCount())
	}
	s.Flush()
	if s.DotCount() != 3 {
		t.Errorf("DotCount() = %d, want 3", s.DotCount())
	}
}

func TestEbitenSurfaceSkipsInvisible(t *testing.T) {
	s := NewEbitenSurface(10, 10)
	s.Clear()
	s.DrawDot(1, 1, 0, color.NRGBA{A: 255})
	s.DrawDot(1, 1, 1, color.NRGBA{A: 0})
	s.Flush()
	if s.DotCount() != 0 {
		t.Errorf("DotCount() = %d, want 0", s.DotCount())
	}
}

func TestEbitenSurfaceRelease(t *testing.T) {
	s := NewEbitenSurface(64, 64)
	s.Clear()
	s.DrawDot(1, 1, 1, color.NRGBA{A: 255})
	s.Flush()

	s.Release()
	s.Release()

	if !s.Released() {
		t.Fatal("Released() = false")
	}
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("Size() after Release = (%v, %v)", w, h)
	}
	if s.DotCount() != 0 {
		t.Errorf("DotCount() after Release = %d", s.DotCount())
	}
	s.DrawDot(1, 1, 1, color.NRGBA{A: 255})
	s.Flush()
	if s.DotCount() != 0 {
		t.Error("released surface accepted dots")
	}
}

func TestEbitenSurfaceWithAnimator(t *testing.T) {
	s := NewEbitenSurface(0, 0)

	cfg := field.DefaultConfig()
	cfg.Quantity = 64
	cfg.Seed = 3
	a := field.New(cfg)
	loop := frame.NewLoop()
	a.Mount(loop, s)

	loop.Step(frame.Frame{DT: 1.0 / 60})
	if a.Initialized() {
		t.Fatal("initialized before layout")
	}

	s.SetSize(800, 600)
	for i := 0; i < 120; i++ {
		loop.Step(frame.Frame{DT: 1.0 / 60})
	}
	if n := s.DotCount(); n == 0 || n > 64 {
		t.Errorf("DotCount() = %d, want 1..64", n)
	}

	a.Unmount()
	if !s.Released() {
		t.Error("Unmount did not release the surface")
	}
}
