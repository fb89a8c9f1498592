// Package render provides field.Surface implementations for the hosts:
// an Ebitengine image target and a tcell terminal screen.
package render

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// dotTextureSize 圆点贴图边长（像素）
const dotTextureSize = 32

// maxBatchDots uint16 索引上限：每个点 4 个顶点
const maxBatchDots = math.MaxUint16 / 4

// EbitenSurface collects the dots of one tick and draws them as a single
// DrawTriangles batch.
//
// The animator ticks in Update and the host calls Draw later in the same
// frame, so dots are written to a back buffer and swapped in by Flush.
// Draw always renders the last complete frame.
type EbitenSurface struct {
	width, height float64

	// 绘制中的批次 / 上一帧完成的批次
	back  dotBatch
	front dotBatch

	dot      *ebiten.Image
	additive bool
	released bool
}

// dotBatch 一帧的顶点和索引数组
type dotBatch struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

func (b *dotBatch) reset() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

func (b *dotBatch) len() int {
	return len(b.vertices) / 4
}

// NewEbitenSurface creates a surface of the given logical size. A zero size
// is valid; the animator waits until SetSize reports a real one.
func NewEbitenSurface(w, h float64) *EbitenSurface {
	return &EbitenSurface{width: w, height: h}
}

// SetSize updates the container size, usually from Layout.
func (s *EbitenSurface) SetSize(w, h float64) {
	s.width, s.height = w, h
}

// SetAdditive switches between normal alpha blending and additive (glow)
// blending.
func (s *EbitenSurface) SetAdditive(additive bool) {
	s.additive = additive
}

// Size implements field.Surface.
func (s *EbitenSurface) Size() (float64, float64) {
	if s.released {
		return 0, 0
	}
	return s.width, s.height
}

// Clear implements field.Surface. It starts a new back buffer.
func (s *EbitenSurface) Clear() {
	s.back.reset()
}

// DrawDot implements field.Surface by appending one textured quad.
func (s *EbitenSurface) DrawDot(x, y, radius float64, c color.NRGBA) {
	if s.released || radius <= 0 || c.A == 0 {
		return
	}
	if s.back.len() >= maxBatchDots {
		return
	}

	x0, y0 := float32(x-radius), float32(y-radius)
	x1, y1 := float32(x+radius), float32(y+radius)
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	a := float32(c.A) / 255

	// 左上、右上、左下、右下
	base := uint16(len(s.back.vertices))
	s.back.vertices = append(s.back.vertices,
		ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 0, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: x1, DstY: y0, SrcX: dotTextureSize, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 0, SrcY: dotTextureSize, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: x1, DstY: y1, SrcX: dotTextureSize, SrcY: dotTextureSize, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	)
	s.back.indices = append(s.back.indices,
		base+0, base+1, base+2, // 第一个三角形
		base+1, base+3, base+2, // 第二个三角形
	)
}

// Flush implements field.Flusher: the back buffer becomes the frame Draw
// renders.
func (s *EbitenSurface) Flush() {
	s.front, s.back = s.back, s.front
	s.back.reset()
}

// DotCount returns the number of dots in the last flushed frame.
func (s *EbitenSurface) DotCount() int {
	return s.front.len()
}

// Draw renders the last flushed frame onto dst.
func (s *EbitenSurface) Draw(dst *ebiten.Image) {
	if s.released || dst == nil || s.front.len() == 0 {
		return
	}
	if s.dot == nil {
		s.dot = newDotTexture()
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	if s.additive {
		op.Blend = ebiten.BlendLighter
	}
	dst.DrawTriangles(s.front.vertices, s.front.indices, s.dot, op)
}

// Release implements field.Releaser. The surface draws nothing afterwards.
func (s *EbitenSurface) Release() {
	if s.released {
		return
	}
	s.released = true
	if s.dot != nil {
		s.dot.Deallocate()
		s.dot = nil
	}
	s.front = dotBatch{}
	s.back = dotBatch{}
	log.Printf("[Render] ebiten surface released")
}

// Released reports whether Release has been called.
func (s *EbitenSurface) Released() bool {
	return s.released
}

// newDotTexture 白色圆点贴图，顶点颜色负责着色
func newDotTexture() *ebiten.Image {
	img := ebiten.NewImage(dotTextureSize, dotTextureSize)
	half := float32(dotTextureSize) / 2
	vector.DrawFilledCircle(img, half, half, half, color.White, true)
	return img
}
