package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// 终端字符单元的逻辑像素尺寸（字符约为 1:2）
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// TermSurface draws one glyph per dot on a tcell screen. Logical pixels are
// mapped onto cells so the animator sees the same coordinate scale as on a
// desktop window.
type TermSurface struct {
	screen     tcell.Screen
	cellW      float64
	cellH      float64
	background colorful.Color

	// 本帧每个单元已绘制的最大 alpha，重叠时保留最亮的点
	cover map[[2]int]uint8
	dots  int
}

// NewTermSurface wraps an initialized screen.
func NewTermSurface(screen tcell.Screen) *TermSurface {
	return &TermSurface{
		screen:     screen,
		cellW:      DefaultCellWidth,
		cellH:      DefaultCellHeight,
		background: colorful.Color{},
		cover:      make(map[[2]int]uint8),
	}
}

// SetCellSize changes the logical pixel size of one cell.
func (s *TermSurface) SetCellSize(w, h float64) {
	if w > 0 {
		s.cellW = w
	}
	if h > 0 {
		s.cellH = h
	}
}

// SetBackground sets the color dots are blended toward as alpha decreases.
func (s *TermSurface) SetBackground(c color.Color) {
	if cc, ok := colorful.MakeColor(c); ok {
		s.background = cc
	}
}

// Size implements field.Surface.
func (s *TermSurface) Size() (float64, float64) {
	if s.screen == nil {
		return 0, 0
	}
	cols, rows := s.screen.Size()
	return float64(cols) * s.cellW, float64(rows) * s.cellH
}

// Clear implements field.Surface.
func (s *TermSurface) Clear() {
	if s.screen == nil {
		return
	}
	s.screen.Clear()
	clear(s.cover)
	s.dots = 0
}

// DrawDot implements field.Surface.
func (s *TermSurface) DrawDot(x, y, radius float64, c color.NRGBA) {
	if s.screen == nil || c.A == 0 {
		return
	}
	col := int(x / s.cellW)
	row := int(y / s.cellH)
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}

	key := [2]int{col, row}
	if prev, ok := s.cover[key]; ok && prev >= c.A {
		return
	}
	s.cover[key] = c.A

	style := tcell.StyleDefault.Foreground(s.blend(c))
	s.screen.SetContent(col, row, GlyphFor(radius), nil, style)
	s.dots++
}

// Flush implements field.Flusher.
func (s *TermSurface) Flush() {
	if s.screen != nil {
		s.screen.Show()
	}
}

// DotCount returns the number of cells drawn since the last Clear.
func (s *TermSurface) DotCount() int {
	return s.dots
}

// Release implements field.Releaser. The screen itself is owned by the
// caller; only the surface stops drawing.
func (s *TermSurface) Release() {
	if s.screen != nil {
		s.screen.Clear()
		s.screen.Show()
	}
	s.screen = nil
	s.cover = nil
}

// blend 按 alpha 将前景色混合到背景色上（终端不支持半透明）
func (s *TermSurface) blend(c color.NRGBA) tcell.Color {
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	mixed := s.background.BlendRgb(fg, float64(c.A)/255).Clamped()
	r, g, b := mixed.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// GlyphFor picks a glyph whose visual weight matches the dot radius.
func GlyphFor(radius float64) rune {
	switch {
	case radius < 0.7:
		return '·'
	case radius < 1.1:
		return '∙'
	case radius < 2:
		return '•'
	default:
		return '●'
	}
}
