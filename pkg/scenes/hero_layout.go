package scenes

import "math"

// rect 轴对齐矩形（逻辑像素）
type rect struct {
	X, Y, W, H float64
}

func (r rect) center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// scaled 以中心为原点缩放
func (r rect) scaled(k float64) rect {
	cx, cy := r.center()
	w, h := r.W*k, r.H*k
	return rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// 文字行高
const (
	titleSize    = 56.0
	subtitleSize = 28.0
	taglineSize  = 18.0
	buttonSize   = 18.0
	cardTextSize = 16.0
)

// heroLayout 英雄区各元素的位置
// lines 依次为标题、副标题、标语
type heroLayout struct {
	lines  [3]rect
	button rect
	card   rect
}

// computeHeroLayout 标题区居中于上半部分，卡片位于下方
func computeHeroLayout(w, h float64) heroLayout {
	var l heroLayout
	if w <= 0 || h <= 0 {
		return l
	}

	contentW := math.Min(w-48, 720)
	left := (w - contentW) / 2

	y := h * 0.18
	sizes := [3]float64{titleSize, subtitleSize, taglineSize}
	for i, size := range sizes {
		lineH := size * 1.3
		l.lines[i] = rect{X: left, Y: y, W: contentW, H: lineH}
		y += lineH + 8
	}

	btnW, btnH := 260.0, 52.0
	l.button = rect{X: (w - btnW) / 2, Y: y + 24, W: btnW, H: btnH}

	cardW := math.Min(contentW, 420)
	cardH := 120.0
	l.card = rect{X: (w - cardW) / 2, Y: l.button.Y + btnH + 48, W: cardW, H: cardH}
	return l
}

// fadeRect 第 i 个淡入元素的区域（0..2 为文字行，3 为按钮）
func (l heroLayout) fadeRect(i int) rect {
	if i >= 0 && i < len(l.lines) {
		return l.lines[i]
	}
	return l.button
}
