package utils

import (
	"testing"
)

func TestToFramePointer(t *testing.T) {
	tests := []struct {
		name   string
		state  PointerState
		inside bool
	}{
		{"窗口内", PointerState{X: 10, Y: 20, Present: true}, true},
		{"左上角", PointerState{X: 0, Y: 0, Present: true}, true},
		{"右边界外", PointerState{X: 800, Y: 20, Present: true}, false},
		{"负坐标", PointerState{X: -1, Y: 20, Present: true}, false},
		{"无活动触摸", PointerState{X: 10, Y: 20, Touch: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.state.ToFramePointer(800, 600)
			if p.Inside != tt.inside {
				t.Errorf("Inside = %v, 期望 %v", p.Inside, tt.inside)
			}
			if p.X != float64(tt.state.X) || p.Y != float64(tt.state.Y) {
				t.Errorf("位置 = (%v, %v)", p.X, p.Y)
			}
		})
	}
}

func TestPointerIn(t *testing.T) {
	p := PointerState{X: 50, Y: 30, Present: true}
	if !p.In(40, 20, 20, 20) {
		t.Error("指针应位于矩形内")
	}
	if p.In(51, 20, 20, 20) {
		t.Error("指针应位于矩形外")
	}
	if (PointerState{X: 50, Y: 30}).In(40, 20, 20, 20) {
		t.Error("不存在的指针不应命中")
	}
}
