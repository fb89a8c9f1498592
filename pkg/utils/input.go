// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/heroparticles/pkg/frame"
)

// PointerState 存储当前帧的指针状态
// 统一处理鼠标和触摸输入
type PointerState struct {
	X, Y int
	// 是否按下（鼠标左键或触摸）
	Pressed bool
	// 本帧刚按下
	JustPressed bool
	// 来自触摸（移动端）
	Touch bool
	// 触摸设备上没有活动触摸时为 false
	Present bool
}

// GetPointerState 获取当前帧的指针状态
// 同时支持鼠标和触摸输入，优先检测触摸
func GetPointerState() PointerState {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerState{
			X:           x,
			Y:           y,
			Pressed:     true,
			JustPressed: len(inpututil.AppendJustPressedTouchIDs(nil)) > 0,
			Touch:       true,
			Present:     true,
		}
	}

	// 移动端手指抬起后指针离开容器
	if IsMobile() {
		return PointerState{Touch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:           x,
		Y:           y,
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Present:     true,
	}
}

// ToFramePointer 转换为粒子场的帧指针输入
// 指针在 [0,w)×[0,h) 之外时 Inside 为 false
func (p PointerState) ToFramePointer(w, h int) frame.Pointer {
	inside := p.Present && p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h
	return frame.Pointer{X: float64(p.X), Y: float64(p.Y), Inside: inside}
}

// In 判断指针是否位于矩形内
func (p PointerState) In(x, y, w, h float64) bool {
	if !p.Present {
		return false
	}
	px, py := float64(p.X), float64(p.Y)
	return px >= x && py >= y && px < x+w && py < y+h
}
