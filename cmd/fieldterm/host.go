package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/heroparticles/pkg/field"
	"github.com/decker502/heroparticles/pkg/frame"
	"github.com/decker502/heroparticles/pkg/render"
)

// termHost 在终端里驱动粒子场
// 鼠标坐标以字符格为单位，换算到格子中心的像素坐标
type termHost struct {
	screen   tcell.Screen
	loop     *frame.Loop
	animator *field.Animator
	surface  *render.TermSurface

	pointer frame.Pointer
	paused  bool
}

func newTermHost(screen tcell.Screen, cfg field.Config) *termHost {
	h := &termHost{
		screen:  screen,
		loop:    frame.NewLoop(),
		surface: render.NewTermSurface(screen),
	}
	h.animator = field.New(cfg)
	h.animator.Mount(h.loop, h.surface)
	return h
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (h *termHost) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'p', ' ':
				h.paused = !h.paused
				log.Printf("[Term] paused=%v", h.paused)
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		cw, ch := render.DefaultCellWidth, render.DefaultCellHeight
		cols, rows := h.screen.Size()
		h.pointer = frame.Pointer{
			X:      (float64(col) + 0.5) * cw,
			Y:      (float64(row) + 0.5) * ch,
			Inside: col >= 0 && row >= 0 && col < cols && row < rows,
		}

	case *tcell.EventFocus:
		// 终端失去焦点时视为指针离开
		if !ev.Focused {
			h.pointer.Inside = false
		}

	case *tcell.EventResize:
		// 粒子场在下一帧自行重新测量
		h.screen.Sync()
	}
	return true
}

// tick 推进一帧
func (h *termHost) tick(dt float64) {
	if h.paused {
		return
	}
	h.loop.Step(frame.Frame{DT: dt, Pointer: h.pointer})
}

func (h *termHost) close() {
	h.animator.Unmount()
	h.loop.Close()
}
