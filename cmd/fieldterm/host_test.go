package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/heroparticles/pkg/field"
	"github.com/decker502/heroparticles/pkg/render"
)

func newTestHost(t *testing.T, cols, rows int) *termHost {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)

	cfg := field.DefaultConfig()
	cfg.Quantity = 25
	cfg.Seed = 11
	h := newTermHost(s, cfg)
	t.Cleanup(h.close)
	return h
}

func TestTermHostTicksField(t *testing.T) {
	h := newTestHost(t, 40, 12)
	h.tick(1.0 / 30)

	if !h.animator.Initialized() {
		t.Fatal("field not seeded")
	}
	w, ht := h.animator.Bounds()
	if w != 40*render.DefaultCellWidth || ht != 12*render.DefaultCellHeight {
		t.Errorf("bounds = %vx%v", w, ht)
	}
}

func TestTermHostMouse(t *testing.T) {
	h := newTestHost(t, 40, 12)

	h.handleEvent(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	if !h.pointer.Inside {
		t.Fatal("pointer should be inside")
	}
	if h.pointer.X != 3.5*render.DefaultCellWidth || h.pointer.Y != 2.5*render.DefaultCellHeight {
		t.Errorf("pointer = (%v, %v)", h.pointer.X, h.pointer.Y)
	}

	h.handleEvent(tcell.NewEventFocus(false))
	if h.pointer.Inside {
		t.Error("pointer should leave on focus loss")
	}
}

func TestTermHostKeys(t *testing.T) {
	h := newTestHost(t, 20, 10)

	if !h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)) {
		t.Fatal("p should not quit")
	}
	if !h.paused {
		t.Error("p should pause")
	}
	h.tick(1.0 / 30)
	if h.animator.Ticks() != 0 {
		t.Error("paused host ticked the field")
	}

	if h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if h.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
}

// endlessSource 永远有事件可读
type endlessSource struct{}

func (endlessSource) PollEvent() tcell.Event {
	return tcell.NewEventInterrupt(nil)
}

// run 返回后没人再读事件，转发协程必须能退出
func TestPollEventsStopsWhenDone(t *testing.T) {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		pollEvents(endlessSource{}, events, done)
		close(exited)
	}()

	<-events
	close(done)

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("pollEvents blocked after done was closed")
	}
}

func TestPollEventsClosesOnScreenFini(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	events := make(chan tcell.Event, 4)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(s, events, done)

	s.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	timeout := time.After(2 * time.Second)
	for forwarded := false; !forwarded; {
		select {
		case ev := <-events:
			// 初始化时可能先有 resize 事件
			if k, ok := ev.(*tcell.EventKey); ok && k.Rune() == 'p' {
				forwarded = true
			}
		case <-timeout:
			t.Fatal("injected key was not forwarded")
		}
	}

	s.Fini()
	select {
	case _, ok := <-events:
		for ok {
			_, ok = <-events
		}
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed after Fini")
	}
}
