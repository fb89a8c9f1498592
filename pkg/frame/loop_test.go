package frame

import "testing"

func TestStepRunsCallbacksInOrder(t *testing.T) {
	l := NewLoop()
	var order []string
	l.Schedule(func(f Frame) { order = append(order, "a") })
	l.Schedule(func(f Frame) { order = append(order, "b") })

	l.Step(Frame{DT: 1.0 / 60})

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("callback order = %v, want [a b]", order)
	}
}

func TestStepAssignsFrameIndex(t *testing.T) {
	l := NewLoop()
	var seen []uint64
	l.Schedule(func(f Frame) { seen = append(seen, f.Index) })

	for i := 0; i < 3; i++ {
		l.Step(Frame{Index: 99})
	}

	for i, idx := range seen {
		if idx != uint64(i+1) {
			t.Errorf("frame %d index = %d, want %d", i, idx, i+1)
		}
	}
	if l.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", l.Frames())
	}
}

func TestCancelStopsFutureInvocations(t *testing.T) {
	l := NewLoop()
	calls := 0
	h := l.Schedule(func(f Frame) { calls++ })

	l.Step(Frame{})
	h.Cancel()
	l.Step(Frame{})
	l.Step(Frame{})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if h.Active() {
		t.Error("handle should be inactive after Cancel")
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}

	// 重复取消不应 panic
	h.Cancel()
}

func TestCancelDuringStep(t *testing.T) {
	l := NewLoop()
	var second *Handle
	secondCalls := 0

	l.Schedule(func(f Frame) { second.Cancel() })
	second = l.Schedule(func(f Frame) { secondCalls++ })

	l.Step(Frame{})
	l.Step(Frame{})

	if secondCalls != 0 {
		t.Errorf("callback cancelled earlier in the same frame ran %d times", secondCalls)
	}
}

// TestCloseDuringStep 回调内关闭整个循环
func TestCloseDuringStep(t *testing.T) {
	l := NewLoop()
	secondCalls := 0

	l.Schedule(func(f Frame) { l.Close() })
	l.Schedule(func(f Frame) { secondCalls++ })

	l.Step(Frame{})
	l.Step(Frame{})

	if secondCalls != 0 {
		t.Errorf("callback after Close ran %d times", secondCalls)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after Close, want 0", l.Len())
	}
	if l.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", l.Frames())
	}
}

func TestSelfCancel(t *testing.T) {
	l := NewLoop()
	calls := 0
	var h *Handle
	h = l.Schedule(func(f Frame) {
		calls++
		h.Cancel()
	})

	l.Step(Frame{})
	l.Step(Frame{})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestScheduleDuringStepRunsNextFrame(t *testing.T) {
	l := NewLoop()
	lateCalls := 0
	scheduled := false
	l.Schedule(func(f Frame) {
		if !scheduled {
			scheduled = true
			l.Schedule(func(f Frame) { lateCalls++ })
		}
	})

	l.Step(Frame{})
	if lateCalls != 0 {
		t.Fatalf("late callback ran in the frame it was scheduled")
	}
	l.Step(Frame{})
	if lateCalls != 1 {
		t.Errorf("late callback calls = %d, want 1", lateCalls)
	}
}

func TestNilCallbackIsInactive(t *testing.T) {
	l := NewLoop()
	h := l.Schedule(nil)
	if h.Active() {
		t.Error("nil callback should produce an inactive handle")
	}
	l.Step(Frame{})
}

func TestClose(t *testing.T) {
	l := NewLoop()
	calls := 0
	h1 := l.Schedule(func(f Frame) { calls++ })
	h2 := l.Schedule(func(f Frame) { calls++ })

	l.Close()
	l.Step(Frame{})

	if calls != 0 {
		t.Errorf("calls after Close = %d, want 0", calls)
	}
	if h1.Active() || h2.Active() {
		t.Error("handles should be inactive after Close")
	}
}

func TestNilHandleIsSafe(t *testing.T) {
	var h *Handle
	h.Cancel()
	if h.Active() {
		t.Error("nil handle reported active")
	}
}
