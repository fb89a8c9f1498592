// Package frame provides an explicit, cooperative frame scheduler.
//
// The host display loop (ebiten Update, a terminal ticker, a test) drives the
// Loop one Frame at a time. Components register a Callback with Schedule and
// keep the returned *Handle; cancelling the handle deterministically stops
// all future invocations. There is no global registration and no goroutine.
package frame

// Pointer is the pointer sample for one frame, in the host container's
// coordinate space.
type Pointer struct {
	X, Y   float64
	Inside bool // false when the pointer is outside the container or unknown
}

// Frame is the input handed to every callback for one tick.
type Frame struct {
	Index   uint64  // monotonically increasing frame number, starting at 1
	DT      float64 // seconds since the previous frame
	Pointer Pointer
}

// Callback is invoked once per Step while its handle is active.
type Callback func(f Frame)

// Handle is the owned scheduling token returned by Schedule.
type Handle struct {
	loop   *Loop
	cb     Callback
	active bool
}

// Cancel stops future invocations. Safe to call more than once and from
// inside the callback itself.
func (h *Handle) Cancel() {
	if h == nil || !h.active {
		return
	}
	h.active = false
	h.cb = nil
	if h.loop != nil {
		h.loop.dirty = true
	}
}

// Active reports whether the callback is still scheduled.
func (h *Handle) Active() bool {
	return h != nil && h.active
}

// Loop runs scheduled callbacks in registration order.
type Loop struct {
	handles  []*Handle
	index    uint64
	dirty    bool
	stepping bool
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{handles: make([]*Handle, 0, 4)}
}

// Schedule registers cb and returns its handle. A callback scheduled during a
// Step first runs on the next Step.
func (l *Loop) Schedule(cb Callback) *Handle {
	h := &Handle{loop: l, cb: cb, active: cb != nil}
	if h.active {
		l.handles = append(l.handles, h)
	}
	return h
}

// Step advances one frame. f.Index is assigned by the loop.
// Each callback completes before the next one starts.
func (l *Loop) Step(f Frame) Frame {
	if l.stepping {
		// 不允许重入：上一帧尚未结束
		return f
	}
	l.stepping = true
	defer func() { l.stepping = false }()

	l.index++
	f.Index = l.index

	n := len(l.handles)
	for i := 0; i < n; i++ {
		h := l.handles[i]
		if !h.active {
			continue
		}
		h.cb(f)
	}

	if l.dirty {
		l.compact()
	}
	return f
}

// compact drops cancelled handles, keeping registration order.
func (l *Loop) compact() {
	live := l.handles[:0]
	for _, h := range l.handles {
		if h.active {
			live = append(live, h)
		}
	}
	for i := len(live); i < len(l.handles); i++ {
		l.handles[i] = nil
	}
	l.handles = live
	l.dirty = false
}

// Len returns the number of active callbacks.
func (l *Loop) Len() int {
	count := 0
	for _, h := range l.handles {
		if h.active {
			count++
		}
	}
	return count
}

// Frames returns how many frames have been stepped.
func (l *Loop) Frames() uint64 {
	return l.index
}

// Close cancels every scheduled callback. Safe to call from inside a
// callback; the handle list is then compacted when the current Step ends.
func (l *Loop) Close() {
	for _, h := range l.handles {
		h.Cancel()
	}
	if l.stepping {
		l.dirty = true
		return
	}
	l.compact()
}
